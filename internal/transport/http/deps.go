package http

import (
	jwtinfra "github.com/go-event-checkin/internal/infrastructure/jwt"
	"github.com/go-event-checkin/internal/infrastructure/postgres"
	"github.com/go-event-checkin/internal/infrastructure/qr"
	s3infra "github.com/go-event-checkin/internal/infrastructure/s3"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	RegistrantRepo   *postgres.RegistrantRepo
	NotificationRepo *postgres.NotificationRepo
	TokenProvider    *jwtinfra.Provider
	QRGenerator      *qr.Generator
	ObjectStore      *s3infra.Store // nil disables badge/import archiving
}
