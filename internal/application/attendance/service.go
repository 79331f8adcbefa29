package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/go-event-checkin/internal/domain"
)

type Service interface {
	// CheckIn transitions a registrant to checked-in. callerMobile is the
	// verified token identity and must equal mobile: registrants can only
	// check themselves in.
	CheckIn(ctx context.Context, callerMobile, mobile string) (*domain.Registrant, error)
	TotalParticipants(ctx context.Context) (*domain.ParticipantTotals, error)
}

type registrantStore interface {
	// CheckIn applies the transition only if the row is still unchecked,
	// returning nil without error when no row transitioned.
	CheckIn(ctx context.Context, mobile string, at time.Time) (*domain.Registrant, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.Registrant, error)
	Totals(ctx context.Context) (*domain.ParticipantTotals, error)
}

type service struct {
	repo registrantStore
	loc  *time.Location
	now  func() time.Time
}

type ServiceDeps struct {
	RegistrantRepo registrantStore
	Location       *time.Location
	Now            func() time.Time // defaults to time.Now
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	loc := deps.Location
	if loc == nil {
		loc = time.UTC
	}
	return &service{repo: deps.RegistrantRepo, loc: loc, now: now}
}

// CheckIn is first-write-wins: the timestamp of the first successful call
// is the one true check-in moment, and repeat calls are no-ops that return
// the stored record unchanged. Event staff audit against that single value.
func (s *service) CheckIn(ctx context.Context, callerMobile, mobile string) (*domain.Registrant, error) {
	if callerMobile != mobile {
		return nil, fmt.Errorf("you may only check yourself in: %w", domain.ErrForbidden)
	}
	reg, err := s.repo.CheckIn(ctx, mobile, s.now().In(s.loc))
	if err != nil {
		return nil, err
	}
	if reg != nil {
		return reg, nil
	}
	// No row transitioned: either the registrant does not exist or was
	// already checked in. The lookup distinguishes the two.
	return s.repo.GetByMobile(ctx, mobile)
}

func (s *service) TotalParticipants(ctx context.Context) (*domain.ParticipantTotals, error) {
	return s.repo.Totals(ctx)
}
