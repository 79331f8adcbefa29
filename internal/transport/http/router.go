package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-event-checkin/internal/application/attendance"
	"github.com/go-event-checkin/internal/application/auth"
	"github.com/go-event-checkin/internal/application/notification"
	"github.com/go-event-checkin/internal/application/registrant"
	"github.com/go-event-checkin/internal/config"
	"github.com/go-event-checkin/internal/transport/http/handler"
	appmiddleware "github.com/go-event-checkin/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.TokenProvider)

	// 5 requests/second, burst of 10 — applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	registrantSvc := registrant.NewService(registrant.ServiceDeps{
		RegistrantRepo:  deps.RegistrantRepo,
		EmptyAsNotFound: cfg.ListEmptyAsNotFound,
	})
	attendanceSvc := attendance.NewService(attendance.ServiceDeps{
		RegistrantRepo: deps.RegistrantRepo,
		Location:       cfg.Location,
	})
	authSvc := auth.NewService(auth.ServiceDeps{
		RegistrantRepo: deps.RegistrantRepo,
		TokenProvider:  deps.TokenProvider,
	})
	notifSvc := notification.NewService(notification.ServiceDeps{
		NotificationRepo: deps.NotificationRepo,
		Location:         cfg.Location,
	})

	var archive handler.ObjectStore
	if deps.ObjectStore != nil {
		archive = deps.ObjectStore
	}

	healthH := handler.NewHealthHandler()
	registrantH := handler.NewRegistrantHandler(registrantSvc, archive)
	attendanceH := handler.NewAttendanceHandler(attendanceSvc)
	tokenH := handler.NewTokenHandler(authSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	qrH := handler.NewQRHandler(deps.QRGenerator, archive)

	r.Get("/health-check", healthH.Ping)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employee", func(r chi.Router) {
			// ── Public routes (no auth) ──────────────────────────────────────
			r.With(sensitiveRL.Limit).Post("/create-employees", registrantH.Create)
			r.Post("/batch-create-employees", registrantH.BulkImport)
			r.Get("/all-employees", registrantH.ListAll)
			r.Get("/group/members/{group}", registrantH.ListByGroup)
			r.Get("/total-participants", attendanceH.Totals)
			r.With(sensitiveRL.Limit).Post("/token", tokenH.Login)
			r.Post("/token/verify", tokenH.Verify)
			r.Get("/{mobile}/qr-code", qrH.Badge)

			// ── Authenticated routes ─────────────────────────────────────────
			r.Group(func(r chi.Router) {
				r.Use(authMw)

				r.Get("/{mobile}", registrantH.Get)
				r.Post("/{mobile}/check-in", attendanceH.CheckIn)
			})
		})

		r.Route("/notification", func(r chi.Router) {
			r.Post("/", notifH.Create)
			r.Get("/latest", notifH.Latest)
		})
	})

	return r
}
