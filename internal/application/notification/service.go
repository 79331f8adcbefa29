package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-event-checkin/internal/domain"
	"github.com/go-event-checkin/internal/pkg/validate"
)

type Service interface {
	Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error)
	Latest(ctx context.Context) (*domain.Notification, error)
}

type notificationStore interface {
	Insert(ctx context.Context, title, message string, createdAt time.Time) (*domain.Notification, error)
	Latest(ctx context.Context) (*domain.Notification, error)
}

type service struct {
	repo notificationStore
	loc  *time.Location
	now  func() time.Time
}

type ServiceDeps struct {
	NotificationRepo notificationStore
	Location         *time.Location
	Now              func() time.Time // defaults to time.Now
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
	return &service{repo: deps.NotificationRepo, loc: loc, now: now}
}

func (s *service) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	return s.repo.Insert(ctx, req.Title, req.Message, s.now().In(s.loc))
}

func (s *service) Latest(ctx context.Context) (*domain.Notification, error) {
	return s.repo.Latest(ctx)
}
