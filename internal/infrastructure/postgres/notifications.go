package postgres

import (
	"context"
	"time"

	"github.com/go-event-checkin/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepo provides typed Postgres operations for the notification
// table. The log is append-only; there is no update or delete.
type NotificationRepo struct {
	pool *pgxpool.Pool
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

func (r *NotificationRepo) Insert(ctx context.Context, title, message string, createdAt time.Time) (*domain.Notification, error) {
	var n domain.Notification
	err := r.pool.QueryRow(ctx, `
		INSERT INTO notification (title, message, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, title, message, created_at`,
		title, message, createdAt,
	).Scan(&n.ID, &n.Title, &n.Message, &n.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &n, nil
}

// Latest returns the newest notification; created_at ties break toward the
// most recently inserted row.
func (r *NotificationRepo) Latest(ctx context.Context) (*domain.Notification, error) {
	var n domain.Notification
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, message, created_at
		FROM notification
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
	).Scan(&n.ID, &n.Title, &n.Message, &n.CreatedAt)
	if err != nil {
		return nil, mapErr(err)
	}
	return &n, nil
}
