package domain

import "time"

// Notification is an append-only announcement. There is no update or
// delete operation; "latest" means highest created_at, ties broken by id.
type Notification struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateNotificationRequest is the payload for publishing an announcement.
type CreateNotificationRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
}
