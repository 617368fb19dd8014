package model

import "time"

// Notification is a server-generated alert (budget warnings and the like).
type Notification struct {
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"notification_type"`
	ID        int64     `json:"id"`
	IsRead    bool      `json:"is_read"`
}
