package notification

import "time"

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

type Notification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	Message    string    `json:"message"`
	ReadStatus string    `json:"read_status"`
	CreatedAt  time.Time `json:"created_at"`
}
