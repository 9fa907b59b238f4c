package types

import "time"

type NotificationLevel string

const (
	LevelInfo  NotificationLevel = "info"
	LevelError NotificationLevel = "error"
)

// Notification is a transient, dismissible user-facing message.
type Notification struct {
	Title       string
	Description string
	Level       NotificationLevel
	Duration    time.Duration
	Closable    bool
}
