package domain

import "time"

// NotificationStatus tracks delivery state of an announcement.
type NotificationStatus string

const (
	NotificationSent NotificationStatus = "sent"
)

// Notification is a stored announcement addressed to a recipient group.
type Notification struct {
	ID        string
	Recipient string
	Message   string
	Status    NotificationStatus
	SentAt    time.Time
}
