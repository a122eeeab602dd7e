package models

import "time"

// Severity classifies a notification for styling purposes only.
type Severity int

const (
	// SeverityInfo marks neutral status messages.
	SeverityInfo Severity = 1

	// SeveritySuccess marks completed-operation messages.
	SeveritySuccess Severity = 2

	// SeverityError marks validation and request failures.
	SeverityError Severity = 3
)

// NotificationTTL is how long a notification stays visible before the
// auto-dismiss timer clears it.
const NotificationTTL = 5 * time.Second

// Notification is the single-slot transient message shown by the client.
// Setting a new notification overwrites the previous one and restarts
// the dismiss timer.
type Notification struct {
	// Message is the human-readable text.
	Message string

	// Severity selects the display style; it carries no other meaning.
	Severity Severity
}

// IsZero reports whether the slot is empty.
func (n Notification) IsZero() bool {
	return n.Message == ""
}
