package utils

import "github.com/google/uuid"

// NewRequestID generates a time-ordered UUID used to correlate an
// outbound request with its log entries. Falls back to a random UUID if
// the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
