package models

// ServerError is the structured failure payload the athenc server
// returns with every non-2xx response.
type ServerError struct {
	// Detail is the human-readable description of what went wrong,
	// e.g. "Password required" or "Decryption failed. Bad password or
	// corrupted file.".
	Detail string `json:"detail"`
}
