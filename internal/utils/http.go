// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP client initialization, response header parsing,
// request identifier generation, and other common operations.
package utils

import (
	"mime"
	"path/filepath"
	"strings"
)

// ParseContentDispositionFilename extracts the filename parameter from a
// Content-Disposition response header value.
//
// The header is parsed with mime.ParseMediaType, so both plain
// (filename=name) and quoted (filename="name") forms are supported.
// Any directory components are stripped from the result so a malicious
// server cannot steer the file outside the downloads directory.
//
// Returns an empty string if the header is empty, cannot be parsed, or
// carries no filename parameter.
func ParseContentDispositionFilename(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}

	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}

	name := filepath.Base(strings.TrimSpace(params["filename"]))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}

	return name
}
