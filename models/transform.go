package models

import "strings"

// EncryptedSuffix is the extension the server appends to encrypted files.
const EncryptedSuffix = ".enc"

// ServerBlob is the raw success payload returned by the athenc server:
// the transformed bytes plus the filename suggested by the
// Content-Disposition header, when the server sent one.
type ServerBlob struct {
	// Data is the binary response body.
	Data []byte

	// SuggestedName is the filename extracted from the
	// Content-Disposition response header. Empty when the header was
	// absent or could not be parsed.
	SuggestedName string
}

// TransformResult is the outcome of a completed submission: the resolved
// output filename and the path the payload was saved to.
type TransformResult struct {
	// Filename is the final output name — the server suggestion when
	// present, otherwise derived from the original name and mode.
	Filename string

	// SavedPath is the location the payload was written to.
	SavedPath string

	// Size is the payload size in bytes.
	Size int64
}

// DeriveOutputName computes the fallback output filename used when the
// server response carries no usable Content-Disposition header.
//
// Encrypt mode appends [EncryptedSuffix] to the original name. Decrypt
// mode removes the first occurrence of the suffix anywhere in the name,
// mirroring the server's companion web client; a name without the suffix
// is returned unchanged.
func DeriveOutputName(mode Mode, originalName string) string {
	if mode == Decrypt {
		return strings.Replace(originalName, EncryptedSuffix, "", 1)
	}
	return originalName + EncryptedSuffix
}
