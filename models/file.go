package models

import "path/filepath"

// FileRef identifies the file currently selected for submission.
// The zero value means "nothing selected". A mode change always resets
// the selection back to the zero value.
type FileRef struct {
	// Path is the absolute or relative path the user entered.
	Path string

	// Name is the base name of the file, used as the original filename
	// in the multipart request and in output-name derivation.
	Name string

	// Size is the file size in bytes at selection time.
	Size int64
}

// NewFileRef builds a FileRef from a path, deriving Name from its base.
func NewFileRef(path string, size int64) FileRef {
	return FileRef{Path: path, Name: filepath.Base(path), Size: size}
}

// IsSelected reports whether the reference points at a file.
func (f FileRef) IsSelected() bool {
	return f.Path != ""
}
