package service

import "errors"

// Validation errors returned by [TransferService.Transform] before any
// request is sent. They are reported locally and have no side effects.
var (
	// ErrNoFileSelected indicates that no file was selected for submission.
	ErrNoFileSelected = errors.New("файл не выбран")
	// ErrEmptyPassword indicates that the password field was empty at
	// submit time.
	ErrEmptyPassword = errors.New("пароль не указан")
)

// IsValidationError reports whether err is one of the pre-flight guard
// failures, as opposed to a request or storage error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoFileSelected) || errors.Is(err, ErrEmptyPassword)
}
