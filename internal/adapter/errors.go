package adapter

import "errors"

// Sentinel errors produced by mapHTTPError from non-2xx server responses.
// The wrapped error text always carries the server's detail message so it
// can be shown to the user verbatim.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
