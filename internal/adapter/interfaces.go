// Package adapter provides the transport layer for communicating with the
// athenc server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrForbidden] for 403 on a bad password).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/athenc-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the athenc
// server. Implementations are responsible for request encoding, response
// header parsing, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Transform submits one file for the given mode and returns the
	// transformed payload.
	//
	// The request carries the file content as a binary multipart part named
	// "file" (with fileName as its original name) and the password as a
	// plain "password" form field. The target route is selected by mode:
	// /encrypt or /decrypt.
	//
	// On success the returned [models.ServerBlob] holds the response body
	// and the filename suggested by the Content-Disposition header, when
	// the server sent a parsable one. On a non-2xx response the error text
	// carries the server's detail message; [models.ServerBlob] is zero.
	Transform(ctx context.Context, mode models.Mode, fileName string, content io.Reader, password string) (models.ServerBlob, error)
}
