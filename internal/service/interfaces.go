// Package service implements the client-side application logic of the
// athenc client.
//
// The central contract is [TransferService]: the guarded
// upload-transform-download flow. The UI layer owns widget state and calls
// Transform with plain values, so the whole flow is unit-testable without a
// terminal or a live server.
package service

import (
	"context"

	"github.com/MKhiriev/athenc-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transfer_service_mock.go -package=mock

// TransferService defines the upload-transform-download flow.
type TransferService interface {
	// Transform validates the submission guard, sends file to the server
	// route selected by mode, resolves the output filename, and saves the
	// returned payload into the downloads directory.
	//
	// Guard: file must be selected and password must be non-empty;
	// otherwise [ErrNoFileSelected] or [ErrEmptyPassword] is returned and
	// no request is issued.
	//
	// The output filename is the server's Content-Disposition suggestion
	// when present, otherwise it is derived from the original name via
	// [models.DeriveOutputName].
	//
	// Exactly one of the outcomes holds on return: a fully saved result,
	// or an error describing the validation, transport, or storage
	// failure. No retries are attempted.
	Transform(ctx context.Context, mode models.Mode, file models.FileRef, password string) (models.TransformResult, error)
}
