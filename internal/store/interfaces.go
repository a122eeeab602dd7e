// Package store implements local persistence for transformed files.
//
// The only storage concern of the client is the downloads directory:
// completed server responses are materialised there, and temporary files
// left behind by interrupted writes are swept by the janitor worker.
package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/download_store_mock.go -package=mock

// DownloadStore persists transformed payloads into the downloads directory.
type DownloadStore interface {
	// Save writes data into the downloads directory under filename and
	// returns the full path of the written file.
	//
	// The payload is first written to a temporary ".part" file which is
	// renamed into place only after a complete write; the temporary file is
	// removed if any step fails, so a partial download is never visible
	// under its final name. When filename already exists a numbered
	// variant ("name (1).ext") is chosen instead of overwriting.
	Save(ctx context.Context, filename string, data []byte) (string, error)

	// SweepTemp removes ".part" files in the downloads directory whose
	// modification time is older than olderThan. Returns the number of
	// files removed. Used by the background janitor.
	SweepTemp(ctx context.Context, olderThan time.Duration) (int, error)
}
