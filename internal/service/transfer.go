package service

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/athenc-client/internal/adapter"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/store"
	"github.com/MKhiriev/athenc-client/models"
)

type transferService struct {
	serverAdapter adapter.ServerAdapter
	downloads     store.DownloadStore
	logger        *logger.Logger
}

// NewTransferService constructs the default [TransferService] on top of the
// server adapter and the downloads store.
func NewTransferService(serverAdapter adapter.ServerAdapter, downloads store.DownloadStore, log *logger.Logger) TransferService {
	return &transferService{serverAdapter: serverAdapter, downloads: downloads, logger: log}
}

// Transform implements [TransferService].
func (s *transferService) Transform(ctx context.Context, mode models.Mode, file models.FileRef, password string) (models.TransformResult, error) {
	if !file.IsSelected() {
		return models.TransformResult{}, ErrNoFileSelected
	}
	if password == "" {
		return models.TransformResult{}, ErrEmptyPassword
	}

	f, err := os.Open(file.Path)
	if err != nil {
		return models.TransformResult{}, fmt.Errorf("open selected file: %w", err)
	}
	defer f.Close()

	blob, err := s.serverAdapter.Transform(ctx, mode, file.Name, f, password)
	if err != nil {
		return models.TransformResult{}, err
	}

	filename := blob.SuggestedName
	if filename == "" {
		filename = models.DeriveOutputName(mode, file.Name)
	}

	savedPath, err := s.downloads.Save(ctx, filename, blob.Data)
	if err != nil {
		return models.TransformResult{}, fmt.Errorf("save transformed file: %w", err)
	}

	s.logger.Info().
		Str("mode", mode.String()).
		Str("original", file.Name).
		Str("saved", savedPath).
		Int("size", len(blob.Data)).
		Msg("transform finished")

	return models.TransformResult{
		Filename:  filename,
		SavedPath: savedPath,
		Size:      int64(len(blob.Data)),
	}, nil
}
