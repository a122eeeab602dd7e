package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/athenc-client/internal/config"
	"github.com/MKhiriev/athenc-client/internal/logger"
)

// tempSuffix marks in-progress writes in the downloads directory.
const tempSuffix = ".part"

type downloadStore struct {
	dir    string
	logger *logger.Logger
}

// NewDownloadStore constructs a [DownloadStore] writing into the directory
// from storageCfg. The directory is created on first use, not here, so a
// misconfigured path surfaces as a save error rather than a startup failure.
func NewDownloadStore(storageCfg config.ClientStorage, log *logger.Logger) DownloadStore {
	return &downloadStore{dir: storageCfg.DownloadsDir, logger: log}
}

// Save implements [DownloadStore].
func (s *downloadStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create downloads dir: %w", err)
	}

	finalPath := uniquePath(filepath.Join(s.dir, filepath.Base(filename)))
	tempPath := finalPath + tempSuffix

	if err := os.WriteFile(tempPath, data, 0o644); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		_ = os.Remove(tempPath)
		return "", fmt.Errorf("finalize download: %w", err)
	}

	s.logger.Debug().
		Str("path", finalPath).
		Int("size", len(data)).
		Msg("download saved")

	return finalPath, nil
}

// SweepTemp implements [DownloadStore].
func (s *downloadStore) SweepTemp(ctx context.Context, olderThan time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("read downloads dir: %w", err)
	}

	cutoff := time.Now().Add(-olderThan)
	removed := 0

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), tempSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			s.logger.Warn().Err(err).Str("file", entry.Name()).Msg("sweep temp file")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("stale temp files swept")
	}

	return removed, nil
}

// uniquePath returns path if it is free, otherwise the first available
// "name (N).ext" variant so an existing download is never overwritten.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
