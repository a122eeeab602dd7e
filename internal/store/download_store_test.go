package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/athenc-client/internal/config"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (DownloadStore, string) {
	t.Helper()
	dir := t.TempDir()
	s := NewDownloadStore(config.ClientStorage{DownloadsDir: dir}, logger.Nop())
	return s, dir
}

// ── Save ─────────────────────────────────────────────────────────────────────

func TestSave_WritesFile(t *testing.T) {
	s, dir := newTestStore(t)

	path, err := s.Save(context.Background(), "report.pdf.enc", []byte("payload"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.pdf.enc"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), data)
}

func TestSave_LeavesNoTempFile(t *testing.T) {
	s, dir := newTestStore(t)

	_, err := s.Save(context.Background(), "a.enc", []byte("x"))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.enc", entries[0].Name())
}

func TestSave_DoesNotOverwriteExisting(t *testing.T) {
	s, dir := newTestStore(t)

	first, err := s.Save(context.Background(), "secret.txt", []byte("one"))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), "secret.txt", []byte("two"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "secret.txt"), first)
	assert.Equal(t, filepath.Join(dir, "secret (1).txt"), second)

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), data)
}

func TestSave_StripsDirectoryComponents(t *testing.T) {
	s, dir := newTestStore(t)

	path, err := s.Save(context.Background(), "../escape.txt", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.txt"), path)
}

func TestSave_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")
	s := NewDownloadStore(config.ClientStorage{DownloadsDir: dir}, logger.Nop())

	path, err := s.Save(context.Background(), "a.enc", []byte("x"))

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSave_CancelledContext(t *testing.T) {
	s, _ := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, "a.enc", []byte("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── SweepTemp ────────────────────────────────────────────────────────────────

func TestSweepTemp_RemovesOnlyStaleTempFiles(t *testing.T) {
	s, dir := newTestStore(t)

	stale := filepath.Join(dir, "old.enc.part")
	fresh := filepath.Join(dir, "new.enc.part")
	final := filepath.Join(dir, "done.enc")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(final, []byte("x"), 0o644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	removed, err := s.SweepTemp(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.FileExists(t, final)
}

func TestSweepTemp_MissingDirectoryIsNoop(t *testing.T) {
	s := NewDownloadStore(config.ClientStorage{DownloadsDir: filepath.Join(t.TempDir(), "absent")}, logger.Nop())

	removed, err := s.SweepTemp(context.Background(), time.Hour)

	require.NoError(t, err)
	assert.Zero(t, removed)
}
