package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/mock"
	"github.com/MKhiriev/athenc-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTransferSvc — хелпер для создания сервиса с моками
func newTestTransferSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	TransferService,
	*mock.MockServerAdapter,
	*mock.MockDownloadStore,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStore := mock.NewMockDownloadStore(ctrl)

	svc := NewTransferService(mockAdapter, mockStore, logger.Nop())
	return svc, mockAdapter, mockStore
}

// writeTestFile creates a real input file since the service reads the
// selection from disk.
func writeTestFile(t *testing.T, name string, content []byte) models.FileRef {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return models.NewFileRef(path, int64(len(content)))
}

// ── Guard ────────────────────────────────────────────────────────────────────

func TestTransfer_NoFileSelected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// никаких вызовов адаптера быть не должно
	svc, _, _ := newTestTransferSvc(t, ctrl)

	_, err := svc.Transform(context.Background(), models.Encrypt, models.FileRef{}, "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoFileSelected)
	assert.True(t, IsValidationError(err))
}

func TestTransfer_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTransferSvc(t, ctrl)
	file := writeTestFile(t, "report.pdf", []byte("data"))

	_, err := svc.Transform(context.Background(), models.Encrypt, file, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyPassword)
	assert.True(t, IsValidationError(err))
}

func TestTransfer_MissingFileOnDisk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestTransferSvc(t, ctrl)
	file := models.NewFileRef("/no/such/file.bin", 0)

	_, err := svc.Transform(context.Background(), models.Encrypt, file, "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "open selected file")
	assert.False(t, IsValidationError(err))
}

// ── Success ──────────────────────────────────────────────────────────────────

func TestTransfer_EncryptDerivedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStore := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	file := writeTestFile(t, "report.pdf", []byte("data"))
	blob := models.ServerBlob{Data: []byte{1, 2, 3}}

	mockAdapter.EXPECT().
		Transform(ctx, models.Encrypt, "report.pdf", gomock.Any(), "secret").
		DoAndReturn(func(_ context.Context, _ models.Mode, _ string, content io.Reader, _ string) (models.ServerBlob, error) {
			got, err := io.ReadAll(content)
			require.NoError(t, err)
			assert.Equal(t, []byte("data"), got)
			return blob, nil
		})
	mockStore.EXPECT().
		Save(ctx, "report.pdf.enc", blob.Data).
		Return("/downloads/report.pdf.enc", nil)

	result, err := svc.Transform(ctx, models.Encrypt, file, "secret")

	require.NoError(t, err)
	assert.Equal(t, "report.pdf.enc", result.Filename)
	assert.Equal(t, "/downloads/report.pdf.enc", result.SavedPath)
	assert.Equal(t, int64(3), result.Size)
}

func TestTransfer_DecryptDerivedName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStore := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	file := writeTestFile(t, "secret.txt.enc", []byte("cipher"))

	mockAdapter.EXPECT().
		Transform(ctx, models.Decrypt, "secret.txt.enc", gomock.Any(), "secret").
		Return(models.ServerBlob{Data: []byte("plain")}, nil)
	mockStore.EXPECT().
		Save(ctx, "secret.txt", []byte("plain")).
		Return("/downloads/secret.txt", nil)

	result, err := svc.Transform(ctx, models.Decrypt, file, "secret")

	require.NoError(t, err)
	assert.Equal(t, "secret.txt", result.Filename)
}

func TestTransfer_SuggestedNameWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStore := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	file := writeTestFile(t, "whatever.bin", []byte("cipher"))

	mockAdapter.EXPECT().
		Transform(ctx, models.Decrypt, "whatever.bin", gomock.Any(), "secret").
		Return(models.ServerBlob{Data: []byte("plain"), SuggestedName: "result.txt"}, nil)
	mockStore.EXPECT().
		Save(ctx, "result.txt", []byte("plain")).
		Return("/downloads/result.txt", nil)

	result, err := svc.Transform(ctx, models.Decrypt, file, "secret")

	require.NoError(t, err)
	assert.Equal(t, "result.txt", result.Filename)
}

// ── Failures ─────────────────────────────────────────────────────────────────

func TestTransfer_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _ := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	file := writeTestFile(t, "a.enc", []byte("x"))

	mockAdapter.EXPECT().
		Transform(ctx, models.Decrypt, "a.enc", gomock.Any(), "wrong").
		Return(models.ServerBlob{}, errors.New("forbidden: Incorrect password"))

	_, err := svc.Transform(ctx, models.Decrypt, file, "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect password")
}

func TestTransfer_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockStore := newTestTransferSvc(t, ctrl)
	ctx := context.Background()
	file := writeTestFile(t, "a.txt", []byte("x"))

	mockAdapter.EXPECT().
		Transform(ctx, models.Encrypt, "a.txt", gomock.Any(), "secret").
		Return(models.ServerBlob{Data: []byte("enc")}, nil)
	mockStore.EXPECT().
		Save(ctx, "a.txt.enc", []byte("enc")).
		Return("", errors.New("disk full"))

	_, err := svc.Transform(ctx, models.Encrypt, file, "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save transformed file")
}
