package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/athenc-client/internal/config"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (f *fakeWorker) Start(ctx context.Context) { f.started.Add(1) }
func (f *fakeWorker) Stop()                     { f.stopped.Add(1) }

// TestWorkers_StartStopAll verifies that the aggregate forwards Start and
// Stop to every registered worker.
func TestWorkers_StartStopAll(t *testing.T) {
	first := &fakeWorker{}
	second := &fakeWorker{}
	ws := NewWorkers(first, second)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, int32(1), first.started.Load())
	assert.Equal(t, int32(1), second.started.Load())
	assert.Equal(t, int32(1), first.stopped.Load())
	assert.Equal(t, int32(1), second.stopped.Load())
}

// ── Janitor ──────────────────────────────────────────────────────────────────

func TestJanitor_SweepsImmediatelyOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockDownloadStore(ctrl)
	swept := make(chan struct{}, 1)
	mockStore.EXPECT().
		SweepTemp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Duration) (int, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		}).
		MinTimes(1)

	j := NewJanitor(mockStore, config.ClientWorkers{JanitorInterval: time.Hour}, logger.Nop())
	j.Start(context.Background())
	defer j.Stop()

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not sweep after Start")
	}
}

func TestJanitor_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockDownloadStore(ctrl)
	mockStore.EXPECT().SweepTemp(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	j := NewJanitor(mockStore, config.ClientWorkers{JanitorInterval: time.Hour}, logger.Nop())

	// Stop перед Start и двойной Stop не должны паниковать
	j.Stop()
	j.Start(context.Background())
	j.Stop()
	j.Stop()
}

func TestJanitor_RespectsContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mock.NewMockDownloadStore(ctrl)
	mockStore.EXPECT().SweepTemp(gomock.Any(), gomock.Any()).Return(0, nil).AnyTimes()

	j := NewJanitor(mockStore, config.ClientWorkers{JanitorInterval: time.Millisecond}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	j.Start(ctx)
	cancel()

	// Stop должен вернуться быстро после отмены контекста
	done := make(chan struct{})
	go func() {
		j.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("janitor goroutine did not exit after context cancel")
	}

	require.NotNil(t, j)
}
