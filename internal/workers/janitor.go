package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/athenc-client/internal/config"
	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/store"
)

type janitor struct {
	downloads store.DownloadStore
	interval  time.Duration
	logger    *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJanitor creates a [Worker] that periodically sweeps stale ".part"
// files out of the downloads directory. A temp file older than one sweep
// interval can only be a leftover of an interrupted write, so the interval
// doubles as the staleness threshold. The worker is idle until Start is
// called.
func NewJanitor(downloads store.DownloadStore, workersCfg config.ClientWorkers, log *logger.Logger) Worker {
	interval := workersCfg.JanitorInterval
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &janitor{downloads: downloads, interval: interval, logger: log}
}

// Start implements [Worker]. It stops any previously running sweep loop,
// then launches a goroutine that sweeps once immediately and again every
// interval. The goroutine exits when ctx is cancelled or Stop is called.
func (j *janitor) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.sweep(jobCtx)

		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

// Stop implements [Worker]. It cancels the sweep loop's context and blocks
// until the goroutine has fully exited. Safe to call when the janitor is
// not running (no-op in that case).
func (j *janitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *janitor) sweep(ctx context.Context) {
	if _, err := j.downloads.SweepTemp(ctx, j.interval); err != nil {
		j.logger.Warn().Err(err).Msg("janitor sweep failed")
	}
}
