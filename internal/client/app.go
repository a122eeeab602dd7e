package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/service"
	"github.com/MKhiriev/athenc-client/internal/tui"
	"github.com/MKhiriev/athenc-client/internal/workers"
)

// App glues the client services, the terminal UI, and the background workers
// into one runnable unit.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	jobs     *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, jobs *workers.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are not initialized")
	}
	if ui == nil {
		return nil, errors.New("terminal ui is not initialized")
	}

	return &App{services: services, ui: ui, jobs: jobs, logger: log}, nil
}

// Run starts the background workers, hands control to the terminal UI, and
// blocks until the user quits. Workers are always stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	if a.jobs != nil {
		a.jobs.Start(ctx)
		defer a.jobs.Stop()
	}

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			a.logger.Info().Msg("user quit")
			return nil
		}
		return fmt.Errorf("terminal ui: %w", err)
	}

	return nil
}
