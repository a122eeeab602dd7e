// Package tui implements the terminal user interface of the athenc client.
//
// The interface is a single-screen form: a mode selector (encrypt or
// decrypt), a file row, a masked password row, and a transient notification
// slot. All blocking work is dispatched as Bubble Tea commands so the form
// stays responsive while a request is in flight.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/athenc-client/internal/logger"
	"github.com/MKhiriev/athenc-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

// TUI drives the interactive transfer screen.
type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: log}, nil
}

// Run starts the transfer screen and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newTransferModel(ctx, t.services.TransferService, t.logger)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(transferModel); !ok {
		return tea.ErrProgramKilled
	}
	return ErrUserQuit
}
