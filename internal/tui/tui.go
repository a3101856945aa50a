package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-review-keeper/internal/events"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// Run blocks until the user quits or ctx is cancelled. A user quit is
// reported as ErrUserQuit so the caller can shut the rest of the app down.
func (t *TUI) Run(ctx context.Context) error {
	var sub chan events.Event
	if t.services.Broker != nil {
		sub = t.services.Broker.Subscribe()
		defer t.services.Broker.Unsubscribe(sub)
	}

	model := newAppModel(ctx, t.services, t.buildInfo, sub)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui stopped with error")
		return err
	}

	if result, ok := finalModel.(appModel); ok && result.quit {
		t.logger.Info().Str("func", "TUI.Run").Msg("user quit")
		return ErrUserQuit
	}
	return nil
}
