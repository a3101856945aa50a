package client

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/tui"
	"golang.org/x/sync/errgroup"
)

// App owns the process lifecycle. The UI is the primary runner: when it
// returns, every other runner is cancelled.
type App struct {
	ui      Runner
	runners []Runner
	closers []func() error
	logger  *logger.Logger
}

// NewApp builds an App around ui. Background runners (local API server,
// workers) may be nil, nil entries are skipped.
func NewApp(ui Runner, logger *logger.Logger, runners ...Runner) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}

	app := &App{ui: ui, logger: logger}
	for _, r := range runners {
		if r != nil {
			app.runners = append(app.runners, r)
		}
	}
	return app, nil
}

// OnClose registers cleanup run after every runner has stopped, in reverse
// registration order.
func (a *App) OnClose(closers ...func() error) {
	a.closers = append(a.closers, closers...)
}

// CloseWith is a convenience for resources exposing Close() error.
func (a *App) CloseWith(closers ...io.Closer) {
	for _, c := range closers {
		a.closers = append(a.closers, c.Close)
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.RunContext(ctx)
}

// RunContext runs the app until ctx is cancelled or the UI exits.
func (a *App) RunContext(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		err := a.ui.Run(gctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	})
	for _, r := range a.runners {
		g.Go(func() error {
			return r.Run(gctx)
		})
	}

	runErr := g.Wait()
	if runErr != nil {
		a.logger.Err(runErr).Str("func", "App.RunContext").Msg("client stopped with error")
	} else {
		a.logger.Info().Str("func", "App.RunContext").Msg("client stopped")
	}

	return errors.Join(runErr, a.close())
}

func (a *App) close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
