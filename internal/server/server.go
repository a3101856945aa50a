package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	listener   net.Listener
	logger     *logger.Logger
}

// NewServer binds the local API listener. Binding happens here so that a
// busy port fails startup instead of surfacing later from Run.
func NewServer(handler http.Handler, cfg config.ClientAPI, logger *logger.Logger) (Server, error) {
	logger.Info().Str("func", "server.NewServer").Msg("creating new server...")

	if handler == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	ln, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errListen, err)
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		listener:   ln,
		logger:     logger,
	}, nil
}

func (s *server) Addr() string {
	return s.listener.Addr().String()
}

func (s *server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Str("func", "server.Run").Str("addr", s.Addr()).Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.httpServer.shutdown()
		<-errCh
		s.logger.Info().Str("func", "server.Run").Msg("server Shutdown gracefully")
		return nil
	case err := <-errCh:
		return err
	}
}
