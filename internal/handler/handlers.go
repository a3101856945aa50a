package handler

import (
	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/handler/http"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The local API is
// optional for the client, so an empty address yields errNoHandlersAreCreated
// and the caller decides whether that is fatal.
func NewHandlers(services *service.ClientServices, buildInfo models.AppBuildInfo, cfg config.ClientAPI, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("func", "handler.NewHandlers").Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, buildInfo, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
