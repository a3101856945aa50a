package handler

import (
	"testing"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/service"
	"github.com/MKhiriev/go-review-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty *service.ClientServices. http.NewHandler
// only stores the pointer, so nothing is dereferenced at construction time.
func newTestServices() *service.ClientServices {
	return &service.ClientServices{}
}

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.ClientAPI{HTTPAddress: "127.0.0.1:8090"}

	h, err := NewHandlers(newTestServices(), models.AppBuildInfo{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), models.AppBuildInfo{}, config.ClientAPI{}, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.True(t, IsNoHandlers(err))
}
