package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(http.NotFoundHandler(), config.ClientAPI{}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NilHandler(t *testing.T) {
	s, err := NewServer(nil, config.ClientAPI{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BusyPort(t *testing.T) {
	first, err := NewServer(http.NotFoundHandler(), config.ClientAPI{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.(*server).listener.Close() })

	_, err = NewServer(http.NotFoundHandler(), config.ClientAPI{HTTPAddress: first.Addr()}, logger.Nop())
	assert.ErrorIs(t, err, errListen)
}

func TestServer_RunServesUntilCancelled(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	s, err := NewServer(handler, config.ClientAPI{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	resp, err := http.Get("http://" + s.Addr() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
