package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://tracking.local"},
	})

	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultAttachmentDir, cfg.Storage.Files.AttachmentDir)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, DefaultRateLimit, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Workers.TombstoneRetention)
	assert.Equal(t, DefaultJanitorInterval, cfg.Workers.JanitorInterval)
	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_KeepsExplicitValues(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{UserName: "reviewer"},
		Storage: Storage{DB: DB{DSN: "custom.db"}},
		Adapter: Adapter{HTTPAddress: "http://tracking.local", RateLimit: 1},
		Workers: Workers{PollInterval: time.Second},
	})

	assert.Equal(t, "reviewer", cfg.App.UserName)
	assert.Equal(t, "custom.db", cfg.Storage.DB.DSN)
	assert.InDelta(t, 1.0, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, time.Second, cfg.Workers.PollInterval)
}

func TestClientConfigValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://tracking.local"},
			API:     API{HTTPAddress: "localhost:8181"},
		})
	}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "missing adapter address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative rate", mutate: func(c *ClientConfig) { c.Adapter.RateLimit = -1 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing attachment dir", mutate: func(c *ClientConfig) { c.Storage.Files.AttachmentDir = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "bad api address", mutate: func(c *ClientConfig) { c.API.HTTPAddress = "nope" }, wantErr: ErrInvalidAPIConfigs},
		{name: "zero poll interval", mutate: func(c *ClientConfig) { c.Workers.PollInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
