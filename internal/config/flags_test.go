package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── NetAddress ────────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ipv4", input: "127.0.0.1:9000", want: NetAddress{Host: "127.0.0.1", Port: 9000}},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "port too large", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}

// ── ParseFlags ────────────────────────────────────────────────────────────────

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "http://tracking.local",
		"-api-address", "127.0.0.1:8181",
		"-d", "review.db",
		"-attachments", "/tmp/att",
		"-config", "cfg.json",
		"-token", "secret",
		"-user", "reviewer",
		"-log-file", "client.log",
		"-request-timeout", "3s",
		"-rate-limit", "2.5",
		"-poll-interval", "4s",
		"-tombstone-retention", "48h",
		"-janitor-interval", "10m",
	})
	require.NoError(t, err)

	assert.Equal(t, "http://tracking.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "127.0.0.1:8181", cfg.API.HTTPAddress)
	assert.Equal(t, "review.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/att", cfg.Storage.Files.AttachmentDir)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.Adapter.Token)
	assert.Equal(t, "reviewer", cfg.App.UserName)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, 4*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 48*time.Hour, cfg.Workers.TombstoneRetention)
	assert.Equal(t, 10*time.Minute, cfg.Workers.JanitorInterval)
}

func TestParseFlags_NoArgsGivesZeroConfig(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAPIAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-api-address", "nope"})
	assert.Error(t, err)
}
