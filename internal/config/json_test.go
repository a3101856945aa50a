package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"app": {"user_name": "reviewer", "log_file": "c.log"},
		"storage": {"db": {"dsn": "review.db"}, "files": {"attachment_dir": "att"}},
		"adapter": {"http_address": "http://tracking.local", "request_timeout": "5s", "rate_limit": 3, "token": "t"},
		"api": {"http_address": "localhost:8181"},
		"workers": {"poll_interval": "5s", "tombstone_retention": "720h", "janitor_interval": 60000000000}
	}`), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "reviewer", cfg.App.UserName)
	assert.Equal(t, "c.log", cfg.App.LogFile)
	assert.Equal(t, "review.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "att", cfg.Storage.Files.AttachmentDir)
	assert.Equal(t, "http://tracking.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 3.0, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, "t", cfg.Adapter.Token)
	assert.Equal(t, "localhost:8181", cfg.API.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Workers.PollInterval)
	assert.Equal(t, 720*time.Hour, cfg.Workers.TombstoneRetention)
	assert.Equal(t, time.Minute, cfg.Workers.JanitorInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"app":`), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(2 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"2s"`, string(data))
}
