package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] to unset optional values.
const (
	DefaultDSN                = "review-keeper.db"
	DefaultAttachmentDir      = "attachments"
	DefaultRequestTimeout     = 10 * time.Second
	DefaultRateLimit          = 5.0
	DefaultPollInterval       = 5 * time.Second
	DefaultTombstoneRetention = 30 * 24 * time.Hour
	DefaultJanitorInterval    = time.Hour
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	Version  string
	UserName string
	LogFile  string
}

// ClientAdapter holds settings used by the tracking service transport.
type ClientAdapter struct {
	// HTTPAddress is the base address of the tracking service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RateLimit is the number of requests per second allowed.
	RateLimit float64
	// Token is the bearer token.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientFiles contains local attachment storage settings.
type ClientFiles struct {
	AttachmentDir string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB    ClientDB
	Files ClientFiles
}

// ClientAPI contains local HTTP API settings.
type ClientAPI struct {
	HTTPAddress string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	PollInterval       time.Duration
	TombstoneRetention time.Duration
	JanitorInterval    time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	API     ClientAPI
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			UserName: cfg.App.UserName,
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB:    ClientDB{DSN: cfg.Storage.DB.DSN},
			Files: ClientFiles{AttachmentDir: cfg.Storage.Files.AttachmentDir},
		},
		API: ClientAPI{HTTPAddress: cfg.API.HTTPAddress},
		Workers: ClientWorkers{
			PollInterval:       cfg.Workers.PollInterval,
			TombstoneRetention: cfg.Workers.TombstoneRetention,
			JanitorInterval:    cfg.Workers.JanitorInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Storage.Files.AttachmentDir == "" {
		cfg.Storage.Files.AttachmentDir = DefaultAttachmentDir
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RateLimit == 0 {
		cfg.Adapter.RateLimit = DefaultRateLimit
	}
	if cfg.Workers.PollInterval == 0 {
		cfg.Workers.PollInterval = DefaultPollInterval
	}
	if cfg.Workers.TombstoneRetention == 0 {
		cfg.Workers.TombstoneRetention = DefaultTombstoneRetention
	}
	if cfg.Workers.JanitorInterval == 0 {
		cfg.Workers.JanitorInterval = DefaultJanitorInterval
	}
}
