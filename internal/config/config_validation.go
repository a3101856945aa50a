// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Only fields that are set are checked here; required values
// are enforced by [ClientConfig.validate] after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RateLimit < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.PollInterval < 0 || cfg.Workers.TombstoneRetention < 0 || cfg.Workers.JanitorInterval < 0 {
		return fmt.Errorf("%w: negative interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.Storage.DB,
		validation.Field(&cfg.Storage.DB.DSN, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}
	if err := validation.ValidateStruct(&cfg.Storage.Files,
		validation.Field(&cfg.Storage.Files.AttachmentDir, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.HTTPAddress, validation.Required, is.URL),
		validation.Field(&cfg.Adapter.RequestTimeout, validation.Required, validation.Min(0).Exclusive()),
		validation.Field(&cfg.Adapter.RateLimit, validation.Required, validation.Min(0.0).Exclusive()),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if cfg.API.HTTPAddress != "" {
		if _, _, err := net.SplitHostPort(cfg.API.HTTPAddress); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAPIConfigs, err)
		}
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.TombstoneRetention <= 0 || cfg.Workers.JanitorInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
