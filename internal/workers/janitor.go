// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-review-keeper/internal/config"
	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/internal/store"
)

// TombstoneJanitor periodically purges soft-removed version records older
// than the retention window. Records still referenced by a draft or an
// attachment are kept by the repository.
type TombstoneJanitor struct {
	versions  store.VersionRepository
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewTombstoneJanitor(versions store.VersionRepository, cfg config.ClientWorkers) *TombstoneJanitor {
	interval := cfg.JanitorInterval
	if interval <= 0 {
		interval = config.DefaultJanitorInterval
	}
	retention := cfg.TombstoneRetention
	if retention <= 0 {
		retention = config.DefaultTombstoneRetention
	}

	return &TombstoneJanitor{
		versions:  versions,
		retention: retention,
		interval:  interval,
		now:       time.Now,
	}
}

// Run purges once at start and then on every interval until ctx is done.
// Purge failures are logged and retried on the next tick.
func (j *TombstoneJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		if ctx.Err() != nil {
			return nil
		}
		j.purge(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (j *TombstoneJanitor) purge(ctx context.Context) {
	log := logger.FromContext(ctx)
	cutoff := j.now().Add(-j.retention)

	n, err := j.versions.PurgeTombstones(ctx, cutoff)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		log.Err(err).
			Str("func", "TombstoneJanitor.purge").
			Time("cutoff", cutoff).
			Msg("failed to purge tombstones")
		return
	}

	if n > 0 {
		log.Info().
			Str("func", "TombstoneJanitor.purge").
			Time("cutoff", cutoff).
			Int64("purged", n).
			Msg("tombstones purged")
	}
}
