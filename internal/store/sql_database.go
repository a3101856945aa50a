package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-review-keeper/internal/logger"
	"github.com/MKhiriev/go-review-keeper/migrations"
)

const maxTxAttempts = 3

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	locks              *playlistLocker
	logger             *logger.Logger
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		locks:              newPlaylistLocker(),
		logger:             log,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// inPlaylistTx runs fn inside one transaction while holding the lock of
// playlistID. Retryable driver errors restart the whole transaction.
func (db *DB) inPlaylistTx(ctx context.Context, playlistID string, fn func(tx *sql.Tx) error) error {
	unlock := db.locks.lock(playlistID)
	defer unlock()

	return db.inTx(ctx, fn)
}

func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassificator.Classify(err) != Retryable || ctx.Err() != nil {
			return err
		}
		db.logger.Warn().
			Err(err).
			Str("func", "DB.inTx").
			Int("attempt", attempt).
			Msg("retrying transaction")
	}
	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
