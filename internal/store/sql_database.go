package store

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/migrations"
)

const (
	busyRetries = 5
	busyDelay   = 50 * time.Millisecond
)

// stmt builds statements with sqlite "?" placeholders.
var stmt = sq.StatementBuilder.PlaceholderFormat(sq.Question)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, logger *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger,
	}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// ExecContext runs a statement and retries it while sqlite reports the
// database as busy or locked. Other errors are returned at once.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var result sql.Result

	backoff := retry.WithMaxRetries(busyRetries, retry.BackoffFunc(func() (time.Duration, bool) {
		return busyDelay, false
	}))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		result, err = db.DB.ExecContext(ctx, query, args...)
		if err != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Debug().Err(err).
				Str("func", "DB.ExecContext").
				Msg("database is busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})

	return result, err
}
