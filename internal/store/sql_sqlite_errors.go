package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify]. It indicates whether a failed statement
// should be retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed statement should not be retried.
	// This is the default for unrecognised errors and constraint violations.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the statement may succeed if run again, e.g.
	// after another connection released its write lock.
	Retryable
)

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify unwraps err as a [sqlite3.Error] and delegates to
// [ClassifySQLiteError]. Anything else is [NonRetryable].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a [sqlite3.Error] to an [ErrorClassification].
//
// Retryable codes:
//   - SQLITE_BUSY: another connection holds the write lock
//   - SQLITE_LOCKED: a table is locked within the same connection
//
// Constraint, I/O, corruption and every other code are [NonRetryable].
func ClassifySQLiteError(err sqlite3.Error) ErrorClassification {
	switch err.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	default:
		return NonRetryable
	}
}
