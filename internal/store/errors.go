package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotepadNotFound is returned when no local notepad has the id.
	ErrNotepadNotFound = errors.New("notepad was not found")

	// ErrAssetNotFound is returned when no local asset has the uuid.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrCredentialNotFound is returned when no account is remembered.
	ErrCredentialNotFound = errors.New("credential was not found")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingDocument is returned when a stored notepad is not valid
	// JSON.
	ErrDecodingDocument = errors.New("failed to decode stored notepad")
)
