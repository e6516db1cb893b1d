package hasher

import "errors"

var (
	// ErrHashingBatch is returned when a batch could not be hashed as a
	// whole. It is fatal to the sync attempt that requested it.
	ErrHashingBatch = errors.New("hashing batch failed")

	// ErrPoolStopped is returned for batches submitted after Stop.
	ErrPoolStopped = errors.New("hasher pool is stopped")

	// ErrPoolNotRunning is returned for batches submitted before Run.
	ErrPoolNotRunning = errors.New("hasher pool is not running")

	// ErrDuplicateCorrelationID is returned when a batch reuses the id of a
	// batch that is still in flight.
	ErrDuplicateCorrelationID = errors.New("correlation id is already in flight")

	// ErrEmptyAsset marks an asset without payload. Such assets are dropped
	// from the batch.
	ErrEmptyAsset = errors.New("asset has no data")
)
