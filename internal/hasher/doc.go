// Package hasher computes content digests of notepad assets on a pool of
// background goroutines.
//
// Callers submit a batch of asset ids with [Pool.HashBatch]. Each batch is
// tagged with a correlation id; workers publish one [Completion] per batch
// onto a shared channel and a dispatcher hands it to the caller that
// registered that id. Concurrent callers therefore never observe each
// other's results.
package hasher
