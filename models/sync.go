// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SyncIdentity is the bearer credential of a logged-in account. It is held
// by the caller and passed into every authenticated operation.
type SyncIdentity struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// IsZero reports whether no credential is present.
func (s SyncIdentity) IsZero() bool {
	return s.Username == "" || s.Token == ""
}

// Credentials are the username/password pair exchanged for a [SyncIdentity].
type Credentials struct {
	Username string
	Password string
}

// RemoteSyncRecord is the server-side state of a notepad as observed by the
// client during one attempt.
type RemoteSyncRecord struct {
	SyncID       string
	Title        string
	LastModified time.Time

	// Exists is false for a first-ever sync, in which case Manifest is empty.
	Exists   bool
	Manifest AssetManifest
}

// SyncedNotepad is an entry of the account's remote notepad list.
type SyncedNotepad struct {
	SyncID string `json:"syncId"`
	Title  string `json:"title"`
}

// SharingData describes a notepad shared with the account.
type SharingData struct {
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// AssetLinks maps asset UUID to a short-lived transfer URL.
type AssetLinks map[string]string

// TransferPlan lists the assets that must move in one sync attempt. It is
// consumed exactly once.
type TransferPlan struct {
	AssetsToUpload   []string
	AssetsToDownload []string
}

// IsEmpty reports whether nothing has to be transferred.
func (p TransferPlan) IsEmpty() bool {
	return len(p.AssetsToUpload) == 0 && len(p.AssetsToDownload) == 0
}

// TransferResult aggregates the outcome of every asset transfer of a plan.
type TransferResult struct {
	Succeeded []string
	Failed    map[string]error
}

// Merge folds other into r.
func (r *TransferResult) Merge(other TransferResult) {
	r.Succeeded = append(r.Succeeded, other.Succeeded...)
	for id, err := range other.Failed {
		if r.Failed == nil {
			r.Failed = make(map[string]error)
		}
		r.Failed[id] = err
	}
}

// HasFailures reports whether at least one asset failed after its retries.
func (r TransferResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// PartialTransferError reports assets that could not be transferred. The
// attempt that produced it still finished.
type PartialTransferError struct {
	Failed map[string]error
}

func (e *PartialTransferError) Error() string {
	ids := sortedKeys(e.Failed)
	return fmt.Sprintf("%d asset(s) failed to transfer: %s", len(ids), strings.Join(ids, ", "))
}

// Unwrap exposes every per-asset error to [errors.Is] and [errors.As].
func (e *PartialTransferError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failed))
	for _, id := range sortedKeys(e.Failed) {
		errs = append(errs, e.Failed[id])
	}
	return errs
}

// SyncDirection tells which way the notepad travelled in an attempt.
type SyncDirection string

const (
	DirectionUpload   SyncDirection = "upload"
	DirectionDownload SyncDirection = "download"
	DirectionNone     SyncDirection = "none"
)

// SyncResult is returned by every successful attempt, including attempts that
// finished with partially failed asset transfers.
type SyncResult struct {
	SyncID       string
	Direction    SyncDirection
	Plan         TransferPlan
	Transfers    TransferResult
	LastModified time.Time
	States       []string
}

// Err returns a [*PartialTransferError] when some transfers failed, nil
// otherwise.
func (r SyncResult) Err() error {
	if !r.Transfers.HasFailures() {
		return nil
	}
	return &PartialTransferError{Failed: r.Transfers.Failed}
}

// IsPartial reports whether the attempt finished with failed transfers.
func (r SyncResult) IsPartial() bool {
	var partial *PartialTransferError
	return errors.As(r.Err(), &partial)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
