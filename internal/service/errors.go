package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAttemptReused is returned when a finished sync attempt is run again.
	ErrAttemptReused = errors.New("sync attempt was already run")

	// ErrNotLoggedIn is returned when no account is remembered on this device.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrNotSynced is returned for operations on a notepad that was never
	// linked to a remote notepad.
	ErrNotSynced = errors.New("notepad is not synced")

	// ErrRemoteNotFound is returned when the remote notepad does not exist.
	ErrRemoteNotFound = errors.New("remote notepad was not found")

	// ErrMissingTransferLink is recorded for assets the server handed out no
	// transfer URL for.
	ErrMissingTransferLink = errors.New("server returned no transfer url for asset")

	// ErrEmptyTitle is returned when a notepad is created without a title.
	ErrEmptyTitle = errors.New("notepad title is empty")
)

// AuthError reports rejected credentials. It is fatal to the attempt and is
// never retried.
type AuthError struct {
	Username string
	Err      error
}

func (e *AuthError) Error() string {
	if e.Username == "" {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("authentication failed for %q: %v", e.Username, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// SyncFailedError is the terminal failure of a sync attempt. State is the
// state the attempt was in when it failed.
type SyncFailedError struct {
	NotepadID string
	State     SyncState
	Err       error
}

func (e *SyncFailedError) Error() string {
	return fmt.Sprintf("sync of notepad %s failed while %s: %v", e.NotepadID, e.State, e.Err)
}

func (e *SyncFailedError) Unwrap() error { return e.Err }
