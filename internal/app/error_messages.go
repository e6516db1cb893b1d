// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording of the notepad-sync client.
//
// Msg* constants are printed by the CLI instead of raw error chains so that
// every command reports the same failure the same way. [Describe] maps an
// error returned by the service layer onto one of them.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/crypto"
	"github.com/MKhiriev/notepad-sync/internal/hasher"
	"github.com/MKhiriev/notepad-sync/internal/service"
	"github.com/MKhiriev/notepad-sync/internal/store"
)

const (
	// MsgNotLoggedIn is shown when an operation needs an account and none is
	// remembered on this device.
	MsgNotLoggedIn = "not logged in, run `notepad-sync login` first"

	// MsgInvalidLoginPassword is shown when the server rejects the
	// username/password pair or the stored token.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgTierLimit is shown when the server refuses assets because the
	// account is not on the paid tier.
	MsgTierLimit = "this notepad exceeds the limits of a free account"

	// MsgServerUnavailable is shown when the endpoint could not be reached
	// after all retries.
	MsgServerUnavailable = "sync server is unreachable, try again later"

	// MsgServerError is shown for any other failed response.
	MsgServerError = "sync server returned an error"

	// MsgNotepadNotFound is shown when the local notepad id is unknown.
	MsgNotepadNotFound = "notepad not found"

	// MsgRemoteNotFound is shown when the remote notepad no longer exists.
	MsgRemoteNotFound = "remote notepad not found"

	// MsgAssetNotFound is shown when an asset uuid is unknown locally.
	MsgAssetNotFound = "asset not found"

	// MsgNotSynced is shown for remote operations on a notepad that was
	// never synced.
	MsgNotSynced = "notepad was never synced"

	// MsgPassphraseRequired is shown when an encrypted notepad has no stored
	// passphrase.
	MsgPassphraseRequired = "notepad is encrypted, set its passphrase first"

	// MsgWrongPassphrase is shown when a downloaded notepad cannot be
	// decrypted.
	MsgWrongPassphrase = "wrong passphrase for this notepad"

	// MsgHashingFailed is shown when the local asset manifest could not be
	// built.
	MsgHashingFailed = "failed to read local assets"

	// MsgEmptyTitle is shown when a notepad is created without a title.
	MsgEmptyTitle = "notepad title must not be empty"

	// MsgCancelled is shown when the user interrupted the command.
	MsgCancelled = "cancelled"
)

// Describe returns the user-facing message for err. Errors of a failed sync
// attempt are prefixed with the step the attempt failed in. Unknown errors
// are returned as is.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	msg := describe(err)

	var failed *service.SyncFailedError
	if errors.As(err, &failed) {
		return fmt.Sprintf("sync failed while %s: %s", failed.State, msg)
	}
	return msg
}

func describe(err error) string {
	var (
		authErr     *service.AuthError
		decryptErr  *crypto.DecryptionError
		netErr      *adapter.NetworkError
		timeoutErr  *adapter.TimeoutError
		serverErr   *adapter.ServerError
		protocolErr *adapter.ProtocolError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return MsgCancelled
	case errors.Is(err, service.ErrNotLoggedIn):
		return MsgNotLoggedIn
	case errors.As(err, &authErr), adapter.IsUnauthorized(err):
		return MsgInvalidLoginPassword
	case adapter.IsTierLimit(err):
		return MsgTierLimit
	case errors.Is(err, service.ErrRemoteNotFound), adapter.IsNotFound(err):
		return MsgRemoteNotFound
	case errors.Is(err, service.ErrNotSynced):
		return MsgNotSynced
	case errors.Is(err, service.ErrEmptyTitle):
		return MsgEmptyTitle
	case errors.Is(err, store.ErrNotepadNotFound):
		return MsgNotepadNotFound
	case errors.Is(err, store.ErrAssetNotFound):
		return MsgAssetNotFound
	case errors.Is(err, crypto.ErrPassphraseRequired):
		return MsgPassphraseRequired
	case errors.As(err, &decryptErr):
		return MsgWrongPassphrase
	case errors.Is(err, hasher.ErrHashingBatch):
		return MsgHashingFailed
	case errors.As(err, &netErr), errors.As(err, &timeoutErr):
		return MsgServerUnavailable
	case errors.As(err, &serverErr), errors.As(err, &protocolErr):
		return fmt.Sprintf("%s: %v", MsgServerError, err)
	default:
		return err.Error()
	}
}
