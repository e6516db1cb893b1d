// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync client and
// the remote notepad endpoint.
//
// [ServerAdapter] covers the form-encoded API under
// {base}/diffeng/{group}/{endpoint}/{resource}. [BlobTransport] moves raw
// asset bytes to and from the short-lived URLs handed out by that API. Both
// share one retry policy driven by the error types in errors.go: callers use
// [errors.As] on [*NetworkError], [*TimeoutError], [*ServerError],
// [*ProtocolError] and [*TierLimitError] instead of inspecting messages.
package adapter

import (
	"context"

	"github.com/MKhiriev/notepad-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the remote notepad endpoint.
// Implementations are responsible for form encoding, retries, and mapping
// transport-level failures to the error types defined in this package.
type ServerAdapter interface {
	// Login exchanges a username/password pair for a bearer token
	// (account/login). A 401 or 403 is reported as a [*ServerError] matching
	// [ErrUnauthorized].
	Login(ctx context.Context, credentials models.Credentials) (models.SyncIdentity, error)

	// IsPro reports whether the account behind identity is on the paid tier
	// (account/is_pro). It doubles as a token validity check.
	IsPro(ctx context.Context, identity models.SyncIdentity) (bool, error)

	// ListNotepads returns the notepads synced by the account, sorted by
	// title (notepad/list_notepads).
	ListNotepads(ctx context.Context, identity models.SyncIdentity) ([]models.SyncedNotepad, error)

	// ListSharedNotepads returns the notepads other accounts shared with this
	// one keyed by sync id (notepad/sharing_list_notepads).
	ListSharedNotepads(ctx context.Context, identity models.SyncIdentity) (map[string]models.SharingData, error)

	// CreateNotepad registers a new remote notepad and returns its sync id
	// (notepad/create).
	CreateNotepad(ctx context.Context, identity models.SyncIdentity, title string) (string, error)

	// SyncInfo fetches the remote record of syncID: title, last modification
	// time and asset manifest (sync/info). A missing record is reported as a
	// [*ServerError] matching [ErrNotFound].
	SyncInfo(ctx context.Context, syncID string) (models.RemoteSyncRecord, error)

	// DownloadNotepad fetches the serialized notepad of syncID
	// (sync/download). The sections may still be encrypted.
	DownloadNotepad(ctx context.Context, syncID string) (models.WireNotepad, error)

	// AssetDownloadLinks returns short-lived GET URLs for assetIDs
	// (sync/download_assets).
	AssetDownloadLinks(ctx context.Context, syncID string, assetIDs []string) (models.AssetLinks, error)

	// AssetUploadLinks returns short-lived PUT URLs for assetIDs
	// (sync/upload_assets). A quota violation is a [*TierLimitError]. Servers
	// that do not offer the endpoint answer 404; their upload links come back
	// from UploadNotepad.
	AssetUploadLinks(ctx context.Context, syncID string, identity models.SyncIdentity, assetIDs []string) (models.AssetLinks, error)

	// UploadNotepad stores the serialized notepad body under syncID
	// (sync/upload). The returned links cover assets the server still does
	// not hold.
	UploadNotepad(ctx context.Context, syncID string, identity models.SyncIdentity, body string) (models.AssetLinks, error)

	// DeleteNotepad removes the remote notepad and its assets (sync/delete).
	DeleteNotepad(ctx context.Context, syncID string, identity models.SyncIdentity) error
}

// BlobTransport moves raw asset bytes. Every call has its own retry budget
// that applies regardless of the error type.
type BlobTransport interface {
	// DownloadAsset GETs url and returns the body and its Content-Type.
	DownloadAsset(ctx context.Context, url string) ([]byte, string, error)

	// UploadAsset PUTs the asset bytes to url with the asset MIME type as
	// Content-Type.
	UploadAsset(ctx context.Context, url string, asset models.Asset) error
}
