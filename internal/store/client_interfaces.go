package store

import (
	"context"

	"github.com/MKhiriev/notepad-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// DocumentStore persists notepads on this device.
type DocumentStore interface {
	// ReadDocument loads the notepad with parents restored. Returns
	// [ErrNotepadNotFound] for an unknown id.
	ReadDocument(ctx context.Context, notepadID string) (*models.Notepad, error)
	// WriteDocument inserts or replaces the notepad.
	WriteDocument(ctx context.Context, notepadID string, notepad *models.Notepad) error
	// ListDocuments returns every local notepad ordered by title.
	ListDocuments(ctx context.Context) ([]models.LocalNotepad, error)
	// SyncID returns the remote sync id of the notepad, "" when it was never
	// synced.
	SyncID(ctx context.Context, notepadID string) (string, error)
	// SetSyncID links the notepad to a remote sync id. An empty syncID
	// unlinks it.
	SetSyncID(ctx context.Context, notepadID, syncID string) error
}

// PassphraseStore keeps per-notepad encryption passphrases.
type PassphraseStore interface {
	// ReadPassphrase returns "" when no passphrase is stored.
	ReadPassphrase(ctx context.Context, notepadID string) (string, error)
	WritePassphrase(ctx context.Context, notepadID, passphrase string) error
}

// CredentialStore keeps the single account remembered on this device.
type CredentialStore interface {
	// ReadCredential returns [ErrCredentialNotFound] when nobody is logged in.
	ReadCredential(ctx context.Context) (models.StoredCredential, error)
	WriteCredential(ctx context.Context, credential models.StoredCredential) error
	DeleteCredential(ctx context.Context) error
}

// AssetReader loads asset blobs.
type AssetReader interface {
	// ReadAsset returns [ErrAssetNotFound] for an unknown uuid.
	ReadAsset(ctx context.Context, uuid string) (models.Asset, error)
	HasAsset(ctx context.Context, uuid string) (bool, error)
}

// AssetWriter stores asset blobs. Assets are immutable per uuid, writing an
// existing uuid replaces the blob.
type AssetWriter interface {
	WriteAsset(ctx context.Context, asset models.Asset) error
}

// AssetStore is the combined asset collaborator.
type AssetStore interface {
	AssetReader
	AssetWriter
}
