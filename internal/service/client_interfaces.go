package service

import (
	"context"
	"time"

	"github.com/MKhiriev/notepad-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ManifestBuilder computes the asset manifest of a notepad. It is
// implemented by *manifest.Builder.
type ManifestBuilder interface {
	Build(ctx context.Context, notepad *models.Notepad) (models.AssetManifest, error)
}

// AssetTransferExecutor moves the assets of a transfer plan.
type AssetTransferExecutor interface {
	// Execute obtains transfer URLs for the plan and moves every asset
	// independently. Failed assets are collected in the result. Only a tier
	// limit violation or cancellation of ctx is returned as an error. When
	// the server has no upload links endpoint the uploads are left to the
	// links returned with the document upload.
	Execute(ctx context.Context, syncID string, identity models.SyncIdentity, plan models.TransferPlan) (models.TransferResult, error)

	// Transfer moves assets to and from URLs that are already known.
	Transfer(ctx context.Context, uploads, downloads models.AssetLinks) (models.TransferResult, error)
}

// ClientSyncService runs sync attempts. Attempts for the same notepad are
// serialized, attempts for different notepads may run concurrently.
type ClientSyncService interface {
	// Upload pushes the local notepad and the assets the server lacks. A
	// notepad that was never synced is created remotely first.
	Upload(ctx context.Context, identity models.SyncIdentity, notepadID string) (models.SyncResult, error)

	// Download replaces the local notepad notepadID with the remote notepad
	// syncID and fetches the assets missing locally. The notepad is linked to
	// syncID afterwards.
	Download(ctx context.Context, syncID, notepadID string) (models.SyncResult, error)

	// Sync uploads or downloads depending on which side was modified last.
	Sync(ctx context.Context, identity models.SyncIdentity, notepadID string) (models.SyncResult, error)

	// Delete removes the remote copy of the notepad and unlinks it.
	Delete(ctx context.Context, identity models.SyncIdentity, notepadID string) error

	// Info returns the remote record of syncID.
	Info(ctx context.Context, syncID string) (models.RemoteSyncRecord, error)
}

// ClientAccountService manages the account remembered on this device.
type ClientAccountService interface {
	// Login exchanges credentials for a token and remembers both.
	Login(ctx context.Context, credentials models.Credentials) (models.SyncIdentity, error)

	// Logout forgets the remembered account.
	Logout(ctx context.Context) error

	// Identity returns the remembered account or [ErrNotLoggedIn].
	Identity(ctx context.Context) (models.SyncIdentity, error)

	// IsPro reports whether the account is on the paid tier.
	IsPro(ctx context.Context, identity models.SyncIdentity) (bool, error)
}

// ClientNotepadService manages notepads on both sides.
type ClientNotepadService interface {
	// Create stores a new empty local notepad and returns its id.
	Create(ctx context.Context, title string) (string, error)

	// ListLocal returns the notepads stored on this device.
	ListLocal(ctx context.Context) ([]models.LocalNotepad, error)

	// ListRemote returns the notepads synced by the account.
	ListRemote(ctx context.Context, identity models.SyncIdentity) ([]models.SyncedNotepad, error)

	// ListShared returns the notepads shared with the account keyed by
	// sync id.
	ListShared(ctx context.Context, identity models.SyncIdentity) (map[string]models.SharingData, error)

	// SetPassphrase enables encryption of the notepad with passphrase. An
	// empty passphrase disables it.
	SetPassphrase(ctx context.Context, notepadID, passphrase string) error

	// ImportAsset stores data as a new asset of the notepad and returns its
	// uuid. A base64 data URI is decoded first.
	ImportAsset(ctx context.Context, notepadID string, data []byte, mimeType string) (string, error)

	// ExportAsset returns the stored asset.
	ExportAsset(ctx context.Context, uuid string) (models.Asset, error)
}

// ClientSyncJob is a background worker that keeps one notepad in sync.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 1 minute if interval is zero or negative, and right
	// after every change of the watched file. Any previously running job
	// is stopped before the new one begins.
	Start(ctx context.Context, notepadID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
