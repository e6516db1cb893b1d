package service

import (
	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/crypto"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/store"
)

type ClientServices struct {
	AccountService ClientAccountService
	NotepadService ClientNotepadService
	SyncService    ClientSyncService
	SyncJob        ClientSyncJob
}

// NewClientServices wires the client services over one storage set and one
// transport. manifests is usually a *manifest.Builder backed by a running
// hasher pool.
func NewClientServices(
	storages *store.ClientStorages,
	server adapter.ServerAdapter,
	blobs adapter.BlobTransport,
	manifests ManifestBuilder,
	cfg *config.ClientConfig,
	logger *logger.Logger,
	opts ...SyncOption,
) *ClientServices {
	transfers := NewAssetTransferExecutor(server, blobs, storages.Assets, cfg.Sync, logger)
	accountSvc := NewClientAccountService(storages.Credentials, server, logger)
	syncSvc := NewClientSyncService(storages, server, manifests, transfers, crypto.NewNotepadCipher(), logger, opts...)

	return &ClientServices{
		AccountService: accountSvc,
		NotepadService: NewClientNotepadService(storages, server, logger),
		SyncService:    syncSvc,
		SyncJob:        NewClientSyncJob(syncSvc, accountSvc, logger, WithWatchedFile(cfg.Storage.DB.DSN)),
	}
}
