// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/crypto"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/models"
)

type clientSyncService struct {
	server      adapter.ServerAdapter
	documents   store.DocumentStore
	passphrases store.PassphraseStore
	credentials store.CredentialStore
	manifests   ManifestBuilder
	transfers   AssetTransferExecutor
	cipher      crypto.NotepadCipher
	observer    StateObserver

	locks  *keyedMutex
	logger *logger.Logger
}

// SyncOption customizes a [ClientSyncService].
type SyncOption func(*clientSyncService)

// WithStateObserver reports every state transition to observer.
func WithStateObserver(observer StateObserver) SyncOption {
	return func(s *clientSyncService) {
		s.observer = observer
	}
}

func NewClientSyncService(
	storages *store.ClientStorages,
	server adapter.ServerAdapter,
	manifests ManifestBuilder,
	transfers AssetTransferExecutor,
	cipher crypto.NotepadCipher,
	logger *logger.Logger,
	opts ...SyncOption,
) ClientSyncService {
	s := &clientSyncService{
		server:      server,
		documents:   storages.Documents,
		passphrases: storages.Passphrases,
		credentials: storages.Credentials,
		manifests:   manifests,
		transfers:   transfers,
		cipher:      cipher,
		locks:       newKeyedMutex(),
		logger:      logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *clientSyncService) Upload(ctx context.Context, identity models.SyncIdentity, notepadID string) (models.SyncResult, error) {
	unlock, err := s.locks.lock(ctx, notepadID)
	if err != nil {
		return models.SyncResult{}, err
	}
	defer unlock()

	return newSyncAttempt(s, notepadID, identity, models.DirectionUpload).run(ctx)
}

func (s *clientSyncService) Download(ctx context.Context, syncID, notepadID string) (models.SyncResult, error) {
	unlock, err := s.locks.lock(ctx, notepadID)
	if err != nil {
		return models.SyncResult{}, err
	}
	defer unlock()

	a := newSyncAttempt(s, notepadID, models.SyncIdentity{}, models.DirectionDownload)
	a.syncID = syncID
	return a.run(ctx)
}

// Sync implements ClientSyncService. The side with the later modification
// time wins the whole notepad. Equal times mean both sides are in sync and
// nothing is transferred.
func (s *clientSyncService) Sync(ctx context.Context, identity models.SyncIdentity, notepadID string) (models.SyncResult, error) {
	unlock, err := s.locks.lock(ctx, notepadID)
	if err != nil {
		return models.SyncResult{}, err
	}
	defer unlock()

	log := logger.FromContext(ctx)

	syncID, err := s.documents.SyncID(ctx, notepadID)
	if err != nil {
		return models.SyncResult{}, &SyncFailedError{NotepadID: notepadID, State: StateIdle, Err: err}
	}
	if syncID == "" {
		return newSyncAttempt(s, notepadID, identity, models.DirectionUpload).run(ctx)
	}

	record, err := s.server.SyncInfo(ctx, syncID)
	if adapter.IsNotFound(err) {
		return newSyncAttempt(s, notepadID, identity, models.DirectionUpload).run(ctx)
	}
	if err != nil {
		return models.SyncResult{}, &SyncFailedError{NotepadID: notepadID, State: StateFetchingRemoteState, Err: err}
	}

	local, err := s.documents.ReadDocument(ctx, notepadID)
	if err != nil {
		return models.SyncResult{}, &SyncFailedError{NotepadID: notepadID, State: StateIdle, Err: err}
	}

	switch {
	case record.LastModified.After(local.LastModified):
		log.Info().
			Str("func", "clientSyncService.Sync").
			Str("notepad_id", notepadID).
			Time("remote", record.LastModified).
			Time("local", local.LastModified).
			Msg("remote notepad is newer, downloading")

		a := newSyncAttempt(s, notepadID, identity, models.DirectionDownload)
		a.syncID = syncID
		return a.run(ctx)

	case record.LastModified.Equal(local.LastModified):
		return models.SyncResult{
			SyncID:       syncID,
			Direction:    models.DirectionNone,
			LastModified: local.LastModified,
		}, nil

	default:
		return newSyncAttempt(s, notepadID, identity, models.DirectionUpload).run(ctx)
	}
}

func (s *clientSyncService) Delete(ctx context.Context, identity models.SyncIdentity, notepadID string) error {
	unlock, err := s.locks.lock(ctx, notepadID)
	if err != nil {
		return err
	}
	defer unlock()

	syncID, err := s.documents.SyncID(ctx, notepadID)
	if err != nil {
		return err
	}
	if syncID == "" {
		return ErrNotSynced
	}

	identity, err = s.authenticate(ctx, identity)
	if err != nil {
		return err
	}

	if err = s.server.DeleteNotepad(ctx, syncID, identity); err != nil && !adapter.IsNotFound(err) {
		return fmt.Errorf("delete remote notepad: %w", err)
	}

	return s.documents.SetSyncID(ctx, notepadID, "")
}

func (s *clientSyncService) Info(ctx context.Context, syncID string) (models.RemoteSyncRecord, error) {
	record, err := s.server.SyncInfo(ctx, syncID)
	if adapter.IsNotFound(err) {
		return models.RemoteSyncRecord{}, ErrRemoteNotFound
	}
	return record, err
}

// authenticate returns an identity the server accepts. A present token is
// validated with is_pro. A missing or rejected token is renewed with the
// remembered password, and the new token is remembered.
func (s *clientSyncService) authenticate(ctx context.Context, identity models.SyncIdentity) (models.SyncIdentity, error) {
	log := logger.FromContext(ctx)

	if identity.Token != "" {
		_, err := s.server.IsPro(ctx, identity)
		if err == nil {
			return identity, nil
		}
		if !adapter.IsUnauthorized(err) {
			return models.SyncIdentity{}, err
		}
		log.Info().
			Str("func", "clientSyncService.authenticate").
			Str("username", identity.Username).
			Msg("token was rejected, logging in again")
	}

	cred, err := s.credentials.ReadCredential(ctx)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return models.SyncIdentity{}, &AuthError{Username: identity.Username, Err: ErrNotLoggedIn}
	}
	if err != nil {
		return models.SyncIdentity{}, err
	}
	if cred.Password == "" || (identity.Username != "" && cred.Username != identity.Username) {
		return models.SyncIdentity{}, &AuthError{Username: identity.Username, Err: adapter.ErrUnauthorized}
	}

	renewed, err := s.server.Login(ctx, cred.Credentials())
	if err != nil {
		if adapter.IsUnauthorized(err) {
			return models.SyncIdentity{}, &AuthError{Username: cred.Username, Err: err}
		}
		return models.SyncIdentity{}, err
	}

	cred.Token = renewed.Token
	if err = s.credentials.WriteCredential(ctx, cred); err != nil {
		log.Warn().Err(err).
			Str("func", "clientSyncService.authenticate").
			Msg("failed to remember renewed token")
	}

	return renewed, nil
}
