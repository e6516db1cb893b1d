// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/manifest"
	"github.com/MKhiriev/notepad-sync/internal/utils"
	"github.com/MKhiriev/notepad-sync/models"
)

// attemptStep is one state of the attempt and the work done in it.
type attemptStep struct {
	state SyncState
	run   func(ctx context.Context) error
}

// syncAttempt holds the state of one sync attempt. It is single use: the
// manifests and the transfer plan are never carried over to another
// attempt.
type syncAttempt struct {
	svc       *clientSyncService
	notepadID string
	identity  models.SyncIdentity
	direction models.SyncDirection

	used   atomic.Bool
	state  SyncState
	states []SyncState

	syncID         string
	notepad        *models.Notepad
	remote         models.RemoteSyncRecord
	remoteManifest models.AssetManifest
	localManifest  models.AssetManifest
	plan           models.TransferPlan
	transfers      models.TransferResult
}

func newSyncAttempt(svc *clientSyncService, notepadID string, identity models.SyncIdentity, direction models.SyncDirection) *syncAttempt {
	return &syncAttempt{
		svc:       svc,
		notepadID: notepadID,
		identity:  identity,
		direction: direction,
		state:     StateIdle,
		states:    []SyncState{StateIdle},
	}
}

func (a *syncAttempt) steps() []attemptStep {
	if a.direction == models.DirectionDownload {
		return []attemptStep{
			{state: StateFetchingRemoteState, run: a.fetchRemoteForDownload},
			{state: StateDownloadingDocument, run: a.downloadDocument},
			{state: StateBuildingLocalManifest, run: a.buildLocalManifest},
			{state: StateDiffing, run: a.diff},
			{state: StateTransferringAssets, run: a.downloadAssets},
		}
	}

	return []attemptStep{
		{state: StateAuthenticating, run: a.authenticate},
		{state: StateFetchingRemoteState, run: a.fetchRemoteForUpload},
		{state: StateBuildingLocalManifest, run: a.buildLocalManifest},
		{state: StateDiffing, run: a.diff},
		{state: StateTransferringAssets, run: a.uploadAssets},
		{state: StateUploadingDocument, run: a.uploadDocument},
	}
}

// run drives the attempt to Done or Failed. A second call returns
// [ErrAttemptReused].
func (a *syncAttempt) run(ctx context.Context) (models.SyncResult, error) {
	if !a.used.CompareAndSwap(false, true) {
		return models.SyncResult{}, ErrAttemptReused
	}

	log := a.svc.logger.WithFields(map[string]any{
		"notepad_id": a.notepadID,
		"direction":  string(a.direction),
	})
	ctx = log.WithContext(ctx)
	started := time.Now()

	for _, step := range a.steps() {
		if err := ctx.Err(); err != nil {
			return a.fail(ctx, err)
		}

		a.transition(step.state)
		if err := step.run(ctx); err != nil {
			return a.fail(ctx, err)
		}
	}
	a.transition(StateDone)

	result := a.result()
	log.Info().
		Str("func", "syncAttempt.run").
		Str("sync_id", a.syncID).
		Int("uploaded", len(a.plan.AssetsToUpload)).
		Int("downloaded", len(a.plan.AssetsToDownload)).
		Int("failed", len(a.transfers.Failed)).
		Dur("took", time.Since(started)).
		Msg("sync attempt finished")

	return result, nil
}

func (a *syncAttempt) transition(to SyncState) {
	from := a.state
	a.state = to
	a.states = append(a.states, to)

	if a.svc.observer != nil {
		a.svc.observer(a.notepadID, from, to)
	}
}

func (a *syncAttempt) fail(ctx context.Context, err error) (models.SyncResult, error) {
	failedIn := a.state
	a.transition(StateFailed)

	logger.FromContext(ctx).Err(err).
		Str("func", "syncAttempt.fail").
		Str("sync_id", a.syncID).
		Str("state", string(failedIn)).
		Msg("sync attempt failed")

	return a.result(), &SyncFailedError{NotepadID: a.notepadID, State: failedIn, Err: err}
}

func (a *syncAttempt) result() models.SyncResult {
	states := make([]string, 0, len(a.states))
	for _, s := range a.states {
		states = append(states, string(s))
	}

	var lastModified time.Time
	if a.notepad != nil {
		lastModified = a.notepad.LastModified
	}

	return models.SyncResult{
		SyncID:       a.syncID,
		Direction:    a.direction,
		Plan:         a.plan,
		Transfers:    a.transfers,
		LastModified: lastModified,
		States:       states,
	}
}

func (a *syncAttempt) authenticate(ctx context.Context) error {
	identity, err := a.svc.authenticate(ctx, a.identity)
	if err != nil {
		return err
	}
	a.identity = identity
	return nil
}

// fetchRemoteForUpload loads the local notepad and the remote record it is
// linked to. A notepad that was never synced is created remotely, and a
// record the server does not know is treated as empty.
func (a *syncAttempt) fetchRemoteForUpload(ctx context.Context) error {
	notepad, err := a.svc.documents.ReadDocument(ctx, a.notepadID)
	if err != nil {
		return fmt.Errorf("read local notepad: %w", err)
	}
	a.notepad = notepad

	syncID, err := a.svc.documents.SyncID(ctx, a.notepadID)
	if err != nil {
		return fmt.Errorf("read sync id: %w", err)
	}

	if syncID == "" {
		syncID, err = a.svc.server.CreateNotepad(ctx, a.identity, notepad.Title)
		if err != nil {
			return fmt.Errorf("create remote notepad: %w", err)
		}
		if err = a.svc.documents.SetSyncID(ctx, a.notepadID, syncID); err != nil {
			return fmt.Errorf("link notepad to %s: %w", syncID, err)
		}

		a.syncID = syncID
		a.remote = models.RemoteSyncRecord{SyncID: syncID}
		return nil
	}
	a.syncID = syncID

	record, err := a.svc.server.SyncInfo(ctx, syncID)
	if adapter.IsNotFound(err) {
		a.remote = models.RemoteSyncRecord{SyncID: syncID}
		return nil
	}
	if err != nil {
		return err
	}

	a.remote = record
	a.remoteManifest = record.Manifest
	return nil
}

func (a *syncAttempt) fetchRemoteForDownload(ctx context.Context) error {
	record, err := a.svc.server.SyncInfo(ctx, a.syncID)
	if adapter.IsNotFound(err) {
		return ErrRemoteNotFound
	}
	if err != nil {
		return err
	}

	a.remote = record
	a.remoteManifest = record.Manifest
	return nil
}

// downloadDocument fetches and decodes the remote notepad. Assets listed by
// the document complete the manifest published by sync/info.
func (a *syncAttempt) downloadDocument(ctx context.Context) error {
	wire, err := a.svc.server.DownloadNotepad(ctx, a.syncID)
	if adapter.IsNotFound(err) {
		return ErrRemoteNotFound
	}
	if err != nil {
		return err
	}

	passphrase, err := a.svc.passphrases.ReadPassphrase(ctx, a.notepadID)
	if err != nil {
		return fmt.Errorf("read passphrase: %w", err)
	}

	notepad, err := a.svc.cipher.DecodeBody(wire, passphrase)
	if err != nil {
		return err
	}
	a.notepad = notepad

	if len(a.remoteManifest.Entries) == 0 {
		a.remoteManifest = models.ManifestFromHashes(wire.AssetHashList, wire.AssetTypes)
	}
	for _, id := range manifest.AssetRefs(notepad) {
		if !a.remoteManifest.Contains(id) {
			a.remoteManifest.Entries = append(a.remoteManifest.Entries, models.AssetManifestEntry{UUID: id})
		}
	}

	return nil
}

func (a *syncAttempt) buildLocalManifest(ctx context.Context) error {
	local, err := a.svc.manifests.Build(ctx, a.notepad)
	if err != nil {
		return err
	}
	a.localManifest = local
	return nil
}

func (a *syncAttempt) diff(_ context.Context) error {
	a.plan = BuildTransferPlan(a.localManifest, a.remoteManifest, a.direction)
	return nil
}

func (a *syncAttempt) uploadAssets(ctx context.Context) error {
	return a.transferAssets(ctx)
}

// downloadAssets fetches the missing assets and then stores the notepad.
// The notepad is stored even when some assets failed.
func (a *syncAttempt) downloadAssets(ctx context.Context) error {
	if err := a.transferAssets(ctx); err != nil {
		return err
	}

	if err := a.svc.documents.WriteDocument(ctx, a.notepadID, a.notepad); err != nil {
		return fmt.Errorf("store downloaded notepad: %w", err)
	}
	if err := a.svc.documents.SetSyncID(ctx, a.notepadID, a.syncID); err != nil {
		return fmt.Errorf("link notepad to %s: %w", a.syncID, err)
	}
	return nil
}

func (a *syncAttempt) transferAssets(ctx context.Context) error {
	result, err := a.svc.transfers.Execute(ctx, a.syncID, a.identity, a.plan)
	a.transfers.Merge(result)
	return err
}

// uploadDocument sends the notepad with the local manifest attached. Assets
// the server still reports missing afterwards are uploaded right away.
func (a *syncAttempt) uploadDocument(ctx context.Context) error {
	passphrase, err := a.svc.passphrases.ReadPassphrase(ctx, a.notepadID)
	if err != nil {
		return fmt.Errorf("read passphrase: %w", err)
	}

	outgoing := *a.notepad
	outgoing.AssetHashList = a.localManifest.Hashes()
	outgoing.AssetTypes = a.localManifest.AssetTypes
	if outgoing.LastModified.IsZero() {
		outgoing.LastModified = time.Now().Truncate(time.Millisecond)
	}

	wire, err := a.svc.cipher.EncodeBody(&outgoing, passphrase)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("serialize notepad: %w", err)
	}

	missing, err := a.svc.server.UploadNotepad(ctx, a.syncID, a.identity, utils.EscapeNonASCII(string(raw)))
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		logger.FromContext(ctx).Info().
			Str("func", "syncAttempt.uploadDocument").
			Str("sync_id", a.syncID).
			Int("assets", len(missing)).
			Msg("server still misses assets, uploading them")

		result, err := a.svc.transfers.Transfer(ctx, missing, nil)
		a.transfers.Merge(result)
		if err != nil {
			return err
		}
	}

	return nil
}
