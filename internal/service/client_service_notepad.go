package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/crypto"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/internal/utils"
	"github.com/MKhiriev/notepad-sync/models"
)

type clientNotepadService struct {
	server      adapter.ServerAdapter
	documents   store.DocumentStore
	assets      store.AssetStore
	passphrases store.PassphraseStore
	ids         *utils.UUIDGenerator
	now         func() time.Time
	logger      *logger.Logger
}

func NewClientNotepadService(storages *store.ClientStorages, server adapter.ServerAdapter, logger *logger.Logger) ClientNotepadService {
	return &clientNotepadService{
		server:      server,
		documents:   storages.Documents,
		assets:      storages.Assets,
		passphrases: storages.Passphrases,
		ids:         utils.NewUUIDGenerator(),
		now:         time.Now,
		logger:      logger,
	}
}

// modified returns the current time at the precision of the wire format.
func (s *clientNotepadService) modified() time.Time {
	return s.now().Truncate(time.Millisecond)
}

func (s *clientNotepadService) Create(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}

	id := s.ids.Generate()
	notepad := &models.Notepad{
		Title:        title,
		LastModified: s.modified(),
		Sections:     []*models.Section{},
	}

	if err := s.documents.WriteDocument(ctx, id, notepad); err != nil {
		return "", fmt.Errorf("store notepad: %w", err)
	}
	return id, nil
}

func (s *clientNotepadService) ListLocal(ctx context.Context) ([]models.LocalNotepad, error) {
	return s.documents.ListDocuments(ctx)
}

func (s *clientNotepadService) ListRemote(ctx context.Context, identity models.SyncIdentity) ([]models.SyncedNotepad, error) {
	notepads, err := s.server.ListNotepads(ctx, identity)
	if adapter.IsUnauthorized(err) {
		return nil, &AuthError{Username: identity.Username, Err: err}
	}
	return notepads, err
}

func (s *clientNotepadService) ListShared(ctx context.Context, identity models.SyncIdentity) (map[string]models.SharingData, error) {
	shared, err := s.server.ListSharedNotepads(ctx, identity)
	if adapter.IsUnauthorized(err) {
		return nil, &AuthError{Username: identity.Username, Err: err}
	}
	return shared, err
}

func (s *clientNotepadService) SetPassphrase(ctx context.Context, notepadID, passphrase string) error {
	notepad, err := s.documents.ReadDocument(ctx, notepadID)
	if err != nil {
		return err
	}

	if err = s.passphrases.WritePassphrase(ctx, notepadID, passphrase); err != nil {
		return fmt.Errorf("store passphrase: %w", err)
	}

	notepad.Crypto = ""
	if passphrase != "" {
		notepad.Crypto = crypto.Scheme
	}
	notepad.LastModified = s.modified()

	return s.documents.WriteDocument(ctx, notepadID, notepad)
}

func (s *clientNotepadService) ImportAsset(ctx context.Context, notepadID string, data []byte, mimeType string) (string, error) {
	notepad, err := s.documents.ReadDocument(ctx, notepadID)
	if err != nil {
		return "", err
	}

	id := s.ids.Generate()
	asset := models.Asset{UUID: id, MimeType: mimeType, Data: data}
	if bytes.HasPrefix(data, []byte("data:")) {
		if asset, err = models.DecodeDataURI(id, string(data)); err != nil {
			return "", err
		}
	}
	if asset.MimeType == "" {
		asset.MimeType = mimetype.Detect(asset.Data).String()
	}

	if err = s.assets.WriteAsset(ctx, asset); err != nil {
		return "", fmt.Errorf("store asset: %w", err)
	}

	notepad.NotepadAssets = append(notepad.NotepadAssets, id)
	notepad.LastModified = s.modified()
	if err = s.documents.WriteDocument(ctx, notepadID, notepad); err != nil {
		return "", fmt.Errorf("store notepad: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "clientNotepadService.ImportAsset").
		Str("notepad_id", notepadID).
		Str("asset", id).
		Str("mime_type", asset.MimeType).
		Msg("asset imported")

	return id, nil
}

func (s *clientNotepadService) ExportAsset(ctx context.Context, uuid string) (models.Asset, error) {
	return s.assets.ReadAsset(ctx, uuid)
}
