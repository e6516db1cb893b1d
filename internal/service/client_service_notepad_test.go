package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/crypto"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/mock"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/internal/utils"
	"github.com/MKhiriev/notepad-sync/models"
)

var fixedNow = time.Date(2026, 4, 5, 6, 7, 8, 987654321, time.UTC)

type notepadMocks struct {
	server      *mock.MockServerAdapter
	documents   *mock.MockDocumentStore
	assets      *mock.MockAssetStore
	passphrases *mock.MockPassphraseStore
}

func newTestNotepadService(t *testing.T) (*clientNotepadService, notepadMocks) {
	ctrl := gomock.NewController(t)
	m := notepadMocks{
		server:      mock.NewMockServerAdapter(ctrl),
		documents:   mock.NewMockDocumentStore(ctrl),
		assets:      mock.NewMockAssetStore(ctrl),
		passphrases: mock.NewMockPassphraseStore(ctrl),
	}

	storages := &store.ClientStorages{Documents: m.documents, Assets: m.assets, Passphrases: m.passphrases}
	svc := NewClientNotepadService(storages, m.server, logger.Nop()).(*clientNotepadService)
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}

func TestClientNotepadService_Create(t *testing.T) {
	svc, m := newTestNotepadService(t)

	var storedID string
	m.documents.EXPECT().WriteDocument(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, np *models.Notepad) error {
			storedID = id
			assert.Equal(t, "Recipes", np.Title)
			assert.Equal(t, fixedNow.Truncate(time.Millisecond), np.LastModified)
			assert.NotNil(t, np.Sections)
			return nil
		})

	id, err := svc.Create(context.Background(), "  Recipes ")
	require.NoError(t, err)
	assert.Equal(t, storedID, id)
	assert.True(t, utils.IsUUID(id))
}

func TestClientNotepadService_Create_EmptyTitle(t *testing.T) {
	svc, _ := newTestNotepadService(t)

	_, err := svc.Create(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestClientNotepadService_Lists(t *testing.T) {
	svc, m := newTestNotepadService(t)
	ctx := context.Background()

	local := []models.LocalNotepad{{ID: "np-1", Title: "Trips"}}
	m.documents.EXPECT().ListDocuments(gomock.Any()).Return(local, nil)
	gotLocal, err := svc.ListLocal(ctx)
	require.NoError(t, err)
	assert.Equal(t, local, gotLocal)

	remote := []models.SyncedNotepad{{SyncID: "sync-1", Title: "Trips"}}
	m.server.EXPECT().ListNotepads(gomock.Any(), identity).Return(remote, nil)
	gotRemote, err := svc.ListRemote(ctx, identity)
	require.NoError(t, err)
	assert.Equal(t, remote, gotRemote)

	m.server.EXPECT().ListSharedNotepads(gomock.Any(), identity).Return(nil, &adapter.ServerError{Status: 401})
	_, err = svc.ListShared(ctx, identity)

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestClientNotepadService_SetPassphrase(t *testing.T) {
	tests := []struct {
		name       string
		passphrase string
		wantCrypto string
	}{
		{name: "enable", passphrase: "hunter2", wantCrypto: crypto.Scheme},
		{name: "disable", passphrase: "", wantCrypto: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestNotepadService(t)
			notepad := testNotepad("Trips", time.Time{})
			notepad.Crypto = crypto.Scheme

			m.documents.EXPECT().ReadDocument(gomock.Any(), testNotepadID).Return(notepad, nil)
			m.passphrases.EXPECT().WritePassphrase(gomock.Any(), testNotepadID, tt.passphrase).Return(nil)
			m.documents.EXPECT().WriteDocument(gomock.Any(), testNotepadID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, np *models.Notepad) error {
					assert.Equal(t, tt.wantCrypto, np.Crypto)
					assert.False(t, np.LastModified.IsZero())
					return nil
				})

			require.NoError(t, svc.SetPassphrase(context.Background(), testNotepadID, tt.passphrase))
		})
	}
}

func TestClientNotepadService_SetPassphrase_UnknownNotepad(t *testing.T) {
	svc, m := newTestNotepadService(t)
	m.documents.EXPECT().ReadDocument(gomock.Any(), "missing").Return(nil, store.ErrNotepadNotFound)

	err := svc.SetPassphrase(context.Background(), "missing", "pw")
	assert.ErrorIs(t, err, store.ErrNotepadNotFound)
}

func TestClientNotepadService_ImportAsset(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mimeType string
		wantMime string
		wantData []byte
	}{
		{
			name:     "explicit type",
			data:     []byte("hello"),
			mimeType: "text/markdown",
			wantMime: "text/markdown",
			wantData: []byte("hello"),
		},
		{
			name:     "sniffed type",
			data:     pngHeader,
			wantMime: "image/png",
			wantData: pngHeader,
		},
		{
			name:     "data uri",
			data:     []byte("data:image/gif;base64,R0lGODlh"),
			wantMime: "image/gif",
			wantData: []byte("GIF89a"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestNotepadService(t)
			notepad := testNotepad("Trips", time.Time{})

			var stored models.Asset
			m.documents.EXPECT().ReadDocument(gomock.Any(), testNotepadID).Return(notepad, nil)
			m.assets.EXPECT().WriteAsset(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, a models.Asset) error {
					stored = a
					return nil
				})
			m.documents.EXPECT().WriteDocument(gomock.Any(), testNotepadID, notepad).Return(nil)

			id, err := svc.ImportAsset(context.Background(), testNotepadID, tt.data, tt.mimeType)
			require.NoError(t, err)

			assert.Equal(t, id, stored.UUID)
			assert.Equal(t, tt.wantMime, stored.MimeType)
			assert.Equal(t, tt.wantData, stored.Data)
			assert.Equal(t, []string{id}, notepad.NotepadAssets)
		})
	}
}

func TestClientNotepadService_ExportAsset(t *testing.T) {
	svc, m := newTestNotepadService(t)
	asset := models.Asset{UUID: "a", MimeType: "image/png", Data: pngHeader}

	m.assets.EXPECT().ReadAsset(gomock.Any(), "a").Return(asset, nil)
	got, err := svc.ExportAsset(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, asset, got)
}
