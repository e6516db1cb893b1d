package manifest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/mock"
	"github.com/MKhiriev/notepad-sync/models"
)

// stubHasher answers every batch with res and remembers the request.
type stubHasher struct {
	res   models.HashBatchResult
	err   error
	calls int
	req   models.HashBatchRequest
}

func (s *stubHasher) HashBatch(_ context.Context, req models.HashBatchRequest) (models.HashBatchResult, error) {
	s.calls++
	s.req = req
	return s.res, s.err
}

func element(kind, ext string) models.Element {
	return models.Element{Type: kind, Args: models.ElementArgs{ID: kind + ext, Ext: ext}}
}

func notepadWithAssets() *models.Notepad {
	np := &models.Notepad{
		Title: "Trips",
		Sections: []*models.Section{{
			Title:       "Europe",
			InternalRef: "s1",
			Notes: []*models.Note{{
				Title:       "Rome",
				InternalRef: "n1",
				Elements: []models.Element{
					element(models.ElementImage, "a"),
					element(models.ElementMarkdown, "ignored"),
					element(models.ElementFile, "b"),
				},
			}},
			Sections: []*models.Section{{
				Title:       "Alps",
				InternalRef: "s2",
				Notes: []*models.Note{{
					Title:       "Hike",
					InternalRef: "n2",
					Elements: []models.Element{
						element(models.ElementDrawing, "a"),
						element(models.ElementRecording, "c"),
					},
				}},
			}},
		}},
		NotepadAssets: []string{"d", "b"},
	}
	np.RestoreParents()
	return np
}

func TestAssetRefs(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", "d"}, AssetRefs(notepadWithAssets()))
	assert.Empty(t, AssetRefs(&models.Notepad{Title: "empty"}))
	assert.Nil(t, AssetRefs(nil))
}

func TestBuilder_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)

	hasher := &stubHasher{res: models.HashBatchResult{
		CorrelationID: "cid",
		Hashes:        map[string]string{"a": "sha256:aa", "b": "sha256:bb", "c": "sha256:cc", "d": "sha256:dd"},
		MimeTypes:     map[string]string{"a": "image/png", "b": "application/pdf", "c": "audio/ogg", "d": ""},
		Sizes:         map[string]int64{"a": 1, "b": 2, "c": 3, "d": 4},
	}}

	b := NewBuilder(hasher, notifier, logger.Nop())
	m, err := b.Build(context.Background(), notepadWithAssets())
	require.NoError(t, err)

	assert.Equal(t, 1, hasher.calls)
	assert.Equal(t, []string{"a", "b", "c", "d"}, hasher.req.AssetIDs)
	assert.Equal(t, []string{"a", "b", "c", "d"}, m.UUIDs())
	assert.Equal(t, models.AssetManifestEntry{UUID: "b", Hash: "sha256:bb", MimeType: "application/pdf", SizeBytes: 2}, m.Entries[1])
	assert.Equal(t, map[string]string{"a": "image/png", "b": "application/pdf", "c": "audio/ogg"}, m.AssetTypes)
}

func TestBuilder_Build_SkipsDroppedAssets(t *testing.T) {
	ctrl := gomock.NewController(t)

	hasher := &stubHasher{res: models.HashBatchResult{
		Hashes:    map[string]string{"a": "sha256:aa", "c": "sha256:cc"},
		MimeTypes: map[string]string{"a": "image/png", "c": "audio/ogg"},
		Dropped:   []string{"b", "d"},
	}}

	m, err := NewBuilder(hasher, mock.NewMockNotifier(ctrl), logger.Nop()).Build(context.Background(), notepadWithAssets())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, m.UUIDs())
}

func TestBuilder_Build_OversizedNotifiesAndContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mock.NewMockNotifier(ctrl)
	ctx := context.Background()

	hasher := &stubHasher{res: models.HashBatchResult{
		Hashes:               map[string]string{"a": "sha256:aa", "b": "sha256:bb", "c": "sha256:cc", "d": "sha256:dd"},
		OversizedAssetsFound: true,
	}}
	notifier.EXPECT().Notify(ctx, OversizedNotice).Times(1)

	m, err := NewBuilder(hasher, notifier, logger.Nop()).Build(ctx, notepadWithAssets())
	require.NoError(t, err)
	assert.Len(t, m.Entries, 4)
	assert.True(t, m.Contains("a"))
	assert.True(t, m.Contains("b"))
}

func TestBuilder_Build_NoAssetsSkipsHasher(t *testing.T) {
	hasher := &stubHasher{}

	m, err := NewBuilder(hasher, nil, logger.Nop()).Build(context.Background(), &models.Notepad{Title: "plain"})
	require.NoError(t, err)
	assert.Zero(t, hasher.calls)
	assert.Empty(t, m.Entries)
	assert.NotNil(t, m.AssetTypes)
}

func TestBuilder_Build_BatchFailure(t *testing.T) {
	batchErr := errors.New("hashing batch failed: pool stopped")
	hasher := &stubHasher{err: batchErr}

	_, err := NewBuilder(hasher, nil, logger.Nop()).Build(context.Background(), notepadWithAssets())
	assert.ErrorIs(t, err, batchErr)
}
