// Package manifest derives the asset manifest of a notepad.
package manifest

import (
	"context"

	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/notify"
	"github.com/MKhiriev/notepad-sync/models"
)

// OversizedNotice is shown when at least one asset exceeds the size ceiling.
const OversizedNotice = "Some assets in this notepad are larger than the sync size limit. " +
	"They may be rejected unless the account is upgraded."

// Hasher hashes a batch of assets. It is implemented by *hasher.Pool.
type Hasher interface {
	HashBatch(ctx context.Context, req models.HashBatchRequest) (models.HashBatchResult, error)
}

type Builder struct {
	hasher   Hasher
	notifier notify.Notifier
	logger   *logger.Logger
}

func NewBuilder(hasher Hasher, notifier notify.Notifier, logger *logger.Logger) *Builder {
	return &Builder{
		hasher:   hasher,
		notifier: notifier,
		logger:   logger,
	}
}

// Build hashes every asset referenced by the notepad in one batch and
// returns the manifest in first-seen order. Assets the hasher dropped are
// absent. A batch failure is returned as is.
func (b *Builder) Build(ctx context.Context, notepad *models.Notepad) (models.AssetManifest, error) {
	refs := AssetRefs(notepad)
	manifest := models.AssetManifest{AssetTypes: make(map[string]string, len(refs))}
	if len(refs) == 0 {
		return manifest, nil
	}

	res, err := b.hasher.HashBatch(ctx, models.HashBatchRequest{AssetIDs: refs})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "Builder.Build").
			Int("assets", len(refs)).
			Msg("hashing batch failed")
		return models.AssetManifest{}, err
	}

	for _, id := range refs {
		hash, ok := res.Hashes[id]
		if !ok {
			continue
		}

		manifest.Entries = append(manifest.Entries, models.AssetManifestEntry{
			UUID:      id,
			Hash:      hash,
			MimeType:  res.MimeTypes[id],
			SizeBytes: res.Sizes[id],
		})
		if mimeType := res.MimeTypes[id]; mimeType != "" {
			manifest.AssetTypes[id] = mimeType
		}
	}

	if res.OversizedAssetsFound && b.notifier != nil {
		b.notifier.Notify(ctx, OversizedNotice)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "Builder.Build").
		Str("correlation_id", res.CorrelationID).
		Int("entries", len(manifest.Entries)).
		Int("dropped", len(res.Dropped)).
		Msg("asset manifest built")

	return manifest, nil
}

// AssetRefs lists the asset UUIDs referenced by note elements in tree order
// followed by the notepad-level assets. Every UUID appears once.
func AssetRefs(notepad *models.Notepad) []string {
	if notepad == nil {
		return nil
	}

	flat := notepad.Flatten()
	seen := make(map[string]struct{})
	var refs []string

	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		refs = append(refs, id)
	}

	for _, ref := range flat.NoteOrder {
		for _, el := range flat.Notes[ref].Elements {
			add(el.AssetRef())
		}
	}
	for _, id := range flat.Assets {
		add(id)
	}

	return refs
}
