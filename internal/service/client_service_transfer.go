// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/notepad-sync/internal/adapter"
	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/models"
)

const octetStream = "application/octet-stream"

type assetTransferExecutor struct {
	server      adapter.ServerAdapter
	blobs       adapter.BlobTransport
	assets      store.AssetStore
	concurrency int
	logger      *logger.Logger
}

// NewAssetTransferExecutor creates an executor that runs at most
// cfg.TransferConcurrency transfers at once.
func NewAssetTransferExecutor(
	server adapter.ServerAdapter,
	blobs adapter.BlobTransport,
	assets store.AssetStore,
	cfg config.ClientSync,
	logger *logger.Logger,
) AssetTransferExecutor {
	concurrency := cfg.TransferConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	return &assetTransferExecutor{
		server:      server,
		blobs:       blobs,
		assets:      assets,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (e *assetTransferExecutor) Execute(
	ctx context.Context,
	syncID string,
	identity models.SyncIdentity,
	plan models.TransferPlan,
) (models.TransferResult, error) {
	var (
		result    models.TransferResult
		uploads   models.AssetLinks
		downloads models.AssetLinks
		err       error
	)

	if plan.IsEmpty() {
		return result, nil
	}

	if len(plan.AssetsToUpload) > 0 {
		uploads, err = e.server.AssetUploadLinks(ctx, syncID, identity, plan.AssetsToUpload)
		switch {
		case adapter.IsNotFound(err):
			// servers without sync/upload_assets hand out the links in the
			// sync/upload response instead
			logger.FromContext(ctx).Debug().
				Str("func", "assetTransferExecutor.Execute").
				Str("sync_id", syncID).
				Int("assets", len(plan.AssetsToUpload)).
				Msg("upload links endpoint unavailable, deferring uploads to document upload")
			uploads = nil
		case err != nil:
			return result, fmt.Errorf("obtain upload links: %w", err)
		default:
			uploads = e.withLinks(uploads, plan.AssetsToUpload, &result)
		}
	}

	if len(plan.AssetsToDownload) > 0 {
		downloads, err = e.server.AssetDownloadLinks(ctx, syncID, plan.AssetsToDownload)
		if err != nil {
			return result, fmt.Errorf("obtain download links: %w", err)
		}
		downloads = e.withLinks(downloads, plan.AssetsToDownload, &result)
	}

	transferred, err := e.Transfer(ctx, uploads, downloads)
	result.Merge(transferred)

	return result, err
}

// withLinks keeps the links of ids and records ids without a link as failed.
func (e *assetTransferExecutor) withLinks(links models.AssetLinks, ids []string, result *models.TransferResult) models.AssetLinks {
	kept := make(models.AssetLinks, len(ids))
	for _, id := range ids {
		url, ok := links[id]
		if !ok || url == "" {
			result.Merge(models.TransferResult{Failed: map[string]error{id: ErrMissingTransferLink}})
			continue
		}
		kept[id] = url
	}
	return kept
}

func (e *assetTransferExecutor) Transfer(ctx context.Context, uploads, downloads models.AssetLinks) (models.TransferResult, error) {
	var (
		mu     sync.Mutex
		result models.TransferResult
	)

	record := func(id string, err error) {
		mu.Lock()
		defer mu.Unlock()

		if err == nil {
			result.Succeeded = append(result.Succeeded, id)
			return
		}
		if result.Failed == nil {
			result.Failed = make(map[string]error)
		}
		result.Failed[id] = err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.concurrency)

	run := func(id, url string, move func(context.Context, string, string) error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				record(id, err)
				return nil
			}

			err := move(gctx, id, url)
			record(id, err)

			if adapter.IsTierLimit(err) {
				return err
			}
			if err != nil {
				logger.FromContext(ctx).Warn().Err(err).
					Str("func", "assetTransferExecutor.Transfer").
					Str("asset", id).
					Msg("asset transfer failed after retries")
			}
			return nil
		})
	}

	for _, id := range sortedIDs(uploads) {
		run(id, uploads[id], e.upload)
	}
	for _, id := range sortedIDs(downloads) {
		run(id, downloads[id], e.download)
	}

	err := g.Wait()
	sort.Strings(result.Succeeded)

	if err != nil {
		return result, err
	}
	if err = ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (e *assetTransferExecutor) upload(ctx context.Context, id, url string) error {
	asset, err := e.assets.ReadAsset(ctx, id)
	if err != nil {
		return fmt.Errorf("read asset: %w", err)
	}

	if err = e.blobs.UploadAsset(ctx, url, asset); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "assetTransferExecutor.upload").
		Str("asset", id).
		Int64("size", asset.Size()).
		Msg("asset uploaded")
	return nil
}

func (e *assetTransferExecutor) download(ctx context.Context, id, url string) error {
	data, contentType, err := e.blobs.DownloadAsset(ctx, url)
	if err != nil {
		return err
	}

	asset, err := decodeDownloadedAsset(id, data, contentType)
	if err != nil {
		return err
	}

	if err = e.assets.WriteAsset(ctx, asset); err != nil {
		return fmt.Errorf("store asset: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "assetTransferExecutor.download").
		Str("asset", id).
		Int64("size", asset.Size()).
		Msg("asset downloaded")
	return nil
}

// decodeDownloadedAsset accepts raw bytes or a base64 data URI. When the
// server sent no useful Content-Type the type is sniffed from the payload.
func decodeDownloadedAsset(id string, data []byte, contentType string) (models.Asset, error) {
	if bytes.HasPrefix(data, []byte("data:")) {
		asset, err := models.DecodeDataURI(id, string(data))
		if err != nil {
			return models.Asset{}, err
		}
		data, contentType = asset.Data, asset.MimeType
	}

	mimeType, _, _ := strings.Cut(contentType, ";")
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" || mimeType == octetStream {
		mimeType = mimetype.Detect(data).String()
	}

	return models.Asset{UUID: id, MimeType: mimeType, Data: data}, nil
}

func sortedIDs(links models.AssetLinks) []string {
	ids := make([]string, 0, len(links))
	for id := range links {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
