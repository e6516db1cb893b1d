// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hasher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/notepad-sync/internal/config"
	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/internal/store"
	"github.com/MKhiriev/notepad-sync/internal/utils"
	"github.com/MKhiriev/notepad-sync/models"
)

// Completion is the single event published for every accepted batch.
// Exactly one of Result and Err is meaningful.
type Completion struct {
	CorrelationID string
	Result        models.HashBatchResult
	Err           error
}

type job struct {
	ctx           context.Context
	correlationID string
	assetIDs      []string
}

// Pool is the hashing worker. It must be started with Run before batches
// are submitted and released with Stop.
type Pool struct {
	assets       store.AssetReader
	ids          *utils.UUIDGenerator
	workerCount  int
	maxAssetSize int64

	jobs        chan job
	completions chan Completion

	mu      sync.Mutex
	waiters map[string]chan Completion

	running  atomic.Bool
	done     chan struct{}
	runOnce  sync.Once
	stopOnce sync.Once
	wg       sync.WaitGroup

	logger *logger.Logger
}

// NewPool creates an idle pool that loads payloads through assets. Assets
// larger than syncCfg.MaxAssetSize raise the oversized flag of their batch.
func NewPool(assets store.AssetReader, workersCfg config.ClientWorkers, syncCfg config.ClientSync, logger *logger.Logger) *Pool {
	workerCount := workersCfg.HashWorkers
	if workerCount <= 0 {
		workerCount = 1
	}
	queueSize := workersCfg.HashQueueSize
	if queueSize < 0 {
		queueSize = 0
	}

	return &Pool{
		assets:       assets,
		ids:          utils.NewUUIDGenerator(),
		workerCount:  workerCount,
		maxAssetSize: syncCfg.MaxAssetSize,
		jobs:         make(chan job, queueSize),
		completions:  make(chan Completion, workerCount),
		waiters:      make(map[string]chan Completion),
		done:         make(chan struct{}),
		logger:       logger,
	}
}

// Run starts the workers and the dispatcher. It returns immediately and is
// a no-op on subsequent calls.
func (p *Pool) Run() {
	p.runOnce.Do(func() {
		p.logger.Info().
			Str("func", "Pool.Run").
			Int("workers", p.workerCount).
			Msg("starting hasher pool")

		p.wg.Add(p.workerCount + 1)
		for i := 0; i < p.workerCount; i++ {
			go p.work()
		}
		go p.dispatch()

		p.running.Store(true)
	})
}

// Stop shuts the pool down and waits for its goroutines. Batches still in
// flight fail with [ErrPoolStopped].
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.running.Store(false)
		close(p.done)
		p.wg.Wait()

		p.mu.Lock()
		for id, waiter := range p.waiters {
			waiter <- Completion{CorrelationID: id, Err: ErrPoolStopped}
			delete(p.waiters, id)
		}
		p.mu.Unlock()
	})
}

// HashBatch hashes the assets named in req and blocks until its completion
// arrives or ctx is done. Per-asset failures are absent from the result and
// listed in Dropped. Any returned error wraps [ErrHashingBatch].
func (p *Pool) HashBatch(ctx context.Context, req models.HashBatchRequest) (models.HashBatchResult, error) {
	if !p.running.Load() {
		select {
		case <-p.done:
			return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, ErrPoolStopped)
		default:
			return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, ErrPoolNotRunning)
		}
	}

	correlationID := req.CorrelationID
	if correlationID == "" {
		correlationID = p.ids.Generate()
	}

	waiter, err := p.register(correlationID)
	if err != nil {
		return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, err)
	}

	select {
	case p.jobs <- job{ctx: ctx, correlationID: correlationID, assetIDs: req.AssetIDs}:
	case <-ctx.Done():
		p.unregister(correlationID)
		return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, ctx.Err())
	case <-p.done:
		p.unregister(correlationID)
		return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, ErrPoolStopped)
	}

	select {
	case c := <-waiter:
		if c.Err != nil {
			return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, c.Err)
		}
		return c.Result, nil
	case <-ctx.Done():
		p.unregister(correlationID)
		return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, ctx.Err())
	case <-p.done:
		p.unregister(correlationID)
		return models.HashBatchResult{}, fmt.Errorf("%w: %w", ErrHashingBatch, ErrPoolStopped)
	}
}

func (p *Pool) register(correlationID string) (chan Completion, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.waiters[correlationID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCorrelationID, correlationID)
	}

	// buffered so the dispatcher never blocks on a caller
	waiter := make(chan Completion, 1)
	p.waiters[correlationID] = waiter
	return waiter, nil
}

func (p *Pool) unregister(correlationID string) {
	p.mu.Lock()
	delete(p.waiters, correlationID)
	p.mu.Unlock()
}

func (p *Pool) work() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case j := <-p.jobs:
			c := p.hashBatch(j)
			select {
			case p.completions <- c:
			case <-p.done:
				return
			}
		}
	}
}

func (p *Pool) dispatch() {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case c := <-p.completions:
			p.mu.Lock()
			waiter, ok := p.waiters[c.CorrelationID]
			delete(p.waiters, c.CorrelationID)
			p.mu.Unlock()

			if !ok {
				p.logger.Debug().
					Str("func", "Pool.dispatch").
					Str("correlation_id", c.CorrelationID).
					Msg("completion has no waiter, caller gave up")
				continue
			}
			waiter <- c
		}
	}
}

func (p *Pool) hashBatch(j job) Completion {
	log := logger.FromContext(j.ctx)

	result := models.HashBatchResult{
		CorrelationID: j.correlationID,
		Hashes:        make(map[string]string, len(j.assetIDs)),
		MimeTypes:     make(map[string]string, len(j.assetIDs)),
		Sizes:         make(map[string]int64, len(j.assetIDs)),
	}

	for _, id := range j.assetIDs {
		if err := j.ctx.Err(); err != nil {
			return Completion{CorrelationID: j.correlationID, Err: err}
		}

		entry, err := p.hashAsset(j.ctx, id)
		if errors.Is(err, store.ErrAssetNotFound) {
			// expected on a first download: the asset is fetched later
			log.Debug().
				Str("func", "Pool.hashBatch").
				Str("correlation_id", j.correlationID).
				Str("asset", id).
				Msg("asset is not stored locally, leaving it out of the manifest")
			result.Dropped = append(result.Dropped, id)
			continue
		}
		if err != nil {
			log.Warn().Err(err).
				Str("func", "Pool.hashBatch").
				Str("correlation_id", j.correlationID).
				Str("asset", id).
				Msg("failed to hash asset, dropping it from the manifest")
			result.Dropped = append(result.Dropped, id)
			continue
		}

		result.Hashes[id] = entry.Hash
		result.MimeTypes[id] = entry.MimeType
		result.Sizes[id] = entry.SizeBytes

		if p.maxAssetSize > 0 && entry.SizeBytes > p.maxAssetSize {
			result.OversizedAssetsFound = true
		}
	}

	return Completion{CorrelationID: j.correlationID, Result: result}
}

func (p *Pool) hashAsset(ctx context.Context, id string) (entry models.AssetManifestEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while hashing: %v", r)
		}
	}()

	asset, err := p.assets.ReadAsset(ctx, id)
	if err != nil {
		return models.AssetManifestEntry{}, err
	}
	if len(asset.Data) == 0 {
		return models.AssetManifestEntry{}, ErrEmptyAsset
	}

	mimeType := asset.MimeType
	if mimeType == "" {
		mimeType = mimetype.Detect(asset.Data).String()
	}

	return models.AssetManifestEntry{
		UUID:      id,
		Hash:      utils.Digest(asset.Data).String(),
		MimeType:  mimeType,
		SizeBytes: asset.Size(),
	}, nil
}
