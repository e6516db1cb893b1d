package service

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/notepad-sync/internal/logger"
)

const (
	defaultSyncInterval = time.Minute
	defaultDebounce     = 500 * time.Millisecond
)

type clientSyncJob struct {
	syncService ClientSyncService
	accounts    ClientAccountService

	watchPath string
	debounce  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// SyncJobOption customizes a [ClientSyncJob].
type SyncJobOption func(*clientSyncJob)

// WithWatchedFile makes the job sync shortly after every write to path,
// usually the local database file.
func WithWatchedFile(path string) SyncJobOption {
	return func(j *clientSyncJob) {
		j.watchPath = filepath.Clean(path)
	}
}

// WithDebounce sets how long the job waits for file changes to settle.
func WithDebounce(d time.Duration) SyncJobOption {
	return func(j *clientSyncJob) {
		j.debounce = d
	}
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync for
// the remembered account. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, accounts ClientAccountService, logger *logger.Logger, opts ...SyncJobOption) ClientSyncJob {
	j := &clientSyncJob{
		syncService: syncService,
		accounts:    accounts,
		debounce:    defaultDebounce,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Start implements ClientSyncJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, notepadID string, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	watcher := j.newWatcher()

	go func() {
		defer j.wg.Done()
		if watcher != nil {
			defer watcher.Close()
		}

		t := time.NewTicker(interval)
		defer t.Stop()

		settle := time.NewTimer(j.debounce)
		settle.Stop()
		defer settle.Stop()

		var (
			events <-chan fsnotify.Event
			errs   <-chan error
		)
		if watcher != nil {
			events, errs = watcher.Events, watcher.Errors
		}

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.syncOnce(jobCtx, notepadID)
			case <-settle.C:
				j.syncOnce(jobCtx, notepadID)
			case ev, ok := <-events:
				if !ok {
					events = nil
					continue
				}
				if filepath.Clean(ev.Name) == j.watchPath && ev.Has(fsnotify.Write|fsnotify.Create) {
					settle.Reset(j.debounce)
				}
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				j.logger.Warn().Err(err).
					Str("func", "clientSyncJob.Start").
					Msg("file watcher error")
			}
		}
	}()
}

// newWatcher watches the directory of the watched file. Editors and sqlite
// replace files, so watching the file itself would lose events.
func (j *clientSyncJob) newWatcher() *fsnotify.Watcher {
	if j.watchPath == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.newWatcher").
			Msg("file watching disabled")
		return nil
	}

	if err = watcher.Add(filepath.Dir(j.watchPath)); err != nil {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.newWatcher").
			Str("path", j.watchPath).
			Msg("file watching disabled")
		watcher.Close()
		return nil
	}

	return watcher
}

func (j *clientSyncJob) syncOnce(ctx context.Context, notepadID string) {
	identity, err := j.accounts.Identity(ctx)
	if err != nil {
		j.logger.Warn().Err(err).
			Str("func", "clientSyncJob.syncOnce").
			Msg("skipping sync, no account")
		return
	}

	result, err := j.syncService.Sync(ctx, identity, notepadID)
	if err != nil {
		j.logger.Err(err).
			Str("func", "clientSyncJob.syncOnce").
			Str("notepad_id", notepadID).
			Msg("background sync failed")
		return
	}

	if result.IsPartial() {
		j.logger.Warn().Err(result.Err()).
			Str("func", "clientSyncJob.syncOnce").
			Str("notepad_id", notepadID).
			Msg("background sync finished with failed transfers")
	}
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
