// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/notepad-sync/internal/logger"
	"github.com/MKhiriev/notepad-sync/models"
)

// spySyncService counts Sync calls. Only Sync is implemented.
type spySyncService struct {
	ClientSyncService

	calls atomic.Int64
	err   error

	mu        sync.Mutex
	notepadID string
	identity  models.SyncIdentity
}

func (s *spySyncService) Sync(_ context.Context, identity models.SyncIdentity, notepadID string) (models.SyncResult, error) {
	s.calls.Add(1)

	s.mu.Lock()
	s.notepadID, s.identity = notepadID, identity
	s.mu.Unlock()

	return models.SyncResult{Direction: models.DirectionNone}, s.err
}

func (s *spySyncService) last() (string, models.SyncIdentity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notepadID, s.identity
}

// stubAccounts returns a fixed identity. Only Identity is implemented.
type stubAccounts struct {
	ClientAccountService

	identity models.SyncIdentity
	err      error
}

func (a stubAccounts) Identity(context.Context) (models.SyncIdentity, error) {
	return a.identity, a.err
}

func newTestSyncJob(spy *spySyncService, opts ...SyncJobOption) ClientSyncJob {
	return NewClientSyncJob(spy, stubAccounts{identity: identity}, logger.Nop(), opts...)
}

// ── NewClientSyncJob ─────────────────────────────────────────────────────────

func TestNewClientSyncJob_ReturnsInterface(t *testing.T) {
	job := newTestSyncJob(&spySyncService{})
	require.NotNil(t, job)

	var _ ClientSyncJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_CallsSync(t *testing.T) {
	spy := &spySyncService{}
	job := newTestSyncJob(spy)

	job.Start(context.Background(), testNotepadID, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Sync should run on every tick, ran %d times", got)
}

func TestClientSyncJob_PassesNotepadAndIdentity(t *testing.T) {
	spy := &spySyncService{}
	job := newTestSyncJob(spy)

	job.Start(context.Background(), "np-42", 10*time.Millisecond)
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	notepadID, got := spy.last()
	assert.Equal(t, "np-42", notepadID)
	assert.Equal(t, identity, got)
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySyncService{}
	job := newTestSyncJob(spy)

	job.Start(context.Background(), testNotepadID, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no Sync calls are expected after Stop")
}

func TestClientSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := newTestSyncJob(&spySyncService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_DoubleStop_NoPanic(t *testing.T) {
	job := newTestSyncJob(&spySyncService{})

	job.Start(context.Background(), testNotepadID, 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spySyncService{}
		job := newTestSyncJob(spy)

		job.Start(context.Background(), testNotepadID, interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, spy.calls.Load(), "default interval is one minute")
	}
}

func TestClientSyncJob_Restart_StopsPrevious(t *testing.T) {
	spy := &spySyncService{}
	job := newTestSyncJob(spy)
	ctx := context.Background()

	job.Start(ctx, "np-1", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := spy.calls.Load()
	assert.Positive(t, callsBefore)

	job.Start(ctx, "np-2", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	notepadID, _ := spy.last()
	assert.Equal(t, "np-2", notepadID)
	assert.Greater(t, spy.calls.Load(), callsBefore)
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := newTestSyncJob(&spySyncService{})
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, testNotepadID, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after the context was cancelled")
	}
}

func TestClientSyncJob_SyncError_DoesNotStopJob(t *testing.T) {
	spy := &spySyncService{err: assert.AnError}
	job := newTestSyncJob(spy)

	job.Start(context.Background(), testNotepadID, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "failed syncs must not stop the job, ran %d times", got)
}

func TestClientSyncJob_NoAccount_SkipsSync(t *testing.T) {
	spy := &spySyncService{}
	job := NewClientSyncJob(spy, stubAccounts{err: ErrNotLoggedIn}, logger.Nop())

	job.Start(context.Background(), testNotepadID, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

// ── file watching ────────────────────────────────────────────────────────────

func TestClientSyncJob_WatchedFile_TriggersSync(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notepad-sync.db")
	require.NoError(t, os.WriteFile(path, []byte("v1"), 0o600))

	spy := &spySyncService{}
	job := newTestSyncJob(spy, WithWatchedFile(path), WithDebounce(10*time.Millisecond))

	job.Start(context.Background(), testNotepadID, time.Hour)
	defer job.Stop()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("v2"), 0o600))

	assert.Eventually(t, func() bool {
		return spy.calls.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestClientSyncJob_WatchedFile_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notepad-sync.db")

	spy := &spySyncService{}
	job := newTestSyncJob(spy, WithWatchedFile(path), WithDebounce(10*time.Millisecond))

	job.Start(context.Background(), testNotepadID, time.Hour)
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o600))
	time.Sleep(80 * time.Millisecond)
	job.Stop()

	assert.Zero(t, spy.calls.Load())
}

func TestClientSyncJob_WatchedFile_MissingDirectory(t *testing.T) {
	spy := &spySyncService{}
	job := newTestSyncJob(spy, WithWatchedFile(filepath.Join(t.TempDir(), "missing", "db")))

	job.Start(context.Background(), testNotepadID, 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Positive(t, spy.calls.Load(), "ticker keeps working without a watcher")
}
