package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"app": {"version": "9.9.9"},
		"adapter": {
			"http_address": "https://notes.example.com",
			"local_http_address": "http://localhost:48025",
			"use_local": true,
			"request_timeout": "30s"
		},
		"sync": {
			"max_asset_size": 1024,
			"transfer_concurrency": 2,
			"api_attempts": 3,
			"blob_retries": 2,
			"retry_delay": "1s",
			"requests_per_second": 4
		},
		"storage": {"db": {"dsn": "/var/lib/notepads.db"}},
		"workers": {"sync_interval": "5m", "hash_workers": 2, "hash_queue_size": 8}
	}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "9.9.9", cfg.App.Version)
	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "http://localhost:48025", cfg.Adapter.LocalHTTPAddress)
	assert.True(t, cfg.Adapter.UseLocal)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, int64(1024), cfg.Sync.MaxAssetSize)
	assert.Equal(t, 2, cfg.Sync.TransferConcurrency)
	assert.Equal(t, time.Second, cfg.Sync.RetryDelay)
	assert.InDelta(t, 4.0, cfg.Sync.RequestsPerSecond, 0.0001)
	assert.Equal(t, "/var/lib/notepads.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 8, cfg.Workers.HashQueueSize)
	assert.Empty(t, cfg.ConfigFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", `
adapter:
  http_address: https://notes.example.com
  request_timeout: 12s
sync:
  transfer_concurrency: 7
  retry_delay: 750ms
storage:
  db:
    dsn: notepads.db
workers:
  sync_interval: 90s
`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "https://notes.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 12*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 7, cfg.Sync.TransferConcurrency)
	assert.Equal(t, 750*time.Millisecond, cfg.Sync.RetryDelay)
	assert.Equal(t, "notepads.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
}

func TestParseFile_YMLExtension(t *testing.T) {
	p := writeConfigFile(t, "config.yml", "app:\n  version: yml\n")

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, "yml", cfg.App.Version)
}

func TestParseFile_NumericDuration(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"adapter": {"request_timeout": 1000000000}}`)

	cfg, err := parseFile(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseFile_FileNotFound(t *testing.T) {
	cfg, err := parseFile("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseFile_MalformedJSON(t *testing.T) {
	p := writeConfigFile(t, "bad.json", "{not valid json")

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "json")
}

func TestParseFile_MalformedYAML(t *testing.T) {
	p := writeConfigFile(t, "bad.yaml", "adapter: [unclosed")

	cfg, err := parseFile(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "yaml")
}

func TestParseFile_InvalidDuration(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{"workers": {"sync_interval": "often"}}`)

	_, err := parseFile(p)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
