// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Default values applied when no source sets the corresponding field.
const (
	DefaultHTTPAddress      = "https://getmicropad.com"
	DefaultLocalHTTPAddress = "http://localhost:48025"
	DefaultRequestTimeout   = 10 * time.Second
	DefaultDSN              = "notepad-sync.db"

	DefaultMaxAssetSize        = 10 << 20
	DefaultTransferConcurrency = 4
	DefaultAPIAttempts         = 3
	DefaultBlobRetries         = 2

	DefaultSyncInterval  = time.Minute
	DefaultHashWorkers   = 2
	DefaultHashQueueSize = 16
)

// StructuredConfig is the top-level configuration container for the
// notepad-sync client. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON or YAML file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoint addresses and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the hashing ceiling, transfer fan-out and retry policy.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds configuration for the local sqlite database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. The format is chosen from the file extension.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version overrides the build version reported in the User-Agent header.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the settings of the outbound transport.
type Adapter struct {
	// HTTPAddress is the production base URL of the remote endpoint
	// (e.g. "https://getmicropad.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// LocalHTTPAddress is the base URL of a development server.
	// Env: ADAPTER_LOCAL_ADDRESS
	LocalHTTPAddress string `env:"LOCAL_ADDRESS"`

	// UseLocal switches every call to LocalHTTPAddress.
	// Env: ADAPTER_USE_LOCAL
	UseLocal bool `env:"USE_LOCAL"`

	// RequestTimeout bounds parameterless (GET) calls. Calls carrying a
	// payload are never bounded.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Sync holds the tuning knobs of a sync attempt.
type Sync struct {
	// MaxAssetSize is the per-asset size ceiling in bytes. Assets above it
	// raise the aggregate oversized flag of a hashing batch.
	// Env: SYNC_MAX_ASSET_SIZE
	MaxAssetSize int64 `env:"MAX_ASSET_SIZE"`

	// TransferConcurrency limits concurrent blob transfers in one attempt.
	// Env: SYNC_TRANSFER_CONCURRENCY
	TransferConcurrency int `env:"TRANSFER_CONCURRENCY"`

	// APIAttempts is the total number of attempts of one API call.
	// Env: SYNC_API_ATTEMPTS
	APIAttempts int `env:"API_ATTEMPTS"`

	// BlobRetries is the number of retries of one blob GET/PUT.
	// Env: SYNC_BLOB_RETRIES
	BlobRetries int `env:"BLOB_RETRIES"`

	// RetryDelay is the constant delay between retries. Zero retries
	// immediately.
	// Env: SYNC_RETRY_DELAY
	RetryDelay time.Duration `env:"RETRY_DELAY"`

	// RequestsPerSecond limits outbound requests. Zero disables the limit.
	// Env: SYNC_REQUESTS_PER_SECOND
	RequestsPerSecond float64 `env:"REQUESTS_PER_SECOND"`
}

// Storage groups the configuration for the local persistence.
type Storage struct {
	// DB holds the sqlite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// HashWorkers is the number of hashing goroutines.
	// Env: WORKERS_HASH_WORKERS
	HashWorkers int `env:"HASH_WORKERS"`

	// HashQueueSize is the capacity of the hashing job queue.
	// Env: WORKERS_HASH_QUEUE_SIZE
	HashQueueSize int `env:"HASH_QUEUE_SIZE"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:      DefaultHTTPAddress,
			LocalHTTPAddress: DefaultLocalHTTPAddress,
			RequestTimeout:   DefaultRequestTimeout,
		},
		Sync: Sync{
			MaxAssetSize:        DefaultMaxAssetSize,
			TransferConcurrency: DefaultTransferConcurrency,
			APIAttempts:         DefaultAPIAttempts,
			BlobRetries:         DefaultBlobRetries,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{
			SyncInterval:  DefaultSyncInterval,
			HashWorkers:   DefaultHashWorkers,
			HashQueueSize: DefaultHashQueueSize,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. The first source that sets a field wins:
//  1. Command-line flags registered on fs
//  2. Environment variables
//  3. JSON or YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(fs).
		withEnv().
		withFile().
		withDefaults().
		build()
}
