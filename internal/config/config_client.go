package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version overrides the build version when non-empty.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the resolved remote endpoint, production or development
	// depending on UseLocal.
	BaseURL string
	// UseLocal reports whether BaseURL points at the development endpoint.
	UseLocal bool
	// RequestTimeout is the timeout of parameterless outbound calls.
	RequestTimeout time.Duration
}

// ClientSync holds the retry, fan-out and hashing settings of a sync attempt.
type ClientSync struct {
	MaxAssetSize        int64
	TransferConcurrency int
	APIAttempts         int
	BlobRetries         int
	RetryDelay          time.Duration
	RequestsPerSecond   float64
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the sqlite database path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// HashWorkers is the number of hashing goroutines.
	HashWorkers int
	// HashQueueSize is the capacity of the hashing job queue.
	HashQueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the resolved endpoint and timeout.
	Adapter ClientAdapter
	// Sync contains sync attempt tuning.
	Sync ClientSync
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], resolves the endpoint
// (ADAPTER_USE_LOCAL selects ADAPTER_LOCAL_ADDRESS over ADAPTER_ADDRESS), and
// validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps cfg into a validated [ClientConfig].
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	address := cfg.Adapter.HTTPAddress
	if cfg.Adapter.UseLocal {
		address = cfg.Adapter.LocalHTTPAddress
	}

	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{Version: cfg.App.Version},
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			UseLocal:       cfg.Adapter.UseLocal,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Sync: ClientSync{
			MaxAssetSize:        cfg.Sync.MaxAssetSize,
			TransferConcurrency: cfg.Sync.TransferConcurrency,
			APIAttempts:         cfg.Sync.APIAttempts,
			BlobRetries:         cfg.Sync.BlobRetries,
			RetryDelay:          cfg.Sync.RetryDelay,
			RequestsPerSecond:   cfg.Sync.RequestsPerSecond,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			HashWorkers:   cfg.Workers.HashWorkers,
			HashQueueSize: cfg.Workers.HashQueueSize,
		},
	}

	return clientCfg, clientCfg.validate()
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
