package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file. The
// same layout is accepted in JSON and YAML.
type StructuredFileConfig struct {
	App struct {
		Version string `json:"version" yaml:"version"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		HTTPAddress      string   `json:"http_address" yaml:"http_address"`
		LocalHTTPAddress string   `json:"local_http_address" yaml:"local_http_address"`
		UseLocal         bool     `json:"use_local" yaml:"use_local"`
		RequestTimeout   Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Sync struct {
		MaxAssetSize        int64    `json:"max_asset_size" yaml:"max_asset_size"`
		TransferConcurrency int      `json:"transfer_concurrency" yaml:"transfer_concurrency"`
		APIAttempts         int      `json:"api_attempts" yaml:"api_attempts"`
		BlobRetries         int      `json:"blob_retries" yaml:"blob_retries"`
		RetryDelay          Duration `json:"retry_delay" yaml:"retry_delay"`
		RequestsPerSecond   float64  `json:"requests_per_second" yaml:"requests_per_second"`
	} `json:"sync,omitempty" yaml:"sync,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		SyncInterval  Duration `json:"sync_interval" yaml:"sync_interval"`
		HashWorkers   int      `json:"hash_workers" yaml:"hash_workers"`
		HashQueueSize int      `json:"hash_queue_size" yaml:"hash_queue_size"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`
}

// parseFile reads a config file. Files ending in .yaml or .yml are decoded
// as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fileCfg.toStructured(), nil
}

func (f StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: f.App.Version},
		Adapter: Adapter{
			HTTPAddress:      f.Adapter.HTTPAddress,
			LocalHTTPAddress: f.Adapter.LocalHTTPAddress,
			UseLocal:         f.Adapter.UseLocal,
			RequestTimeout:   time.Duration(f.Adapter.RequestTimeout),
		},
		Sync: Sync{
			MaxAssetSize:        f.Sync.MaxAssetSize,
			TransferConcurrency: f.Sync.TransferConcurrency,
			APIAttempts:         f.Sync.APIAttempts,
			BlobRetries:         f.Sync.BlobRetries,
			RetryDelay:          time.Duration(f.Sync.RetryDelay),
			RequestsPerSecond:   f.Sync.RequestsPerSecond,
		},
		Storage: Storage{DB: DB{DSN: f.Storage.DB.DSN}},
		Workers: Workers{
			SyncInterval:  time.Duration(f.Workers.SyncInterval),
			HashWorkers:   f.Workers.HashWorkers,
			HashQueueSize: f.Workers.HashQueueSize,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and YAML. Plain numbers are nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(s); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*d = Duration(n)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}
