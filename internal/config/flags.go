package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	FlagConfig              = "config"
	FlagAddress             = "address"
	FlagLocalAddress        = "local-address"
	FlagUseLocal            = "local"
	FlagRequestTimeout      = "request-timeout"
	FlagDatabase            = "db"
	FlagMaxAssetSize        = "max-asset-size"
	FlagTransferConcurrency = "transfer-concurrency"
	FlagAPIAttempts         = "api-attempts"
	FlagBlobRetries         = "blob-retries"
	FlagRetryDelay          = "retry-delay"
	FlagRequestsPerSecond   = "rate-limit"
	FlagSyncInterval        = "sync-interval"
	FlagHashWorkers         = "hash-workers"
)

// RegisterFlags defines every configuration flag on fs. All flags default to
// the zero value so that an unset flag never shadows env, file or defaults.
//
// Flags:
//
//	-c/--config          JSON or YAML file path with configs
//	-a/--address         remote endpoint base URL
//	--local-address      development endpoint base URL
//	--local              use the development endpoint
//	--request-timeout    timeout of parameterless calls (e.g. "10s")
//	-d/--db              sqlite database path
//	--max-asset-size     per-asset size ceiling in bytes
//	--transfer-concurrency
//	--api-attempts       total attempts of one API call
//	--blob-retries       retries of one blob transfer
//	--retry-delay        constant delay between retries
//	--rate-limit         outbound requests per second
//	--sync-interval      background sync period
//	--hash-workers       number of hashing goroutines
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON or YAML config file path")
	fs.StringP(FlagAddress, "a", "", "Remote endpoint base URL")
	fs.String(FlagLocalAddress, "", "Development endpoint base URL")
	fs.Bool(FlagUseLocal, false, "Use the development endpoint")
	fs.Duration(FlagRequestTimeout, 0, "Timeout of parameterless calls (e.g., 10s)")
	fs.StringP(FlagDatabase, "d", "", "Local database path")
	fs.Int64(FlagMaxAssetSize, 0, "Per-asset size ceiling in bytes")
	fs.Int(FlagTransferConcurrency, 0, "Concurrent asset transfers")
	fs.Int(FlagAPIAttempts, 0, "Total attempts of one API call")
	fs.Int(FlagBlobRetries, 0, "Retries of one asset transfer")
	fs.Duration(FlagRetryDelay, 0, "Delay between retries (e.g., 500ms)")
	fs.Float64(FlagRequestsPerSecond, 0, "Outbound requests per second, 0 disables the limit")
	fs.Duration(FlagSyncInterval, 0, "Background sync period (e.g., 1m)")
	fs.Int(FlagHashWorkers, 0, "Number of hashing workers")
}

// ParseFlags reads the flags registered by [RegisterFlags] from an already
// parsed fs.
func ParseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	var (
		cfg StructuredConfig
		err error
	)

	get := func(name string, read func(string) error) {
		if err != nil {
			return
		}
		if rerr := read(name); rerr != nil {
			err = fmt.Errorf("error reading flag %q: %w", name, rerr)
		}
	}

	get(FlagConfig, func(n string) (e error) { cfg.ConfigFilePath, e = fs.GetString(n); return })
	get(FlagAddress, func(n string) (e error) { cfg.Adapter.HTTPAddress, e = fs.GetString(n); return })
	get(FlagLocalAddress, func(n string) (e error) { cfg.Adapter.LocalHTTPAddress, e = fs.GetString(n); return })
	get(FlagUseLocal, func(n string) (e error) { cfg.Adapter.UseLocal, e = fs.GetBool(n); return })
	get(FlagRequestTimeout, func(n string) (e error) { cfg.Adapter.RequestTimeout, e = fs.GetDuration(n); return })
	get(FlagDatabase, func(n string) (e error) { cfg.Storage.DB.DSN, e = fs.GetString(n); return })
	get(FlagMaxAssetSize, func(n string) (e error) { cfg.Sync.MaxAssetSize, e = fs.GetInt64(n); return })
	get(FlagTransferConcurrency, func(n string) (e error) { cfg.Sync.TransferConcurrency, e = fs.GetInt(n); return })
	get(FlagAPIAttempts, func(n string) (e error) { cfg.Sync.APIAttempts, e = fs.GetInt(n); return })
	get(FlagBlobRetries, func(n string) (e error) { cfg.Sync.BlobRetries, e = fs.GetInt(n); return })
	get(FlagRetryDelay, func(n string) (e error) { cfg.Sync.RetryDelay, e = fs.GetDuration(n); return })
	get(FlagRequestsPerSecond, func(n string) (e error) { cfg.Sync.RequestsPerSecond, e = fs.GetFloat64(n); return })
	get(FlagSyncInterval, func(n string) (e error) { cfg.Workers.SyncInterval, e = fs.GetDuration(n); return })
	get(FlagHashWorkers, func(n string) (e error) { cfg.Workers.HashWorkers, e = fs.GetInt(n); return })

	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
