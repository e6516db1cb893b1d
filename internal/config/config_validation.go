// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged [StructuredConfig] for values that no source
// could ever make valid.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxAssetSize < 0 || cfg.Sync.TransferConcurrency < 0 ||
		cfg.Sync.APIAttempts < 0 || cfg.Sync.BlobRetries < 0 {
		return fmt.Errorf("%w: negative value", ErrInvalidSyncConfigs)
	}

	if cfg.Sync.RetryDelay < 0 || cfg.Sync.RequestsPerSecond < 0 {
		return fmt.Errorf("%w: negative retry delay or rate", ErrInvalidSyncConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.MaxAssetSize <= 0 || cfg.Sync.TransferConcurrency <= 0 || cfg.Sync.APIAttempts <= 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.HashWorkers <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
