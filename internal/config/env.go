// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// byteSizeUnits are the suffixes accepted for size variables such as
// SYNC_MAX_ASSET_SIZE. Longer suffixes come first so "MiB" wins over "B".
var byteSizeUnits = []struct {
	suffix string
	factor int64
}{
	{"GiB", 1 << 30},
	{"MiB", 1 << 20},
	{"KiB", 1 << 10},
	{"GB", 1_000_000_000},
	{"MB", 1_000_000},
	{"KB", 1_000},
	{"B", 1},
}

// parseEnv populates cfg from environment variables. Fields are mapped via
// their `env` and `envPrefix` tags defined on [StructuredConfig] and its
// nested types. int64 fields hold byte sizes and accept a unit suffix
// ("10MiB", "500KB") as well as a plain number of bytes.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(int64(0)): func(v string) (any, error) {
				return parseByteSize(v)
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func parseByteSize(value string) (int64, error) {
	value = strings.TrimSpace(value)

	factor := int64(1)
	for _, unit := range byteSizeUnits {
		if strings.HasSuffix(value, unit.suffix) {
			factor = unit.factor
			value = strings.TrimSpace(strings.TrimSuffix(value, unit.suffix))
			break
		}
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", value, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid byte size %q: negative", value)
	}

	return n * factor, nil
}
