// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// envParsers extends the caarlos0/env defaults. Unsigned values accept a 0x
// prefix so chain ids can be given the way wallets report them (0xaa36a7).
var envParsers = map[reflect.Type]env.ParserFunc{
	reflect.TypeFor[uint64](): func(v string) (any, error) {
		return strconv.ParseUint(v, 0, 64)
	},
}

// parseEnv populates cfg from environment variables following the `env` and
// `envPrefix` tags of [StructuredConfig].
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{FuncMap: envParsers}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
