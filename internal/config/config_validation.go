// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]. Client-specific requirements live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.MaxPageCount < 0 {
		return fmt.Errorf("%w: negative max page count", ErrInvalidStorageConfigs)
	}
	if cfg.Workers.DecryptConcurrency < 0 {
		return fmt.Errorf("%w: negative decrypt concurrency", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.LedgerAddress == "" || cfg.Adapter.RelayerAddress == "" {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.ConfirmationTimeout <= 0 || cfg.Adapter.ConfirmationPollInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Network.ChainID == 0 {
		return ErrInvalidNetworkConfigs
	}

	if cfg.Workers.SignalsInterval <= 0 || cfg.Workers.DecryptConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.SignerSecret == "" || cfg.App.PermitTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
