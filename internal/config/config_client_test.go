package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.Account = "0x1111111111111111111111111111111111111111"
	cfg.App.ContractAddress = "0x2222222222222222222222222222222222222222"
	cfg.App.SignerSecret = "secret"
	cfg.Adapter.LedgerAddress = "http://ledger"
	cfg.Adapter.RelayerAddress = "http://relayer"
	return cfg
}

func TestNewClientConfig_Valid(t *testing.T) {
	cfg, err := newClientConfig(validStructuredConfig())

	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), cfg.App.Account)
	assert.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), cfg.App.Contract)
	assert.Equal(t, SepoliaChainID, cfg.Network.ChainID)
	assert.Equal(t, "expense-vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Adapter.ConfirmationTimeout)
}

func TestNewClientConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "malformed account",
			mutate:  func(cfg *StructuredConfig) { cfg.App.Account = "alice" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing contract",
			mutate:  func(cfg *StructuredConfig) { cfg.App.ContractAddress = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing signer secret",
			mutate:  func(cfg *StructuredConfig) { cfg.App.SignerSecret = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "blank dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "  " },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing ledger url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.LedgerAddress = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero poll interval",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.ConfirmationPollInterval = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero chain id",
			mutate:  func(cfg *StructuredConfig) { cfg.Network.ChainID = 0 },
			wantErr: ErrInvalidNetworkConfigs,
		},
		{
			name:    "zero concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.DecryptConcurrency = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			_, err := newClientConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
