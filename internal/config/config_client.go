package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/pflag"
)

// ClientApp holds the identities and secrets used by the client.
type ClientApp struct {
	// Account is the connected wallet account.
	Account common.Address
	// Contract is the ledger service identity.
	Contract common.Address
	// SignerSecret is the decryption permit secret.
	SignerSecret string
	// PermitTTL is the lifetime of a decryption permit.
	PermitTTL time.Duration
	// HashKey is the HMAC key for the request integrity header.
	HashKey string
	// LogFile is the JSON log destination.
	LogFile string
}

// ClientNetwork holds the designated network.
type ClientNetwork struct {
	ChainID uint64
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// LedgerAddress is the ledger gateway endpoint.
	LedgerAddress string
	// RelayerAddress is the relayer endpoint.
	RelayerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// ConfirmationTimeout bounds the wait for a transaction confirmation.
	ConfirmationTimeout time.Duration
	// ConfirmationPollInterval is the delay between status polls.
	ConfirmationPollInterval time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file.
	DSN string
	// MaxPageCount caps the database size; zero means unlimited.
	MaxPageCount int
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientServer holds the reporting surface settings.
type ClientServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SignalsInterval defines how often account/network signals are polled.
	SignalsInterval time.Duration
	// DecryptConcurrency bounds concurrent per-record decryptions.
	DecryptConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Network ClientNetwork
	Adapter ClientAdapter
	Storage ClientStorage
	Server  ClientServer
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields into
// typed values, and validates the resulting [ClientConfig].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	if !common.IsHexAddress(cfg.App.Account) {
		return nil, fmt.Errorf("%w: account %q", ErrInvalidAppConfigs, cfg.App.Account)
	}
	if !common.IsHexAddress(cfg.App.ContractAddress) {
		return nil, fmt.Errorf("%w: contract %q", ErrInvalidAppConfigs, cfg.App.ContractAddress)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Account:      common.HexToAddress(cfg.App.Account),
			Contract:     common.HexToAddress(cfg.App.ContractAddress),
			SignerSecret: cfg.App.SignerSecret,
			PermitTTL:    cfg.App.PermitTTL,
			HashKey:      cfg.App.HashKey,
			LogFile:      cfg.App.LogFile,
		},
		Network: ClientNetwork{ChainID: cfg.Network.ChainID},
		Adapter: ClientAdapter{
			LedgerAddress:            cfg.Adapter.LedgerAddress,
			RelayerAddress:           cfg.Adapter.RelayerAddress,
			RequestTimeout:           cfg.Adapter.RequestTimeout,
			ConfirmationTimeout:      cfg.Adapter.ConfirmationTimeout,
			ConfirmationPollInterval: cfg.Adapter.ConfirmationPollInterval,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN:          cfg.Storage.DB.DSN,
				MaxPageCount: cfg.Storage.DB.MaxPageCount,
			},
		},
		Server: ClientServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: ClientWorkers{
			SignalsInterval:    cfg.Workers.SignalsInterval,
			DecryptConcurrency: cfg.Workers.DecryptConcurrency,
		},
	}

	return clientCfg, clientCfg.validate()
}
