// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// expense-vault client. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the identity of the connected account, the ledger service
	// identity and the signing material for decryption permits.
	App App `envPrefix:"APP_"`

	// Network holds the designated network the client operates against.
	Network Network `envPrefix:"NETWORK_"`

	// Adapter holds the remote ledger gateway and relayer endpoints.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local snapshot cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the address of the read-only reporting surface.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Account is the hex address of the wallet account whose ledger is
	// managed.
	// Env: APP_ACCOUNT
	Account string `env:"ACCOUNT"`

	// ContractAddress is the identity of the remote ledger service. Encrypted
	// inputs and decryption permits are bound to it.
	// Env: APP_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// SignerSecret is the secret the decryption permits are derived from.
	// Must be kept confidential.
	// Env: APP_SIGNER_SECRET
	SignerSecret string `env:"SIGNER_SECRET"`

	// PermitTTL is how long a signed decryption permit stays valid.
	// Env: APP_PERMIT_TTL
	PermitTTL time.Duration `env:"PERMIT_TTL"`

	// HashKey is the HMAC key used for the request integrity header sent
	// with mutating ledger calls.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogFile is where the client writes its JSON log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Network holds the designated network.
type Network struct {
	// ChainID is the single network identifier the client accepts.
	// Env: NETWORK_CHAIN_ID
	ChainID uint64 `env:"CHAIN_ID"`
}

// Adapter holds outbound transport settings.
type Adapter struct {
	// LedgerAddress is the base URL of the remote ledger gateway.
	// Env: ADAPTER_LEDGER_ADDRESS
	LedgerAddress string `env:"LEDGER_ADDRESS"`

	// RelayerAddress is the base URL of the confidential-computation relayer.
	// Env: ADAPTER_RELAYER_ADDRESS
	RelayerAddress string `env:"RELAYER_ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ConfirmationTimeout bounds the wait for a submitted transaction.
	// Env: ADAPTER_CONFIRMATION_TIMEOUT
	ConfirmationTimeout time.Duration `env:"CONFIRMATION_TIMEOUT"`

	// ConfirmationPollInterval is the delay between transaction status polls.
	// Env: ADAPTER_CONFIRMATION_POLL_INTERVAL
	ConfirmationPollInterval time.Duration `env:"CONFIRMATION_POLL_INTERVAL"`
}

// Storage groups local storage settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite snapshot cache settings.
type DB struct {
	// DSN is the SQLite database file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxPageCount caps the database size in pages; zero keeps the SQLite
	// default.
	// Env: STORAGE_DB_MAX_PAGE_COUNT
	MaxPageCount int `env:"MAX_PAGE_COUNT"`
}

// Server holds the reporting surface settings.
type Server struct {
	// HTTPAddress is the TCP address the report server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background job settings.
type Workers struct {
	// SignalsInterval is how often account/network signals are polled.
	// Env: WORKERS_SIGNALS_INTERVAL
	SignalsInterval time.Duration `env:"SIGNALS_INTERVAL"`

	// DecryptConcurrency bounds the concurrent per-record decryptions.
	// Env: WORKERS_DECRYPT_CONCURRENCY
	DecryptConcurrency int `env:"DECRYPT_CONCURRENCY"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags (skipped when fs is nil)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
