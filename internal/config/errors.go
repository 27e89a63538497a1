package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing ledger URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, malformed account address or missing signer secret).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidNetworkConfigs indicates a missing designated network.
	ErrInvalidNetworkConfigs = errors.New("invalid network configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero signals interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
