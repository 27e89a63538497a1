package config

import "time"

// SepoliaChainID is the designated network unless configured otherwise.
const SepoliaChainID uint64 = 11155111

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PermitTTL: 5 * time.Minute,
		},
		Network: Network{
			ChainID: SepoliaChainID,
		},
		Adapter: Adapter{
			RequestTimeout:           15 * time.Second,
			ConfirmationTimeout:      2 * time.Minute,
			ConfirmationPollInterval: 2 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "expense-vault.db"},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SignalsInterval:    5 * time.Second,
			DecryptConcurrency: 8,
		},
	}
}
