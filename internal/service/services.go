package service

import (
	"context"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/crypto"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/store"
)

type ClientServices struct {
	Gate       *ReadinessGate
	Cache      *SnapshotCache
	Ledger     LedgerService
	Decryption DecryptionService
	Mutations  MutationService
	Reports    ReportService
	Signals    SignalsProvider
}

// NewClientServices wires the services around one readiness gate. The ledger
// view is reloaded every time the gate becomes Ready.
func NewClientServices(
	storages *store.ClientStorages,
	ledger adapter.LedgerAdapter,
	oracle adapter.OracleAdapter,
	signer crypto.PermitSigner,
	cfg *config.ClientConfig,
	logger *logger.Logger,
) *ClientServices {
	cache := NewSnapshotCache(storages.Snapshots, logger)
	gate := NewReadinessGate(oracle, storages.Sessions, cache, cfg.Network.ChainID, logger)
	loader := NewLedgerLoader(gate, ledger, logger)

	gate.OnReady(func(ctx context.Context) {
		if _, err := loader.Load(ctx); err != nil {
			logger.Err(err).Str("func", "ClientServices.onReady").Msg("auto load failed")
		}
	})

	return &ClientServices{
		Gate:       gate,
		Cache:      cache,
		Ledger:     loader,
		Decryption: NewDecryptionService(gate, ledger, oracle, signer, cache, storages.Sessions, cfg.App.Contract, cfg.Workers.DecryptConcurrency, logger),
		Mutations:  NewMutationService(gate, ledger, oracle, storages.Sessions, loader, cfg.App.Contract, logger),
		Reports:    NewReportService(gate, cache, storages.Sessions, logger),
		Signals:    NewSignalsProvider(cfg.App.Account, storages.Sessions, ledger, logger),
	}
}
