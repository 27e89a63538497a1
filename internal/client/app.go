package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/adapter"
	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/crypto"
	"github.com/MKhiriev/go-expense-vault/internal/handler"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/server"
	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/internal/workers"
	"github.com/MKhiriev/go-expense-vault/models"
)

type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo

	storages *store.ClientStorages
	services *service.ClientServices
	watcher  *workers.SignalsWatcher
	ids      *utils.UUIDGenerator
	now      func() time.Time

	logger *logger.Logger
}

// NewApp wires the client: keychain, storages, remote adapters, services and
// the signals watcher. The caller owns the returned App and must Close it.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	keychain, err := crypto.NewKeyChain(cfg.App.SignerSecret, cfg.App.Account)
	if err != nil {
		return nil, fmt.Errorf("create keychain: %w", err)
	}

	storages, err := store.NewClientStorages(cfg.Storage, keychain.Sealer(), logger)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	ledger, err := adapter.NewHTTPLedgerAdapter(cfg.Adapter, cfg.App, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ledger adapter: %w", err)
	}

	oracle, err := adapter.NewHTTPOracleAdapter(cfg.Adapter, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create oracle adapter: %w", err)
	}

	signer := keychain.PermitSigner(cfg.App.Contract, cfg.App.PermitTTL)
	services := service.NewClientServices(storages, ledger, oracle, signer, cfg, logger)

	return newApp(cfg, buildInfo, storages, services, logger), nil
}

func newApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, storages *store.ClientStorages, services *service.ClientServices, logger *logger.Logger) *App {
	return &App{
		cfg:       cfg,
		buildInfo: buildInfo,
		storages:  storages,
		services:  services,
		watcher:   workers.NewSignalsWatcher(services.Signals, services.Gate, cfg.Workers.SignalsInterval, logger),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Services exposes the wired services to the command layer.
func (a *App) Services() *service.ClientServices {
	return a.services
}

// Refresh reads the current signals into the readiness gate. Entering Ready
// reloads the ledger view.
func (a *App) Refresh(ctx context.Context) (models.ReadinessState, error) {
	state, err := a.watcher.Poll(ctx)
	if err != nil {
		return a.services.Gate.State(), fmt.Errorf("refresh signals: %w", err)
	}
	return state, nil
}

// Connect persists a session for the configured account, or restores the
// existing one, and refreshes the gate.
func (a *App) Connect(ctx context.Context) (models.ReadinessState, error) {
	record, err := service.OpenSession(ctx, a.storages.Sessions, a.ids, a.cfg.App.Account, a.now())
	if err != nil {
		return models.Disconnected, fmt.Errorf("connect: %w", err)
	}

	a.logger.Info().
		Str("func", "App.Connect").
		Str("session_id", record.ID.String()).
		Str("account", record.Account.Hex()).
		Msg("account connected")

	return a.Refresh(ctx)
}

// Disconnect tears down the session of the configured account: the in-memory
// state, the cached snapshot and the persisted session row. Disconnecting an
// account without a session is a no-op.
func (a *App) Disconnect(ctx context.Context) error {
	a.services.Gate.Update(ctx, models.Signals{})

	record, err := a.storages.Sessions.GetSessionByAccount(ctx, a.cfg.App.Account)
	if errors.Is(err, store.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}

	if err = a.services.Cache.Clear(ctx, record.ID); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	if err = a.storages.Sessions.DeleteSession(ctx, record.ID); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}

	a.logger.Info().
		Str("func", "App.Disconnect").
		Str("session_id", record.ID.String()).
		Msg("account disconnected")
	return nil
}

// Run serves the reporting surface and keeps the gate in sync with the
// signals until ctx is canceled or the process receives a stop signal.
func (a *App) Run(ctx context.Context) error {
	handlers, err := handler.NewHandlers(a.services, a.buildInfo, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, a.cfg.Server, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	jobs := workers.NewWorkers(a.watcher)
	jobs.Start(ctx)
	defer jobs.Stop()

	return srv.RunServer(ctx)
}

// Close releases the storages.
func (a *App) Close() error {
	return a.storages.Close()
}
