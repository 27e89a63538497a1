package http

import (
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
)

// StatusReader reports the readiness status of the connected account.
type StatusReader interface {
	Status() models.Status
}

type Handler struct {
	status    StatusReader
	ledger    service.LedgerService
	reports   service.ReportService
	buildInfo models.AppBuildInfo
	ids       *utils.UUIDGenerator
	timeout   time.Duration
	now       func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, buildInfo models.AppBuildInfo, cfg config.ClientServer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		status:    services.Gate,
		ledger:    services.Ledger,
		reports:   services.Reports,
		buildInfo: buildInfo,
		ids:       utils.NewUUIDGenerator(),
		timeout:   cfg.RequestTimeout,
		now:       time.Now,
		logger:    logger,
	}
}
