package adapter

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
)

type httpOracleAdapter struct {
	client *utils.HTTPClient

	initialized atomic.Bool

	logger *logger.Logger
}

type keyURLResponse struct {
	PublicKeyID string `json:"public_key_id"`
	PublicKey   string `json:"public_key"`
}

// NewHTTPOracleAdapter constructs an HTTP/REST implementation of
// [OracleAdapter] pointed at adapterCfg.RelayerAddress.
func NewHTTPOracleAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (OracleAdapter, error) {
	client, err := newRESTClient(adapterCfg.RelayerAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid relayer address: %w", err)
	}

	return &httpOracleAdapter{client: client, logger: logger}, nil
}

// Initialize implements [OracleAdapter]. It fetches the engine key material
// from GET /v1/keyurl; an empty key keeps the engine uninitialized.
func (h *httpOracleAdapter) Initialize(ctx context.Context) error {
	var res keyURLResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/v1/keyurl")
	if err != nil {
		return fmt.Errorf("keyurl request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if res.PublicKey == "" {
		return fmt.Errorf("%w: relayer returned no public key", ErrEngineNotReady)
	}

	h.initialized.Store(true)
	h.logger.Info().
		Str("func", "httpOracleAdapter.Initialize").
		Str("public_key_id", res.PublicKeyID).
		Msg("engine initialized")
	return nil
}

// Initialized implements [OracleAdapter].
func (h *httpOracleAdapter) Initialized() bool {
	return h.initialized.Load()
}

// DecryptValue implements [OracleAdapter] via POST /v1/user-decrypt.
func (h *httpOracleAdapter) DecryptValue(ctx context.Context, req models.DecryptRequest) (decimal.Decimal, error) {
	if !h.Initialized() {
		return decimal.Zero, ErrEngineNotReady
	}

	var res models.DecryptResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&res).
		Post("/v1/user-decrypt")
	if err != nil {
		return decimal.Zero, fmt.Errorf("user decrypt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return decimal.Zero, err
	}

	return res.Value, nil
}

// CreateEncryptedInput implements [OracleAdapter] via POST /v1/input-proof.
func (h *httpOracleAdapter) CreateEncryptedInput(ctx context.Context, req models.EncryptRequest) (models.EncryptedInput, error) {
	if !h.Initialized() {
		return models.EncryptedInput{}, ErrEngineNotReady
	}

	var res models.EncryptedInput
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&res).
		Post("/v1/input-proof")
	if err != nil {
		return models.EncryptedInput{}, fmt.Errorf("input proof request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedInput{}, err
	}

	return res, nil
}
