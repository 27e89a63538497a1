// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
)

type httpLedgerAdapter struct {
	client *utils.HTTPClient

	hashKey             string
	confirmationTimeout time.Duration
	pollInterval        time.Duration

	logger *logger.Logger
}

type countResponse struct {
	Count uint64 `json:"count"`
}

type totalResponse struct {
	Handle models.EncryptedHandle `json:"handle"`
}

type networkResponse struct {
	ChainID uint64 `json:"chain_id"`
}

// NewHTTPLedgerAdapter constructs an HTTP/REST implementation of
// [LedgerAdapter] pointed at adapterCfg.LedgerAddress.
//
// When appCfg.HashKey is set, mutating requests carry an HMAC of their payload
// in the hash field, computed with the shared hasher pool.
func NewHTTPLedgerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (LedgerAdapter, error) {
	client, err := newRESTClient(adapterCfg.LedgerAddress, adapterCfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger address: %w", err)
	}

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &httpLedgerAdapter{
		client:              client,
		hashKey:             appCfg.HashKey,
		confirmationTimeout: adapterCfg.ConfirmationTimeout,
		pollInterval:        adapterCfg.ConfirmationPollInterval,
		logger:              logger,
	}, nil
}

// GetExpenseCount implements [LedgerAdapter] via
// GET /api/ledger/{account}/count.
func (h *httpLedgerAdapter) GetExpenseCount(ctx context.Context, account common.Address) (uint64, error) {
	var res countResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("account", account.Hex()).
		SetResult(&res).
		Get("/api/ledger/{account}/count")
	if err != nil {
		return 0, fmt.Errorf("expense count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return res.Count, nil
}

// GetEncryptedExpense implements [LedgerAdapter] via
// GET /api/ledger/{account}/expenses/{index}.
func (h *httpLedgerAdapter) GetEncryptedExpense(ctx context.Context, account common.Address, index uint64) (models.RawExpense, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"account": account.Hex(),
			"index":   strconv.FormatUint(index, 10),
		}).
		Get("/api/ledger/{account}/expenses/{index}")
	if err != nil {
		return models.RawExpense{}, fmt.Errorf("expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RawExpense{}, err
	}

	var raw models.RawExpense
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return models.RawExpense{}, fmt.Errorf("decode expense %d: %w", index, err)
	}

	return raw, nil
}

// GetEncryptedGlobalTotal implements [LedgerAdapter] via
// GET /api/ledger/{account}/total.
func (h *httpLedgerAdapter) GetEncryptedGlobalTotal(ctx context.Context, account common.Address) (models.EncryptedHandle, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("account", account.Hex()).
		Get("/api/ledger/{account}/total")
	if err != nil {
		return models.ZeroHandle, fmt.Errorf("total request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ZeroHandle, err
	}

	var res totalResponse
	if err = json.Unmarshal(resp.Body(), &res); err != nil {
		return models.ZeroHandle, fmt.Errorf("decode total: %w", err)
	}

	return res.Handle, nil
}

// AddExpense implements [LedgerAdapter]. It POSTs the request to
// POST /api/ledger/expenses and waits for the transaction to be confirmed.
func (h *httpLedgerAdapter) AddExpense(ctx context.Context, req models.AddExpenseRequest) (models.TxReceipt, error) {
	req.Hash = ""
	if h.hashKey != "" {
		req.Hash = computeTransportHash(req)
	}

	var receipt models.TxReceipt
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&receipt).
		Post("/api/ledger/expenses")
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("add expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TxReceipt{}, err
	}

	return h.waitForConfirmation(ctx, receipt)
}

// DeleteExpense implements [LedgerAdapter]. It sends
// DELETE /api/ledger/expenses/{index} and waits for the transaction to be
// confirmed.
func (h *httpLedgerAdapter) DeleteExpense(ctx context.Context, req models.DeleteExpenseRequest) (models.TxReceipt, error) {
	req.Hash = ""
	if h.hashKey != "" {
		req.Hash = computeTransportHash(req)
	}

	var receipt models.TxReceipt
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("index", strconv.FormatUint(req.Index, 10)).
		SetBody(req).
		SetResult(&receipt).
		Delete("/api/ledger/expenses/{index}")
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("delete expense request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TxReceipt{}, err
	}

	return h.waitForConfirmation(ctx, receipt)
}

// ChainID implements [LedgerAdapter] via GET /api/network.
func (h *httpLedgerAdapter) ChainID(ctx context.Context) (uint64, error) {
	var res networkResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&res).
		Get("/api/network")
	if err != nil {
		return 0, fmt.Errorf("network request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return res.ChainID, nil
}

// waitForConfirmation polls GET /api/tx/{hash} until the transaction leaves
// the pending state or the confirmation timeout elapses.
func (h *httpLedgerAdapter) waitForConfirmation(ctx context.Context, receipt models.TxReceipt) (models.TxReceipt, error) {
	if ctx.Err() != nil {
		return receipt, ctx.Err()
	}

	waitCtx, cancel := context.WithTimeout(ctx, h.confirmationTimeout)
	defer cancel()

	ticker := time.NewTicker(h.pollInterval)
	defer ticker.Stop()

	for {
		switch receipt.Status {
		case models.TxConfirmed:
			return receipt, nil
		case models.TxReverted:
			return receipt, fmt.Errorf("%w: %s %s", ErrTxReverted, receipt.TxHash.Hex(), receipt.Reason)
		}

		select {
		case <-waitCtx.Done():
			if errors.Is(waitCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
				return receipt, fmt.Errorf("%w: %s", ErrConfirmationTimeout, receipt.TxHash.Hex())
			}
			return receipt, waitCtx.Err()
		case <-ticker.C:
		}

		next, err := h.txStatus(waitCtx, receipt.TxHash)
		if err != nil {
			h.logger.Warn().Err(err).
				Str("func", "httpLedgerAdapter.waitForConfirmation").
				Str("tx_hash", receipt.TxHash.Hex()).
				Msg("transaction status poll failed")
			continue
		}
		receipt = next
	}
}

func (h *httpLedgerAdapter) txStatus(ctx context.Context, txHash common.Hash) (models.TxReceipt, error) {
	var receipt models.TxReceipt

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("hash", txHash.Hex()).
		SetResult(&receipt).
		Get("/api/tx/{hash}")
	if err != nil {
		return models.TxReceipt{}, fmt.Errorf("tx status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TxReceipt{}, err
	}

	return receipt, nil
}
