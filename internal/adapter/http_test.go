// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/utils"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testAccount  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testContract = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testTxHash   = common.HexToHash("0xabc0000000000000000000000000000000000000000000000000000000000def")
)

// newTestLedger создаёт httpLedgerAdapter, направленный на тестовый сервер
func newTestLedger(t *testing.T, serverURL string) *httpLedgerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		LedgerAddress:            serverURL,
		RequestTimeout:           time.Second,
		ConfirmationTimeout:      time.Second,
		ConfirmationPollInterval: 5 * time.Millisecond,
	}
	appCfg := config.ClientApp{HashKey: "testhashkey"}

	a, err := NewHTTPLedgerAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpLedgerAdapter)
}

func newTestOracle(t *testing.T, serverURL string) *httpOracleAdapter {
	t.Helper()
	a, err := NewHTTPOracleAdapter(config.ClientAdapter{RelayerAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpOracleAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ──────────────────────────────────────────────────────────────

func TestNewHTTPLedgerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPLedgerAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	_, err = normalizeBaseURL("http://")
	assert.Error(t, err)
}

// ── reads ────────────────────────────────────────────────────────────────────

func TestGetExpenseCount_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/ledger/"+testAccount.Hex()+"/count", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"count": 3})
	}))
	defer srv.Close()

	got, err := newTestLedger(t, srv.URL).GetExpenseCount(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, uint64(3), got)
}

func TestGetExpenseCount_SessionHeader(t *testing.T) {
	id := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, id.String(), r.Header.Get(sessionHeader))
		writeJSON(t, w, http.StatusOK, map[string]any{"count": 0})
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).GetExpenseCount(utils.WithSessionID(context.Background(), id), testAccount)
	require.NoError(t, err)
}

func TestGetExpenseCount_NoSessionHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(sessionHeader))
		writeJSON(t, w, http.StatusOK, map[string]any{"count": 0})
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).GetExpenseCount(context.Background(), testAccount)
	require.NoError(t, err)
}

func TestGetExpenseCount_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("rpc unavailable"))
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).GetExpenseCount(context.Background(), testAccount)

	assert.ErrorIs(t, err, ErrBadGateway)
}

// Хэндл приходит как десятичное большое число - оба формата допустимы.
func TestGetEncryptedExpense_DecimalHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ledger/"+testAccount.Hex()+"/expenses/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"category":2,"timestamp":1700000000,"amount_handle":"255","deleted":false}`))
	}))
	defer srv.Close()

	got, err := newTestLedger(t, srv.URL).GetEncryptedExpense(context.Background(), testAccount, 7)

	require.NoError(t, err)
	assert.Equal(t, uint32(2), got.Category)
	assert.Equal(t, int64(1700000000), got.Timestamp)
	assert.Equal(t, models.MustParseHandle("0xff"), got.AmountHandle)
	assert.False(t, got.Deleted)
}

func TestGetEncryptedExpense_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).GetEncryptedExpense(context.Background(), testAccount, 99)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetEncryptedExpense_MalformedHandle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"category":0,"timestamp":1,"amount_handle":"0xzz"}`))
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).GetEncryptedExpense(context.Background(), testAccount, 0)

	assert.ErrorIs(t, err, models.ErrInvalidHandle)
}

func TestGetEncryptedGlobalTotal_Success(t *testing.T) {
	want := models.MustParseHandle("0x1234")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/ledger/"+testAccount.Hex()+"/total", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"handle": want.Hex()})
	}))
	defer srv.Close()

	got, err := newTestLedger(t, srv.URL).GetEncryptedGlobalTotal(context.Background(), testAccount)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestChainID_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/network", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"chain_id": 11155111})
	}))
	defer srv.Close()

	got, err := newTestLedger(t, srv.URL).ChainID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(11155111), got)
}

// ── mutations ────────────────────────────────────────────────────────────────

func TestAddExpense_WaitsForConfirmation(t *testing.T) {
	var polls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/ledger/expenses", func(w http.ResponseWriter, r *http.Request) {
		var req models.AddExpenseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testAccount, req.Account)
		assert.Equal(t, uint32(1), req.Category)
		assert.NotEmpty(t, req.Hash, "integrity hash must be attached")

		writeJSON(t, w, http.StatusAccepted, models.TxReceipt{TxHash: testTxHash, Status: models.TxPending})
	})
	mux.HandleFunc("GET /api/tx/{hash}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, testTxHash.Hex(), r.PathValue("hash"))
		status := models.TxPending
		if polls.Add(1) >= 2 {
			status = models.TxConfirmed
		}
		writeJSON(t, w, http.StatusOK, models.TxReceipt{TxHash: testTxHash, Status: status})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	got, err := newTestLedger(t, srv.URL).AddExpense(context.Background(), models.AddExpenseRequest{
		Account:   testAccount,
		Category:  1,
		Timestamp: 1700000000,
		Amount:    models.MustParseHandle("0x01"),
		Proof:     []byte{0xde, 0xad},
	})

	require.NoError(t, err)
	assert.Equal(t, models.TxConfirmed, got.Status)
	assert.GreaterOrEqual(t, polls.Load(), int32(2))
}

func TestAddExpense_Reverted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TxReceipt{TxHash: testTxHash, Status: models.TxReverted, Reason: "invalid proof"})
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).AddExpense(context.Background(), models.AddExpenseRequest{Account: testAccount})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTxReverted)
	assert.Contains(t, err.Error(), "invalid proof")
}

func TestAddExpense_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("malformed input"))
	}))
	defer srv.Close()

	_, err := newTestLedger(t, srv.URL).AddExpense(context.Background(), models.AddExpenseRequest{Account: testAccount})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestDeleteExpense_ConfirmationTimeout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/ledger/expenses/{index}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", r.PathValue("index"))
		writeJSON(t, w, http.StatusAccepted, models.TxReceipt{TxHash: testTxHash, Status: models.TxPending})
	})
	mux.HandleFunc("GET /api/tx/{hash}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.TxReceipt{TxHash: testTxHash, Status: models.TxPending})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestLedger(t, srv.URL)
	a.confirmationTimeout = 30 * time.Millisecond

	_, err := a.DeleteExpense(context.Background(), models.DeleteExpenseRequest{Account: testAccount, Index: 4})

	assert.ErrorIs(t, err, ErrConfirmationTimeout)
}

func TestDeleteExpense_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusAccepted, models.TxReceipt{TxHash: testTxHash, Status: models.TxPending})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestLedger(t, srv.URL).DeleteExpense(ctx, models.DeleteExpenseRequest{Account: testAccount, Index: 0})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfirmationTimeout)
}

// ── oracle ───────────────────────────────────────────────────────────────────

func TestOracleInitialize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/keyurl", r.URL.Path)
		writeJSON(t, w, http.StatusOK, keyURLResponse{PublicKeyID: "k1", PublicKey: "pk"})
	}))
	defer srv.Close()

	o := newTestOracle(t, srv.URL)
	assert.False(t, o.Initialized())

	require.NoError(t, o.Initialize(context.Background()))
	assert.True(t, o.Initialized())
}

func TestOracleInitialize_EmptyKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, keyURLResponse{})
	}))
	defer srv.Close()

	o := newTestOracle(t, srv.URL)
	err := o.Initialize(context.Background())

	assert.ErrorIs(t, err, ErrEngineNotReady)
	assert.False(t, o.Initialized())
}

func TestOracleDecryptValue(t *testing.T) {
	handle := models.MustParseHandle("0x42")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/user-decrypt", r.URL.Path)
		var req models.DecryptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, handle, req.Handle)
		assert.Equal(t, testContract, req.Contract)
		assert.Equal(t, "permit", req.Permit)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"1500"}`))
	}))
	defer srv.Close()

	o := newTestOracle(t, srv.URL)
	o.initialized.Store(true)

	got, err := o.DecryptValue(context.Background(), models.DecryptRequest{Handle: handle, Contract: testContract, Permit: "permit"})

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(got))
}

func TestOracleDecryptValue_NotInitialized(t *testing.T) {
	o := newTestOracle(t, "http://127.0.0.1:1")

	_, err := o.DecryptValue(context.Background(), models.DecryptRequest{})

	assert.ErrorIs(t, err, ErrEngineNotReady)
}

func TestOracleDecryptValue_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("permit rejected"))
	}))
	defer srv.Close()

	o := newTestOracle(t, srv.URL)
	o.initialized.Store(true)

	_, err := o.DecryptValue(context.Background(), models.DecryptRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestOracleCreateEncryptedInput(t *testing.T) {
	want := models.EncryptedInput{Handle: models.MustParseHandle("0x99"), Proof: []byte{1, 2, 3}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/input-proof", r.URL.Path)
		var req models.EncryptRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, testAccount, req.Account)
		assert.True(t, decimal.NewFromInt(25).Equal(req.Value))
		writeJSON(t, w, http.StatusOK, want)
	}))
	defer srv.Close()

	o := newTestOracle(t, srv.URL)
	o.initialized.Store(true)

	got, err := o.CreateEncryptedInput(context.Background(), models.EncryptRequest{
		Contract: testContract,
		Account:  testAccount,
		Value:    decimal.NewFromInt(25),
	})

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
