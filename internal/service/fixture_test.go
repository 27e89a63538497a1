// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/mock"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testAccount  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	otherAccount = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testContract = common.HexToAddress("0x3333333333333333333333333333333333333333")

	// базовое время для всех тестов сервиса
	testClock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

// fixture собирает ClientServices поверх моков адаптеров и in-memory хранилища.
type fixture struct {
	ctrl     *gomock.Controller
	ledger   *mock.MockLedgerAdapter
	oracle   *mock.MockOracleAdapter
	signer   *mock.MockPermitSigner
	storages *store.ClientStorages
	svcs     *ClientServices
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWithCapacity(t, 0)
}

func newFixtureWithCapacity(t *testing.T, capacity int) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:     ctrl,
		ledger:   mock.NewMockLedgerAdapter(ctrl),
		oracle:   mock.NewMockOracleAdapter(ctrl),
		signer:   mock.NewMockPermitSigner(ctrl),
		storages: store.NewMemoryStorages(capacity),
	}

	cfg := &config.ClientConfig{
		App:     config.ClientApp{Account: testAccount, Contract: testContract},
		Network: config.ClientNetwork{ChainID: config.SepoliaChainID},
		Workers: config.ClientWorkers{DecryptConcurrency: 4},
	}
	f.svcs = NewClientServices(f.storages, f.ledger, f.oracle, f.signer, cfg, logger.Nop())

	f.svcs.Gate.now = func() time.Time { return testClock }
	f.svcs.Decryption.(*decryptionService).now = func() time.Time { return testClock }
	f.svcs.Mutations.(*mutationService).now = func() time.Time { return testClock.Add(time.Minute) }

	f.signer.EXPECT().Sign(gomock.Any()).Return("permit", nil).AnyTimes()
	return f
}

func readySignals() models.Signals {
	return models.Signals{Connected: true, Account: testAccount, ChainID: config.SepoliaChainID}
}

func handle(n uint64) models.EncryptedHandle {
	return models.HandleFromUint256(uint256.NewInt(n))
}

func rawExpense(category uint32, ts int64, h uint64) models.RawExpense {
	return models.RawExpense{Category: category, Timestamp: ts, AmountHandle: handle(h)}
}

func decryptOf(h models.EncryptedHandle) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		req, ok := x.(models.DecryptRequest)
		return ok && req.Handle == h && req.Contract == testContract
	})
}

// expectView ожидает одно полное чтение леджера.
func (f *fixture) expectView(account common.Address, raws ...models.RawExpense) {
	f.ledger.EXPECT().GetExpenseCount(gomock.Any(), account).Return(uint64(len(raws)), nil)
	for i, r := range raws {
		f.ledger.EXPECT().GetEncryptedExpense(gomock.Any(), account, uint64(i)).Return(r, nil)
	}
}

// connect переводит гейт в Ready; хук OnReady загружает raws.
func (f *fixture) connect(t *testing.T, raws ...models.RawExpense) *Session {
	t.Helper()
	f.oracle.EXPECT().Initialized().Return(true).AnyTimes()
	f.expectView(testAccount, raws...)

	state := f.svcs.Gate.Update(context.Background(), readySignals())
	require.Equal(t, models.Ready, state)

	session, err := f.svcs.Gate.Session()
	require.NoError(t, err)
	return session
}

// expectDecryption ожидает полный успешный прогон DecryptAll.
// values сопоставляет хендлу расшифрованное значение.
func (f *fixture) expectDecryption(totalHandle models.EncryptedHandle, raws map[uint64]models.RawExpense, values map[models.EncryptedHandle]int64) {
	f.ledger.EXPECT().GetEncryptedGlobalTotal(gomock.Any(), testAccount).Return(totalHandle, nil)
	for idx, r := range raws {
		f.ledger.EXPECT().GetEncryptedExpense(gomock.Any(), testAccount, idx).Return(r, nil)
	}
	f.oracle.EXPECT().DecryptValue(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.DecryptRequest) (decimal.Decimal, error) {
			return decimal.NewFromInt(values[req.Handle]), nil
		}).
		Times(len(raws) + 1)
}
