package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/config"
	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/mock"
	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/internal/store"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	testAccount  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testContract = common.HexToAddress("0x3333333333333333333333333333333333333333")
	testClock    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type appFixture struct {
	ledger   *mock.MockLedgerAdapter
	oracle   *mock.MockOracleAdapter
	storages *store.ClientStorages
	app      *App
}

func newAppFixture(t *testing.T, storages *store.ClientStorages) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		ledger:   mock.NewMockLedgerAdapter(ctrl),
		oracle:   mock.NewMockOracleAdapter(ctrl),
		storages: storages,
	}

	cfg := &config.ClientConfig{
		App:     config.ClientApp{Account: testAccount, Contract: testContract},
		Network: config.ClientNetwork{ChainID: config.SepoliaChainID},
		Workers: config.ClientWorkers{DecryptConcurrency: 2, SignalsInterval: time.Second},
	}
	services := service.NewClientServices(storages, f.ledger, f.oracle, mock.NewMockPermitSigner(ctrl), cfg, logger.Nop())

	f.app = newApp(cfg, models.NewAppBuildInfo("", "", ""), storages, services, logger.Nop())
	f.app.now = func() time.Time { return testClock }
	return f
}

// expectEmptyLedger: хук OnReady читает пустой леджер.
func (f *appFixture) expectEmptyLedger() {
	f.ledger.EXPECT().GetExpenseCount(gomock.Any(), testAccount).Return(uint64(0), nil)
}

func TestApp_Refresh_WithoutSessionIsDisconnected(t *testing.T) {
	f := newAppFixture(t, store.NewMemoryStorages(0))

	// нет сессии, значит никаких удалённых вызовов
	state, err := f.app.Refresh(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Disconnected, state)
}

func TestApp_Connect_ReachesReady(t *testing.T) {
	f := newAppFixture(t, store.NewMemoryStorages(0))
	ctx := context.Background()

	f.ledger.EXPECT().ChainID(gomock.Any()).Return(config.SepoliaChainID, nil)
	f.oracle.EXPECT().Initialized().Return(true).AnyTimes()
	f.expectEmptyLedger()

	state, err := f.app.Connect(ctx)

	require.NoError(t, err)
	assert.Equal(t, models.Ready, state)

	record, err := f.storages.Sessions.GetSessionByAccount(ctx, testAccount)
	require.NoError(t, err)
	assert.Equal(t, testClock, record.CreatedAt)

	status := f.app.Services().Gate.Status()
	assert.Equal(t, record.ID.String(), status.SessionID)
}

func TestApp_Connect_InitializesEngineOnce(t *testing.T) {
	f := newAppFixture(t, store.NewMemoryStorages(0))

	initialized := false
	f.ledger.EXPECT().ChainID(gomock.Any()).Return(config.SepoliaChainID, nil)
	f.oracle.EXPECT().Initialized().DoAndReturn(func() bool { return initialized }).AnyTimes()
	f.oracle.EXPECT().Initialize(gomock.Any()).DoAndReturn(func(context.Context) error {
		initialized = true
		return nil
	}).Times(1)
	f.expectEmptyLedger()

	state, err := f.app.Connect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Ready, state)
}

func TestApp_Connect_WrongNetwork(t *testing.T) {
	f := newAppFixture(t, store.NewMemoryStorages(0))

	f.ledger.EXPECT().ChainID(gomock.Any()).Return(uint64(1), nil)

	state, err := f.app.Connect(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.WrongNetwork, state)
}

func TestApp_Connect_RestoresSession(t *testing.T) {
	storages := store.NewMemoryStorages(0)
	ctx := context.Background()

	first := newAppFixture(t, storages)
	first.ledger.EXPECT().ChainID(gomock.Any()).Return(uint64(1), nil)
	_, err := first.app.Connect(ctx)
	require.NoError(t, err)
	firstRecord, err := storages.Sessions.GetSessionByAccount(ctx, testAccount)
	require.NoError(t, err)

	// новый процесс над тем же хранилищем видит ту же сессию
	second := newAppFixture(t, storages)
	second.ledger.EXPECT().ChainID(gomock.Any()).Return(uint64(1), nil)
	_, err = second.app.Connect(ctx)
	require.NoError(t, err)

	assert.Equal(t, firstRecord.ID.String(), second.app.Services().Gate.Status().SessionID)
}

func TestApp_Disconnect(t *testing.T) {
	f := newAppFixture(t, store.NewMemoryStorages(0))
	ctx := context.Background()

	f.ledger.EXPECT().ChainID(gomock.Any()).Return(config.SepoliaChainID, nil)
	f.oracle.EXPECT().Initialized().Return(true).AnyTimes()
	f.expectEmptyLedger()
	_, err := f.app.Connect(ctx)
	require.NoError(t, err)

	require.NoError(t, f.app.Disconnect(ctx))

	assert.Equal(t, models.Disconnected, f.app.Services().Gate.State())
	_, err = f.storages.Sessions.GetSessionByAccount(ctx, testAccount)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	state, err := f.app.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Disconnected, state)
}

func TestApp_Disconnect_WithoutSessionIsNoop(t *testing.T) {
	f := newAppFixture(t, store.NewMemoryStorages(0))

	assert.NoError(t, f.app.Disconnect(context.Background()))
}

func TestApp_Refresh_StoreErrorKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionRepository(ctrl)
	memory := store.NewMemoryStorages(0)
	f := newAppFixture(t, &store.ClientStorages{Sessions: sessions, Snapshots: memory.Snapshots})

	sessions.EXPECT().GetSessionByAccount(gomock.Any(), testAccount).Return(models.SessionRecord{}, errors.New("database is locked"))

	state, err := f.app.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, models.Disconnected, state)
}
