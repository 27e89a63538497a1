// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReadinessGate_InitialStateIsDisconnected(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, models.Disconnected, f.svcs.Gate.State())

	err := f.svcs.Gate.Check()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotReady)

	var notReady *NotReadyError
	require.True(t, errors.As(err, &notReady))
	assert.Equal(t, models.Disconnected, notReady.State)
}

func TestReadinessGate_WrongNetwork(t *testing.T) {
	f := newFixture(t)

	// на чужой сети движок не трогается вовсе
	state := f.svcs.Gate.Update(context.Background(), models.Signals{
		Connected: true,
		Account:   testAccount,
		ChainID:   1,
	})

	assert.Equal(t, models.WrongNetwork, state)
	var notReady *NotReadyError
	require.ErrorAs(t, f.svcs.Gate.Check(), &notReady)
	assert.Equal(t, models.WrongNetwork, notReady.State)

	_, ok := f.svcs.Gate.ActiveSession()
	assert.True(t, ok, "session exists on a wrong network")
}

func TestReadinessGate_ZeroAccountIsDisconnected(t *testing.T) {
	f := newFixture(t)

	state := f.svcs.Gate.Update(context.Background(), models.Signals{Connected: true, ChainID: 11155111})

	assert.Equal(t, models.Disconnected, state)
}

func TestReadinessGate_InitializeOncePerTransition(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.oracle.EXPECT().Initialized().Return(false).AnyTimes()
	f.oracle.EXPECT().Initialize(gomock.Any()).Return(errors.New("relayer down")).Times(2)

	assert.Equal(t, models.EngineInitializing, f.svcs.Gate.Update(ctx, readySignals()))
	// повторные сигналы без выхода из состояния не дают новых попыток
	assert.Equal(t, models.EngineInitializing, f.svcs.Gate.Update(ctx, readySignals()))
	assert.Equal(t, models.EngineInitializing, f.svcs.Gate.Update(ctx, readySignals()))

	wrong := readySignals()
	wrong.ChainID = 5
	assert.Equal(t, models.WrongNetwork, f.svcs.Gate.Update(ctx, wrong))

	// повторный вход в состояние даёт ровно одну новую попытку
	assert.Equal(t, models.EngineInitializing, f.svcs.Gate.Update(ctx, readySignals()))
	assert.Equal(t, models.EngineInitializing, f.svcs.Gate.Update(ctx, readySignals()))
}

func TestReadinessGate_InitializeSuccessBecomesReady(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	gomock.InOrder(
		f.oracle.EXPECT().Initialized().Return(false),
		f.oracle.EXPECT().Initialized().Return(true).AnyTimes(),
	)
	f.oracle.EXPECT().Initialize(gomock.Any()).Return(nil)
	f.expectView(testAccount)

	state := f.svcs.Gate.Update(ctx, readySignals())

	assert.Equal(t, models.Ready, state)
	assert.NoError(t, f.svcs.Gate.Check())
}

func TestReadinessGate_OnReadyRunsOncePerEntry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	calls := 0
	f.svcs.Gate.OnReady(func(context.Context) { calls++ })

	f.oracle.EXPECT().Initialized().Return(true).AnyTimes()
	f.expectView(testAccount)
	f.expectView(testAccount)

	f.svcs.Gate.Update(ctx, readySignals())
	f.svcs.Gate.Update(ctx, readySignals())
	assert.Equal(t, 1, calls)

	wrong := readySignals()
	wrong.ChainID = 5
	f.svcs.Gate.Update(ctx, wrong)
	f.svcs.Gate.Update(ctx, readySignals())
	assert.Equal(t, 2, calls)
}

func TestReadinessGate_NetworkChangeBumpsEpoch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	session := f.connect(t)

	before := session.Epoch()
	wrong := readySignals()
	wrong.ChainID = 5
	f.svcs.Gate.Update(ctx, wrong)

	assert.Greater(t, session.Epoch(), before)
	_, err := f.svcs.Gate.Session()
	assert.ErrorIs(t, err, ErrNotReady)

	// сессия та же: смена сети не отключает аккаунт
	active, ok := f.svcs.Gate.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, session.ID, active.ID)
}

func TestReadinessGate_RestoresPersistedSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	record, err := OpenSession(ctx, f.storages.Sessions, f.svcs.Gate.ids, testAccount, testClock)
	require.NoError(t, err)
	require.NoError(t, f.storages.Sessions.RecordMutation(ctx, record.ID, testClock))

	session := f.connect(t)

	assert.Equal(t, record.ID, session.ID)
	assert.Equal(t, uint64(1), session.MutationSeq())
}

func TestReadinessGate_DisconnectClearsState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raws := []models.RawExpense{rawExpense(0, 1_700_000_000, 1)}
	session := f.connect(t, raws...)

	f.expectDecryption(handle(99), map[uint64]models.RawExpense{0: raws[0]}, map[models.EncryptedHandle]int64{
		handle(99): 25,
		handle(1):  25,
	})
	_, err := f.svcs.Decryption.DecryptAll(ctx)
	require.NoError(t, err)

	state := f.svcs.Gate.Update(ctx, models.Signals{})

	assert.Equal(t, models.Disconnected, state)
	assert.Empty(t, session.Records())
	total, at := session.Total()
	assert.Nil(t, total)
	assert.Nil(t, at)

	cached, err := f.storages.Snapshots.GetSnapshot(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, cached.IsEmpty())

	_, ok := f.svcs.Gate.ActiveSession()
	assert.False(t, ok)
}

func TestReadinessGate_AccountSwitchTearsDownSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	raws := []models.RawExpense{rawExpense(1, 1_700_000_000, 7)}
	first := f.connect(t, raws...)

	f.expectDecryption(handle(90), map[uint64]models.RawExpense{0: raws[0]}, map[models.EncryptedHandle]int64{
		handle(90): 3,
		handle(7):  3,
	})
	_, err := f.svcs.Decryption.DecryptAll(ctx)
	require.NoError(t, err)

	f.expectView(otherAccount)
	state := f.svcs.Gate.Update(ctx, models.Signals{Connected: true, Account: otherAccount, ChainID: 11155111})
	require.Equal(t, models.Ready, state)

	second, err := f.svcs.Gate.Session()
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, otherAccount, second.Account)

	cached, err := f.storages.Snapshots.GetSnapshot(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, cached.IsEmpty())
	assert.Empty(t, first.Records())
}

func TestReadinessGate_NotReadyOperationsMakeNoRemoteCalls(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// у моков нет ожиданий: любой удалённый вызов провалит тест
	_, err := f.svcs.Ledger.Load(ctx)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = f.svcs.Decryption.DecryptAll(ctx)
	assert.ErrorIs(t, err, ErrNotReady)

	err = f.svcs.Mutations.Append(ctx, "Food", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, ErrNotReady)

	err = f.svcs.Mutations.Remove(ctx, 0)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = f.svcs.Ledger.Records()
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestReadinessGate_Status(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	assert.Equal(t, models.Status{State: models.Disconnected}, f.svcs.Gate.Status())

	f.svcs.Gate.Update(ctx, models.Signals{Connected: true, Account: testAccount, ChainID: 1})

	status := f.svcs.Gate.Status()
	assert.Equal(t, models.WrongNetwork, status.State)
	assert.Equal(t, testAccount.Hex(), status.Account)
	assert.Equal(t, uint64(1), status.ChainID)
	session, ok := f.svcs.Gate.ActiveSession()
	require.True(t, ok)
	assert.Equal(t, session.ID.String(), status.SessionID)
}
