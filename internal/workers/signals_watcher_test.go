package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyProvider считает вызовы Signals и возвращает заданный результат.
type spyProvider struct {
	calls   atomic.Int64
	signals models.Signals
	err     error
}

func (s *spyProvider) Signals(context.Context) (models.Signals, error) {
	s.calls.Add(1)
	return s.signals, s.err
}

// spyGate запоминает все полученные сигналы.
type spyGate struct {
	mu      sync.Mutex
	updates []models.Signals
}

func (g *spyGate) Update(_ context.Context, signals models.Signals) models.ReadinessState {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.updates = append(g.updates, signals)
	if !signals.Connected {
		return models.Disconnected
	}
	return models.Ready
}

func (g *spyGate) count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.updates)
}

var watchedSignals = models.Signals{
	Connected: true,
	Account:   common.HexToAddress("0x1111111111111111111111111111111111111111"),
	ChainID:   11155111,
}

func TestSignalsWatcher_Poll_UpdatesGate(t *testing.T) {
	provider := &spyProvider{signals: watchedSignals}
	gate := &spyGate{}
	w := NewSignalsWatcher(provider, gate, time.Second, logger.Nop())

	state, err := w.Poll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.Ready, state)
	require.Len(t, gate.updates, 1)
	assert.Equal(t, watchedSignals, gate.updates[0])
}

func TestSignalsWatcher_Poll_ErrorKeepsGate(t *testing.T) {
	provider := &spyProvider{err: errors.New("db locked")}
	gate := &spyGate{}
	w := NewSignalsWatcher(provider, gate, time.Second, logger.Nop())

	_, err := w.Poll(context.Background())

	require.Error(t, err)
	// при ошибке чтения сигналов шлюз не трогаем
	assert.Zero(t, gate.count())
}

func TestSignalsWatcher_Start_PollsOnTicker(t *testing.T) {
	provider := &spyProvider{signals: watchedSignals}
	gate := &spyGate{}
	w := NewSignalsWatcher(provider, gate, 10*time.Millisecond, logger.Nop())

	// Интервал 10ms, за 55ms должно быть несколько опросов
	w.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	w.Stop()

	assert.GreaterOrEqual(t, provider.calls.Load(), int64(3))
	assert.Equal(t, int(provider.calls.Load()), gate.count())
}

func TestSignalsWatcher_Start_ErrorsAreSkipped(t *testing.T) {
	provider := &spyProvider{err: errors.New("db locked")}
	gate := &spyGate{}
	w := NewSignalsWatcher(provider, gate, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	w.Stop()

	assert.Greater(t, provider.calls.Load(), int64(1), "цикл должен продолжаться после ошибки")
	assert.Zero(t, gate.count())
}

func TestSignalsWatcher_Stop_StopsGoroutine(t *testing.T) {
	provider := &spyProvider{signals: watchedSignals}
	w := NewSignalsWatcher(provider, &spyGate{}, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	w.Stop()

	callsAfterStop := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, provider.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestSignalsWatcher_Stop_BeforeStart_NoPanic(t *testing.T) {
	w := NewSignalsWatcher(&spyProvider{}, &spyGate{}, time.Second, logger.Nop())

	assert.NotPanics(t, func() { w.Stop() })
}

func TestSignalsWatcher_DoubleStop_NoPanic(t *testing.T) {
	w := NewSignalsWatcher(&spyProvider{}, &spyGate{}, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	w.Stop()

	assert.NotPanics(t, func() { w.Stop() })
}

func TestSignalsWatcher_DefaultInterval(t *testing.T) {
	provider := &spyProvider{signals: watchedSignals}
	w := NewSignalsWatcher(provider, &spyGate{}, 0, logger.Nop())
	assert.Equal(t, defaultSignalsInterval, w.interval)

	// interval <= 0 → дефолт 5s, за 20ms только стартовый опрос
	w.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	w.Stop()

	assert.Equal(t, int64(1), provider.calls.Load())
}

func TestSignalsWatcher_ContextCancelStops(t *testing.T) {
	provider := &spyProvider{signals: watchedSignals}
	w := NewSignalsWatcher(provider, &spyGate{}, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	w.Start(ctx)
	time.Sleep(25 * time.Millisecond)
	cancel()
	time.Sleep(15 * time.Millisecond)

	calls := provider.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, provider.calls.Load())

	w.Stop()
}

func TestSignalsWatcher_Restart_StopsPrevious(t *testing.T) {
	provider := &spyProvider{signals: watchedSignals}
	w := NewSignalsWatcher(provider, &spyGate{}, 10*time.Millisecond, logger.Nop())

	w.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	callsBefore := provider.calls.Load()

	// повторный Start внутри вызывает Stop()
	w.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	w.Stop()

	assert.Greater(t, provider.calls.Load(), callsBefore)
}
