package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-expense-vault/internal/logger"
	"github.com/MKhiriev/go-expense-vault/internal/service"
	"github.com/MKhiriev/go-expense-vault/models"
)

const defaultSignalsInterval = 5 * time.Second

// SignalsWatcher polls the account and network signals and feeds them into
// the readiness gate.
type SignalsWatcher struct {
	provider service.SignalsProvider
	gate     Gate
	interval time.Duration

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSignalsWatcher creates a watcher that is idle until Start is called.
// If interval is zero or negative it defaults to 5 seconds.
func NewSignalsWatcher(provider service.SignalsProvider, gate Gate, interval time.Duration, logger *logger.Logger) *SignalsWatcher {
	if interval <= 0 {
		interval = defaultSignalsInterval
	}
	return &SignalsWatcher{
		provider: provider,
		gate:     gate,
		interval: interval,
		logger:   logger,
	}
}

// Poll reads the signals once and updates the gate. When the signals cannot
// be read the gate keeps its previous inputs.
func (w *SignalsWatcher) Poll(ctx context.Context) (models.ReadinessState, error) {
	signals, err := w.provider.Signals(ctx)
	if err != nil {
		return 0, err
	}
	return w.gate.Update(ctx, signals), nil
}

// Start implements Worker. It stops any previously running loop, polls once
// right away and then every interval.
func (w *SignalsWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.poll(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.poll(jobCtx)
			}
		}
	}()
}

// Stop implements Worker.
func (w *SignalsWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SignalsWatcher) poll(ctx context.Context) {
	if _, err := w.Poll(ctx); err != nil && ctx.Err() == nil {
		w.logger.Warn().
			Err(err).
			Str("func", "SignalsWatcher.poll").
			Msg("failed to read signals, keeping previous state")
	}
}
