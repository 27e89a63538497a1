// Package workers runs the client's background jobs.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import (
	"context"

	"github.com/MKhiriev/go-expense-vault/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker runs until
// ctx is canceled or Stop is called. Stop blocks until the worker exited and
// is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Gate receives the polled signals.
type Gate interface {
	Update(ctx context.Context, signals models.Signals) models.ReadinessState
}
