package mock

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// Dispatcher implements port.TaskDispatcher for tests.
type Dispatcher struct {
	OptimiseCalled bool
	OptimiseIDs    []uuid.UUID
	OptimiseErr    error

	VerifyCalled bool
	VerifyErr    error
}

func (m *Dispatcher) EnqueueOptimiseMedia(ctx context.Context, id uuid.UUID) error {
	m.OptimiseCalled = true
	m.OptimiseIDs = append(m.OptimiseIDs, id)
	return m.OptimiseErr
}

func (m *Dispatcher) EnqueueVerifyIndexes(ctx context.Context) error {
	m.VerifyCalled = true
	return m.VerifyErr
}
