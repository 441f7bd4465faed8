package port

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// TaskDispatcher enqueues asynchronous work for the worker.
type TaskDispatcher interface {
	EnqueueOptimiseMedia(ctx context.Context, id uuid.UUID) error
	EnqueueVerifyIndexes(ctx context.Context) error
}
