package task

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// NoopDispatcher drops every task. Used when no Redis is configured.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueOptimiseMedia(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "no task queue configured, media #%s will not be optimised", id)
	return nil
}

func (d *NoopDispatcher) EnqueueVerifyIndexes(ctx context.Context) error {
	return nil
}
