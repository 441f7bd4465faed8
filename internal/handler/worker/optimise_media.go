package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/task"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// OptimiseMediaHandler handles a gallery:optimise task. Failures that a retry
// cannot fix are wrapped with asynq.SkipRetry.
func OptimiseMediaHandler(ctx context.Context, p task.OptimiseMediaPayload, svc port.MediaOptimiser) error {
	id, err := uuid.Parse(p.MediaID)
	if err != nil {
		logger.Errorf(ctx, "❌  Invalid media ID %q: %v", p.MediaID, err)
		return fmt.Errorf("invalid media ID %q: %v: %w", p.MediaID, err, asynq.SkipRetry)
	}

	if err := svc.OptimiseMedia(ctx, id); err != nil {
		logger.Errorf(ctx, "❌  Failed to optimise media #%s: %v", id, err)
		if errors.Is(err, port.ErrNotFound) || errors.Is(err, port.ErrInvalidState) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}
		return err
	}

	logger.Infof(ctx, "✅  Successfully optimised media #%s", id)
	return nil
}
