package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	TypeOptimiseMedia = "gallery:optimise"
	TypeVerifyIndexes = "catalog:verify"
)

type OptimiseMediaPayload struct {
	MediaID string `json:"media_id"`
}

// NewOptimiseMediaTask creates an Asynq task for optimising a gallery media by ID.
func NewOptimiseMediaTask(mediaID string) (*asynq.Task, error) {
	data, err := json.Marshal(OptimiseMediaPayload{MediaID: mediaID})
	if err != nil {
		return nil, fmt.Errorf("could not marshal optimise-media payload: %w", err)
	}
	return asynq.NewTask(TypeOptimiseMedia, data, asynq.MaxRetry(3)), nil
}

// ParseOptimiseMediaPayload parses the task payload to OptimiseMediaPayload.
func ParseOptimiseMediaPayload(t *asynq.Task) (OptimiseMediaPayload, error) {
	var p OptimiseMediaPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return OptimiseMediaPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

// NewVerifyIndexesTask creates the task that checks the composite query catalog.
// It is not retried; the next scheduled run checks again.
func NewVerifyIndexesTask() *asynq.Task {
	return asynq.NewTask(TypeVerifyIndexes, nil, asynq.MaxRetry(0))
}
