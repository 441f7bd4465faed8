package task

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

type Dispatcher struct {
	client *asynq.Client
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c}
}

func (d *Dispatcher) EnqueueOptimiseMedia(ctx context.Context, id uuid.UUID) error {
	t, err := NewOptimiseMediaTask(id.String())
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, t)
	return err
}

func (d *Dispatcher) EnqueueVerifyIndexes(ctx context.Context) error {
	_, err := d.client.EnqueueContext(ctx, NewVerifyIndexesTask())
	return err
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
