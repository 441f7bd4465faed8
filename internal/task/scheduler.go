package task

import (
	"fmt"

	"github.com/hibiken/asynq"
)

// NewScheduler registers the periodic catalog verification on cronspec.
func NewScheduler(addr, password, cronspec string) (*asynq.Scheduler, error) {
	s := asynq.NewScheduler(asynq.RedisClientOpt{Addr: addr, Password: password}, &asynq.SchedulerOpts{})
	if _, err := s.Register(cronspec, NewVerifyIndexesTask()); err != nil {
		return nil, fmt.Errorf("could not register %s on %q: %w", TypeVerifyIndexes, cronspec, err)
	}
	return s, nil
}
