package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

var ErrInvalidSchedule = errors.New("event must end after it starts")

type eventSrv struct {
	repo  port.EventRepository
	genID uuid.Gen
	now   func() time.Time
}

// NewEventService serves both the public listing and admin writes.
func NewEventService(repo port.EventRepository, genID uuid.Gen) interface {
	port.EventLister
	port.EventManager
} {
	return &eventSrv{repo: repo, genID: genID, now: time.Now}
}

func (s *eventSrv) ListEvents(ctx context.Context) ([]model.Event, error) {
	return s.repo.ListActive(ctx)
}

func (s *eventSrv) CreateEvent(ctx context.Context, in port.EventInput) (*model.Event, error) {
	if !in.EndsAt.After(in.StartsAt) {
		return nil, fmt.Errorf("%w: %s is not after %s", ErrInvalidSchedule,
			in.EndsAt.Format(time.RFC3339), in.StartsAt.Format(time.RFC3339))
	}

	e := &model.Event{
		ID:        s.genID(),
		Title:     in.Title,
		Location:  in.Location,
		StartsAt:  in.StartsAt.UTC(),
		EndsAt:    in.EndsAt.UTC(),
		IsActive:  in.IsActive,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "event #%s created", e.ID)
	return e, nil
}

func (s *eventSrv) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infof(ctx, "event #%s deleted", id)
	return nil
}
