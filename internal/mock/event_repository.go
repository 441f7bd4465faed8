package mock

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// EventRepo implements port.EventRepository for tests.
type EventRepo struct {
	ListOut  []model.Event
	CountOut int

	CreateErr error
	DeleteErr error
	ListErr   error
	CountErr  error

	Created   *model.Event
	DeletedID uuid.UUID
	ListCalls int
}

// compile-time check: *EventRepo must satisfy port.EventRepository
var _ port.EventRepository = (*EventRepo)(nil)

func (m *EventRepo) Create(ctx context.Context, e *model.Event) error {
	m.Created = e
	return m.CreateErr
}

func (m *EventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

func (m *EventRepo) ListActive(ctx context.Context) ([]model.Event, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *EventRepo) Count(ctx context.Context) (int, error) {
	return m.CountOut, m.CountErr
}
