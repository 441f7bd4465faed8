package mock

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// MediaRepo implements port.MediaRepository for tests.
type MediaRepo struct {
	MediaRecord *model.Media
	ListOut     []model.Media
	CountOut    map[model.MediaStatus]int

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error
	CountErr  error

	GetCalled    bool
	Created      *model.Media
	Updated      *model.Media
	UpdateCalls  int
	DeleteCalled bool
	DeletedID    uuid.UUID
	ListCalls    int
}

// compile-time check: *MediaRepo must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepo)(nil)

func (m *MediaRepo) Create(ctx context.Context, media *model.Media) error {
	m.Created = media
	return m.CreateErr
}

func (m *MediaRepo) Update(ctx context.Context, media *model.Media) error {
	m.UpdateCalls++
	cp := *media
	m.Updated = &cp
	return m.UpdateErr
}

func (m *MediaRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.MediaRecord, nil
}

func (m *MediaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeleteCalled = true
	m.DeletedID = id
	return m.DeleteErr
}

func (m *MediaRepo) ListCompleted(ctx context.Context) ([]model.Media, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *MediaRepo) CountByStatus(ctx context.Context) (map[model.MediaStatus]int, error) {
	if m.CountErr != nil {
		return nil, m.CountErr
	}
	return m.CountOut, nil
}
