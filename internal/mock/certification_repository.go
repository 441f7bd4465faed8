package mock

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// CertificationRepo implements port.CertificationRepository for tests.
type CertificationRepo struct {
	Record   *model.Certification
	ListOut  []model.Certification
	CountOut map[model.CertificationStatus]int

	CreateErr error
	GetErr    error
	UpdateErr error
	ListErr   error
	CountErr  error

	Created       *model.Certification
	UpdatedID     uuid.UUID
	UpdatedStatus model.CertificationStatus
	ListStatus    model.CertificationStatus
}

// compile-time check: *CertificationRepo must satisfy port.CertificationRepository
var _ port.CertificationRepository = (*CertificationRepo)(nil)

func (m *CertificationRepo) Create(ctx context.Context, c *model.Certification) error {
	m.Created = c
	return m.CreateErr
}

func (m *CertificationRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Certification, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Record == nil {
		return nil, port.ErrNotFound
	}
	return m.Record, nil
}

func (m *CertificationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CertificationStatus) error {
	m.UpdatedID = id
	m.UpdatedStatus = status
	return m.UpdateErr
}

func (m *CertificationRepo) ListByStatus(ctx context.Context, status model.CertificationStatus) ([]model.Certification, error) {
	m.ListStatus = status
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *CertificationRepo) CountByStatus(ctx context.Context) (map[model.CertificationStatus]int, error) {
	if m.CountErr != nil {
		return nil, m.CountErr
	}
	return m.CountOut, nil
}
