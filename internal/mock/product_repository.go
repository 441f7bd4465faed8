package mock

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// ProductRepo implements port.ProductRepository for tests.
type ProductRepo struct {
	Record   *model.Product
	ListOut  []model.Product
	Active   int
	Inactive int

	CreateErr error
	UpdateErr error
	GetErr    error
	DeleteErr error
	ListErr   error
	CountErr  error

	Created   *model.Product
	Updated   *model.Product
	DeletedID uuid.UUID
	// LastList names the list method called last, with its argument.
	LastList string
	ListArg  string
}

// compile-time check: *ProductRepo must satisfy port.ProductRepository
var _ port.ProductRepository = (*ProductRepo)(nil)

func (m *ProductRepo) Create(ctx context.Context, p *model.Product) error {
	m.Created = p
	return m.CreateErr
}

func (m *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	m.Updated = p
	return m.UpdateErr
}

func (m *ProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.Record == nil {
		return nil, port.ErrNotFound
	}
	cp := *m.Record
	return &cp, nil
}

func (m *ProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

func (m *ProductRepo) list(name, arg string) ([]model.Product, error) {
	m.LastList = name
	m.ListArg = arg
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *ProductRepo) ListActive(ctx context.Context) ([]model.Product, error) {
	return m.list("active", "")
}

func (m *ProductRepo) ListActiveByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return m.list("category", category)
}

func (m *ProductRepo) ListFeatured(ctx context.Context) ([]model.Product, error) {
	return m.list("featured", "")
}

func (m *ProductRepo) ListActiveByBrand(ctx context.Context, brandID string) ([]model.Product, error) {
	return m.list("brand", brandID)
}

func (m *ProductRepo) CountByActive(ctx context.Context) (int, int, error) {
	if m.CountErr != nil {
		return 0, 0, m.CountErr
	}
	return m.Active, m.Inactive, nil
}
