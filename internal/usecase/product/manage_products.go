package product

import (
	"context"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type productManagerSrv struct {
	repo  port.ProductRepository
	genID uuid.Gen
	now   func() time.Time
}

// NewProductManager builds the admin product service. Writes never touch the
// listing caches; public listings catch up once their entries expire.
func NewProductManager(repo port.ProductRepository, genID uuid.Gen) port.ProductManager {
	return &productManagerSrv{repo: repo, genID: genID, now: time.Now}
}

func (s *productManagerSrv) CreateProduct(ctx context.Context, in port.ProductInput) (*model.Product, error) {
	now := s.now().UTC()
	p := &model.Product{ID: s.genID(), CreatedAt: now, UpdatedAt: now}
	apply(p, in)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "product #%s created", p.ID)
	return p, nil
}

func (s *productManagerSrv) UpdateProduct(ctx context.Context, id uuid.UUID, in port.ProductInput) (*model.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(p, in)
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "product #%s updated", p.ID)
	return p, nil
}

func (s *productManagerSrv) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infof(ctx, "product #%s deleted", id)
	return nil
}

func apply(p *model.Product, in port.ProductInput) {
	p.Name = in.Name
	p.Slug = in.Slug
	p.Description = in.Description
	p.Category = in.Category
	p.BrandID = in.BrandID
	p.PriceCents = in.PriceCents
	p.Currency = in.Currency
	p.Featured = in.Featured
	p.IsActive = in.IsActive
	p.ImageURL = in.ImageURL
}
