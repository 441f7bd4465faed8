package port

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p *model.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]model.Product, error)
	ListActiveByCategory(ctx context.Context, category string) ([]model.Product, error)
	ListFeatured(ctx context.Context) ([]model.Product, error)
	ListActiveByBrand(ctx context.Context, brandID string) ([]model.Product, error)
	CountByActive(ctx context.Context) (active int, inactive int, err error)
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e *model.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]model.Event, error)
	Count(ctx context.Context) (int, error)
}

// CertificationRepository defines persistence operations for certification requests.
type CertificationRepository interface {
	Create(ctx context.Context, c *model.Certification) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Certification, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.CertificationStatus) error
	ListByStatus(ctx context.Context, status model.CertificationStatus) ([]model.Certification, error)
	CountByStatus(ctx context.Context) (map[model.CertificationStatus]int, error)
}

// MediaRepository defines persistence operations for gallery medias.
type MediaRepository interface {
	Create(ctx context.Context, m *model.Media) error
	Update(ctx context.Context, m *model.Media) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListCompleted(ctx context.Context) ([]model.Media, error)
	CountByStatus(ctx context.Context) (map[model.MediaStatus]int, error)
}
