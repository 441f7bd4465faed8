package product

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

type productListerSrv struct {
	repo port.ProductRepository
}

func NewProductLister(repo port.ProductRepository) port.ProductLister {
	return &productListerSrv{repo: repo}
}

// ListProducts picks the repository listing matching q. Featured wins over
// brand, which wins over category.
func (s *productListerSrv) ListProducts(ctx context.Context, q port.ProductQuery) ([]model.Product, error) {
	switch {
	case q.Featured:
		return s.repo.ListFeatured(ctx)
	case q.BrandID != "":
		return s.repo.ListActiveByBrand(ctx, q.BrandID)
	case q.Category != "":
		return s.repo.ListActiveByCategory(ctx, q.Category)
	default:
		return s.repo.ListActive(ctx)
	}
}
