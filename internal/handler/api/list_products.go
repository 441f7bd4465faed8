package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fhuszti/showcase-ms-go/internal/cache"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// ListProductsHandler serves GET /products, optionally filtered by ?category=.
func ListProductsHandler(renderer port.ListingRenderer, svc port.ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := strings.TrimSpace(r.URL.Query().Get("category"))
		q := port.ProductQuery{Category: strings.ToLower(category)}
		serveListing(w, r, renderer, cache.Key("products", "category", q.Category), productFetcher(svc, q))
	}
}

// ListFeaturedProductsHandler serves GET /products/featured.
func ListFeaturedProductsHandler(renderer port.ListingRenderer, svc port.ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := port.ProductQuery{Featured: true}
		serveListing(w, r, renderer, cache.Key("products", "featured", "true"), productFetcher(svc, q))
	}
}

// ListBrandProductsHandler serves GET /brands/{brandId}/products.
func ListBrandProductsHandler(renderer port.ListingRenderer, svc port.ProductLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "brandId")))
		if brandID == "" {
			WriteError(w, http.StatusBadRequest, "brand ID is required", nil)
			return
		}
		q := port.ProductQuery{BrandID: brandID}
		serveListing(w, r, renderer, cache.Key("products", "brand", brandID), productFetcher(svc, q))
	}
}

func productFetcher(svc port.ProductLister, q port.ProductQuery) port.ListingFetcher {
	return func(ctx context.Context) (any, int, error) {
		products, err := svc.ListProducts(ctx, q)
		if err != nil {
			return nil, 0, err
		}
		return products, len(products), nil
	}
}
