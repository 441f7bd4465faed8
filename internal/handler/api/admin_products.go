package api

import (
	"net/http"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Slug        string  `json:"slug" validate:"required,slug,max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Category    string  `json:"category" validate:"required,max=100"`
	BrandID     string  `json:"brand_id" validate:"required,max=100"`
	PriceCents  int64   `json:"price_cents" validate:"gte=0"`
	Currency    string  `json:"currency" validate:"required,iso4217"`
	Featured    bool    `json:"featured"`
	IsActive    bool    `json:"is_active"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

func (req ProductRequest) input() port.ProductInput {
	return port.ProductInput{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Category:    lower(req.Category),
		BrandID:     lower(req.BrandID),
		PriceCents:  req.PriceCents,
		Currency:    req.Currency,
		Featured:    req.Featured,
		IsActive:    req.IsActive,
		ImageURL:    req.ImageURL,
	}
}

func CreateProductHandler(svc port.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ProductRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, err := svc.CreateProduct(r.Context(), req.input())
		if err != nil {
			writeUsecaseError(w, "could not create product", err)
			return
		}

		RespondJSON(w, http.StatusCreated, p)
		logger.Infof(r.Context(), "✅  Successfully created product #%s", p.ID)
	}
}

func UpdateProductHandler(svc port.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req ProductRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		p, err := svc.UpdateProduct(r.Context(), id, req.input())
		if err != nil {
			writeUsecaseError(w, "could not update product #"+id.String(), err)
			return
		}

		RespondJSON(w, http.StatusOK, p)
		logger.Infof(r.Context(), "✅  Successfully updated product #%s", id)
	}
}

func DeleteProductHandler(svc port.ProductManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		if err := svc.DeleteProduct(r.Context(), id); err != nil {
			writeUsecaseError(w, "could not delete product #"+id.String(), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Successfully deleted product #%s", id)
	}
}
