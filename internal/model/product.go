package model

import (
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	BrandID     string    `json:"brand_id"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Featured    bool      `json:"featured"`
	IsActive    bool      `json:"is_active"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
