package port

import (
	"context"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// ProductQuery selects one of the product listings. At most one field is set;
// the zero value is the full active catalogue.
type ProductQuery struct {
	Category string
	Featured bool
	BrandID  string
}

// ProductLister returns active products for public listings.
type ProductLister interface {
	ListProducts(ctx context.Context, q ProductQuery) ([]model.Product, error)
}

// ProductInput is the writable part of a product.
type ProductInput struct {
	Name        string
	Slug        string
	Description string
	Category    string
	BrandID     string
	PriceCents  int64
	Currency    string
	Featured    bool
	IsActive    bool
	ImageURL    *string
}

// ProductManager handles admin writes on products.
type ProductManager interface {
	CreateProduct(ctx context.Context, in ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, in ProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// EventLister returns active events, newest first.
type EventLister interface {
	ListEvents(ctx context.Context) ([]model.Event, error)
}

type EventInput struct {
	Title    string
	Location string
	StartsAt time.Time
	EndsAt   time.Time
	IsActive bool
}

// EventManager handles admin writes on events.
type EventManager interface {
	CreateEvent(ctx context.Context, in EventInput) (*model.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// CertificationLister returns approved certifications, newest submission first.
type CertificationLister interface {
	ListApprovedCertifications(ctx context.Context) ([]model.Certification, error)
}

type SubmitCertificationInput struct {
	CompanyName     string
	ContactEmail    string
	Standard        string
	DocumentMediaID *uuid.UUID
}

// CertificationSubmitter records a public certification request.
type CertificationSubmitter interface {
	SubmitCertification(ctx context.Context, in SubmitCertificationInput) (*model.Certification, error)
}

// CertificationReviewer lets admins approve or reject a request.
type CertificationReviewer interface {
	ReviewCertification(ctx context.Context, id uuid.UUID, status model.CertificationStatus) error
}

type DashboardOutput struct {
	ActiveProducts   int                               `json:"active_products"`
	InactiveProducts int                               `json:"inactive_products"`
	Events           int                               `json:"events"`
	Certifications   map[model.CertificationStatus]int `json:"certifications"`
	Medias           map[model.MediaStatus]int         `json:"medias"`
}

// DashboardGetter aggregates admin dashboard counters.
type DashboardGetter interface {
	GetDashboard(ctx context.Context) (DashboardOutput, error)
}

// GalleryItem is one completed media as shown in the public gallery.
type GalleryItem struct {
	ID         uuid.UUID      `json:"id"`
	URL        string         `json:"url"`
	MimeType   string         `json:"mime_type"`
	SizeBytes  int64          `json:"size_bytes"`
	Optimised  bool           `json:"optimised"`
	Metadata   model.Metadata `json:"metadata"`
	UploadedAt time.Time      `json:"uploaded_at"`
}

// GalleryLister returns completed medias with download links.
type GalleryLister interface {
	ListGallery(ctx context.Context) ([]GalleryItem, error)
}

// UploadLinkGenerator returns a presigned link to upload a file.
type UploadLinkGenerator interface {
	GenerateUploadLink(ctx context.Context, in GenerateUploadLinkInput) (GenerateUploadLinkOutput, error)
}
type GenerateUploadLinkInput struct {
	Name string
}
type GenerateUploadLinkOutput struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// UploadFinaliser validates the given media in the staging bucket and moves it to the gallery bucket.
type UploadFinaliser interface {
	FinaliseUpload(ctx context.Context, id uuid.UUID) (*model.Media, error)
}

// MediaDeleter deletes a media and its file.
type MediaDeleter interface {
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// MediaOptimiser reduces the file size of a gallery media.
type MediaOptimiser interface {
	OptimiseMedia(ctx context.Context, id uuid.UUID) error
}
