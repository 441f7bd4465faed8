package mock

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

// ProductLister implements port.ProductLister for tests.
type ProductLister struct {
	Out    []model.Product
	Err    error
	Query  port.ProductQuery
	Called int
}

func (m *ProductLister) ListProducts(ctx context.Context, q port.ProductQuery) ([]model.Product, error) {
	m.Called++
	m.Query = q
	return m.Out, m.Err
}

// ProductManager implements port.ProductManager for tests.
type ProductManager struct {
	Out       *model.Product
	CreateErr error
	UpdateErr error
	DeleteErr error

	In        port.ProductInput
	ID        uuid.UUID
	Created   bool
	Updated   bool
	DeletedID uuid.UUID
}

func (m *ProductManager) CreateProduct(ctx context.Context, in port.ProductInput) (*model.Product, error) {
	m.Created = true
	m.In = in
	return m.Out, m.CreateErr
}

func (m *ProductManager) UpdateProduct(ctx context.Context, id uuid.UUID, in port.ProductInput) (*model.Product, error) {
	m.Updated = true
	m.ID = id
	m.In = in
	return m.Out, m.UpdateErr
}

func (m *ProductManager) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	m.DeletedID = id
	return m.DeleteErr
}

// EventLister implements port.EventLister for tests.
type EventLister struct {
	Out    []model.Event
	Err    error
	Called int
}

func (m *EventLister) ListEvents(ctx context.Context) ([]model.Event, error) {
	m.Called++
	return m.Out, m.Err
}

// CertificationLister implements port.CertificationLister for tests.
type CertificationLister struct {
	Out    []model.Certification
	Err    error
	Called int
}

func (m *CertificationLister) ListApprovedCertifications(ctx context.Context) ([]model.Certification, error) {
	m.Called++
	return m.Out, m.Err
}

// CertificationSubmitter implements port.CertificationSubmitter for tests.
type CertificationSubmitter struct {
	Out    *model.Certification
	Err    error
	In     port.SubmitCertificationInput
	Called bool
}

func (m *CertificationSubmitter) SubmitCertification(ctx context.Context, in port.SubmitCertificationInput) (*model.Certification, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// CertificationReviewer implements port.CertificationReviewer for tests.
type CertificationReviewer struct {
	Err    error
	ID     uuid.UUID
	Status model.CertificationStatus
	Called bool
}

func (m *CertificationReviewer) ReviewCertification(ctx context.Context, id uuid.UUID, status model.CertificationStatus) error {
	m.Called = true
	m.ID = id
	m.Status = status
	return m.Err
}

// DashboardGetter implements port.DashboardGetter for tests.
type DashboardGetter struct {
	Out    port.DashboardOutput
	Err    error
	Called bool
}

func (m *DashboardGetter) GetDashboard(ctx context.Context) (port.DashboardOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// GalleryLister implements port.GalleryLister for tests.
type GalleryLister struct {
	Out    []port.GalleryItem
	Err    error
	Called int
}

func (m *GalleryLister) ListGallery(ctx context.Context) ([]port.GalleryItem, error) {
	m.Called++
	return m.Out, m.Err
}

// UploadLinkGenerator implements port.UploadLinkGenerator for tests.
type UploadLinkGenerator struct {
	Out    port.GenerateUploadLinkOutput
	Err    error
	In     port.GenerateUploadLinkInput
	Called bool
}

func (m *UploadLinkGenerator) GenerateUploadLink(ctx context.Context, in port.GenerateUploadLinkInput) (port.GenerateUploadLinkOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// UploadFinaliser implements port.UploadFinaliser for tests.
type UploadFinaliser struct {
	Out    *model.Media
	Err    error
	ID     uuid.UUID
	Called bool
}

func (m *UploadFinaliser) FinaliseUpload(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	m.Called = true
	m.ID = id
	return m.Out, m.Err
}

// MediaDeleter implements port.MediaDeleter for tests.
type MediaDeleter struct {
	Err    error
	ID     uuid.UUID
	Called bool
}

func (m *MediaDeleter) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MediaOptimiser implements port.MediaOptimiser for tests.
type MediaOptimiser struct {
	Err    error
	ID     uuid.UUID
	Called bool
}

func (m *MediaOptimiser) OptimiseMedia(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}
