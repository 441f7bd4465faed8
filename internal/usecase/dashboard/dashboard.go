package dashboard

import (
	"context"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

type dashboardSrv struct {
	products       port.ProductRepository
	events         port.EventRepository
	certifications port.CertificationRepository
	medias         port.MediaRepository
}

func NewDashboardGetter(
	products port.ProductRepository,
	events port.EventRepository,
	certifications port.CertificationRepository,
	medias port.MediaRepository,
) port.DashboardGetter {
	return &dashboardSrv{products: products, events: events, certifications: certifications, medias: medias}
}

// GetDashboard reads live counters. It is never cached.
func (s *dashboardSrv) GetDashboard(ctx context.Context) (port.DashboardOutput, error) {
	var out port.DashboardOutput
	var err error

	if out.ActiveProducts, out.InactiveProducts, err = s.products.CountByActive(ctx); err != nil {
		return port.DashboardOutput{}, err
	}
	if out.Events, err = s.events.Count(ctx); err != nil {
		return port.DashboardOutput{}, err
	}
	if out.Certifications, err = s.certifications.CountByStatus(ctx); err != nil {
		return port.DashboardOutput{}, err
	}
	if out.Medias, err = s.medias.CountByStatus(ctx); err != nil {
		return port.DashboardOutput{}, err
	}
	return out, nil
}
