package api

import (
	"context"
	"net/http"

	"github.com/fhuszti/showcase-ms-go/internal/cache"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// ListEventsHandler serves GET /events.
func ListEventsHandler(renderer port.ListingRenderer, svc port.EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveListing(w, r, renderer, cache.Key("events"), func(ctx context.Context) (any, int, error) {
			events, err := svc.ListEvents(ctx)
			return events, len(events), err
		})
	}
}

// ListCertificationsHandler serves GET /certifications (approved only).
func ListCertificationsHandler(renderer port.ListingRenderer, svc port.CertificationLister) http.HandlerFunc {
	key := cache.Key("certifications", "status", string(model.CertificationStatusApproved))
	return func(w http.ResponseWriter, r *http.Request) {
		serveListing(w, r, renderer, key, func(ctx context.Context) (any, int, error) {
			certs, err := svc.ListApprovedCertifications(ctx)
			return certs, len(certs), err
		})
	}
}

// ListGalleryHandler serves GET /gallery.
func ListGalleryHandler(renderer port.ListingRenderer, svc port.GalleryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serveListing(w, r, renderer, cache.Key("gallery"), func(ctx context.Context) (any, int, error) {
			items, err := svc.ListGallery(ctx)
			return items, len(items), err
		})
	}
}
