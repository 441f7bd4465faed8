package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fhuszti/showcase-ms-go/internal/mock"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/event"
)

const validProduct = `{
  "name": "Runner",
  "slug": "runner",
  "category": "Shoes",
  "brand_id": "ACME",
  "price_cents": 12900,
  "currency": "EUR",
  "featured": true,
  "is_active": true
}`

func TestCreateProductHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
		wantCalled bool
		wantField  string
	}{
		{name: "created", body: validProduct, wantStatus: http.StatusCreated, wantCalled: true},
		{name: "malformed json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", body: `{"nope": 1}`, wantStatus: http.StatusBadRequest},
		{name: "bad slug", body: `{"name":"R","slug":"Not A Slug","category":"c","brand_id":"b","currency":"EUR"}`, wantStatus: http.StatusBadRequest, wantField: "slug"},
		{name: "bad currency", body: `{"name":"R","slug":"r","category":"c","brand_id":"b","currency":"EURO"}`, wantStatus: http.StatusBadRequest, wantField: "currency"},
		{name: "service error", body: validProduct, svcErr: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCalled: true},
		{name: "duplicate slug", body: validProduct, svcErr: fmt.Errorf("duplicate entry 'runner': %w", port.ErrDuplicate), wantStatus: http.StatusConflict, wantCalled: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.ProductManager{Out: &model.Product{ID: testID, Name: "Runner"}, CreateErr: tc.svcErr}
			rec := httptest.NewRecorder()
			CreateProductHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/admin/products", tc.body, false))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if svc.Created != tc.wantCalled {
				t.Errorf("service called = %v; want %v", svc.Created, tc.wantCalled)
			}
			if tc.wantField != "" {
				var errs map[string]string
				if err := json.Unmarshal(rec.Body.Bytes(), &errs); err != nil {
					t.Fatalf("body = %s", rec.Body.String())
				}
				if errs[tc.wantField] == "" {
					t.Errorf("expected error on %q, got %v", tc.wantField, errs)
				}
			}
			if tc.wantCalled && tc.svcErr == nil {
				if svc.In.Category != "shoes" || svc.In.BrandID != "acme" {
					t.Errorf("input not normalised: %+v", svc.In)
				}
			}
		})
	}
}

func TestUpdateProductHandler(t *testing.T) {
	tests := []struct {
		name       string
		withID     bool
		svcErr     error
		wantStatus int
	}{
		{name: "updated", withID: true, wantStatus: http.StatusOK},
		{name: "missing id", wantStatus: http.StatusBadRequest},
		{name: "not found", withID: true, svcErr: port.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "failure", withID: true, svcErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.ProductManager{Out: &model.Product{ID: testID}, UpdateErr: tc.svcErr}
			rec := httptest.NewRecorder()
			UpdateProductHandler(svc).ServeHTTP(rec, newRequest(http.MethodPut, "/admin/products/x", validProduct, tc.withID))

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if tc.withID && svc.ID != testID {
				t.Errorf("id = %s", svc.ID)
			}
		})
	}
}

func TestDeleteHandlers(t *testing.T) {
	tests := []struct {
		name       string
		build      func(err error) (http.HandlerFunc, func() bool)
		err        error
		wantStatus int
	}{
		{
			name: "product",
			build: func(err error) (http.HandlerFunc, func() bool) {
				svc := &mock.ProductManager{DeleteErr: err}
				return DeleteProductHandler(svc), func() bool { return svc.DeletedID == testID }
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "missing product",
			build: func(err error) (http.HandlerFunc, func() bool) {
				svc := &mock.ProductManager{DeleteErr: err}
				return DeleteProductHandler(svc), func() bool { return svc.DeletedID == testID }
			},
			err:        port.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "media",
			build: func(err error) (http.HandlerFunc, func() bool) {
				svc := &mock.MediaDeleter{Err: err}
				return DeleteMediaHandler(svc), func() bool { return svc.ID == testID }
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "media storage failure",
			build: func(err error) (http.HandlerFunc, func() bool) {
				svc := &mock.MediaDeleter{Err: err}
				return DeleteMediaHandler(svc), func() bool { return svc.ID == testID }
			},
			err:        port.ErrInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, called := tc.build(tc.err)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, newRequest(http.MethodDelete, "/admin/x", "", true))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if !called() {
				t.Error("service not called with the route ID")
			}
		})
	}
}

func TestCreateEventHandler(t *testing.T) {
	body := `{"title":"Expo","location":"Lyon","starts_at":"2024-06-01T09:00:00Z","ends_at":"2024-06-01T17:00:00Z","is_active":true}`
	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated},
		{name: "missing dates", body: `{"title":"Expo","location":"Lyon"}`, wantStatus: http.StatusBadRequest},
		{name: "bad schedule", body: body, svcErr: fmt.Errorf("%w: nope", event.ErrInvalidSchedule), wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &eventManager{out: &model.Event{ID: testID}, err: tc.svcErr}
			rec := httptest.NewRecorder()
			CreateEventHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/admin/events", tc.body, false))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestReviewCertificationHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		svcErr        error
		wantStatus    int
		wantStatusArg model.CertificationStatus
	}{
		{name: "approve", body: `{"status":"approved"}`, wantStatus: http.StatusNoContent, wantStatusArg: model.CertificationStatusApproved},
		{name: "reject", body: `{"status":"rejected"}`, wantStatus: http.StatusNoContent, wantStatusArg: model.CertificationStatusRejected},
		{name: "pending refused", body: `{"status":"pending"}`, wantStatus: http.StatusBadRequest},
		{name: "conflict", body: `{"status":"approved"}`, svcErr: port.ErrInvalidState, wantStatus: http.StatusConflict, wantStatusArg: model.CertificationStatusApproved},
		{name: "not found", body: `{"status":"approved"}`, svcErr: port.ErrNotFound, wantStatus: http.StatusNotFound, wantStatusArg: model.CertificationStatusApproved},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.CertificationReviewer{Err: tc.svcErr}
			rec := httptest.NewRecorder()
			ReviewCertificationHandler(svc).ServeHTTP(rec, newRequest(http.MethodPatch, "/admin/certifications/x", tc.body, true))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", rec.Code, tc.wantStatus)
			}
			if svc.Status != tc.wantStatusArg {
				t.Errorf("status arg = %q; want %q", svc.Status, tc.wantStatusArg)
			}
		})
	}
}

func TestSubmitCertificationHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "submitted", body: `{"company_name":"Acme","contact_email":"ops@acme.com","standard":"ISO 9001"}`, wantStatus: http.StatusCreated},
		{name: "with document", body: `{"company_name":"Acme","contact_email":"ops@acme.com","standard":"ISO 9001","document_media_id":"aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"}`, wantStatus: http.StatusCreated},
		{name: "bad email", body: `{"company_name":"Acme","contact_email":"nope","standard":"ISO 9001"}`, wantStatus: http.StatusBadRequest},
		{name: "bad document id", body: `{"company_name":"Acme","contact_email":"ops@acme.com","standard":"ISO","document_media_id":"nope"}`, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.CertificationSubmitter{Out: &model.Certification{ID: testID}}
			rec := httptest.NewRecorder()
			SubmitCertificationHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/certifications", tc.body, false))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.name == "with document" && (svc.In.DocumentMediaID == nil || *svc.In.DocumentMediaID != testID) {
				t.Errorf("document id = %v", svc.In.DocumentMediaID)
			}
		})
	}
}

func TestGalleryAdminHandlers(t *testing.T) {
	t.Run("upload link", func(t *testing.T) {
		svc := &mock.UploadLinkGenerator{Out: port.GenerateUploadLinkOutput{ID: testID, URL: "https://example.com/upload"}}
		rec := httptest.NewRecorder()
		GenerateUploadLinkHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/admin/gallery/upload_link", `{"name":"launch.png"}`, false))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		if svc.In.Name != "launch.png" || !contains(rec.Body.String(), "https://example.com/upload") {
			t.Errorf("in = %+v, body = %s", svc.In, rec.Body.String())
		}
	})

	t.Run("upload link without name", func(t *testing.T) {
		svc := &mock.UploadLinkGenerator{}
		rec := httptest.NewRecorder()
		GenerateUploadLinkHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/admin/gallery/upload_link", `{}`, false))
		if rec.Code != http.StatusBadRequest || svc.Called {
			t.Fatalf("status = %d, called = %v", rec.Code, svc.Called)
		}
	})

	t.Run("finalise", func(t *testing.T) {
		svc := &mock.UploadFinaliser{Out: &model.Media{ID: testID, Status: model.MediaStatusCompleted}}
		rec := httptest.NewRecorder()
		FinaliseUploadHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/admin/gallery/x/finalise", "", true))
		if rec.Code != http.StatusOK || svc.ID != testID {
			t.Fatalf("status = %d, id = %s", rec.Code, svc.ID)
		}
	})

	t.Run("finalise wrong state", func(t *testing.T) {
		svc := &mock.UploadFinaliser{Err: fmt.Errorf("media failed: %w", port.ErrInvalidState)}
		rec := httptest.NewRecorder()
		FinaliseUploadHandler(svc).ServeHTTP(rec, newRequest(http.MethodPost, "/admin/gallery/x/finalise", "", true))
		if rec.Code != http.StatusConflict {
			t.Fatalf("status = %d; want 409", rec.Code)
		}
	})
}

func TestDashboardAndHealth(t *testing.T) {
	dash := &mock.DashboardGetter{Out: port.DashboardOutput{ActiveProducts: 3}}
	rec := httptest.NewRecorder()
	DashboardHandler(dash).ServeHTTP(rec, newRequest(http.MethodGet, "/admin/dashboard", "", false))
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("status = %d, cache = %q", rec.Code, rec.Header().Get("Cache-Control"))
	}
	if !contains(rec.Body.String(), `"active_products":3`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	DashboardHandler(&mock.DashboardGetter{Err: errors.New("db down")}).ServeHTTP(rec, newRequest(http.MethodGet, "/admin/dashboard", "", false))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d; want 500", rec.Code)
	}

	rec = httptest.NewRecorder()
	HealthHandler(pinger{}).ServeHTTP(rec, newRequest(http.MethodGet, "/healthz", "", false))
	if rec.Code != http.StatusOK {
		t.Errorf("healthy status = %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	HealthHandler(pinger{err: errors.New("gone")}).ServeHTTP(rec, newRequest(http.MethodGet, "/healthz", "", false))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy status = %d", rec.Code)
	}
}

func TestFallbackHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFoundHandler().ServeHTTP(rec, newRequest(http.MethodGet, "/nope", "", false))
	if rec.Code != http.StatusNotFound || !contains(rec.Body.String(), `"error"`) {
		t.Errorf("404: %d %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	MethodNotAllowedHandler().ServeHTTP(rec, newRequest(http.MethodPost, "/products", "", false))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("405: %d", rec.Code)
	}
}
