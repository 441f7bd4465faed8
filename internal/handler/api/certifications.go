package api

import (
	"net/http"

	"github.com/fhuszti/showcase-ms-go/internal/api_context"
	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type SubmitCertificationRequest struct {
	CompanyName     string     `json:"company_name" validate:"required,max=200"`
	ContactEmail    string     `json:"contact_email" validate:"required,email"`
	Standard        string     `json:"standard" validate:"required,max=100"`
	DocumentMediaID *uuid.UUID `json:"document_media_id" validate:"omitempty"`
}

// SubmitCertificationHandler serves the public POST /certifications.
func SubmitCertificationHandler(svc port.CertificationSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitCertificationRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		c, err := svc.SubmitCertification(r.Context(), port.SubmitCertificationInput{
			CompanyName:     req.CompanyName,
			ContactEmail:    req.ContactEmail,
			Standard:        req.Standard,
			DocumentMediaID: req.DocumentMediaID,
		})
		if err != nil {
			writeUsecaseError(w, "could not submit certification", err)
			return
		}

		RespondJSON(w, http.StatusCreated, c)
		logger.Infof(r.Context(), "✅  Certification request #%s received", c.ID)
	}
}

type ReviewCertificationRequest struct {
	Status string `json:"status" validate:"required,review_status"`
}

// ReviewCertificationHandler serves PATCH /admin/certifications/{id}.
func ReviewCertificationHandler(svc port.CertificationReviewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		var req ReviewCertificationRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		status := model.CertificationStatus(req.Status)
		if err := svc.ReviewCertification(r.Context(), id, status); err != nil {
			writeUsecaseError(w, "could not review certification #"+id.String(), err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		logger.Infof(r.Context(), "✅  Certification #%s marked %s", id, status)
	}
}
