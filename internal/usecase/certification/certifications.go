package certification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type certificationSrv struct {
	repo  port.CertificationRepository
	genID uuid.Gen
	now   func() time.Time
}

// NewCertificationService serves the public listing and submission, and the
// admin review.
func NewCertificationService(repo port.CertificationRepository, genID uuid.Gen) interface {
	port.CertificationLister
	port.CertificationSubmitter
	port.CertificationReviewer
} {
	return &certificationSrv{repo: repo, genID: genID, now: time.Now}
}

func (s *certificationSrv) ListApprovedCertifications(ctx context.Context) ([]model.Certification, error) {
	return s.repo.ListByStatus(ctx, model.CertificationStatusApproved)
}

func (s *certificationSrv) SubmitCertification(ctx context.Context, in port.SubmitCertificationInput) (*model.Certification, error) {
	c := &model.Certification{
		ID:              s.genID(),
		CompanyName:     strings.TrimSpace(in.CompanyName),
		ContactEmail:    strings.ToLower(strings.TrimSpace(in.ContactEmail)),
		Standard:        strings.TrimSpace(in.Standard),
		Status:          model.CertificationStatusPending,
		DocumentMediaID: in.DocumentMediaID,
		SubmittedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	logger.Infof(ctx, "certification request #%s submitted for %q", c.ID, c.Standard)
	return c, nil
}

// ReviewCertification moves a pending request to approved or rejected.
// Re-applying the current status is accepted.
func (s *certificationSrv) ReviewCertification(ctx context.Context, id uuid.UUID, status model.CertificationStatus) error {
	if status != model.CertificationStatusApproved && status != model.CertificationStatusRejected {
		return fmt.Errorf("cannot review to status %q: %w", status, port.ErrInvalidState)
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.Status == status {
		return nil
	}
	if c.Status != model.CertificationStatusPending {
		return fmt.Errorf("certification #%s is already %s: %w", id, c.Status, port.ErrInvalidState)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	logger.Infof(ctx, "certification #%s %s", id, status)
	return nil
}
