package mariadb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/querycatalog"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

const certificationColumns = "id, company_name, contact_email, standard, status, document_media_id, submitted_at"

type CertificationRepository struct {
	db *sql.DB
}

// compile-time check: *CertificationRepository must satisfy port.CertificationRepository
var _ port.CertificationRepository = (*CertificationRepository)(nil)

func NewCertificationRepository(db *sql.DB) *CertificationRepository {
	return &CertificationRepository{db: db}
}

func (r *CertificationRepository) Create(ctx context.Context, c *model.Certification) error {
	logger.Debugf(ctx, "creating database record for certification #%s, at status %q...", c.ID, c.Status)

	const query = `
      INSERT INTO certifications
        (id, company_name, contact_email, standard, status, document_media_id, submitted_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.CompanyName, c.ContactEmail, c.Standard,
		c.Status, c.DocumentMediaID, c.SubmittedAt,
	)
	return err
}

func (r *CertificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Certification, error) {
	logger.Debugf(ctx, "fetching certification #%s from the database...", id)

	row := r.db.QueryRowContext(ctx, "SELECT "+certificationColumns+" FROM certifications WHERE id = ?", id)
	c, err := scanCertification(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CertificationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.CertificationStatus) error {
	logger.Debugf(ctx, "moving certification #%s to status %q...", id, status)

	_, err := r.db.ExecContext(ctx, "UPDATE certifications SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *CertificationRepository) ListByStatus(ctx context.Context, status model.CertificationStatus) ([]model.Certification, error) {
	query, args := querycatalog.CertificationsByStatus.With("status", string(status)).SQL(certificationColumns)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *CertificationRepository) CountByStatus(ctx context.Context) (map[model.CertificationStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM certifications GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := map[model.CertificationStatus]int{
		model.CertificationStatusPending:  0,
		model.CertificationStatusApproved: 0,
		model.CertificationStatusRejected: 0,
	}
	for rows.Next() {
		var status model.CertificationStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func scanCertification(s scanner) (*model.Certification, error) {
	var c model.Certification
	if err := s.Scan(
		&c.ID, &c.CompanyName, &c.ContactEmail, &c.Standard,
		&c.Status, &c.DocumentMediaID, &c.SubmittedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
