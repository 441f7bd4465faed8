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

const mediaColumns = "id, object_key, bucket, original_filename, mime_type, size_bytes, status, optimised, failure_message, metadata, uploaded_at, updated_at"

type MediaRepository struct {
	db *sql.DB
}

// compile-time check: *MediaRepository must satisfy port.MediaRepository
var _ port.MediaRepository = (*MediaRepository)(nil)

func NewMediaRepository(db *sql.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

func (r *MediaRepository) Create(ctx context.Context, media *model.Media) error {
	logger.Debugf(ctx, "creating database record for media #%s, at status %q...", media.ID, media.Status)

	const query = `
      INSERT INTO medias
        (id, object_key, bucket, original_filename, mime_type, size_bytes, status, optimised, failure_message, metadata, uploaded_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ID, media.ObjectKey, media.Bucket,
		media.OriginalFilename, media.MimeType,
		media.SizeBytes, media.Status, media.Optimised,
		media.FailureMessage, media.Metadata,
		media.UploadedAt, media.UpdatedAt,
	)
	return err
}

func (r *MediaRepository) Update(ctx context.Context, media *model.Media) error {
	logger.Debugf(ctx, "updating database record for media #%s, with status %q...", media.ID, media.Status)

	const query = `
      UPDATE medias
      SET
        object_key      = ?,
        bucket          = ?,
        mime_type       = ?,
        size_bytes      = ?,
        status          = ?,
        optimised       = ?,
        failure_message = ?,
        metadata        = ?,
        updated_at      = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		media.ObjectKey,
		media.Bucket,
		media.MimeType,
		media.SizeBytes,
		media.Status,
		media.Optimised,
		media.FailureMessage,
		media.Metadata,
		media.UpdatedAt,
		media.ID, // WHERE clause
	)
	return err
}

func (r *MediaRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	logger.Debugf(ctx, "fetching media #%s from the database...", id)

	row := r.db.QueryRowContext(ctx, "SELECT "+mediaColumns+" FROM medias WHERE id = ?", id)
	media, err := scanMedia(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (r *MediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Debugf(ctx, "deleting database record for media #%s...", id)

	res, err := r.db.ExecContext(ctx, "DELETE FROM medias WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *MediaRepository) ListCompleted(ctx context.Context) ([]model.Media, error) {
	query, args := querycatalog.GalleryCompleted.SQL(mediaColumns)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]model.Media, 0)
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *media)
	}
	return out, rows.Err()
}

func (r *MediaRepository) CountByStatus(ctx context.Context) (map[model.MediaStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM medias GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := map[model.MediaStatus]int{
		model.MediaStatusPending:   0,
		model.MediaStatusCompleted: 0,
		model.MediaStatusFailed:    0,
	}
	for rows.Next() {
		var status model.MediaStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[status] = n
	}
	return out, rows.Err()
}

func scanMedia(s scanner) (*model.Media, error) {
	var media model.Media
	if err := s.Scan(
		&media.ID, &media.ObjectKey, &media.Bucket,
		&media.OriginalFilename, &media.MimeType,
		&media.SizeBytes, &media.Status, &media.Optimised,
		&media.FailureMessage, &media.Metadata,
		&media.UploadedAt, &media.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &media, nil
}
