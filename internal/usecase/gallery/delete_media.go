package gallery

import (
	"context"
	"errors"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type deleteMediaSrv struct {
	repo port.MediaRepository
	strg port.Storage
}

func NewMediaDeleter(repo port.MediaRepository, strg port.Storage) port.MediaDeleter {
	return &deleteMediaSrv{repo: repo, strg: strg}
}

// DeleteMedia removes the file from storage, then the database record.
// A file already gone from storage does not block the record deletion.
func (s *deleteMediaSrv) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.strg.RemoveFile(ctx, media.Bucket, media.ObjectKey); err != nil {
		if !errors.Is(err, port.ErrObjectNotFound) {
			return err
		}
		logger.Warnf(ctx, "file %s/%s of media #%s already missing", media.Bucket, media.ObjectKey, media.ID)
	}

	if err := s.repo.Delete(ctx, media.ID); err != nil {
		return err
	}
	logger.Infof(ctx, "media #%s deleted", media.ID)
	return nil
}
