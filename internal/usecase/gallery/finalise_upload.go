package gallery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/ledongthuc/pdf"
	_ "golang.org/x/image/webp"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type uploadFinaliserSrv struct {
	repo          port.MediaRepository
	strg          port.Storage
	tasks         port.TaskDispatcher
	galleryBucket string
	now           func() time.Time
}

func NewUploadFinaliser(repo port.MediaRepository, strg port.Storage, tasks port.TaskDispatcher, galleryBucket string) port.UploadFinaliser {
	return &uploadFinaliserSrv{repo: repo, strg: strg, tasks: tasks, galleryBucket: galleryBucket, now: time.Now}
}

// FinaliseUpload checks the staged file, moves it into the gallery bucket and
// marks the media completed. Finalising a completed media is a no-op.
func (s *uploadFinaliserSrv) FinaliseUpload(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	media, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if media.Status == model.MediaStatusCompleted {
		return media, nil
	}
	if media.Status != model.MediaStatusPending {
		return nil, fmt.Errorf("media status should be 'pending' to be finalised: %w", port.ErrInvalidState)
	}

	var finalErr error
	stagingBucket, stagingKey := media.Bucket, media.ObjectKey
	defer func() {
		if finalErr == nil {
			return
		}
		if err := s.strg.RemoveFile(context.Background(), stagingBucket, stagingKey); err != nil {
			logger.Warnf(ctx, "cleanup failed for staging file %q: %v", stagingKey, err)
		}
		if err := s.markAsFailed(ctx, media, finalErr.Error()); err != nil {
			logger.Errorf(ctx, "marking media #%s as failed: %v", media.ID, err)
		}
	}()

	info, err := s.strg.StatFile(ctx, stagingBucket, stagingKey)
	if err != nil {
		if errors.Is(err, port.ErrObjectNotFound) {
			finalErr = fmt.Errorf("staging file %q not found", stagingKey)
		} else {
			finalErr = fmt.Errorf("stats for file %q failed: %w", stagingKey, err)
		}
		return nil, finalErr
	}

	if info.SizeBytes < MinFileSize {
		finalErr = fmt.Errorf("file %q too small: %d bytes (min size: %d bytes)", stagingKey, info.SizeBytes, MinFileSize)
		return nil, finalErr
	}
	if info.SizeBytes > MaxFileSize {
		finalErr = fmt.Errorf("file %q too large: %d bytes (max size: %d bytes)", stagingKey, info.SizeBytes, MaxFileSize)
		return nil, finalErr
	}
	if !IsMimeTypeAllowed(info.ContentType) {
		finalErr = fmt.Errorf("unsupported mime-type %q for file %q", info.ContentType, stagingKey)
		return nil, finalErr
	}

	if err := s.moveFile(ctx, media, info); err != nil {
		finalErr = fmt.Errorf("move file %q from staging to bucket %q failed: %w", stagingKey, s.galleryBucket, err)
		return nil, finalErr
	}
	logger.Infof(ctx, "✅  media #%s finalised into %s/%s", media.ID, media.Bucket, media.ObjectKey)

	if err := s.tasks.EnqueueOptimiseMedia(ctx, media.ID); err != nil {
		logger.Warnf(ctx, "failed to enqueue optimisation for media #%s: %v", media.ID, err)
	}

	return media, nil
}

func (s *uploadFinaliserSrv) markAsFailed(ctx context.Context, media *model.Media, reason string) error {
	media.Status = model.MediaStatusFailed
	media.FailureMessage = &reason
	media.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, media)
}

func (s *uploadFinaliserSrv) moveFile(ctx context.Context, media *model.Media, info port.FileInfo) error {
	ext, err := MimeTypeToExtension(info.ContentType)
	if err != nil {
		return err
	}

	file, err := s.strg.GetFile(ctx, media.Bucket, media.ObjectKey)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Warnf(ctx, "failed to close staging reader for %q: %v", media.ObjectKey, err)
		}
	}()

	metadata, err := fillMetadata(info.ContentType, file)
	if err != nil {
		return fmt.Errorf("failed to fill metadata: %w", err)
	}

	newObjectKey := media.ObjectKey + ext
	if err := s.strg.CopyFile(ctx, media.Bucket, media.ObjectKey, s.galleryBucket, newObjectKey); err != nil {
		return err
	}

	// media keeps pointing at staging until the completed record is saved.
	moved := *media
	size, contentType := info.SizeBytes, info.ContentType
	moved.ObjectKey = newObjectKey
	moved.Bucket = s.galleryBucket
	moved.Status = model.MediaStatusCompleted
	moved.SizeBytes = &size
	moved.MimeType = &contentType
	moved.Metadata = metadata
	moved.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, &moved); err != nil {
		if rmErr := s.strg.RemoveFile(context.Background(), s.galleryBucket, newObjectKey); rmErr != nil {
			logger.Warnf(ctx, "failed to remove orphaned gallery copy %q: %v", newObjectKey, rmErr)
		}
		return fmt.Errorf("failed updating media: %w", err)
	}

	if err := s.strg.RemoveFile(ctx, media.Bucket, media.ObjectKey); err != nil {
		logger.Warnf(ctx, "failed to clean up file %q in staging: %v", media.ObjectKey, err)
	}
	*media = moved
	return nil
}

func fillMetadata(mimeType string, file io.Reader) (model.Metadata, error) {
	switch {
	case IsImage(mimeType):
		return fillImageMetadata(file)
	case IsPdf(mimeType):
		return fillPdfMetadata(file)
	default:
		return model.Metadata{}, errors.New("unsupported mime-type")
	}
}

func fillImageMetadata(file io.Reader) (model.Metadata, error) {
	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error decoding image config: %w", err)
	}
	return model.Metadata{Width: cfg.Width, Height: cfg.Height}, nil
}

func fillPdfMetadata(file io.Reader) (model.Metadata, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error reading PDF data: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return model.Metadata{}, fmt.Errorf("error opening pdf reader: %w", err)
	}
	return model.Metadata{PageCount: reader.NumPage()}, nil
}
