package gallery

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type mediaOptimiserSrv struct {
	repo port.MediaRepository
	opt  port.FileOptimiser
	strg port.Storage
	now  func() time.Time
}

func NewMediaOptimiser(repo port.MediaRepository, opt port.FileOptimiser, strg port.Storage) port.MediaOptimiser {
	return &mediaOptimiserSrv{repo: repo, opt: opt, strg: strg, now: time.Now}
}

func (m *mediaOptimiserSrv) OptimiseMedia(ctx context.Context, id uuid.UUID) error {
	media, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if media.Status != model.MediaStatusCompleted {
		return fmt.Errorf("media status should be 'completed' to be optimised: %w", port.ErrInvalidState)
	}
	if media.Optimised {
		logger.Infof(ctx, "media #%s already optimised, skipping", media.ID)
		return nil
	}
	if media.MimeType == nil {
		return fmt.Errorf("media #%s has no mime type: %w", media.ID, port.ErrInvalidState)
	}
	mimeType := *media.MimeType

	originalReader, err := m.strg.GetFile(ctx, media.Bucket, media.ObjectKey)
	if err != nil {
		return err
	}
	defer func() { _ = originalReader.Close() }()

	compressedReader, newMimeType, err := m.opt.Compress(mimeType, originalReader)
	if err != nil {
		return err
	}
	defer func(r io.ReadCloser) { _ = r.Close() }(compressedReader)

	newObjectKey := media.ObjectKey
	if newMimeType != mimeType {
		ext, err := MimeTypeToExtension(newMimeType)
		if err != nil {
			return err
		}
		newObjectKey = strings.TrimSuffix(media.ObjectKey, filepath.Ext(media.ObjectKey)) + ext
	}

	// write to a temp key first so a broken upload never replaces the original
	tempKey := newObjectKey + ".tmp"
	if err := m.strg.SaveFile(ctx, media.Bucket, tempKey, compressedReader, -1,
		map[string]string{"Content-Type": newMimeType},
	); err != nil {
		return fmt.Errorf("failed to save temp file %q inside bucket %q: %w", tempKey, media.Bucket, err)
	}

	if err := m.strg.CopyFile(ctx, media.Bucket, tempKey, media.Bucket, newObjectKey); err != nil {
		return fmt.Errorf("failed to copy %q→%q inside bucket %q: %w", tempKey, newObjectKey, media.Bucket, err)
	}
	if err := m.strg.RemoveFile(ctx, media.Bucket, tempKey); err != nil {
		logger.Warnf(ctx, "failed to remove temp file %q from bucket %q: %v", tempKey, media.Bucket, err)
	}
	if newObjectKey != media.ObjectKey {
		if err := m.strg.RemoveFile(ctx, media.Bucket, media.ObjectKey); err != nil {
			logger.Warnf(ctx, "failed to remove old file %q from bucket %q: %v", media.ObjectKey, media.Bucket, err)
		}
	}

	info, err := m.strg.StatFile(ctx, media.Bucket, newObjectKey)
	if err != nil {
		return fmt.Errorf("failed reading info about file %q inside bucket %q: %w", newObjectKey, media.Bucket, err)
	}
	newSize := info.SizeBytes

	media.Optimised = true
	media.SizeBytes = &newSize
	media.MimeType = &newMimeType
	media.ObjectKey = newObjectKey
	media.UpdatedAt = m.now().UTC()
	if err := m.repo.Update(ctx, media); err != nil {
		return fmt.Errorf("failed updating media: %w", err)
	}
	logger.Infof(ctx, "✅  media #%s optimised (%s, %d bytes)", media.ID, newMimeType, newSize)
	return nil
}
