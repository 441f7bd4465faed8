package gallery

import (
	"context"
	"fmt"

	"github.com/fhuszti/showcase-ms-go/internal/port"
)

type galleryListerSrv struct {
	repo port.MediaRepository
	strg port.Storage
}

func NewGalleryLister(repo port.MediaRepository, strg port.Storage) port.GalleryLister {
	return &galleryListerSrv{repo: repo, strg: strg}
}

// ListGallery returns completed medias, newest upload first, each with a
// presigned download link. Any failing link fails the whole listing.
func (s *galleryListerSrv) ListGallery(ctx context.Context) ([]port.GalleryItem, error) {
	medias, err := s.repo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]port.GalleryItem, 0, len(medias))
	for _, m := range medias {
		url, err := s.strg.GeneratePresignedDownloadURL(ctx, m.Bucket, m.ObjectKey, DownloadLinkTTL)
		if err != nil {
			return nil, fmt.Errorf("download link for media #%s: %w", m.ID, err)
		}

		item := port.GalleryItem{
			ID:         m.ID,
			URL:        url,
			Optimised:  m.Optimised,
			Metadata:   m.Metadata,
			UploadedAt: m.UploadedAt,
		}
		if m.MimeType != nil {
			item.MimeType = *m.MimeType
		}
		if m.SizeBytes != nil {
			item.SizeBytes = *m.SizeBytes
		}
		items = append(items, item)
	}
	return items, nil
}
