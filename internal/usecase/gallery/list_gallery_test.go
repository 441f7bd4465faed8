package gallery

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fhuszti/showcase-ms-go/internal/mock"
	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

func TestListGallery_Success(t *testing.T) {
	first := completedMedia()
	first.Metadata = model.Metadata{Width: 800, Height: 600}
	first.Optimised = true
	second := model.Media{
		ID:        uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		ObjectKey: "11111111-2222-3333-4444-555555555555.pdf",
		Bucket:    "gallery",
		Status:    model.MediaStatusCompleted,
	}
	repo := &mock.MediaRepo{ListOut: []model.Media{*first, second}}
	strg := &mock.Storage{}

	items, err := NewGalleryLister(repo, strg).ListGallery(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d; want 2", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Error("order must follow the repository")
	}
	if items[0].URL != "https://example.com/download/gallery/"+first.ObjectKey {
		t.Errorf("url = %q", items[0].URL)
	}
	if items[0].MimeType != "image/png" || items[0].SizeBytes != 2048 || !items[0].Optimised {
		t.Errorf("item = %+v", items[0])
	}
	if items[0].Metadata.Width != 800 {
		t.Errorf("metadata = %+v", items[0].Metadata)
	}
	if items[1].MimeType != "" || items[1].SizeBytes != 0 {
		t.Errorf("nil fields should map to zero values, got %+v", items[1])
	}
	if strg.TTL != DownloadLinkTTL {
		t.Errorf("TTL = %v; want %v", strg.TTL, DownloadLinkTTL)
	}
}

func TestListGallery_Empty(t *testing.T) {
	items, err := NewGalleryLister(&mock.MediaRepo{}, &mock.Storage{}).ListGallery(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", items)
	}
}

func TestListGallery_Errors(t *testing.T) {
	t.Run("repository", func(t *testing.T) {
		repo := &mock.MediaRepo{ListErr: errors.New("db down")}
		if _, err := NewGalleryLister(repo, &mock.Storage{}).ListGallery(context.Background()); err == nil || err.Error() != "db down" {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("presign", func(t *testing.T) {
		repo := &mock.MediaRepo{ListOut: []model.Media{*completedMedia()}}
		strg := &mock.Storage{GenerateDownloadLinkErr: errors.New("minio down")}
		_, err := NewGalleryLister(repo, strg).ListGallery(context.Background())
		if err == nil || !strings.Contains(err.Error(), "minio down") {
			t.Fatalf("err = %v", err)
		}
	})
}
