package integration

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/port"
	"github.com/fhuszti/showcase-ms-go/internal/repository/mariadb"
	"github.com/fhuszti/showcase-ms-go/internal/task"
	"github.com/fhuszti/showcase-ms-go/internal/usecase/gallery"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
	"github.com/fhuszti/showcase-ms-go/test/testutil"
)

func putPresigned(t *testing.T, url, contentType string, content []byte) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(content))
	if err != nil {
		t.Fatalf("build upload request: %v", err)
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("upload status = %d: %s", resp.StatusCode, body)
	}
}

func waitOptimised(t *testing.T, repo port.MediaRepository, id uuid.UUID) *model.Media {
	t.Helper()
	deadline := time.Now().Add(15 * time.Second)
	for {
		out, err := repo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if out.Optimised {
			return out
		}
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for optimisation of %s", id)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

func TestGalleryIntegration_UploadFinaliseOptimiseList(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t).DB
	setupBuckets(t)

	repo := mariadb.NewMediaRepository(db)
	dispatcher := task.NewDispatcher(RedisAddr, "")
	t.Cleanup(func() { _ = dispatcher.Close() })
	stop := testutil.StartWorker(db, GlobalStrg, RedisAddr)
	t.Cleanup(stop)

	linkSvc := gallery.NewUploadLinkGenerator(repo, GlobalStrg, testutil.StagingBucket, uuid.NewUUID)
	finaliser := gallery.NewUploadFinaliser(repo, GlobalStrg, dispatcher, testutil.GalleryBucket)
	lister := gallery.NewGalleryLister(repo, GlobalStrg)

	link, err := linkSvc.GenerateUploadLink(ctx, port.GenerateUploadLinkInput{Name: "booth.png"})
	if err != nil {
		t.Fatalf("GenerateUploadLink: %v", err)
	}
	pending, err := repo.GetByID(ctx, link.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if pending.Status != model.MediaStatusPending || pending.Bucket != testutil.StagingBucket {
		t.Fatalf("new media = %s in %q; want pending in staging", pending.Status, pending.Bucket)
	}

	width, height := 64, 48
	putPresigned(t, link.URL, "image/png", testutil.GeneratePNG(t, width, height))

	media, err := finaliser.FinaliseUpload(ctx, link.ID)
	if err != nil {
		t.Fatalf("FinaliseUpload: %v", err)
	}
	if media.Status != model.MediaStatusCompleted {
		t.Errorf("Status = %q; want completed", media.Status)
	}
	if media.ObjectKey != link.ID.String()+".png" {
		t.Errorf("ObjectKey = %q; want %q", media.ObjectKey, link.ID.String()+".png")
	}
	if media.Metadata.Width != width || media.Metadata.Height != height {
		t.Errorf("Metadata = %+v; want %dx%d", media.Metadata, width, height)
	}
	if exists, _ := GlobalStrg.FileExists(ctx, testutil.StagingBucket, link.ID.String()); exists {
		t.Error("staging file should be removed after finalisation")
	}

	optimised := waitOptimised(t, repo, link.ID)
	if optimised.ObjectKey != link.ID.String()+".webp" {
		t.Errorf("optimised ObjectKey = %q; want .webp", optimised.ObjectKey)
	}
	if optimised.MimeType == nil || *optimised.MimeType != "image/webp" {
		t.Errorf("optimised MimeType = %v; want image/webp", optimised.MimeType)
	}
	if exists, _ := GlobalStrg.FileExists(ctx, testutil.GalleryBucket, media.ObjectKey); exists {
		t.Error("original png should be replaced by the webp")
	}
	if exists, _ := GlobalStrg.FileExists(ctx, testutil.GalleryBucket, optimised.ObjectKey+".tmp"); exists {
		t.Error("temp file should be removed")
	}

	items, err := lister.ListGallery(ctx)
	if err != nil {
		t.Fatalf("ListGallery: %v", err)
	}
	if len(items) != 1 || items[0].ID != link.ID {
		t.Fatalf("ListGallery = %+v; want the optimised media only", items)
	}
	if !items[0].Optimised || items[0].MimeType != "image/webp" {
		t.Errorf("item = %+v; want optimised webp", items[0])
	}

	resp, err := http.Get(items[0].URL)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("download status = %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, optimised.ObjectKey) {
		t.Errorf("Content-Disposition = %q; want inline with %q", cd, optimised.ObjectKey)
	}
}

func TestGalleryIntegration_FinaliseRejectsTooSmallFile(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t).DB
	setupBuckets(t)

	repo := mariadb.NewMediaRepository(db)
	linkSvc := gallery.NewUploadLinkGenerator(repo, GlobalStrg, testutil.StagingBucket, uuid.NewUUID)
	finaliser := gallery.NewUploadFinaliser(repo, GlobalStrg, task.NewNoopDispatcher(), testutil.GalleryBucket)

	link, err := linkSvc.GenerateUploadLink(ctx, port.GenerateUploadLinkInput{Name: "tiny.png"})
	if err != nil {
		t.Fatalf("GenerateUploadLink: %v", err)
	}
	putPresigned(t, link.URL, "image/png", []byte("too small"))

	if _, err := finaliser.FinaliseUpload(ctx, link.ID); err == nil {
		t.Fatal("expected FinaliseUpload to fail")
	}

	media, err := repo.GetByID(ctx, link.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if media.Status != model.MediaStatusFailed {
		t.Errorf("Status = %q; want failed", media.Status)
	}
	if media.FailureMessage == nil || !strings.Contains(*media.FailureMessage, "too small") {
		t.Errorf("FailureMessage = %v; want it to mention the size", media.FailureMessage)
	}
	if exists, _ := GlobalStrg.FileExists(ctx, testutil.StagingBucket, link.ID.String()); exists {
		t.Error("rejected staging file should be removed")
	}

	// a failed media cannot be finalised again
	if _, err := finaliser.FinaliseUpload(ctx, link.ID); !errors.Is(err, port.ErrInvalidState) {
		t.Errorf("second FinaliseUpload err = %v; want ErrInvalidState", err)
	}
}

func TestGalleryIntegration_DeleteMedia(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t).DB
	setupBuckets(t)

	repo := mariadb.NewMediaRepository(db)
	linkSvc := gallery.NewUploadLinkGenerator(repo, GlobalStrg, testutil.StagingBucket, uuid.NewUUID)
	finaliser := gallery.NewUploadFinaliser(repo, GlobalStrg, task.NewNoopDispatcher(), testutil.GalleryBucket)
	deleter := gallery.NewMediaDeleter(repo, GlobalStrg)

	link, err := linkSvc.GenerateUploadLink(ctx, port.GenerateUploadLinkInput{Name: "stand.webp"})
	if err != nil {
		t.Fatalf("GenerateUploadLink: %v", err)
	}
	putPresigned(t, link.URL, "image/webp", testutil.GenerateWebP(t, 32, 32))
	media, err := finaliser.FinaliseUpload(ctx, link.ID)
	if err != nil {
		t.Fatalf("FinaliseUpload: %v", err)
	}

	if err := deleter.DeleteMedia(ctx, link.ID); err != nil {
		t.Fatalf("DeleteMedia: %v", err)
	}
	if _, err := repo.GetByID(ctx, link.ID); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("GetByID after delete err = %v; want ErrNotFound", err)
	}
	if exists, _ := GlobalStrg.FileExists(ctx, testutil.GalleryBucket, media.ObjectKey); exists {
		t.Error("gallery file should be removed")
	}
	if err := deleter.DeleteMedia(ctx, link.ID); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("second DeleteMedia err = %v; want ErrNotFound", err)
	}
}
