package gallery

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/model"
	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func pendingMedia() *model.Media {
	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")
	return &model.Media{
		ID:        id,
		ObjectKey: id.String(),
		Bucket:    "staging",
		Status:    model.MediaStatusPending,
	}
}

func completedMedia() *model.Media {
	mt := "image/png"
	size := int64(2048)
	return &model.Media{
		ID:        uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"),
		ObjectKey: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee.png",
		Bucket:    "gallery",
		MimeType:  &mt,
		SizeBytes: &size,
		Status:    model.MediaStatusCompleted,
	}
}
