package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"

	"github.com/fhuszti/showcase-ms-go/internal/usecase/gallery"
)

func fill(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

// pad grows buf past the minimum accepted upload size. Decoders stop at the
// end of the image stream so the trailing zeros are ignored.
func pad(buf *bytes.Buffer) []byte {
	if int64(buf.Len()) < gallery.MinFileSize {
		buf.Write(make([]byte, gallery.MinFileSize-int64(buf.Len())))
	}
	return buf.Bytes()
}

// GeneratePNG encodes a gradient image to PNG.
func GeneratePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, fill(width, height)); err != nil {
		t.Fatalf("png encode failed: %v", err)
	}
	return pad(buf)
}

// GenerateWebP encodes a gradient image to WebP.
func GenerateWebP(t *testing.T, width, height int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, fill(width, height), &webp.Options{Quality: 80}); err != nil {
		t.Fatalf("encode webp: %v", err)
	}
	return pad(buf)
}
