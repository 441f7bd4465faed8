package optimiser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fhuszti/showcase-ms-go/internal/logger"
	"github.com/fhuszti/showcase-ms-go/internal/port"
)

// WebPQuality is the lossy quality used for every gallery image.
const WebPQuality = 80

type Optimiser struct {
	webpEnc WebPEncoder
	pdfOpt  PDFOptimizer
}

// compile-time check: *Optimiser must satisfy port.FileOptimiser
var _ port.FileOptimiser = (*Optimiser)(nil)

func NewOptimiser(webpEnc WebPEncoder, pdfOpt PDFOptimizer) *Optimiser {
	logger.Info(context.Background(), "initialising optimiser...")
	return &Optimiser{
		webpEnc: webpEnc,
		pdfOpt:  pdfOpt,
	}
}

// Compress returns the optimised file and its resulting MIME type.
//   - JPEG, PNG and WebP images become lossy WebP.
//   - PDFs go through pdfcpu's lossless optimisation.
//   - Anything else is returned unchanged.
func (o *Optimiser) Compress(mimeType string, r io.Reader) (io.ReadCloser, string, error) {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
		img, _, err := o.webpEnc.Decode(r)
		if err != nil {
			return nil, "", fmt.Errorf("optimiser: failed to decode image: %w", err)
		}

		buf := &bytes.Buffer{}
		if err := o.webpEnc.Encode(img, WebPQuality, buf); err != nil {
			return nil, "", fmt.Errorf("optimiser: failed to encode WebP: %w", err)
		}
		return io.NopCloser(buf), "image/webp", nil

	case "application/pdf":
		data, err := o.compressPDF(r)
		if err != nil {
			return nil, "", err
		}
		return io.NopCloser(bytes.NewReader(data)), mimeType, nil

	default:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("optimiser: failed to read data: %w", err)
		}
		return io.NopCloser(bytes.NewReader(data)), mimeType, nil
	}
}

func (o *Optimiser) compressPDF(r io.Reader) ([]byte, error) {
	ctx := context.Background()

	inFile, err := os.CreateTemp("", "pdf_in_*.pdf")
	if err != nil {
		return nil, fmt.Errorf("optimiser: could not create temp input PDF: %w", err)
	}
	defer removeTemp(ctx, inFile.Name())

	if _, err := io.Copy(inFile, r); err != nil {
		_ = inFile.Close()
		return nil, fmt.Errorf("optimiser: failed to write temp input PDF: %w", err)
	}
	_ = inFile.Close()

	outFile, err := os.CreateTemp("", "pdf_out_*.pdf")
	if err != nil {
		return nil, fmt.Errorf("optimiser: could not create temp output PDF: %w", err)
	}
	_ = outFile.Close()
	defer removeTemp(ctx, outFile.Name())

	if err := o.pdfOpt.OptimizeFile(inFile.Name(), outFile.Name()); err != nil {
		return nil, fmt.Errorf("optimiser: pdfcpu optimization failed: %w", err)
	}

	data, err := os.ReadFile(outFile.Name())
	if err != nil {
		return nil, fmt.Errorf("optimiser: failed to read optimized PDF: %w", err)
	}
	return data, nil
}

func removeTemp(ctx context.Context, name string) {
	if err := os.Remove(name); err != nil {
		logger.Warnf(ctx, "failed to remove temp file %q: %v", name, err)
	}
}
