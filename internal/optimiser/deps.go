package optimiser

import (
	"image"
	"io"

	"github.com/chai2010/webp"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	_ "golang.org/x/image/webp"
	_ "image/jpeg"
	_ "image/png"
)

type WebPEncoder interface {
	Encode(img image.Image, quality int, w io.Writer) error
	Decode(r io.Reader) (image.Image, string, error)
}

type PDFOptimizer interface {
	OptimizeFile(inPath, outPath string) error
}

type chaiWebP struct{}

func NewWebPEncoder() WebPEncoder { return chaiWebP{} }

func (chaiWebP) Encode(img image.Image, quality int, w io.Writer) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(quality)})
}

func (chaiWebP) Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}

type pdfcpuOptimizer struct{}

func NewPDFOptimizer() PDFOptimizer { return pdfcpuOptimizer{} }

func (pdfcpuOptimizer) OptimizeFile(inPath, outPath string) error {
	return api.OptimizeFile(inPath, outPath, nil)
}
