package port

import "io"

// FileOptimiser compresses gallery files, possibly changing their format.
type FileOptimiser interface {
	Compress(mimeType string, r io.Reader) (io.ReadCloser, string, error)
}
