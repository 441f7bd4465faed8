package gallery

import (
	"fmt"
	"time"
)

const (
	MinFileSize = 512              // 512 B
	MaxFileSize = 10 * 1024 * 1024 // 10 MB

	UploadLinkTTL = 5 * time.Minute
	// DownloadLinkTTL outlives the gallery cache entry holding the link.
	DownloadLinkTTL = time.Hour
)

var AllowedMimeTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"application/pdf": true,
}

func IsMimeTypeAllowed(mimeType string) bool {
	return AllowedMimeTypes[mimeType]
}

func IsImage(mimeType string) bool {
	return mimeType == "image/png" || mimeType == "image/jpeg" || mimeType == "image/webp"
}

func IsPdf(mimeType string) bool {
	return mimeType == "application/pdf"
}

func MimeTypeToExtension(mimeType string) (string, error) {
	switch mimeType {
	case "image/png":
		return ".png", nil
	case "image/jpeg":
		return ".jpg", nil
	case "image/webp":
		return ".webp", nil
	case "application/pdf":
		return ".pdf", nil
	default:
		return "", fmt.Errorf("unsupported mime type %q", mimeType)
	}
}
