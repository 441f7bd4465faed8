package model

import (
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type MediaStatus string

const (
	MediaStatusPending   MediaStatus = "pending"
	MediaStatusCompleted MediaStatus = "completed"
	MediaStatusFailed    MediaStatus = "failed"
)

// Media is one gallery file and its lifecycle state.
type Media struct {
	ID               uuid.UUID   `json:"id"`
	ObjectKey        string      `json:"object_key"`
	Bucket           string      `json:"bucket"`
	OriginalFilename string      `json:"original_filename"`
	MimeType         *string     `json:"mime_type"`
	SizeBytes        *int64      `json:"size_bytes"`
	Status           MediaStatus `json:"status"`
	Optimised        bool        `json:"optimised"`
	FailureMessage   *string     `json:"failure_message"`
	Metadata         Metadata    `json:"metadata"`
	UploadedAt       time.Time   `json:"uploaded_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
