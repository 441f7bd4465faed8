package model

import (
	"time"

	"github.com/fhuszti/showcase-ms-go/internal/uuid"
)

type CertificationStatus string

const (
	CertificationStatusPending  CertificationStatus = "pending"
	CertificationStatusApproved CertificationStatus = "approved"
	CertificationStatusRejected CertificationStatus = "rejected"
)

type Certification struct {
	ID              uuid.UUID           `json:"id"`
	CompanyName     string              `json:"company_name"`
	ContactEmail    string              `json:"contact_email"`
	Standard        string              `json:"standard"`
	Status          CertificationStatus `json:"status"`
	DocumentMediaID *uuid.UUID          `json:"document_media_id,omitempty"`
	SubmittedAt     time.Time           `json:"submitted_at"`
}
