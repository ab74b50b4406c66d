package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/constants"
)

// Document represents an uploaded supporting document for data transfer between layers.
type Document struct {
	ID            uuid.UUID                `json:"id"`
	ApplicationID uuid.UUID                `json:"application_id"`
	DocumentType  string                   `json:"document_type"`
	SourcePath    string                   `json:"source_path"`
	FileExt       string                   `json:"file_ext"`
	Description   string                   `json:"description"`
	Status        constants.DocumentStatus `json:"status"`
	IsVerified    bool                     `json:"is_verified"`
	IsFlagged     bool                     `json:"is_flagged"`

	VerificationConfidence *float32        `json:"verification_confidence,omitempty"`
	VerificationResult     json.RawMessage `json:"verification_result,omitempty"`

	UploadedAt time.Time `json:"uploaded_at"`
}
