package entity

import (
	"time"

	"github.com/google/uuid"
)

// StatusLog records one status transition of an application.
type StatusLog struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	OldStatus     string    `json:"old_status"`
	NewStatus     string    `json:"new_status"`
	ChangedBy     string    `json:"changed_by,omitempty"`
	Comments      string    `json:"comments"`
	ChangedAt     time.Time `json:"changed_at"`
}
