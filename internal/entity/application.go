package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/constants"
)

// Application represents a bursary application for data transfer between layers.
// Core financial fields are immutable once submitted; only the review state
// (status, verification, flags, comments) is mutated afterwards.
type Application struct {
	ID                uuid.UUID `json:"id"`
	ApplicationNumber string    `json:"application_number"`
	ProfileID         uuid.UUID `json:"profile_id"`

	StudentName     string `json:"student_name"`
	InstitutionName string `json:"institution_name"`
	EducationLevel  string `json:"education_level"`

	AnnualFamilyIncome float64 `json:"annual_family_income"`
	TuitionFee         float64 `json:"tuition_fee"`
	AmountRequested    float64 `json:"amount_requested"`

	NumberOfSiblings int `json:"number_of_siblings"`
	SiblingsInSchool int `json:"siblings_in_school"`

	IsOrphan                 bool `json:"is_orphan"`
	HasDisability            bool `json:"has_disability"`
	IsSingleParent           bool `json:"is_single_parent"`
	PreviousBursaryRecipient bool `json:"previous_bursary_recipient"`

	ReasonForApplication string `json:"reason_for_application"`

	Status           constants.ApplicationStatus `json:"status"`
	IsVerified       bool                        `json:"is_verified"`
	VerifiedBy       *string                     `json:"verified_by,omitempty"`
	VerifiedAt       *time.Time                  `json:"verified_at,omitempty"`
	IsFlagged        bool                        `json:"is_flagged"`
	FlagReason       *string                     `json:"flag_reason,omitempty"`
	ReviewerComments *string                     `json:"reviewer_comments,omitempty"`

	SubmittedAt time.Time  `json:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
