package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents an applicant profile for data transfer between layers.
type Profile struct {
	ID          uuid.UUID  `json:"id"`
	FullName    string     `json:"full_name"`
	IDNumber    string     `json:"id_number"`
	PhoneNumber string     `json:"phone_number"`
	Email       string     `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	County      string     `json:"county"`
	SubCounty   string     `json:"sub_county"`
	Ward        string     `json:"ward"`
	Village     string     `json:"village"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
