package constants

// ApplicationStatus is the canonical review status for rows in bursary_applications.
type ApplicationStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending     ApplicationStatus = "pending"      // submitted, awaiting review
	StatusUnderReview ApplicationStatus = "under_review" // picked up by a reviewer
	StatusApproved    ApplicationStatus = "approved"     // terminal
	StatusRejected    ApplicationStatus = "rejected"     // terminal
)

// ApplicationStatuses holds the allowed values for the status field.
var ApplicationStatuses = []string{
	string(StatusPending),
	string(StatusUnderReview),
	string(StatusApproved),
	string(StatusRejected),
}

// DocumentStatus is the verification status of an uploaded document.
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentVerified DocumentStatus = "verified"
	DocumentRejected DocumentStatus = "rejected"
)

// DocumentStatuses holds the allowed values for the document status field.
var DocumentStatuses = []string{
	string(DocumentPending),
	string(DocumentVerified),
	string(DocumentRejected),
}

// DocumentTypes holds the supporting document categories applicants upload.
var DocumentTypes = []string{
	"national_id",
	"birth_certificate",
	"fee_structure",
	"admission_letter",
	"other",
}
