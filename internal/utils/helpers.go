package utils

import (
	"fmt"
	"time"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/gen/ent"
	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(layout)
}

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToProfile(e *ent.ApplicantProfile) *entity.Profile {
	return &entity.Profile{
		ID:          e.ID,
		FullName:    e.FullName,
		IDNumber:    e.IDNumber,
		PhoneNumber: strOrEmpty(e.PhoneNumber),
		Email:       strOrEmpty(e.Email),
		DateOfBirth: e.DateOfBirth,
		County:      e.County,
		SubCounty:   strOrEmpty(e.SubCounty),
		Ward:        strOrEmpty(e.Ward),
		Village:     strOrEmpty(e.Village),
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToApplication(e *ent.BursaryApplication) *entity.Application {
	return &entity.Application{
		ID:                       e.ID,
		ApplicationNumber:        e.ApplicationNumber,
		ProfileID:                e.ProfileID,
		StudentName:              e.StudentName,
		InstitutionName:          e.InstitutionName,
		EducationLevel:           strOrEmpty(e.EducationLevel),
		AnnualFamilyIncome:       e.AnnualFamilyIncome,
		TuitionFee:               e.TuitionFee,
		AmountRequested:          e.AmountRequested,
		NumberOfSiblings:         e.NumberOfSiblings,
		SiblingsInSchool:         e.SiblingsInSchool,
		IsOrphan:                 e.IsOrphan,
		HasDisability:            e.HasDisability,
		IsSingleParent:           e.IsSingleParent,
		PreviousBursaryRecipient: e.PreviousBursaryRecipient,
		ReasonForApplication:     strOrEmpty(e.ReasonForApplication),
		Status:                   constants.ApplicationStatus(e.Status),
		IsVerified:               e.IsVerified,
		VerifiedBy:               e.VerifiedBy,
		VerifiedAt:               e.VerifiedAt,
		IsFlagged:                e.IsFlagged,
		FlagReason:               e.FlagReason,
		ReviewerComments:         e.ReviewerComments,
		SubmittedAt:              e.SubmittedAt,
		ReviewedAt:               e.ReviewedAt,
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}

func ToDocument(e *ent.Document) *entity.Document {
	return &entity.Document{
		ID:                     e.ID,
		ApplicationID:          e.ApplicationID,
		DocumentType:           e.DocumentType,
		SourcePath:             e.SourcePath,
		FileExt:                e.FileExt,
		Description:            strOrEmpty(e.Description),
		Status:                 constants.DocumentStatus(e.Status),
		IsVerified:             e.IsVerified,
		IsFlagged:              e.IsFlagged,
		VerificationConfidence: e.VerificationConfidence,
		VerificationResult:     e.VerificationResult,
		UploadedAt:             e.UploadedAt,
	}
}

func ToStatusLog(e *ent.ApplicationStatusLog) *entity.StatusLog {
	return &entity.StatusLog{
		ID:            e.ID,
		ApplicationID: e.ApplicationID,
		OldStatus:     e.OldStatus,
		NewStatus:     e.NewStatus,
		ChangedBy:     strOrEmpty(e.ChangedBy),
		Comments:      strOrEmpty(e.Comments),
		ChangedAt:     e.ChangedAt,
	}
}

func ToPBProfile(p *entity.Profile) *bursarypb.ApplicantProfile {
	return &bursarypb.ApplicantProfile{
		Id:          p.ID.String(),
		FullName:    p.FullName,
		IdNumber:    p.IDNumber,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
		DateOfBirth: timeOrEmpty(p.DateOfBirth, "2006-01-02"),
		County:      p.County,
		SubCounty:   p.SubCounty,
		Ward:        p.Ward,
		Village:     p.Village,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBApplication(a *entity.Application) *bursarypb.Application {
	return &bursarypb.Application{
		Id:                       a.ID.String(),
		ApplicationNumber:        a.ApplicationNumber,
		ProfileId:                a.ProfileID.String(),
		StudentName:              a.StudentName,
		InstitutionName:          a.InstitutionName,
		EducationLevel:           a.EducationLevel,
		AnnualFamilyIncome:       fmt.Sprintf("%.2f", a.AnnualFamilyIncome),
		TuitionFee:               fmt.Sprintf("%.2f", a.TuitionFee),
		AmountRequested:          fmt.Sprintf("%.2f", a.AmountRequested),
		NumberOfSiblings:         int32(a.NumberOfSiblings),
		SiblingsInSchool:         int32(a.SiblingsInSchool),
		IsOrphan:                 a.IsOrphan,
		HasDisability:            a.HasDisability,
		IsSingleParent:           a.IsSingleParent,
		PreviousBursaryRecipient: a.PreviousBursaryRecipient,
		ReasonForApplication:     a.ReasonForApplication,
		Status:                   string(a.Status),
		IsVerified:               a.IsVerified,
		IsFlagged:                a.IsFlagged,
		FlagReason:               strOrEmpty(a.FlagReason),
		ReviewerComments:         strOrEmpty(a.ReviewerComments),
		SubmittedAt:              a.SubmittedAt.UTC().Format(time.RFC3339),
		ReviewedAt:               timeOrEmpty(a.ReviewedAt, time.RFC3339),
	}
}

func ToPBNeedScore(b scoring.Breakdown) *bursarypb.NeedScore {
	return &bursarypb.NeedScore{
		Total:        int32(b.Total),
		Income:       int32(b.Income),
		Siblings:     int32(b.Siblings),
		Orphan:       int32(b.Orphan),
		SingleParent: int32(b.SingleParent),
		Disability:   int32(b.Disability),
		FirstTime:    int32(b.FirstTime),
		FeeBurden:    int32(b.FeeBurden),
	}
}
