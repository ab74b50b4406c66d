package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/common"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/metrics"
	"github.com/mkiplagat/bursary-intake/internal/notify"
	"github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
	"github.com/mkiplagat/bursary-intake/internal/utils"
	"github.com/mkiplagat/bursary-intake/internal/verify"
)

// Submission is a decoded intake payload.
type Submission struct {
	Profile     SubmissionProfile     `json:"profile"`
	Application SubmissionApplication `json:"application"`
	Documents   []SubmissionDocument  `json:"documents,omitempty"`
}

type SubmissionProfile struct {
	FullName    string `json:"full_name"`
	IDNumber    string `json:"id_number"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Email       string `json:"email,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	County      string `json:"county"`
	SubCounty   string `json:"sub_county,omitempty"`
	Ward        string `json:"ward,omitempty"`
	Village     string `json:"village,omitempty"`
}

type SubmissionApplication struct {
	StudentName              string  `json:"student_name"`
	InstitutionName          string  `json:"institution_name"`
	EducationLevel           string  `json:"education_level,omitempty"`
	AnnualFamilyIncome       float64 `json:"annual_family_income"`
	TuitionFee               float64 `json:"tuition_fee"`
	AmountRequested          float64 `json:"amount_requested"`
	NumberOfSiblings         int     `json:"number_of_siblings"`
	SiblingsInSchool         int     `json:"siblings_in_school"`
	IsOrphan                 bool    `json:"is_orphan"`
	HasDisability            bool    `json:"has_disability"`
	IsSingleParent           bool    `json:"is_single_parent"`
	PreviousBursaryRecipient bool    `json:"previous_bursary_recipient"`
	ReasonForApplication     string  `json:"reason_for_application,omitempty"`
}

type SubmissionDocument struct {
	DocumentType string `json:"document_type"`
	SourcePath   string `json:"source_path"`
	Description  string `json:"description,omitempty"`
}

// Result is the outcome of a successful submission.
type Result struct {
	Application *entity.Application `json:"application"`
	Score       scoring.Breakdown   `json:"score"`
	Documents   []*entity.Document  `json:"documents,omitempty"`
}

// DocumentVerifier runs document verification against expected applicant fields.
type DocumentVerifier interface {
	Verify(ctx context.Context, document []byte, fileExt string, expected verify.Expected) verify.Verdict
}

// Service handles application intake: payload validation, duplicate
// screening, persistence, scoring, and optional in-line document
// verification. Verification failures flag the application for manual
// review; they never block persistence.
type Service struct {
	profiles repository.ProfileRepository
	apps     repository.ApplicationRepository
	docs     repository.DocumentRepository
	idcache  IDScreener
	verifier DocumentVerifier
	notifier notify.Notifier
	scorer   *scoring.Scorer
	logger   *slog.Logger
}

// IDScreener is the duplicate-screening cache surface the service needs.
type IDScreener interface {
	Seen(ctx context.Context, idNumber string) bool
	Record(ctx context.Context, idNumber string)
}

func NewService(
	profiles repository.ProfileRepository,
	apps repository.ApplicationRepository,
	docs repository.DocumentRepository,
	idcache IDScreener,
	verifier DocumentVerifier,
	notifier notify.Notifier,
	logger *slog.Logger,
) *Service {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Service{
		profiles: profiles,
		apps:     apps,
		docs:     docs,
		idcache:  idcache,
		verifier: verifier,
		notifier: notifier,
		scorer:   scoring.NewScorer(),
		logger:   logger,
	}
}

// SubmitRaw validates a raw JSON payload against the intake schema, decodes
// it, and submits it.
func (s *Service) SubmitRaw(ctx context.Context, payload []byte) (*Result, error) {
	if err := ValidatePayload(payload); err != nil {
		metrics.ApplicationsRejected.WithLabelValues("schema").Inc()
		return nil, common.InvalidArgumentError(err.Error())
	}
	var sub Submission
	if err := json.Unmarshal(payload, &sub); err != nil {
		metrics.ApplicationsRejected.WithLabelValues("schema").Inc()
		return nil, common.InvalidArgumentErrorf("decode payload: %v", err)
	}
	return s.Submit(ctx, &sub)
}

// Submit runs a decoded submission through validation, duplicate screening,
// and persistence, then scores it.
func (s *Service) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	if err := common.ValidateApplication(common.ApplicationInput{
		StudentName:        sub.Application.StudentName,
		InstitutionName:    sub.Application.InstitutionName,
		IDNumber:           sub.Profile.IDNumber,
		AnnualFamilyIncome: sub.Application.AnnualFamilyIncome,
		TuitionFee:         sub.Application.TuitionFee,
		AmountRequested:    sub.Application.AmountRequested,
		NumberOfSiblings:   sub.Application.NumberOfSiblings,
		SiblingsInSchool:   sub.Application.SiblingsInSchool,
	}); err != nil {
		metrics.ApplicationsRejected.WithLabelValues("validation").Inc()
		return nil, common.InvalidArgumentError(err.Error())
	}

	// Reject unsupported document types before anything is persisted.
	for _, d := range sub.Documents {
		ext := constants.NormalizeExt(filepath.Ext(d.SourcePath))
		if !constants.IsAllowedExt(ext) {
			metrics.ApplicationsRejected.WithLabelValues("document").Inc()
			return nil, common.InvalidArgumentErrorf("unsupported document type %q for %s", ext, d.SourcePath)
		}
	}

	if s.idcache != nil && s.idcache.Seen(ctx, sub.Profile.IDNumber) {
		metrics.ApplicationsRejected.WithLabelValues("duplicate").Inc()
		return nil, common.AlreadyExistsError(
			fmt.Sprintf("an application for ID number %s was recently submitted", sub.Profile.IDNumber))
	}

	profile, err := s.findOrCreateProfile(ctx, &sub.Profile)
	if err != nil {
		return nil, err
	}

	app, err := s.apps.CreateApplication(ctx, &repository.CreateApplicationRequest{
		ProfileID:            profile.ID,
		StudentName:          sub.Application.StudentName,
		InstitutionName:      sub.Application.InstitutionName,
		EducationLevel:       sub.Application.EducationLevel,
		AnnualFamilyIncome:   sub.Application.AnnualFamilyIncome,
		TuitionFee:           sub.Application.TuitionFee,
		AmountRequested:      sub.Application.AmountRequested,
		NumberOfSiblings:     sub.Application.NumberOfSiblings,
		SiblingsInSchool:     sub.Application.SiblingsInSchool,
		IsOrphan:             sub.Application.IsOrphan,
		HasDisability:        sub.Application.HasDisability,
		IsSingleParent:       sub.Application.IsSingleParent,
		PreviousBursary:      sub.Application.PreviousBursaryRecipient,
		ReasonForApplication: sub.Application.ReasonForApplication,
	})
	if err != nil {
		return nil, common.WrapError(err, "create application")
	}

	docs := make([]*entity.Document, 0, len(sub.Documents))
	for _, d := range sub.Documents {
		ext := constants.NormalizeExt(filepath.Ext(d.SourcePath))
		doc, err := s.docs.CreateDocument(ctx, &repository.CreateDocumentRequest{
			ApplicationID: app.ID,
			DocumentType:  d.DocumentType,
			SourcePath:    d.SourcePath,
			FileExt:       ext,
			Description:   d.Description,
		})
		if err != nil {
			return nil, common.WrapError(err, "create document")
		}
		docs = append(docs, doc)
	}

	if s.idcache != nil {
		s.idcache.Record(ctx, sub.Profile.IDNumber)
	}
	metrics.ApplicationsSubmitted.Inc()

	if s.verifier != nil {
		s.verifyDocuments(ctx, app, profile, docs)
	}

	if sub.Profile.Email != "" {
		if err := s.notifier.SendSubmissionConfirmation(ctx, sub.Profile.Email, app); err != nil {
			s.logger.Warn("confirmation email failed", "application_id", app.ID, "error", err)
		}
	}

	s.logger.Info("application submitted",
		"application_id", app.ID,
		"application_number", app.ApplicationNumber,
		"documents", len(docs))
	return &Result{
		Application: app,
		Score:       s.scorer.Score(app),
		Documents:   docs,
	}, nil
}

func (s *Service) findOrCreateProfile(ctx context.Context, p *SubmissionProfile) (*entity.Profile, error) {
	exists, err := s.profiles.ExistsByIDNumber(ctx, p.IDNumber)
	if err != nil {
		return nil, common.WrapError(err, "check profile")
	}
	if exists {
		profile, err := s.profiles.GetByIDNumber(ctx, p.IDNumber)
		if err != nil {
			return nil, common.WrapError(err, "load profile")
		}
		return profile, nil
	}

	var dob *time.Time
	if p.DateOfBirth != "" {
		t, err := utils.ParseYMD(p.DateOfBirth)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("invalid date_of_birth %q", p.DateOfBirth)
		}
		dob = &t
	}

	profile, err := s.profiles.CreateProfile(ctx, &repository.CreateProfileRequest{
		FullName:    p.FullName,
		IDNumber:    p.IDNumber,
		PhoneNumber: p.PhoneNumber,
		Email:       p.Email,
		DateOfBirth: dob,
		County:      p.County,
		SubCounty:   p.SubCounty,
		Ward:        p.Ward,
		Village:     p.Village,
	})
	if err != nil {
		return nil, common.WrapError(err, "create profile")
	}
	return profile, nil
}

// verifyDocuments runs in-line verification over the submitted documents.
// Any failure flags the application and the document for manual review;
// nothing here can fail the submission.
func (s *Service) verifyDocuments(ctx context.Context, app *entity.Application, profile *entity.Profile, docs []*entity.Document) {
	expected := verify.Expected{
		Name:        profile.FullName,
		IDNumber:    profile.IDNumber,
		DateOfBirth: profile.DateOfBirth,
	}

	for _, doc := range docs {
		data, err := os.ReadFile(doc.SourcePath)
		if err != nil {
			s.logger.Warn("cannot read document for verification",
				"document_id", doc.ID, "path", doc.SourcePath, "error", err)
			continue
		}

		start := time.Now()
		verdict := s.verifier.Verify(ctx, data, doc.FileExt, expected)
		metrics.VerificationDuration.WithLabelValues(doc.DocumentType).Observe(time.Since(start).Seconds())

		if err := s.docs.RecordVerification(ctx, doc.ID, verdict.Verified, float32(verdict.Confidence), verdict); err != nil {
			s.logger.Warn("failed to persist verification", "document_id", doc.ID, "error", err)
		}

		if verdict.Verified {
			metrics.DocumentsVerified.WithLabelValues("verified").Inc()
			continue
		}
		metrics.DocumentsVerified.WithLabelValues("flagged").Inc()
		if err := s.apps.Flag(ctx, app.ID, "document verification failed: "+doc.DocumentType); err != nil {
			s.logger.Warn("failed to flag application", "application_id", app.ID, "error", err)
		}
	}
}
