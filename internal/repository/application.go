package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/gen/ent"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicationstatuslog"
	"github.com/mkiplagat/bursary-intake/gen/ent/bursaryapplication"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/utils"
)

// CreateApplicationRequest wraps parameters for creating a bursary application.
type CreateApplicationRequest struct {
	ProfileID            uuid.UUID
	StudentName          string
	InstitutionName      string
	EducationLevel       string
	AnnualFamilyIncome   float64
	TuitionFee           float64
	AmountRequested      float64
	NumberOfSiblings     int
	SiblingsInSchool     int
	IsOrphan             bool
	HasDisability        bool
	IsSingleParent       bool
	PreviousBursary      bool
	ReasonForApplication string
}

// ListFilter narrows ListApplications. Zero values mean no filtering.
type ListFilter struct {
	Status string
	County string
}

// ReviewRequest transitions an application to a new review status.
type ReviewRequest struct {
	ApplicationID uuid.UUID
	NewStatus     constants.ApplicationStatus
	ReviewedBy    string
	Comments      string
}

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, req *CreateApplicationRequest) (*entity.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)
	GetByNumber(ctx context.Context, applicationNumber string) (*entity.Application, error)
	ListApplications(ctx context.Context, filter ListFilter) ([]*entity.Application, error)
	Review(ctx context.Context, req *ReviewRequest) (*entity.Application, error)
	Flag(ctx context.Context, id uuid.UUID, reason string) error
	MarkVerified(ctx context.Context, id uuid.UUID, verifiedBy string) error
	ListStatusLogs(ctx context.Context, applicationID uuid.UUID) ([]*entity.StatusLog, error)
}

type applicationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(client *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepository{
		client: client,
		logger: logger,
	}
}

// newApplicationNumber builds a human-readable reference like BUR-2026-4F2A91C3.
// The UUID suffix keeps it unique without a counter table.
func newApplicationNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("BUR-%d-%s", now.Year(), suffix)
}

func (r *applicationRepository) CreateApplication(ctx context.Context, req *CreateApplicationRequest) (*entity.Application, error) {
	builder := r.client.BursaryApplication.Create().
		SetProfileID(req.ProfileID).
		SetApplicationNumber(newApplicationNumber(time.Now())).
		SetStudentName(req.StudentName).
		SetInstitutionName(req.InstitutionName).
		SetAnnualFamilyIncome(req.AnnualFamilyIncome).
		SetTuitionFee(req.TuitionFee).
		SetAmountRequested(req.AmountRequested).
		SetNumberOfSiblings(req.NumberOfSiblings).
		SetSiblingsInSchool(req.SiblingsInSchool).
		SetIsOrphan(req.IsOrphan).
		SetHasDisability(req.HasDisability).
		SetIsSingleParent(req.IsSingleParent).
		SetPreviousBursaryRecipient(req.PreviousBursary)
	if req.EducationLevel != "" {
		builder = builder.SetEducationLevel(req.EducationLevel)
	}
	if req.ReasonForApplication != "" {
		builder = builder.SetReasonForApplication(req.ReasonForApplication)
	}

	app, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create application", "profile_id", req.ProfileID, "error", err)
		return nil, err
	}

	// Opening log entry so the audit trail covers the whole lifecycle.
	_, err = r.client.ApplicationStatusLog.Create().
		SetApplicationID(app.ID).
		SetNewStatus(string(constants.StatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to write initial status log", "application_id", app.ID, "error", err)
		return nil, err
	}

	r.logger.Info("application created",
		"application_id", app.ID, "application_number", app.ApplicationNumber)
	return utils.ToApplication(app), nil
}

func (r *applicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	app, err := r.client.BursaryApplication.
		Query().
		Where(bursaryapplication.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToApplication(app), nil
}

func (r *applicationRepository) GetByNumber(ctx context.Context, applicationNumber string) (*entity.Application, error) {
	app, err := r.client.BursaryApplication.
		Query().
		Where(bursaryapplication.ApplicationNumber(applicationNumber)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToApplication(app), nil
}

func (r *applicationRepository) ListApplications(ctx context.Context, filter ListFilter) ([]*entity.Application, error) {
	q := r.client.BursaryApplication.Query()
	if filter.Status != "" {
		q = q.Where(bursaryapplication.Status(filter.Status))
	}
	if filter.County != "" {
		q = q.Where(bursaryapplication.HasProfileWith(applicantprofile.County(filter.County)))
	}
	apps, err := q.Order(bursaryapplication.BySubmittedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list applications", "error", err)
		return nil, err
	}

	result := make([]*entity.Application, len(apps))
	for i, app := range apps {
		result[i] = utils.ToApplication(app)
	}
	return result, nil
}

// Review updates the status and appends the transition to the status log in
// one transaction, so a logged transition always matches a stored status.
func (r *applicationRepository) Review(ctx context.Context, req *ReviewRequest) (*entity.Application, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	current, err := tx.BursaryApplication.Get(ctx, req.ApplicationID)
	if err != nil {
		return nil, rollback(tx, err)
	}

	builder := tx.BursaryApplication.UpdateOneID(req.ApplicationID).
		SetStatus(string(req.NewStatus))
	if req.Comments != "" {
		builder = builder.SetReviewerComments(req.Comments)
	}
	// A decision stamps reviewed_at; moving back into review clears it.
	switch req.NewStatus {
	case constants.StatusApproved, constants.StatusRejected:
		builder = builder.SetReviewedAt(time.Now())
	default:
		builder = builder.ClearReviewedAt()
	}

	app, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to update application status",
			"application_id", req.ApplicationID, "new_status", req.NewStatus, "error", err)
		return nil, rollback(tx, err)
	}

	logBuilder := tx.ApplicationStatusLog.Create().
		SetApplicationID(app.ID).
		SetOldStatus(current.Status).
		SetNewStatus(string(req.NewStatus))
	if req.ReviewedBy != "" {
		logBuilder = logBuilder.SetChangedBy(req.ReviewedBy)
	}
	if req.Comments != "" {
		logBuilder = logBuilder.SetComments(req.Comments)
	}
	if _, err := logBuilder.Save(ctx); err != nil {
		r.logger.Error("failed to write status log",
			"application_id", app.ID, "error", err)
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	r.logger.Info("application reviewed",
		"application_id", app.ID, "old_status", current.Status, "new_status", req.NewStatus)
	return utils.ToApplication(app), nil
}

func (r *applicationRepository) Flag(ctx context.Context, id uuid.UUID, reason string) error {
	err := r.client.BursaryApplication.UpdateOneID(id).
		SetIsFlagged(true).
		SetFlagReason(reason).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to flag application", "application_id", id, "error", err)
		return err
	}
	r.logger.Warn("application flagged", "application_id", id, "reason", reason)
	return nil
}

func (r *applicationRepository) MarkVerified(ctx context.Context, id uuid.UUID, verifiedBy string) error {
	builder := r.client.BursaryApplication.UpdateOneID(id).
		SetIsVerified(true).
		SetVerifiedAt(time.Now())
	if verifiedBy != "" {
		builder = builder.SetVerifiedBy(verifiedBy)
	}
	if err := builder.Exec(ctx); err != nil {
		r.logger.Error("failed to mark application verified", "application_id", id, "error", err)
		return err
	}
	return nil
}

func (r *applicationRepository) ListStatusLogs(ctx context.Context, applicationID uuid.UUID) ([]*entity.StatusLog, error) {
	logs, err := r.client.ApplicationStatusLog.
		Query().
		Where(applicationstatuslog.ApplicationID(applicationID)).
		Order(applicationstatuslog.ByChangedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list status logs", "application_id", applicationID, "error", err)
		return nil, err
	}

	result := make([]*entity.StatusLog, len(logs))
	for i, l := range logs {
		result[i] = utils.ToStatusLog(l)
	}
	return result, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back transaction: %v", err, rerr)
	}
	return err
}
