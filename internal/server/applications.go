package server

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mkiplagat/bursary-intake/constants"
	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/intake"
	"github.com/mkiplagat/bursary-intake/internal/metrics"
	"github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/utils"
)

func (s *BursaryService) SubmitApplication(ctx context.Context, req *bursarypb.SubmitApplicationRequest) (*bursarypb.SubmitApplicationResponse, error) {
	pbProfile := req.GetProfile()
	pbApp := req.GetApplication()
	if pbProfile == nil || pbApp == nil {
		return nil, status.Error(codes.InvalidArgument, "profile and application are required")
	}

	money := func(field, v string) (float64, error) {
		if strings.TrimSpace(v) == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, status.Errorf(codes.InvalidArgument, "%s must be a decimal number", field)
		}
		return f, nil
	}
	income, err := money("annual_family_income", pbApp.GetAnnualFamilyIncome())
	if err != nil {
		return nil, err
	}
	fee, err := money("tuition_fee", pbApp.GetTuitionFee())
	if err != nil {
		return nil, err
	}
	requested, err := money("amount_requested", pbApp.GetAmountRequested())
	if err != nil {
		return nil, err
	}

	sub := &intake.Submission{
		Profile: intake.SubmissionProfile{
			FullName:    pbProfile.GetFullName(),
			IDNumber:    pbProfile.GetIdNumber(),
			PhoneNumber: pbProfile.GetPhoneNumber(),
			Email:       pbProfile.GetEmail(),
			DateOfBirth: pbProfile.GetDateOfBirth(),
			County:      pbProfile.GetCounty(),
			SubCounty:   pbProfile.GetSubCounty(),
			Ward:        pbProfile.GetWard(),
			Village:     pbProfile.GetVillage(),
		},
		Application: intake.SubmissionApplication{
			StudentName:              pbApp.GetStudentName(),
			InstitutionName:          pbApp.GetInstitutionName(),
			EducationLevel:           pbApp.GetEducationLevel(),
			AnnualFamilyIncome:       income,
			TuitionFee:               fee,
			AmountRequested:          requested,
			NumberOfSiblings:         int(pbApp.GetNumberOfSiblings()),
			SiblingsInSchool:         int(pbApp.GetSiblingsInSchool()),
			IsOrphan:                 pbApp.GetIsOrphan(),
			HasDisability:            pbApp.GetHasDisability(),
			IsSingleParent:           pbApp.GetIsSingleParent(),
			PreviousBursaryRecipient: pbApp.GetPreviousBursaryRecipient(),
			ReasonForApplication:     pbApp.GetReasonForApplication(),
		},
	}
	for _, d := range req.GetDocuments() {
		sub.Documents = append(sub.Documents, intake.SubmissionDocument{
			DocumentType: d.GetDocumentType(),
			SourcePath:   d.GetSourcePath(),
			Description:  d.GetDescription(),
		})
	}

	result, err := s.intake.Submit(ctx, sub)
	if err != nil {
		// The intake service already returns gRPC status errors.
		return nil, err
	}

	return &bursarypb.SubmitApplicationResponse{
		Application: utils.ToPBApplication(result.Application),
		Score:       utils.ToPBNeedScore(result.Score),
	}, nil
}

func (s *BursaryService) GetApplication(ctx context.Context, req *bursarypb.GetApplicationRequest) (*bursarypb.GetApplicationResponse, error) {
	id, err := parseApplicationID(req.GetApplicationId())
	if err != nil {
		return nil, err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get application", "application_id", id, "error", err)
		return nil, status.Error(codes.NotFound, "application not found")
	}

	return &bursarypb.GetApplicationResponse{
		Application: utils.ToPBApplication(app),
		Score:       utils.ToPBNeedScore(s.scorer.Score(app)),
	}, nil
}

func (s *BursaryService) ListApplications(ctx context.Context, req *bursarypb.ListApplicationsRequest) (*bursarypb.ListApplicationsResponse, error) {
	if st := req.GetStatus(); st != "" && !validStatus(st) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
	}

	apps, err := s.apps.ListApplications(ctx, repository.ListFilter{
		Status: req.GetStatus(),
		County: req.GetCounty(),
	})
	if err != nil {
		s.logger.Error("failed to list applications", "error", err)
		return nil, status.Error(codes.Internal, "list applications failed")
	}

	out := make([]*bursarypb.Application, 0, len(apps))
	for _, app := range apps {
		out = append(out, utils.ToPBApplication(app))
	}
	return &bursarypb.ListApplicationsResponse{Applications: out}, nil
}

func (s *BursaryService) RankApplications(ctx context.Context, req *bursarypb.RankApplicationsRequest) (*bursarypb.RankApplicationsResponse, error) {
	apps, err := s.apps.ListApplications(ctx, repository.ListFilter{County: req.GetCounty()})
	if err != nil {
		s.logger.Error("failed to list applications for ranking", "error", err)
		return nil, status.Error(codes.Internal, "rank applications failed")
	}

	ranked := s.ranker.Rank(apps)
	out := make([]*bursarypb.RankedApplication, 0, len(ranked))
	for _, ra := range ranked {
		out = append(out, &bursarypb.RankedApplication{
			Application: utils.ToPBApplication(ra.Application),
			Score:       utils.ToPBNeedScore(ra.Score),
			Rank:        int32(ra.Rank),
		})
	}
	s.logger.Info("applications ranked", "county", req.GetCounty(), "count", len(out))
	return &bursarypb.RankApplicationsResponse{Applications: out}, nil
}

func (s *BursaryService) ComputeNeedScore(ctx context.Context, req *bursarypb.ComputeNeedScoreRequest) (*bursarypb.ComputeNeedScoreResponse, error) {
	id, err := parseApplicationID(req.GetApplicationId())
	if err != nil {
		return nil, err
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "application not found")
	}

	return &bursarypb.ComputeNeedScoreResponse{
		Score: utils.ToPBNeedScore(s.scorer.Score(app)),
	}, nil
}

func (s *BursaryService) ReviewApplication(ctx context.Context, req *bursarypb.ReviewApplicationRequest) (*bursarypb.ReviewApplicationResponse, error) {
	id, err := parseApplicationID(req.GetApplicationId())
	if err != nil {
		return nil, err
	}
	newStatus := req.GetStatus()
	if !validStatus(newStatus) {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", newStatus)
	}

	app, err := s.apps.Review(ctx, &repository.ReviewRequest{
		ApplicationID: id,
		NewStatus:     constants.ApplicationStatus(newStatus),
		ReviewedBy:    req.GetReviewedBy(),
		Comments:      req.GetComments(),
	})
	if err != nil {
		s.logger.Error("failed to review application", "application_id", id, "error", err)
		return nil, status.Error(codes.Internal, "review application failed")
	}
	metrics.ReviewTransitions.WithLabelValues(newStatus).Inc()
	s.notifyStatusChange(ctx, app)

	return &bursarypb.ReviewApplicationResponse{
		Application: utils.ToPBApplication(app),
	}, nil
}

// notifyStatusChange emails the applicant about a review decision. Best
// effort: failures are logged and never fail the review.
func (s *BursaryService) notifyStatusChange(ctx context.Context, app *entity.Application) {
	profile, err := s.profiles.GetByID(ctx, app.ProfileID)
	if err != nil {
		s.logger.Warn("failed to load profile for notification", "profile_id", app.ProfileID, "error", err)
		return
	}
	if profile.Email == "" {
		return
	}
	if err := s.notifier.SendStatusChange(ctx, profile.Email, app); err != nil {
		s.logger.Warn("status change notification failed",
			"application_number", app.ApplicationNumber, "error", err)
	}
}

func parseApplicationID(raw string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "application_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "application_id must be a UUID")
	}
	return id, nil
}

func validStatus(s string) bool {
	for _, v := range constants.ApplicationStatuses {
		if s == v {
			return true
		}
	}
	return false
}
