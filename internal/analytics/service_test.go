package analytics

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/repository"
)

type stubApps struct {
	apps []*entity.Application
}

func (s *stubApps) CreateApplication(ctx context.Context, req *repository.CreateApplicationRequest) (*entity.Application, error) {
	return nil, nil
}
func (s *stubApps) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	return nil, nil
}
func (s *stubApps) GetByNumber(ctx context.Context, n string) (*entity.Application, error) {
	return nil, nil
}
func (s *stubApps) ListApplications(ctx context.Context, f repository.ListFilter) ([]*entity.Application, error) {
	return s.apps, nil
}
func (s *stubApps) Review(ctx context.Context, req *repository.ReviewRequest) (*entity.Application, error) {
	return nil, nil
}
func (s *stubApps) Flag(ctx context.Context, id uuid.UUID, reason string) error     { return nil }
func (s *stubApps) MarkVerified(ctx context.Context, id uuid.UUID, by string) error { return nil }
func (s *stubApps) ListStatusLogs(ctx context.Context, id uuid.UUID) ([]*entity.StatusLog, error) {
	return nil, nil
}

type stubProfiles struct {
	counties map[uuid.UUID]string
}

func (s *stubProfiles) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	return nil, nil
}
func (s *stubProfiles) GetByIDNumber(ctx context.Context, n string) (*entity.Profile, error) {
	return nil, nil
}
func (s *stubProfiles) CreateProfile(ctx context.Context, req *repository.CreateProfileRequest) (*entity.Profile, error) {
	return nil, nil
}
func (s *stubProfiles) ExistsByIDNumber(ctx context.Context, n string) (bool, error) {
	return false, nil
}
func (s *stubProfiles) CountyIndex(ctx context.Context) (map[uuid.UUID]string, error) {
	return s.counties, nil
}

func TestSnapshotAggregates(t *testing.T) {
	nakuruProfile := uuid.New()
	nairobiProfile := uuid.New()

	apps := &stubApps{apps: []*entity.Application{
		{
			ProfileID:                nakuruProfile,
			Status:                   constants.StatusPending,
			AmountRequested:          50_000,
			AnnualFamilyIncome:       400_000,
			PreviousBursaryRecipient: true,
			TuitionFee:               10_000,
		},
		{
			ProfileID:          nakuruProfile,
			Status:             constants.StatusApproved,
			AmountRequested:    30_000,
			AnnualFamilyIncome: 400_000,
			TuitionFee:         10_000,
			IsVerified:         true,
		},
		{
			ProfileID:          nairobiProfile,
			Status:             constants.StatusPending,
			AmountRequested:    20_000,
			AnnualFamilyIncome: 400_000,
			TuitionFee:         10_000,
			IsFlagged:          true,
		},
	}}
	profiles := &stubProfiles{counties: map[uuid.UUID]string{
		nakuruProfile:  "Nakuru",
		nairobiProfile: "Nairobi",
	}}

	svc := NewService(apps, profiles, slog.New(slog.NewTextHandler(io.Discard, nil)))
	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalApplications)
	assert.Equal(t, int64(2), stats.ByStatus["pending"])
	assert.Equal(t, int64(1), stats.ByStatus["approved"])
	assert.Equal(t, 100_000.0, stats.TotalAmountRequested)
	assert.Equal(t, int64(1), stats.FlaggedCount)
	assert.Equal(t, int64(1), stats.VerifiedCount)
	assert.Greater(t, stats.AverageNeedScore, 0.0)
	// One decision, approved.
	assert.Equal(t, 1.0, stats.ApprovalRate)

	require.Len(t, stats.ByCounty, 2)
	assert.Equal(t, "Nakuru", stats.ByCounty[0].County)
	assert.Equal(t, int64(2), stats.ByCounty[0].Count)
	assert.Equal(t, 80_000.0, stats.ByCounty[0].TotalRequested)
}

func TestSnapshotEmptyPool(t *testing.T) {
	svc := NewService(&stubApps{}, &stubProfiles{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalApplications)
	assert.Zero(t, stats.AverageNeedScore)
	assert.Zero(t, stats.ApprovalRate)
	assert.Zero(t, stats.AvgProcessingDays)
	assert.Empty(t, stats.ByCounty)
}

func TestSnapshotProcessingAndPriority(t *testing.T) {
	profile := uuid.New()
	submitted := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	reviewed := submitted.Add(4 * 24 * time.Hour)

	apps := &stubApps{apps: []*entity.Application{
		{
			// High-need pending applicant: orphan, disability, low income,
			// many siblings in school clears the high-priority floor.
			ProfileID:          profile,
			Status:             constants.StatusPending,
			AnnualFamilyIncome: 20_000,
			TuitionFee:         80_000,
			AmountRequested:    60_000,
			NumberOfSiblings:   5,
			SiblingsInSchool:   5,
			IsOrphan:           true,
			HasDisability:      true,
			SubmittedAt:        submitted,
		},
		{
			ProfileID:          profile,
			Status:             constants.StatusRejected,
			AnnualFamilyIncome: 400_000,
			TuitionFee:         10_000,
			AmountRequested:    10_000,
			SubmittedAt:        submitted,
			ReviewedAt:         &reviewed,
		},
	}}
	profiles := &stubProfiles{counties: map[uuid.UUID]string{profile: "Nakuru"}}

	svc := NewService(apps, profiles, slog.New(slog.NewTextHandler(io.Discard, nil)))
	stats, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.HighPriorityCount)
	assert.Zero(t, stats.ApprovalRate)
	assert.InDelta(t, 4.0, stats.AvgProcessingDays, 0.001)
}
