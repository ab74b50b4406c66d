package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
)

type stubApps struct {
	apps       []*entity.Application
	lastFilter repository.ListFilter
}

func (s *stubApps) CreateApplication(context.Context, *repository.CreateApplicationRequest) (*entity.Application, error) {
	return nil, nil
}
func (s *stubApps) GetByID(context.Context, uuid.UUID) (*entity.Application, error) { return nil, nil }
func (s *stubApps) GetByNumber(context.Context, string) (*entity.Application, error) { return nil, nil }
func (s *stubApps) Review(context.Context, *repository.ReviewRequest) (*entity.Application, error) {
	return nil, nil
}
func (s *stubApps) Flag(context.Context, uuid.UUID, string) error { return nil }
func (s *stubApps) MarkVerified(context.Context, uuid.UUID, string) error { return nil }
func (s *stubApps) ListStatusLogs(context.Context, uuid.UUID) ([]*entity.StatusLog, error) {
	return nil, nil
}

func (s *stubApps) ListApplications(_ context.Context, filter repository.ListFilter) ([]*entity.Application, error) {
	s.lastFilter = filter
	return s.apps, nil
}

func exportApp(number, name string, income float64, flagged bool) *entity.Application {
	return &entity.Application{
		ID:                 uuid.New(),
		ApplicationNumber:  number,
		StudentName:        name,
		InstitutionName:    "Nakuru Girls High School",
		AnnualFamilyIncome: income,
		TuitionFee:         120000,
		AmountRequested:    80000,
		Status:             constants.StatusPending,
		IsFlagged:          flagged,
		SubmittedAt:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestExportPriorityListXLSX(t *testing.T) {
	apps := &stubApps{apps: []*entity.Application{
		exportApp("BUR-2026-AAAA0001", "JANE WANJIKU KAMAU", 25000, false),
		exportApp("BUR-2026-AAAA0002", "PETER OTIENO", 250000, false),
		exportApp("BUR-2026-AAAA0003", "GRACE AKINYI", 40000, true),
	}}
	svc := NewService(apps, scoring.NewRanker(scoring.NewScorer()), nil)

	data, rows, err := svc.ExportPriorityListXLSX(context.Background(), "Nakuru")
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, "Nakuru", apps.lastFilter.County)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Priority List"
	got, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Rank", got)

	// The poorest applicant scores highest and leads the sheet.
	number, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "BUR-2026-AAAA0001", number)
	rank, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "1", rank)

	// Flagged applications carry no rank and sort behind pending ones.
	flag, err := f.GetCellValue(sheet, "K4")
	require.NoError(t, err)
	assert.Equal(t, "YES", flag)
	rank, err = f.GetCellValue(sheet, "A4")
	require.NoError(t, err)
	assert.Empty(t, rank)

	income, err := f.GetCellValue(sheet, "F2")
	require.NoError(t, err)
	assert.Equal(t, "25000.00", income)

	ratio, err := f.GetCellValue(sheet, "I2")
	require.NoError(t, err)
	assert.Equal(t, "4.80", ratio)
}

func TestExportPriorityListEmpty(t *testing.T) {
	svc := NewService(&stubApps{}, scoring.NewRanker(scoring.NewScorer()), nil)

	data, rows, err := svc.ExportPriorityListXLSX(context.Background(), "")
	require.NoError(t, err)
	assert.Zero(t, rows)
	assert.NotEmpty(t, data)
}
