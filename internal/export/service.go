package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
)

// Service produces XLSX bytes for review exports.
type Service struct {
	apps   repository.ApplicationRepository
	ranker *scoring.Ranker
	logger *slog.Logger
}

func NewService(apps repository.ApplicationRepository, ranker *scoring.Ranker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{apps: apps, ranker: ranker, logger: logger}
}

// ExportPriorityListXLSX returns an XLSX workbook (as bytes) of applications
// in review priority order, optionally restricted to one county. Scores and
// ranks are computed from a single snapshot of the data.
func (s *Service) ExportPriorityListXLSX(ctx context.Context, county string) ([]byte, int, error) {
	start := time.Now()

	apps, err := s.apps.ListApplications(ctx, repository.ListFilter{County: county})
	if err != nil {
		return nil, 0, fmt.Errorf("query applications: %w", err)
	}
	ranked := s.ranker.Rank(apps)

	f := excelize.NewFile()
	const sheet = "Priority List"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, 0, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Rank",
		"Application Number",
		"Student Name",
		"Institution",
		"Need Score",
		"Annual Family Income",
		"Tuition Fee",
		"Amount Requested",
		"Fee/Income Ratio",
		"Status",
		"Flagged",
		"Submitted",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, ra := range ranked {
		app := ra.Application

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if ra.Rank > 0 {
			write(1, ra.Rank)
		} else {
			write(1, "")
		}
		write(2, app.ApplicationNumber)
		write(3, app.StudentName)
		write(4, app.InstitutionName)
		write(5, ra.Score.Total)
		write(6, fmt.Sprintf("%.2f", app.AnnualFamilyIncome))
		write(7, fmt.Sprintf("%.2f", app.TuitionFee))
		write(8, fmt.Sprintf("%.2f", app.AmountRequested))
		if app.AnnualFamilyIncome > 0 {
			write(9, fmt.Sprintf("%.2f", app.TuitionFee/app.AnnualFamilyIncome))
		} else {
			write(9, "n/a")
		}
		write(10, string(app.Status))
		if app.IsFlagged {
			write(11, "YES")
		} else {
			write(11, "")
		}
		write(12, app.SubmittedAt.Format("2006-01-02"))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 8)  // rank
	_ = f.SetColWidth(sheet, "B", "B", 20) // application number
	_ = f.SetColWidth(sheet, "C", "D", 28) // names
	_ = f.SetColWidth(sheet, "E", "I", 16) // score, money, ratio
	_ = f.SetColWidth(sheet, "J", "K", 12) // status, flag
	_ = f.SetColWidth(sheet, "L", "L", 14) // date

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"county", county,
		"rows", len(ranked),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), len(ranked), nil
}
