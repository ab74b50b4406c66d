package analytics

import (
	"context"
	"log/slog"
	"sort"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/repository"
	"github.com/mkiplagat/bursary-intake/internal/scoring"
)

// Stats aggregates the state of the application pool for dashboards and
// the GetStats RPC. All numbers come from one snapshot of the data.
type Stats struct {
	TotalApplications    int64            `json:"total_applications"`
	ByStatus             map[string]int64 `json:"by_status"`
	ByCounty             []CountyStat     `json:"by_county"`
	TotalAmountRequested float64          `json:"total_amount_requested"`
	AverageNeedScore     float64          `json:"average_need_score"`
	FlaggedCount         int64            `json:"flagged_count"`
	VerifiedCount        int64            `json:"verified_count"`

	// ApprovalRate is approved over decided (approved + rejected);
	// zero while nothing has been decided.
	ApprovalRate float64 `json:"approval_rate"`
	// AvgProcessingDays averages submitted-to-reviewed time over
	// reviewed applications.
	AvgProcessingDays float64 `json:"avg_processing_days"`
	// HighPriorityCount counts pending applications scoring 60 or more.
	HighPriorityCount int64 `json:"high_priority_count"`
}

// HighPriorityScore is the need-score floor above which a pending
// application counts as high priority.
const HighPriorityScore = 60

// CountyStat is one county's slice of the pool.
type CountyStat struct {
	County         string  `json:"county"`
	Count          int64   `json:"count"`
	TotalRequested float64 `json:"total_requested"`
}

type Service struct {
	apps     repository.ApplicationRepository
	profiles repository.ProfileRepository
	scorer   *scoring.Scorer
	logger   *slog.Logger
}

func NewService(apps repository.ApplicationRepository, profiles repository.ProfileRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		apps:     apps,
		profiles: profiles,
		scorer:   scoring.NewScorer(),
		logger:   logger,
	}
}

// Snapshot computes pool statistics from the current data.
func (s *Service) Snapshot(ctx context.Context) (*Stats, error) {
	apps, err := s.apps.ListApplications(ctx, repository.ListFilter{})
	if err != nil {
		return nil, err
	}
	counties, err := s.profiles.CountyIndex(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalApplications: int64(len(apps)),
		ByStatus:          map[string]int64{},
	}

	byCounty := map[string]*CountyStat{}
	scoreSum := 0
	var approved, decided, reviewed int64
	var processingDays float64
	for _, app := range apps {
		stats.ByStatus[string(app.Status)]++
		stats.TotalAmountRequested += app.AmountRequested
		if app.IsFlagged {
			stats.FlaggedCount++
		}
		if app.IsVerified {
			stats.VerifiedCount++
		}
		switch app.Status {
		case constants.StatusApproved:
			approved++
			decided++
		case constants.StatusRejected:
			decided++
		}
		if app.ReviewedAt != nil {
			reviewed++
			processingDays += app.ReviewedAt.Sub(app.SubmittedAt).Hours() / 24
		}
		score := s.scorer.Score(app).Total
		scoreSum += score
		if app.Status == constants.StatusPending && score >= HighPriorityScore {
			stats.HighPriorityCount++
		}

		county := counties[app.ProfileID]
		if county == "" {
			county = "unknown"
		}
		cs, ok := byCounty[county]
		if !ok {
			cs = &CountyStat{County: county}
			byCounty[county] = cs
		}
		cs.Count++
		cs.TotalRequested += app.AmountRequested
	}

	if len(apps) > 0 {
		stats.AverageNeedScore = float64(scoreSum) / float64(len(apps))
	}
	if decided > 0 {
		stats.ApprovalRate = float64(approved) / float64(decided)
	}
	if reviewed > 0 {
		stats.AvgProcessingDays = processingDays / float64(reviewed)
	}

	stats.ByCounty = make([]CountyStat, 0, len(byCounty))
	for _, cs := range byCounty {
		stats.ByCounty = append(stats.ByCounty, *cs)
	}
	// Largest county first; ties by name for a stable output.
	sort.Slice(stats.ByCounty, func(i, j int) bool {
		if stats.ByCounty[i].Count != stats.ByCounty[j].Count {
			return stats.ByCounty[i].Count > stats.ByCounty[j].Count
		}
		return stats.ByCounty[i].County < stats.ByCounty[j].County
	})

	s.logger.Debug("analytics snapshot computed", "applications", len(apps))
	return stats, nil
}
