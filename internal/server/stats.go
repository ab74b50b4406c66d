package server

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
)

func (s *BursaryService) GetStats(ctx context.Context, _ *bursarypb.GetStatsRequest) (*bursarypb.GetStatsResponse, error) {
	stats, err := s.analytics.Snapshot(ctx)
	if err != nil {
		s.logger.Error("failed to compute stats", "error", err)
		return nil, status.Error(codes.Internal, "stats failed")
	}

	resp := &bursarypb.GetStatsResponse{
		TotalApplications:    stats.TotalApplications,
		TotalAmountRequested: fmt.Sprintf("%.2f", stats.TotalAmountRequested),
		AverageNeedScore:     fmt.Sprintf("%.1f", stats.AverageNeedScore),
		FlaggedCount:         stats.FlaggedCount,
		VerifiedCount:        stats.VerifiedCount,
		ApprovalRate:         fmt.Sprintf("%.2f", stats.ApprovalRate),
		AvgProcessingDays:    fmt.Sprintf("%.1f", stats.AvgProcessingDays),
		HighPriorityCount:    stats.HighPriorityCount,
	}
	statuses := make([]string, 0, len(stats.ByStatus))
	for st := range stats.ByStatus {
		statuses = append(statuses, st)
	}
	sort.Strings(statuses)
	for _, st := range statuses {
		resp.ByStatus = append(resp.ByStatus, &bursarypb.StatusCount{
			Status: st,
			Count:  stats.ByStatus[st],
		})
	}
	for _, cs := range stats.ByCounty {
		resp.ByCounty = append(resp.ByCounty, &bursarypb.CountyCount{
			County:         cs.County,
			Count:          cs.Count,
			TotalRequested: fmt.Sprintf("%.2f", cs.TotalRequested),
		})
	}
	return resp, nil
}
