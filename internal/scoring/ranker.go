package scoring

import (
	"sort"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/entity"
)

// RankedApplication pairs one application with its computed score and,
// for applications still awaiting review, its queue rank.
type RankedApplication struct {
	Application *entity.Application `json:"application"`
	Score       Breakdown           `json:"score"`
	// Rank is 1-based among pending applications; 0 for applications
	// that are not pending (flagged, under review, or already decided).
	Rank int `json:"rank,omitempty"`
}

// Ranker orders applications for review. Ordering is by tier, then need
// score descending, then submission time ascending (earlier submissions
// win ties). The sort is stable so equal keys keep their input order.
type Ranker struct {
	scorer *Scorer
}

func NewRanker(scorer *Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// Rank scores and orders a snapshot of applications. Scores and ranks are
// both derived from the same snapshot, so a rank can never disagree with
// the score shown next to it.
func (r *Ranker) Rank(apps []*entity.Application) []*RankedApplication {
	ranked := make([]*RankedApplication, 0, len(apps))
	for _, app := range apps {
		ranked = append(ranked, &RankedApplication{
			Application: app,
			Score:       r.scorer.Score(app),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ti, tj := tier(ranked[i].Application), tier(ranked[j].Application)
		if ti != tj {
			return ti < tj
		}
		if ranked[i].Score.Total != ranked[j].Score.Total {
			return ranked[i].Score.Total > ranked[j].Score.Total
		}
		return ranked[i].Application.SubmittedAt.Before(ranked[j].Application.SubmittedAt)
	})

	assignRanks(ranked)
	return ranked
}

// tier groups applications for ordering: the review queue first, then
// flagged applications, then decided ones. A flagged application sinks to
// its tier regardless of its status field.
func tier(app *entity.Application) int {
	if app.IsFlagged {
		return 2
	}
	switch app.Status {
	case constants.StatusPending:
		return 0
	case constants.StatusUnderReview:
		return 1
	default:
		return 3
	}
}

// assignRanks numbers the pending applications. An application's rank is
// one more than the count of pending applications with a strictly greater
// score, so equal scores share a rank.
func assignRanks(ranked []*RankedApplication) {
	pending := 0
	lastScore := -1
	lastRank := 0
	for _, ra := range ranked {
		if tier(ra.Application) != 0 {
			continue
		}
		pending++
		if ra.Score.Total != lastScore {
			lastRank = pending
			lastScore = ra.Score.Total
		}
		ra.Rank = lastRank
	}
}
