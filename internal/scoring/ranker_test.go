package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/entity"
)

func newRankerForTest() *Ranker {
	return NewRanker(NewScorer())
}

func pendingApp(name string, income float64, submitted time.Time) *entity.Application {
	return &entity.Application{
		StudentName:              name,
		AnnualFamilyIncome:       income,
		TuitionFee:               80_000,
		Status:                   constants.StatusPending,
		PreviousBursaryRecipient: true,
		SubmittedAt:              submitted,
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	apps := []*entity.Application{
		pendingApp("mid", 120_000, base),
		pendingApp("high-need", 20_000, base.Add(time.Hour)),
		pendingApp("low-need", 400_000, base.Add(2*time.Hour)),
	}

	ranked := newRankerForTest().Rank(apps)
	require.Len(t, ranked, 3)
	assert.Equal(t, "high-need", ranked[0].Application.StudentName)
	assert.Equal(t, "mid", ranked[1].Application.StudentName)
	assert.Equal(t, "low-need", ranked[2].Application.StudentName)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankTiesBrokenBySubmissionTime(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	later := pendingApp("later", 20_000, base.Add(time.Hour))
	earlier := pendingApp("earlier", 20_000, base)

	ranked := newRankerForTest().Rank([]*entity.Application{later, earlier})
	assert.Equal(t, "earlier", ranked[0].Application.StudentName)
	assert.Equal(t, "later", ranked[1].Application.StudentName)
	// Equal scores share a rank.
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
}

func TestRankSharedRankSkipsPositions(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	apps := []*entity.Application{
		pendingApp("a", 20_000, base),
		pendingApp("b", 20_000, base.Add(time.Minute)),
		pendingApp("c", 400_000, base.Add(2*time.Minute)),
	}

	ranked := newRankerForTest().Rank(apps)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 1, ranked[1].Rank)
	assert.Equal(t, 3, ranked[2].Rank, "two applications share first place, next rank is 3")
}

func TestFlaggedNeverOutranksPending(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	flagged := pendingApp("flagged-high-need", 0, base)
	flagged.IsFlagged = true
	flagged.IsOrphan = true
	modest := pendingApp("modest", 250_000, base.Add(time.Hour))

	ranked := newRankerForTest().Rank([]*entity.Application{flagged, modest})
	assert.Equal(t, "modest", ranked[0].Application.StudentName)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "flagged-high-need", ranked[1].Application.StudentName)
	assert.Equal(t, 0, ranked[1].Rank, "flagged applications carry no queue rank")
}

func TestTierOrdering(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	approved := pendingApp("approved", 20_000, base)
	approved.Status = constants.StatusApproved
	underReview := pendingApp("under-review", 20_000, base)
	underReview.Status = constants.StatusUnderReview
	pending := pendingApp("pending", 300_000, base)

	ranked := newRankerForTest().Rank([]*entity.Application{approved, underReview, pending})
	assert.Equal(t, "pending", ranked[0].Application.StudentName)
	assert.Equal(t, "under-review", ranked[1].Application.StudentName)
	assert.Equal(t, "approved", ranked[2].Application.StudentName)
}

func TestRankStableForEqualKeys(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	a := pendingApp("first-in", 100_000, base)
	b := pendingApp("second-in", 100_000, base)

	ranked := newRankerForTest().Rank([]*entity.Application{a, b})
	assert.Equal(t, "first-in", ranked[0].Application.StudentName)
	assert.Equal(t, "second-in", ranked[1].Application.StudentName)
}

func TestRankEmptyInput(t *testing.T) {
	assert.Empty(t, newRankerForTest().Rank(nil))
}
