package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkiplagat/bursary-intake/internal/entity"
)

func TestScoreBounds(t *testing.T) {
	scorer := NewScorer()

	worst := &entity.Application{
		AnnualFamilyIncome:       0,
		TuitionFee:               120_000,
		SiblingsInSchool:         6,
		IsOrphan:                 true,
		IsSingleParent:           true,
		HasDisability:            true,
		PreviousBursaryRecipient: false,
	}
	assert.Equal(t, MaxScore, scorer.Score(worst).Total)

	best := &entity.Application{
		AnnualFamilyIncome:       900_000,
		TuitionFee:               50_000,
		SiblingsInSchool:         0,
		PreviousBursaryRecipient: true,
	}
	b := scorer.Score(best)
	assert.Equal(t, 3, b.Total, "lowest possible score is the minimum fee-burden bucket")
	assert.Equal(t, 3, b.FeeBurden)
}

func TestIncomeBuckets(t *testing.T) {
	cases := []struct {
		income float64
		want   int
	}{
		{0, 15},
		{30_000, 15},
		{30_001, 12},
		{50_000, 12},
		{100_000, 9},
		{150_000, 6},
		{250_000, 3},
		{300_001, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, incomeScore(tc.income), "income=%v", tc.income)
	}
}

func TestSiblingBuckets(t *testing.T) {
	cases := []struct {
		inSchool int
		want     int
	}{
		{0, 0}, {1, 3}, {2, 6}, {3, 9}, {4, 12}, {5, 15}, {8, 15},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, siblingScore(tc.inSchool), "inSchool=%d", tc.inSchool)
	}
}

func TestFeeBurden(t *testing.T) {
	cases := []struct {
		name        string
		fee, income float64
		want        int
	}{
		{"zero income is maximum burden", 50_000, 0, 15},
		{"double income", 200_000, 100_000, 15},
		{"equal income", 100_000, 100_000, 12},
		{"half income", 50_000, 100_000, 9},
		{"third of income", 35_000, 100_000, 6},
		{"small relative fee", 10_000, 100_000, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, feeBurdenScore(tc.fee, tc.income))
		})
	}
}

func TestBooleanFactors(t *testing.T) {
	scorer := NewScorer()
	base := entity.Application{
		AnnualFamilyIncome:       400_000,
		TuitionFee:               10_000,
		PreviousBursaryRecipient: true,
	}

	orphan := base
	orphan.IsOrphan = true
	assert.Equal(t, 20, scorer.Score(&orphan).Orphan)

	single := base
	single.IsSingleParent = true
	assert.Equal(t, 10, scorer.Score(&single).SingleParent)

	disabled := base
	disabled.HasDisability = true
	assert.Equal(t, 15, scorer.Score(&disabled).Disability)

	firstTime := base
	firstTime.PreviousBursaryRecipient = false
	assert.Equal(t, 10, scorer.Score(&firstTime).FirstTime)

	assert.Equal(t, 0, scorer.Score(&base).Orphan)
	assert.Equal(t, 0, scorer.Score(&base).FirstTime)
}

func TestScoreMonotonicInNeed(t *testing.T) {
	scorer := NewScorer()
	poorer := &entity.Application{AnnualFamilyIncome: 25_000, TuitionFee: 40_000, PreviousBursaryRecipient: true}
	richer := &entity.Application{AnnualFamilyIncome: 280_000, TuitionFee: 40_000, PreviousBursaryRecipient: true}
	assert.Greater(t, scorer.Score(poorer).Total, scorer.Score(richer).Total)
}

func TestBreakdownTotalMatchesFactors(t *testing.T) {
	scorer := NewScorer()
	b := scorer.Score(&entity.Application{
		AnnualFamilyIncome: 45_000,
		TuitionFee:         60_000,
		SiblingsInSchool:   2,
		IsOrphan:           true,
	})
	sum := 0
	for _, f := range b.Factors() {
		sum += f.Points
	}
	assert.Equal(t, b.Total, sum)
}
