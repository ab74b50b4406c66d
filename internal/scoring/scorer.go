package scoring

import (
	"github.com/mkiplagat/bursary-intake/internal/entity"
)

// The canonical weighting table. Seven independent factors summing to a
// maximum of 100 points:
//
//	income        0-15  (lower annual family income -> more points)
//	siblings      0-15  (more siblings currently in school -> more points)
//	orphan        0/20  (largest single factor)
//	single parent 0/10
//	disability    0/15
//	first time    0/10  (never received a bursary before)
//	fee burden    3-15  (tuition fee relative to annual income)
const MaxScore = 100

// Factor names, used as breakdown keys and in exports.
const (
	FactorIncome       = "income"
	FactorSiblings     = "siblings"
	FactorOrphan       = "orphan"
	FactorSingleParent = "single_parent"
	FactorDisability   = "disability"
	FactorFirstTime    = "first_time"
	FactorFeeBurden    = "fee_burden"
)

// Breakdown is the derived, non-persisted need score of one application:
// points per factor plus the total. It is recomputed on every query and is
// never stored as a source of truth, so it can never go stale against live
// application data.
type Breakdown struct {
	Income       int `json:"income"`
	Siblings     int `json:"siblings"`
	Orphan       int `json:"orphan"`
	SingleParent int `json:"single_parent"`
	Disability   int `json:"disability"`
	FirstTime    int `json:"first_time"`
	FeeBurden    int `json:"fee_burden"`
	Total        int `json:"total"`
}

// Factors returns the per-factor points in a stable order.
func (b Breakdown) Factors() []FactorPoints {
	return []FactorPoints{
		{FactorIncome, b.Income, 15},
		{FactorSiblings, b.Siblings, 15},
		{FactorOrphan, b.Orphan, 20},
		{FactorSingleParent, b.SingleParent, 10},
		{FactorDisability, b.Disability, 15},
		{FactorFirstTime, b.FirstTime, 10},
		{FactorFeeBurden, b.FeeBurden, 15},
	}
}

// FactorPoints is one row of a score breakdown.
type FactorPoints struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
	Max    int    `json:"max"`
}

// Scorer computes need scores. It is stateless; a single instance is safe
// for concurrent use.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score derives the need-score breakdown from the application's current
// attribute values. Always call this fresh; never reuse cached sub-scores.
func (s *Scorer) Score(app *entity.Application) Breakdown {
	b := Breakdown{
		Income:    incomeScore(app.AnnualFamilyIncome),
		Siblings:  siblingScore(app.SiblingsInSchool),
		FeeBurden: feeBurdenScore(app.TuitionFee, app.AnnualFamilyIncome),
	}
	if app.IsOrphan {
		b.Orphan = 20
	}
	if app.IsSingleParent {
		b.SingleParent = 10
	}
	if app.HasDisability {
		b.Disability = 15
	}
	if !app.PreviousBursaryRecipient {
		b.FirstTime = 10
	}
	b.Total = b.Income + b.Siblings + b.Orphan + b.SingleParent +
		b.Disability + b.FirstTime + b.FeeBurden
	return b
}

func incomeScore(income float64) int {
	switch {
	case income <= 30_000:
		return 15
	case income <= 50_000:
		return 12
	case income <= 100_000:
		return 9
	case income <= 200_000:
		return 6
	case income <= 300_000:
		return 3
	default:
		return 0
	}
}

func siblingScore(inSchool int) int {
	switch {
	case inSchool >= 5:
		return 15
	case inSchool == 4:
		return 12
	case inSchool == 3:
		return 9
	case inSchool == 2:
		return 6
	case inSchool == 1:
		return 3
	default:
		return 0
	}
}

// feeBurdenScore buckets the tuition fee relative to annual income.
// Zero or missing income is the highest-burden bucket, not an error.
func feeBurdenScore(fee, income float64) int {
	if income <= 0 {
		return 15
	}
	ratio := fee / income
	switch {
	case ratio >= 2.0:
		return 15
	case ratio >= 1.0:
		return 12
	case ratio >= 0.5:
		return 9
	case ratio >= 0.3:
		return 6
	default:
		return 3
	}
}
