package verify

import (
	"strings"
	"time"

	"github.com/agext/levenshtein"
)

// Match acceptance thresholds. Name matching is stricter than ID matching:
// name OCR is noisier and a false positive carries higher risk.
const (
	IDMatchThreshold   = 0.8
	NameMatchThreshold = 0.85
)

// FieldMatch is the per-field comparison result.
type FieldMatch struct {
	Matched    bool    `json:"matched"`
	Confidence float64 `json:"confidence"`
	Extracted  string  `json:"extracted_value"`
	Expected   string  `json:"expected_value"`
	Warning    string  `json:"warning,omitempty"`
}

// Matcher fuzzy-compares expected applicant values against OCR candidates.
type Matcher struct {
	params *levenshtein.Params
}

func NewMatcher() *Matcher {
	return &Matcher{params: levenshtein.NewParams()}
}

// dobLayouts are tried in order against every candidate after separator
// normalization: day-first, month-first, ISO, and 2-digit-year forms.
var dobLayouts = []string{
	"02-01-2006", // DD-MM-YYYY
	"01-02-2006", // MM-DD-YYYY
	"2006-01-02", // YYYY-MM-DD
	"02-01-06",   // DD-MM-YY
}

// MatchIDNumber compares the expected national ID against the extracted
// candidates. Exact equality (internal spaces removed) scores 1.0; the best
// fuzzy ratio is accepted above IDMatchThreshold with a partial-match
// warning. Below the threshold the closest candidate is still reported for
// human review.
func (m *Matcher) MatchIDNumber(expected string, candidates []string) FieldMatch {
	expectedClean := strings.ReplaceAll(strings.TrimSpace(expected), " ", "")

	var bestMatch string
	var bestRatio float64

	for _, candidate := range candidates {
		candidateClean := strings.ReplaceAll(strings.TrimSpace(candidate), " ", "")

		if expectedClean == candidateClean {
			return FieldMatch{
				Matched:    true,
				Confidence: 1.0,
				Extracted:  candidate,
				Expected:   expected,
			}
		}

		if ratio := levenshtein.Similarity(expectedClean, candidateClean, m.params); ratio > bestRatio {
			bestRatio = ratio
			bestMatch = candidate
		}
	}

	if bestMatch != "" && bestRatio >= IDMatchThreshold {
		return FieldMatch{
			Matched:    true,
			Confidence: bestRatio,
			Extracted:  bestMatch,
			Expected:   expected,
			Warning:    "Partial match - verify manually",
		}
	}

	closest := bestMatch
	if closest == "" && len(candidates) > 0 {
		closest = candidates[0]
	}
	return FieldMatch{
		Matched:    false,
		Confidence: 0,
		Extracted:  closest,
		Expected:   expected,
	}
}

// MatchName keeps the best similarity ratio against every candidate after
// case/whitespace normalization. The reported confidence is the best ratio
// even when below the acceptance threshold.
func (m *Matcher) MatchName(expected string, candidates []string) FieldMatch {
	expectedClean := normalizeName(expected)

	var bestMatch string
	var bestRatio float64

	for _, candidate := range candidates {
		ratio := levenshtein.Similarity(expectedClean, normalizeName(candidate), m.params)
		if ratio > bestRatio {
			bestRatio = ratio
			bestMatch = candidate
		}
	}

	matched := bestRatio >= NameMatchThreshold
	warning := ""
	if matched && bestRatio < 1.0 {
		warning = "Name partially matched - verify spelling"
	}
	return FieldMatch{
		Matched:    matched,
		Confidence: bestRatio,
		Extracted:  bestMatch,
		Expected:   expected,
		Warning:    warning,
	}
}

// MatchDateOfBirth tries every layout against every candidate string after
// harmonizing separators. The first exact calendar-date equality wins with
// confidence 1.0; there is no partial credit for dates.
func (m *Matcher) MatchDateOfBirth(expected time.Time, candidates []string) FieldMatch {
	expectedStr := expected.Format("2006-01-02")
	sep := strings.NewReplacer(".", "-", "/", "-")

	for _, candidate := range candidates {
		normalized := sep.Replace(candidate)
		for _, layout := range dobLayouts {
			parsed, err := time.Parse(layout, normalized)
			if err != nil {
				continue
			}
			if sameDate(parsed, expected) {
				return FieldMatch{
					Matched:    true,
					Confidence: 1.0,
					Extracted:  candidate,
					Expected:   expectedStr,
				}
			}
		}
	}

	closest := ""
	if len(candidates) > 0 {
		closest = candidates[0]
	}
	return FieldMatch{
		Matched:    false,
		Confidence: 0,
		Extracted:  closest,
		Expected:   expectedStr,
	}
}

func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(strings.TrimSpace(s))), " ")
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
