package verify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMatchIDNumberExact(t *testing.T) {
	m := NewMatcher()

	match := m.MatchIDNumber("12345678", []string{"99999999", "12345678"})
	assert.True(t, match.Matched)
	assert.Equal(t, 1.0, match.Confidence)
	assert.Equal(t, "12345678", match.Extracted)
	assert.Empty(t, match.Warning)
}

func TestMatchIDNumberIgnoresSpaces(t *testing.T) {
	m := NewMatcher()

	match := m.MatchIDNumber("12345678", []string{"12 345 678"})
	assert.True(t, match.Matched)
	assert.Equal(t, 1.0, match.Confidence)
}

func TestMatchIDNumberNearMiss(t *testing.T) {
	m := NewMatcher()

	// One substituted digit out of eight.
	match := m.MatchIDNumber("12345678", []string{"12345679"})
	assert.True(t, match.Matched)
	assert.InDelta(t, 0.875, match.Confidence, 0.001)
	assert.Equal(t, "Partial match - verify manually", match.Warning)
}

func TestMatchIDNumberUnmatched(t *testing.T) {
	m := NewMatcher()

	match := m.MatchIDNumber("12345678", []string{"87654321", "11112222"})
	assert.False(t, match.Matched)
	assert.Zero(t, match.Confidence)
	// Closest candidate is still reported for human review.
	assert.NotEmpty(t, match.Extracted)
}

func TestMatchIDNumberNoCandidates(t *testing.T) {
	m := NewMatcher()

	match := m.MatchIDNumber("12345678", nil)
	assert.False(t, match.Matched)
	assert.Empty(t, match.Extracted)
}

func TestMatchNameExact(t *testing.T) {
	m := NewMatcher()

	match := m.MatchName("Jane Wanjiku Kamau", []string{"JANE  WANJIKU KAMAU"})
	assert.True(t, match.Matched)
	assert.Equal(t, 1.0, match.Confidence)
	assert.Empty(t, match.Warning)
}

func TestMatchNamePartial(t *testing.T) {
	m := NewMatcher()

	match := m.MatchName("JANE WANJIKU KAMAU", []string{"JANE WANJIKU KAMAL"})
	assert.True(t, match.Matched)
	assert.Less(t, match.Confidence, 1.0)
	assert.GreaterOrEqual(t, match.Confidence, NameMatchThreshold)
	assert.Equal(t, "Name partially matched - verify spelling", match.Warning)
}

func TestMatchNameBelowThreshold(t *testing.T) {
	m := NewMatcher()

	match := m.MatchName("JANE WANJIKU KAMAU", []string{"PETER OTIENO"})
	assert.False(t, match.Matched)
	// The best ratio is preserved even when rejected.
	assert.Greater(t, match.Confidence, 0.0)
	assert.Less(t, match.Confidence, NameMatchThreshold)
	assert.Equal(t, "PETER OTIENO", match.Extracted)
}

func TestMatchDateOfBirth(t *testing.T) {
	m := NewMatcher()
	dob := time.Date(1995, time.June, 12, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		candidate string
		matched   bool
	}{
		{"day first slash", "12/06/1995", true},
		{"day first dot", "12.06.1995", true},
		{"iso", "1995-06-12", true},
		{"two digit year", "12-06-95", true},
		{"wrong date", "01/01/1990", false},
		{"garbage", "not-a-date", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match := m.MatchDateOfBirth(dob, []string{tc.candidate})
			assert.Equal(t, tc.matched, match.Matched)
			if tc.matched {
				assert.Equal(t, 1.0, match.Confidence)
				assert.Equal(t, tc.candidate, match.Extracted)
			} else {
				assert.Zero(t, match.Confidence)
			}
			assert.Equal(t, "1995-06-12", match.Expected)
		})
	}
}

func TestMatchDateOfBirthScansAllCandidates(t *testing.T) {
	m := NewMatcher()
	dob := time.Date(1995, time.June, 12, 0, 0, 0, 0, time.UTC)

	match := m.MatchDateOfBirth(dob, []string{"03/04/2021", "12/06/1995"})
	assert.True(t, match.Matched)
	assert.Equal(t, "12/06/1995", match.Extracted)
}
