package verify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTextExtractor struct {
	text      string
	available bool
}

func (f *fakeTextExtractor) Extract(_ context.Context, _ []byte, _ string) string {
	return f.text
}

func (f *fakeTextExtractor) Available(_ context.Context) (bool, string) {
	if f.available {
		return true, ""
	}
	return false, "tesseract not found"
}

func TestVerifyAllFieldsMatch(t *testing.T) {
	text := "REPUBLIC OF KENYA\nFULL NAME: JANE WANJIKU KAMAU\nID NO: 12345678\nDATE OF BIRTH: 12/06/1995"
	v := NewVerifier(&fakeTextExtractor{text: text, available: true}, nil)
	dob := time.Date(1995, time.June, 12, 0, 0, 0, 0, time.UTC)

	verdict := v.Verify(context.Background(), []byte("doc"), "pdf", Expected{
		Name:        "Jane Wanjiku Kamau",
		IDNumber:    "12345678",
		DateOfBirth: &dob,
	})

	assert.True(t, verdict.Success)
	assert.True(t, verdict.Verified)
	assert.Equal(t, 1.0, verdict.Confidence)
	assert.Len(t, verdict.Matches, 3)
	assert.Empty(t, verdict.Errors)
	assert.Empty(t, verdict.Warnings)
}

func TestVerifyExtractorUnavailable(t *testing.T) {
	v := NewVerifier(&fakeTextExtractor{available: false}, nil)

	verdict := v.Verify(context.Background(), []byte("doc"), "pdf", Expected{IDNumber: "12345678"})

	assert.False(t, verdict.Success)
	assert.False(t, verdict.Verified)
	require.Len(t, verdict.Errors, 1)
	assert.Contains(t, verdict.Errors[0], "OCR not available")
	assert.Contains(t, verdict.Warnings, "Document verification skipped - manual review required.")
}

func TestVerifyEmptyText(t *testing.T) {
	v := NewVerifier(&fakeTextExtractor{text: "", available: true}, nil)

	verdict := v.Verify(context.Background(), []byte("doc"), "jpg", Expected{IDNumber: "12345678"})

	assert.False(t, verdict.Success)
	assert.Contains(t, verdict.Errors, "Could not extract text from document.")
	assert.Empty(t, verdict.Matches)
}

func TestVerifyAveragesAttemptedFieldsOnly(t *testing.T) {
	// The document exposes an ID and a name but no date token, so only two
	// fields enter the confidence average even though a DOB was expected.
	text := "FULL NAME: JANE WANJIKU KAMAU\nID NO: 12345678"
	v := NewVerifier(&fakeTextExtractor{text: text, available: true}, nil)
	dob := time.Date(1995, time.June, 12, 0, 0, 0, 0, time.UTC)

	verdict := v.Verify(context.Background(), []byte("doc"), "png", Expected{
		Name:        "JANE WANJIKU KAMAU",
		IDNumber:    "12345678",
		DateOfBirth: &dob,
	})

	assert.True(t, verdict.Verified)
	assert.Equal(t, 1.0, verdict.Confidence)
	assert.Len(t, verdict.Matches, 2)
	assert.NotContains(t, verdict.Matches, FieldDateOfBirth)
}

func TestVerifySkipsFieldsNotProvided(t *testing.T) {
	text := "FULL NAME: JANE WANJIKU KAMAU\nID NO: 12345678"
	v := NewVerifier(&fakeTextExtractor{text: text, available: true}, nil)

	verdict := v.Verify(context.Background(), []byte("doc"), "pdf", Expected{IDNumber: "12345678"})

	assert.Len(t, verdict.Matches, 1)
	assert.Contains(t, verdict.Matches, FieldIDNumber)
}

func TestVerifyLowConfidenceWarns(t *testing.T) {
	// Wrong ID on the document drags the average below the threshold.
	text := "FULL NAME: JANE WANJIKU KAMAU\nID NO: 87654321"
	v := NewVerifier(&fakeTextExtractor{text: text, available: true}, nil)

	verdict := v.Verify(context.Background(), []byte("doc"), "pdf", Expected{
		Name:     "JANE WANJIKU KAMAU",
		IDNumber: "12345678",
	})

	assert.True(t, verdict.Success)
	assert.False(t, verdict.Verified)
	assert.Less(t, verdict.Confidence, VerifiedThreshold)
	require.Len(t, verdict.Warnings, 1)
	assert.Contains(t, verdict.Warnings[0], "Low confidence match")
	assert.Contains(t, verdict.Warnings[0], "Manual review recommended.")
}
