package verify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mkiplagat/bursary-intake/internal/extract"
)

// VerifiedThreshold is the overall confidence required for an automatic
// "verified" verdict. A false "verified" undermines the integrity purpose of
// the check, so the bar is high and anything below it routes to manual
// review.
const VerifiedThreshold = 0.8

// Critical field keys used in the overall confidence average.
const (
	FieldIDNumber    = "id_number"
	FieldName        = "name"
	FieldDateOfBirth = "dob"
)

// Expected carries the applicant-declared values a document is checked
// against. Zero values mean "not provided" and the field is skipped.
type Expected struct {
	Name        string
	IDNumber    string
	DateOfBirth *time.Time
}

// Verdict is the transient result of one verification call. It is never
// persisted directly; the caller decides whether to gate submission on it.
type Verdict struct {
	Success    bool                  `json:"success"`
	Verified   bool                  `json:"verified"`
	Confidence float64               `json:"confidence"`
	Extracted  extract.ExtractedData `json:"extracted_data"`
	Matches    map[string]FieldMatch `json:"matches"`
	Errors     []string              `json:"errors"`
	Warnings   []string              `json:"warnings"`
}

// Verifier orchestrates text extraction, field extraction, and per-field
// matching into a confidence-scored verdict. Construct one per request or
// application lifetime and pass it by reference; there is no shared mutable
// state between calls.
type Verifier struct {
	text    extract.TextExtractor
	fields  *extract.FieldExtractor
	matcher *Matcher
	logger  *slog.Logger
}

func NewVerifier(text extract.TextExtractor, logger *slog.Logger) *Verifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Verifier{
		text:    text,
		fields:  extract.NewFieldExtractor(),
		matcher: NewMatcher(),
		logger:  logger,
	}
}

// Verify runs the full pipeline for one document. It never panics out and
// never returns an error: every failure mode is folded into the verdict's
// Errors/Warnings so verification can block or flag a submission but never
// crash it.
func (v *Verifier) Verify(ctx context.Context, document []byte, fileExt string, expected Expected) Verdict {
	verdict := Verdict{
		Matches:  map[string]FieldMatch{},
		Errors:   []string{},
		Warnings: []string{},
	}

	if available, msg := v.text.Available(ctx); !available {
		verdict.Errors = append(verdict.Errors, fmt.Sprintf("OCR not available: %s", msg))
		verdict.Warnings = append(verdict.Warnings, "Document verification skipped - manual review required.")
		return verdict
	}

	rawText := v.text.Extract(ctx, document, fileExt)
	if rawText == "" {
		verdict.Errors = append(verdict.Errors, "Could not extract text from document.")
		return verdict
	}

	verdict.Extracted = v.fields.ExtractFields(rawText)

	// Match each expected field that produced at least one candidate.
	// Fields with no candidates are omitted from the match set, not scored
	// as failures.
	if expected.IDNumber != "" && len(verdict.Extracted.IDNumbers) > 0 {
		verdict.Matches[FieldIDNumber] = v.matcher.MatchIDNumber(expected.IDNumber, verdict.Extracted.IDNumbers)
	}
	if expected.Name != "" && len(verdict.Extracted.Names) > 0 {
		verdict.Matches[FieldName] = v.matcher.MatchName(expected.Name, verdict.Extracted.Names)
	}
	if expected.DateOfBirth != nil && len(verdict.Extracted.Dates) > 0 {
		verdict.Matches[FieldDateOfBirth] = v.matcher.MatchDateOfBirth(*expected.DateOfBirth, verdict.Extracted.Dates)
	}

	// Overall confidence is the arithmetic mean of exactly the critical
	// fields that were attempted; fields never attempted are excluded from
	// the average, not treated as zero.
	if len(verdict.Matches) > 0 {
		var sum float64
		for _, m := range verdict.Matches {
			sum += m.Confidence
		}
		verdict.Confidence = sum / float64(len(verdict.Matches))
	}

	verdict.Verified = verdict.Confidence >= VerifiedThreshold
	verdict.Success = true

	if verdict.Confidence < VerifiedThreshold {
		verdict.Warnings = append(verdict.Warnings,
			fmt.Sprintf("Low confidence match (%.1f%%). Manual review recommended.", verdict.Confidence*100))
	}

	v.logger.Info("document verification finished",
		"verified", verdict.Verified,
		"confidence", verdict.Confidence,
		"fields_attempted", len(verdict.Matches),
		"id_candidates", len(verdict.Extracted.IDNumbers),
		"name_candidates", len(verdict.Extracted.Names),
		"date_candidates", len(verdict.Extracted.Dates),
	)
	return verdict
}
