package extract

import "context"

// TextExtractor is stage 1: document bytes -> raw text.
//
// Implementations fail soft: decode or OCR problems yield empty text with
// the cause logged, never an error. Available reports whether the OCR
// dependency is usable so callers can degrade to manual review.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, fileExt string) string
	Available(ctx context.Context) (bool, string)
}

// ExtractedData holds the candidate field values found in a document.
// Lifetime is one verification call; it is never persisted.
type ExtractedData struct {
	IDNumbers []string `json:"id_numbers"`
	Names     []string `json:"names"`
	Dates     []string `json:"dates"`
}
