package server

import (
	"context"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	bursarypb "github.com/mkiplagat/bursary-intake/gen/proto/bursary/v1"
	"github.com/mkiplagat/bursary-intake/internal/metrics"
	"github.com/mkiplagat/bursary-intake/internal/verify"
)

func (s *BursaryService) VerifyDocument(ctx context.Context, req *bursarypb.VerifyDocumentRequest) (*bursarypb.VerifyDocumentResponse, error) {
	raw := strings.TrimSpace(req.GetDocumentId())
	if raw == "" {
		return nil, status.Error(codes.InvalidArgument, "document_id is required")
	}
	docID, err := uuid.Parse(raw)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "document_id must be a UUID")
	}

	doc, err := s.docs.GetByID(ctx, docID)
	if err != nil {
		return nil, status.Error(codes.NotFound, "document not found")
	}
	app, err := s.apps.GetByID(ctx, doc.ApplicationID)
	if err != nil {
		s.logger.Error("failed to load application for document", "document_id", docID, "error", err)
		return nil, status.Error(codes.Internal, "verify document failed")
	}
	profile, err := s.profiles.GetByID(ctx, app.ProfileID)
	if err != nil {
		s.logger.Error("failed to load profile for document", "document_id", docID, "error", err)
		return nil, status.Error(codes.Internal, "verify document failed")
	}

	data, err := os.ReadFile(doc.SourcePath)
	if err != nil {
		s.logger.Error("failed to read document file", "document_id", docID, "path", doc.SourcePath, "error", err)
		return nil, status.Errorf(codes.FailedPrecondition, "document file unavailable: %v", err)
	}

	start := time.Now()
	verdict := s.verifier.Verify(ctx, data, doc.FileExt, verify.Expected{
		Name:        profile.FullName,
		IDNumber:    profile.IDNumber,
		DateOfBirth: profile.DateOfBirth,
	})
	metrics.VerificationDuration.WithLabelValues(doc.DocumentType).Observe(time.Since(start).Seconds())

	if err := s.docs.RecordVerification(ctx, docID, verdict.Verified, float32(verdict.Confidence), verdict); err != nil {
		s.logger.Error("failed to persist verification", "document_id", docID, "error", err)
		return nil, status.Error(codes.Internal, "verify document failed")
	}
	if verdict.Verified {
		metrics.DocumentsVerified.WithLabelValues("verified").Inc()
	} else {
		metrics.DocumentsVerified.WithLabelValues("flagged").Inc()
		if err := s.apps.Flag(ctx, app.ID, "document verification failed: "+doc.DocumentType); err != nil {
			s.logger.Warn("failed to flag application", "application_id", app.ID, "error", err)
		}
	}

	return &bursarypb.VerifyDocumentResponse{Result: toPBVerdict(verdict)}, nil
}

func toPBVerdict(v verify.Verdict) *bursarypb.VerificationResult {
	fields := make([]string, 0, len(v.Matches))
	for f := range v.Matches {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	matches := make([]*bursarypb.FieldMatch, 0, len(fields))
	for _, f := range fields {
		m := v.Matches[f]
		matches = append(matches, &bursarypb.FieldMatch{
			Field:          f,
			Matched:        m.Matched,
			Confidence:     float32(m.Confidence),
			ExtractedValue: m.Extracted,
			ExpectedValue:  m.Expected,
			Warning:        m.Warning,
		})
	}
	return &bursarypb.VerificationResult{
		Success:    v.Success,
		Verified:   v.Verified,
		Confidence: float32(v.Confidence),
		Matches:    matches,
		Errors:     v.Errors,
		Warnings:   v.Warnings,
	}
}
