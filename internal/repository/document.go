package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/gen/ent"
	"github.com/mkiplagat/bursary-intake/gen/ent/document"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/utils"
)

// CreateDocumentRequest wraps parameters for attaching a document to an application.
type CreateDocumentRequest struct {
	ApplicationID uuid.UUID
	DocumentType  string
	SourcePath    string
	FileExt       string
	Description   string
}

type DocumentRepository interface {
	CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entity.Document, error)
	RecordVerification(ctx context.Context, id uuid.UUID, verified bool, confidence float32, result any) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{
		client: client,
		logger: logger,
	}
}

func (r *documentRepository) CreateDocument(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	builder := r.client.Document.Create().
		SetApplicationID(req.ApplicationID).
		SetDocumentType(req.DocumentType).
		SetSourcePath(req.SourcePath).
		SetFileExt(req.FileExt)
	if req.Description != "" {
		builder = builder.SetDescription(req.Description)
	}

	doc, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document",
			"application_id", req.ApplicationID, "document_type", req.DocumentType, "error", err)
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.
		Query().
		Where(document.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToDocument(doc), nil
}

func (r *documentRepository) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entity.Document, error) {
	docs, err := r.client.Document.
		Query().
		Where(document.ApplicationID(applicationID)).
		Order(document.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "application_id", applicationID, "error", err)
		return nil, err
	}

	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = utils.ToDocument(d)
	}
	return result, nil
}

// RecordVerification stores the verification outcome on the document. The
// full result is kept as JSON so a reviewer can see per-field matches later.
func (r *documentRepository) RecordVerification(ctx context.Context, id uuid.UUID, verified bool, confidence float32, result any) error {
	status := constants.DocumentRejected
	if verified {
		status = constants.DocumentVerified
	}

	builder := r.client.Document.UpdateOneID(id).
		SetStatus(string(status)).
		SetIsVerified(verified).
		SetIsFlagged(!verified).
		SetVerificationConfidence(confidence)
	if result != nil {
		if b, err := json.Marshal(result); err == nil {
			builder = builder.SetVerificationResult(b)
		}
	}

	if err := builder.Exec(ctx); err != nil {
		r.logger.Error("failed to record verification", "document_id", id, "error", err)
		return err
	}
	r.logger.Info("verification recorded",
		"document_id", id, "verified", verified, "confidence", confidence)
	return nil
}
