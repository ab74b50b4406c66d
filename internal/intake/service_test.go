package intake

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkiplagat/bursary-intake/constants"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/repository"
)

// ==========================
// Test fakes
// ==========================

type fakeProfileRepo struct {
	profiles map[string]*entity.Profile // by id number
	created  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*entity.Profile{}}
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	for _, p := range f.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeProfileRepo) GetByIDNumber(ctx context.Context, idNumber string) (*entity.Profile, error) {
	p, ok := f.profiles[idNumber]
	if !ok {
		return nil, assert.AnError
	}
	return p, nil
}

func (f *fakeProfileRepo) CreateProfile(ctx context.Context, req *repository.CreateProfileRequest) (*entity.Profile, error) {
	p := &entity.Profile{
		ID:          uuid.New(),
		FullName:    req.FullName,
		IDNumber:    req.IDNumber,
		DateOfBirth: req.DateOfBirth,
		County:      req.County,
	}
	f.profiles[req.IDNumber] = p
	f.created++
	return p, nil
}

func (f *fakeProfileRepo) ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error) {
	_, ok := f.profiles[idNumber]
	return ok, nil
}

func (f *fakeProfileRepo) CountyIndex(ctx context.Context) (map[uuid.UUID]string, error) {
	index := map[uuid.UUID]string{}
	for _, p := range f.profiles {
		index[p.ID] = p.County
	}
	return index, nil
}

type fakeApplicationRepo struct {
	apps    map[uuid.UUID]*entity.Application
	flagged map[uuid.UUID]string
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:    map[uuid.UUID]*entity.Application{},
		flagged: map[uuid.UUID]string{},
	}
}

func (f *fakeApplicationRepo) CreateApplication(ctx context.Context, req *repository.CreateApplicationRequest) (*entity.Application, error) {
	app := &entity.Application{
		ID:                       uuid.New(),
		ApplicationNumber:        "BUR-2026-TEST0001",
		ProfileID:                req.ProfileID,
		StudentName:              req.StudentName,
		InstitutionName:          req.InstitutionName,
		AnnualFamilyIncome:       req.AnnualFamilyIncome,
		TuitionFee:               req.TuitionFee,
		AmountRequested:          req.AmountRequested,
		NumberOfSiblings:         req.NumberOfSiblings,
		SiblingsInSchool:         req.SiblingsInSchool,
		IsOrphan:                 req.IsOrphan,
		HasDisability:            req.HasDisability,
		IsSingleParent:           req.IsSingleParent,
		PreviousBursaryRecipient: req.PreviousBursary,
		Status:                   constants.StatusPending,
		SubmittedAt:              time.Now(),
	}
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, assert.AnError
	}
	return app, nil
}

func (f *fakeApplicationRepo) GetByNumber(ctx context.Context, n string) (*entity.Application, error) {
	for _, app := range f.apps {
		if app.ApplicationNumber == n {
			return app, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeApplicationRepo) ListApplications(ctx context.Context, filter repository.ListFilter) ([]*entity.Application, error) {
	var out []*entity.Application
	for _, app := range f.apps {
		out = append(out, app)
	}
	return out, nil
}

func (f *fakeApplicationRepo) Review(ctx context.Context, req *repository.ReviewRequest) (*entity.Application, error) {
	app, ok := f.apps[req.ApplicationID]
	if !ok {
		return nil, assert.AnError
	}
	app.Status = req.NewStatus
	return app, nil
}

func (f *fakeApplicationRepo) Flag(ctx context.Context, id uuid.UUID, reason string) error {
	f.flagged[id] = reason
	if app, ok := f.apps[id]; ok {
		app.IsFlagged = true
	}
	return nil
}

func (f *fakeApplicationRepo) MarkVerified(ctx context.Context, id uuid.UUID, by string) error {
	if app, ok := f.apps[id]; ok {
		app.IsVerified = true
	}
	return nil
}

func (f *fakeApplicationRepo) ListStatusLogs(ctx context.Context, id uuid.UUID) ([]*entity.StatusLog, error) {
	return nil, nil
}

type fakeDocumentRepo struct {
	docs []*entity.Document
}

func (f *fakeDocumentRepo) CreateDocument(ctx context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	doc := &entity.Document{
		ID:            uuid.New(),
		ApplicationID: req.ApplicationID,
		DocumentType:  req.DocumentType,
		SourcePath:    req.SourcePath,
		FileExt:       req.FileExt,
		Status:        constants.DocumentPending,
	}
	f.docs = append(f.docs, doc)
	return doc, nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range f.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeDocumentRepo) ListByApplication(ctx context.Context, appID uuid.UUID) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range f.docs {
		if d.ApplicationID == appID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentRepo) RecordVerification(ctx context.Context, id uuid.UUID, verified bool, confidence float32, result any) error {
	return nil
}

type fakeScreener struct {
	seen map[string]bool
}

func (f *fakeScreener) Seen(ctx context.Context, id string) bool { return f.seen[id] }
func (f *fakeScreener) Record(ctx context.Context, id string) {
	if f.seen == nil {
		f.seen = map[string]bool{}
	}
	f.seen[id] = true
}

// ==========================
// Helpers
// ==========================

func newTestService(t *testing.T) (*Service, *fakeProfileRepo, *fakeApplicationRepo, *fakeDocumentRepo, *fakeScreener) {
	t.Helper()
	profiles := newFakeProfileRepo()
	apps := newFakeApplicationRepo()
	docs := &fakeDocumentRepo{}
	screener := &fakeScreener{seen: map[string]bool{}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(profiles, apps, docs, screener, nil, nil, logger)
	return svc, profiles, apps, docs, screener
}

func validSubmission() *Submission {
	return &Submission{
		Profile: SubmissionProfile{
			FullName: "JANE WANJIKU KAMAU",
			IDNumber: "12345678",
			County:   "Nakuru",
		},
		Application: SubmissionApplication{
			StudentName:        "JANE WANJIKU KAMAU",
			InstitutionName:    "Egerton University",
			AnnualFamilyIncome: 45_000,
			TuitionFee:         120_000,
			AmountRequested:    80_000,
			NumberOfSiblings:   4,
			SiblingsInSchool:   3,
			IsOrphan:           true,
		},
	}
}

// ==========================
// Tests
// ==========================

func TestSubmitCreatesProfileAndApplication(t *testing.T) {
	svc, profiles, apps, _, screener := newTestService(t)

	result, err := svc.Submit(context.Background(), validSubmission())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, profiles.created)
	assert.Len(t, apps.apps, 1)
	assert.Equal(t, constants.StatusPending, result.Application.Status)
	assert.True(t, screener.seen["12345678"], "submission records the ID for duplicate screening")
	assert.Greater(t, result.Score.Total, 0)
	assert.Equal(t, 20, result.Score.Orphan)
}

func TestSubmitReusesExistingProfile(t *testing.T) {
	svc, profiles, _, _, screener := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	// The second submission comes after the screening window has lapsed.
	screener.seen = map[string]bool{}
	_, err = svc.Submit(ctx, validSubmission())
	require.NoError(t, err)
	assert.Equal(t, 1, profiles.created, "same ID number must not create a second profile")
}

func TestSubmitRejectsRecentDuplicate(t *testing.T) {
	svc, _, apps, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Submit(ctx, validSubmission())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, validSubmission())
	require.Error(t, err)
	assert.Len(t, apps.apps, 1, "duplicate submission must not persist")
}

func TestSubmitRejectsInvalidInvariants(t *testing.T) {
	svc, _, apps, _, _ := newTestService(t)

	sub := validSubmission()
	sub.Application.AmountRequested = sub.Application.TuitionFee + 1
	_, err := svc.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.Empty(t, apps.apps)

	sub = validSubmission()
	sub.Application.SiblingsInSchool = sub.Application.NumberOfSiblings + 1
	_, err = svc.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.Empty(t, apps.apps)
}

func TestSubmitRejectsUnsupportedDocumentExtension(t *testing.T) {
	svc, _, apps, docs, _ := newTestService(t)

	sub := validSubmission()
	sub.Documents = []SubmissionDocument{
		{DocumentType: "national_id", SourcePath: "/uploads/id.docx"},
	}
	_, err := svc.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.Empty(t, apps.apps, "nothing persisted when a document is unsupported")
	assert.Empty(t, docs.docs)
}

func TestSubmitPersistsDocuments(t *testing.T) {
	svc, _, _, docs, _ := newTestService(t)

	sub := validSubmission()
	sub.Documents = []SubmissionDocument{
		{DocumentType: "national_id", SourcePath: "/uploads/id.PDF"},
		{DocumentType: "fee_structure", SourcePath: "/uploads/fees.jpg"},
	}
	result, err := svc.Submit(context.Background(), sub)
	require.NoError(t, err)
	require.Len(t, result.Documents, 2)
	assert.Equal(t, "pdf", docs.docs[0].FileExt)
	assert.Equal(t, "jpg", docs.docs[1].FileExt)
}

func TestSubmitRawValidatesSchema(t *testing.T) {
	svc, _, _, _, _ := newTestService(t)

	_, err := svc.SubmitRaw(context.Background(), []byte(`{"application": {}}`))
	require.Error(t, err)

	_, err = svc.SubmitRaw(context.Background(), []byte(`not json`))
	require.Error(t, err)
}

func TestValidatePayloadAcceptsWellFormedSubmission(t *testing.T) {
	payload := []byte(`{
		"profile": {"full_name": "JANE WANJIKU KAMAU", "id_number": "12345678", "county": "Nakuru"},
		"application": {
			"student_name": "JANE WANJIKU KAMAU",
			"institution_name": "Egerton University",
			"annual_family_income": 45000,
			"tuition_fee": 120000,
			"amount_requested": 80000
		},
		"documents": [{"document_type": "national_id", "source_path": "/uploads/id.pdf"}]
	}`)
	assert.NoError(t, ValidatePayload(payload))
}

func TestValidatePayloadRejectsBadIDNumber(t *testing.T) {
	payload := []byte(`{
		"profile": {"full_name": "JANE", "id_number": "12AB", "county": "Nakuru"},
		"application": {
			"student_name": "JANE",
			"institution_name": "Egerton University",
			"annual_family_income": 45000,
			"tuition_fee": 120000,
			"amount_requested": 80000
		}
	}`)
	assert.Error(t, ValidatePayload(payload))
}
