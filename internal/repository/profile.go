package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mkiplagat/bursary-intake/gen/ent"
	"github.com/mkiplagat/bursary-intake/gen/ent/applicantprofile"
	"github.com/mkiplagat/bursary-intake/internal/entity"
	"github.com/mkiplagat/bursary-intake/internal/utils"
)

// CreateProfileRequest wraps parameters for creating an applicant profile.
type CreateProfileRequest struct {
	FullName    string
	IDNumber    string
	PhoneNumber string
	Email       string
	DateOfBirth *time.Time
	County      string
	SubCounty   string
	Ward        string
	Village     string
}

type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	GetByIDNumber(ctx context.Context, idNumber string) (*entity.Profile, error)
	CreateProfile(ctx context.Context, req *CreateProfileRequest) (*entity.Profile, error)
	ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error)
	CountyIndex(ctx context.Context) (map[uuid.UUID]string, error)
}

type profileRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProfileRepository(client *ent.Client, logger *slog.Logger) ProfileRepository {
	return &profileRepository{
		client: client,
		logger: logger,
	}
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	p, err := r.client.ApplicantProfile.
		Query().
		Where(applicantprofile.ID(id)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) GetByIDNumber(ctx context.Context, idNumber string) (*entity.Profile, error) {
	p, err := r.client.ApplicantProfile.
		Query().
		Where(applicantprofile.IDNumber(idNumber)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToProfile(p), nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, req *CreateProfileRequest) (*entity.Profile, error) {
	builder := r.client.ApplicantProfile.Create().
		SetFullName(req.FullName).
		SetIDNumber(req.IDNumber).
		SetCounty(req.County)
	if req.PhoneNumber != "" {
		builder = builder.SetPhoneNumber(req.PhoneNumber)
	}
	if req.Email != "" {
		builder = builder.SetEmail(req.Email)
	}
	if req.DateOfBirth != nil {
		builder = builder.SetDateOfBirth(*req.DateOfBirth)
	}
	if req.SubCounty != "" {
		builder = builder.SetSubCounty(req.SubCounty)
	}
	if req.Ward != "" {
		builder = builder.SetWard(req.Ward)
	}
	if req.Village != "" {
		builder = builder.SetVillage(req.Village)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create profile", "id_number", req.IDNumber, "error", err)
		return nil, err
	}
	return utils.ToProfile(p), nil
}

// CountyIndex returns profile ID to county for all applicant profiles.
// Used by analytics to group applications geographically.
func (r *profileRepository) CountyIndex(ctx context.Context) (map[uuid.UUID]string, error) {
	profiles, err := r.client.ApplicantProfile.
		Query().
		Select(applicantprofile.FieldID, applicantprofile.FieldCounty).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load county index", "error", err)
		return nil, err
	}
	index := make(map[uuid.UUID]string, len(profiles))
	for _, p := range profiles {
		index[p.ID] = p.County
	}
	return index, nil
}

func (r *profileRepository) ExistsByIDNumber(ctx context.Context, idNumber string) (bool, error) {
	exists, err := r.client.ApplicantProfile.
		Query().
		Where(applicantprofile.IDNumber(idNumber)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check profile existence", "id_number", idNumber, "error", err)
		return false, err
	}
	return exists, nil
}
