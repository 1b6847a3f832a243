package postgres

import (
	"context"

	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	"myfarm/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// Create persists a new profile row bound to its owning user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// profiles.user_id is unique: a second profile for the same user.
			return domainerrors.ErrValidationFailed.WrapMessage("profile already exists for this user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("profile references an unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.ID = profileM.ID

	return nil
}

// FindByUserID retrieves the profile of a user, joined with the owning
// user's creation timestamp.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// Update applies a partial update. Only non-nil fields of the update are
// written; everything else keeps its stored value. referral_id is immutable
// and is never part of the update set.
func (repo *profileRepository) Update(ctx context.Context, userID uuid.UUID, update *entity.ProfileUpdate) error {
	columns := map[string]any{}
	if update.FullName != nil {
		columns["full_name"] = *update.FullName
	}
	if update.Address != nil {
		columns["address"] = *update.Address
	}
	if update.GPSLocation != nil {
		columns["gps_location"] = *update.GPSLocation
	}
	if update.PhoneNumber != nil {
		columns["phone_number"] = *update.PhoneNumber
	}
	if update.Birthday != nil {
		columns["birthday"] = *update.Birthday
	}
	if update.Gender != nil {
		columns["gender"] = *update.Gender
	}
	if update.ReferralSource != nil {
		columns["referral_source"] = *update.ReferralSource
	}

	if len(columns) == 0 {
		// Nothing to change; the original treats this as a successful no-op.
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ListAll returns every profile joined with the owning user's email and join
// time, newest user first.
func (repo *profileRepository) ListAll(ctx context.Context) ([]*entity.AdminProfile, error) {
	var profileModels []model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Joins("User").
		Order("\"User\".created_at DESC").
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.AdminProfile, 0, len(profileModels))
	for i := range profileModels {
		profileM := &profileModels[i]
		adminProfile := &entity.AdminProfile{
			Profile: *toProfileDomain(profileM),
		}
		if profileM.User != nil {
			adminProfile.Email = profileM.User.Email
			adminProfile.JoinedAt = profileM.User.CreatedAt
		}
		profiles = append(profiles, adminProfile)
	}

	return profiles, nil
}

// --- Mapper Functions ---

// toProfileDomain converts a GORM ProfileModel to a domain Profile entity.
func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	profile := &entity.Profile{
		ID:             data.ID,
		UserID:         data.UserID,
		FullName:       data.FullName,
		Address:        data.Address,
		GPSLocation:    data.GPSLocation,
		PhoneNumber:    data.PhoneNumber,
		Birthday:       data.Birthday,
		Gender:         data.Gender,
		ReferralSource: data.ReferralSource,
		ReferralID:     data.ReferralID,
	}
	if data.User != nil {
		profile.UserCreatedAt = data.User.CreatedAt
	}

	return profile
}

// fromProfileDomain converts a domain Profile entity to a GORM ProfileModel.
func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	if profile == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:             profile.ID,
		UserID:         profile.UserID,
		FullName:       profile.FullName,
		Address:        profile.Address,
		GPSLocation:    profile.GPSLocation,
		PhoneNumber:    profile.PhoneNumber,
		Birthday:       profile.Birthday,
		Gender:         profile.Gender,
		ReferralSource: profile.ReferralSource,
		ReferralID:     profile.ReferralID,
	}
}
