package impl

import (
	"context"
	"log/slog"

	deliverycontext "myfarm/internal/delivery/context"
	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves a user's profile joined with the owning user's
// creation timestamp.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to find profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// UpdateProfile merges the non-nil input fields into the stored profile.
// Absent fields keep their stored values. Returns the row as it stands after
// the update.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	var profile *entity.Profile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		update := &entity.ProfileUpdate{
			FullName:       input.FullName,
			Address:        input.Address,
			GPSLocation:    input.GPSLocation,
			PhoneNumber:    input.PhoneNumber,
			Birthday:       input.Birthday,
			Gender:         input.Gender,
			ReferralSource: input.ReferralSource,
		}

		if err := repoFactory.ProfileRepo().Update(ctx, userID, update); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to update profile")
		}

		found, err := repoFactory.ProfileRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return errors.WithStack(domainerrors.ErrProfileNotFound)
			}

			return errors.Wrap(err, "failed to reload profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ListProfiles returns every profile with its owner's email and join time,
// newest user first.
func (srv *profileService) ListProfiles(ctx context.Context) ([]*entity.AdminProfile, error) {
	var profiles []*entity.AdminProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProfileRepo().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		profiles = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return profiles, nil
}
