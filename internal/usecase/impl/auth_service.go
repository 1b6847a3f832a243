// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "myfarm/internal/delivery/context"
	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	"myfarm/internal/domain/service"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	referralGen  service.ReferralCodeGenerator
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	ReferralGen  service.ReferralCodeGenerator
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		referralGen:  params.ReferralGen,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the User and its Profile in one transaction and issues a
// session token. A duplicate email rolls the whole signup back, leaving no
// partial rows behind.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SessionOutput, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrEmailAndPasswordRequired)
	}

	srv.log(ctx).Info("Signup attempt", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	referralID, err := srv.referralGen.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate referral code")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		newProfile := &entity.Profile{
			UserID:         newUser.ID,
			FullName:       defaultFullName(input.FullName, input.Email),
			Address:        input.Address,
			GPSLocation:    input.GPSLocation,
			PhoneNumber:    input.PhoneNumber,
			Birthday:       input.Birthday,
			Gender:         input.Gender,
			ReferralSource: input.ReferralSource,
			ReferralID:     referralID,
		}

		if err := repoFactory.ProfileRepo().Create(ctx, newProfile); err != nil {
			return errors.Wrap(err, "failed to create profile during signup")
		}

		newUser.Profile = newProfile

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(newUser.ID, newUser.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after signup")
	}

	srv.log(ctx).Debug("Signup completed", slog.Any("userID", newUser.ID))

	return &usecase.SessionOutput{User: newUser, AccessToken: token}, nil
}

// Login verifies the credentials and issues a fresh session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.SessionOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrLoginUserNotFound)
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login rejected: password mismatch", slog.String("email", input.Email))

		return nil, errors.WithStack(domainerrors.ErrInvalidPassword)
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token after login")
	}

	return &usecase.SessionOutput{User: user, AccessToken: token}, nil
}

// Me resolves the caller's identity record.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to find user by id")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// defaultFullName falls back to the local part of the email when the client
// did not supply a name.
func defaultFullName(fullName *string, email string) *string {
	if fullName != nil && *fullName != "" {
		return fullName
	}

	local, _, _ := strings.Cut(email, "@")

	return &local
}
