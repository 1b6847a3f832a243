package impl

import (
	"context"
	"testing"

	"myfarm/internal/domain/entity"
	domainerrors "myfarm/internal/domain/errors"
	"myfarm/internal/domain/repository"
	mockRepo "myfarm/internal/mocks/repository"
	"myfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup_MissingCredentials(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.SignupInput
	}{
		{name: "missing email", input: &usecase.SignupInput{Password: "secret"}},
		{name: "missing password", input: &usecase.SignupInput{Email: "a@x.com"}},
		{name: "missing both", input: &usecase.SignupInput{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			output, err := fx.service.Signup(ctx, tc.input)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, domainerrors.ErrEmailAndPasswordRequired))
		})
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.referralGen.EXPECT().Generate().Return("REF-A1B2C3D4", nil)
	fx.tokenSvc.EXPECT().GenerateToken(mock.Anything, "alice@example.com").Return("token-123", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)

		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				user.ID = uuid.New()

				return nil
			})
		mockProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	})

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)
	assert.Equal(t, "alice@example.com", output.User.Email)
	require.NotNil(t, output.User.Profile)
	assert.Equal(t, "REF-A1B2C3D4", output.User.Profile.ReferralID)
	// No full name given, the email's local part fills in.
	require.NotNil(t, output.User.Profile.FullName)
	assert.Equal(t, "alice", *output.User.Profile.FullName)
}

func TestAuthService_Signup_KeepsProvidedFullName(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fullName := "Alice Smith"

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.referralGen.EXPECT().Generate().Return("REF-00000000", nil)
	fx.tokenSvc.EXPECT().GenerateToken(mock.Anything, "alice@example.com").Return("token", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)

		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
		mockProfileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).
			RunAndReturn(func(_ context.Context, profile *entity.Profile) error {
				assert.Equal(t, fullName, *profile.FullName)

				return nil
			})
	})

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "alice@example.com",
		Password: "secret",
		FullName: &fullName,
	})

	require.NoError(t, err)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	fx.referralGen.EXPECT().Generate().Return("REF-00000000", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(domainerrors.ErrEmailAlreadyExists)
	})

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Email:    "alice@example.com",
		Password: "secret",
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyExists))
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "secret"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrLoginUserNotFound))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "hashed"}

	fx.hasher.EXPECT().Check("secret", "hashed").Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(user.ID, user.Email).Return("token-456", nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	})

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "token-456", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.Me(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAuthService_Me_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	})

	found, err := fx.service.Me(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, found)
}
