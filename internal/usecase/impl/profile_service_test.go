package impl

import (
	"context"
	"testing"
	"time"

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

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	})

	profile, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fullName := "Alice Smith"
	stored := &entity.Profile{
		ID:            uuid.New(),
		UserID:        userID,
		FullName:      &fullName,
		ReferralID:    "REF-A1B2C3D4",
		UserCreatedAt: time.Now().Add(-time.Hour),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)
	})

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, stored, profile)
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := "1 Farm Lane"

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		mockProfileRepo.EXPECT().Update(ctx, userID, mock.AnythingOfType("*entity.ProfileUpdate")).
			Return(repository.ErrProfileNotFound)
	})

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Address: &address})

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_PassesOnlyProvidedFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	address := "1 Farm Lane"
	phone := "555-0100"
	updated := &entity.Profile{ID: uuid.New(), UserID: userID, Address: &address, PhoneNumber: &phone}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		mockProfileRepo.EXPECT().Update(ctx, userID, mock.AnythingOfType("*entity.ProfileUpdate")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, update *entity.ProfileUpdate) error {
				// Only the provided fields travel; everything else stays nil
				// so the store leaves those columns untouched.
				require.NotNil(t, update.Address)
				assert.Equal(t, address, *update.Address)
				require.NotNil(t, update.PhoneNumber)
				assert.Equal(t, phone, *update.PhoneNumber)
				assert.Nil(t, update.FullName)
				assert.Nil(t, update.GPSLocation)
				assert.Nil(t, update.Birthday)
				assert.Nil(t, update.Gender)
				assert.Nil(t, update.ReferralSource)

				return nil
			})
		mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(updated, nil)
	})

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Address:     &address,
		PhoneNumber: &phone,
	})

	require.NoError(t, err)
	assert.Equal(t, updated, profile)
}

func TestProfileService_ListProfiles(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	rows := []*entity.AdminProfile{
		{Profile: entity.Profile{ID: uuid.New()}, Email: "newest@example.com"},
		{Profile: entity.Profile{ID: uuid.New()}, Email: "oldest@example.com"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockProfileRepo := mockRepo.NewMockProfileRepository(t)
		factory.EXPECT().ProfileRepo().Return(mockProfileRepo)
		mockProfileRepo.EXPECT().ListAll(ctx).Return(rows, nil)
	})

	profiles, err := fx.service.ListProfiles(ctx)

	require.NoError(t, err)
	assert.Equal(t, rows, profiles)
}
