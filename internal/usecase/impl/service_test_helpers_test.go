package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"myfarm/config"
	"myfarm/internal/domain/repository"
	mockRepo "myfarm/internal/mocks/repository"
	mockService "myfarm/internal/mocks/service"
	"myfarm/internal/usecase"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(window time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Order: &config.OrderConfig{
			CancellationWindow: window,
		},
	}
}

// onExecute wires a transaction manager mock so that the transactional
// closure runs against a factory prepared by setup. The closure's error is
// what Execute returns, matching the real rollback-on-error behavior.
func onExecute(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	t.Helper()

	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

type authServiceFixture struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	hasher      *mockService.MockPasswordHasher
	tokenSvc    *mockService.MockTokenService
	referralGen *mockService.MockReferralCodeGenerator
	t           *testing.T
}

func createTestAuthService(t *testing.T) *authServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)
	referralGen := mockService.NewMockReferralCodeGenerator(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenSvc,
		ReferralGen:  referralGen,
		Logger:       newDiscardLogger(),
	})

	return &authServiceFixture{
		service:     service,
		txManager:   txManager,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
		referralGen: referralGen,
		t:           t,
	}
}

func (f *authServiceFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	onExecute(f.t, f.txManager, ctx, setup)
}

type profileServiceFixture struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	t         *testing.T
}

func createTestProfileService(t *testing.T) *profileServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewProfileService(txManager, newDiscardLogger())

	return &profileServiceFixture{
		service:   service,
		txManager: txManager,
		t:         t,
	}
}

func (f *profileServiceFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	onExecute(f.t, f.txManager, ctx, setup)
}

type orderServiceFixture struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	t         *testing.T
}

func createTestOrderService(t *testing.T, window time.Duration) *orderServiceFixture {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		Config:    newTestConfig(window),
		Logger:    newDiscardLogger(),
	})

	return &orderServiceFixture{
		service:   service,
		txManager: txManager,
		t:         t,
	}
}

func (f *orderServiceFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	onExecute(f.t, f.txManager, ctx, setup)
}

// setClock pins the order service's clock for window boundary tests.
func (f *orderServiceFixture) setClock(now time.Time) {
	f.service.(*orderService).now = func() time.Time { return now }
}
