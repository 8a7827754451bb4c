package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "accounts/internal/mocks/repository"
	mockSvc "accounts/internal/mocks/service"
	"accounts/internal/usecase"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	accountRepo *mockRepo.MockAccountRepository
	hasher      *mockSvc.MockPasswordHasher
	tokens      *mockSvc.MockTokenService
	verifyToken *mockSvc.MockVerificationTokenGenerator
	mailer      *mockSvc.MockMailSender
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenService(t)
	verifyToken := mockSvc.NewMockVerificationTokenGenerator(t)
	mailer := mockSvc.NewMockMailSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Tokens:      tokens,
		VerifyToken: verifyToken,
		Mailer:      mailer,
		Logger:      logger,
	})

	return accountServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		hasher:      hasher,
		tokens:      tokens,
		verifyToken: verifyToken,
		mailer:      mailer,
	}
}
