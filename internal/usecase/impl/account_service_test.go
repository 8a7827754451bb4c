package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"
)

func verifiedAccount() *entity.Account {
	verifiedAt := time.Now().Add(-24 * time.Hour)

	return &entity.Account{
		ID:           "64f1b2c3d4e5f60718293a4b",
		UserName:     "testuser",
		FirstName:    "Test",
		LastName:     "User",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$hashedpassword",
		VerifiedAt:   &verifiedAt,
	}
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := verifiedAccount()
	input := &usecase.AuthenticateInput{
		UserName: account.UserName,
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(true)
	fx.tokens.EXPECT().Issue(account.ID).Return("signed.jwt.token", nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, account.ID, output.User.ID)
	assert.Equal(t, account.UserName, output.User.UserName)
	assert.Equal(t, account.Email, output.User.Email)
}

func TestAccountService_Authenticate_UnknownUserName(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		UserName: "nobody",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Authenticate_UnverifiedAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := verifiedAccount()
	account.VerifiedAt = nil
	account.VerificationToken = "pending-token"
	input := &usecase.AuthenticateInput{
		UserName: account.UserName,
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(account, nil)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := verifiedAccount()
	input := &usecase.AuthenticateInput{
		UserName: account.UserName,
		Password: "wrong-password",
	}

	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(false)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Authenticate_RedactsSensitiveFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := verifiedAccount()
	input := &usecase.AuthenticateInput{
		UserName: account.UserName,
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(account, nil)
	fx.hasher.EXPECT().Check(input.Password, account.PasswordHash).Return(true)
	fx.tokens.EXPECT().Issue(account.ID).Return("signed.jwt.token", nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, &usecase.AccountView{
		ID:        account.ID,
		UserName:  account.UserName,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
	}, output.User)
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		UserName:  "newuser",
		FirstName: "New",
		LastName:  "User",
		Email:     "new@example.com",
		Password:  "Password123!",
		Origin:    "https://example.com",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(nil, repository.ErrAccountNotFound)
	fx.verifyToken.EXPECT().Generate().Return("generated-verification-token", nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, account *entity.Account) {
			assert.Equal(t, input.UserName, account.UserName)
			assert.Equal(t, input.Email, account.Email)
			assert.Equal(t, "hashed_password", account.PasswordHash)
			assert.Equal(t, "generated-verification-token", account.VerificationToken)
			assert.False(t, account.IsVerified())

			account.ID = "64f1b2c3d4e5f60718293a4b"
		}).
		Return(nil)

	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.Mail")).
		Run(func(ctx context.Context, mail service.Mail) {
			assert.Equal(t, input.Email, mail.To)
			assert.Equal(t, "User Verification Email", mail.Subject)
			assert.Contains(t, mail.HTML, "https://example.com/account/verify-email?token=generated-verification-token")
		}).
		Return(nil)

	err := fx.service.Register(ctx, input)

	require.NoError(t, err)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		UserName: "newuser",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(verifiedAccount(), nil)

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "taken@example.com seems to be already registed.", appErr.Message())
}

func TestAccountService_Register_UserNameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		UserName: "takenuser",
		Email:    "new@example.com",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(verifiedAccount(), nil)

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNameTaken))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "takenuser seems to be already taken.", appErr.Message())
}

func TestAccountService_Register_EmailCheckedBeforeUserName(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		UserName: "takenuser",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	// Both are taken; the email check runs first and wins.
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(verifiedAccount(), nil)

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Register_CreateFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		UserName: "newuser",
		Email:    "new@example.com",
		Password: "Password123!",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(nil, repository.ErrAccountNotFound)
	fx.verifyToken.EXPECT().Generate().Return("generated-verification-token", nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(errors.New("duplicate key error"))

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountCreateFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Failed to create the user.", appErr.Message())
	assert.NotContains(t, appErr.Message(), "duplicate key")
}

func TestAccountService_Register_MailFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		UserName: "newuser",
		Email:    "new@example.com",
		Password: "Password123!",
		Origin:   "https://example.com",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().
		FindByUserName(ctx, input.UserName).
		Return(nil, repository.ErrAccountNotFound)
	fx.verifyToken.EXPECT().Generate().Return("generated-verification-token", nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.AnythingOfType("service.Mail")).
		Return(errors.New("smtp: connection refused"))

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationEmailFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Failed to send Verification email.", appErr.Message())
}

func TestAccountService_VerifyEmail_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := verifiedAccount()
	account.VerifiedAt = nil
	account.VerificationToken = "pending-token"

	fx.accountRepo.EXPECT().
		FindByVerificationToken(ctx, "pending-token").
		Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(ctx context.Context, updated *entity.Account) {
			assert.True(t, updated.IsVerified())
			assert.Empty(t, updated.VerificationToken)
		}).
		Return(nil)

	err := fx.service.VerifyEmail(ctx, "pending-token")

	require.NoError(t, err)
}

func TestAccountService_VerifyEmail_UnknownToken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.accountRepo.EXPECT().
		FindByVerificationToken(ctx, "stale-token").
		Return(nil, repository.ErrAccountNotFound)

	err := fx.service.VerifyEmail(ctx, "stale-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationFailed))
}

func TestAccountService_VerifyEmail_UpdateFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	account := verifiedAccount()
	account.VerifiedAt = nil
	account.VerificationToken = "pending-token"

	fx.accountRepo.EXPECT().
		FindByVerificationToken(ctx, "pending-token").
		Return(account, nil)
	fx.accountRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Account")).
		Return(errors.New("write conflict"))

	err := fx.service.VerifyEmail(ctx, "pending-token")

	require.Error(t, err)
	assert.False(t, errors.Is(err, domainerrors.ErrVerificationFailed))
}
