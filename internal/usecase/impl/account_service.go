// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/domain/service"
	"accounts/internal/usecase"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokens      service.TokenService
	verifyToken service.VerificationTokenGenerator
	mailer      service.MailSender
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Tokens      service.TokenService
	VerifyToken service.VerificationTokenGenerator
	Mailer      service.MailSender
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokens:      params.Tokens,
		verifyToken: params.VerifyToken,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authenticate verifies the credentials for a userName and issues a bearer token.
// Unknown account, unverified account, and wrong password all collapse into
// the same generic error so that callers cannot enumerate users.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("userName", input.UserName))

	account, err := srv.accountRepo.FindByUserName(ctx, input.UserName)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Authentication failed", slog.String("userName", input.UserName), slog.String("reason", "unknown userName"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account by userName")
	}

	if !account.IsVerified() {
		srv.log(ctx).Warn("Authentication failed", slog.String("userName", input.UserName), slog.String("reason", "account not verified"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Authentication failed", slog.String("userName", input.UserName), slog.String("reason", "password mismatch"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokens.Issue(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Debug("Authentication succeeded", slog.String("accountID", account.ID))

	return &usecase.AuthenticateOutput{
		Token: token,
		User:  redact(account),
	}, nil
}

// Register creates a new unverified account and sends the verification email.
// Precondition checks run in order, first failure wins: duplicate email, then
// duplicate userName.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Info("Starting registration", slog.String("userName", input.UserName), slog.String("email", input.Email))

	if err := srv.checkEmailAvailable(ctx, input.Email); err != nil {
		return err
	}
	if err := srv.checkUserNameAvailable(ctx, input.UserName); err != nil {
		return err
	}

	verificationToken, err := srv.verifyToken.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification token")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	account := &entity.Account{
		UserName:          input.UserName,
		FirstName:         input.FirstName,
		LastName:          input.LastName,
		Email:             input.Email,
		PasswordHash:      passwordHash,
		VerificationToken: verificationToken,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		// The storage error must not reach the caller.
		srv.log(ctx).Error("Failed to create account", slog.String("email", input.Email), slog.Any("error", err))

		return domainerrors.ErrAccountCreateFailed
	}

	if err := srv.sendVerificationEmail(ctx, account, input.Origin); err != nil {
		// The account already exists in unverified state here. A failed email
		// leaves it orphaned; this flow does not remediate that.
		srv.log(ctx).Error("Failed to send verification email", slog.String("email", input.Email), slog.Any("error", err))

		return domainerrors.ErrVerificationEmailFailed
	}

	srv.log(ctx).Info("Registration completed", slog.String("accountID", account.ID))

	return nil
}

func (srv *accountService) checkEmailAvailable(ctx context.Context, email string) error {
	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", email), slog.String("reason", "email taken"))

		return domainerrors.ErrEmailTaken.WithMessagef("%s seems to be already registed.", email)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check email availability")
	}

	return nil
}

func (srv *accountService) checkUserNameAvailable(ctx context.Context, userName string) error {
	_, err := srv.accountRepo.FindByUserName(ctx, userName)
	if err == nil {
		srv.log(ctx).Warn("Registration rejected", slog.String("userName", userName), slog.String("reason", "userName taken"))

		return domainerrors.ErrUserNameTaken.WithMessagef("%s seems to be already taken.", userName)
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return errors.Wrap(err, "failed to check userName availability")
	}

	return nil
}

// VerifyEmail consumes a verification token. A consumed token no longer
// matches any account, so re-submitting it fails: verification is single-use.
func (srv *accountService) VerifyEmail(ctx context.Context, token string) error {
	account, err := srv.accountRepo.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Verification failed", slog.String("reason", "unknown or consumed token"))

			return domainerrors.ErrVerificationFailed
		}

		return errors.Wrap(err, "failed to find account by verification token")
	}

	account.MarkVerified(time.Now())

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to persist verification")
	}

	srv.log(ctx).Info("Email verified", slog.String("accountID", account.ID))

	return nil
}

func (srv *accountService) sendVerificationEmail(ctx context.Context, account *entity.Account, origin string) error {
	verifyURL := fmt.Sprintf("%s/account/verify-email?token=%s", origin, account.VerificationToken)

	html := fmt.Sprintf(`<h4>Verify Email</h4>
<p>Welcome!</p>
<p>Please click the below link to verify your email address:</p>
<p><a href=%q>%s</a></p>`, verifyURL, verifyURL)

	return srv.mailer.Send(ctx, service.Mail{
		To:      account.Email,
		Subject: "User Verification Email",
		HTML:    html,
	})
}

// redact maps an account to the view returned to callers, dropping the
// password hash and verification token.
func redact(account *entity.Account) *usecase.AccountView {
	return &usecase.AccountView{
		ID:        account.ID,
		UserName:  account.UserName,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
	}
}
