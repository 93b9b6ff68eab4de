// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"hallcms/config"
	deliverycontext "hallcms/internal/delivery/context"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/domain/service"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMinPasswordLength = 6

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager         repository.TransactionManager
	adminRepo         repository.AdminRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	minPasswordLength int
	logger            *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	minLength := defaultMinPasswordLength
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.MinPasswordLength > 0 {
		minLength = params.Config.Auth.MinPasswordLength
	}

	return &accountService{
		txManager:         params.TxManager,
		adminRepo:         params.AdminRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		minPasswordLength: minLength,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process. Username
// and email availability are checked inside a single transaction; the unique
// indexes backstop concurrent registrations.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterAccountInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed
	}

	account := &entity.AdminAccount{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FullName:     input.FullName,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		if _, err := adminRepo.FindByUsername(ctx, input.Username); err == nil {
			return domainerrors.ErrUsernameTaken
		} else if !errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(err, "failed to check username availability")
		}

		if _, err := adminRepo.FindByEmail(ctx, input.Email); err == nil {
			return domainerrors.ErrEmailTaken
		} else if !errors.Is(err, repository.ErrAdminNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		return adminRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login verifies credentials and issues a bearer token. Unknown usernames and
// wrong passwords produce the same error so callers cannot probe for accounts.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !account.IsActive {
		return nil, domainerrors.ErrInactiveAccount
	}

	token, err := srv.tokenService.IssueToken(account.Username, account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("Login succeeded", slog.String("username", input.Username))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// GetAccount loads an account by ID. A missing account is reported as a 404;
// it happens when a token outlives its account.
func (srv *accountService) GetAccount(ctx context.Context, id uuid.UUID) (*entity.AdminAccount, error) {
	account, err := srv.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// ChangePassword verifies the current password, validates the new one and
// writes the new hash, all inside a single transaction.
func (srv *accountService) ChangePassword(ctx context.Context, input usecase.ChangePasswordInput) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		adminRepo := repoFactory.AdminRepo()

		account, err := adminRepo.FindByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to load account for password change")
		}

		if !srv.hasher.Check(input.CurrentPassword, account.PasswordHash) {
			return domainerrors.ErrCurrentPasswordIncorrect
		}

		if len(input.NewPassword) < srv.minPasswordLength {
			return domainerrors.ErrPasswordTooShort
		}

		if input.NewPassword == input.CurrentPassword {
			return domainerrors.ErrPasswordUnchanged
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to hash new password", slog.Any("error", err))

			return domainerrors.ErrPasswordHashFailed
		}

		return adminRepo.UpdatePassword(ctx, account.ID, newHash)
	})
}
