package postgres

import (
	"context"
	"strings"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminRepository implements the domain.AdminRepository interface using GORM.
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository is the constructor for adminRepository.
// It returns the repository as a domain.AdminRepository interface, adhering to dependency inversion.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminAccount, error) {
	var m model.AdminUserModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find admin by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAdminDomain(&m), nil
}

// FindByUsername retrieves a single account by its unique username.
func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	var m model.AdminUserModel
	err := repo.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by username")
	}

	return toAdminDomain(&m), nil
}

// FindByEmail retrieves a single account by its unique email.
func (repo *adminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminAccount, error) {
	var m model.AdminUserModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin by email")
	}

	return toAdminDomain(&m), nil
}

// Create persists a new account. Unique-index violations are translated into
// the field-specific domain errors the registration flow reports.
func (repo *adminRepository) Create(ctx context.Context, account *entity.AdminAccount) error {
	m := fromAdminDomain(account)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(strings.ToLower(err.Error()), "email") {
				return domainerrors.ErrEmailTaken
			}

			return domainerrors.ErrUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin account")
	}

	// Update the entity with the generated ID and timestamp.
	account.ID = m.ID
	account.CreatedAt = m.CreatedAt

	return nil
}

// UpdatePassword replaces the stored password hash for the given account.
func (repo *adminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminUserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAdminDomain converts a GORM AdminUserModel to a domain AdminAccount entity.
func toAdminDomain(data *model.AdminUserModel) *entity.AdminAccount {
	if data == nil {
		return nil
	}

	return &entity.AdminAccount{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		IsActive:     data.IsActive,
		IsSuperuser:  data.IsSuperuser,
		CreatedAt:    data.CreatedAt,
	}
}

// fromAdminDomain converts a domain AdminAccount entity to a GORM AdminUserModel for persistence.
func fromAdminDomain(data *entity.AdminAccount) *model.AdminUserModel {
	if data == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		FullName:     data.FullName,
		IsActive:     data.IsActive,
		IsSuperuser:  data.IsSuperuser,
	}
}
