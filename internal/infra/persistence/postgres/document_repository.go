package postgres

import (
	"context"
	"database/sql"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// documentRepository implements the domain.DocumentRepository interface using GORM.
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository is the constructor for documentRepository.
func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepository{db: db}
}

func (repo *documentRepository) Create(ctx context.Context, document *entity.GovernanceDocument) error {
	m := fromDocumentDomain(document)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create document")
	}

	document.ID = m.ID
	document.CreatedAt = m.CreatedAt
	document.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *documentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GovernanceDocument, error) {
	var m model.GovernanceDocumentModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDocumentNotFound
		}

		return nil, errors.Wrap(err, "failed to find document by id")
	}

	return toDocumentDomain(&m), nil
}

// FindAll lists documents by ascending order field.
func (repo *documentRepository) FindAll(ctx context.Context) ([]*entity.GovernanceDocument, error) {
	var ms []model.GovernanceDocumentModel
	err := repo.db.WithContext(ctx).Order("sort_order ASC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	documents := make([]*entity.GovernanceDocument, 0, len(ms))
	for i := range ms {
		documents = append(documents, toDocumentDomain(&ms[i]))
	}

	return documents, nil
}

// MaxOrder returns the highest order value, or -1 when the table is empty.
func (repo *documentRepository) MaxOrder(ctx context.Context) (int, error) {
	var max sql.NullInt64
	err := repo.db.WithContext(ctx).
		Model(&model.GovernanceDocumentModel{}).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to query max document order")
	}
	if !max.Valid {
		return -1, nil
	}

	return int(max.Int64), nil
}

func (repo *documentRepository) Update(ctx context.Context, document *entity.GovernanceDocument) error {
	m := fromDocumentDomain(document)

	result := repo.db.WithContext(ctx).
		Model(&model.GovernanceDocumentModel{}).
		Where("id = ?", document.ID).
		Updates(map[string]any{
			"title":      m.Title,
			"file_url":   m.FileURL,
			"file_type":  m.FileType,
			"file_size":  m.FileSize,
			"sort_order": m.Order,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// UpdateOrder rewrites the order field of a single document.
func (repo *documentRepository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GovernanceDocumentModel{}).
		Where("id = ?", id).
		Update("sort_order", order)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update document order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

func (repo *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.GovernanceDocumentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete document")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDocumentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDocumentDomain(data *model.GovernanceDocumentModel) *entity.GovernanceDocument {
	if data == nil {
		return nil
	}

	return &entity.GovernanceDocument{
		ID:        data.ID,
		Title:     data.Title,
		FileURL:   data.FileURL,
		FileType:  data.FileType,
		FileSize:  data.FileSize,
		Order:     data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDocumentDomain(data *entity.GovernanceDocument) *model.GovernanceDocumentModel {
	if data == nil {
		return nil
	}

	return &model.GovernanceDocumentModel{
		ID:       data.ID,
		Title:    data.Title,
		FileURL:  data.FileURL,
		FileType: data.FileType,
		FileSize: data.FileSize,
		Order:    data.Order,
	}
}
