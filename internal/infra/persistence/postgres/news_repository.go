package postgres

import (
	"context"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// newsRepository implements the domain.NewsRepository interface using GORM.
type newsRepository struct {
	db *gorm.DB
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(db *gorm.DB) repository.NewsRepository {
	return &newsRepository{db: db}
}

func (repo *newsRepository) Create(ctx context.Context, article *entity.NewsArticle) error {
	m := fromArticleDomain(article)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create news article")
	}

	article.ID = m.ID
	article.CreatedAt = m.CreatedAt
	article.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *newsRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	var m model.NewsArticleModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrArticleNotFound
		}

		return nil, errors.Wrap(err, "failed to find news article by id")
	}

	return toArticleDomain(&m), nil
}

// FindAll lists every article, newest date first.
func (repo *newsRepository) FindAll(ctx context.Context) ([]*entity.NewsArticle, error) {
	return repo.find(repo.db.WithContext(ctx))
}

// FindPublished lists only published articles, newest date first.
func (repo *newsRepository) FindPublished(ctx context.Context) ([]*entity.NewsArticle, error) {
	return repo.find(repo.db.WithContext(ctx).Where("published = ?", true))
}

func (repo *newsRepository) find(tx *gorm.DB) ([]*entity.NewsArticle, error) {
	var ms []model.NewsArticleModel
	err := tx.Order("date DESC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list news articles")
	}

	articles := make([]*entity.NewsArticle, 0, len(ms))
	for i := range ms {
		articles = append(articles, toArticleDomain(&ms[i]))
	}

	return articles, nil
}

func (repo *newsRepository) Update(ctx context.Context, article *entity.NewsArticle) error {
	m := fromArticleDomain(article)

	result := repo.db.WithContext(ctx).
		Model(&model.NewsArticleModel{}).
		Where("id = ?", article.ID).
		Updates(map[string]any{
			"title":     m.Title,
			"summary":   m.Summary,
			"content":   m.Content,
			"image":     m.Image,
			"date":      m.Date,
			"published": m.Published,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update news article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

func (repo *newsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NewsArticleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete news article")
	}
	if result.RowsAffected == 0 {
		return repository.ErrArticleNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toArticleDomain(data *model.NewsArticleModel) *entity.NewsArticle {
	if data == nil {
		return nil
	}

	return &entity.NewsArticle{
		ID:        data.ID,
		Title:     data.Title,
		Summary:   data.Summary,
		Content:   data.Content,
		Image:     data.Image,
		Date:      data.Date,
		Published: data.Published,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromArticleDomain(data *entity.NewsArticle) *model.NewsArticleModel {
	if data == nil {
		return nil
	}

	return &model.NewsArticleModel{
		ID:        data.ID,
		Title:     data.Title,
		Summary:   data.Summary,
		Content:   data.Content,
		Image:     data.Image,
		Date:      data.Date,
		Published: data.Published,
	}
}
