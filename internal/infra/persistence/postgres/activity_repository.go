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

// activityRepository implements the domain.ActivityRepository interface using GORM.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	m := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity")
	}

	activity.ID = m.ID
	activity.CreatedAt = m.CreatedAt
	activity.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *activityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	var m model.ActivityModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrActivityNotFound
		}

		return nil, errors.Wrap(err, "failed to find activity by id")
	}

	return toActivityDomain(&m), nil
}

// FindAll lists every activity sorted Monday first, then by order within a day.
func (repo *activityRepository) FindAll(ctx context.Context) ([]*entity.Activity, error) {
	return repo.find(ctx, repo.db.WithContext(ctx))
}

// FindVisible lists only visible activities in the same sort order.
func (repo *activityRepository) FindVisible(ctx context.Context) ([]*entity.Activity, error) {
	return repo.find(ctx, repo.db.WithContext(ctx).Where("is_visible = ?", true))
}

func (repo *activityRepository) find(_ context.Context, tx *gorm.DB) ([]*entity.Activity, error) {
	var ms []model.ActivityModel
	err := tx.Order("day_rank ASC, sort_order ASC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	activities := make([]*entity.Activity, 0, len(ms))
	for i := range ms {
		activities = append(activities, toActivityDomain(&ms[i]))
	}

	return activities, nil
}

func (repo *activityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	m := fromActivityDomain(activity)

	result := repo.db.WithContext(ctx).
		Model(&model.ActivityModel{}).
		Where("id = ?", activity.ID).
		Updates(map[string]any{
			"day":         m.Day,
			"day_rank":    m.DayRank,
			"name":        m.Name,
			"time":        m.Time,
			"description": m.Description,
			"contact":     m.Contact,
			"sort_order":  m.Order,
			"is_visible":  m.IsVisible,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

func (repo *activityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ActivityModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete activity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrActivityNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:          data.ID,
		Day:         data.Day,
		Name:        data.Name,
		Time:        data.Time,
		Description: data.Description,
		Contact:     data.Contact,
		Order:       data.Order,
		IsVisible:   data.IsVisible,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:          data.ID,
		Day:         data.Day,
		DayRank:     entity.WeekdayRank(data.Day),
		Name:        data.Name,
		Time:        data.Time,
		Description: data.Description,
		Contact:     data.Contact,
		Order:       data.Order,
		IsVisible:   data.IsVisible,
	}
}
