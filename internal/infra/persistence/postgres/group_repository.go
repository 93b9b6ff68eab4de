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

// groupRepository implements the domain.GroupRepository interface using GORM.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository is the constructor for groupRepository.
func NewGroupRepository(db *gorm.DB) repository.GroupRepository {
	return &groupRepository{db: db}
}

func (repo *groupRepository) Create(ctx context.Context, group *entity.AssociatedGroup) error {
	m := fromGroupDomain(group)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create group")
	}

	group.ID = m.ID
	group.CreatedAt = m.CreatedAt
	group.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AssociatedGroup, error) {
	var m model.AssociatedGroupModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGroupNotFound
		}

		return nil, errors.Wrap(err, "failed to find group by id")
	}

	return toGroupDomain(&m), nil
}

func (repo *groupRepository) FindAll(ctx context.Context) ([]*entity.AssociatedGroup, error) {
	var ms []model.AssociatedGroupModel
	err := repo.db.WithContext(ctx).Order("name ASC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list groups")
	}

	groups := make([]*entity.AssociatedGroup, 0, len(ms))
	for i := range ms {
		groups = append(groups, toGroupDomain(&ms[i]))
	}

	return groups, nil
}

func (repo *groupRepository) Update(ctx context.Context, group *entity.AssociatedGroup) error {
	m := fromGroupDomain(group)

	result := repo.db.WithContext(ctx).
		Model(&model.AssociatedGroupModel{}).
		Where("id = ?", group.ID).
		Updates(map[string]any{
			"name":        m.Name,
			"description": m.Description,
			"schedule":    m.Schedule,
			"contact":     m.Contact,
			"website":     m.Website,
			"image":       m.Image,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

func (repo *groupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AssociatedGroupModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete group")
	}
	if result.RowsAffected == 0 {
		return repository.ErrGroupNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toGroupDomain(data *model.AssociatedGroupModel) *entity.AssociatedGroup {
	if data == nil {
		return nil
	}

	return &entity.AssociatedGroup{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Schedule:    data.Schedule,
		Contact:     data.Contact,
		Website:     data.Website,
		Image:       data.Image,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromGroupDomain(data *entity.AssociatedGroup) *model.AssociatedGroupModel {
	if data == nil {
		return nil
	}

	return &model.AssociatedGroupModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Schedule:    data.Schedule,
		Contact:     data.Contact,
		Website:     data.Website,
		Image:       data.Image,
	}
}
