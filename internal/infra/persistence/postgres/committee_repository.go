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

// committeeRepository implements the domain.CommitteeRepository interface using GORM.
type committeeRepository struct {
	db *gorm.DB
}

// NewCommitteeRepository is the constructor for committeeRepository.
func NewCommitteeRepository(db *gorm.DB) repository.CommitteeRepository {
	return &committeeRepository{db: db}
}

func (repo *committeeRepository) Create(ctx context.Context, member *entity.CommitteeMember) error {
	m := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create committee member")
	}

	member.ID = m.ID
	member.CreatedAt = m.CreatedAt
	member.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *committeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CommitteeMember, error) {
	var m model.CommitteeMemberModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find committee member by id")
	}

	return toMemberDomain(&m), nil
}

// FindAll lists members by ascending order field.
func (repo *committeeRepository) FindAll(ctx context.Context) ([]*entity.CommitteeMember, error) {
	var ms []model.CommitteeMemberModel
	err := repo.db.WithContext(ctx).Order("sort_order ASC").Find(&ms).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list committee members")
	}

	members := make([]*entity.CommitteeMember, 0, len(ms))
	for i := range ms {
		members = append(members, toMemberDomain(&ms[i]))
	}

	return members, nil
}

func (repo *committeeRepository) Update(ctx context.Context, member *entity.CommitteeMember) error {
	m := fromMemberDomain(member)

	result := repo.db.WithContext(ctx).
		Model(&model.CommitteeMemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"name":       m.Name,
			"position":   m.Position,
			"bio":        m.Bio,
			"image":      m.Image,
			"sort_order": m.Order,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update committee member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *committeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CommitteeMemberModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete committee member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMemberDomain(data *model.CommitteeMemberModel) *entity.CommitteeMember {
	if data == nil {
		return nil
	}

	return &entity.CommitteeMember{
		ID:        data.ID,
		Name:      data.Name,
		Position:  data.Position,
		Bio:       data.Bio,
		Image:     data.Image,
		Order:     data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMemberDomain(data *entity.CommitteeMember) *model.CommitteeMemberModel {
	if data == nil {
		return nil
	}

	return &model.CommitteeMemberModel{
		ID:       data.ID,
		Name:     data.Name,
		Position: data.Position,
		Bio:      data.Bio,
		Image:    data.Image,
		Order:    data.Order,
	}
}
