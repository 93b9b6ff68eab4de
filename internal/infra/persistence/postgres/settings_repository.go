package postgres

import (
	"context"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// settingsRepository implements the domain.SettingsRepository interface using GORM.
// The table holds a single pinned row; Save upserts against it.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository is the constructor for settingsRepository.
func NewSettingsRepository(db *gorm.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

// Find returns the settings row, or (nil, nil) when none has been saved yet.
func (repo *settingsRepository) Find(ctx context.Context) (*entity.SiteSettings, error) {
	var m model.SiteSettingsModel
	err := repo.db.WithContext(ctx).Where("id = ?", model.SiteSettingsRowID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load site settings")
	}

	return toSettingsDomain(&m), nil
}

// Save upserts the settings row.
func (repo *settingsRepository) Save(ctx context.Context, settings *entity.SiteSettings) error {
	m := fromSettingsDomain(settings)
	m.ID = model.SiteSettingsRowID

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(m).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save site settings")
	}

	settings.UpdatedAt = m.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSettingsDomain(data *model.SiteSettingsModel) *entity.SiteSettings {
	if data == nil {
		return nil
	}

	return &entity.SiteSettings{
		HeroImage:         data.HeroImage,
		WelcomeImage:      data.WelcomeImage,
		HeroTitle:         data.HeroTitle,
		HeroSubtitle:      data.HeroSubtitle,
		WelcomeIntro:      data.WelcomeIntro,
		WelcomeBody:       data.WelcomeBody,
		HallImages:        data.HallImages,
		AGMTitle:          data.AGMTitle,
		AGMDate:           data.AGMDate,
		AGMTime:           data.AGMTime,
		AGMDescription:    data.AGMDescription,
		AGMDocumentURL:    data.AGMDocumentURL,
		MembershipFormURL: data.MembershipFormURL,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromSettingsDomain(data *entity.SiteSettings) *model.SiteSettingsModel {
	if data == nil {
		return nil
	}

	return &model.SiteSettingsModel{
		HeroImage:         data.HeroImage,
		WelcomeImage:      data.WelcomeImage,
		HeroTitle:         data.HeroTitle,
		HeroSubtitle:      data.HeroSubtitle,
		WelcomeIntro:      data.WelcomeIntro,
		WelcomeBody:       data.WelcomeBody,
		HallImages:        data.HallImages,
		AGMTitle:          data.AGMTitle,
		AGMDate:           data.AGMDate,
		AGMTime:           data.AGMTime,
		AGMDescription:    data.AGMDescription,
		AGMDocumentURL:    data.AGMDocumentURL,
		MembershipFormURL: data.MembershipFormURL,
	}
}
