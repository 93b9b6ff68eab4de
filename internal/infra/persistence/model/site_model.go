package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteSettingsRowID pins the 'site_settings' table to a single row; every save
// upserts against this key.
const SiteSettingsRowID = 1

// SiteSettingsModel mirrors the singleton 'site_settings' table. HallImages is
// stored as a JSONB array via GORM's json serializer.
type SiteSettingsModel struct {
	ID                int      `gorm:"primary_key"`
	HeroImage         string   `gorm:"type:text"`
	WelcomeImage      string   `gorm:"type:text"`
	HeroTitle         string   `gorm:"type:varchar(255)"`
	HeroSubtitle      string   `gorm:"type:varchar(255)"`
	WelcomeIntro      string   `gorm:"type:text"`
	WelcomeBody       string   `gorm:"type:text"`
	HallImages        []string `gorm:"serializer:json;type:jsonb"`
	AGMTitle          string   `gorm:"type:varchar(255)"`
	AGMDate           string   `gorm:"type:varchar(50)"`
	AGMTime           string   `gorm:"type:varchar(50)"`
	AGMDescription    string   `gorm:"type:text"`
	AGMDocumentURL    string   `gorm:"type:text"`
	MembershipFormURL string   `gorm:"type:text"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (SiteSettingsModel) TableName() string {
	return "site_settings"
}

// GovernanceDocumentModel mirrors the 'governance_documents' table.
type GovernanceDocumentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title     string    `gorm:"type:varchar(255);not null"`
	FileURL   string    `gorm:"type:text;not null"`
	FileType  string    `gorm:"type:varchar(10);not null"`
	FileSize  int64     `gorm:"not null;default:0"`
	Order     int       `gorm:"column:sort_order;not null;default:0;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GovernanceDocumentModel) TableName() string {
	return "governance_documents"
}
