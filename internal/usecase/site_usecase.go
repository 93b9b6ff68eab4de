package usecase

import (
	"context"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingsInput carries the writable fields of the site settings record.
// Nil fields were omitted from the request and keep their stored value, so
// clients can update a single section without resending the rest.
type SettingsInput struct {
	HeroImage         *string
	WelcomeImage      *string
	HeroTitle         *string
	HeroSubtitle      *string
	WelcomeIntro      *string
	WelcomeBody       *string
	HallImages        []string
	AGMTitle          *string
	AGMDate           *string
	AGMTime           *string
	AGMDescription    *string
	AGMDocumentURL    *string
	MembershipFormURL *string
}

// DocumentInput carries the writable fields of a governance document.
type DocumentInput struct {
	Title    string
	FileURL  string
	FileType string
	FileSize int64
}

// SiteUsecase covers the singleton site settings and the governance-document
// library.
type SiteUsecase interface {
	// GetSettings returns the saved settings, or built-in defaults before any
	// admin has saved a record.
	GetSettings(ctx context.Context) (*entity.SiteSettings, error)

	// UpdateSettings merges the provided fields into the singleton settings
	// record, creating it on first write.
	UpdateSettings(ctx context.Context, input SettingsInput) (*entity.SiteSettings, error)

	ListDocuments(ctx context.Context) ([]*entity.GovernanceDocument, error)

	// CreateDocument appends a document at the end of the ordering.
	CreateDocument(ctx context.Context, input DocumentInput) (*entity.GovernanceDocument, error)

	UpdateDocument(ctx context.Context, id uuid.UUID, input DocumentInput) (*entity.GovernanceDocument, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error

	// ReorderDocuments rewrites the ordering to match the given ID sequence.
	ReorderDocuments(ctx context.Context, ids []uuid.UUID) error
}
