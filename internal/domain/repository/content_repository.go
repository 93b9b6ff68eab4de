package repository

import (
	"context"
	"errors"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// Not-found sentinels for the content resources. Repositories return these so
// the usecase layer can map them to resource-specific 404 messages.
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrMemberNotFound   = errors.New("committee member not found")
	ErrGroupNotFound    = errors.New("associated group not found")
	ErrArticleNotFound  = errors.New("news article not found")
	ErrDocumentNotFound = errors.New("governance document not found")
)

// EventRepository defines persistence for one-off events.
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// FindAll lists events in ascending date order.
	FindAll(ctx context.Context) ([]*entity.Event, error)
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityRepository defines persistence for weekly activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	// FindAll lists every activity, hidden ones included, sorted by weekday
	// rank then order.
	FindAll(ctx context.Context) ([]*entity.Activity, error)
	// FindVisible lists only visible activities in the same sort order.
	FindVisible(ctx context.Context) ([]*entity.Activity, error)
	Update(ctx context.Context, activity *entity.Activity) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommitteeRepository defines persistence for the committee roster.
type CommitteeRepository interface {
	Create(ctx context.Context, member *entity.CommitteeMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CommitteeMember, error)
	// FindAll lists members by ascending order field.
	FindAll(ctx context.Context) ([]*entity.CommitteeMember, error)
	Update(ctx context.Context, member *entity.CommitteeMember) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// GroupRepository defines persistence for associated groups.
type GroupRepository interface {
	Create(ctx context.Context, group *entity.AssociatedGroup) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AssociatedGroup, error)
	FindAll(ctx context.Context) ([]*entity.AssociatedGroup, error)
	Update(ctx context.Context, group *entity.AssociatedGroup) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// NewsRepository defines persistence for news articles.
type NewsRepository interface {
	Create(ctx context.Context, article *entity.NewsArticle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error)
	// FindAll lists every article, newest date first.
	FindAll(ctx context.Context) ([]*entity.NewsArticle, error)
	// FindPublished lists only published articles, newest date first.
	FindPublished(ctx context.Context) ([]*entity.NewsArticle, error)
	Update(ctx context.Context, article *entity.NewsArticle) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingsRepository defines persistence for the singleton site settings record.
type SettingsRepository interface {
	// Find returns the settings record, or (nil, nil) when none has been saved yet.
	Find(ctx context.Context) (*entity.SiteSettings, error)

	// Save upserts the settings record.
	Save(ctx context.Context, settings *entity.SiteSettings) error
}

// DocumentRepository defines persistence for governance documents.
type DocumentRepository interface {
	Create(ctx context.Context, document *entity.GovernanceDocument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.GovernanceDocument, error)
	// FindAll lists documents by ascending order field.
	FindAll(ctx context.Context) ([]*entity.GovernanceDocument, error)
	// MaxOrder returns the highest order value, or -1 when the table is empty.
	MaxOrder(ctx context.Context) (int, error)
	Update(ctx context.Context, document *entity.GovernanceDocument) error
	// UpdateOrder rewrites the order field of a single document.
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
