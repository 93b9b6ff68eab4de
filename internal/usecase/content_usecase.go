package usecase

import (
	"context"

	"hallcms/internal/domain/entity"

	"github.com/google/uuid"
)

// EventInput carries the writable fields of an event.
type EventInput struct {
	Title       string
	Date        string
	Time        string
	Location    string
	Description string
	Category    string
	Image       string
	Website     string
}

// ActivityInput carries the writable fields of a weekly activity. Visible is a
// pointer so an omitted field defaults to true for older clients.
type ActivityInput struct {
	Day         string
	Name        string
	Time        string
	Description string
	Contact     string
	Order       int
	Visible     *bool
}

// MemberInput carries the writable fields of a committee member.
type MemberInput struct {
	Name     string
	Position string
	Bio      string
	Image    string
	Order    int
}

// GroupInput carries the writable fields of an associated group.
type GroupInput struct {
	Name        string
	Description string
	Schedule    string
	Contact     string
	Website     string
	Image       string
}

// ArticleInput carries the writable fields of a news article. Published is a
// pointer so an omitted field defaults to true.
type ArticleInput struct {
	Title     string
	Summary   string
	Content   string
	Image     string
	Date      string
	Published *bool
}

// ContentUsecase groups the CRUD operations for the public-site content
// resources: events, activities, committee members, groups and news.
type ContentUsecase interface {
	ListEvents(ctx context.Context) ([]*entity.Event, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	CreateEvent(ctx context.Context, input EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, input EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error

	// ListActivities returns every activity when includeHidden is set,
	// otherwise only visible ones. Sorted Monday first, then by order.
	ListActivities(ctx context.Context, includeHidden bool) ([]*entity.Activity, error)
	CreateActivity(ctx context.Context, input ActivityInput) (*entity.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input ActivityInput) (*entity.Activity, error)
	ToggleActivityVisibility(ctx context.Context, id uuid.UUID) (*entity.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error

	ListMembers(ctx context.Context) ([]*entity.CommitteeMember, error)
	CreateMember(ctx context.Context, input MemberInput) (*entity.CommitteeMember, error)
	UpdateMember(ctx context.Context, id uuid.UUID, input MemberInput) (*entity.CommitteeMember, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error

	ListGroups(ctx context.Context) ([]*entity.AssociatedGroup, error)
	CreateGroup(ctx context.Context, input GroupInput) (*entity.AssociatedGroup, error)
	UpdateGroup(ctx context.Context, id uuid.UUID, input GroupInput) (*entity.AssociatedGroup, error)
	DeleteGroup(ctx context.Context, id uuid.UUID) error

	// ListArticles returns drafts too when includeDrafts is set. Sorted by
	// date, newest first.
	ListArticles(ctx context.Context, includeDrafts bool) ([]*entity.NewsArticle, error)
	GetArticle(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error)
	CreateArticle(ctx context.Context, input ArticleInput) (*entity.NewsArticle, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, input ArticleInput) (*entity.NewsArticle, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}
