package impl

import (
	"context"
	"log/slog"

	deliverycontext "hallcms/internal/delivery/context"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	eventRepo     repository.EventRepository
	activityRepo  repository.ActivityRepository
	committeeRepo repository.CommitteeRepository
	groupRepo     repository.GroupRepository
	newsRepo      repository.NewsRepository
	logger        *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	EventRepo     repository.EventRepository
	ActivityRepo  repository.ActivityRepository
	CommitteeRepo repository.CommitteeRepository
	GroupRepo     repository.GroupRepository
	NewsRepo      repository.NewsRepository
	Logger        *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		eventRepo:     params.EventRepo,
		activityRepo:  params.ActivityRepo,
		committeeRepo: params.CommitteeRepo,
		groupRepo:     params.GroupRepo,
		newsRepo:      params.NewsRepo,
		logger:        params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Events ---

func (srv *contentService) ListEvents(ctx context.Context) ([]*entity.Event, error) {
	return srv.eventRepo.FindAll(ctx)
}

func (srv *contentService) GetEvent(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.NotFound("Event not found")
		}

		return nil, errors.Wrap(err, "failed to load event")
	}

	return event, nil
}

func (srv *contentService) CreateEvent(ctx context.Context, input usecase.EventInput) (*entity.Event, error) {
	event := &entity.Event{
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Image,
		Website:     input.Website,
	}
	if err := srv.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID))

	return event, nil
}

func (srv *contentService) UpdateEvent(ctx context.Context, id uuid.UUID, input usecase.EventInput) (*entity.Event, error) {
	event := &entity.Event{
		ID:          id,
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Description: input.Description,
		Category:    input.Category,
		Image:       input.Image,
		Website:     input.Website,
	}
	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.NotFound("Event not found")
		}

		return nil, err
	}

	return srv.GetEvent(ctx, id)
}

func (srv *contentService) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.NotFound("Event not found")
		}

		return err
	}

	return nil
}

// --- Activities ---

func (srv *contentService) ListActivities(ctx context.Context, includeHidden bool) ([]*entity.Activity, error) {
	if includeHidden {
		return srv.activityRepo.FindAll(ctx)
	}

	return srv.activityRepo.FindVisible(ctx)
}

func (srv *contentService) CreateActivity(ctx context.Context, input usecase.ActivityInput) (*entity.Activity, error) {
	activity := &entity.Activity{
		Day:         input.Day,
		Name:        input.Name,
		Time:        input.Time,
		Description: input.Description,
		Contact:     input.Contact,
		Order:       input.Order,
		IsVisible:   visibleOrDefault(input.Visible),
	}
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Activity created", slog.Any("activityID", activity.ID))

	return activity, nil
}

func (srv *contentService) UpdateActivity(ctx context.Context, id uuid.UUID, input usecase.ActivityInput) (*entity.Activity, error) {
	activity := &entity.Activity{
		ID:          id,
		Day:         input.Day,
		Name:        input.Name,
		Time:        input.Time,
		Description: input.Description,
		Contact:     input.Contact,
		Order:       input.Order,
		IsVisible:   visibleOrDefault(input.Visible),
	}
	if err := srv.activityRepo.Update(ctx, activity); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.NotFound("Activity not found")
		}

		return nil, err
	}

	return srv.findActivity(ctx, id)
}

// ToggleActivityVisibility flips a single activity on or off the public page
// without touching its other fields.
func (srv *contentService) ToggleActivityVisibility(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.findActivity(ctx, id)
	if err != nil {
		return nil, err
	}

	activity.IsVisible = !activity.IsVisible
	if err := srv.activityRepo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return srv.findActivity(ctx, id)
}

func (srv *contentService) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if err := srv.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return domainerrors.NotFound("Activity not found")
		}

		return err
	}

	return nil
}

func (srv *contentService) findActivity(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	activity, err := srv.activityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, domainerrors.NotFound("Activity not found")
		}

		return nil, errors.Wrap(err, "failed to load activity")
	}

	return activity, nil
}

// --- Committee members ---

func (srv *contentService) ListMembers(ctx context.Context) ([]*entity.CommitteeMember, error) {
	return srv.committeeRepo.FindAll(ctx)
}

func (srv *contentService) CreateMember(ctx context.Context, input usecase.MemberInput) (*entity.CommitteeMember, error) {
	member := &entity.CommitteeMember{
		Name:     input.Name,
		Position: input.Position,
		Bio:      input.Bio,
		Image:    input.Image,
		Order:    input.Order,
	}
	if err := srv.committeeRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

func (srv *contentService) UpdateMember(ctx context.Context, id uuid.UUID, input usecase.MemberInput) (*entity.CommitteeMember, error) {
	member := &entity.CommitteeMember{
		ID:       id,
		Name:     input.Name,
		Position: input.Position,
		Bio:      input.Bio,
		Image:    input.Image,
		Order:    input.Order,
	}
	if err := srv.committeeRepo.Update(ctx, member); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.NotFound("Committee member not found")
		}

		return nil, err
	}

	member, err := srv.committeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload committee member")
	}

	return member, nil
}

func (srv *contentService) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if err := srv.committeeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domainerrors.NotFound("Committee member not found")
		}

		return err
	}

	return nil
}

// --- Associated groups ---

func (srv *contentService) ListGroups(ctx context.Context) ([]*entity.AssociatedGroup, error) {
	return srv.groupRepo.FindAll(ctx)
}

func (srv *contentService) CreateGroup(ctx context.Context, input usecase.GroupInput) (*entity.AssociatedGroup, error) {
	group := &entity.AssociatedGroup{
		Name:        input.Name,
		Description: input.Description,
		Schedule:    input.Schedule,
		Contact:     input.Contact,
		Website:     input.Website,
		Image:       input.Image,
	}
	if err := srv.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

func (srv *contentService) UpdateGroup(ctx context.Context, id uuid.UUID, input usecase.GroupInput) (*entity.AssociatedGroup, error) {
	group := &entity.AssociatedGroup{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Schedule:    input.Schedule,
		Contact:     input.Contact,
		Website:     input.Website,
		Image:       input.Image,
	}
	if err := srv.groupRepo.Update(ctx, group); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return nil, domainerrors.NotFound("Group not found")
		}

		return nil, err
	}

	group, err := srv.groupRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload group")
	}

	return group, nil
}

func (srv *contentService) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	if err := srv.groupRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGroupNotFound) {
			return domainerrors.NotFound("Group not found")
		}

		return err
	}

	return nil
}

// --- News ---

func (srv *contentService) ListArticles(ctx context.Context, includeDrafts bool) ([]*entity.NewsArticle, error) {
	if includeDrafts {
		return srv.newsRepo.FindAll(ctx)
	}

	return srv.newsRepo.FindPublished(ctx)
}

func (srv *contentService) GetArticle(ctx context.Context, id uuid.UUID) (*entity.NewsArticle, error) {
	article, err := srv.newsRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.NotFound("News article not found")
		}

		return nil, errors.Wrap(err, "failed to load news article")
	}

	return article, nil
}

func (srv *contentService) CreateArticle(ctx context.Context, input usecase.ArticleInput) (*entity.NewsArticle, error) {
	article := &entity.NewsArticle{
		Title:     input.Title,
		Summary:   input.Summary,
		Content:   input.Content,
		Image:     input.Image,
		Date:      input.Date,
		Published: visibleOrDefault(input.Published),
	}
	if err := srv.newsRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("News article created", slog.Any("articleID", article.ID))

	return article, nil
}

func (srv *contentService) UpdateArticle(ctx context.Context, id uuid.UUID, input usecase.ArticleInput) (*entity.NewsArticle, error) {
	article := &entity.NewsArticle{
		ID:        id,
		Title:     input.Title,
		Summary:   input.Summary,
		Content:   input.Content,
		Image:     input.Image,
		Date:      input.Date,
		Published: visibleOrDefault(input.Published),
	}
	if err := srv.newsRepo.Update(ctx, article); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return nil, domainerrors.NotFound("News article not found")
		}

		return nil, err
	}

	return srv.GetArticle(ctx, id)
}

func (srv *contentService) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if err := srv.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return domainerrors.NotFound("News article not found")
		}

		return err
	}

	return nil
}

// visibleOrDefault keeps omitted boolean flags backward compatible: older
// clients that never send the field get true.
func visibleOrDefault(flag *bool) bool {
	if flag == nil {
		return true
	}

	return *flag
}
