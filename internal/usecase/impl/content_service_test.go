package impl

import (
	"context"
	"testing"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type contentServiceFixtures struct {
	service       usecase.ContentUsecase
	eventRepo     *mockEventRepository
	activityRepo  *mockActivityRepository
	committeeRepo *mockCommitteeRepository
	groupRepo     *mockGroupRepository
	newsRepo      *mockNewsRepository
}

func createTestContentService(t *testing.T) contentServiceFixtures {
	t.Helper()

	eventRepo := &mockEventRepository{}
	activityRepo := &mockActivityRepository{}
	committeeRepo := &mockCommitteeRepository{}
	groupRepo := &mockGroupRepository{}
	newsRepo := &mockNewsRepository{}

	service := NewContentService(ContentServiceParams{
		EventRepo:     eventRepo,
		ActivityRepo:  activityRepo,
		CommitteeRepo: committeeRepo,
		GroupRepo:     groupRepo,
		NewsRepo:      newsRepo,
		Logger:        newDiscardLogger(),
	})

	return contentServiceFixtures{
		service:       service,
		eventRepo:     eventRepo,
		activityRepo:  activityRepo,
		committeeRepo: committeeRepo,
		groupRepo:     groupRepo,
		newsRepo:      newsRepo,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestContentService_GetEvent_NotFound(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.eventRepo.On("FindByID", ctx, id).Return(nil, repository.ErrEventNotFound)

	event, err := fx.service.GetEvent(ctx, id)

	assert.Nil(t, event)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Event not found", appErr.Message())
}

// The public listing only ever sees visible activities; the admin listing
// sees everything.
func TestContentService_ListActivities_VisibilitySplit(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	visible := []*entity.Activity{{ID: uuid.New(), Name: "Yoga", IsVisible: true}}
	all := append(visible, &entity.Activity{ID: uuid.New(), Name: "Choir", IsVisible: false})

	fx.activityRepo.On("FindVisible", ctx).Return(visible, nil)
	fx.activityRepo.On("FindAll", ctx).Return(all, nil)

	publicList, err := fx.service.ListActivities(ctx, false)
	require.NoError(t, err)
	assert.Len(t, publicList, 1)

	adminList, err := fx.service.ListActivities(ctx, true)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)
}

// Omitting the visibility flag means visible; sending false means hidden.
func TestContentService_CreateActivity_VisibilityDefault(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	fx.activityRepo.On("Create", ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)

	created, err := fx.service.CreateActivity(ctx, usecase.ActivityInput{Day: "Monday", Name: "Yoga"})
	require.NoError(t, err)
	assert.True(t, created.IsVisible)

	created, err = fx.service.CreateActivity(ctx, usecase.ActivityInput{Day: "Monday", Name: "Choir", Visible: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, created.IsVisible)
}

// Toggling flips whatever is stored, so a visible activity goes hidden.
func TestContentService_ToggleActivityVisibility(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	id := uuid.New()
	stored := &entity.Activity{ID: id, Name: "Yoga", IsVisible: true}

	fx.activityRepo.On("FindByID", ctx, id).Return(stored, nil)
	fx.activityRepo.On("Update", ctx, mock.MatchedBy(func(a *entity.Activity) bool {
		return a.ID == id && !a.IsVisible
	})).Return(nil)

	activity, err := fx.service.ToggleActivityVisibility(ctx, id)

	require.NoError(t, err)
	assert.False(t, activity.IsVisible)
}

func TestContentService_ToggleActivityVisibility_NotFound(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.activityRepo.On("FindByID", ctx, id).Return(nil, repository.ErrActivityNotFound)

	activity, err := fx.service.ToggleActivityVisibility(ctx, id)

	assert.Nil(t, activity)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Activity not found", appErr.Message())
	fx.activityRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// Draft articles only show up when drafts are requested.
func TestContentService_ListArticles_PublishedSplit(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	published := []*entity.NewsArticle{{ID: uuid.New(), Title: "Fete", Published: true}}
	all := append(published, &entity.NewsArticle{ID: uuid.New(), Title: "Draft", Published: false})

	fx.newsRepo.On("FindPublished", ctx).Return(published, nil)
	fx.newsRepo.On("FindAll", ctx).Return(all, nil)

	publicList, err := fx.service.ListArticles(ctx, false)
	require.NoError(t, err)
	assert.Len(t, publicList, 1)

	adminList, err := fx.service.ListArticles(ctx, true)
	require.NoError(t, err)
	assert.Len(t, adminList, 2)
}

func TestContentService_CreateArticle_PublishedDefault(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	fx.newsRepo.On("Create", ctx, mock.AnythingOfType("*entity.NewsArticle")).Return(nil)

	article, err := fx.service.CreateArticle(ctx, usecase.ArticleInput{Title: "Fete", Date: "2026-09-12"})

	require.NoError(t, err)
	assert.True(t, article.Published)
}

func TestContentService_DeleteGroup_NotFound(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.groupRepo.On("Delete", ctx, id).Return(repository.ErrGroupNotFound)

	err := fx.service.DeleteGroup(ctx, id)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Group not found", appErr.Message())
}

func TestContentService_UpdateMember_Reloads(t *testing.T) {
	fx := createTestContentService(t)

	ctx := context.Background()
	id := uuid.New()
	reloaded := &entity.CommitteeMember{ID: id, Name: "Pat", Position: "Chair"}

	fx.committeeRepo.On("Update", ctx, mock.AnythingOfType("*entity.CommitteeMember")).Return(nil)
	fx.committeeRepo.On("FindByID", ctx, id).Return(reloaded, nil)

	member, err := fx.service.UpdateMember(ctx, id, usecase.MemberInput{Name: "Pat", Position: "Chair"})

	require.NoError(t, err)
	assert.Equal(t, reloaded, member)
}
