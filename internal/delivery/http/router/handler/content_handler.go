package handler

import (
	"log/slog"
	"net/http"

	"hallcms/internal/delivery/http/response"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for the content-resource handlers:
// events, activities, committee members, groups and news.
type ContentHandler struct {
	uc     usecase.ContentUsecase
	logger *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{uc: uc, logger: logger}
}

// --- Events ---

type eventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Website     string `json:"website"`
}

type eventResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Website     string    `json:"website"`
}

func toEventResponse(e *entity.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Description: e.Description,
		Category:    e.Category,
		Image:       e.Image,
		Website:     e.Website,
	}
}

func (r eventRequest) toInput() usecase.EventInput {
	return usecase.EventInput{
		Title:       r.Title,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Description: r.Description,
		Category:    r.Category,
		Image:       r.Image,
		Website:     r.Website,
	}
}

// ListEvents returns events in ascending date order.
func (h *ContentHandler) ListEvents(c echo.Context) error {
	events, err := h.uc.ListEvents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ContentHandler) GetEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Event not found")
	}

	event, err := h.uc.GetEvent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event), "")
}

func (h *ContentHandler) CreateEvent(c echo.Context) error {
	var input eventRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toEventResponse(event), "Event created")
}

func (h *ContentHandler) UpdateEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Event not found")
	}

	var input eventRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toEventResponse(event), "Event updated")
}

func (h *ContentHandler) DeleteEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Event not found")
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Event deleted"}, "Event deleted")
}

// --- Activities ---

type activityRequest struct {
	Day         string `json:"day" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	Order       int    `json:"order"`
	IsVisible   *bool  `json:"is_visible"`
}

type activityResponse struct {
	ID          uuid.UUID `json:"id"`
	Day         string    `json:"day"`
	Name        string    `json:"name"`
	Time        string    `json:"time"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	Order       int       `json:"order"`
	IsVisible   bool      `json:"is_visible"`
}

func toActivityResponse(a *entity.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID,
		Day:         a.Day,
		Name:        a.Name,
		Time:        a.Time,
		Description: a.Description,
		Contact:     a.Contact,
		Order:       a.Order,
		IsVisible:   a.IsVisible,
	}
}

func (r activityRequest) toInput() usecase.ActivityInput {
	return usecase.ActivityInput{
		Day:         r.Day,
		Name:        r.Name,
		Time:        r.Time,
		Description: r.Description,
		Contact:     r.Contact,
		Order:       r.Order,
		Visible:     r.IsVisible,
	}
}

// ListActivities returns the public listing: visible activities only.
func (h *ContentHandler) ListActivities(c echo.Context) error {
	return h.listActivities(c, false)
}

// ListAllActivities returns every activity, hidden ones included.
func (h *ContentHandler) ListAllActivities(c echo.Context) error {
	return h.listActivities(c, true)
}

func (h *ContentHandler) listActivities(c echo.Context, includeHidden bool) error {
	activities, err := h.uc.ListActivities(c.Request().Context(), includeHidden)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ContentHandler) CreateActivity(c echo.Context) error {
	var input activityRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	activity, err := h.uc.CreateActivity(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toActivityResponse(activity), "Activity created")
}

func (h *ContentHandler) UpdateActivity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Activity not found")
	}

	var input activityRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid activity input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	activity, err := h.uc.UpdateActivity(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity), "Activity updated")
}

// ToggleActivityVisibility flips an activity on or off the public page.
func (h *ContentHandler) ToggleActivityVisibility(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Activity not found")
	}

	activity, err := h.uc.ToggleActivityVisibility(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toActivityResponse(activity), "Activity visibility updated")
}

func (h *ContentHandler) DeleteActivity(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Activity not found")
	}

	if err := h.uc.DeleteActivity(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Activity deleted"}, "Activity deleted")
}

// --- Committee members ---

type memberRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Order    int    `json:"order"`
}

type memberResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Bio      string    `json:"bio"`
	Image    string    `json:"image"`
	Order    int       `json:"order"`
}

func toMemberResponse(m *entity.CommitteeMember) memberResponse {
	return memberResponse{
		ID:       m.ID,
		Name:     m.Name,
		Position: m.Position,
		Bio:      m.Bio,
		Image:    m.Image,
		Order:    m.Order,
	}
}

func (h *ContentHandler) ListMembers(c echo.Context) error {
	members, err := h.uc.ListMembers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberResponse(m))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ContentHandler) CreateMember(c echo.Context) error {
	var input memberRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid committee member input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	member, err := h.uc.CreateMember(c.Request().Context(), usecase.MemberInput{
		Name:     input.Name,
		Position: input.Position,
		Bio:      input.Bio,
		Image:    input.Image,
		Order:    input.Order,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMemberResponse(member), "Committee member created")
}

func (h *ContentHandler) UpdateMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Committee member not found")
	}

	var input memberRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid committee member input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	member, err := h.uc.UpdateMember(c.Request().Context(), id, usecase.MemberInput{
		Name:     input.Name,
		Position: input.Position,
		Bio:      input.Bio,
		Image:    input.Image,
		Order:    input.Order,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toMemberResponse(member), "Committee member updated")
}

func (h *ContentHandler) DeleteMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Committee member not found")
	}

	if err := h.uc.DeleteMember(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Committee member deleted"}, "Committee member deleted")
}

// --- Associated groups ---

type groupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Schedule    string `json:"schedule"`
	Contact     string `json:"contact"`
	Website     string `json:"website"`
	Image       string `json:"image"`
}

type groupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Schedule    string    `json:"schedule"`
	Contact     string    `json:"contact"`
	Website     string    `json:"website"`
	Image       string    `json:"image"`
}

func toGroupResponse(g *entity.AssociatedGroup) groupResponse {
	return groupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Schedule:    g.Schedule,
		Contact:     g.Contact,
		Website:     g.Website,
		Image:       g.Image,
	}
}

func (h *ContentHandler) ListGroups(c echo.Context) error {
	groups, err := h.uc.ListGroups(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, toGroupResponse(g))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ContentHandler) CreateGroup(c echo.Context) error {
	var input groupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	group, err := h.uc.CreateGroup(c.Request().Context(), usecase.GroupInput{
		Name:        input.Name,
		Description: input.Description,
		Schedule:    input.Schedule,
		Contact:     input.Contact,
		Website:     input.Website,
		Image:       input.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toGroupResponse(group), "Group created")
}

func (h *ContentHandler) UpdateGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Group not found")
	}

	var input groupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	group, err := h.uc.UpdateGroup(c.Request().Context(), id, usecase.GroupInput{
		Name:        input.Name,
		Description: input.Description,
		Schedule:    input.Schedule,
		Contact:     input.Contact,
		Website:     input.Website,
		Image:       input.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGroupResponse(group), "Group updated")
}

func (h *ContentHandler) DeleteGroup(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Group not found")
	}

	if err := h.uc.DeleteGroup(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Group deleted"}, "Group deleted")
}

// --- News ---

type articleRequest struct {
	Title     string `json:"title" validate:"required"`
	Summary   string `json:"summary"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Date      string `json:"date" validate:"required"`
	Published *bool  `json:"published"`
}

type articleResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	Date      string    `json:"date"`
	Published bool      `json:"published"`
}

func toArticleResponse(a *entity.NewsArticle) articleResponse {
	return articleResponse{
		ID:        a.ID,
		Title:     a.Title,
		Summary:   a.Summary,
		Content:   a.Content,
		Image:     a.Image,
		Date:      a.Date,
		Published: a.Published,
	}
}

func (r articleRequest) toInput() usecase.ArticleInput {
	return usecase.ArticleInput{
		Title:     r.Title,
		Summary:   r.Summary,
		Content:   r.Content,
		Image:     r.Image,
		Date:      r.Date,
		Published: r.Published,
	}
}

// ListArticles returns every article, drafts included.
func (h *ContentHandler) ListArticles(c echo.Context) error {
	return h.listArticles(c, true)
}

// ListPublishedArticles returns only published articles.
func (h *ContentHandler) ListPublishedArticles(c echo.Context) error {
	return h.listArticles(c, false)
}

func (h *ContentHandler) listArticles(c echo.Context, includeDrafts bool) error {
	articles, err := h.uc.ListArticles(c.Request().Context(), includeDrafts)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]articleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, toArticleResponse(a))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *ContentHandler) GetArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("News article not found")
	}

	article, err := h.uc.GetArticle(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArticleResponse(article), "")
}

func (h *ContentHandler) CreateArticle(c echo.Context) error {
	var input articleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news article input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toArticleResponse(article), "News article created")
}

func (h *ContentHandler) UpdateArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("News article not found")
	}

	var input articleRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid news article input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	article, err := h.uc.UpdateArticle(c.Request().Context(), id, input.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toArticleResponse(article), "News article updated")
}

func (h *ContentHandler) DeleteArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("News article not found")
	}

	if err := h.uc.DeleteArticle(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "News article deleted"}, "News article deleted")
}
