package handler

import (
	"log/slog"
	"net/http"
	"time"

	"hallcms/internal/delivery/http/response"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SiteHandler holds dependencies for site settings and governance documents.
type SiteHandler struct {
	uc     usecase.SiteUsecase
	logger *slog.Logger
}

// NewSiteHandler is the constructor for SiteHandler, injected by Fx.
func NewSiteHandler(uc usecase.SiteUsecase, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{uc: uc, logger: logger}
}

// settingsRequest uses pointers so an omitted field is distinguishable from
// an explicit empty string; omitted fields keep their stored value.
type settingsRequest struct {
	HeroImage         *string  `json:"hero_image"`
	WelcomeImage      *string  `json:"welcome_image"`
	HeroTitle         *string  `json:"hero_title"`
	HeroSubtitle      *string  `json:"hero_subtitle"`
	WelcomeIntro      *string  `json:"welcome_intro"`
	WelcomeBody       *string  `json:"welcome_body"`
	HallImages        []string `json:"hall_images" validate:"omitempty,max=6"`
	AGMTitle          *string  `json:"agm_title"`
	AGMDate           *string  `json:"agm_date"`
	AGMTime           *string  `json:"agm_time"`
	AGMDescription    *string  `json:"agm_description"`
	AGMDocumentURL    *string  `json:"agm_document_url"`
	MembershipFormURL *string  `json:"membership_form_url"`
}

type settingsResponse struct {
	HeroImage         string    `json:"hero_image"`
	WelcomeImage      string    `json:"welcome_image"`
	HeroTitle         string    `json:"hero_title"`
	HeroSubtitle      string    `json:"hero_subtitle"`
	WelcomeIntro      string    `json:"welcome_intro"`
	WelcomeBody       string    `json:"welcome_body"`
	HallImages        []string  `json:"hall_images"`
	AGMTitle          string    `json:"agm_title"`
	AGMDate           string    `json:"agm_date"`
	AGMTime           string    `json:"agm_time"`
	AGMDescription    string    `json:"agm_description"`
	AGMDocumentURL    string    `json:"agm_document_url"`
	MembershipFormURL string    `json:"membership_form_url"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func toSettingsResponse(s *entity.SiteSettings) settingsResponse {
	return settingsResponse{
		HeroImage:         s.HeroImage,
		WelcomeImage:      s.WelcomeImage,
		HeroTitle:         s.HeroTitle,
		HeroSubtitle:      s.HeroSubtitle,
		WelcomeIntro:      s.WelcomeIntro,
		WelcomeBody:       s.WelcomeBody,
		HallImages:        s.HallImages,
		AGMTitle:          s.AGMTitle,
		AGMDate:           s.AGMDate,
		AGMTime:           s.AGMTime,
		AGMDescription:    s.AGMDescription,
		AGMDocumentURL:    s.AGMDocumentURL,
		MembershipFormURL: s.MembershipFormURL,
		UpdatedAt:         s.UpdatedAt,
	}
}

// GetSettings returns the site settings, falling back to built-in defaults.
func (h *SiteHandler) GetSettings(c echo.Context) error {
	settings, err := h.uc.GetSettings(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "")
}

// UpdateSettings merges the posted fields into the singleton settings record.
func (h *SiteHandler) UpdateSettings(c echo.Context) error {
	var input settingsRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	settings, err := h.uc.UpdateSettings(c.Request().Context(), usecase.SettingsInput{
		HeroImage:         input.HeroImage,
		WelcomeImage:      input.WelcomeImage,
		HeroTitle:         input.HeroTitle,
		HeroSubtitle:      input.HeroSubtitle,
		WelcomeIntro:      input.WelcomeIntro,
		WelcomeBody:       input.WelcomeBody,
		HallImages:        input.HallImages,
		AGMTitle:          input.AGMTitle,
		AGMDate:           input.AGMDate,
		AGMTime:           input.AGMTime,
		AGMDescription:    input.AGMDescription,
		AGMDocumentURL:    input.AGMDocumentURL,
		MembershipFormURL: input.MembershipFormURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSettingsResponse(settings), "Settings updated")
}

// --- Governance documents ---

type documentRequest struct {
	Title    string `json:"title" validate:"required"`
	FileURL  string `json:"file_url" validate:"required"`
	FileType string `json:"file_type" validate:"required,oneof=pdf doc docx"`
	FileSize int64  `json:"file_size" validate:"gte=0"`
}

type reorderRequest struct {
	DocumentIDs []uuid.UUID `json:"document_ids" validate:"required,min=1"`
}

type documentResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	FileURL  string    `json:"file_url"`
	FileType string    `json:"file_type"`
	FileSize int64     `json:"file_size"`
	Order    int       `json:"order"`
}

func toDocumentResponse(d *entity.GovernanceDocument) documentResponse {
	return documentResponse{
		ID:       d.ID,
		Title:    d.Title,
		FileURL:  d.FileURL,
		FileType: d.FileType,
		FileSize: d.FileSize,
		Order:    d.Order,
	}
}

func (h *SiteHandler) ListDocuments(c echo.Context) error {
	documents, err := h.uc.ListDocuments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]documentResponse, 0, len(documents))
	for _, d := range documents {
		out = append(out, toDocumentResponse(d))
	}

	return response.Success(c, http.StatusOK, out, "")
}

func (h *SiteHandler) CreateDocument(c echo.Context) error {
	var input documentRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	document, err := h.uc.CreateDocument(c.Request().Context(), usecase.DocumentInput{
		Title:    input.Title,
		FileURL:  input.FileURL,
		FileType: input.FileType,
		FileSize: input.FileSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toDocumentResponse(document), "Document created")
}

func (h *SiteHandler) UpdateDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Document not found")
	}

	var input documentRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid document input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	document, err := h.uc.UpdateDocument(c.Request().Context(), id, usecase.DocumentInput{
		Title:    input.Title,
		FileURL:  input.FileURL,
		FileType: input.FileType,
		FileSize: input.FileSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toDocumentResponse(document), "Document updated")
}

func (h *SiteHandler) DeleteDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.NotFound("Document not found")
	}

	if err := h.uc.DeleteDocument(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Document deleted"}, "Document deleted")
}

// ReorderDocuments rewrites the document ordering to match the posted ID list.
func (h *SiteHandler) ReorderDocuments(c echo.Context) error {
	var input reorderRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.ReorderDocuments(c.Request().Context(), input.DocumentIDs); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Documents reordered"}, "Documents reordered")
}
