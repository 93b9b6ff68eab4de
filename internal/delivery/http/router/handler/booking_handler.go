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

// BookingHandler holds dependencies for booking-enquiry handlers.
type BookingHandler struct {
	uc     usecase.BookingUsecase
	logger *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler, injected by Fx.
func NewBookingHandler(uc usecase.BookingUsecase, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{uc: uc, logger: logger}
}

type bookingRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	EventType string `json:"event_type" validate:"required"`
	Date      string `json:"date" validate:"required"`
	Guests    int    `json:"guests" validate:"gte=0"`
	Message   string `json:"message"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type bookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	EventType string    `json:"event_type"`
	Date      string    `json:"date"`
	Guests    int       `json:"guests"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBookingResponse(b *entity.BookingEnquiry) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		EventType: b.EventType,
		Date:      b.Date,
		Guests:    b.Guests,
		Message:   b.Message,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBookingResponses(bs []*entity.BookingEnquiry) []bookingResponse {
	out := make([]bookingResponse, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingResponse(b))
	}

	return out
}

// Submit handles a public booking enquiry. A payload that fails to parse or
// validate is a 422, not a 400.
func (h *BookingHandler) Submit(c echo.Context) error {
	var input bookingRequest
	if err := c.Bind(&input); err != nil {
		return response.UnprocessableEntity(c, "INVALID_INPUT", "Invalid booking input")
	}
	if err := c.Validate(&input); err != nil {
		return response.UnprocessableEntity(c, "INVALID_INPUT", "Invalid booking input")
	}

	booking, err := h.uc.Submit(c.Request().Context(), usecase.SubmitBookingInput{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EventType: input.EventType,
		Date:      input.Date,
		Guests:    input.Guests,
		Message:   input.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookingResponse(booking), "Booking enquiry submitted")
}

// List returns every enquiry, newest first.
func (h *BookingHandler) List(c echo.Context) error {
	bookings, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingResponses(bookings), "")
}

// Get returns a single enquiry.
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrBookingNotFound
	}

	booking, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking), "")
}

// UpdateStatus moves an enquiry between pending, approved and rejected.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrBookingNotFound
	}

	var input statusRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	booking, err := h.uc.UpdateStatus(c.Request().Context(), id, input.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookingResponse(booking), "Booking status updated")
}
