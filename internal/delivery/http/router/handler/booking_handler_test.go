package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hallcms/internal/delivery/http/validator"
	"hallcms/internal/domain/entity"
	"hallcms/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockBookingUsecase struct {
	mock.Mock
}

func (m *mockBookingUsecase) Submit(ctx context.Context, input usecase.SubmitBookingInput) (*entity.BookingEnquiry, error) {
	args := m.Called(ctx, input)
	if booking := args.Get(0); booking != nil {
		return booking.(*entity.BookingEnquiry), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookingUsecase) List(ctx context.Context) ([]*entity.BookingEnquiry, error) {
	args := m.Called(ctx)
	if bookings := args.Get(0); bookings != nil {
		return bookings.([]*entity.BookingEnquiry), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookingUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.BookingEnquiry, error) {
	args := m.Called(ctx, id)
	if booking := args.Get(0); booking != nil {
		return booking.(*entity.BookingEnquiry), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockBookingUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.BookingEnquiry, error) {
	args := m.Called(ctx, id, status)
	if booking := args.Get(0); booking != nil {
		return booking.(*entity.BookingEnquiry), args.Error(1)
	}

	return nil, args.Error(1)
}

func newBookingTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBookingHandler_Submit_Success(t *testing.T) {
	uc := &mockBookingUsecase{}
	handler := NewBookingHandler(uc, discardLogger())

	stored := &entity.BookingEnquiry{
		ID:        uuid.New(),
		Name:      "Jo Bloggs",
		Email:     "jo@example.org",
		EventType: "birthday",
		Date:      "2026-10-03",
		Status:    entity.BookingStatusPending,
	}
	uc.On("Submit", mock.Anything, mock.AnythingOfType("usecase.SubmitBookingInput")).Return(stored, nil)

	c, rec := newBookingTestContext(t, `{
		"name": "Jo Bloggs",
		"email": "jo@example.org",
		"event_type": "birthday",
		"date": "2026-10-03",
		"guests": 40
	}`)

	require.NoError(t, handler.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "pending", envelope.Data.Status)
}

// A malformed or invalid booking payload is a 422, unlike the 400 the admin
// endpoints use.
func TestBookingHandler_Submit_InvalidPayloadIs422(t *testing.T) {
	uc := &mockBookingUsecase{}
	handler := NewBookingHandler(uc, discardLogger())

	cases := map[string]string{
		"malformed json": `{"name": `,
		"missing email":  `{"name": "Jo", "event_type": "birthday", "date": "2026-10-03"}`,
		"bad email":      `{"name": "Jo", "email": "not-an-email", "event_type": "birthday", "date": "2026-10-03"}`,
		"negative count": `{"name": "Jo", "email": "jo@example.org", "event_type": "birthday", "date": "2026-10-03", "guests": -1}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, rec := newBookingTestContext(t, body)

			require.NoError(t, handler.Submit(c))
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}

	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestBookingHandler_Get_MalformedID(t *testing.T) {
	uc := &mockBookingUsecase{}
	handler := NewBookingHandler(uc, discardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.Get(c)

	assert.Error(t, err)
	uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
