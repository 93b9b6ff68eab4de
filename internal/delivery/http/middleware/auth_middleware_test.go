package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) IssueToken(username string, userID uuid.UUID) (string, error) {
	args := m.Called(username, userID)

	return args.String(0), args.Error(1)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockAdminRepository struct {
	mock.Mock
}

func (m *mockAdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminAccount, error) {
	args := m.Called(ctx, id)
	if account := args.Get(0); account != nil {
		return account.(*entity.AdminAccount), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	args := m.Called(ctx, username)
	if account := args.Get(0); account != nil {
		return account.(*entity.AdminAccount), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminAccount, error) {
	args := m.Called(ctx, email)
	if account := args.Get(0); account != nil {
		return account.(*entity.AdminAccount), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAdminRepository) Create(ctx context.Context, account *entity.AdminAccount) error {
	return m.Called(ctx, account).Error(0)
}

func (m *mockAdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func runAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := m.Authenticate(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&mockTokenService{}, &mockAdminRepository{})

	_, err := runAuthenticate(t, m, "")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(&mockTokenService{}, &mockAdminRepository{})

	for _, header := range []string{"Basic abc123", "Bearer ", "just-a-token"} {
		_, err := runAuthenticate(t, m, header)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated), "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := &mockTokenService{}
	tokenSvc.On("ValidateToken", "bad.token").Return(nil, service.ErrTokenInvalid)
	m := NewAuthMiddleware(tokenSvc, &mockAdminRepository{})

	_, err := runAuthenticate(t, m, "Bearer bad.token")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	tokenSvc := &mockTokenService{}
	tokenSvc.On("ValidateToken", "expired.token").Return(nil, service.ErrTokenExpired)
	m := NewAuthMiddleware(tokenSvc, &mockAdminRepository{})

	_, err := runAuthenticate(t, m, "Bearer expired.token")

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

// A valid token whose account has since been deleted reports 404, not 401.
func TestAuthMiddleware_DeletedAccount(t *testing.T) {
	userID := uuid.New()
	tokenSvc := &mockTokenService{}
	tokenSvc.On("ValidateToken", "orphan.token").Return(&service.Claims{UserID: userID}, nil)
	adminRepo := &mockAdminRepository{}
	adminRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrAdminNotFound)

	m := NewAuthMiddleware(tokenSvc, adminRepo)

	_, err := runAuthenticate(t, m, "Bearer orphan.token")

	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}

func TestAuthMiddleware_Success(t *testing.T) {
	userID := uuid.New()
	account := &entity.AdminAccount{ID: userID, Username: "warden", PasswordHash: "hash", IsActive: true}

	tokenSvc := &mockTokenService{}
	tokenSvc.On("ValidateToken", "good.token").Return(&service.Claims{UserID: userID}, nil)
	adminRepo := &mockAdminRepository{}
	adminRepo.On("FindByID", mock.Anything, userID).Return(account, nil)

	m := NewAuthMiddleware(tokenSvc, adminRepo)

	c, err := runAuthenticate(t, m, "Bearer good.token")

	require.NoError(t, err)
	resolved, ok := AccountFromContext(c)
	require.True(t, ok)
	assert.Equal(t, "warden", resolved.Username)
	assert.Empty(t, resolved.PasswordHash, "password hash must not be carried past the middleware")
}
