package middleware

import (
	"strings"

	deliverycontext "hallcms/internal/delivery/context"
	"hallcms/internal/domain/entity"
	domainerrors "hallcms/internal/domain/errors"
	"hallcms/internal/domain/repository"
	"hallcms/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware validates bearer tokens and resolves the authenticated admin
// account for downstream handlers.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	adminRepo repository.AdminRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, adminRepo repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, adminRepo: adminRepo}
}

// Authenticate is the core middleware function that validates the bearer token.
// Every failure mode short of "account deleted" reports the same 401 so the
// response never reveals why a token was rejected. A token whose account no
// longer exists reports 404, matching the identity endpoint's contract.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		account, err := m.adminRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrAdminNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return errors.Wrap(err, "failed to resolve authenticated account")
		}

		// Never carry the hash past this point.
		account.PasswordHash = ""
		c.Set(string(deliverycontext.KeyAccount), account)

		return next(c)
	}
}

// AccountFromContext returns the authenticated account stored by Authenticate.
func AccountFromContext(c echo.Context) (*entity.AdminAccount, bool) {
	account, ok := c.Get(string(deliverycontext.KeyAccount)).(*entity.AdminAccount)

	return account, ok
}
