package router

import (
	"net/http"
	"testing"

	"hallcms/internal/delivery/http/middleware"
	"hallcms/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func registerTestRoutes(t *testing.T) *echo.Echo {
	t.Helper()

	r := NewRouter(RouterParams{
		AuthHandler:    handler.NewAuthHandler(nil, nil),
		BookingHandler: handler.NewBookingHandler(nil, nil),
		ContentHandler: handler.NewContentHandler(nil, nil),
		SiteHandler:    handler.NewSiteHandler(nil, nil),
		UploadHandler:  handler.NewUploadHandler(nil, nil),
		AuthMiddleware: middleware.NewAuthMiddleware(nil, nil),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func registeredMethods(e *echo.Echo, path string) []string {
	var methods []string
	for _, route := range e.Routes() {
		if route.Path == path {
			methods = append(methods, route.Method)
		}
	}

	return methods
}

// Status updates ride PUT so clients built against the admin panel work.
func TestRegisterRoutes_BookingStatusUsesPut(t *testing.T) {
	e := registerTestRoutes(t)

	methods := registeredMethods(e, "/api/bookings/:id/status")
	assert.Contains(t, methods, http.MethodPut)
	assert.NotContains(t, methods, http.MethodPatch)
}

func TestRegisterRoutes_DocumentReorderUsesPut(t *testing.T) {
	e := registerTestRoutes(t)

	methods := registeredMethods(e, "/api/documents/reorder")
	assert.Contains(t, methods, http.MethodPut)
}

func TestRegisterRoutes_HealthEndpoints(t *testing.T) {
	e := registerTestRoutes(t)

	assert.Contains(t, registeredMethods(e, "/health"), http.MethodGet)
	assert.Contains(t, registeredMethods(e, "/api/health"), http.MethodGet)
}
