// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hallcms/internal/delivery/http/middleware"
	"hallcms/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BookingHandler *handler.BookingHandler
	ContentHandler *handler.ContentHandler
	SiteHandler    *handler.SiteHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	bookingHandler *handler.BookingHandler
	contentHandler *handler.ContentHandler
	siteHandler    *handler.SiteHandler
	uploadHandler  *handler.UploadHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		bookingHandler: params.BookingHandler,
		contentHandler: params.ContentHandler,
		siteHandler:    params.SiteHandler,
		uploadHandler:  params.UploadHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads that feed the public site are open; everything with admin intent
// (booking management, content mutation, uploads) requires a bearer token.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoints
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	authn := r.authMiddleware.Authenticate

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, authn)
		authGroup.POST("/change-password", r.authHandler.ChangePassword, authn)
		authGroup.POST("/logout", r.authHandler.Logout, authn)
	}

	// Booking enquiries: public submission, authenticated management
	bookingGroup := api.Group("/bookings")
	{
		bookingGroup.POST("", r.bookingHandler.Submit)
		bookingGroup.GET("", r.bookingHandler.List, authn)
		bookingGroup.GET("/:id", r.bookingHandler.Get, authn)
		bookingGroup.PUT("/:id/status", r.bookingHandler.UpdateStatus, authn)
	}

	// Events
	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", r.contentHandler.ListEvents)
		eventGroup.GET("/:id", r.contentHandler.GetEvent)
		eventGroup.POST("", r.contentHandler.CreateEvent, authn)
		eventGroup.PUT("/:id", r.contentHandler.UpdateEvent, authn)
		eventGroup.DELETE("/:id", r.contentHandler.DeleteEvent, authn)
	}

	// Weekly activities: the bare listing includes hidden rows for the admin
	// panel, /visible feeds the public page.
	activityGroup := api.Group("/activities")
	{
		activityGroup.GET("", r.contentHandler.ListAllActivities, authn)
		activityGroup.GET("/visible", r.contentHandler.ListActivities)
		activityGroup.POST("", r.contentHandler.CreateActivity, authn)
		activityGroup.PUT("/:id", r.contentHandler.UpdateActivity, authn)
		activityGroup.PATCH("/:id/visibility", r.contentHandler.ToggleActivityVisibility, authn)
		activityGroup.DELETE("/:id", r.contentHandler.DeleteActivity, authn)
	}

	// Committee roster
	committeeGroup := api.Group("/committee")
	{
		committeeGroup.GET("", r.contentHandler.ListMembers)
		committeeGroup.POST("", r.contentHandler.CreateMember, authn)
		committeeGroup.PUT("/:id", r.contentHandler.UpdateMember, authn)
		committeeGroup.DELETE("/:id", r.contentHandler.DeleteMember, authn)
	}

	// Associated groups
	groupGroup := api.Group("/groups")
	{
		groupGroup.GET("", r.contentHandler.ListGroups)
		groupGroup.POST("", r.contentHandler.CreateGroup, authn)
		groupGroup.PUT("/:id", r.contentHandler.UpdateGroup, authn)
		groupGroup.DELETE("/:id", r.contentHandler.DeleteGroup, authn)
	}

	// News
	newsGroup := api.Group("/news")
	{
		newsGroup.GET("", r.contentHandler.ListArticles, authn)
		newsGroup.GET("/published", r.contentHandler.ListPublishedArticles)
		newsGroup.GET("/:id", r.contentHandler.GetArticle)
		newsGroup.POST("", r.contentHandler.CreateArticle, authn)
		newsGroup.PUT("/:id", r.contentHandler.UpdateArticle, authn)
		newsGroup.DELETE("/:id", r.contentHandler.DeleteArticle, authn)
	}

	// Site settings
	api.GET("/settings", r.siteHandler.GetSettings)
	api.PUT("/settings", r.siteHandler.UpdateSettings, authn)

	// Governance documents
	documentGroup := api.Group("/documents")
	{
		documentGroup.GET("", r.siteHandler.ListDocuments)
		documentGroup.POST("", r.siteHandler.CreateDocument, authn)
		documentGroup.PUT("/reorder", r.siteHandler.ReorderDocuments, authn)
		documentGroup.PUT("/:id", r.siteHandler.UpdateDocument, authn)
		documentGroup.DELETE("/:id", r.siteHandler.DeleteDocument, authn)
	}

	// Uploads
	uploadGroup := api.Group("/uploads")
	uploadGroup.Use(authn)
	{
		uploadGroup.POST("/image", r.uploadHandler.UploadImage)
		uploadGroup.POST("/document", r.uploadHandler.UploadDocument)
		uploadGroup.DELETE("/:filename", r.uploadHandler.Delete)
	}
}
