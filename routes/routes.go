// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"linklet-server/commons"
	"linklet-server/handlers"
	"linklet-server/middlewares"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	commons.Logger.Debug("Registering v1 routes")
	api_v1 := e.Group("/v1")
	api_v1.POST("/auth/signup", handlers.SignupHandler)
	api_v1.POST("/auth/login", handlers.LoginHandler)
	api_v1.POST("/auth/logout", handlers.LogoutHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/users/", handlers.GetUserHandler, middlewares.VerifySessionMiddleware)
	api_v1.DELETE("/users/", handlers.DeleteAccountHandler, middlewares.VerifySessionMiddleware)
	api_v1.PUT("/users/password", handlers.ChangePasswordHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/users/count", handlers.UserCountHandler)
	api_v1.GET("/collections", handlers.GetCollectionsHandler, middlewares.VerifySessionMiddleware)
	api_v1.POST("/collections", handlers.CreateCollectionHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/collections/:collection_id", handlers.GetCollectionHandler, middlewares.VerifySessionMiddleware)
	api_v1.PUT("/collections/:collection_id", handlers.UpdateCollectionHandler, middlewares.VerifySessionMiddleware)
	api_v1.DELETE("/collections/:collection_id", handlers.DeleteCollectionHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/collections/:collection_id/links", handlers.GetLinksHandler, middlewares.VerifySessionMiddleware)
	api_v1.POST("/collections/:collection_id/links", handlers.CreateLinkHandler, middlewares.VerifySessionMiddleware)
	api_v1.PUT("/collections/:collection_id/links/:link_id", handlers.UpdateLinkHandler, middlewares.VerifySessionMiddleware)
	api_v1.DELETE("/collections/:collection_id/links/:link_id", handlers.DeleteLinkHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/c/:collection_id", handlers.PublicCollectionHandler)
	api_v1.GET("/explore", handlers.ExploreHandler)
	api_v1.GET("/landing/collections", handlers.LandingHandler)
	api_v1.GET("/templates", handlers.GetTemplatesHandler)
	api_v1.GET("/plans", handlers.GetPlansHandler)
	api_v1.GET("/subscriptions", handlers.GetSubscriptionHandler, middlewares.VerifySessionMiddleware)
	api_v1.POST("/subscriptions", handlers.CreateSubscriptionHandler, middlewares.VerifySessionMiddleware)
	api_v1.DELETE("/subscriptions/:subscription_id", handlers.CancelSubscriptionHandler, middlewares.VerifySessionMiddleware)
	api_v1.GET("/event-logs", handlers.GetEventLogsHandler, middlewares.VerifySessionMiddleware)
	commons.Logger.Info("v1 routes registered successfully")
}
