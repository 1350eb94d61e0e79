package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/openmarket/ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Read endpoints (public)
		v1.GET("/tokens", handler.ListTokens)
		v1.GET("/tokens/:id", handler.GetToken)
		v1.GET("/tokens/:id/listing", handler.GetListing)
		v1.GET("/tokens/:id/history", handler.GetHistory)
		v1.GET("/marketplace/listings", handler.GetMarketplaceListings)
		v1.GET("/marketplace/fee", handler.GetListingFee)
		v1.GET("/approvals", handler.GetApprovals)

		// Write endpoints (require authentication)
		auth := v1.Group("", middleware.Auth(authCfg))
		{
			auth.POST("/tokens", handler.Mint)
			auth.POST("/tokens/:id/transfer", handler.Transfer)
			auth.POST("/tokens/:id/listing", handler.List)
			auth.PATCH("/tokens/:id/listing", handler.UpdatePrice)
			auth.DELETE("/tokens/:id/listing", handler.Delist)
			auth.POST("/tokens/:id/buy", handler.Buy)
			auth.POST("/tokens/:id/approve", handler.ApproveToken)
			auth.POST("/approvals", handler.ApproveAll)
		}
	}
}
