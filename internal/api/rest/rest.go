package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Wallet endpoints
		v1.GET("/wallets/:payment_id", handler.GetWallet)
		v1.PUT("/wallets/:payment_id/contributions", handler.SettleContribution)

		// Address endpoints
		v1.GET("/addresses/:address/balance", handler.GetAddressBalance)
		v1.PUT("/addresses/:address/pledges", handler.RecordPledge)
		v1.PATCH("/addresses/:address/pledges/:transaction_id", handler.UpdatePledge)
	}
}
