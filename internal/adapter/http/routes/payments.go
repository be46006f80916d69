package routes

import (
	"net/http"

	"vantivpay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathOrders   = "/orders"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/authorize", paymentHandler.Authorize)
		payments.POST("/purchase", paymentHandler.Purchase)
		payments.POST("/capture", paymentHandler.Capture)
		payments.POST("/refund", paymentHandler.Refund)
		payments.POST("/void", paymentHandler.Void)
		payments.POST("/store", paymentHandler.Store)
		payments.POST("/verify", paymentHandler.Verify)
		payments.GET("/:id", paymentHandler.GetByID)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id/payments", paymentHandler.ListByOrderID)
	}
}
