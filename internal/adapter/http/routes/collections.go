package routes

import (
	"alteapay/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathNegotiations = "/negotiations"
	PathPayments     = "/payments"
)

func addCollectionRoutes(rg *gin.RouterGroup, negotiationHandler *handlers.NegotiationHandler, syncHandler *handlers.SyncHandler) {
	negotiations := rg.Group(PathNegotiations)
	{
		negotiations.POST("/bulk", negotiationHandler.SendBulkNegotiations)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/sync", syncHandler.SyncPayments)
		payments.GET("/sync", syncHandler.SyncHealth)
	}
}
