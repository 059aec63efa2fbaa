package router

import (
	"tradedesk/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerTradeRoutes(router *gin.RouterGroup, tradeHandler *handler.TradeHandler) {
	trades := router.Group("/trades")
	{
		trades.GET("", tradeHandler.ListTrades)
		trades.GET("/:tradeId", tradeHandler.GetTradeByID)
	}
}
