package router

import (
	"tradedesk/internal/handler"
	"tradedesk/internal/middleware"
	"tradedesk/internal/ws"

	"github.com/gin-gonic/gin"
)

type Config struct {
	TradeHandler *handler.TradeHandler
	WSHandler    *ws.Handler
	RateLimiter  *middleware.RateLimiter
}

func NewRouter(cfg *Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.RequestID())
	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware())
	}

	api := router.Group("/v1/")
	registerTradeRoutes(api, cfg.TradeHandler)

	if cfg.WSHandler != nil {
		router.GET("/ws/trades", cfg.WSHandler.HandleTrades)
	}

	return router
}
