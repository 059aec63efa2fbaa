package handler

import (
	"errors"
	"net/http"
	"time"

	"tradedesk/internal/query"
	"tradedesk/internal/repository"
	"tradedesk/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type TradeHandler struct {
	tradeService *service.TradeService
	logger       *logrus.Logger
}

func NewTradeHandler(service *service.TradeService, logger *logrus.Logger) *TradeHandler {
	return &TradeHandler{
		tradeService: service,
		logger:       logger,
	}
}

// listTradesQuery binds the /trades query string. Pointer fields keep
// "not supplied" apart from a supplied zero; timestamps are RFC 3339.
type listTradesQuery struct {
	Search     string     `form:"search"`
	AssetClass string     `form:"assetClass"`
	Start      *time.Time `form:"start"`
	End        *time.Time `form:"end"`
	MinPrice   *float64   `form:"minPrice"`
	MaxPrice   *float64   `form:"maxPrice"`
	TradeType  string     `form:"tradeType"`
	Sort       string     `form:"sort"`
	Page       int        `form:"page"`
	Size       int        `form:"size"`
}

// ListTrades handles GET /v1/trades.
func (h *TradeHandler) ListTrades(c *gin.Context) {
	var q listTradesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, "malformed query parameter: "+err.Error())
		return
	}

	params := query.Params{
		Search:     q.Search,
		AssetClass: q.AssetClass,
		Start:      q.Start,
		End:        q.End,
		MinPrice:   q.MinPrice,
		MaxPrice:   q.MaxPrice,
		TradeType:  q.TradeType,
		Sort:       q.Sort,
		Page:       q.Page,
		Size:       q.Size,
	}

	trades, err := h.tradeService.ListTrades(params)
	if err != nil {
		if errors.Is(err, query.ErrInvalidPage) || errors.Is(err, query.ErrInvalidSize) {
			abortWithError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
			return
		}
		h.logger.Errorf("listing trades: %v", err)
		abortWithError(c, http.StatusInternalServerError, CodeInternalError, "failed to list trades")
		return
	}

	c.JSON(http.StatusOK, trades)
}

// GetTradeByID handles GET /v1/trades/:tradeId.
func (h *TradeHandler) GetTradeByID(c *gin.Context) {
	id := c.Param("tradeId")

	trade, err := h.tradeService.GetTradeByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrTradeNotFound) {
			abortWithError(c, http.StatusNotFound, CodeNotFound, "no trade with id "+id)
			return
		}
		h.logger.Errorf("fetching trade %s: %v", id, err)
		abortWithError(c, http.StatusInternalServerError, CodeInternalError, "failed to fetch trade")
		return
	}

	c.JSON(http.StatusOK, trade)
}
