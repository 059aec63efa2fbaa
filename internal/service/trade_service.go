package service

import (
	"fmt"

	"tradedesk/internal/model"
	"tradedesk/internal/query"
	"tradedesk/internal/repository"
)

type TradeService struct {
	repo repository.TradeRepository
}

func NewTradeService(repo repository.TradeRepository) *TradeService {
	return &TradeService{
		repo: repo,
	}
}

// ListTrades runs the query pipeline over a full snapshot of the store.
// Validation errors (query.ErrInvalidPage, query.ErrInvalidSize) are
// returned before any filtering happens.
func (ts *TradeService) ListTrades(p query.Params) ([]model.Trade, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	trades, err := ts.repo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("loading trades: %w", err)
	}
	return query.Run(trades, p)
}

// GetTradeByID returns the trade with the given id, or
// repository.ErrTradeNotFound.
func (ts *TradeService) GetTradeByID(id string) (*model.Trade, error) {
	return ts.repo.GetByID(id)
}
