package repository

import (
	"sync"

	"tradedesk/internal/model"
)

// memoryTradeRepository keeps the whole collection in process memory.
// A map serves point lookup and a slice keeps insertion order for ListAll.
// The mutex covers concurrent reads against feed ingestion.
type memoryTradeRepository struct {
	mu     sync.RWMutex
	trades map[string]model.Trade
	order  []string
}

func NewMemoryTradeRepository() TradeRepository {
	return &memoryTradeRepository{
		trades: make(map[string]model.Trade),
	}
}

func (r *memoryTradeRepository) ListAll() ([]model.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Trade, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.trades[id])
	}
	return out, nil
}

func (r *memoryTradeRepository) GetByID(id string) (*model.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trade, ok := r.trades[id]
	if !ok {
		return nil, ErrTradeNotFound
	}
	return &trade, nil
}

func (r *memoryTradeRepository) Put(trade *model.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trades[trade.TradeID]; exists {
		return ErrDuplicateTradeID
	}
	r.trades[trade.TradeID] = *trade
	r.order = append(r.order, trade.TradeID)
	return nil
}
