package repository

import (
	"errors"

	"tradedesk/internal/model"
)

// ErrTradeNotFound is returned by GetByID when no trade has the given id.
var ErrTradeNotFound = errors.New("trade not found")

// ErrDuplicateTradeID is returned by Put when the id is already stored.
var ErrDuplicateTradeID = errors.New("duplicate trade id")

// TradeRepository is the record store: it owns the trade collection and
// serves the query pipeline a full snapshot per request.
type TradeRepository interface {
	// ListAll returns every stored trade in insertion order.
	ListAll() ([]model.Trade, error)

	// GetByID returns the trade with the given id, or ErrTradeNotFound.
	GetByID(id string) (*model.Trade, error)

	// Put stores a new trade. Trades are immutable, so an existing id
	// is rejected with ErrDuplicateTradeID rather than overwritten.
	Put(trade *model.Trade) error
}
