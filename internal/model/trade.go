package model

import (
	"errors"
	"fmt"
	"time"
)

// Trade direction values.
const (
	DirectionBuy  = "BUY"
	DirectionSell = "SELL"
)

// TradeDetails carries the economic terms of a trade.
type TradeDetails struct {
	Direction string  `gorm:"column:direction" json:"direction"`
	Price     float64 `gorm:"column:price;type:Float64" json:"price"`
	Quantity  int     `gorm:"column:quantity;type:Int64" json:"quantity"`
}

// Trade is one executed transaction in a financial instrument.
// Trades are immutable once stored; there is no update path.
type Trade struct {
	TradeID        string       `gorm:"column:trade_id;primaryKey" json:"tradeId"`
	AssetClass     string       `gorm:"column:asset_class" json:"assetClass,omitempty"`
	Counterparty   string       `gorm:"column:counterparty" json:"counterparty,omitempty"`
	InstrumentID   string       `gorm:"column:instrument_id" json:"instrumentId"`
	InstrumentName string       `gorm:"column:instrument_name" json:"instrumentName"`
	TradeDateTime  time.Time    `gorm:"column:trade_date_time;type:DateTime" json:"tradeDateTime"`
	TradeDetails   TradeDetails `gorm:"embedded" json:"tradeDetails"`
	Trader         string       `gorm:"column:trader" json:"trader"`
	InsertedAt     time.Time    `gorm:"column:inserted_at;type:DateTime;default:now()" json:"-"`
}

func (Trade) TableName() string {
	return "trade"
}

func (Trade) TableOptions() string {
	return "ENGINE = ReplacingMergeTree() ORDER BY (trade_id)"
}

var (
	ErrMissingTradeID    = errors.New("tradeId is required")
	ErrMissingInstrument = errors.New("instrumentId and instrumentName are required")
	ErrMissingTrader     = errors.New("trader is required")
	ErrMissingDateTime   = errors.New("tradeDateTime is required")
	ErrInvalidDirection  = errors.New("direction must be BUY or SELL")
	ErrInvalidPrice      = errors.New("price must be >= 0")
	ErrInvalidQuantity   = errors.New("quantity must be > 0")
)

// Validate checks the Trade invariants. assetClass and counterparty are
// optional; everything else is required.
func (t *Trade) Validate() error {
	if t.TradeID == "" {
		return ErrMissingTradeID
	}
	if t.InstrumentID == "" || t.InstrumentName == "" {
		return ErrMissingInstrument
	}
	if t.Trader == "" {
		return ErrMissingTrader
	}
	if t.TradeDateTime.IsZero() {
		return ErrMissingDateTime
	}
	if err := t.TradeDetails.Validate(); err != nil {
		return fmt.Errorf("tradeDetails: %w", err)
	}
	return nil
}

// Validate checks the TradeDetails invariants.
func (d *TradeDetails) Validate() error {
	if d.Direction != DirectionBuy && d.Direction != DirectionSell {
		return ErrInvalidDirection
	}
	if d.Price < 0 {
		return ErrInvalidPrice
	}
	if d.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
