package repository

import (
	"errors"
	"fmt"

	"tradedesk/internal/model"

	"gorm.io/gorm"
)

// gormTradeRepository is the durable variant of the record store, backed
// by ClickHouse through gorm. It honors the same contract as the memory
// store: insertion-ordered ListAll, explicit not-found on point lookup.
type gormTradeRepository struct {
	db *gorm.DB
}

func NewGormTradeRepository(db *gorm.DB) TradeRepository {
	return &gormTradeRepository{db: db}
}

func (r *gormTradeRepository) ListAll() ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.Order("inserted_at, trade_id").Find(&trades).Error; err != nil {
		return nil, fmt.Errorf("listing trades: %w", err)
	}
	return trades, nil
}

func (r *gormTradeRepository) GetByID(id string) (*model.Trade, error) {
	var trade model.Trade
	err := r.db.Where("trade_id = ?", id).First(&trade).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTradeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching trade %s: %w", id, err)
	}
	return &trade, nil
}

func (r *gormTradeRepository) Put(trade *model.Trade) error {
	var count int64
	if err := r.db.Model(&model.Trade{}).Where("trade_id = ?", trade.TradeID).Count(&count).Error; err != nil {
		return fmt.Errorf("checking trade %s: %w", trade.TradeID, err)
	}
	if count > 0 {
		return ErrDuplicateTradeID
	}
	return r.db.Create(trade).Error
}
