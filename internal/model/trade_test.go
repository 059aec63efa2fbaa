package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrade() Trade {
	return Trade{
		TradeID:        "T1",
		AssetClass:     "Equity",
		InstrumentID:   "AAPL",
		InstrumentName: "Apple Inc.",
		TradeDateTime:  time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		TradeDetails: TradeDetails{
			Direction: DirectionBuy,
			Price:     120.5,
			Quantity:  10,
		},
		Trader: "John Doe",
	}
}

func TestValidateAcceptsOptionalFieldsAbsent(t *testing.T) {
	trade := validTrade()
	trade.AssetClass = ""
	trade.Counterparty = ""
	require.NoError(t, trade.Validate())
}

func TestValidateAcceptsZeroPrice(t *testing.T) {
	trade := validTrade()
	trade.TradeDetails.Price = 0
	require.NoError(t, trade.Validate())
}

func TestValidateRejectsBrokenInvariants(t *testing.T) {
	trade := validTrade()
	trade.TradeID = ""
	assert.ErrorIs(t, trade.Validate(), ErrMissingTradeID)

	trade = validTrade()
	trade.InstrumentName = ""
	assert.ErrorIs(t, trade.Validate(), ErrMissingInstrument)

	trade = validTrade()
	trade.Trader = ""
	assert.ErrorIs(t, trade.Validate(), ErrMissingTrader)

	trade = validTrade()
	trade.TradeDateTime = time.Time{}
	assert.ErrorIs(t, trade.Validate(), ErrMissingDateTime)

	trade = validTrade()
	trade.TradeDetails.Direction = "HOLD"
	assert.ErrorIs(t, trade.Validate(), ErrInvalidDirection)

	trade = validTrade()
	trade.TradeDetails.Price = -1
	assert.ErrorIs(t, trade.Validate(), ErrInvalidPrice)

	trade = validTrade()
	trade.TradeDetails.Quantity = 0
	assert.ErrorIs(t, trade.Validate(), ErrInvalidQuantity)
}
