package query

import (
	"sort"

	"tradedesk/internal/model"
)

type lessFunc func(a, b model.Trade) bool

// comparators enumerates the accepted sort fields by their external
// spelling. Names outside this map leave the collection unsorted.
var comparators = map[string]lessFunc{
	"tradeId": func(a, b model.Trade) bool {
		return a.TradeID < b.TradeID
	},
	"assetClass": func(a, b model.Trade) bool {
		return a.AssetClass < b.AssetClass
	},
	"counterparty": func(a, b model.Trade) bool {
		return a.Counterparty < b.Counterparty
	},
	"instrumentId": func(a, b model.Trade) bool {
		return a.InstrumentID < b.InstrumentID
	},
	"instrumentName": func(a, b model.Trade) bool {
		return a.InstrumentName < b.InstrumentName
	},
	"trader": func(a, b model.Trade) bool {
		return a.Trader < b.Trader
	},
	"tradeDateTime": func(a, b model.Trade) bool {
		return a.TradeDateTime.Before(b.TradeDateTime)
	},
	"price": func(a, b model.Trade) bool {
		return a.TradeDetails.Price < b.TradeDetails.Price
	},
	"quantity": func(a, b model.Trade) bool {
		return a.TradeDetails.Quantity < b.TradeDetails.Quantity
	},
}

// SortBy stable-sorts the trades ascending by the named field. An
// unrecognized field name is a no-op, not an error.
func SortBy(trades []model.Trade, field string) {
	less, ok := comparators[field]
	if !ok {
		return
	}
	sort.SliceStable(trades, func(i, j int) bool {
		return less(trades[i], trades[j])
	})
}
