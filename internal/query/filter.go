package query

import (
	"strings"

	"tradedesk/internal/model"
)

// Predicate reports whether a trade passes one filter. Predicates are
// total over optional fields: an absent counterparty never faults.
type Predicate func(model.Trade) bool

// predicates builds the filter set for the supplied parameters only.
func (p *Params) predicates() []Predicate {
	var preds []Predicate

	if p.AssetClass != "" {
		assetClass := p.AssetClass
		preds = append(preds, func(t model.Trade) bool {
			return t.AssetClass == assetClass
		})
	}
	if p.Start != nil {
		start := *p.Start
		preds = append(preds, func(t model.Trade) bool {
			return !t.TradeDateTime.Before(start)
		})
	}
	if p.End != nil {
		end := *p.End
		preds = append(preds, func(t model.Trade) bool {
			return !t.TradeDateTime.After(end)
		})
	}
	if p.MinPrice != nil {
		min := *p.MinPrice
		preds = append(preds, func(t model.Trade) bool {
			return t.TradeDetails.Price >= min
		})
	}
	if p.MaxPrice != nil {
		max := *p.MaxPrice
		preds = append(preds, func(t model.Trade) bool {
			return t.TradeDetails.Price <= max
		})
	}
	if p.TradeType != "" {
		tradeType := p.TradeType
		preds = append(preds, func(t model.Trade) bool {
			return t.TradeDetails.Direction == tradeType
		})
	}
	if p.Search != "" {
		needle := strings.ToLower(p.Search)
		preds = append(preds, func(t model.Trade) bool {
			return matchesSearch(t, needle)
		})
	}

	return preds
}

// matchesSearch reports whether the lowercased needle occurs in any of
// the searchable fields. Counterparty may be empty and then simply
// doesn't match.
func matchesSearch(t model.Trade, needle string) bool {
	for _, field := range []string{t.Counterparty, t.InstrumentID, t.InstrumentName, t.Trader} {
		if field != "" && strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Filter returns the trades passing every predicate, preserving their
// relative order. The input slice is never mutated.
func Filter(trades []model.Trade, preds []Predicate) []model.Trade {
	out := make([]model.Trade, 0, len(trades))
	for _, t := range trades {
		if passesAll(t, preds) {
			out = append(out, t)
		}
	}
	return out
}

func passesAll(t model.Trade, preds []Predicate) bool {
	for _, pred := range preds {
		if !pred(t) {
			return false
		}
	}
	return true
}
