package query

import "tradedesk/internal/model"

// Paginate returns the half-open window [(page-1)*size, (page-1)*size+size)
// clamped to the collection bounds. A window past the end yields an
// empty page, not an error.
func Paginate(trades []model.Trade, page, size int) []model.Trade {
	start := (page - 1) * size
	if start >= len(trades) {
		return []model.Trade{}
	}
	end := start + size
	if end > len(trades) {
		end = len(trades)
	}
	return trades[start:end]
}
