package query

import "tradedesk/internal/model"

// Run applies the pipeline to a snapshot of the collection: validate
// pagination, filter, sort, paginate. The input slice is not mutated;
// the returned page is a fresh slice.
func Run(trades []model.Trade, p Params) ([]model.Trade, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	filtered := Filter(trades, p.predicates())
	SortBy(filtered, p.Sort)
	return Paginate(filtered, p.Page, p.Size), nil
}
