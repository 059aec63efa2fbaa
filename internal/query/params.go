// Package query implements the trade query pipeline: filter predicates
// ANDed over the full collection, an optional single-field ascending
// sort, and a pagination window, in that order.
package query

import (
	"errors"
	"time"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

var (
	ErrInvalidPage = errors.New("page must be >= 1")
	ErrInvalidSize = errors.New("size must be between 1 and 100")
)

// Params is one query's parameter set. Pointer fields distinguish "not
// supplied" from a supplied zero value, so minPrice=0 is a real lower
// bound rather than no bound.
type Params struct {
	Search     string
	AssetClass string
	Start      *time.Time
	End        *time.Time
	MinPrice   *float64
	MaxPrice   *float64
	TradeType  string
	Sort       string
	Page       int
	Size       int
}

// Validate applies pagination defaults and range-checks page and size.
// All other parameters are optional and cannot fail validation here;
// malformed values are rejected at the transport boundary.
func (p *Params) Validate() error {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Size == 0 {
		p.Size = DefaultSize
	}
	if p.Page < 1 {
		return ErrInvalidPage
	}
	if p.Size < 1 || p.Size > MaxSize {
		return ErrInvalidSize
	}
	return nil
}
