package query

import (
	"testing"
	"time"

	"tradedesk/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func priceTrade(id string, price float64) model.Trade {
	return model.Trade{
		TradeID:        id,
		AssetClass:     "Equity",
		Counterparty:   "Counterparty A",
		InstrumentID:   "AAPL",
		InstrumentName: "Apple Inc.",
		TradeDateTime:  baseTime,
		TradeDetails: model.TradeDetails{
			Direction: model.DirectionBuy,
			Price:     price,
			Quantity:  10,
		},
		Trader: "John Doe",
	}
}

func priceFixture() []model.Trade {
	return []model.Trade{
		priceTrade("A", 50),
		priceTrade("B", 150),
		priceTrade("C", 250),
	}
}

func tradeIDs(trades []model.Trade) []string {
	ids := make([]string, 0, len(trades))
	for _, t := range trades {
		ids = append(ids, t.TradeID)
	}
	return ids
}

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func TestMinPriceFilter(t *testing.T) {
	got, err := Run(priceFixture(), Params{MinPrice: floatPtr(100)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, tradeIDs(got))
}

func TestPriceRangeFilter(t *testing.T) {
	got, err := Run(priceFixture(), Params{MinPrice: floatPtr(100), MaxPrice: floatPtr(200)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, tradeIDs(got))
}

func TestZeroPriceBoundsAreRealBounds(t *testing.T) {
	trades := []model.Trade{
		priceTrade("FREE", 0),
		priceTrade("B", 150),
	}

	// A supplied minPrice of 0 is a bound, not "no bound": it must
	// produce a predicate and keep the zero-price trade.
	p := Params{MinPrice: floatPtr(0)}
	assert.Len(t, p.predicates(), 1)

	got, err := Run(trades, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"FREE", "B"}, tradeIDs(got))

	// maxPrice=0 makes the difference observable: only the zero-price
	// trade may survive.
	got, err = Run(trades, Params{MaxPrice: floatPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, []string{"FREE"}, tradeIDs(got))
}

func TestFilterConjunction(t *testing.T) {
	trades := priceFixture()
	trades[1].AssetClass = "Bond"
	trades[2].AssetClass = "Bond"

	got, err := Run(trades, Params{AssetClass: "Bond", MinPrice: floatPtr(200)})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, tradeIDs(got))
}

func TestTradeTypeFilter(t *testing.T) {
	trades := priceFixture()
	trades[0].TradeDetails.Direction = model.DirectionSell

	got, err := Run(trades, Params{TradeType: model.DirectionSell})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tradeIDs(got))
}

func TestDateRangeBoundsAreInclusive(t *testing.T) {
	trades := []model.Trade{
		priceTrade("A", 50),
		priceTrade("B", 150),
		priceTrade("C", 250),
	}
	trades[0].TradeDateTime = baseTime.Add(-time.Hour)
	trades[2].TradeDateTime = baseTime.Add(time.Hour)

	got, err := Run(trades, Params{Start: timePtr(baseTime), End: timePtr(baseTime)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, tradeIDs(got))

	got, err = Run(trades, Params{Start: timePtr(baseTime.Add(-time.Hour)), End: timePtr(baseTime)})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, tradeIDs(got))
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	trades := priceFixture()
	trades[0].Trader = "Maria Lopez"
	trades[1].Counterparty = "Counterparty B"
	trades[2].InstrumentID = "TSLA"
	trades[2].InstrumentName = "Tesla Inc."

	got, err := Run(trades, Params{Search: "maria"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, tradeIDs(got))

	got, err = Run(trades, Params{Search: "tsla"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, tradeIDs(got))

	got, err = Run(trades, Params{Search: "COUNTERPARTY B"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, tradeIDs(got))
}

func TestSearchToleratesMissingCounterparty(t *testing.T) {
	trades := priceFixture()
	trades[0].Counterparty = ""
	trades[1].Counterparty = ""
	trades[2].Counterparty = ""

	got, err := Run(trades, Params{Search: "counterparty"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPaginationWindow(t *testing.T) {
	got, err := Run(priceFixture(), Params{Page: 2, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, tradeIDs(got))
}

func TestPaginationOutOfRangeYieldsEmptyPage(t *testing.T) {
	got, err := Run(priceFixture(), Params{Page: 9, Size: 10})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPaginationReassemblesFullSequence(t *testing.T) {
	trades := []model.Trade{
		priceTrade("T1", 10), priceTrade("T2", 20), priceTrade("T3", 30),
		priceTrade("T4", 40), priceTrade("T5", 50), priceTrade("T6", 60),
		priceTrade("T7", 70),
	}

	var all []string
	for page := 1; page <= 3; page++ {
		got, err := Run(trades, Params{Page: page, Size: 3})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), 3)
		all = append(all, tradeIDs(got)...)
	}
	assert.Equal(t, tradeIDs(trades), all)
}

func TestSortByPrice(t *testing.T) {
	got, err := Run(priceFixture(), Params{Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tradeIDs(got))

	// Reversing insertion order must not change the sorted sequence.
	reversed := []model.Trade{
		priceTrade("C", 250),
		priceTrade("B", 150),
		priceTrade("A", 50),
	}
	got, err = Run(reversed, Params{Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tradeIDs(got))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	trades := []model.Trade{
		priceTrade("first", 100),
		priceTrade("second", 100),
		priceTrade("third", 50),
	}

	got, err := Run(trades, Params{Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"third", "first", "second"}, tradeIDs(got))
}

func TestUnknownSortFieldIsANoOp(t *testing.T) {
	unsorted, err := Run(priceFixture(), Params{})
	require.NoError(t, err)

	got, err := Run(priceFixture(), Params{Sort: "tradeDetails"})
	require.NoError(t, err)
	assert.Equal(t, tradeIDs(unsorted), tradeIDs(got))
}

func TestSortByTimestampAndStrings(t *testing.T) {
	trades := priceFixture()
	trades[0].TradeDateTime = baseTime.Add(2 * time.Hour)
	trades[1].TradeDateTime = baseTime
	trades[2].TradeDateTime = baseTime.Add(time.Hour)

	got, err := Run(trades, Params{Sort: "tradeDateTime"})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, tradeIDs(got))

	got, err = Run(trades, Params{Sort: "tradeId"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tradeIDs(got))
}

func TestPaginationValidation(t *testing.T) {
	_, err := Run(priceFixture(), Params{Page: -1})
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = Run(priceFixture(), Params{Size: 101})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Run(priceFixture(), Params{Size: -5})
	assert.ErrorIs(t, err, ErrInvalidSize)

	// Zero values take the defaults.
	got, err := Run(priceFixture(), Params{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestRunDoesNotMutateInput(t *testing.T) {
	trades := []model.Trade{
		priceTrade("C", 250),
		priceTrade("A", 50),
	}

	_, err := Run(trades, Params{Sort: "price"})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A"}, tradeIDs(trades))
}
