package seed

import (
	"math/rand"
	"testing"
	"time"

	"tradedesk/internal/model"
	"tradedesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestPopulateStoresRequestedCount(t *testing.T) {
	repo := repository.NewMemoryTradeRepository()
	seeder := New(rand.New(rand.NewSource(42)), fixedNow)

	require.NoError(t, seeder.Populate(repo, 50))

	trades, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, trades, 50)
}

func TestPopulateGeneratesValidUniqueTrades(t *testing.T) {
	repo := repository.NewMemoryTradeRepository()
	seeder := New(rand.New(rand.NewSource(7)), fixedNow)

	require.NoError(t, seeder.Populate(repo, 100))

	trades, err := repo.ListAll()
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, trade := range trades {
		require.NoError(t, trade.Validate())
		assert.False(t, seen[trade.TradeID], "duplicate id %s", trade.TradeID)
		seen[trade.TradeID] = true

		assert.GreaterOrEqual(t, trade.TradeDetails.Price, 100.0)
		assert.Less(t, trade.TradeDetails.Price, 200.0)
		assert.GreaterOrEqual(t, trade.TradeDetails.Quantity, 1)
		assert.LessOrEqual(t, trade.TradeDetails.Quantity, 100)
		assert.Contains(t, []string{model.DirectionBuy, model.DirectionSell}, trade.TradeDetails.Direction)
		assert.Contains(t, []string{"Equity", "Bond", "FX"}, trade.AssetClass)
		assert.False(t, trade.TradeDateTime.After(fixedNow()))
	}
}

func TestPopulateIsDeterministicForAFixedSeed(t *testing.T) {
	first := repository.NewMemoryTradeRepository()
	second := repository.NewMemoryTradeRepository()

	require.NoError(t, New(rand.New(rand.NewSource(99)), fixedNow).Populate(first, 20))
	require.NoError(t, New(rand.New(rand.NewSource(99)), fixedNow).Populate(second, 20))

	a, err := first.ListAll()
	require.NoError(t, err)
	b, err := second.ListAll()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
