// Package seed populates a trade repository with synthetic trades at
// process start. Randomness and the clock are injected so tests can
// pin down exact outputs.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"tradedesk/internal/model"
	"tradedesk/internal/repository"
)

var assetClasses = []string{"Equity", "Bond", "FX"}

// Empty string means the counterparty was not captured for the trade.
var counterparties = []string{"Counterparty A", "Counterparty B", ""}

var instruments = []struct {
	id   string
	name string
}{
	{"AAPL", "Apple Inc."},
	{"TSLA", "Tesla Inc."},
	{"AMZN", "Amazon.com Inc."},
}

var traders = []string{"John Doe", "Jane Smith", "Alex Wong"}

type Seeder struct {
	rng *rand.Rand
	now func() time.Time
}

func New(rng *rand.Rand, now func() time.Time) *Seeder {
	return &Seeder{
		rng: rng,
		now: now,
	}
}

// Populate stores count generated trades. Ids are random numerics,
// re-rolled on collision so every stored trade keeps a distinct id.
func (s *Seeder) Populate(repo repository.TradeRepository, count int) error {
	seen := make(map[string]bool, count)
	for i := 0; i < count; i++ {
		trade := s.generate()
		for seen[trade.TradeID] {
			trade.TradeID = s.tradeID()
		}
		seen[trade.TradeID] = true
		if err := repo.Put(trade); err != nil {
			return fmt.Errorf("seeding trade %s: %w", trade.TradeID, err)
		}
	}
	return nil
}

func (s *Seeder) generate() *model.Trade {
	instrument := instruments[s.rng.Intn(len(instruments))]
	direction := model.DirectionBuy
	if s.rng.Intn(2) == 1 {
		direction = model.DirectionSell
	}

	return &model.Trade{
		TradeID:        s.tradeID(),
		AssetClass:     assetClasses[s.rng.Intn(len(assetClasses))],
		Counterparty:   counterparties[s.rng.Intn(len(counterparties))],
		InstrumentID:   instrument.id,
		InstrumentName: instrument.name,
		TradeDateTime:  s.now().Add(-time.Duration(s.rng.Intn(72)) * time.Hour),
		TradeDetails: model.TradeDetails{
			Direction: direction,
			Price:     100 + s.rng.Float64()*100,
			Quantity:  s.rng.Intn(100) + 1,
		},
		Trader: traders[s.rng.Intn(len(traders))],
	}
}

func (s *Seeder) tradeID() string {
	return fmt.Sprintf("%d", s.rng.Intn(100000)+1)
}
