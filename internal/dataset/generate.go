package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"
)

// GeneratorConfig controls the synthetic dataset.
type GeneratorConfig struct {
	Components int
	Days       int
	Start      time.Time
	Seed       uint64
}

// DefaultGeneratorConfig returns a dataset shaped like the demo data the
// dashboard ships with: two years of daily demand for ten components.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Components: 10,
		Days:       730,
		Start:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Seed:       42,
	}
}

var categories = []string{
	"Microcontrollers",
	"Capacitors",
	"Resistors",
	"Sensors",
	"Connectors",
}

// Generate builds a synthetic demand history and matching stock snapshot.
// Demand per component is a base level with weekly and yearly seasonality, a
// mild linear trend and gaussian noise, clamped at zero. The same seed
// always yields the same dataset.
func Generate(cfg GeneratorConfig) ([]DemandRecord, []ComponentStock, error) {
	if cfg.Components <= 0 {
		return nil, nil, fmt.Errorf("component count must be positive, got %d", cfg.Components)
	}
	if cfg.Days <= 0 {
		return nil, nil, fmt.Errorf("day count must be positive, got %d", cfg.Days)
	}
	if cfg.Start.IsZero() {
		cfg.Start = DefaultGeneratorConfig().Start
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	history := make([]DemandRecord, 0, cfg.Components*cfg.Days)
	stocks := make([]ComponentStock, 0, cfg.Components)

	for c := 0; c < cfg.Components; c++ {
		id := fmt.Sprintf("COMP-%03d", c+1)
		base := 20 + rng.Float64()*180
		trend := (rng.Float64() - 0.4) * 0.05 * base / 365
		noise := 0.15 * base

		for d := 0; d < cfg.Days; d++ {
			date := cfg.Start.AddDate(0, 0, d)

			units := base + trend*float64(d)
			// Weekly dip on weekends, yearly sine cycle.
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				units *= 0.6
			}
			units *= 1 + 0.2*math.Sin(2*math.Pi*float64(d)/365)
			units += rng.NormFloat64() * noise

			if units < 0 {
				units = 0
			}

			history = append(history, DemandRecord{
				ComponentID: id,
				Date:        date,
				UnitsUsed:   math.Round(units),
			})
		}

		cost := decimal.NewFromFloat(5 + rng.Float64()*495).Round(2)
		stocks = append(stocks, ComponentStock{
			ComponentID:  id,
			Category:     categories[c%len(categories)],
			CurrentStock: int(base * (20 + rng.Float64()*70)),
			UnitCost:     cost,
		})
	}

	return history, stocks, nil
}
