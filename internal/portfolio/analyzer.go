// Package portfolio runs the planning flow across a whole component
// portfolio and rolls the per-component savings up into the business-level
// totals: annual holding-cost savings, capital released, and the condition
// mix of the current stock position.
package portfolio

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/andresuchdata/invplan/internal/dataset"
	"github.com/andresuchdata/invplan/internal/forecast"
	"github.com/andresuchdata/invplan/internal/planning"
)

const defaultWorkerCount = 4

// Params are the planning parameters applied to every component in the
// batch. Zero values fall back to the planning package defaults.
type Params struct {
	LeadTime        int
	ServiceLevel    float64
	DaysOfStock     int
	HoldingCostRate float64
	IntervalWidth   float64
	WorkerCount     int
}

// ComponentResult is the full analysis for one component.
type ComponentResult struct {
	ComponentID  string                 `json:"component_id"`
	Category     string                 `json:"category"`
	CurrentStock int                    `json:"current_stock"`
	UnitCost     decimal.Decimal        `json:"unit_cost"`
	Plan         planning.Plan          `json:"plan"`
	Profile      planning.DemandProfile `json:"profile"`
}

// Summary is the portfolio-wide roll-up.
type Summary struct {
	Components           int                             `json:"components"`
	TotalInventoryValue  decimal.Decimal                 `json:"total_inventory_value"`
	TotalAnnualSavings   decimal.Decimal                 `json:"total_annual_savings"`
	TotalCapitalReleased decimal.Decimal                 `json:"total_capital_released"`
	Conditions           map[planning.StockCondition]int `json:"conditions"`
}

// Analyzer plans components in bounded parallel batches.
type Analyzer struct {
	params     Params
	forecaster *forecast.Forecaster
}

func NewAnalyzer(params Params) (*Analyzer, error) {
	if params.LeadTime <= 0 {
		return nil, planning.ErrInvalidLeadTime
	}
	if params.WorkerCount <= 0 {
		params.WorkerCount = defaultWorkerCount
	}

	forecaster, err := forecast.New(params.IntervalWidth)
	if err != nil {
		return nil, err
	}

	return &Analyzer{params: params, forecaster: forecaster}, nil
}

// AnalyzeComponent plans a single component from its stock snapshot and
// chronological demand history. The forecast horizon is the lead time plus a
// 30 day margin, mirroring how the dashboard calls the forecaster.
func (a *Analyzer) AnalyzeComponent(stock dataset.ComponentStock, history []dataset.DemandRecord) (*ComponentResult, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("component %s: %w", stock.ComponentID, forecast.ErrEmptyHistory)
	}

	observations := make([]forecast.Observation, len(history))
	demand := make([]float64, len(history))
	for i, r := range history {
		observations[i] = forecast.Observation{Date: r.Date, Value: r.UnitsUsed}
		demand[i] = r.UnitsUsed
	}

	points, err := a.forecaster.Forecast(observations, a.params.LeadTime+30)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", stock.ComponentID, err)
	}

	plan, err := planning.BuildPlan(planning.PlanRequest{
		ComponentID:      stock.ComponentID,
		Demand:           demand,
		Forecast:         points,
		LeadTime:         a.params.LeadTime,
		ServiceLevel:     a.params.ServiceLevel,
		CurrentInventory: stock.CurrentStock,
		UnitCost:         stock.UnitCost.InexactFloat64(),
		DaysOfStock:      a.params.DaysOfStock,
		HoldingCostRate:  a.params.HoldingCostRate,
	})
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", stock.ComponentID, err)
	}

	profile, err := planning.ProfileDemand(demand)
	if err != nil {
		return nil, fmt.Errorf("component %s: %w", stock.ComponentID, err)
	}

	return &ComponentResult{
		ComponentID:  stock.ComponentID,
		Category:     stock.Category,
		CurrentStock: stock.CurrentStock,
		UnitCost:     stock.UnitCost,
		Plan:         *plan,
		Profile:      profile,
	}, nil
}

// Analyze plans every component with demand history, in parallel, and
// returns the per-component results in the order of the stock snapshot plus
// the portfolio summary. Components without history are logged and skipped.
func (a *Analyzer) Analyze(ctx context.Context, stocks []dataset.ComponentStock, history []dataset.DemandRecord) ([]ComponentResult, *Summary, error) {
	grouped := dataset.HistoryByComponent(history)

	results := make([]*ComponentResult, len(stocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.params.WorkerCount)

	for i, stock := range stocks {
		series, ok := grouped[stock.ComponentID]
		if !ok {
			log.Warn().Str("component", stock.ComponentID).Msg("no demand history, skipping")
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := a.AnalyzeComponent(stock, series)
			if err != nil {
				return err
			}

			results[i] = result
			log.Debug().
				Str("component", stock.ComponentID).
				Int("optimal", result.Plan.OptimalInventory).
				Int("order_qty", result.Plan.OrderQuantity).
				Int("annual_savings", result.Plan.Savings.Annual).
				Msg("component analyzed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	analyzed := make([]ComponentResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			analyzed = append(analyzed, *r)
		}
	}

	return analyzed, summarize(analyzed), nil
}

func summarize(results []ComponentResult) *Summary {
	summary := &Summary{
		Components:           len(results),
		TotalInventoryValue:  decimal.Zero,
		TotalAnnualSavings:   decimal.Zero,
		TotalCapitalReleased: decimal.Zero,
		Conditions:           make(map[planning.StockCondition]int),
	}

	for _, r := range results {
		stockValue := r.UnitCost.Mul(decimal.NewFromInt(int64(r.CurrentStock)))
		released := r.UnitCost.Mul(decimal.NewFromInt(int64(r.Plan.Savings.UnitsReduced)))

		summary.TotalInventoryValue = summary.TotalInventoryValue.Add(stockValue)
		summary.TotalAnnualSavings = summary.TotalAnnualSavings.Add(decimal.NewFromInt(int64(r.Plan.Savings.Annual)))
		summary.TotalCapitalReleased = summary.TotalCapitalReleased.Add(released)
		summary.Conditions[r.Plan.Condition]++
	}

	return summary
}
