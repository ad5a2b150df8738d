// Package planning implements the inventory planning formulas: safety stock
// from demand variability, optimal inventory from a worst-case forecast,
// order quantity, a legacy fixed-horizon baseline, and the holding-cost
// savings of the optimal policy versus that baseline.
//
// Every function is a pure, single-call computation over its inputs and is
// safe for concurrent use.
package planning

import (
	"math"

	"github.com/andresuchdata/invplan/internal/stats"
)

// SafetyStock returns the buffer inventory needed to absorb demand
// variability during lead time at the given service level:
//
//	round(z * sigma * sqrt(leadTime))
//
// where z is the normal quantile of serviceLevel and sigma the population
// standard deviation of the demand sample. The result is non-negative for
// serviceLevel >= 0.5; below that the z-score, and therefore the result,
// can go negative.
func SafetyStock(demand []float64, leadTime int, serviceLevel float64) (int, error) {
	if len(demand) == 0 {
		return 0, ErrEmptyDemandSample
	}
	if leadTime <= 0 {
		return 0, ErrInvalidLeadTime
	}
	if serviceLevel <= 0 || serviceLevel >= 1 {
		return 0, ErrInvalidServiceLevel
	}

	z := stats.NormalQuantile(serviceLevel)
	sigma := stats.StdDev(demand)

	return int(math.Round(z * sigma * math.Sqrt(float64(leadTime)))), nil
}

// OptimalInventory returns the stock level covering worst-case demand during
// lead time plus safety stock: the sum of YhatUpper over the first leadTime
// forecast periods, plus safetyStock, rounded. A forecast shorter than the
// lead time contributes only its available periods.
func OptimalInventory(forecast []ForecastPoint, leadTime int, safetyStock int) (int, error) {
	if leadTime <= 0 {
		return 0, ErrInvalidLeadTime
	}

	periods := leadTime
	if len(forecast) < periods {
		periods = len(forecast)
	}

	var worstCase float64
	for _, point := range forecast[:periods] {
		worstCase += point.YhatUpper
	}

	return int(math.Round(worstCase + float64(safetyStock))), nil
}

// OrderQuantity returns how much to order to reach the optimal level from
// the current one. Never negative.
func OrderQuantity(optimalInventory, currentInventory int) int {
	if qty := optimalInventory - currentInventory; qty > 0 {
		return qty
	}
	return 0
}

// LegacyInventory estimates the stock level under the naive fixed-horizon
// rule ("hold N days of average demand") the optimal policy is compared
// against.
func LegacyInventory(avgDailyDemand float64, daysOfStock int) (int, error) {
	if daysOfStock <= 0 {
		return 0, ErrInvalidDaysOfStock
	}

	return int(math.Round(avgDailyDemand * float64(daysOfStock))), nil
}

// CostSavings returns the financial impact of holding optimalInventory
// instead of legacyInventory. The annual figure is the holding cost of the
// reduced units; capital released is their one-time value. A negative result
// is a valid outcome, not an error: it means the optimal policy holds more
// stock than the legacy rule.
func CostSavings(optimalInventory, legacyInventory int, componentCost, holdingCostRate float64) Savings {
	reduction := legacyInventory - optimalInventory
	capital := float64(reduction) * componentCost

	return Savings{
		Annual:          int(math.Round(capital * holdingCostRate)),
		UnitsReduced:    reduction,
		CapitalReleased: capital,
	}
}

// BuildPlan runs the full planning flow for one component: safety stock,
// optimal inventory, order quantity, legacy baseline, savings, and the stock
// condition of the current inventory against the computed levels.
// Zero-valued ServiceLevel, DaysOfStock and HoldingCostRate fall back to the
// package defaults.
func BuildPlan(req PlanRequest) (*Plan, error) {
	serviceLevel := req.ServiceLevel
	if serviceLevel == 0 {
		serviceLevel = DefaultServiceLevel
	}
	daysOfStock := req.DaysOfStock
	if daysOfStock == 0 {
		daysOfStock = DefaultDaysOfStock
	}
	holdingRate := req.HoldingCostRate
	if holdingRate == 0 {
		holdingRate = DefaultHoldingCostRate
	}

	safetyStock, err := SafetyStock(req.Demand, req.LeadTime, serviceLevel)
	if err != nil {
		return nil, err
	}

	optimal, err := OptimalInventory(req.Forecast, req.LeadTime, safetyStock)
	if err != nil {
		return nil, err
	}

	legacy, err := LegacyInventory(stats.Mean(req.Demand), daysOfStock)
	if err != nil {
		return nil, err
	}

	return &Plan{
		ComponentID:      req.ComponentID,
		SafetyStock:      safetyStock,
		OptimalInventory: optimal,
		OrderQuantity:    OrderQuantity(optimal, req.CurrentInventory),
		LegacyInventory:  legacy,
		Savings:          CostSavings(optimal, legacy, req.UnitCost, holdingRate),
		Condition:        ClassifyStock(req.CurrentInventory, safetyStock, optimal),
	}, nil
}
