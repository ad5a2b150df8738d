package planning

import "time"

// Business defaults, matching the planning policy the rest of the system
// assumes when a caller does not override them.
const (
	// DefaultServiceLevel is the target probability of not stocking out
	// during lead time.
	DefaultServiceLevel = 0.95

	// DefaultDaysOfStock is the fixed horizon of the legacy stocking rule.
	DefaultDaysOfStock = 60

	// DefaultHoldingCostRate is the annual cost of carrying one unit of
	// inventory, as a fraction of its value.
	DefaultHoldingCostRate = 0.20
)

// ForecastPoint is one period of a demand forecast. Only YhatUpper is
// consulted by the planning formulas; the point estimate and lower bound are
// carried for reporting.
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Yhat      float64   `json:"yhat"`
	YhatLower float64   `json:"yhat_lower"`
	YhatUpper float64   `json:"yhat_upper"`
}

// Savings is the financial impact of moving from the legacy stocking rule to
// the optimal policy. All fields may be negative: a negative UnitsReduced
// means the optimal policy holds more inventory than the legacy rule, and the
// annual figure is a cost increase rather than a saving.
type Savings struct {
	// Annual is the yearly holding-cost saving, rounded to whole currency.
	Annual int `json:"annual_savings"`
	// UnitsReduced is legacy inventory minus optimal inventory.
	UnitsReduced int `json:"inventory_reduction"`
	// CapitalReleased is the one-time value of the reduced units.
	CapitalReleased float64 `json:"capital_released"`
}

// FirstYearROI returns the annual saving as a percentage of the capital
// released. Returns 0 when no capital is released.
func (s Savings) FirstYearROI() float64 {
	if s.CapitalReleased <= 0 {
		return 0
	}
	return float64(s.Annual) / s.CapitalReleased * 100
}

// PlanRequest carries everything needed to plan one component.
// ServiceLevel, DaysOfStock and HoldingCostRate fall back to the package
// defaults when left at zero.
type PlanRequest struct {
	ComponentID      string
	Demand           []float64
	Forecast         []ForecastPoint
	LeadTime         int
	ServiceLevel     float64
	CurrentInventory int
	UnitCost         float64
	DaysOfStock      int
	HoldingCostRate  float64
}

// Plan is the full planning result for one component.
type Plan struct {
	ComponentID      string         `json:"component_id"`
	SafetyStock      int            `json:"safety_stock"`
	OptimalInventory int            `json:"optimal_inventory"`
	OrderQuantity    int            `json:"order_quantity"`
	LegacyInventory  int            `json:"legacy_inventory"`
	Savings          Savings        `json:"savings"`
	Condition        StockCondition `json:"condition"`
}
