package planning

import "strings"

// StockCondition labels how the current stock level sits against the
// computed planning levels.
type StockCondition string

const (
	// ConditionCritical: current stock is below safety stock, stockout is
	// imminent.
	ConditionCritical StockCondition = "critical"
	// ConditionWarning: current stock covers safety stock but is below the
	// optimal level.
	ConditionWarning StockCondition = "warning"
	// ConditionHealthy: current stock is at or above the optimal level.
	ConditionHealthy StockCondition = "healthy"
)

var conditionLabels = map[StockCondition]string{
	ConditionCritical: "Critical",
	ConditionWarning:  "Warning",
	ConditionHealthy:  "Healthy",
}

// ClassifyStock returns the condition of currentStock against the computed
// safety stock and optimal inventory levels.
func ClassifyStock(currentStock, safetyStock, optimalInventory int) StockCondition {
	switch {
	case currentStock < safetyStock:
		return ConditionCritical
	case currentStock < optimalInventory:
		return ConditionWarning
	default:
		return ConditionHealthy
	}
}

// Label returns a human-readable label for the condition.
func (c StockCondition) Label() string {
	if label, ok := conditionLabels[c]; ok {
		return label
	}

	return "Unknown"
}

// ParseCondition returns the condition for a given label (case-insensitive).
func ParseCondition(label string) (StockCondition, bool) {
	c := StockCondition(strings.ToLower(strings.TrimSpace(label)))
	_, ok := conditionLabels[c]

	return c, ok
}
