package trip

// Budget categories, ordered.
const (
	BudgetLow         = "Budget"
	BudgetMidRange    = "Mid-range"
	BudgetComfortable = "Comfortable"
	BudgetLuxury      = "Luxury"
)

// ClassifyBudget maps a numeric daily budget onto an ordinal category.
// Category strings pass through unchanged. The thresholds are fixed
// currency-unit constants kept for compatibility with stored itineraries.
func ClassifyBudget(budget any) string {
	var amount float64
	switch v := budget.(type) {
	case float64:
		amount = v
	case int:
		amount = float64(v)
	case string:
		return v
	default:
		return ""
	}

	switch {
	case amount < 6000:
		return BudgetLow
	case amount < 16000:
		return BudgetMidRange
	case amount < 25000:
		return BudgetComfortable
	default:
		return BudgetLuxury
	}
}
