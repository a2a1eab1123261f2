package model

import "sort"

// Fixed budget names.
const (
	DailyBudgetName   = "morningcode-billing-cost-daily"
	MonthlyBudgetName = "morningcode-billing-cost-monthly"
)

// CurrencyUSD is the unit of every declared limit.
const CurrencyUSD = "USD"

// DailyBudget returns the daily cost cap: 10 USD, alert on actual spend above 80%.
func DailyBudget() BudgetSpec {
	return BudgetSpec{
		ID:       "Budget",
		Name:     DailyBudgetName,
		Type:     BudgetTypeCost,
		TimeUnit: TimeUnitDaily,
		Limit:    Spend{Amount: 10.0, Unit: CurrencyUSD},
		Rules:    RulesFor([]NotificationType{NotificationActual}, 80.0),
	}
}

// MonthlyBudget returns the monthly cost cap: 50 USD with minor (30%),
// medium (50%) and high (80%) thresholds on both actual and forecasted spend.
func MonthlyBudget() BudgetSpec {
	return BudgetSpec{
		ID:       "MonthlyBudget",
		Name:     MonthlyBudgetName,
		Type:     BudgetTypeCost,
		TimeUnit: TimeUnitMonthly,
		Limit:    Spend{Amount: 50.0, Unit: CurrencyUSD},
		Rules: RulesFor(
			[]NotificationType{NotificationActual, NotificationForecasted},
			30.0, 50.0, 80.0,
		),
	}
}

// Budgets returns every declared budget in stack order.
func Budgets() []BudgetSpec {
	return []BudgetSpec{DailyBudget(), MonthlyBudget()}
}

// RulesFor builds one "greater than percentage" SNS rule per threshold and
// signal type. Rules are ordered by threshold as given, then by signal type.
func RulesFor(types []NotificationType, thresholds ...float64) []NotificationRule {
	rules := make([]NotificationRule, 0, len(types)*len(thresholds))
	for _, threshold := range thresholds {
		for _, typ := range types {
			rules = append(rules, NotificationRule{
				Type:             typ,
				Comparison:       ComparisonGreaterThan,
				Threshold:        threshold,
				ThresholdType:    ThresholdPercentage,
				SubscriptionType: SubscriptionSNS,
			})
		}
	}
	return rules
}

// Thresholds returns the distinct rule thresholds in ascending order.
func (b BudgetSpec) Thresholds() []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, r := range b.Rules {
		if seen[r.Threshold] {
			continue
		}
		seen[r.Threshold] = true
		out = append(out, r.Threshold)
	}
	sort.Float64s(out)
	return out
}

// AlertAmount is the spend at which a rule fires.
func (b BudgetSpec) AlertAmount(r NotificationRule) float64 {
	if r.ThresholdType != ThresholdPercentage {
		return r.Threshold
	}
	return b.Limit.Amount * r.Threshold / 100
}
