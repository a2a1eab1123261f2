package model_test

import (
	"testing"

	"github.com/ogulcanaydogan/aws-budget-notification-bot/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyBudget(t *testing.T) {
	b := model.DailyBudget()
	assert.Equal(t, model.DailyBudgetName, b.Name)
	assert.Equal(t, model.BudgetTypeCost, b.Type)
	assert.Equal(t, model.TimeUnitDaily, b.TimeUnit)
	assert.Equal(t, model.Spend{Amount: 10, Unit: "USD"}, b.Limit)

	require.Len(t, b.Rules, 1)
	assert.Equal(t, model.NotificationRule{
		Type:             model.NotificationActual,
		Comparison:       model.ComparisonGreaterThan,
		Threshold:        80,
		ThresholdType:    model.ThresholdPercentage,
		SubscriptionType: model.SubscriptionSNS,
	}, b.Rules[0])
}

func TestMonthlyBudget(t *testing.T) {
	b := model.MonthlyBudget()
	assert.Equal(t, model.MonthlyBudgetName, b.Name)
	assert.Equal(t, model.TimeUnitMonthly, b.TimeUnit)
	assert.Equal(t, 50.0, b.Limit.Amount)
	require.Len(t, b.Rules, 6)

	type key struct {
		typ       model.NotificationType
		threshold float64
	}
	got := make(map[key]int)
	for _, r := range b.Rules {
		assert.Equal(t, model.ComparisonGreaterThan, r.Comparison)
		assert.Equal(t, model.ThresholdPercentage, r.ThresholdType)
		got[key{r.Type, r.Threshold}]++
	}
	for _, th := range []float64{30, 50, 80} {
		assert.Equal(t, 1, got[key{model.NotificationActual, th}], "actual %v", th)
		assert.Equal(t, 1, got[key{model.NotificationForecasted, th}], "forecasted %v", th)
	}
	assert.Equal(t, []float64{30, 50, 80}, b.Thresholds())
}

func TestBudgets_UniqueNamesAndIDs(t *testing.T) {
	names := make(map[string]bool)
	ids := make(map[string]bool)
	for _, b := range model.Budgets() {
		assert.False(t, names[b.Name], "duplicate name %s", b.Name)
		assert.False(t, ids[b.ID], "duplicate id %s", b.ID)
		names[b.Name] = true
		ids[b.ID] = true
	}
	assert.Len(t, names, 2)
}

func TestBudgets_FreshCopies(t *testing.T) {
	first := model.Budgets()
	first[1].Rules[0].Threshold = 99

	second := model.Budgets()
	assert.Equal(t, 30.0, second[1].Rules[0].Threshold)
}

func TestRulesFor_Order(t *testing.T) {
	rules := model.RulesFor([]model.NotificationType{model.NotificationActual, model.NotificationForecasted}, 30, 50)
	require.Len(t, rules, 4)
	assert.Equal(t, model.NotificationActual, rules[0].Type)
	assert.Equal(t, 30.0, rules[0].Threshold)
	assert.Equal(t, model.NotificationForecasted, rules[1].Type)
	assert.Equal(t, 30.0, rules[1].Threshold)
	assert.Equal(t, 50.0, rules[2].Threshold)
	assert.Empty(t, model.RulesFor(nil, 10))
}

func TestAlertAmount(t *testing.T) {
	b := model.MonthlyBudget()
	assert.InDelta(t, 15.0, b.AlertAmount(b.Rules[0]), 0.0001)
	assert.InDelta(t, 40.0, b.AlertAmount(b.Rules[5]), 0.0001)

	abs := model.NotificationRule{Threshold: 7, ThresholdType: "ABSOLUTE_VALUE"}
	assert.Equal(t, 7.0, b.AlertAmount(abs))
}
