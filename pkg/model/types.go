package model

import "time"

// TimeUnit defines the time window a budget is evaluated over.
type TimeUnit string

const (
	TimeUnitDaily   TimeUnit = "DAILY"
	TimeUnitMonthly TimeUnit = "MONTHLY"
)

// BudgetType is the kind of spend a budget tracks.
type BudgetType string

const BudgetTypeCost BudgetType = "COST"

// NotificationType selects which spend signal a rule compares.
type NotificationType string

const (
	NotificationActual     NotificationType = "ACTUAL"
	NotificationForecasted NotificationType = "FORECASTED"
)

// ComparisonOperator compares spend against a threshold.
type ComparisonOperator string

const ComparisonGreaterThan ComparisonOperator = "GREATER_THAN"

// ThresholdType defines how a rule's threshold is interpreted.
type ThresholdType string

const ThresholdPercentage ThresholdType = "PERCENTAGE"

// SubscriptionType is the delivery channel of a rule subscriber.
type SubscriptionType string

const SubscriptionSNS SubscriptionType = "SNS"

// Spend is a budget limit.
type Spend struct {
	Amount float64 `json:"amount" yaml:"amount"`
	Unit   string  `json:"unit" yaml:"unit"`
}

// NotificationRule pairs a trigger condition with the shared alert topic.
// The subscriber address is bound when the rule is turned into a resource.
type NotificationRule struct {
	Type             NotificationType   `json:"notification_type" yaml:"notification_type"`
	Comparison       ComparisonOperator `json:"comparison_operator" yaml:"comparison_operator"`
	Threshold        float64            `json:"threshold" yaml:"threshold"`
	ThresholdType    ThresholdType      `json:"threshold_type" yaml:"threshold_type"`
	SubscriptionType SubscriptionType   `json:"subscription_type" yaml:"subscription_type"`
}

// BudgetSpec declares one cost budget and its notification rules.
type BudgetSpec struct {
	// ID is the construct id of the budget within the stack.
	ID       string             `json:"id" yaml:"id"`
	Name     string             `json:"name" yaml:"name"`
	Type     BudgetType         `json:"budget_type" yaml:"budget_type"`
	TimeUnit TimeUnit           `json:"time_unit" yaml:"time_unit"`
	Limit    Spend              `json:"limit" yaml:"limit"`
	Rules    []NotificationRule `json:"rules" yaml:"rules"`
}

// SynthRecord is one synthesis run kept in the ledger.
type SynthRecord struct {
	ID            string    `json:"id" db:"id"`
	Stack         string    `json:"stack" db:"stack"`
	Account       string    `json:"account" db:"account"`
	Region        string    `json:"region" db:"region"`
	Digest        string    `json:"digest" db:"digest"`
	ResourceCount int       `json:"resource_count" db:"resource_count"`
	MissingLookup int       `json:"missing_lookups" db:"missing_lookups"`
	OutDir        string    `json:"outdir,omitempty" db:"outdir"`
	Timestamp     time.Time `json:"timestamp" db:"timestamp"`
}

// HistoryFilter controls which synthesis runs are listed.
type HistoryFilter struct {
	Stack   string `json:"stack,omitempty"`
	Account string `json:"account,omitempty"`
	Region  string `json:"region,omitempty"`
	Limit   int    `json:"limit,omitempty"`
}
