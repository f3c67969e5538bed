package models

import "github.com/shopspring/decimal"

// CategorySummary is one row of the per-category expense breakdown.
type CategorySummary struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int64           `json:"count"`
}

// MonthlySummary aggregates one owner's ledger for a calendar month.
type MonthlySummary struct {
	Year       int               `json:"year"`
	Month      int               `json:"month"`
	Income     decimal.Decimal   `json:"income"`
	Expense    decimal.Decimal   `json:"expense"`
	Net        decimal.Decimal   `json:"net"`
	ByCategory []CategorySummary `json:"by_category"`
}

type InsightType string

const (
	InsightInfo    InsightType = "INFO"
	InsightTip     InsightType = "TIP"
	InsightAlert   InsightType = "ALERT"
	InsightWarning InsightType = "WARNING"
)

// SpendingInsight is one observation about recent spending. PercentageChange
// is the change against the baseline, or a share of spending for the all-time
// breakdown.
type SpendingInsight struct {
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	SuggestedAction  string      `json:"suggested_action"`
	Type             InsightType `json:"type"`
	Category         string      `json:"category,omitempty"`
	PercentageChange float64     `json:"percentage_change"`
}
