package models

import "strings"

// Spending categories. The AI tier is constrained to AICategories.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryHealth        = "Health"
	CategoryEducation     = "Education"
	CategorySalary        = "Salary"
	CategorySubscriptions = "Subscriptions"
	CategoryTransfers     = "Transfers"
	CategoryOther         = "Other"
	CategoryUncategorized = "Uncategorized"
)

// Categorization method types
const (
	CategorizationMethodRule    = "RULE"
	CategorizationMethodAI      = "AI"
	CategorizationMethodDefault = "DEFAULT"
)

// AICategories is the closed set the remote classifier may answer with.
func AICategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealth,
		CategoryEducation,
		CategorySalary,
		CategorySubscriptions,
		CategoryTransfers,
		CategoryOther,
	}
}

// AllCategories returns every category an entry may carry.
func AllCategories() []string {
	return append(AICategories(), CategoryUncategorized)
}

// CanonicalCategory matches category case-insensitively against AllCategories
// and returns the canonical spelling, or "" when unknown.
func CanonicalCategory(category string) string {
	c := strings.TrimSpace(category)
	for _, valid := range AllCategories() {
		if strings.EqualFold(c, valid) {
			return valid
		}
	}
	return ""
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	return CanonicalCategory(category) == category && category != ""
}

// IsLearnableCategory reports whether an AI answer may become a rule.
func IsLearnableCategory(category string) bool {
	return category != CategoryUncategorized && category != CategoryOther && IsValidCategory(category)
}

// CategorizationResult contains the result of transaction categorization
type CategorizationResult struct {
	Category       string  `json:"category"`
	Method         string  `json:"method"`
	Confidence     float64 `json:"confidence"`
	MatchedKeyword string  `json:"matched_keyword,omitempty"`
}

// Uncategorized is the default outcome when neither tier produces an answer.
func Uncategorized() *CategorizationResult {
	return &CategorizationResult{
		Category: CategoryUncategorized,
		Method:   CategorizationMethodDefault,
	}
}

// AIClassification is a validated answer from the remote classifier.
type AIClassification struct {
	Category   string
	Confidence float64
}
