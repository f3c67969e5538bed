package services

import (
	"fmt"
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	insightWindow    = 7 * 24 * time.Hour
	baselineDays     = 30
	topCategoryLimit = 3
)

var (
	// A category with no baseline is only worth mentioning above this spend.
	newCategoryThreshold = decimal.NewFromInt(500)

	categoryChangePercent = 20.0
	totalChangePercent    = 10.0
	warningChangePercent  = 50.0
	topCategoryWarnShare  = 40.0
	healthySavingsRate    = 20.0

	// allTime bounds the fallback breakdown.
	allTimeFrom = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	allTimeTo   = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
)

// Insights compares the last seven days of expenses against the weekly
// average of the thirty days before them and reports new, rising and falling
// categories plus the overall trend, most significant first. With no recent
// activity, or nothing notable in it, it describes all-time spending instead.
func (s *reportService) Insights(ownerID uuid.UUID) ([]models.SpendingInsight, error) {
	if _, err := s.userRepo.GetByID(ownerID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	weekStart := now.Add(-insightWindow)
	baselineStart := weekStart.AddDate(0, 0, -baselineDays)

	weekIncome, weekExpense, err := s.ledgerRepo.Totals(ownerID, weekStart, now)
	if err != nil {
		return nil, err
	}
	baseIncome, baseExpense, err := s.ledgerRepo.Totals(ownerID, baselineStart, weekStart)
	if err != nil {
		return nil, err
	}

	if weekIncome.IsZero() && weekExpense.IsZero() && baseIncome.IsZero() && baseExpense.IsZero() {
		return s.allTimeInsights(ownerID)
	}

	weekByCategory, err := s.expensesByCategory(ownerID, weekStart, now)
	if err != nil {
		return nil, err
	}
	baseByCategory, err := s.expensesByCategory(ownerID, baselineStart, weekStart)
	if err != nil {
		return nil, err
	}

	categories := make([]string, 0, len(weekByCategory)+len(baseByCategory))
	for category := range weekByCategory {
		categories = append(categories, category)
	}
	for category := range baseByCategory {
		if _, ok := weekByCategory[category]; !ok {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	insights := []models.SpendingInsight{}
	for _, category := range categories {
		spent := weekByCategory[category]
		average := weeklyAverage(baseByCategory[category])

		if average.IsZero() {
			if spent.GreaterThan(newCategoryThreshold) {
				insights = append(insights, models.SpendingInsight{
					Title:            "New Spending: " + category,
					Description:      fmt.Sprintf("You spent %s on %s this week, a new category for you.", wholeAmount(spent), category),
					SuggestedAction:  "Track this category to see if it becomes a habit.",
					Type:             models.InsightInfo,
					Category:         category,
					PercentageChange: 100,
				})
			}
			continue
		}

		change := percentChange(spent, average)
		switch {
		case change > categoryChangePercent:
			insightType := models.InsightAlert
			if change > warningChangePercent {
				insightType = models.InsightWarning
			}
			insights = append(insights, models.SpendingInsight{
				Title: category + " Spending Up",
				Description: fmt.Sprintf("You spent %.0f%% more on %s this week (%s) vs your average (%s/week).",
					change, category, wholeAmount(spent), wholeAmount(average)),
				SuggestedAction:  "Consider setting a weekly budget limit for " + category + ".",
				Type:             insightType,
				Category:         category,
				PercentageChange: change,
			})
		case change < -categoryChangePercent:
			insights = append(insights, models.SpendingInsight{
				Title:            category + " Savings!",
				Description:      fmt.Sprintf("Great job! You spent %.0f%% less on %s this week.", -change, category),
				SuggestedAction:  fmt.Sprintf("Keep it up! You could save %s per week at this rate.", wholeAmount(average.Sub(spent))),
				Type:             models.InsightTip,
				Category:         category,
				PercentageChange: change,
			})
		}
	}

	if average := weeklyAverage(baseExpense); average.IsPositive() {
		change := percentChange(weekExpense, average)
		if change > totalChangePercent || change < -totalChangePercent {
			overview := models.SpendingInsight{
				Title: "Weekly Overview",
				Description: fmt.Sprintf("Total spending this week: %s (%+.0f%% vs avg of %s/week).",
					wholeAmount(weekExpense), change, wholeAmount(average)),
				SuggestedAction:  "You're trending below your usual spending. Great discipline!",
				Type:             models.InsightTip,
				PercentageChange: change,
			}
			if change > 0 {
				overview.SuggestedAction = "Review your top spending categories to find potential savings."
				overview.Type = models.InsightAlert
			}
			insights = append(insights, overview)
		}
	}

	if len(insights) == 0 {
		return s.allTimeInsights(ownerID)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return absFloat(insights[i].PercentageChange) > absFloat(insights[j].PercentageChange)
	})

	s.logger.Debug("insights generated", "user_id", ownerID, "count", len(insights))
	return insights, nil
}

// allTimeInsights describes the top spending categories and the savings rate
// across the whole ledger.
func (s *reportService) allTimeInsights(ownerID uuid.UUID) ([]models.SpendingInsight, error) {
	income, expense, err := s.ledgerRepo.Totals(ownerID, allTimeFrom, allTimeTo)
	if err != nil {
		return nil, err
	}

	if income.IsZero() && expense.IsZero() {
		return []models.SpendingInsight{{
			Title:           "No Data Yet",
			Description:     "Start adding transactions to get personalized spending insights.",
			SuggestedAction: "Add your first transaction or connect your bank.",
			Type:            models.InsightInfo,
		}}, nil
	}

	insights := []models.SpendingInsight{}
	if expense.IsPositive() {
		breakdown, err := s.ledgerRepo.CategoryBreakdown(ownerID, allTimeFrom, allTimeTo)
		if err != nil {
			return nil, err
		}
		for i, row := range breakdown {
			if i == topCategoryLimit {
				break
			}
			share := row.Total.Div(expense).Round(4).Mul(decimal.NewFromInt(100)).InexactFloat64()
			insightType := models.InsightInfo
			if share > topCategoryWarnShare {
				insightType = models.InsightWarning
			}
			insights = append(insights, models.SpendingInsight{
				Title:            "Top Category: " + row.Category,
				Description:      fmt.Sprintf("%s accounts for %.0f%% of your total spending (%s).", row.Category, share, wholeAmount(row.Total)),
				SuggestedAction:  "Set a budget limit for " + row.Category + " to control spending.",
				Type:             insightType,
				Category:         row.Category,
				PercentageChange: share,
			})
		}
	}

	if income.IsPositive() && expense.IsPositive() {
		rate := income.Sub(expense).Div(income).Round(4).Mul(decimal.NewFromInt(100)).InexactFloat64()
		insight := models.SpendingInsight{
			Title: "Savings Rate",
			Description: fmt.Sprintf("Your savings rate is %.0f%% (income: %s, spending: %s).",
				rate, wholeAmount(income), wholeAmount(expense)),
			SuggestedAction:  "Try to increase your savings rate to at least 20%.",
			Type:             models.InsightWarning,
			PercentageChange: rate,
		}
		if rate > healthySavingsRate {
			insight.SuggestedAction = "Great savings rate! Keep it up."
			insight.Type = models.InsightTip
		}
		insights = append(insights, insight)
	}

	return insights, nil
}

func (s *reportService) expensesByCategory(ownerID uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error) {
	breakdown, err := s.ledgerRepo.CategoryBreakdown(ownerID, from, to)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]decimal.Decimal, len(breakdown))
	for _, row := range breakdown {
		totals[row.Category] = row.Total
	}
	return totals, nil
}

// weeklyAverage spreads a thirty-day total over weeks, rounded to cents.
func weeklyAverage(total decimal.Decimal) decimal.Decimal {
	return total.Mul(decimal.NewFromInt(7)).Div(decimal.NewFromInt(baselineDays)).Round(2)
}

func percentChange(current, baseline decimal.Decimal) float64 {
	return current.Sub(baseline).Div(baseline).Round(4).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func wholeAmount(amount decimal.Decimal) string {
	return amount.Round(0).String()
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
