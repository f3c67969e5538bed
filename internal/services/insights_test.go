package services

import (
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

func (s *ReportServiceSuite) freezeAt(now time.Time) {
	s.service.(*reportService).now = func() time.Time { return now }
}

func (s *ReportServiceSuite) titles(insights []models.SpendingInsight) []string {
	titles := make([]string, len(insights))
	for i, insight := range insights {
		titles[i] = insight.Title
	}
	return titles
}

func (s *ReportServiceSuite) TestInsights_WeekAgainstBaseline() {
	s.freezeAt(time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC))
	baseline := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	thisWeek := time.Date(2025, 6, 28, 9, 0, 0, 0, time.UTC)

	s.add("5000", models.DirectionIncome, models.CategorySalary, "Salary", baseline)
	s.add("300", models.DirectionExpense, models.CategoryFood, "Magnum", baseline)
	s.add("600", models.DirectionExpense, models.CategoryTransport, "Bolt", baseline)
	s.add("150", models.DirectionExpense, models.CategoryHealth, "Pharmacy", baseline)

	s.add("140", models.DirectionExpense, models.CategoryFood, "Wolt", thisWeek)
	s.add("70", models.DirectionExpense, models.CategoryTransport, "Yandex Go", thisWeek)
	s.add("38.5", models.DirectionExpense, models.CategoryHealth, "Clinic", thisWeek)
	s.add("800", models.DirectionExpense, models.CategoryShopping, "Kaspi Magazin", thisWeek)
	s.add("100", models.DirectionExpense, models.CategoryEntertainment, "Cinema", thisWeek)

	insights, err := s.service.Insights(s.owner.ID)
	s.Require().NoError(err)
	s.Equal([]string{
		"Weekly Overview",
		"Food Spending Up",
		"New Spending: Shopping",
		"Transport Savings!",
	}, s.titles(insights))

	overview := insights[0]
	s.Equal(models.InsightAlert, overview.Type)
	s.InDelta(368.78, overview.PercentageChange, 1e-9)
	s.Contains(overview.Description, "1149")
	s.Contains(overview.Description, "245/week")

	food := insights[1]
	s.Equal(models.InsightWarning, food.Type)
	s.Equal(models.CategoryFood, food.Category)
	s.InDelta(100.0, food.PercentageChange, 1e-9)
	s.Contains(food.Description, "(140) vs your average (70/week)")

	s.Equal(models.InsightInfo, insights[2].Type)
	s.Equal(models.CategoryShopping, insights[2].Category)

	transport := insights[3]
	s.Equal(models.InsightTip, transport.Type)
	s.InDelta(-50.0, transport.PercentageChange, 1e-9)
	s.Contains(transport.SuggestedAction, "save 70 per week")
}

func (s *ReportServiceSuite) TestInsights_ModerateRiseIsAlert() {
	s.freezeAt(time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC))
	s.add("300", models.DirectionExpense, models.CategoryFood, "Magnum", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.add("91", models.DirectionExpense, models.CategoryFood, "Magnum", time.Date(2025, 6, 29, 9, 0, 0, 0, time.UTC))

	insights, err := s.service.Insights(s.owner.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Food Spending Up", "Weekly Overview"}, s.titles(insights))
	s.Equal(models.InsightAlert, insights[0].Type)
	s.InDelta(30.0, insights[0].PercentageChange, 1e-9)
}

func (s *ReportServiceSuite) TestInsights_QuietPeriodFallsBackToAllTime() {
	s.freezeAt(time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC))
	s.add("1000", models.DirectionIncome, models.CategorySalary, "Salary", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
	s.add("500", models.DirectionExpense, models.CategoryFood, "Magnum", time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC))
	s.add("100", models.DirectionExpense, models.CategoryTransport, "Bolt", time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC))

	insights, err := s.service.Insights(s.owner.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Top Category: Food", "Top Category: Transport", "Savings Rate"}, s.titles(insights))

	s.Equal(models.InsightWarning, insights[0].Type)
	s.InDelta(83.33, insights[0].PercentageChange, 1e-9)
	s.Equal(models.InsightInfo, insights[1].Type)
	s.Equal(models.InsightTip, insights[2].Type)
	s.InDelta(40.0, insights[2].PercentageChange, 1e-9)
}

func (s *ReportServiceSuite) TestInsights_SteadySpendingFallsBackToAllTime() {
	s.freezeAt(time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC))
	s.add("300", models.DirectionExpense, models.CategoryFood, "Magnum", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s.add("70", models.DirectionExpense, models.CategoryFood, "Magnum", time.Date(2025, 6, 29, 9, 0, 0, 0, time.UTC))

	insights, err := s.service.Insights(s.owner.ID)
	s.Require().NoError(err)
	s.Equal([]string{"Top Category: Food"}, s.titles(insights))
	s.InDelta(100.0, insights[0].PercentageChange, 1e-9)
}

func (s *ReportServiceSuite) TestInsights_EmptyLedger() {
	insights, err := s.service.Insights(s.owner.ID)
	s.Require().NoError(err)
	s.Require().Len(insights, 1)
	s.Equal("No Data Yet", insights[0].Title)
	s.Equal(models.InsightInfo, insights[0].Type)
}

func (s *ReportServiceSuite) TestInsights_UnknownOwner() {
	_, err := s.service.Insights(uuid.New())
	s.ErrorIs(err, apperrors.ErrNotFound)
}
