package dto

type MonthlyReportQuery struct {
	Year  int `query:"year" validate:"required,min=1970,max=9999"`
	Month int `query:"month" validate:"required,min=1,max=12"`
}
