package model

// DaySpend is one day's bucket in the weekly spending series.
type DaySpend struct {
	Day      string `json:"day"`
	FullDate string `json:"full_date"`
	Amount   Amount `json:"amount"`
}

// DashboardStats is the pre-aggregated home screen summary.
type DashboardStats struct {
	RecentTransactions []Transaction `json:"recent_transactions"`
	WeeklySpending     []DaySpend    `json:"weekly_spending"`
	Balance            Amount        `json:"balance"`
	Income             Amount        `json:"income"`
	Expense            Amount        `json:"expense"`
	MonthChange        Amount        `json:"month_change"`
	TotalBudget        Amount        `json:"total_budget"`
}

// CategoryShare is one slice of the analytics category distribution.
type CategoryShare struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Value Amount `json:"value"`
}

// TrendPoint is one month in the analytics spending trend.
type TrendPoint struct {
	Month  string `json:"month"`
	Amount Amount `json:"amount"`
}

// AnalyticsSummary holds the headline analytics figures.
type AnalyticsSummary struct {
	TotalSpent       Amount `json:"total_spent"`
	AvgDaily         Amount `json:"avg_daily"`
	TransactionCount int64  `json:"transaction_count"`
}

// AnalyticsStats is the pre-aggregated statistics screen payload.
type AnalyticsStats struct {
	CategoryDistribution []CategoryShare  `json:"category_distribution"`
	MonthlyTrend         []TrendPoint     `json:"monthly_trend"`
	Summary              AnalyticsSummary `json:"summary"`
}
