package model

// Category represents an expense or income category.
type Category struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	ID          int64  `json:"id"`
	BudgetLimit Amount `json:"budget_limit"`
	IsIncome    bool   `json:"is_income"`
}

// CategoryBudgetStat is one row of the per-category monthly spending report.
type CategoryBudgetStat struct {
	Category string `json:"category"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	ID       int64  `json:"id"`
	Amount   Amount `json:"amount"`
	Budget   Amount `json:"budget"`
}
