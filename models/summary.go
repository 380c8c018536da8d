package models

import "github.com/shopspring/decimal"

// LedgerSummary backs the dashboard and analytics views.
type LedgerSummary struct {
	TotalIncome    decimal.Decimal   `json:"total_income"`
	TotalExpenses  decimal.Decimal   `json:"total_expenses"`
	Balance        decimal.Decimal   `json:"balance"`
	ProjectCount   int               `json:"project_count"`
	ActiveProjects int               `json:"active_projects"`
	ByCategory     []CategoryTotal   `json:"by_category"`
	ByProject      []ProjectProgress `json:"by_project"`
	Monthly        []MonthlyTotal    `json:"monthly"`
}

type CategoryTotal struct {
	CategoryName string          `json:"category_name"`
	Total        decimal.Decimal `json:"total"`
	Count        int             `json:"count"`
}

type ProjectProgress struct {
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
}

type MonthlyTotal struct {
	Month    string          `json:"month"` // YYYY-MM
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}
