package store

import (
	"sort"

	"github.com/expensex/expensex-api/models"
	"github.com/shopspring/decimal"
)

const uncategorized = "Uncategorized"

// Summary aggregates the current ledger for the dashboard.
func (s *Store) Summary() models.LedgerSummary {
	expenses := s.Expenses()
	incomes := s.Incomes()
	projects := s.Projects()

	sum := models.LedgerSummary{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		ProjectCount:  len(projects),
		ByCategory:    []models.CategoryTotal{},
		ByProject:     []models.ProjectProgress{},
		Monthly:       []models.MonthlyTotal{},
	}

	byCategory := map[string]*models.CategoryTotal{}
	byMonth := map[string]*models.MonthlyTotal{}
	spent := map[string]decimal.Decimal{}

	month := func(date string) *models.MonthlyTotal {
		key := date
		if len(key) >= 7 {
			key = key[:7]
		}
		m, ok := byMonth[key]
		if !ok {
			m = &models.MonthlyTotal{Month: key, Income: decimal.Zero, Expenses: decimal.Zero}
			byMonth[key] = m
		}
		return m
	}

	for _, e := range expenses {
		sum.TotalExpenses = sum.TotalExpenses.Add(e.Amount)

		name := e.CategoryName()
		if name == "" {
			name = uncategorized
		}
		ct, ok := byCategory[name]
		if !ok {
			ct = &models.CategoryTotal{CategoryName: name, Total: decimal.Zero}
			byCategory[name] = ct
		}
		ct.Total = ct.Total.Add(e.Amount)
		ct.Count++

		if e.ProjectID != nil {
			spent[*e.ProjectID] = spent[*e.ProjectID].Add(e.Amount)
		}

		m := month(e.ExpenseDate)
		m.Expenses = m.Expenses.Add(e.Amount)
	}

	for _, in := range incomes {
		sum.TotalIncome = sum.TotalIncome.Add(in.Amount)
		m := month(in.IncomeDate)
		m.Income = m.Income.Add(in.Amount)
	}

	sum.Balance = sum.TotalIncome.Sub(sum.TotalExpenses)

	for _, p := range projects {
		if p.IsActive {
			sum.ActiveProjects++
		}
		used := spent[p.ProjectID]
		sum.ByProject = append(sum.ByProject, models.ProjectProgress{
			ProjectID:   p.ProjectID,
			ProjectName: p.ProjectName,
			Budget:      p.Budget,
			Spent:       used,
			Remaining:   p.Budget.Sub(used),
		})
	}

	for _, ct := range byCategory {
		sum.ByCategory = append(sum.ByCategory, *ct)
	}
	sort.Slice(sum.ByCategory, func(i, j int) bool {
		a, b := sum.ByCategory[i], sum.ByCategory[j]
		if c := a.Total.Cmp(b.Total); c != 0 {
			return c > 0
		}
		return a.CategoryName < b.CategoryName
	})

	for _, m := range byMonth {
		sum.Monthly = append(sum.Monthly, *m)
	}
	sort.Slice(sum.Monthly, func(i, j int) bool {
		return sum.Monthly[i].Month < sum.Monthly[j].Month
	})

	return sum
}
