package store

import (
	"strconv"

	"github.com/expensex/expensex-api/models"
	"github.com/shopspring/decimal"
)

// Built-in accounts. Both sign in with DefaultBuiltinPassword.
var builtinAccounts = []models.Identity{
	{ID: "1", Email: "admin@example.com", FullName: "Admin User", Role: models.RoleAdmin},
	{ID: "2", Email: "user@example.com", FullName: "Regular User", Role: models.RoleUser},
}

const DefaultBuiltinPassword = "Test@1234"

func strPtr(s string) *string { return &s }

func amount(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func seedCategories() []models.Category {
	cat := func(id, name string, seq int, subs ...string) models.Category {
		c := models.Category{
			CategoryID:    id,
			CategoryName:  name,
			Sequence:      seq,
			IsActive:      true,
			SubCategories: make([]models.SubCategory, 0, len(subs)),
		}
		for i, sub := range subs {
			c.SubCategories = append(c.SubCategories, models.SubCategory{
				SubCategoryID:   id + "-" + strconv.Itoa(i+1),
				SubCategoryName: sub,
				Sequence:        i + 1,
			})
		}
		return c
	}

	return []models.Category{
		cat("1", "Food & Dining", 1, "Groceries", "Restaurants", "Coffee Shops"),
		cat("2", "Transportation", 2, "Gas", "Public Transit", "Ride Share"),
		cat("3", "Shopping", 3, "Clothing", "Electronics"),
		cat("4", "Entertainment", 4, "Movies", "Games", "Streaming"),
		cat("5", "Bills & Utilities", 5, "Electricity", "Internet", "Phone"),
		cat("6", "Healthcare", 6, "Doctor", "Pharmacy"),
	}
}

func seedProjects() []models.Project {
	return []models.Project{
		{ProjectID: "1", ProjectDetails: models.ProjectDetails{
			ProjectName:        "Home Renovation",
			ProjectDescription: strPtr("Kitchen and bathroom upgrades"),
			ProjectStartDate:   "2025-01-01",
			ProjectEndDate:     strPtr("2025-06-30"),
			Budget:             amount("15000"),
			IsActive:           true,
		}},
		{ProjectID: "2", ProjectDetails: models.ProjectDetails{
			ProjectName:        "Vacation Fund",
			ProjectDescription: strPtr("Summer trip to Europe"),
			ProjectStartDate:   "2025-01-01",
			ProjectEndDate:     strPtr("2025-08-01"),
			Budget:             amount("5000"),
			IsActive:           true,
		}},
		{ProjectID: "3", ProjectDetails: models.ProjectDetails{
			ProjectName:        "Emergency Fund",
			ProjectDescription: strPtr("Building 6-month emergency savings"),
			ProjectStartDate:   "2025-01-01",
			Budget:             amount("20000"),
			IsActive:           true,
		}},
	}
}

func seedExpenses() []models.Expense {
	exp := func(id, amt, date, desc, categoryID, categoryName, sub string) models.Expense {
		e := models.Expense{ExpenseID: id, ExpenseDetails: models.ExpenseDetails{
			Amount:      amount(amt),
			ExpenseDate: date,
			Description: strPtr(desc),
			CategoryID:  strPtr(categoryID),
			Categories:  &models.CategoryRef{CategoryName: categoryName},
		}}
		if sub != "" {
			e.SubCategories = &models.SubCategoryRef{SubCategoryName: sub}
		}
		return e
	}

	renovation := exp("4", "2500.00", "2025-01-10", "Kitchen countertops", "3", "Shopping", "")
	renovation.ProjectID = strPtr("1")
	renovation.Projects = &models.ProjectRef{ProjectName: "Home Renovation"}

	return []models.Expense{
		exp("1", "125.50", "2025-01-14", "Weekly groceries", "1", "Food & Dining", "Groceries"),
		exp("2", "45.00", "2025-01-13", "Gas fill-up", "2", "Transportation", "Gas"),
		exp("3", "89.99", "2025-01-12", "Netflix + Spotify subscriptions", "4", "Entertainment", "Streaming"),
		renovation,
		exp("5", "150.00", "2025-01-08", "Electric bill", "5", "Bills & Utilities", "Electricity"),
	}
}

func seedIncomes() []models.Income {
	inc := func(id, amt, date, desc string) models.Income {
		return models.Income{IncomeID: id, IncomeDetails: models.IncomeDetails{
			Amount:      amount(amt),
			IncomeDate:  date,
			Description: strPtr(desc),
		}}
	}

	return []models.Income{
		inc("1", "5500", "2025-01-01", "Monthly Salary"),
		inc("2", "500", "2025-01-05", "Freelance project"),
		inc("3", "5500", "2024-12-01", "Monthly Salary"),
		inc("4", "5500", "2024-11-01", "Monthly Salary"),
		inc("5", "800", "2024-11-15", "Bonus"),
	}
}
