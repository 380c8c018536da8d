package store

import (
	"strings"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/utils"
)

// ============================================================================
// READS (copies, safe to hand to callers)
// ============================================================================

func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Category, len(s.categories))
	for i, c := range s.categories {
		c.SubCategories = append([]models.SubCategory{}, c.SubCategories...)
		out[i] = c
	}
	return out
}

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project{}, s.projects...)
}

func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Expense{}, s.expenses...)
}

func (s *Store) Incomes() []models.Income {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Income{}, s.incomes...)
}

// FindCategory looks a category up by id.
func (s *Store) FindCategory(id string) (models.Category, bool) {
	for _, c := range s.Categories() {
		if c.CategoryID == id {
			return c, true
		}
	}
	return models.Category{}, false
}

func (s *Store) FindProject(id string) (models.Project, bool) {
	for _, p := range s.Projects() {
		if p.ProjectID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// FilterExpenses matches query case-insensitively against the description
// and the category name. An expense with neither never matches, even for an
// empty query. Category "" or "all" disables the category filter.
func (s *Store) FilterExpenses(query, category string) []models.Expense {
	query = strings.ToLower(query)
	out := []models.Expense{}
	for _, e := range s.Expenses() {
		if category != "" && category != "all" && e.CategoryName() != category {
			continue
		}
		descMatch := e.Description != nil && strings.Contains(strings.ToLower(*e.Description), query)
		catMatch := e.Categories != nil && strings.Contains(strings.ToLower(e.Categories.CategoryName), query)
		if !descMatch && !catMatch {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ============================================================================
// MUTATIONS
// ============================================================================

// AddExpense prepends a new expense.
func (s *Store) AddExpense(details models.ExpenseDetails) models.Expense {
	e := models.Expense{ExpenseID: s.newID(), ExpenseDetails: details}

	s.mu.Lock()
	s.expenses = append([]models.Expense{e}, s.expenses...)
	s.mu.Unlock()

	utils.LogLedgerAction("added", "expense", e.ExpenseID)
	s.notifier.Notify(Event{Type: EventExpenseAdded, ID: e.ExpenseID})
	return e
}

// DeleteExpense removes every expense with the given id. Unknown ids are a no-op.
func (s *Store) DeleteExpense(id string) {
	s.mu.Lock()
	kept := make([]models.Expense, 0, len(s.expenses))
	for _, e := range s.expenses {
		if e.ExpenseID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	s.mu.Unlock()

	utils.LogLedgerAction("deleted", "expense", id)
	s.notifier.Notify(Event{Type: EventExpenseDeleted, ID: id})
}

// AddProject prepends a new project.
func (s *Store) AddProject(details models.ProjectDetails) models.Project {
	p := models.Project{ProjectID: s.newID(), ProjectDetails: details}

	s.mu.Lock()
	s.projects = append([]models.Project{p}, s.projects...)
	s.mu.Unlock()

	utils.LogLedgerAction("added", "project", p.ProjectID)
	s.notifier.Notify(Event{Type: EventProjectAdded, ID: p.ProjectID})
	return p
}

// AddCategory appends an active category with no subcategories. Its sequence
// is the current count plus one.
func (s *Store) AddCategory(name string) models.Category {
	s.mu.Lock()
	c := models.Category{
		CategoryID:    s.newID(),
		CategoryName:  name,
		Sequence:      len(s.categories) + 1,
		IsActive:      true,
		SubCategories: []models.SubCategory{},
	}
	s.categories = append(s.categories, c)
	s.mu.Unlock()

	utils.LogLedgerAction("added", "category", c.CategoryID)
	s.notifier.Notify(Event{Type: EventCategoryAdded, ID: c.CategoryID})
	return c
}

// AddIncome prepends a new income.
func (s *Store) AddIncome(details models.IncomeDetails) models.Income {
	in := models.Income{IncomeID: s.newID(), IncomeDetails: details}

	s.mu.Lock()
	s.incomes = append([]models.Income{in}, s.incomes...)
	s.mu.Unlock()

	utils.LogLedgerAction("added", "income", in.IncomeID)
	s.notifier.Notify(Event{Type: EventIncomeAdded, ID: in.IncomeID})
	return in
}
