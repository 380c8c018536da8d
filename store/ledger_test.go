package store

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/expensex/expensex-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededCollections(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())

	categories := s.Categories()
	require.Len(t, categories, 6)
	assert.Equal(t, "Food & Dining", categories[0].CategoryName)
	assert.Equal(t, "1-1", categories[0].SubCategories[0].SubCategoryID)
	assert.Equal(t, "Groceries", categories[0].SubCategories[0].SubCategoryName)

	assert.Len(t, s.Projects(), 3)
	assert.Len(t, s.Expenses(), 5)
	assert.Len(t, s.Incomes(), 5)
}

func TestReadsReturnCopies(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())

	categories := s.Categories()
	categories[0].CategoryName = "changed"
	categories[0].SubCategories[0].SubCategoryName = "changed"

	fresh := s.Categories()
	assert.Equal(t, "Food & Dining", fresh[0].CategoryName)
	assert.Equal(t, "Groceries", fresh[0].SubCategories[0].SubCategoryName)

	expenses := s.Expenses()
	expenses[0].ExpenseID = "changed"
	assert.NotEqual(t, "changed", s.Expenses()[0].ExpenseID)
}

func TestAddExpense_PrependsAndNotifies(t *testing.T) {
	s, rec := newTestStore(t, NewMemorySlots())

	e := s.AddExpense(models.ExpenseDetails{
		Amount:      decimal.RequireFromString("12.34"),
		ExpenseDate: "2025-01-20",
		Description: strPtr("Lunch"),
	})
	assert.NotEmpty(t, e.ExpenseID)

	expenses := s.Expenses()
	require.Len(t, expenses, 6)
	assert.Equal(t, e.ExpenseID, expenses[0].ExpenseID)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("12.34")))
	assert.Equal(t, []string{EventExpenseAdded}, rec.types())
}

func TestAddThenDeleteExpense(t *testing.T) {
	s, rec := newTestStore(t, NewMemorySlots())
	before := s.Expenses()

	e := s.AddExpense(models.ExpenseDetails{Amount: decimal.NewFromInt(5), ExpenseDate: "2025-01-20"})
	s.DeleteExpense(e.ExpenseID)

	assert.Equal(t, before, s.Expenses())
	assert.Equal(t, []string{EventExpenseAdded, EventExpenseDeleted}, rec.types())
}

func TestDeleteExpense_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())
	before := s.Expenses()

	s.DeleteExpense("does-not-exist")
	assert.Equal(t, before, s.Expenses())
}

func TestAddProjectAndIncome_Prepend(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())

	p := s.AddProject(models.ProjectDetails{
		ProjectName:      "Garden",
		ProjectStartDate: "2025-02-01",
		Budget:           decimal.NewFromInt(1000),
		IsActive:         true,
	})
	assert.Equal(t, p.ProjectID, s.Projects()[0].ProjectID)
	assert.Len(t, s.Projects(), 4)

	in := s.AddIncome(models.IncomeDetails{Amount: decimal.NewFromInt(250), IncomeDate: "2025-02-02"})
	assert.Equal(t, in.IncomeID, s.Incomes()[0].IncomeID)
	assert.Len(t, s.Incomes(), 6)
}

func TestAddCategory_AppendsWithNextSequence(t *testing.T) {
	s, rec := newTestStore(t, NewMemorySlots())

	c := s.AddCategory("Pets")
	assert.Equal(t, "Pets", c.CategoryName)
	assert.Equal(t, 7, c.Sequence)
	assert.True(t, c.IsActive)
	assert.Nil(t, c.LogoPath)
	assert.Empty(t, c.SubCategories)

	next := s.AddCategory("Travel")
	assert.Equal(t, 8, next.Sequence)
	assert.NotEqual(t, c.CategoryID, next.CategoryID)

	categories := s.Categories()
	assert.Equal(t, "Travel", categories[len(categories)-1].CategoryName)
	assert.Equal(t, []string{EventCategoryAdded, EventCategoryAdded}, rec.types())
}

func TestFindCategoryAndProject(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())

	c, ok := s.FindCategory("2")
	require.True(t, ok)
	assert.Equal(t, "Transportation", c.CategoryName)

	_, ok = s.FindCategory("99")
	assert.False(t, ok)

	p, ok := s.FindProject("1")
	require.True(t, ok)
	assert.Equal(t, "Home Renovation", p.ProjectName)

	_, ok = s.FindProject("99")
	assert.False(t, ok)
}

func TestFilterExpenses(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())

	tests := []struct {
		name     string
		query    string
		category string
		wantIDs  []string
	}{
		{name: "no filter", wantIDs: []string{"1", "2", "3", "4", "5"}},
		{name: "all category", category: "all", wantIDs: []string{"1", "2", "3", "4", "5"}},
		{name: "description match", query: "GROCERIES", wantIDs: []string{"1"}},
		{name: "category name match", query: "transport", wantIDs: []string{"2"}},
		{name: "category filter", category: "Shopping", wantIDs: []string{"4"}},
		{name: "query and category", query: "bill", category: "Bills & Utilities", wantIDs: []string{"5"}},
		{name: "query excluded by category", query: "bill", category: "Shopping", wantIDs: []string{}},
		{name: "no match", query: "zzz", wantIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, e := range s.FilterExpenses(tt.query, tt.category) {
				got = append(got, e.ExpenseID)
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestIDs_AreCreationMillis(t *testing.T) {
	fixed := time.UnixMilli(1736942400123)
	clock := func() time.Time { return fixed }

	s := New(Options{Clock: clock})
	require.NoError(t, s.Init(context.Background()))
	before := s.Expenses()

	first := s.AddExpense(models.ExpenseDetails{Amount: decimal.NewFromInt(1), ExpenseDate: "2025-01-15"})
	second := s.AddExpense(models.ExpenseDetails{Amount: decimal.NewFromInt(2), ExpenseDate: "2025-01-15"})

	want := strconv.FormatInt(clock().UnixMilli(), 10)
	assert.Equal(t, "1736942400123", want)
	assert.Equal(t, want, first.ExpenseID)
	assert.Equal(t, want, second.ExpenseID, "same millisecond, same id")
	assert.Len(t, s.Expenses(), len(before)+2)

	// one delete removes every record sharing the id
	s.DeleteExpense(want)
	assert.Equal(t, before, s.Expenses())

	assert.Equal(t, want, s.AddProject(models.ProjectDetails{ProjectName: "P", ProjectStartDate: "2025-01-15"}).ProjectID)
	assert.Equal(t, want, s.AddIncome(models.IncomeDetails{Amount: decimal.NewFromInt(3), IncomeDate: "2025-01-15"}).IncomeID)
	assert.Equal(t, want, s.AddCategory("Fixed").CategoryID)
}

func TestFilterExpenses_DropsUndescribedUncategorized(t *testing.T) {
	s, _ := newTestStore(t, NewMemorySlots())

	bare := s.AddExpense(models.ExpenseDetails{Amount: decimal.NewFromInt(9), ExpenseDate: "2025-01-20"})
	described := s.AddExpense(models.ExpenseDetails{Amount: decimal.NewFromInt(9), ExpenseDate: "2025-01-20", Description: strPtr("")})

	ids := map[string]bool{}
	for _, e := range s.FilterExpenses("", "") {
		ids[e.ExpenseID] = true
	}
	assert.False(t, ids[bare.ExpenseID], "no description and no category never matches")
	assert.True(t, ids[described.ExpenseID], "an empty description matches an empty query")
	assert.Len(t, ids, 6)

	// the unfiltered collection still holds it
	assert.Len(t, s.Expenses(), 7)
}
