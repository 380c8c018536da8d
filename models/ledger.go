package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, the way the dashboard expects them.
	decimal.MarshalJSONWithoutQuotes = true
}

// ============================================================================
// CATEGORIES
// ============================================================================

type Category struct {
	CategoryID    string        `json:"category_id"`
	CategoryName  string        `json:"category_name"`
	LogoPath      *string       `json:"logo_path"`
	Sequence      int           `json:"sequence"`
	IsActive      bool          `json:"is_active"`
	SubCategories []SubCategory `json:"sub_categories"`
}

type SubCategory struct {
	SubCategoryID   string `json:"sub_category_id"`
	SubCategoryName string `json:"sub_category_name"`
	Sequence        int    `json:"sequence"`
}

// ============================================================================
// PROJECTS
// ============================================================================

type ProjectDetails struct {
	ProjectName        string          `json:"project_name"`
	ProjectDescription *string         `json:"project_description"`
	ProjectStartDate   string          `json:"project_start_date"`
	ProjectEndDate     *string         `json:"project_end_date"`
	Budget             decimal.Decimal `json:"budget"`
	IsActive           bool            `json:"is_active"`
}

type Project struct {
	ProjectID string `json:"project_id"`
	ProjectDetails
}

// ============================================================================
// EXPENSES
// ============================================================================

type CategoryRef struct {
	CategoryName string `json:"category_name"`
}

type SubCategoryRef struct {
	SubCategoryName string `json:"sub_category_name"`
}

type ProjectRef struct {
	ProjectName string `json:"project_name"`
}

// ExpenseDetails holds everything about an expense except its id. Category,
// subcategory and project names are denormalized copies taken at creation.
type ExpenseDetails struct {
	Amount         decimal.Decimal `json:"amount"`
	ExpenseDate    string          `json:"expense_date"`
	Description    *string         `json:"description"`
	AttachmentPath *string         `json:"attachment_path"`
	CategoryID     *string         `json:"category_id"`
	ProjectID      *string         `json:"project_id"`
	Categories     *CategoryRef    `json:"categories"`
	SubCategories  *SubCategoryRef `json:"sub_categories"`
	Projects       *ProjectRef     `json:"projects"`
}

type Expense struct {
	ExpenseID string `json:"expense_id"`
	ExpenseDetails
}

// CategoryName returns the denormalized category name, or "" when unlinked.
func (e Expense) CategoryName() string {
	if e.Categories == nil {
		return ""
	}
	return e.Categories.CategoryName
}

// ============================================================================
// INCOMES
// ============================================================================

type IncomeDetails struct {
	Amount      decimal.Decimal `json:"amount"`
	IncomeDate  string          `json:"income_date"`
	Description *string         `json:"description"`
}

type Income struct {
	IncomeID string `json:"income_id"`
	IncomeDetails
}

// ============================================================================
// LEDGER REQUESTS
// ============================================================================

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateProjectRequest struct {
	ProjectName        string           `json:"project_name" binding:"required"`
	ProjectDescription *string          `json:"project_description"`
	ProjectStartDate   string           `json:"project_start_date" binding:"required,datetime=2006-01-02"`
	ProjectEndDate     *string          `json:"project_end_date"`
	Budget             *decimal.Decimal `json:"budget"`
	IsActive           *bool            `json:"is_active"`
}

type CreateExpenseRequest struct {
	Amount         *decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate    string           `json:"expense_date" binding:"required,datetime=2006-01-02"`
	Description    *string          `json:"description"`
	AttachmentPath *string          `json:"attachment_path"`
	CategoryID     string           `json:"category_id"`
	SubCategoryID  string           `json:"sub_category_id"`
	ProjectID      string           `json:"project_id"`
}

type CreateIncomeRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	IncomeDate  string           `json:"income_date" binding:"required,datetime=2006-01-02"`
	Description *string          `json:"description"`
}
