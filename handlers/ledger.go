package handlers

import (
	"net/http"
	"time"

	"github.com/expensex/expensex-api/models"
	"github.com/expensex/expensex-api/store"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type LedgerHandler struct {
	Store *store.Store
}

func NewLedgerHandler(s *store.Store) *LedgerHandler {
	return &LedgerHandler{Store: s}
}

// ============================================================================
// CATEGORIES
// ============================================================================

func (h *LedgerHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Store.Categories()})
}

func (h *LedgerHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category name is required"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"category": h.Store.AddCategory(req.Name)})
}

// ============================================================================
// PROJECTS
// ============================================================================

func (h *LedgerHandler) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"projects": h.Store.Projects()})
}

func (h *LedgerHandler) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endDate := emptyToNil(req.ProjectEndDate)
	if endDate != nil {
		if _, err := time.Parse(dateLayout, *endDate); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "project_end_date must be YYYY-MM-DD"})
			return
		}
	}

	details := models.ProjectDetails{
		ProjectName:        req.ProjectName,
		ProjectDescription: emptyToNil(req.ProjectDescription),
		ProjectStartDate:   req.ProjectStartDate,
		ProjectEndDate:     endDate,
		Budget:             decimal.Zero,
		IsActive:           true,
	}
	if req.Budget != nil {
		details.Budget = *req.Budget
	}
	if req.IsActive != nil {
		details.IsActive = *req.IsActive
	}

	c.JSON(http.StatusCreated, gin.H{"project": h.Store.AddProject(details)})
}

// ============================================================================
// EXPENSES
// ============================================================================

func (h *LedgerHandler) GetExpenses(c *gin.Context) {
	expenses := h.Store.FilterExpenses(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense resolves category, subcategory and project ids into the
// names stored on the expense. Unknown ids leave the link empty.
func (h *LedgerHandler) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	details := models.ExpenseDetails{
		Amount:         *req.Amount,
		ExpenseDate:    req.ExpenseDate,
		Description:    emptyToNil(req.Description),
		AttachmentPath: emptyToNil(req.AttachmentPath),
	}

	if req.CategoryID != "" {
		categoryID := req.CategoryID
		details.CategoryID = &categoryID
		if cat, ok := h.Store.FindCategory(req.CategoryID); ok {
			details.Categories = &models.CategoryRef{CategoryName: cat.CategoryName}
			for _, sub := range cat.SubCategories {
				if req.SubCategoryID != "" && sub.SubCategoryID == req.SubCategoryID {
					details.SubCategories = &models.SubCategoryRef{SubCategoryName: sub.SubCategoryName}
				}
			}
		}
	}

	if req.ProjectID != "" {
		projectID := req.ProjectID
		details.ProjectID = &projectID
		if p, ok := h.Store.FindProject(req.ProjectID); ok {
			details.Projects = &models.ProjectRef{ProjectName: p.ProjectName}
		}
	}

	c.JSON(http.StatusCreated, gin.H{"expense": h.Store.AddExpense(details)})
}

func (h *LedgerHandler) DeleteExpense(c *gin.Context) {
	h.Store.DeleteExpense(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// ============================================================================
// INCOMES
// ============================================================================

func (h *LedgerHandler) GetIncomes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"incomes": h.Store.Incomes()})
}

func (h *LedgerHandler) CreateIncome(c *gin.Context) {
	var req models.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	income := h.Store.AddIncome(models.IncomeDetails{
		Amount:      *req.Amount,
		IncomeDate:  req.IncomeDate,
		Description: emptyToNil(req.Description),
	})
	c.JSON(http.StatusCreated, gin.H{"income": income})
}

// ============================================================================
// SUMMARY
// ============================================================================

func (h *LedgerHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Summary())
}

// emptyToNil mirrors the forms, which send "" for an unset optional field.
func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
