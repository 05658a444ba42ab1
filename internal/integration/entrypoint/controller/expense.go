// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/expense"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles variable expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	planUseCase   *expense.GetExpensePlanUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	planUseCase *expense.GetExpensePlanUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		planUseCase:   planUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidPurchaseDate),
		})
		return
	}

	// An absent count is a one-off purchase
	installmentCount := req.InstallmentCount
	if installmentCount == 0 {
		installmentCount = 1
	}

	input := expense.CreateExpenseInput{
		Description:      req.Description,
		TotalAmount:      decimal.NewFromFloat(req.TotalAmount),
		Category:         req.Category,
		PaymentMethod:    valueobject.PaymentMethod(req.PaymentMethod),
		Profile:          valueobject.Profile(req.Profile),
		PurchaseDate:     purchaseDate,
		InstallmentCount: installmentCount,
		DeferNextMonth:   req.DeferNextMonth,
		Notes:            req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ExpensePlanResponse{
		PlanID:   output.PlanID.String(),
		Expenses: dto.ToExpenseListResponse(output.Expenses).Expenses,
	})
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{}

	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.BillingMonth = &month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.BillingYear = &year
		}
	}
	if profileStr := ctx.Query("profile"); profileStr != "" {
		profile := valueobject.Profile(profileStr)
		input.Profile = &profile
	}
	if category := ctx.Query("category"); category != "" {
		input.Category = &category
	}
	if methodStr := ctx.Query("payment_method"); methodStr != "" {
		method := valueobject.PaymentMethod(methodStr)
		input.PaymentMethod = &method
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(output.Expenses))
}

// GetPlan handles GET /expenses/plans/:id requests. It returns every
// installment record of one purchase plan.
func (c *ExpenseController) GetPlan(ctx *gin.Context) {
	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid plan ID format",
		})
		return
	}

	output, err := c.planUseCase.Execute(ctx.Request.Context(), expense.GetExpensePlanInput{
		PlanID: planID,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpensePlanResponse{
		PlanID:   planID.String(),
		Expenses: dto.ToExpenseListResponse(output.Expenses).Expenses,
	})
}

// Update handles PATCH /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), expense.UpdateExpenseInput{
		ExpenseID:   expenseID,
		Description: req.Description,
		Category:    req.Category,
		Notes:       req.Notes,
	})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToExpenseResponse(output.Expense))
}

// Delete handles DELETE /expenses/:id requests. Only the addressed record is
// removed; sibling installments of the same plan stay.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		ExpenseID: expenseID,
	}); err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleExpenseError handles expense errors and returns appropriate HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		statusCode := c.getStatusCodeForExpenseError(expErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidInstallmentCount,
		domainerror.ErrCodeInvalidPurchaseDate,
		domainerror.ErrCodeMissingPaymentMethod,
		domainerror.ErrCodeEmptyExpenseDescription,
		domainerror.ErrCodeExpenseDescriptionTooLong,
		domainerror.ErrCodeInvalidExpenseProfile:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
