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

	"github.com/household-budget/backend/internal/application/usecase/fixedexpense"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// FixedExpenseController handles fixed expense endpoints.
type FixedExpenseController struct {
	createUseCase *fixedexpense.CreateFixedExpenseUseCase
	listUseCase   *fixedexpense.ListFixedExpensesUseCase
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase
	markUseCase   *fixedexpense.MarkPaymentUseCase
}

// NewFixedExpenseController creates a new fixed expense controller instance.
func NewFixedExpenseController(
	createUseCase *fixedexpense.CreateFixedExpenseUseCase,
	listUseCase *fixedexpense.ListFixedExpensesUseCase,
	updateUseCase *fixedexpense.UpdateFixedExpenseUseCase,
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase,
	markUseCase *fixedexpense.MarkPaymentUseCase,
) *FixedExpenseController {
	return &FixedExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		markUseCase:   markUseCase,
	}
}

// Create handles POST /fixed-expenses requests.
func (c *FixedExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedexpense.CreateFixedExpenseInput{
		Description:    req.Description,
		Amount:         decimal.NewFromFloat(req.Amount),
		DueDay:         req.DueDay,
		PaymentMethod:  valueobject.PaymentMethod(req.PaymentMethod),
		Profile:        valueobject.Profile(req.Profile),
		ReferenceMonth: req.ReferenceMonth,
		ReferenceYear:  req.ReferenceYear,
		Notes:          req.Notes,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// List handles GET /fixed-expenses requests.
func (c *FixedExpenseController) List(ctx *gin.Context) {
	input := fixedexpense.ListFixedExpensesInput{}

	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.ReferenceMonth = &month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.ReferenceYear = &year
		}
	}
	if profileStr := ctx.Query("profile"); profileStr != "" {
		profile := valueobject.Profile(profileStr)
		input.Profile = &profile
	}
	if statusStr := ctx.Query("payment_status"); statusStr != "" {
		status := entity.PaymentStatus(statusStr)
		input.PaymentStatus = &status
	}
	if ctx.Query("active_only") == "true" {
		input.ActiveOnly = true
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve fixed expenses",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseListResponse(output.FixedExpenses))
}

// Update handles PATCH /fixed-expenses/:id requests.
func (c *FixedExpenseController) Update(ctx *gin.Context) {
	fixedID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	var req dto.UpdateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := fixedexpense.UpdateFixedExpenseInput{
		FixedExpenseID: fixedID,
		Description:    req.Description,
		DueDay:         req.DueDay,
		Active:         req.Active,
		Notes:          req.Notes,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.PaymentMethod != nil {
		method := valueobject.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}
	if req.Profile != nil {
		profile := valueobject.Profile(*req.Profile)
		input.Profile = &profile
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Delete handles DELETE /fixed-expenses/:id requests.
func (c *FixedExpenseController) Delete(ctx *gin.Context) {
	fixedID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedexpense.DeleteFixedExpenseInput{
		FixedExpenseID: fixedID,
	}); err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Pay handles POST /fixed-expenses/:id/pay requests.
func (c *FixedExpenseController) Pay(ctx *gin.Context) {
	fixedID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	input := fixedexpense.MarkPaymentInput{FixedExpenseID: fixedID}

	var req dto.MarkPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err == nil && req.PaidAt != nil {
		paidAt, parseErr := time.Parse("2006-01-02", *req.PaidAt)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid payment date format. Use YYYY-MM-DD",
			})
			return
		}
		input.PaidAt = &paidAt
	}

	output, err := c.markUseCase.MarkPaid(ctx.Request.Context(), input)
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// Unpay handles POST /fixed-expenses/:id/unpay requests. It reverts a
// mistaken payment back to pending.
func (c *FixedExpenseController) Unpay(ctx *gin.Context) {
	fixedID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid fixed expense ID format",
		})
		return
	}

	output, err := c.markUseCase.MarkPending(ctx.Request.Context(), fixedexpense.MarkPaymentInput{
		FixedExpenseID: fixedID,
	})
	if err != nil {
		c.handleFixedExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseResponse(output.FixedExpense))
}

// handleFixedExpenseError handles fixed expense errors and returns appropriate HTTP responses.
func (c *FixedExpenseController) handleFixedExpenseError(ctx *gin.Context, err error) {
	var fxdErr *domainerror.FixedExpenseError
	if errors.As(err, &fxdErr) {
		statusCode := c.getStatusCodeForFixedExpenseError(fxdErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: fxdErr.Message,
			Code:  string(fxdErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForFixedExpenseError maps fixed expense error codes to HTTP status codes.
func (c *FixedExpenseController) getStatusCodeForFixedExpenseError(code domainerror.FixedExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeFixedExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeFixedExpenseAlreadyPaid,
		domainerror.ErrCodeFixedExpenseNotPaid:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeInvalidFixedExpenseAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
