// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/income"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createUseCase *income.CreateIncomeUseCase
	listUseCase   *income.ListIncomesUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *income.CreateIncomeUseCase,
	listUseCase *income.ListIncomesUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Profile:     valueobject.Profile(req.Profile),
		Month:       req.Month,
		Year:        req.Year,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	input := income.ListIncomesInput{}

	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = &month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = &year
		}
	}
	if profileStr := ctx.Query("profile"); profileStr != "" {
		profile := valueobject.Profile(profileStr)
		input.Profile = &profile
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve incomes",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output.Incomes))
}

// Update handles PATCH /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := income.UpdateIncomeInput{
		IncomeID:    incomeID,
		Description: req.Description,
		Category:    req.Category,
		Month:       req.Month,
		Year:        req.Year,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Profile != nil {
		profile := valueobject.Profile(*req.Profile)
		input.Profile = &profile
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		IncomeID: incomeID,
	}); err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleIncomeError handles income errors and returns appropriate HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incErr *domainerror.IncomeError
	if errors.As(err, &incErr) {
		statusCode := http.StatusBadRequest
		if incErr.Code == domainerror.ErrCodeIncomeNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: incErr.Message,
			Code:  string(incErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrIncomeNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "income not found",
			Code:  string(domainerror.ErrCodeIncomeNotFound),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
