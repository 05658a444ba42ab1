// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/application/usecase/dashboard"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles monthly aggregation endpoints.
type DashboardController struct {
	summaryUseCase    *dashboard.GetSummaryUseCase
	breakdownsUseCase *dashboard.GetBreakdownsUseCase
	forecastUseCase   *dashboard.GetCardForecastUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	summaryUseCase *dashboard.GetSummaryUseCase,
	breakdownsUseCase *dashboard.GetBreakdownsUseCase,
	forecastUseCase *dashboard.GetCardForecastUseCase,
) *DashboardController {
	return &DashboardController{
		summaryUseCase:    summaryUseCase,
		breakdownsUseCase: breakdownsUseCase,
		forecastUseCase:   forecastUseCase,
	}
}

// GetSummary handles GET /dashboard/summary requests.
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	input := c.parseSummaryInput(ctx)

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetBreakdowns handles GET /dashboard/breakdowns requests.
func (c *DashboardController) GetBreakdowns(ctx *gin.Context) {
	input := c.parseSummaryInput(ctx)

	output, err := c.breakdownsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownsResponse(output))
}

// GetCardForecast handles GET /dashboard/cards/forecast requests.
func (c *DashboardController) GetCardForecast(ctx *gin.Context) {
	input := c.parseSummaryInput(ctx)

	output, err := c.forecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleDashboardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardForecastListResponse(output))
}

// parseSummaryInput reads the common month, year and profile query
// parameters, defaulting to the current cycle.
func (c *DashboardController) parseSummaryInput(ctx *gin.Context) dashboard.SummaryInput {
	now := time.Now().UTC()
	input := dashboard.SummaryInput{
		Month:   int(now.Month()),
		Year:    now.Year(),
		Profile: valueobject.Profile(ctx.Query("profile")),
	}

	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = year
		}
	}

	return input
}

// handleDashboardError handles dashboard errors and returns appropriate HTTP responses.
func (c *DashboardController) handleDashboardError(ctx *gin.Context, err error) {
	var dshErr *domainerror.DashboardError
	if errors.As(err, &dshErr) {
		statusCode := http.StatusBadRequest
		if dshErr.Code == domainerror.ErrCodeDashboardInternalError {
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: dshErr.Message,
			Code:  string(dshErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
