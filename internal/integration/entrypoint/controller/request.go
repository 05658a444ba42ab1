// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/usecase/request"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
	"github.com/household-budget/backend/internal/integration/entrypoint/middleware"
)

// RequestController handles purchase request endpoints.
type RequestController struct {
	createUseCase  *request.CreateRequestUseCase
	listUseCase    *request.ListRequestsUseCase
	respondUseCase *request.RespondRequestUseCase
	deleteUseCase  *request.DeleteRequestUseCase
}

// NewRequestController creates a new purchase request controller instance.
func NewRequestController(
	createUseCase *request.CreateRequestUseCase,
	listUseCase *request.ListRequestsUseCase,
	respondUseCase *request.RespondRequestUseCase,
	deleteUseCase *request.DeleteRequestUseCase,
) *RequestController {
	return &RequestController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		respondUseCase: respondUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create handles POST /requests requests. The requester is always the
// authenticated member.
func (c *RequestController) Create(ctx *gin.Context) {
	member, ok := middleware.GetMemberFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), request.CreateRequestInput{
		Requester: member,
		Recipient: valueobject.Profile(req.Recipient),
		Item:      req.Item,
		Reason:    req.Reason,
		Amount:    decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		c.handleRequestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRequestResponse(output.Request))
}

// List handles GET /requests requests. It returns the member's received and
// sent requests.
func (c *RequestController) List(ctx *gin.Context) {
	member, ok := middleware.GetMemberFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), request.ListRequestsInput{
		Member: member,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve purchase requests",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRequestListResponse(output))
}

// Respond handles POST /requests/:id/respond requests.
func (c *RequestController) Respond(ctx *gin.Context) {
	member, ok := middleware.GetMemberFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request ID format",
		})
		return
	}

	var req dto.RespondRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidRequestStatus),
		})
		return
	}

	output, err := c.respondUseCase.Execute(ctx.Request.Context(), request.RespondRequestInput{
		RequestID: requestID,
		Member:    member,
		Status:    entity.RequestStatus(req.Status),
		Note:      req.Note,
	})
	if err != nil {
		c.handleRequestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRequestResponse(output.Request))
}

// Delete handles DELETE /requests/:id requests.
func (c *RequestController) Delete(ctx *gin.Context) {
	requestID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), request.DeleteRequestInput{
		RequestID: requestID,
	}); err != nil {
		c.handleRequestError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleRequestError handles purchase request errors and returns appropriate HTTP responses.
func (c *RequestController) handleRequestError(ctx *gin.Context, err error) {
	var reqErr *domainerror.RequestError
	if errors.As(err, &reqErr) {
		statusCode := c.getStatusCodeForRequestError(reqErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reqErr.Message,
			Code:  string(reqErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForRequestError maps request error codes to HTTP status codes.
func (c *RequestController) getStatusCodeForRequestError(code domainerror.RequestErrorCode) int {
	switch code {
	case domainerror.ErrCodeRequestNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotRequestRecipient:
		return http.StatusForbidden
	case domainerror.ErrCodeRequestAlreadyResolved:
		return http.StatusConflict
	case domainerror.ErrCodeRequestToSelf,
		domainerror.ErrCodeInvalidRequestStatus:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
