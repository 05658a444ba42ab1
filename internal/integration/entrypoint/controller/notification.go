// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/application/usecase/notification"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
	"github.com/household-budget/backend/internal/integration/entrypoint/middleware"
)

// NotificationController handles derived notification endpoints.
type NotificationController struct {
	listUseCase *notification.ListNotificationsUseCase
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(listUseCase *notification.ListNotificationsUseCase) *NotificationController {
	return &NotificationController{
		listUseCase: listUseCase,
	}
}

// List handles GET /notifications requests. Notifications are derived on
// read, nothing is stored.
func (c *NotificationController) List(ctx *gin.Context) {
	member, ok := middleware.GetMemberFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), notification.ListNotificationsInput{
		Member: member,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to derive notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(output))
}
