// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/household-budget/backend/internal/application/usecase/notification"
)

// NotificationResponse represents a derived notification in API responses.
type NotificationResponse struct {
	Type      string  `json:"type"`
	Priority  string  `json:"priority"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	RelatedID *string `json:"related_id,omitempty"`
}

// NotificationListResponse represents the response for listing notifications.
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationListResponse converts notification outputs to the list DTO.
func ToNotificationListResponse(output *notification.ListNotificationsOutput) NotificationListResponse {
	response := NotificationListResponse{
		Notifications: make([]NotificationResponse, len(output.Notifications)),
	}
	for i, n := range output.Notifications {
		item := NotificationResponse{
			Type:     string(n.Type),
			Priority: string(n.Priority),
			Title:    n.Title,
			Message:  n.Message,
		}
		if n.RelatedID != nil {
			id := n.RelatedID.String()
			item.RelatedID = &id
		}
		response.Notifications[i] = item
	}
	return response
}
