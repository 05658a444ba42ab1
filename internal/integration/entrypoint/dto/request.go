// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/household-budget/backend/internal/application/usecase/request"
)

// CreateRequestRequest represents the request body for purchase request creation.
type CreateRequestRequest struct {
	Recipient string  `json:"recipient" binding:"required"`
	Item      string  `json:"item" binding:"required,min=1,max=255"`
	Reason    string  `json:"reason,omitempty" binding:"omitempty,max=1000"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
}

// RespondRequestRequest represents the request body for answering a request.
type RespondRequestRequest struct {
	Status string `json:"status" binding:"required,oneof=aprovado rejeitado"`
	Note   string `json:"note,omitempty" binding:"omitempty,max=1000"`
}

// RequestResponse represents a purchase request in API responses.
type RequestResponse struct {
	ID           string     `json:"id"`
	Requester    string     `json:"requester"`
	Recipient    string     `json:"recipient"`
	Item         string     `json:"item"`
	Reason       string     `json:"reason"`
	Amount       string     `json:"amount"`
	Status       string     `json:"status"`
	ResponseNote string     `json:"response_note"`
	RespondedAt  *time.Time `json:"responded_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RequestListResponse splits requests between received and sent.
type RequestListResponse struct {
	Received []RequestResponse `json:"received"`
	Sent     []RequestResponse `json:"sent"`
}

// ToRequestResponse converts a RequestOutput to a RequestResponse DTO.
func ToRequestResponse(r *request.RequestOutput) RequestResponse {
	return RequestResponse{
		ID:           r.ID.String(),
		Requester:    r.Requester,
		Recipient:    r.Recipient,
		Item:         r.Item,
		Reason:       r.Reason,
		Amount:       r.Amount.StringFixed(2),
		Status:       r.Status,
		ResponseNote: r.ResponseNote,
		RespondedAt:  r.RespondedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ToRequestListResponse converts the split request lists to the list DTO.
func ToRequestListResponse(output *request.ListRequestsOutput) RequestListResponse {
	response := RequestListResponse{
		Received: make([]RequestResponse, len(output.Received)),
		Sent:     make([]RequestResponse, len(output.Sent)),
	}
	for i, r := range output.Received {
		response.Received[i] = ToRequestResponse(r)
	}
	for i, r := range output.Sent {
		response.Sent[i] = ToRequestResponse(r)
	}
	return response
}
