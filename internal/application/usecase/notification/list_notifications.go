// Package notification derives in-app notifications on the fly. Nothing in
// this package is persisted: every call recomputes the list from requests,
// fixed expenses and the month's summary.
package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/application/usecase/dashboard"
	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// NotificationType distinguishes the notification sources.
type NotificationType string

const (
	TypePendingRequest NotificationType = "pending_request"
	TypeDueFixed       NotificationType = "due_fixed_expense"
	TypeCriticalStatus NotificationType = "critical_status"
)

// Priority orders notifications in the UI.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Notification is one derived alert for a member.
type Notification struct {
	Type      NotificationType
	Priority  Priority
	Title     string
	Message   string
	RelatedID *uuid.UUID
}

// ListNotificationsInput selects the member and the moment to derive for.
type ListNotificationsInput struct {
	Member valueobject.Profile
	Now    time.Time // defaults to now
}

// ListNotificationsOutput is the derived notification list, high priority
// first.
type ListNotificationsOutput struct {
	Notifications []Notification
}

// ListNotificationsUseCase derives the member's current notifications.
type ListNotificationsUseCase struct {
	requestRepo adapter.RequestRepository
	fixedRepo   adapter.FixedExpenseRepository
	summary     *dashboard.GetSummaryUseCase
}

// NewListNotificationsUseCase creates a new ListNotificationsUseCase instance.
func NewListNotificationsUseCase(
	requestRepo adapter.RequestRepository,
	fixedRepo adapter.FixedExpenseRepository,
	summary *dashboard.GetSummaryUseCase,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		requestRepo: requestRepo,
		fixedRepo:   fixedRepo,
		summary:     summary,
	}
}

// Execute derives notifications from pending requests addressed to the
// member, fixed expenses falling due within a week, and a critical monthly
// status.
func (uc *ListNotificationsUseCase) Execute(ctx context.Context, input ListNotificationsInput) (*ListNotificationsOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	output := &ListNotificationsOutput{}

	received, err := uc.requestRepo.FindByRecipient(ctx, input.Member)
	if err != nil {
		return nil, fmt.Errorf("failed to load purchase requests: %w", err)
	}
	for _, r := range received {
		if !r.IsPending() {
			continue
		}
		id := r.ID
		output.Notifications = append(output.Notifications, Notification{
			Type:      TypePendingRequest,
			Priority:  PriorityMedium,
			Title:     "Pedido de compra pendente",
			Message:   fmt.Sprintf("%s pediu: %s (R$ %s)", r.Requester, r.Item, r.Amount.StringFixed(2)),
			RelatedID: &id,
		})
	}

	month := int(now.Month())
	year := now.Year()
	pending := entity.PaymentStatusPending
	fixed, err := uc.fixedRepo.FindByFilter(ctx, adapter.FixedExpenseFilter{
		ReferenceMonth: &month,
		ReferenceYear:  &year,
		PaymentStatus:  &pending,
		ActiveOnly:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load fixed expenses: %w", err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for _, f := range fixed {
		if !f.Profile.Matches(input.Member) {
			continue
		}
		due := f.DueDate()
		daysLeft := int(due.Sub(today).Hours() / 24)
		if daysLeft < 0 || daysLeft > 7 {
			continue
		}

		priority := PriorityLow
		switch {
		case daysLeft <= 1:
			priority = PriorityHigh
		case daysLeft <= 3:
			priority = PriorityMedium
		}

		id := f.ID
		output.Notifications = append(output.Notifications, Notification{
			Type:      TypeDueFixed,
			Priority:  priority,
			Title:     "Conta a vencer",
			Message:   fmt.Sprintf("%s vence em %s (R$ %s)", f.Description, due.Format("02/01"), f.Amount.StringFixed(2)),
			RelatedID: &id,
		})
	}

	summary, err := uc.summary.Execute(ctx, dashboard.SummaryInput{
		Month:   month,
		Year:    year,
		Profile: input.Member,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly summary: %w", err)
	}
	if summary.FinancialStatus == dashboard.StatusCritical {
		output.Notifications = append(output.Notifications, Notification{
			Type:     TypeCriticalStatus,
			Priority: PriorityHigh,
			Title:    "Orçamento crítico",
			Message:  fmt.Sprintf("Os gastos do mês já consomem %s%% da renda", summary.AlertPercentage),
		})
	}

	sortByPriority(output.Notifications)

	return output, nil
}

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// sortByPriority keeps the derived order within one priority (requests, due
// dates, status).
func sortByPriority(notifications []Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		return priorityRank[notifications[i].Priority] < priorityRank[notifications[j].Priority]
	})
}
