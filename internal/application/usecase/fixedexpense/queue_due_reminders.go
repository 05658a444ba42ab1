// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
)

// DueReminderWindowDays is how many days ahead the reminder sweep looks.
const DueReminderWindowDays = 7

// QueueDueRemindersInput represents the input for the reminder sweep.
type QueueDueRemindersInput struct {
	Now        time.Time
	Recipients []string
}

// QueueDueRemindersOutput reports how many reminder emails were queued.
type QueueDueRemindersOutput struct {
	Queued  int
	Skipped int
}

// QueueDueRemindersUseCase scans pending fixed expenses and queues one
// reminder email per instance falling due within the window. A dedup
// reference keyed by instance and reference month keeps repeated sweeps from
// queueing the same reminder twice.
type QueueDueRemindersUseCase struct {
	fixedRepo  adapter.FixedExpenseRepository
	emailQueue adapter.EmailQueueRepository
}

// NewQueueDueRemindersUseCase creates a new QueueDueRemindersUseCase instance.
func NewQueueDueRemindersUseCase(
	fixedRepo adapter.FixedExpenseRepository,
	emailQueue adapter.EmailQueueRepository,
) *QueueDueRemindersUseCase {
	return &QueueDueRemindersUseCase{
		fixedRepo:  fixedRepo,
		emailQueue: emailQueue,
	}
}

// Execute performs the reminder sweep for the month containing Now.
func (uc *QueueDueRemindersUseCase) Execute(ctx context.Context, input QueueDueRemindersInput) (*QueueDueRemindersOutput, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now().UTC()
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
		return nil, fmt.Errorf("failed to list pending fixed expenses: %w", err)
	}

	output := &QueueDueRemindersOutput{}
	windowEnd := now.AddDate(0, 0, DueReminderWindowDays)

	for _, f := range fixed {
		due := f.DueDate()
		if due.Before(truncateToDay(now)) || due.After(windowEnd) {
			continue
		}

		reference := fmt.Sprintf("due_reminder:%s:%02d-%d", f.ID, f.ReferenceMonth, f.ReferenceYear)
		exists, err := uc.emailQueue.ExistsPendingForReference(ctx, reference)
		if err != nil {
			return nil, fmt.Errorf("failed to check reminder dedup: %w", err)
		}
		if exists {
			output.Skipped++
			continue
		}

		daysLeft := int(due.Sub(truncateToDay(now)).Hours() / 24)
		job := entity.NewEmailJob(
			entity.TemplateDueReminder,
			input.Recipients,
			fmt.Sprintf("Conta a vencer: %s", f.Description),
			map[string]interface{}{
				"reference":   reference,
				"description": f.Description,
				"amount":      f.Amount.StringFixed(2),
				"dueDate":     due.Format("02/01/2006"),
				"daysLeft":    daysLeft,
				"profile":     string(f.Profile),
			},
		)

		if err := uc.emailQueue.Create(ctx, job); err != nil {
			return nil, fmt.Errorf("failed to queue reminder: %w", err)
		}
		output.Queued++
	}

	if output.Queued > 0 {
		slog.Info("Due reminders queued",
			"queued", output.Queued,
			"skipped", output.Skipped,
			"cycle", fmt.Sprintf("%02d/%d", month, year),
		)
	}

	return output, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
