// Package fixedexpense contains fixed expense use cases.
package fixedexpense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
)

// MarkPaymentInput represents the input for flipping a payment status.
type MarkPaymentInput struct {
	FixedExpenseID uuid.UUID
	PaidAt         *time.Time // defaults to now when marking paid
}

// MarkPaymentOutput represents the output of a payment status change.
type MarkPaymentOutput struct {
	FixedExpense *FixedExpenseOutput
}

// MarkPaymentUseCase handles marking fixed expenses paid or pending.
type MarkPaymentUseCase struct {
	fixedRepo adapter.FixedExpenseRepository
}

// NewMarkPaymentUseCase creates a new MarkPaymentUseCase instance.
func NewMarkPaymentUseCase(fixedRepo adapter.FixedExpenseRepository) *MarkPaymentUseCase {
	return &MarkPaymentUseCase{
		fixedRepo: fixedRepo,
	}
}

// MarkPaid records a payment against a pending instance.
func (uc *MarkPaymentUseCase) MarkPaid(ctx context.Context, input MarkPaymentInput) (*MarkPaymentOutput, error) {
	fixed, err := uc.find(ctx, input.FixedExpenseID)
	if err != nil {
		return nil, err
	}

	if fixed.PaymentStatus == entity.PaymentStatusPaid {
		return nil, domainerror.NewFixedExpenseError(
			domainerror.ErrCodeFixedExpenseAlreadyPaid,
			"fixed expense already paid",
			domainerror.ErrFixedExpenseAlreadyPaid,
		)
	}

	paidAt := time.Now().UTC()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}
	fixed.MarkPaid(paidAt)

	if err := uc.fixedRepo.Update(ctx, fixed); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	return &MarkPaymentOutput{FixedExpense: ToFixedExpenseOutput(fixed)}, nil
}

// MarkPending reverts a paid instance back to pending.
func (uc *MarkPaymentUseCase) MarkPending(ctx context.Context, input MarkPaymentInput) (*MarkPaymentOutput, error) {
	fixed, err := uc.find(ctx, input.FixedExpenseID)
	if err != nil {
		return nil, err
	}

	if fixed.PaymentStatus != entity.PaymentStatusPaid {
		return nil, domainerror.NewFixedExpenseError(
			domainerror.ErrCodeFixedExpenseNotPaid,
			"fixed expense is not paid",
			domainerror.ErrFixedExpenseNotPaid,
		)
	}

	fixed.MarkPending()

	if err := uc.fixedRepo.Update(ctx, fixed); err != nil {
		return nil, fmt.Errorf("failed to update fixed expense: %w", err)
	}

	return &MarkPaymentOutput{FixedExpense: ToFixedExpenseOutput(fixed)}, nil
}

func (uc *MarkPaymentUseCase) find(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	fixed, err := uc.fixedRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
			return nil, domainerror.NewFixedExpenseError(
				domainerror.ErrCodeFixedExpenseNotFound,
				"fixed expense not found",
				domainerror.ErrFixedExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find fixed expense: %w", err)
	}
	return fixed, nil
}
