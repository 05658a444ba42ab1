// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/billing"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description      string
	TotalAmount      decimal.Decimal
	Category         string
	PaymentMethod    valueobject.PaymentMethod
	Profile          valueobject.Profile
	PurchaseDate     time.Time
	InstallmentCount int
	DeferNextMonth   bool
	Notes            string
}

// CreateExpenseOutput represents the output of expense creation: one record
// per installment of the plan.
type CreateExpenseOutput struct {
	PlanID   uuid.UUID
	Expenses []*ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute resolves the purchase's billing cycle, expands it into installment
// records and persists them atomically. No records are written when
// scheduling fails.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Description == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseDescription,
			"description cannot be empty",
			domainerror.ErrEmptyExpenseDescription,
		)
	}
	if len(input.Description) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrExpenseDescriptionTooLong,
		)
	}
	if input.PaymentMethod == "" {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingPaymentMethod,
			"payment method is required",
			domainerror.ErrMissingPaymentMethod,
		)
	}
	if input.PurchaseDate.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidPurchaseDate,
			"purchase date is required",
			domainerror.ErrInvalidPurchaseDate,
		)
	}

	installments, err := billing.ScheduleInstallments(billing.ScheduleInput{
		TotalAmount:    input.TotalAmount,
		Count:          input.InstallmentCount,
		PurchaseDate:   input.PurchaseDate,
		PaymentMethod:  input.PaymentMethod,
		DeferNextMonth: input.DeferNextMonth,
	})
	if err != nil {
		return nil, err
	}

	planID := uuid.New()
	expenses := make([]*entity.Expense, 0, len(installments))
	for _, inst := range installments {
		expenses = append(expenses, entity.NewExpenseFromInstallment(
			planID,
			input.Description,
			input.TotalAmount,
			input.Category,
			input.PaymentMethod,
			input.Profile,
			input.PurchaseDate,
			input.DeferNextMonth,
			input.Notes,
			inst,
		))
	}

	if err := uc.expenseRepo.CreateBatch(ctx, expenses); err != nil {
		return nil, fmt.Errorf("failed to create expense records: %w", err)
	}

	slog.Info("Expense plan created",
		"planID", planID,
		"installments", len(expenses),
		"method", input.PaymentMethod,
		"firstCycle", expenses[0].BillingCycle().String(),
	)

	output := &CreateExpenseOutput{PlanID: planID}
	for _, e := range expenses {
		output.Expenses = append(output.Expenses, ToExpenseOutput(e))
	}
	return output, nil
}
