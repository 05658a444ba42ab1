package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

type fakeExpenseRepo struct {
	created   []*entity.Expense
	batchErr  error
	batchSize int
}

func (f *fakeExpenseRepo) CreateBatch(_ context.Context, expenses []*entity.Expense) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	f.batchSize = len(expenses)
	f.created = append(f.created, expenses...)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.created {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(_ context.Context, _ adapter.ExpenseFilter) ([]*entity.Expense, error) {
	return f.created, nil
}

func (f *fakeExpenseRepo) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return f.created, nil
}

func (f *fakeExpenseRepo) FindByPlan(_ context.Context, planID uuid.UUID) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.created {
		if e.PlanID == planID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

func TestCreateExpense_SingleRecord(t *testing.T) {
	repo := &fakeExpenseRepo{}
	uc := NewCreateExpenseUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:      "Mercado",
		TotalAmount:      decimal.RequireFromString("250.00"),
		Category:         "Alimentação",
		PaymentMethod:    valueobject.PaymentMethodPix,
		Profile:          valueobject.Profile("Gabriel"),
		PurchaseDate:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Expenses) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out.Expenses))
	}
	e := out.Expenses[0]
	if e.BillingMonth != 3 || e.BillingYear != 2024 {
		t.Errorf("expected cycle 03/2024, got %02d/%d", e.BillingMonth, e.BillingYear)
	}
	if !e.Amount.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("expected amount 250.00, got %s", e.Amount)
	}
}

func TestCreateExpense_InstallmentPlanSharesPlanID(t *testing.T) {
	repo := &fakeExpenseRepo{}
	uc := NewCreateExpenseUseCase(repo)

	out, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:      "Notebook",
		TotalAmount:      decimal.RequireFromString("3000.00"),
		Category:         "Eletrônicos",
		PaymentMethod:    valueobject.PaymentMethodNubank,
		Profile:          valueobject.Profile("Paloma"),
		PurchaseDate:     time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.batchSize != 10 {
		t.Fatalf("expected 10 records in one batch, got %d", repo.batchSize)
	}
	for i, e := range out.Expenses {
		if e.PlanID != out.PlanID {
			t.Errorf("record %d has planID %s, want %s", i, e.PlanID, out.PlanID)
		}
		if e.InstallmentIndex != i+1 {
			t.Errorf("record %d has installment index %d, want %d", i, e.InstallmentIndex, i+1)
		}
		if !e.Amount.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("record %d has amount %s, want 300.00", i, e.Amount)
		}
	}
}

func TestCreateExpense_ValidationFailures(t *testing.T) {
	valid := CreateExpenseInput{
		Description:      "Assinatura",
		TotalAmount:      decimal.RequireFromString("39.90"),
		Category:         "Serviços",
		PaymentMethod:    valueobject.PaymentMethodBradesco,
		Profile:          valueobject.Profile("Gabriel"),
		PurchaseDate:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 1,
	}

	tests := []struct {
		name    string
		mutate  func(in *CreateExpenseInput)
		wantErr error
	}{
		{
			name:    "empty description",
			mutate:  func(in *CreateExpenseInput) { in.Description = "" },
			wantErr: domainerror.ErrEmptyExpenseDescription,
		},
		{
			name:    "missing payment method",
			mutate:  func(in *CreateExpenseInput) { in.PaymentMethod = "" },
			wantErr: domainerror.ErrMissingPaymentMethod,
		},
		{
			name:    "zero purchase date",
			mutate:  func(in *CreateExpenseInput) { in.PurchaseDate = time.Time{} },
			wantErr: domainerror.ErrInvalidPurchaseDate,
		},
		{
			name:    "zero amount",
			mutate:  func(in *CreateExpenseInput) { in.TotalAmount = decimal.Zero },
			wantErr: domainerror.ErrInvalidExpenseAmount,
		},
		{
			name:    "installment count below one",
			mutate:  func(in *CreateExpenseInput) { in.InstallmentCount = 0 },
			wantErr: domainerror.ErrInvalidInstallmentCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeExpenseRepo{}
			uc := NewCreateExpenseUseCase(repo)
			input := valid
			tt.mutate(&input)

			out, err := uc.Execute(context.Background(), input)
			if out != nil {
				t.Errorf("expected nil output, got %v", out)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
			if len(repo.created) != 0 {
				t.Errorf("expected no records persisted, got %d", len(repo.created))
			}
		})
	}
}

func TestCreateExpense_BatchFailureWritesNothing(t *testing.T) {
	repo := &fakeExpenseRepo{batchErr: errors.New("connection reset")}
	uc := NewCreateExpenseUseCase(repo)

	_, err := uc.Execute(context.Background(), CreateExpenseInput{
		Description:      "Sofá",
		TotalAmount:      decimal.RequireFromString("1800.00"),
		Category:         "Casa",
		PaymentMethod:    valueobject.PaymentMethodItau,
		Profile:          valueobject.ProfileShared,
		PurchaseDate:     time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 6,
	})
	if err == nil {
		t.Fatal("expected error when persistence fails")
	}
	if len(repo.created) != 0 {
		t.Errorf("expected no records persisted, got %d", len(repo.created))
	}
}
