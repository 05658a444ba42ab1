package notification

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/application/usecase/dashboard"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
)

type fakeRequestRepo struct {
	items []*entity.PurchaseRequest
}

func (f *fakeRequestRepo) Create(_ context.Context, r *entity.PurchaseRequest) error {
	f.items = append(f.items, r)
	return nil
}

func (f *fakeRequestRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.PurchaseRequest, error) {
	return nil, domainerror.ErrRequestNotFound
}

func (f *fakeRequestRepo) FindByRecipient(_ context.Context, recipient valueobject.Profile) ([]*entity.PurchaseRequest, error) {
	var out []*entity.PurchaseRequest
	for _, r := range f.items {
		if r.Recipient == recipient {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) FindByRequester(_ context.Context, _ valueobject.Profile) ([]*entity.PurchaseRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) Update(_ context.Context, _ *entity.PurchaseRequest) error { return nil }
func (f *fakeRequestRepo) Delete(_ context.Context, _ uuid.UUID) error               { return nil }

type fakeFixedRepo struct {
	items []*entity.FixedExpense
}

func (f *fakeFixedRepo) Create(_ context.Context, fixed *entity.FixedExpense) error {
	f.items = append(f.items, fixed)
	return nil
}

func (f *fakeFixedRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.FixedExpense, error) {
	return nil, domainerror.ErrFixedExpenseNotFound
}

func (f *fakeFixedRepo) FindByFilter(_ context.Context, filter adapter.FixedExpenseFilter) ([]*entity.FixedExpense, error) {
	var out []*entity.FixedExpense
	for _, item := range f.items {
		if filter.PaymentStatus != nil && item.PaymentStatus != *filter.PaymentStatus {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeFixedRepo) Update(_ context.Context, _ *entity.FixedExpense) error { return nil }
func (f *fakeFixedRepo) Delete(_ context.Context, _ uuid.UUID) error            { return nil }

type fakeExpenseRepo struct {
	items []*entity.Expense
}

func (f *fakeExpenseRepo) CreateBatch(_ context.Context, expenses []*entity.Expense) error {
	f.items = append(f.items, expenses...)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(_ context.Context, _ adapter.ExpenseFilter) ([]*entity.Expense, error) {
	return f.items, nil
}

func (f *fakeExpenseRepo) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return f.items, nil
}

func (f *fakeExpenseRepo) FindByPlan(_ context.Context, _ uuid.UUID) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, _ *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

type fakeIncomeRepo struct {
	items []*entity.Income
}

func (f *fakeIncomeRepo) Create(_ context.Context, income *entity.Income) error {
	f.items = append(f.items, income)
	return nil
}

func (f *fakeIncomeRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Income, error) {
	return nil, domainerror.ErrIncomeNotFound
}

func (f *fakeIncomeRepo) FindByFilter(_ context.Context, _ adapter.IncomeFilter) ([]*entity.Income, error) {
	return f.items, nil
}

func (f *fakeIncomeRepo) FindAll(_ context.Context) ([]*entity.Income, error) {
	return f.items, nil
}

func (f *fakeIncomeRepo) Update(_ context.Context, _ *entity.Income) error { return nil }
func (f *fakeIncomeRepo) Delete(_ context.Context, _ uuid.UUID) error      { return nil }

func newUseCase(requests *fakeRequestRepo, fixed *fakeFixedRepo, expenses *fakeExpenseRepo, incomes *fakeIncomeRepo) *ListNotificationsUseCase {
	summary := dashboard.NewGetSummaryUseCase(expenses, fixed, incomes)
	return NewListNotificationsUseCase(requests, fixed, summary)
}

func TestListNotifications_DueFixedExpensePriorities(t *testing.T) {
	now := time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)
	fixed := &fakeFixedRepo{}
	mk := func(desc string, dueDay int) {
		fixed.items = append(fixed.items, entity.NewFixedExpense(
			desc, decimal.RequireFromString("100.00"), dueDay,
			valueobject.PaymentMethodPix, valueobject.Profile("Gabriel"), 7, 2024, "",
		))
	}
	mk("Aluguel", 11)    // 1 day out, high
	mk("Internet", 13)   // 3 days out, medium
	mk("Energia", 16)    // 6 days out, low
	mk("Condomínio", 25) // outside the window

	uc := newUseCase(&fakeRequestRepo{}, fixed, &fakeExpenseRepo{}, &fakeIncomeRepo{})

	out, err := uc.Execute(context.Background(), ListNotificationsInput{
		Member: valueobject.Profile("Gabriel"),
		Now:    now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Notifications) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(out.Notifications))
	}

	wantPriorities := []Priority{PriorityHigh, PriorityMedium, PriorityLow}
	for i, want := range wantPriorities {
		if out.Notifications[i].Priority != want {
			t.Errorf("notification %d: expected priority %s, got %s", i, want, out.Notifications[i].Priority)
		}
		if out.Notifications[i].Type != TypeDueFixed {
			t.Errorf("notification %d: expected type %s, got %s", i, TypeDueFixed, out.Notifications[i].Type)
		}
	}
}

func TestListNotifications_PendingRequestOnlyForRecipient(t *testing.T) {
	requests := &fakeRequestRepo{items: []*entity.PurchaseRequest{
		entity.NewPurchaseRequest(
			valueobject.Profile("Gabriel"), valueobject.Profile("Paloma"),
			"Livro", "", decimal.RequireFromString("59.90"),
		),
	}}

	uc := newUseCase(requests, &fakeFixedRepo{}, &fakeExpenseRepo{}, &fakeIncomeRepo{})

	forPaloma, err := uc.Execute(context.Background(), ListNotificationsInput{
		Member: valueobject.Profile("Paloma"),
		Now:    time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forPaloma.Notifications) != 1 || forPaloma.Notifications[0].Type != TypePendingRequest {
		t.Fatalf("expected one pending request notification for the recipient, got %+v", forPaloma.Notifications)
	}

	forGabriel, err := uc.Execute(context.Background(), ListNotificationsInput{
		Member: valueobject.Profile("Gabriel"),
		Now:    time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forGabriel.Notifications) != 0 {
		t.Errorf("expected no notifications for the requester, got %d", len(forGabriel.Notifications))
	}
}

func TestListNotifications_CriticalStatus(t *testing.T) {
	now := time.Date(2024, 7, 10, 9, 0, 0, 0, time.UTC)
	incomes := &fakeIncomeRepo{items: []*entity.Income{
		{
			ID:      uuid.New(),
			Amount:  decimal.RequireFromString("1000.00"),
			Profile: valueobject.Profile("Gabriel"),
			Month:   7,
			Year:    2024,
		},
	}}
	expenses := &fakeExpenseRepo{items: []*entity.Expense{
		{
			ID:               uuid.New(),
			Amount:           decimal.RequireFromString("900.00"),
			TotalAmount:      decimal.RequireFromString("900.00"),
			PaymentMethod:    valueobject.PaymentMethodPix,
			Profile:          valueobject.Profile("Gabriel"),
			BillingMonth:     7,
			BillingYear:      2024,
			InstallmentIndex: 1,
			InstallmentCount: 1,
		},
	}}

	uc := newUseCase(&fakeRequestRepo{}, &fakeFixedRepo{}, expenses, incomes)

	out, err := uc.Execute(context.Background(), ListNotificationsInput{
		Member: valueobject.Profile("Gabriel"),
		Now:    now,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(out.Notifications))
	}
	n := out.Notifications[0]
	if n.Type != TypeCriticalStatus || n.Priority != PriorityHigh {
		t.Errorf("expected high-priority critical status, got %s/%s", n.Type, n.Priority)
	}
}
