package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/billing"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&model.ExpenseModel{},
		&model.IncomeModel{},
		&model.FixedExpenseModel{},
		&model.PurchaseRequestModel{},
		&model.UserModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func scheduledPlan(t *testing.T, total string, count int, purchase time.Time, method valueobject.PaymentMethod) []*entity.Expense {
	t.Helper()
	installments, err := billing.ScheduleInstallments(billing.ScheduleInput{
		TotalAmount:   decimal.RequireFromString(total),
		Count:         count,
		PurchaseDate:  purchase,
		PaymentMethod: method,
	})
	if err != nil {
		t.Fatalf("failed to schedule installments: %v", err)
	}

	planID := uuid.New()
	expenses := make([]*entity.Expense, 0, len(installments))
	for _, inst := range installments {
		expenses = append(expenses, entity.NewExpenseFromInstallment(
			planID, "Geladeira", decimal.RequireFromString(total), "Casa",
			method, valueobject.ProfileShared, purchase, false, "", inst,
		))
	}
	return expenses
}

func TestExpenseRepository_CreateBatchAndFindByPlan(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	expenses := scheduledPlan(t, "1200.00", 4, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), valueobject.PaymentMethodItau)
	if err := repo.CreateBatch(ctx, expenses); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	found, err := repo.FindByPlan(ctx, expenses[0].PlanID)
	if err != nil {
		t.Fatalf("FindByPlan failed: %v", err)
	}
	if len(found) != 4 {
		t.Fatalf("expected 4 records, got %d", len(found))
	}
	for i, e := range found {
		if e.InstallmentIndex != i+1 {
			t.Errorf("record %d: expected index %d, got %d", i, i+1, e.InstallmentIndex)
		}
		if !e.Amount.Equal(decimal.RequireFromString("300.00")) {
			t.Errorf("record %d: expected amount 300.00, got %s", i, e.Amount)
		}
	}
}

func TestExpenseRepository_FilterByCycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	// Pix on Feb 10 bills Feb..May, one record per month
	expenses := scheduledPlan(t, "400.00", 4, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), valueobject.PaymentMethodPix)
	if err := repo.CreateBatch(ctx, expenses); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	month, year := 3, 2024
	found, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{
		BillingMonth: &month,
		BillingYear:  &year,
	})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("expected 1 record for 03/2024, got %d", len(found))
	}
	if found[0].InstallmentIndex != 2 {
		t.Errorf("expected installment 2 in 03/2024, got %d", found[0].InstallmentIndex)
	}
}

func TestExpenseRepository_ProfileFilterIncludesShared(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	purchase := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mk := func(profile valueobject.Profile) {
		installments, err := billing.ScheduleInstallments(billing.ScheduleInput{
			TotalAmount:   decimal.RequireFromString("50.00"),
			Count:         1,
			PurchaseDate:  purchase,
			PaymentMethod: valueobject.PaymentMethodPix,
		})
		if err != nil {
			t.Fatalf("failed to schedule installments: %v", err)
		}
		e := entity.NewExpenseFromInstallment(
			uuid.New(), "Compra", decimal.RequireFromString("50.00"), "",
			valueobject.PaymentMethodPix, profile, purchase, false, "", installments[0],
		)
		if err := repo.CreateBatch(ctx, []*entity.Expense{e}); err != nil {
			t.Fatalf("CreateBatch failed: %v", err)
		}
	}
	mk(valueobject.Profile("Gabriel"))
	mk(valueobject.Profile("Paloma"))
	mk(valueobject.ProfileShared)

	gabriel := valueobject.Profile("Gabriel")
	found, err := repo.FindByFilter(ctx, adapter.ExpenseFilter{Profile: &gabriel})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected Gabriel filter to match his and shared records, got %d", len(found))
	}

	both := valueobject.ProfileBoth
	found, err = repo.FindByFilter(ctx, adapter.ExpenseFilter{Profile: &both})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected Ambos filter to match everything, got %d", len(found))
	}
}

func TestExpenseRepository_DeleteKeepsSiblings(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	expenses := scheduledPlan(t, "300.00", 3, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), valueobject.PaymentMethodPix)
	if err := repo.CreateBatch(ctx, expenses); err != nil {
		t.Fatalf("CreateBatch failed: %v", err)
	}

	if err := repo.Delete(ctx, expenses[1].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	remaining, err := repo.FindByPlan(ctx, expenses[0].PlanID)
	if err != nil {
		t.Fatalf("FindByPlan failed: %v", err)
	}
	if len(remaining) != 2 {
		t.Fatalf("expected 2 sibling records after delete, got %d", len(remaining))
	}
	for _, e := range remaining {
		if e.ID == expenses[1].ID {
			t.Error("deleted record still present")
		}
	}
}

func TestExpenseRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	ctx := context.Background()

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound on delete, got %v", err)
	}
}

func TestFixedExpenseRepository_PendingFirstOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewFixedExpenseRepository(db)
	ctx := context.Background()

	mk := func(desc string, dueDay int, paid bool) {
		f := entity.NewFixedExpense(
			desc, decimal.RequireFromString("100.00"), dueDay,
			valueobject.PaymentMethodPix, valueobject.Profile("Gabriel"), 6, 2024, "",
		)
		if paid {
			f.MarkPaid(time.Now().UTC())
		}
		if err := repo.Create(ctx, f); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	mk("Aluguel", 5, true)
	mk("Internet", 20, false)
	mk("Energia", 10, false)

	found, err := repo.FindByFilter(ctx, adapter.FixedExpenseFilter{})
	if err != nil {
		t.Fatalf("FindByFilter failed: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 records, got %d", len(found))
	}

	wantOrder := []string{"Energia", "Internet", "Aluguel"}
	for i, want := range wantOrder {
		if found[i].Description != want {
			t.Errorf("position %d: expected %s, got %s", i, want, found[i].Description)
		}
	}
}

func TestFixedExpenseRepository_PaymentDateRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewFixedExpenseRepository(db)
	ctx := context.Background()

	f := entity.NewFixedExpense(
		"Aluguel", decimal.RequireFromString("1500.00"), 5,
		valueobject.PaymentMethodPix, valueobject.ProfileShared, 1, 2025, "",
	)
	if err := repo.Create(ctx, f); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	paidAt := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)
	f.MarkPaid(paidAt)
	if err := repo.Update(ctx, f); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.PaymentStatus != entity.PaymentStatusPaid {
		t.Errorf("expected status pago, got %s", found.PaymentStatus)
	}
	if found.PaymentDate == nil || !found.PaymentDate.Equal(paidAt) {
		t.Errorf("expected payment date %s, got %v", paidAt, found.PaymentDate)
	}

	f.MarkPending()
	if err := repo.Update(ctx, f); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	found, err = repo.FindByID(ctx, f.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.PaymentDate != nil {
		t.Errorf("expected payment date cleared, got %v", found.PaymentDate)
	}
}

func TestRequestRepository_RespondedAtRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	r := entity.NewPurchaseRequest(
		valueobject.Profile("Paloma"), valueobject.Profile("Gabriel"),
		"Tablet", "estudos", decimal.RequireFromString("900.00"),
	)
	if err := repo.Create(ctx, r); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	r.Respond(entity.RequestStatusApproved, "pode comprar")
	if err := repo.Update(ctx, r); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if found.Status != entity.RequestStatusApproved {
		t.Errorf("expected status aprovado, got %s", found.Status)
	}
	if found.RespondedAt == nil {
		t.Fatal("expected responded_at to be read back")
	}
	if found.ResponseNote != "pode comprar" {
		t.Errorf("expected response note to survive, got %q", found.ResponseNote)
	}
}

func TestUserRepository_SeedLookups(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("Gabriel", "gabriel@example.com", "hash")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err := repo.ExistsByName(ctx, "Gabriel")
	if err != nil || !exists {
		t.Errorf("expected Gabriel to exist, got exists=%v err=%v", exists, err)
	}

	exists, err = repo.ExistsByName(ctx, "Paloma")
	if err != nil || exists {
		t.Errorf("expected Paloma to not exist, got exists=%v err=%v", exists, err)
	}

	found, err := repo.FindByName(ctx, "Gabriel")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if found.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, found.ID)
	}
}
