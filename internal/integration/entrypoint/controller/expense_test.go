package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/application/usecase/expense"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
)

type fakeExpenseRepo struct {
	created []*entity.Expense
}

func (f *fakeExpenseRepo) CreateBatch(_ context.Context, expenses []*entity.Expense) error {
	f.created = append(f.created, expenses...)
	return nil
}

func (f *fakeExpenseRepo) FindByID(_ context.Context, _ uuid.UUID) (*entity.Expense, error) {
	return nil, domainerror.ErrExpenseNotFound
}

func (f *fakeExpenseRepo) FindByFilter(_ context.Context, _ adapter.ExpenseFilter) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindAll(_ context.Context) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) FindByPlan(_ context.Context, _ uuid.UUID) ([]*entity.Expense, error) {
	return nil, nil
}

func (f *fakeExpenseRepo) Update(_ context.Context, _ *entity.Expense) error {
	return nil
}

func (f *fakeExpenseRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func newExpenseRouter(repo adapter.ExpenseRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewExpenseController(
		expense.NewCreateExpenseUseCase(repo),
		expense.NewListExpensesUseCase(repo),
		expense.NewUpdateExpenseUseCase(repo),
		expense.NewDeleteExpenseUseCase(repo),
		expense.NewGetExpensePlanUseCase(repo),
	)
	router := gin.New()
	router.POST("/expenses", ctrl.Create)
	return router
}

func postExpense(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/expenses", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestExpenseController_CreateDefaultsToSingleInstallment(t *testing.T) {
	repo := &fakeExpenseRepo{}
	router := newExpenseRouter(repo)

	rec := postExpense(t, router, `{
		"description": "Padaria",
		"total_amount": 25.50,
		"payment_method": "Dinheiro",
		"profile": "Gabriel",
		"purchase_date": "2025-01-10"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ExpensePlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Expenses) != 1 {
		t.Fatalf("expected 1 installment record, got %d", len(resp.Expenses))
	}
	if resp.Expenses[0].InstallmentCount != 1 {
		t.Errorf("expected installment count 1, got %d", resp.Expenses[0].InstallmentCount)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected 1 persisted record, got %d", len(repo.created))
	}
}

func TestExpenseController_CreateRejectsNegativeInstallmentCount(t *testing.T) {
	repo := &fakeExpenseRepo{}
	router := newExpenseRouter(repo)

	rec := postExpense(t, router, `{
		"description": "Notebook",
		"total_amount": 3000.00,
		"payment_method": "Nubank",
		"profile": "Gabriel",
		"purchase_date": "2025-01-10",
		"installment_count": -2
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != string(domainerror.ErrCodeInvalidInstallmentCount) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidInstallmentCount, resp.Code)
	}
	if len(repo.created) != 0 {
		t.Error("nothing should be persisted for a rejected request")
	}
}

func TestExpenseController_CreateRejectsMalformedDate(t *testing.T) {
	repo := &fakeExpenseRepo{}
	router := newExpenseRouter(repo)

	rec := postExpense(t, router, `{
		"description": "Mercado",
		"total_amount": 120.00,
		"payment_method": "Pix",
		"profile": "Paloma",
		"purchase_date": "10/01/2025"
	}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Code != string(domainerror.ErrCodeInvalidPurchaseDate) {
		t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPurchaseDate, resp.Code)
	}
}
