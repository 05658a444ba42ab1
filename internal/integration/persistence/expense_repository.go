// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-budget/backend/internal/application/adapter"
	"github.com/household-budget/backend/internal/domain/entity"
	domainerror "github.com/household-budget/backend/internal/domain/error"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// CreateBatch persists every installment record of a plan in one transaction.
func (r *expenseRepository) CreateBatch(ctx context.Context, expenses []*entity.Expense) error {
	models := make([]*model.ExpenseModel, len(expenses))
	for i, e := range expenses {
		models[i] = model.ExpenseFromEntity(e)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&models).Error
	})
}

// FindByID retrieves an expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses matching the filter, newest purchases first.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})

	if filter.BillingMonth != nil {
		query = query.Where("billing_month = ?", *filter.BillingMonth)
	}
	if filter.BillingYear != nil {
		query = query.Where("billing_year = ?", *filter.BillingYear)
	}
	query = profileScope(query, filter.Profile)
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.PaymentMethod != nil {
		query = query.Where("payment_method = ?", string(*filter.PaymentMethod))
	}

	var models []model.ExpenseModel
	result := query.Order("purchase_date DESC, created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses, nil
}

// FindAll retrieves the full expense collection.
func (r *expenseRepository) FindAll(ctx context.Context) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Order("billing_year ASC, billing_month ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses, nil
}

// FindByPlan retrieves every installment record of a plan in order.
func (r *expenseRepository) FindByPlan(ctx context.Context, planID uuid.UUID) ([]*entity.Expense, error) {
	var models []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("installment_index ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(models))
	for i, m := range models {
		expenses[i] = m.ToEntity()
	}
	return expenses, nil
}

// Update updates an existing expense record.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	return r.db.WithContext(ctx).Save(expenseModel).Error
}

// Delete removes a single expense record.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrExpenseNotFound
	}
	return nil
}
