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

// fixedExpenseRepository implements the adapter.FixedExpenseRepository interface.
type fixedExpenseRepository struct {
	db *gorm.DB
}

// NewFixedExpenseRepository creates a new fixed expense repository instance.
func NewFixedExpenseRepository(db *gorm.DB) adapter.FixedExpenseRepository {
	return &fixedExpenseRepository{
		db: db,
	}
}

// Create creates a new fixed expense instance in the database.
func (r *fixedExpenseRepository) Create(ctx context.Context, fixed *entity.FixedExpense) error {
	fixedModel := model.FixedExpenseFromEntity(fixed)
	return r.db.WithContext(ctx).Create(fixedModel).Error
}

// FindByID retrieves a fixed expense by its ID.
func (r *fixedExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	var fixedModel model.FixedExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&fixedModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedExpenseNotFound
		}
		return nil, result.Error
	}
	return fixedModel.ToEntity(), nil
}

// FindByFilter retrieves fixed expenses matching the filter, pending first
// and then by due day.
func (r *fixedExpenseRepository) FindByFilter(ctx context.Context, filter adapter.FixedExpenseFilter) ([]*entity.FixedExpense, error) {
	query := r.db.WithContext(ctx).Model(&model.FixedExpenseModel{})

	if filter.ReferenceMonth != nil {
		query = query.Where("reference_month = ?", *filter.ReferenceMonth)
	}
	if filter.ReferenceYear != nil {
		query = query.Where("reference_year = ?", *filter.ReferenceYear)
	}
	query = profileScope(query, filter.Profile)
	if filter.PaymentStatus != nil {
		query = query.Where("payment_status = ?", string(*filter.PaymentStatus))
	}
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var models []model.FixedExpenseModel
	result := query.
		Order("payment_status DESC"). // 'pendente' sorts after 'pago'
		Order("due_day ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	fixed := make([]*entity.FixedExpense, len(models))
	for i, m := range models {
		fixed[i] = m.ToEntity()
	}
	return fixed, nil
}

// Update updates an existing fixed expense instance.
func (r *fixedExpenseRepository) Update(ctx context.Context, fixed *entity.FixedExpense) error {
	fixedModel := model.FixedExpenseFromEntity(fixed)
	return r.db.WithContext(ctx).Save(fixedModel).Error
}

// Delete removes a fixed expense instance.
func (r *fixedExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FixedExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFixedExpenseNotFound
	}
	return nil
}
