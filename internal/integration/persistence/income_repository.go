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

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Create creates a new income record in the database.
func (r *incomeRepository) Create(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	return r.db.WithContext(ctx).Create(incomeModel).Error
}

// FindByID retrieves an income by its ID.
func (r *incomeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error) {
	var incomeModel model.IncomeModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&incomeModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrIncomeNotFound
		}
		return nil, result.Error
	}
	return incomeModel.ToEntity(), nil
}

// FindByFilter retrieves incomes matching the filter.
func (r *incomeRepository) FindByFilter(ctx context.Context, filter adapter.IncomeFilter) ([]*entity.Income, error) {
	query := r.db.WithContext(ctx).Model(&model.IncomeModel{})

	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	query = profileScope(query, filter.Profile)

	var models []model.IncomeModel
	result := query.Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(models))
	for i, m := range models {
		incomes[i] = m.ToEntity()
	}
	return incomes, nil
}

// FindAll retrieves the full income collection.
func (r *incomeRepository) FindAll(ctx context.Context) ([]*entity.Income, error) {
	var models []model.IncomeModel
	result := r.db.WithContext(ctx).Order("year ASC, month ASC").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	incomes := make([]*entity.Income, len(models))
	for i, m := range models {
		incomes[i] = m.ToEntity()
	}
	return incomes, nil
}

// Update updates an existing income record.
func (r *incomeRepository) Update(ctx context.Context, income *entity.Income) error {
	incomeModel := model.IncomeFromEntity(income)
	return r.db.WithContext(ctx).Save(incomeModel).Error
}

// Delete removes an income record.
func (r *incomeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.IncomeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrIncomeNotFound
	}
	return nil
}
