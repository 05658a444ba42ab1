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
	"github.com/household-budget/backend/internal/domain/valueobject"
	"github.com/household-budget/backend/internal/integration/persistence/model"
)

// requestRepository implements the adapter.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new purchase request repository instance.
func NewRequestRepository(db *gorm.DB) adapter.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create creates a new purchase request in the database.
func (r *requestRepository) Create(ctx context.Context, request *entity.PurchaseRequest) error {
	requestModel := model.PurchaseRequestFromEntity(request)
	return r.db.WithContext(ctx).Create(requestModel).Error
}

// FindByID retrieves a purchase request by its ID.
func (r *requestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error) {
	var requestModel model.PurchaseRequestModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&requestModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRequestNotFound
		}
		return nil, result.Error
	}
	return requestModel.ToEntity(), nil
}

// FindByRecipient retrieves requests addressed to a member, newest first.
func (r *requestRepository) FindByRecipient(ctx context.Context, recipient valueobject.Profile) ([]*entity.PurchaseRequest, error) {
	return r.findWhere(ctx, "recipient = ?", string(recipient))
}

// FindByRequester retrieves requests sent by a member, newest first.
func (r *requestRepository) FindByRequester(ctx context.Context, requester valueobject.Profile) ([]*entity.PurchaseRequest, error) {
	return r.findWhere(ctx, "requester = ?", string(requester))
}

func (r *requestRepository) findWhere(ctx context.Context, condition string, value string) ([]*entity.PurchaseRequest, error) {
	var models []model.PurchaseRequestModel
	result := r.db.WithContext(ctx).
		Where(condition, value).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	requests := make([]*entity.PurchaseRequest, len(models))
	for i, m := range models {
		requests[i] = m.ToEntity()
	}
	return requests, nil
}

// Update updates an existing purchase request.
func (r *requestRepository) Update(ctx context.Context, request *entity.PurchaseRequest) error {
	requestModel := model.PurchaseRequestFromEntity(request)
	return r.db.WithContext(ctx).Save(requestModel).Error
}

// Delete removes a purchase request.
func (r *requestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PurchaseRequestModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRequestNotFound
	}
	return nil
}
