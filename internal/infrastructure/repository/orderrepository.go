package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/domain/order"
	vo "github.com/eventora/eventora/internal/domain/order/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/persistence/mappers"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/db"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	model := mappers.OrderToModel(o)
	// Items are inserted through the has-many association.
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return o.SetID(model.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	if err := db.GetTxFromContext(ctx, r.db).Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) MarkCompleted(ctx context.Context, o *order.Order) error {
	return r.transitionFromPending(ctx, o, map[string]interface{}{
		"status":            o.Status().String(),
		"payment_reference": o.PaymentReference(),
		"completed_at":      o.CompletedAt(),
		"updated_at":        o.UpdatedAt(),
	})
}

func (r *OrderRepository) MarkCancelled(ctx context.Context, o *order.Order) error {
	return r.transitionFromPending(ctx, o, map[string]interface{}{
		"status":     o.Status().String(),
		"updated_at": o.UpdatedAt(),
	})
}

// transitionFromPending applies updates only while the stored row is still
// pending. A concurrent transition leaves zero rows affected.
func (r *OrderRepository) transitionFromPending(ctx context.Context, o *order.Order, updates map[string]interface{}) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", o.ID(), vo.OrderStatusPending.String()).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update order %d: %w", o.ID(), result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotPending
	}
	return nil
}

func (r *OrderRepository) HasCompletedForEvent(ctx context.Context, userID, eventID uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.OrderModel{}).
		Where("user_id = ? AND event_id = ? AND status = ?", userID, eventID, vo.OrderStatusCompleted.String()).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check completed orders: %w", err)
	}
	return count > 0, nil
}

func (r *OrderRepository) GetLatestCompletedForEvent(ctx context.Context, userID, eventID uint) (*order.Order, error) {
	var model models.OrderModel
	err := db.GetTxFromContext(ctx, r.db).
		Preload("Items").
		Where("user_id = ? AND event_id = ? AND status = ?", userID, eventID, vo.OrderStatusCompleted.String()).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get latest order: %w", err)
	}
	return mappers.OrderToDomain(&model)
}

func (r *OrderRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int, exclude ...uint) ([]*order.Order, error) {
	q := db.GetTxFromContext(ctx, r.db).
		Preload("Items").
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", vo.OrderStatusPending.String(), now.UTC()).
		Order("expires_at ASC, id ASC")
	if len(exclude) > 0 {
		q = q.Where("id NOT IN ?", exclude)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var orderModels []models.OrderModel
	if err := q.Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list expired orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(orderModels))
	for i := range orderModels {
		o, err := mappers.OrderToDomain(&orderModels[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
