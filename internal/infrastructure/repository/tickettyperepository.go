package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/infrastructure/persistence/mappers"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/biztime"
	"github.com/eventora/eventora/internal/shared/db"
)

type TicketTypeRepository struct {
	db *gorm.DB
}

func NewTicketTypeRepository(db *gorm.DB) *TicketTypeRepository {
	return &TicketTypeRepository{db: db}
}

func (r *TicketTypeRepository) Create(ctx context.Context, t *event.TicketType) error {
	model := mappers.TicketTypeToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket type: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

func (r *TicketTypeRepository) GetByID(ctx context.Context, id uint) (*event.TicketType, error) {
	var model models.TicketTypeModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}
	return mappers.TicketTypeToDomain(&model), nil
}

func (r *TicketTypeRepository) GetByIDs(ctx context.Context, ids []uint) ([]*event.TicketType, error) {
	if len(ids) == 0 {
		return []*event.TicketType{}, nil
	}
	var ticketTypeModels []models.TicketTypeModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&ticketTypeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get ticket types: %w", err)
	}
	return toTicketTypes(ticketTypeModels), nil
}

func (r *TicketTypeRepository) ListByEvent(ctx context.Context, eventID uint, visibleOnly bool) ([]*event.TicketType, error) {
	return r.ListByEvents(ctx, []uint{eventID}, visibleOnly)
}

func (r *TicketTypeRepository) ListByEvents(ctx context.Context, eventIDs []uint, visibleOnly bool) ([]*event.TicketType, error) {
	if len(eventIDs) == 0 {
		return []*event.TicketType{}, nil
	}
	q := db.GetTxFromContext(ctx, r.db).Where("event_id IN ?", eventIDs)
	if visibleOnly {
		q = q.Where("is_visible = ?", true)
	}

	var ticketTypeModels []models.TicketTypeModel
	if err := q.Order("event_id ASC, sort_order ASC, id ASC").Find(&ticketTypeModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}
	return toTicketTypes(ticketTypeModels), nil
}

// Reserve performs the capacity check and the increment in one statement,
// so concurrent reservations can never push sold_quantity past total_quantity.
func (r *TicketTypeRepository) Reserve(ctx context.Context, id uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("reserve quantity must be positive, got %d", quantity)
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketTypeModel{}).
		Where("id = ? AND sold_quantity + ? <= total_quantity", id, quantity).
		Updates(map[string]interface{}{
			"sold_quantity": gorm.Expr("sold_quantity + ?", quantity),
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to reserve ticket type %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return event.ErrInsufficientInventory
	}
	return nil
}

func (r *TicketTypeRepository) Release(ctx context.Context, id uint, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("release quantity must be positive, got %d", quantity)
	}
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketTypeModel{}).
		Where("id = ? AND sold_quantity >= ?", id, quantity).
		Updates(map[string]interface{}{
			"sold_quantity": gorm.Expr("sold_quantity - ?", quantity),
			"updated_at":    biztime.NowUTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to release ticket type %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to release ticket type %d: sold quantity below %d", id, quantity)
	}
	return nil
}

func toTicketTypes(ticketTypeModels []models.TicketTypeModel) []*event.TicketType {
	ticketTypes := make([]*event.TicketType, 0, len(ticketTypeModels))
	for i := range ticketTypeModels {
		ticketTypes = append(ticketTypes, mappers.TicketTypeToDomain(&ticketTypeModels[i]))
	}
	return ticketTypes
}
