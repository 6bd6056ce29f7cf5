package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/infrastructure/persistence/mappers"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/db"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []*ticket.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	ticketModels := make([]*models.TicketModel, 0, len(tickets))
	for _, t := range tickets {
		ticketModels = append(ticketModels, mappers.TicketToModel(t))
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(&ticketModels).Error; err != nil {
		return fmt.Errorf("failed to create tickets: %w", err)
	}
	for i, t := range tickets {
		t.SetID(ticketModels[i].ID)
	}
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"status":        t.Status().String(),
			"checked_in_at": t.CheckedInAt(),
			"checked_in_by": t.CheckedInBy(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := db.ForUpdate(ctx, db.GetTxFromContext(ctx, r.db)).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return mappers.TicketToDomain(&model)
}

func (r *TicketRepository) GetByQRSecret(ctx context.Context, secret string) (*ticket.Ticket, error) {
	var model models.TicketModel
	if err := db.ForUpdate(ctx, db.GetTxFromContext(ctx, r.db)).
		Where("qr_secret = ?", secret).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ticket.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket by secret: %w", err)
	}
	return mappers.TicketToDomain(&model)
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, "user_id = ?", userID, "created_at DESC, id DESC")
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, "event_id = ?", eventID, "created_at ASC, id ASC")
}

func (r *TicketRepository) ListByEvents(ctx context.Context, eventIDs []uint) ([]*ticket.Ticket, error) {
	if len(eventIDs) == 0 {
		return []*ticket.Ticket{}, nil
	}
	var ticketModels []models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("event_id IN ?", eventIDs).
		Order("id ASC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}

func (r *TicketRepository) ListByOrder(ctx context.Context, orderID uint) ([]*ticket.Ticket, error) {
	return r.list(ctx, "order_id = ?", orderID, "id ASC")
}

func (r *TicketRepository) list(ctx context.Context, where string, arg uint, order string) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	if err := db.GetTxFromContext(ctx, r.db).Where(where, arg).Order(order).Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return mappers.TicketsToDomain(ticketModels)
}
