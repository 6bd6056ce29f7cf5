package mappers

import (
	"fmt"

	"github.com/eventora/eventora/internal/domain/order"
	vo "github.com/eventora/eventora/internal/domain/order/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, models.OrderItemModel{
			OrderID:      o.ID(),
			TicketTypeID: item.TicketTypeID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return &models.OrderModel{
		ID:               o.ID(),
		UserID:           o.UserID(),
		EventID:          o.EventID(),
		Status:           o.Status().String(),
		TotalAmount:      o.Total().AmountInCents(),
		Currency:         o.Total().Currency(),
		PaymentProvider:  string(o.PaymentProvider()),
		PaymentReference: o.PaymentReference(),
		ExpiresAt:        o.ExpiresAt(),
		CompletedAt:      o.CompletedAt(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
		Items:            items,
	}
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	status := vo.OrderStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", model.Status)
	}

	items := make([]order.Item, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, order.Item{
			TicketTypeID: item.TicketTypeID,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}

	return order.ReconstructOrder(
		model.ID,
		model.UserID,
		model.EventID,
		items,
		vo.NewMoney(model.TotalAmount, model.Currency),
		status,
		vo.PaymentProvider(model.PaymentProvider),
		model.PaymentReference,
		model.ExpiresAt,
		model.CompletedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}
