package mappers

import (
	"fmt"

	"github.com/eventora/eventora/internal/domain/ticket"
	vo "github.com/eventora/eventora/internal/domain/ticket/valueobjects"
	"github.com/eventora/eventora/internal/domain/waitlist"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
)

func TicketToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:           t.ID(),
		OrderID:      t.OrderID(),
		EventID:      t.EventID(),
		TicketTypeID: t.TicketTypeID(),
		UserID:       t.UserID(),
		TicketNumber: t.TicketNumber(),
		QRSecret:     t.QRSecret(),
		Status:       t.Status().String(),
		CheckedInAt:  t.CheckedInAt(),
		CheckedInBy:  t.CheckedInBy(),
		CreatedAt:    t.CreatedAt(),
	}
}

func TicketToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status := vo.TicketStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status: %s", model.Status)
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.OrderID,
		model.EventID,
		model.TicketTypeID,
		model.UserID,
		model.TicketNumber,
		model.QRSecret,
		status,
		model.CheckedInAt,
		model.CheckedInBy,
		model.CreatedAt,
	), nil
}

func TicketsToDomain(ms []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(ms))
	for i := range ms {
		t, err := TicketToDomain(&ms[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func WaitlistEntryToModel(e *waitlist.Entry) *models.WaitlistEntryModel {
	return &models.WaitlistEntryModel{
		ID:        e.ID(),
		EventID:   e.EventID(),
		UserID:    e.UserID(),
		Status:    string(e.Status()),
		CreatedAt: e.CreatedAt(),
	}
}

func WaitlistEntryToDomain(model *models.WaitlistEntryModel) *waitlist.Entry {
	return waitlist.ReconstructEntry(model.ID, model.EventID, model.UserID, waitlist.Status(model.Status), model.CreatedAt)
}
