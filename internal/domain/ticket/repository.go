package ticket

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, tickets []*Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	// GetByID and GetByQRSecret lock the row when called inside a transaction.
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	GetByQRSecret(ctx context.Context, secret string) (*Ticket, error)
	// ListByUser returns every ticket of the user, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*Ticket, error)
	ListByEvent(ctx context.Context, eventID uint) ([]*Ticket, error)
	ListByEvents(ctx context.Context, eventIDs []uint) ([]*Ticket, error)
	ListByOrder(ctx context.Context, orderID uint) ([]*Ticket, error)
}
