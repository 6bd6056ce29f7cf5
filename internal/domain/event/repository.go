package event

import (
	"context"

	vo "github.com/eventora/eventora/internal/domain/event/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	Update(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uint) (*Event, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Event, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	// GetPublishedBySlug returns the newest published and approved event with the slug.
	GetPublishedBySlug(ctx context.Context, slug string) (*Event, error)
	ListPublished(ctx context.Context, filter ListFilter) ([]*Event, error)
	ListByOrganizer(ctx context.Context, organizerID uint) ([]*Event, error)
	ListByApprovalStatus(ctx context.Context, status vo.ApprovalStatus) ([]*Event, error)
}

// ListFilter narrows the public event listing.
type ListFilter struct {
	CategoryID uint
	Search     string
	Limit      int
}

type TicketTypeRepository interface {
	Create(ctx context.Context, ticketType *TicketType) error
	GetByID(ctx context.Context, id uint) (*TicketType, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*TicketType, error)
	ListByEvent(ctx context.Context, eventID uint, visibleOnly bool) ([]*TicketType, error)
	ListByEvents(ctx context.Context, eventIDs []uint, visibleOnly bool) ([]*TicketType, error)
	// Reserve atomically adds quantity to soldQuantity, failing with
	// ErrInsufficientInventory when it would exceed totalQuantity.
	Reserve(ctx context.Context, id uint, quantity int) error
	// Release returns previously reserved capacity.
	Release(ctx context.Context, id uint, quantity int) error
}
