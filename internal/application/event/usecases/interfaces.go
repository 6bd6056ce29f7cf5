package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/event/dto"
)

type CreateEventExecutor interface {
	Execute(ctx context.Context, cmd CreateEventCommand) (*dto.CreateEventResultDTO, error)
}

type UpdateEventExecutor interface {
	Execute(ctx context.Context, cmd UpdateEventCommand) (*dto.EventDTO, error)
}

type CreateTicketTypeExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketTypeCommand) (*dto.TicketTypeDTO, error)
}

type ListPublishedEventsExecutor interface {
	Execute(ctx context.Context, query ListPublishedEventsQuery) ([]*dto.EventListItemDTO, error)
}

type GetEventBySlugExecutor interface {
	Execute(ctx context.Context, slug string) (*dto.EventDetailDTO, error)
}

type ListOrganizerEventsExecutor interface {
	Execute(ctx context.Context, query ListOrganizerEventsQuery) ([]*dto.OrganizerEventDTO, error)
}

type ListPendingEventsExecutor interface {
	Execute(ctx context.Context, query ListPendingEventsQuery) ([]*dto.EventListItemDTO, error)
}

type ReviewEventExecutor interface {
	Execute(ctx context.Context, cmd ReviewEventCommand) (*dto.ReviewResultDTO, error)
}

type GetManagedEventExecutor interface {
	Execute(ctx context.Context, query GetManagedEventQuery) (*dto.ManagedEventDTO, error)
}
