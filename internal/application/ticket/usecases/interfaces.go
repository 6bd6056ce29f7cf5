package usecases

import (
	"context"

	"github.com/eventora/eventora/internal/application/ticket/dto"
)

type GetUserTicketsExecutor interface {
	Execute(ctx context.Context, query GetUserTicketsQuery) ([]dto.EventTicketsDTO, error)
}

type GetEventAttendeesExecutor interface {
	Execute(ctx context.Context, query GetEventAttendeesQuery) ([]dto.AttendeeDTO, error)
}

type CheckInTicketExecutor interface {
	Execute(ctx context.Context, cmd CheckInTicketCommand) (*dto.CheckInResultDTO, error)
}

type VoidTicketExecutor interface {
	Execute(ctx context.Context, cmd VoidTicketCommand) error
}
