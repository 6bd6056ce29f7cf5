package usecases

import (
	"context"
	"fmt"

	"github.com/eventora/eventora/internal/application/event/dto"
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	vo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/logger"
)

type ListPendingEventsQuery struct {
	UserRole authorization.UserRole
}

// ListPendingEventsUseCase is the admin review queue, oldest submission first.
type ListPendingEventsUseCase struct {
	eventRepo event.Repository
	enricher  listEnricher
	logger    logger.Interface
}

func NewListPendingEventsUseCase(
	eventRepo event.Repository,
	ticketTypeRepo event.TicketTypeRepository,
	categoryRepo category.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListPendingEventsUseCase {
	return &ListPendingEventsUseCase{
		eventRepo: eventRepo,
		enricher: listEnricher{
			ticketTypeRepo: ticketTypeRepo,
			categoryRepo:   categoryRepo,
			userRepo:       userRepo,
			logger:         logger,
		},
		logger: logger,
	}
}

func (uc *ListPendingEventsUseCase) Execute(ctx context.Context, query ListPendingEventsQuery) ([]*dto.EventListItemDTO, error) {
	if !query.UserRole.IsAdmin() {
		return nil, toAppError(errAdminRequired, "list pending events")
	}

	events, err := uc.eventRepo.ListByApprovalStatus(ctx, vo.ApprovalPending)
	if err != nil {
		uc.logger.Errorw("failed to list pending events", "error", err)
		return nil, fmt.Errorf("failed to list pending events: %w", err)
	}
	return uc.enricher.items(ctx, events, false)
}
