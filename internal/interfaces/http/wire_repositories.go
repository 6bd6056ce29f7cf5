package http

import (
	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/order"
	"github.com/eventora/eventora/internal/domain/ticket"
	"github.com/eventora/eventora/internal/domain/user"
	"github.com/eventora/eventora/internal/domain/waitlist"
	"github.com/eventora/eventora/internal/infrastructure/repository"
)

type repositories struct {
	userRepo       user.Repository
	categoryRepo   category.Repository
	eventRepo      event.Repository
	ticketTypeRepo event.TicketTypeRepository
	orderRepo      order.Repository
	ticketRepo     ticket.Repository
	waitlistRepo   waitlist.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		userRepo:       repository.NewUserRepository(c.db),
		categoryRepo:   repository.NewCategoryRepository(c.db),
		eventRepo:      repository.NewEventRepository(c.db),
		ticketTypeRepo: repository.NewTicketTypeRepository(c.db),
		orderRepo:      repository.NewOrderRepository(c.db),
		ticketRepo:     repository.NewTicketRepository(c.db),
		waitlistRepo:   repository.NewWaitlistRepository(c.db),
	}
}
