package dto

import (
	"time"

	categorydto "github.com/eventora/eventora/internal/application/category/dto"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/domain/ticket"
	ordervo "github.com/eventora/eventora/internal/domain/order/valueobjects"
	"github.com/eventora/eventora/internal/domain/user"
)

type TicketTypeDTO struct {
	ID            uint       `json:"id"`
	EventID       uint       `json:"event_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Price         int64      `json:"price"`
	Currency      string     `json:"currency"`
	PriceDisplay  string     `json:"price_display"`
	TotalQuantity int        `json:"total_quantity"`
	SoldQuantity  int        `json:"sold_quantity"`
	Available     int        `json:"available"`
	SaleStart     *time.Time `json:"sale_start,omitempty"`
	SaleEnd       *time.Time `json:"sale_end,omitempty"`
	IsVisible     bool       `json:"is_visible"`
	MinPerOrder   int        `json:"min_per_order"`
	MaxPerOrder   int        `json:"max_per_order"`
}

type EventDTO struct {
	ID               uint       `json:"id"`
	OrganizerID      uint       `json:"organizer_id"`
	CategoryID       uint       `json:"category_id"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description,omitempty"`
	LocationName     string     `json:"location_name"`
	Address          string     `json:"address"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	Timezone         string     `json:"timezone"`
	CoverImageURL    string     `json:"cover_image_url,omitempty"`
	GalleryImages    []string   `json:"gallery_images"`
	Tags             []string   `json:"tags"`
	TotalCapacity    int        `json:"total_capacity"`
	MinOrder         int        `json:"min_order"`
	MaxOrder         int        `json:"max_order"`
	IsPublished      bool       `json:"is_published"`
	ApprovalStatus   string     `json:"approval_status"`
	ApprovalNotes    string     `json:"approval_notes,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type OrganizerDTO struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
	Email    string `json:"email,omitempty"`
}

// EventStatsDTO counts the non-voided tickets of an event. Revenue is the
// sum of their ticket type prices.
type EventStatsDTO struct {
	TotalTicketsSold int    `json:"total_tickets_sold"`
	TotalCheckedIn   int    `json:"total_checked_in"`
	TotalRevenue     int64  `json:"total_revenue"`
	Currency         string `json:"currency,omitempty"`
	RevenueDisplay   string `json:"revenue_display,omitempty"`
	TotalCapacity    int    `json:"total_capacity"`
}

// PriceRangeDTO spans the visible ticket types. Currency is that of the
// first type; it is empty when the event has none.
type PriceRangeDTO struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

// EventListItemDTO is one row of the public listing.
type EventListItemDTO struct {
	*EventDTO
	Category         *categorydto.CategoryDTO `json:"category,omitempty"`
	Organizer        *OrganizerDTO            `json:"organizer,omitempty"`
	PriceRange       PriceRangeDTO            `json:"price_range"`
	AvailableTickets int                      `json:"available_tickets"`
	IsSoldOut        bool                     `json:"is_sold_out"`
}

type EventDetailDTO struct {
	*EventDTO
	DescriptionHTML string                   `json:"description_html"`
	Category        *categorydto.CategoryDTO `json:"category,omitempty"`
	Organizer       *OrganizerDTO            `json:"organizer,omitempty"`
	TicketTypes     []*TicketTypeDTO         `json:"ticket_types"`
}

// OrganizerEventDTO is an event as its organizer manages it, with every
// ticket type including hidden ones.
type OrganizerEventDTO struct {
	*EventDTO
	Category    *categorydto.CategoryDTO `json:"category,omitempty"`
	TicketTypes []*TicketTypeDTO         `json:"ticket_types"`
	Stats       EventStatsDTO            `json:"stats"`
}

// ManagedEventDTO is the single-event view for its organizer or an admin:
// drafts and hidden ticket types included.
type ManagedEventDTO struct {
	*EventDTO
	Category         *categorydto.CategoryDTO `json:"category,omitempty"`
	Organizer        *OrganizerDTO            `json:"organizer,omitempty"`
	TicketTypes      []*TicketTypeDTO         `json:"ticket_types"`
	AvailableTickets int                      `json:"available_tickets"`
	PriceRange       PriceRangeDTO            `json:"price_range"`
	Stats            EventStatsDTO            `json:"stats"`
}

type CreateEventResultDTO struct {
	EventID     uint             `json:"event_id"`
	Slug        string           `json:"slug"`
	TicketTypes []*TicketTypeDTO `json:"ticket_types"`
}

type ReviewResultDTO struct {
	EventID     uint   `json:"event_id"`
	Status      string `json:"status"`
	IsPublished bool   `json:"is_published"`
}

func ToEventDTO(e *event.Event) *EventDTO {
	if e == nil {
		return nil
	}
	gallery := e.GalleryImages()
	if gallery == nil {
		gallery = []string{}
	}
	tags := e.Tags()
	if tags == nil {
		tags = []string{}
	}
	return &EventDTO{
		ID:               e.ID(),
		OrganizerID:      e.OrganizerID(),
		CategoryID:       e.CategoryID(),
		Title:            e.Title(),
		Slug:             e.Slug(),
		Description:      e.Description(),
		ShortDescription: e.ShortDescription(),
		LocationName:     e.LocationName(),
		Address:          e.Address(),
		Latitude:         e.Latitude(),
		Longitude:        e.Longitude(),
		StartDate:        e.StartDate(),
		EndDate:          e.EndDate(),
		Timezone:         e.Timezone(),
		CoverImageURL:    e.CoverImageURL(),
		GalleryImages:    gallery,
		Tags:             tags,
		TotalCapacity:    e.TotalCapacity(),
		MinOrder:         e.MinOrder(),
		MaxOrder:         e.MaxOrder(),
		IsPublished:      e.IsPublished(),
		ApprovalStatus:   e.ApprovalStatus().String(),
		ApprovalNotes:    e.ApprovalNotes(),
		ReviewedAt:       e.ReviewedAt(),
		CreatedAt:        e.CreatedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
}

func ToTicketTypeDTO(tt *event.TicketType) *TicketTypeDTO {
	return &TicketTypeDTO{
		ID:            tt.ID(),
		EventID:       tt.EventID(),
		Name:          tt.Name(),
		Description:   tt.Description(),
		Price:         tt.Price(),
		Currency:      tt.Currency(),
		PriceDisplay:  ordervo.NewMoney(tt.Price(), tt.Currency()).String(),
		TotalQuantity: tt.TotalQuantity(),
		SoldQuantity:  tt.SoldQuantity(),
		Available:     tt.Available(),
		SaleStart:     tt.SaleStart(),
		SaleEnd:       tt.SaleEnd(),
		IsVisible:     tt.IsVisible(),
		MinPerOrder:   tt.MinPerOrder(),
		MaxPerOrder:   tt.MaxPerOrder(),
	}
}

func ToTicketTypeDTOs(types []*event.TicketType) []*TicketTypeDTO {
	result := make([]*TicketTypeDTO, 0, len(types))
	for _, tt := range types {
		result = append(result, ToTicketTypeDTO(tt))
	}
	return result
}

func ToOrganizerDTO(u *user.User) *OrganizerDTO {
	if u == nil {
		return nil
	}
	return &OrganizerDTO{Name: u.DisplayName(), ImageURL: u.ImageURL()}
}

// NewPriceRange computes the price range over ticket types.
func NewPriceRange(types []*event.TicketType) PriceRangeDTO {
	if len(types) == 0 {
		return PriceRangeDTO{}
	}
	r := PriceRangeDTO{Min: types[0].Price(), Max: types[0].Price(), Currency: types[0].Currency()}
	for _, tt := range types[1:] {
		r.Min = min(r.Min, tt.Price())
		r.Max = max(r.Max, tt.Price())
	}
	return r
}

// AvailableTickets sums the unsold capacity of the ticket types.
func AvailableTickets(types []*event.TicketType) int {
	total := 0
	for _, tt := range types {
		total += tt.Available()
	}
	return total
}

// NewEventStats aggregates the tickets of one event. TotalCapacity is the
// summed quantity of the ticket types.
func NewEventStats(tickets []*ticket.Ticket, types []*event.TicketType) EventStatsDTO {
	var stats EventStatsDTO
	prices := make(map[uint]int64, len(types))
	for _, tt := range types {
		prices[tt.ID()] = tt.Price()
		stats.TotalCapacity += tt.TotalQuantity()
		if stats.Currency == "" {
			stats.Currency = tt.Currency()
		}
	}
	for _, t := range tickets {
		if t.IsVoided() {
			continue
		}
		stats.TotalTicketsSold++
		if t.IsCheckedIn() {
			stats.TotalCheckedIn++
		}
		stats.TotalRevenue += prices[t.TicketTypeID()]
	}
	if stats.Currency != "" {
		stats.RevenueDisplay = ordervo.NewMoney(stats.TotalRevenue, stats.Currency).String()
	}
	return stats
}
