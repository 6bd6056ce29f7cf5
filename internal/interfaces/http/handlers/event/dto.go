package event

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventora/eventora/internal/application/event/usecases"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/errors"
	"github.com/eventora/eventora/internal/shared/utils"
)

type EventRequest struct {
	CategoryID       uint      `json:"category_id"`
	Title            string    `json:"title" binding:"required,max=200"`
	Description      string    `json:"description" binding:"max=20000"`
	ShortDescription string    `json:"short_description" binding:"max=500"`
	LocationName     string    `json:"location_name" binding:"required,max=200"`
	Address          string    `json:"address" binding:"max=500"`
	Latitude         *float64  `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude        *float64  `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
	StartDate        time.Time `json:"start_date" binding:"required"`
	EndDate          time.Time `json:"end_date" binding:"required"`
	Timezone         string    `json:"timezone" binding:"max=64"`
	CoverImageURL    string    `json:"cover_image_url" binding:"omitempty,url"`
	GalleryImages    []string  `json:"gallery_images" binding:"max=20,dive,url"`
	Tags             []string  `json:"tags" binding:"max=20,dive,max=50"`
	TotalCapacity    int       `json:"total_capacity" binding:"gte=0"`
	MinOrder         int       `json:"min_order" binding:"gte=0"`
	MaxOrder         int       `json:"max_order" binding:"gte=0"`
}

func (r *EventRequest) toInput() usecases.EventInput {
	return usecases.EventInput{
		CategoryID:       r.CategoryID,
		Title:            r.Title,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		LocationName:     r.LocationName,
		Address:          r.Address,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		Timezone:         r.Timezone,
		CoverImageURL:    r.CoverImageURL,
		GalleryImages:    r.GalleryImages,
		Tags:             r.Tags,
		TotalCapacity:    r.TotalCapacity,
		MinOrder:         r.MinOrder,
		MaxOrder:         r.MaxOrder,
	}
}

type TicketTypeRequest struct {
	Name          string     `json:"name" binding:"required,max=100"`
	Description   string     `json:"description" binding:"max=1000"`
	Price         int64      `json:"price" binding:"gte=0"`
	Currency      string     `json:"currency" binding:"required,currency"`
	TotalQuantity int        `json:"total_quantity" binding:"gt=0"`
	SaleStart     *time.Time `json:"sale_start"`
	SaleEnd       *time.Time `json:"sale_end"`
	Hidden        bool       `json:"hidden"`
	MinPerOrder   int        `json:"min_per_order" binding:"gte=0"`
	MaxPerOrder   int        `json:"max_per_order" binding:"gte=0"`
	SortOrder     int        `json:"sort_order"`
}

func (r *TicketTypeRequest) toInput() usecases.TicketTypeInput {
	return usecases.TicketTypeInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Currency:      r.Currency,
		TotalQuantity: r.TotalQuantity,
		SaleStart:     r.SaleStart,
		SaleEnd:       r.SaleEnd,
		Hidden:        r.Hidden,
		MinPerOrder:   r.MinPerOrder,
		MaxPerOrder:   r.MaxPerOrder,
		SortOrder:     r.SortOrder,
	}
}

type CreateEventRequest struct {
	EventRequest
	TicketTypes []TicketTypeRequest `json:"ticket_types" binding:"max=20,dive"`
}

func (r *CreateEventRequest) toTicketTypeInputs() []usecases.TicketTypeInput {
	inputs := make([]usecases.TicketTypeInput, 0, len(r.TicketTypes))
	for i := range r.TicketTypes {
		inputs = append(inputs, r.TicketTypes[i].toInput())
	}
	return inputs
}

// RegistrationResponse tells the client whether the caller already holds tickets.
type RegistrationResponse struct {
	Registered bool `json:"registered"`
}

func parseListPublishedEventsQuery(c *gin.Context) (usecases.ListPublishedEventsQuery, error) {
	categoryID, err := utils.ParseOptionalUintQuery(c, "category_id")
	if err != nil {
		return usecases.ListPublishedEventsQuery{}, err
	}

	limit := constants.DefaultEventListLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return usecases.ListPublishedEventsQuery{}, errors.NewValidationError("invalid limit")
		}
		if limit > constants.MaxEventListLimit {
			limit = constants.MaxEventListLimit
		}
	}

	return usecases.ListPublishedEventsQuery{
		CategoryID: categoryID,
		Search:     c.Query("search"),
		Limit:      limit,
	}, nil
}
