package usecases

import (
	"context"
	"time"

	"github.com/eventora/eventora/internal/domain/category"
	"github.com/eventora/eventora/internal/domain/event"
	"github.com/eventora/eventora/internal/shared/services/markdown"
)

const shortDescriptionRunes = 160

// EventInput carries the organizer-editable fields of an event.
type EventInput struct {
	CategoryID       uint
	Title            string
	Description      string
	ShortDescription string
	LocationName     string
	Address          string
	Latitude         *float64
	Longitude        *float64
	StartDate        time.Time
	EndDate          time.Time
	Timezone         string
	CoverImageURL    string
	GalleryImages    []string
	Tags             []string
	TotalCapacity    int
	MinOrder         int
	MaxOrder         int
}

type TicketTypeInput struct {
	Name          string
	Description   string
	Price         int64
	Currency      string
	TotalQuantity int
	SaleStart     *time.Time
	SaleEnd       *time.Time
	Hidden        bool
	MinPerOrder   int
	MaxPerOrder   int
	SortOrder     int
}

func (in TicketTypeInput) params() event.TicketTypeParams {
	return event.TicketTypeParams{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Currency:      in.Currency,
		TotalQuantity: in.TotalQuantity,
		SaleStart:     in.SaleStart,
		SaleEnd:       in.SaleEnd,
		Hidden:        in.Hidden,
		MinPerOrder:   in.MinPerOrder,
		MaxPerOrder:   in.MaxPerOrder,
		SortOrder:     in.SortOrder,
	}
}

// details validates the category and fills the short description from the
// markdown body when the organizer left it empty.
func (in EventInput) details(ctx context.Context, categories category.Repository, renderer markdown.Renderer) (event.Details, error) {
	if in.CategoryID != 0 {
		if _, err := categories.GetByID(ctx, in.CategoryID); err != nil {
			return event.Details{}, err
		}
	}

	short := in.ShortDescription
	if short == "" && in.Description != "" {
		summary, err := renderer.Summary(in.Description, shortDescriptionRunes)
		if err != nil {
			return event.Details{}, err
		}
		short = summary
	}

	return event.Details{
		CategoryID:       in.CategoryID,
		Title:            in.Title,
		Description:      in.Description,
		ShortDescription: short,
		LocationName:     in.LocationName,
		Address:          in.Address,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		Timezone:         in.Timezone,
		CoverImageURL:    in.CoverImageURL,
		GalleryImages:    in.GalleryImages,
		Tags:             in.Tags,
		TotalCapacity:    in.TotalCapacity,
		MinOrder:         in.MinOrder,
		MaxOrder:         in.MaxOrder,
	}, nil
}
