package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/eventora/eventora/internal/domain/event"
	vo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
)

func EventToModel(e *event.Event) *models.EventModel {
	d := e.Details()
	model := &models.EventModel{
		ID:               e.ID(),
		OrganizerID:      e.OrganizerID(),
		Title:            d.Title,
		Slug:             e.Slug(),
		Description:      d.Description,
		ShortDescription: d.ShortDescription,
		LocationName:     d.LocationName,
		Address:          d.Address,
		Latitude:         d.Latitude,
		Longitude:        d.Longitude,
		StartDate:        d.StartDate,
		EndDate:          d.EndDate,
		Timezone:         d.Timezone,
		CoverImageURL:    d.CoverImageURL,
		GalleryImages:    datatypes.NewJSONSlice(nonNil(d.GalleryImages)),
		Tags:             datatypes.NewJSONSlice(nonNil(d.Tags)),
		TotalCapacity:    d.TotalCapacity,
		MinOrder:         d.MinOrder,
		MaxOrder:         d.MaxOrder,
		IsPublished:      e.IsPublished(),
		ApprovalStatus:   e.ApprovalStatus().String(),
		ApprovalNotes:    e.ApprovalNotes(),
		ReviewedBy:       e.ReviewedBy(),
		ReviewedAt:       e.ReviewedAt(),
		CreatedAt:        e.CreatedAt(),
		UpdatedAt:        e.UpdatedAt(),
	}
	if d.CategoryID != 0 {
		categoryID := d.CategoryID
		model.CategoryID = &categoryID
	}
	return model
}

func EventToDomain(model *models.EventModel) (*event.Event, error) {
	status := vo.ApprovalStatus(model.ApprovalStatus)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid approval status: %s", model.ApprovalStatus)
	}

	var categoryID uint
	if model.CategoryID != nil {
		categoryID = *model.CategoryID
	}

	details := event.Details{
		CategoryID:       categoryID,
		Title:            model.Title,
		Description:      model.Description,
		ShortDescription: model.ShortDescription,
		LocationName:     model.LocationName,
		Address:          model.Address,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		StartDate:        model.StartDate,
		EndDate:          model.EndDate,
		Timezone:         model.Timezone,
		CoverImageURL:    model.CoverImageURL,
		GalleryImages:    []string(model.GalleryImages),
		Tags:             []string(model.Tags),
		TotalCapacity:    model.TotalCapacity,
		MinOrder:         model.MinOrder,
		MaxOrder:         model.MaxOrder,
	}

	return event.ReconstructEvent(
		model.ID,
		model.OrganizerID,
		model.Slug,
		details,
		model.IsPublished,
		status,
		model.ApprovalNotes,
		model.ReviewedBy,
		model.ReviewedAt,
		model.CreatedAt,
		model.UpdatedAt,
	), nil
}

func TicketTypeToModel(t *event.TicketType) *models.TicketTypeModel {
	return &models.TicketTypeModel{
		ID:            t.ID(),
		EventID:       t.EventID(),
		Name:          t.Name(),
		Description:   t.Description(),
		Price:         t.Price(),
		Currency:      t.Currency(),
		TotalQuantity: t.TotalQuantity(),
		SoldQuantity:  t.SoldQuantity(),
		SaleStart:     t.SaleStart(),
		SaleEnd:       t.SaleEnd(),
		IsVisible:     t.IsVisible(),
		MinPerOrder:   t.MinPerOrder(),
		MaxPerOrder:   t.MaxPerOrder(),
		SortOrder:     t.SortOrder(),
		CreatedAt:     t.CreatedAt(),
	}
}

func TicketTypeToDomain(model *models.TicketTypeModel) *event.TicketType {
	return event.ReconstructTicketType(
		model.ID,
		model.EventID,
		event.TicketTypeParams{
			Name:          model.Name,
			Description:   model.Description,
			Price:         model.Price,
			Currency:      model.Currency,
			TotalQuantity: model.TotalQuantity,
			SaleStart:     model.SaleStart,
			SaleEnd:       model.SaleEnd,
			Hidden:        !model.IsVisible,
			MinPerOrder:   model.MinPerOrder,
			MaxPerOrder:   model.MaxPerOrder,
			SortOrder:     model.SortOrder,
		},
		model.SoldQuantity,
		model.CreatedAt,
	)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
