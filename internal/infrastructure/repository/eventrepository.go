package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/domain/event"
	vo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/persistence/mappers"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/constants"
	"github.com/eventora/eventora/internal/shared/db"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *event.Event) error {
	model := mappers.EventToModel(e)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return e.SetID(model.ID)
}

func (r *EventRepository) Update(ctx context.Context, e *event.Event) error {
	model := mappers.EventToModel(e)
	// Save writes every column, including false and nil values.
	if err := db.GetTxFromContext(ctx, r.db).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uint) (*event.Event, error) {
	var model models.EventModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return mappers.EventToDomain(&model)
}

func (r *EventRepository) GetByIDs(ctx context.Context, ids []uint) ([]*event.Event, error) {
	if len(ids) == 0 {
		return []*event.Event{}, nil
	}
	var eventModels []models.EventModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return toEvents(eventModels)
}

func (r *EventRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.EventModel{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return count > 0, nil
}

func (r *EventRepository) publicScope(q *gorm.DB) *gorm.DB {
	return q.Where("is_published = ? AND approval_status = ?", true, vo.ApprovalApproved.String())
}

func (r *EventRepository) GetPublishedBySlug(ctx context.Context, slug string) (*event.Event, error) {
	var model models.EventModel
	err := r.publicScope(db.GetTxFromContext(ctx, r.db)).
		Where("slug = ?", slug).
		Order("created_at DESC, id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, event.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event by slug: %w", err)
	}
	return mappers.EventToDomain(&model)
}

func (r *EventRepository) ListPublished(ctx context.Context, filter event.ListFilter) ([]*event.Event, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DefaultEventListLimit
	}
	if limit > constants.MaxEventListLimit {
		limit = constants.MaxEventListLimit
	}

	q := r.publicScope(db.GetTxFromContext(ctx, r.db))
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		q = q.Where(
			"LOWER(title) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!' OR LOWER(location_name) LIKE ? ESCAPE '!' OR LOWER(tags) LIKE ? ESCAPE '!'",
			pattern, pattern, pattern, pattern,
		)
	}

	var eventModels []models.EventModel
	if err := q.Order("start_date ASC, id ASC").Limit(limit).Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list published events: %w", err)
	}
	return toEvents(eventModels)
}

func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID uint) ([]*event.Event, error) {
	var eventModels []models.EventModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("organizer_id = ?", organizerID).
		Order("created_at DESC, id DESC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list organizer events: %w", err)
	}
	return toEvents(eventModels)
}

func (r *EventRepository) ListByApprovalStatus(ctx context.Context, status vo.ApprovalStatus) ([]*event.Event, error) {
	var eventModels []models.EventModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("approval_status = ?", status.String()).
		Order("created_at ASC, id ASC").
		Find(&eventModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list events by approval status: %w", err)
	}
	return toEvents(eventModels)
}

func toEvents(eventModels []models.EventModel) ([]*event.Event, error) {
	events := make([]*event.Event, 0, len(eventModels))
	for i := range eventModels {
		e, err := mappers.EventToDomain(&eventModels[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

// escapeLike escapes LIKE wildcards using '!' as the escape character.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
