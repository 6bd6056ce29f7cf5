package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/eventora/eventora/internal/domain/waitlist"
	"github.com/eventora/eventora/internal/infrastructure/persistence/mappers"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/db"
	apperrors "github.com/eventora/eventora/internal/shared/errors"
)

type WaitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{db: db}
}

func (r *WaitlistRepository) GetByEventAndUser(ctx context.Context, eventID, userID uint) (*waitlist.Entry, error) {
	var model models.WaitlistEntryModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get waitlist entry: %w", err)
	}
	return mappers.WaitlistEntryToDomain(&model), nil
}

func (r *WaitlistRepository) Create(ctx context.Context, entry *waitlist.Entry) error {
	model := mappers.WaitlistEntryToModel(entry)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return waitlist.ErrAlreadyJoined
		}
		return fmt.Errorf("failed to create waitlist entry: %w", err)
	}
	entry.SetID(model.ID)
	return nil
}

func (r *WaitlistRepository) CountByEvent(ctx context.Context, eventID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.WaitlistEntryModel{}).
		Where("event_id = ? AND status = ?", eventID, string(waitlist.StatusWaiting)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count waitlist: %w", err)
	}
	return count, nil
}
