package waitlist

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAlreadyJoined is returned by Create when a concurrent join won the race.
var ErrAlreadyJoined = errors.New("already on the waitlist")

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusNotified Status = "notified"
	StatusClaimed  Status = "claimed"
)

// Entry records a user's interest in a sold-out event.
type Entry struct {
	id        uint
	eventID   uint
	userID    uint
	status    Status
	createdAt time.Time
}

func NewEntry(eventID, userID uint, now time.Time) (*Entry, error) {
	if eventID == 0 || userID == 0 {
		return nil, fmt.Errorf("event and user are required")
	}
	return &Entry{
		eventID:   eventID,
		userID:    userID,
		status:    StatusWaiting,
		createdAt: now.UTC(),
	}, nil
}

func ReconstructEntry(id, eventID, userID uint, status Status, createdAt time.Time) *Entry {
	return &Entry{id: id, eventID: eventID, userID: userID, status: status, createdAt: createdAt}
}

func (e *Entry) SetID(id uint) { e.id = id }

func (e *Entry) ID() uint { return e.id }
func (e *Entry) EventID() uint { return e.eventID }
func (e *Entry) UserID() uint { return e.userID }
func (e *Entry) Status() Status { return e.status }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

type Repository interface {
	// GetByEventAndUser returns nil, nil when the user has not joined.
	GetByEventAndUser(ctx context.Context, eventID, userID uint) (*Entry, error)
	Create(ctx context.Context, entry *Entry) error
	CountByEvent(ctx context.Context, eventID uint) (int64, error)
}
