package event

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/eventora/eventora/internal/domain/event/valueobjects"
	"github.com/eventora/eventora/internal/shared/biztime"
)

const (
	DefaultMinOrder = 1
	DefaultMaxOrder = 10
)

// Event is the unit of sale. It is created as an unpublished draft
// awaiting admin review and is only visible publicly once approved.
type Event struct {
	id               uint
	organizerID      uint
	categoryID       uint
	title            string
	slug             string
	description      string
	shortDescription string
	locationName     string
	address          string
	latitude         *float64
	longitude        *float64
	startDate        time.Time
	endDate          time.Time
	timezone         string
	coverImageURL    string
	galleryImages    []string
	tags             []string
	totalCapacity    int
	minOrder         int
	maxOrder         int
	isPublished      bool
	approvalStatus   vo.ApprovalStatus
	approvalNotes    string
	reviewedBy       *uint
	reviewedAt       *time.Time
	createdAt        time.Time
	updatedAt        time.Time
}

// Details are the organizer-editable fields of an event.
type Details struct {
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

func (d *Details) normalize() error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return fmt.Errorf("event title is required")
	}
	if d.StartDate.IsZero() || d.EndDate.IsZero() {
		return fmt.Errorf("event start and end dates are required")
	}
	if d.EndDate.Before(d.StartDate) {
		return fmt.Errorf("event end date must not be before start date")
	}
	if d.TotalCapacity < 0 {
		return fmt.Errorf("total capacity cannot be negative")
	}
	if d.MinOrder == 0 {
		d.MinOrder = DefaultMinOrder
	}
	if d.MaxOrder == 0 {
		d.MaxOrder = DefaultMaxOrder
	}
	if d.MinOrder < 1 || d.MaxOrder < d.MinOrder {
		return fmt.Errorf("invalid order limits: min %d, max %d", d.MinOrder, d.MaxOrder)
	}
	if d.Timezone == "" {
		d.Timezone = "UTC"
	}
	if _, err := time.LoadLocation(d.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q", d.Timezone)
	}
	d.Tags = normalizeTags(d.Tags)
	return nil
}

func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

// NewEvent creates an unpublished event pending review.
func NewEvent(organizerID uint, slug string, details Details) (*Event, error) {
	if organizerID == 0 {
		return nil, fmt.Errorf("organizer ID is required")
	}
	if slug == "" {
		return nil, fmt.Errorf("event slug is required")
	}
	if err := details.normalize(); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	e := &Event{
		organizerID:    organizerID,
		slug:           slug,
		isPublished:    false,
		approvalStatus: vo.ApprovalPending,
		createdAt:      now,
		updatedAt:      now,
	}
	e.applyDetails(details)
	return e, nil
}

// ReconstructEvent rebuilds an event from persistence
func ReconstructEvent(
	id, organizerID uint,
	slug string,
	details Details,
	isPublished bool,
	approvalStatus vo.ApprovalStatus,
	approvalNotes string,
	reviewedBy *uint,
	reviewedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Event {
	e := &Event{
		id:             id,
		organizerID:    organizerID,
		slug:           slug,
		isPublished:    isPublished,
		approvalStatus: approvalStatus,
		approvalNotes:  approvalNotes,
		reviewedBy:     reviewedBy,
		reviewedAt:     reviewedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
	e.applyDetails(details)
	return e
}

func (e *Event) applyDetails(d Details) {
	e.categoryID = d.CategoryID
	e.title = d.Title
	e.description = d.Description
	e.shortDescription = d.ShortDescription
	e.locationName = d.LocationName
	e.address = d.Address
	e.latitude = d.Latitude
	e.longitude = d.Longitude
	e.startDate = d.StartDate.UTC()
	e.endDate = d.EndDate.UTC()
	e.timezone = d.Timezone
	e.coverImageURL = d.CoverImageURL
	e.galleryImages = d.GalleryImages
	e.tags = d.Tags
	e.totalCapacity = d.TotalCapacity
	e.minOrder = d.MinOrder
	e.maxOrder = d.MaxOrder
}

// UpdateDetails edits the event. Only allowed before review.
func (e *Event) UpdateDetails(details Details) error {
	if !e.approvalStatus.IsPending() {
		return ErrEventNotEditable
	}
	if err := details.normalize(); err != nil {
		return err
	}
	e.applyDetails(details)
	e.updatedAt = biztime.NowUTC()
	return nil
}

// Review applies an admin decision. Approving publishes the event in the
// same change; rejecting leaves it unpublished.
func (e *Event) Review(decision vo.ReviewDecision, reviewerID uint, notes string, now time.Time) error {
	if !decision.IsValid() {
		return fmt.Errorf("invalid review decision %q", decision)
	}
	target := decision.TargetStatus()
	if !e.approvalStatus.CanTransitionTo(target) {
		return ErrEventAlreadyReviewed
	}

	e.approvalStatus = target
	e.isPublished = target.IsApproved()
	e.approvalNotes = strings.TrimSpace(notes)
	e.reviewedBy = &reviewerID
	reviewedAt := now.UTC()
	e.reviewedAt = &reviewedAt
	e.updatedAt = reviewedAt
	return nil
}

// IsPubliclyVisible reports whether the event may be listed and sold.
func (e *Event) IsPubliclyVisible() bool {
	return e.isPublished && e.approvalStatus.IsApproved()
}

func (e *Event) IsOwnedBy(userID uint) bool {
	return userID != 0 && e.organizerID == userID
}

func (e *Event) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("event ID is already set")
	}
	e.id = id
	return nil
}

// Details returns the editable fields as a value.
func (e *Event) Details() Details {
	return Details{
		CategoryID:       e.categoryID,
		Title:            e.title,
		Description:      e.description,
		ShortDescription: e.shortDescription,
		LocationName:     e.locationName,
		Address:          e.address,
		Latitude:         e.latitude,
		Longitude:        e.longitude,
		StartDate:        e.startDate,
		EndDate:          e.endDate,
		Timezone:         e.timezone,
		CoverImageURL:    e.coverImageURL,
		GalleryImages:    e.galleryImages,
		Tags:             e.tags,
		TotalCapacity:    e.totalCapacity,
		MinOrder:         e.minOrder,
		MaxOrder:         e.maxOrder,
	}
}

func (e *Event) ID() uint { return e.id }
func (e *Event) OrganizerID() uint { return e.organizerID }
func (e *Event) CategoryID() uint { return e.categoryID }
func (e *Event) Title() string { return e.title }
func (e *Event) Slug() string { return e.slug }
func (e *Event) Description() string { return e.description }
func (e *Event) ShortDescription() string { return e.shortDescription }
func (e *Event) LocationName() string { return e.locationName }
func (e *Event) Address() string { return e.address }
func (e *Event) StartDate() time.Time { return e.startDate }
func (e *Event) EndDate() time.Time { return e.endDate }
func (e *Event) Timezone() string { return e.timezone }
func (e *Event) CoverImageURL() string { return e.coverImageURL }
func (e *Event) GalleryImages() []string { return e.galleryImages }
func (e *Event) Latitude() *float64 { return e.latitude }
func (e *Event) Longitude() *float64 { return e.longitude }
func (e *Event) Tags() []string { return e.tags }
func (e *Event) TotalCapacity() int { return e.totalCapacity }
func (e *Event) MinOrder() int { return e.minOrder }
func (e *Event) MaxOrder() int { return e.maxOrder }
func (e *Event) IsPublished() bool { return e.isPublished }
func (e *Event) ApprovalStatus() vo.ApprovalStatus { return e.approvalStatus }
func (e *Event) ApprovalNotes() string { return e.approvalNotes }
func (e *Event) ReviewedBy() *uint { return e.reviewedBy }
func (e *Event) ReviewedAt() *time.Time { return e.reviewedAt }
func (e *Event) CreatedAt() time.Time { return e.createdAt }
func (e *Event) UpdatedAt() time.Time { return e.updatedAt }
