package user

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/shared/authorization"
	"github.com/eventora/eventora/internal/shared/biztime"
)

// User is an account mirrored from the external identity provider.
// Profile fields follow the provider; role and status are owned here.
type User struct {
	id         uint
	externalID string
	email      vo.Email
	firstName  string
	lastName   string
	imageURL   string
	username   string
	phone      string
	role       authorization.UserRole
	status     vo.Status
	createdAt  time.Time
	updatedAt  time.Time
}

// Profile is the provider-owned part of a user.
type Profile struct {
	Email     string
	FirstName string
	LastName  string
	ImageURL  string
	Username  string
	Phone     string
}

// NewUser creates an active attendee for a first-seen external identity.
func NewUser(externalID string, profile Profile) (*User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, fmt.Errorf("external identity is required")
	}
	email, err := vo.NewEmail(profile.Email)
	if err != nil {
		return nil, err
	}

	now := biztime.NowUTC()
	return &User{
		externalID: externalID,
		email:      email,
		firstName:  strings.TrimSpace(profile.FirstName),
		lastName:   strings.TrimSpace(profile.LastName),
		imageURL:   strings.TrimSpace(profile.ImageURL),
		username:   strings.TrimSpace(profile.Username),
		phone:      strings.TrimSpace(profile.Phone),
		role:       authorization.RoleAttendee,
		status:     vo.StatusActive,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

// ReconstructUser rebuilds a user from persistence
func ReconstructUser(
	id uint,
	externalID string,
	profile Profile,
	role authorization.UserRole,
	status vo.Status,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	e, err := vo.NewEmail(profile.Email)
	if err != nil {
		return nil, err
	}
	return &User{
		id:         id,
		externalID: externalID,
		email:      e,
		firstName:  profile.FirstName,
		lastName:   profile.LastName,
		imageURL:   profile.ImageURL,
		username:   profile.Username,
		phone:      profile.Phone,
		role:       role,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

// SyncProfile applies provider profile changes. Role and status are left alone.
func (u *User) SyncProfile(profile Profile) error {
	email, err := vo.NewEmail(profile.Email)
	if err != nil {
		return err
	}
	u.email = email
	u.firstName = strings.TrimSpace(profile.FirstName)
	u.lastName = strings.TrimSpace(profile.LastName)
	u.imageURL = strings.TrimSpace(profile.ImageURL)
	u.username = strings.TrimSpace(profile.Username)
	u.phone = strings.TrimSpace(profile.Phone)
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) ChangeStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	u.status = status
	u.updatedAt = biztime.NowUTC()
	return nil
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) ExternalID() string {
	return u.externalID
}

func (u *User) Email() string {
	return u.email.String()
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) ImageURL() string {
	return u.imageURL
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Phone() string {
	return u.phone
}

// DisplayName returns "First Last", falling back to the email address.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.firstName + " " + u.lastName)
	if name == "" {
		return u.email.String()
	}
	return name
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) Status() vo.Status {
	return u.status
}

func (u *User) IsActive() bool {
	return u.status.IsActive()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}
