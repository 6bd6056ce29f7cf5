package dto

import (
	"time"

	"github.com/eventora/eventora/internal/domain/user"
)

// UserResponse represents the response for a user
type UserResponse struct {
	ID          uint      `json:"id"`
	ExternalID  string    `json:"external_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DisplayName string    `json:"display_name"`
	ImageURL    string    `json:"image_url,omitempty"`
	Username    string    `json:"username,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToUserResponse maps a user aggregate to its response DTO
func ToUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID(),
		ExternalID:  u.ExternalID(),
		Email:       u.Email(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		DisplayName: u.DisplayName(),
		ImageURL:    u.ImageURL(),
		Username:    u.Username(),
		Phone:       u.Phone(),
		Role:        u.Role().String(),
		Status:      string(u.Status()),
		CreatedAt:   u.CreatedAt(),
		UpdatedAt:   u.UpdatedAt(),
	}
}
