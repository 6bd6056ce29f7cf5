package mappers

import (
	"fmt"

	"github.com/eventora/eventora/internal/domain/user"
	vo "github.com/eventora/eventora/internal/domain/user/valueobjects"
	"github.com/eventora/eventora/internal/infrastructure/persistence/models"
	"github.com/eventora/eventora/internal/shared/authorization"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:         u.ID(),
		ExternalID: u.ExternalID(),
		Email:      u.Email(),
		FirstName:  u.FirstName(),
		LastName:   u.LastName(),
		ImageURL:   u.ImageURL(),
		Username:   u.Username(),
		Phone:      u.Phone(),
		Role:       u.Role().String(),
		Status:     u.Status().String(),
		CreatedAt:  u.CreatedAt(),
		UpdatedAt:  u.UpdatedAt(),
	}
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	status := vo.Status(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid user status: %s", model.Status)
	}
	return user.ReconstructUser(
		model.ID,
		model.ExternalID,
		user.Profile{
			Email:     model.Email,
			FirstName: model.FirstName,
			LastName:  model.LastName,
			ImageURL:  model.ImageURL,
			Username:  model.Username,
			Phone:     model.Phone,
		},
		authorization.ParseUserRole(model.Role),
		status,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
