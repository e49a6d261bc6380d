package converter

import (
	"meddesk-hms/internal/delivery/dto"
	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/usecase"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		PartyID:  user.PartyID,
		Username: user.Username,
		Status:   user.AccountStatus,
	}
}

func CreateUserRequestToInput(req *dto.CreateUserRequest) *usecase.CreateUserInput {
	return &usecase.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		PartyID:  req.PartyID,
		Status:   req.Status,
	}
}
