package dto

import "strings"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TrimSpace strips surrounding whitespace from both credentials
func (r *LoginRequest) TrimSpace() {
	r.Username = strings.TrimSpace(r.Username)
	r.Password = strings.TrimSpace(r.Password)
}

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required"`
	PartyID  *int64 `json:"party_id,omitempty" validate:"omitempty,gt=0"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	PartyID  *int64 `json:"party_id,omitempty"`
	Username string `json:"username"`
	Status   string `json:"status"`
}
