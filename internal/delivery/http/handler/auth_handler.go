package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"meddesk-hms/internal/converter"
	"meddesk-hms/internal/delivery/dto"
	"meddesk-hms/internal/usecase"
	"meddesk-hms/pkg/response"
	"meddesk-hms/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles a credential check
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	req.TrimSpace()

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.VerifyUserPassword(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDataAccessError(w, err, "Failed to login")
		return
	}

	if !result.OK {
		if result.Message == usecase.MsgAccountNotActive {
			response.Forbidden(w, result.Message)
			return
		}
		response.Unauthorized(w, result.Message)
		return
	}

	response.Success(w, http.StatusOK, result.Message, converter.UserToResponse(result.User))
}

// CreateUser registers an account
// @Summary Create user
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Create User Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /users [post]
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.CreateUser(r.Context(), converter.CreateUserRequestToInput(&req))
	if err != nil {
		if errors.Is(err, usecase.ErrUsernameAlreadyExists) {
			response.Conflict(w, "Username already exists")
			return
		}
		writeDataAccessError(w, err, "Failed to create user")
		return
	}

	response.Success(w, http.StatusCreated, "User created successfully", converter.UserToResponse(user))
}
