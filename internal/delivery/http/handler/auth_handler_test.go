package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/usecase"
	"meddesk-hms/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_StatusPerOutcome(t *testing.T) {
	admin := &entity.User{ID: 1, Username: "admin", PasswordHash: "admin123", AccountStatus: "Active"}

	tests := []struct {
		name    string
		result  *usecase.AuthResult
		code    int
		message string
	}{
		{"ok", &usecase.AuthResult{OK: true, User: admin, Message: usecase.MsgOK}, http.StatusOK, "OK"},
		{"not found", &usecase.AuthResult{Message: usecase.MsgUserNotFound}, http.StatusUnauthorized, "User not found"},
		{"inactive", &usecase.AuthResult{Message: usecase.MsgAccountNotActive}, http.StatusForbidden, "Account is not active"},
		{"wrong password", &usecase.AuthResult{Message: usecase.MsgInvalidCredentials}, http.StatusUnauthorized, "Invalid username or password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{
				VerifyUserPasswordFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
					return tt.result, nil
				},
			}, validator.NewValidator())

			rec, resp := serve(t, http.MethodPost, "/auth/login", "/auth/login",
				`{"username": "admin", "password": "admin123"}`, h.Login)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}

func TestLogin_DoesNotExposePassword(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{
		VerifyUserPasswordFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
			return &usecase.AuthResult{
				OK:      true,
				User:    &entity.User{ID: 1, Username: "admin", PasswordHash: "admin123", AccountStatus: "Active"},
				Message: usecase.MsgOK,
			}, nil
		},
	}, validator.NewValidator())

	rec, resp := serve(t, http.MethodPost, "/auth/login", "/auth/login",
		`{"username": "admin", "password": "admin123"}`, h.Login)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "admin123")
	assert.Equal(t, "admin", resp.Data.(map[string]interface{})["username"])
}

func TestLogin_MissingFields(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	rec, _ := serve(t, http.MethodPost, "/auth/login", "/auth/login", `{"username": "admin"}`, h.Login)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateUser(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{
		CreateUserFunc: func(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
			if input.Username == "admin" {
				return nil, &usecase.DataAccessError{
					Op:  "create user",
					Err: fmt.Errorf("%w: %w", usecase.ErrUsernameAlreadyExists, &pgconn.PgError{Code: "23505"}),
				}
			}
			return &entity.User{ID: 2, Username: input.Username, AccountStatus: entity.AccountStatusActive}, nil
		},
	}, validator.NewValidator())

	rec, resp := serve(t, http.MethodPost, "/users", "/users", `{"username": "nurse", "password": "pw"}`, h.CreateUser)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Active", resp.Data.(map[string]interface{})["status"])

	rec, _ = serve(t, http.MethodPost, "/users", "/users", `{"username": "admin", "password": "pw"}`, h.CreateUser)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = serve(t, http.MethodPost, "/users", "/users", `{"username": "x", "password": "pw", "status": "Suspended"}`, h.CreateUser)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_TrimsCredentials(t *testing.T) {
	var gotUser, gotPassword string
	h := NewAuthHandler(&mockAuthUsecase{
		VerifyUserPasswordFunc: func(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
			gotUser, gotPassword = username, password
			return &usecase.AuthResult{Message: usecase.MsgInvalidCredentials}, nil
		},
	}, validator.NewValidator())

	rec, _ := serve(t, http.MethodPost, "/auth/login", "/auth/login",
		`{"username": " admin ", "password": "\tadmin123 "}`, h.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "admin", gotUser)
	assert.Equal(t, "admin123", gotPassword)
}

func TestLogin_BlankCredentialsRejected(t *testing.T) {
	h := NewAuthHandler(&mockAuthUsecase{}, validator.NewValidator())

	rec, _ := serve(t, http.MethodPost, "/auth/login", "/auth/login",
		`{"username": "   ", "password": "x"}`, h.Login)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
