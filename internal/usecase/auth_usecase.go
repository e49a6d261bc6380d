package usecase

import (
	"context"
	"errors"
	"fmt"

	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/domain/repository"
	"meddesk-hms/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Messages returned by VerifyUserPassword
const (
	MsgUserNotFound       = "User not found"
	MsgAccountNotActive   = "Account is not active"
	MsgInvalidCredentials = "Invalid username or password"
	MsgOK                 = "OK"
)

var ErrUsernameAlreadyExists = errors.New("username already exists")

// CreateUserInput describes a new account. Status defaults to Active.
type CreateUserInput struct {
	Username string
	Password string
	PartyID  *int64
	Status   string
}

// AuthResult is the outcome of a credential check. User is set only when OK.
type AuthResult struct {
	OK      bool
	User    *entity.User
	Message string
}

type AuthUsecase interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	VerifyUserPassword(ctx context.Context, username, password string) (*AuthResult, error)
}

type authUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	credentials service.CredentialVerifier
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	credentials service.CredentialVerifier,
) AuthUsecase {
	return &authUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		credentials: credentials,
	}
}

// GetUserByUsername returns nil without an error when no such user exists
func (u *authUsecase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := u.userRepo.FindByUsername(ctx, u.db, username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, dataAccessError("get user", err)
	}
	return user, nil
}

// CreateUser stores whatever the configured CredentialVerifier encodes.
// With PlaintextComparison that is the password itself.
func (u *authUsecase) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	status := input.Status
	if status == "" {
		status = entity.AccountStatusActive
	}

	stored, err := u.credentials.Encode(input.Password)
	if err != nil {
		u.log.Warnf("Failed to encode password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return nil, dataAccessError("create user", tx.Error)
	}
	defer tx.Rollback()

	user := &entity.User{
		PartyID:       input.PartyID,
		Username:      input.Username,
		PasswordHash:  stored,
		AccountStatus: status,
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		if IsDuplicateKey(err, "username") {
			return nil, dataAccessError("create user", fmt.Errorf("%w: %w", ErrUsernameAlreadyExists, err))
		}
		return nil, dataAccessError("create user", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, dataAccessError("create user", err)
	}

	return user, nil
}

// VerifyUserPassword checks existence, then account status, then the password.
// An inactive account is refused whether or not the password matches.
func (u *authUsecase) VerifyUserPassword(ctx context.Context, username, password string) (*AuthResult, error) {
	user, err := u.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return &AuthResult{Message: MsgUserNotFound}, nil
	}
	if !user.IsActive() {
		return &AuthResult{Message: MsgAccountNotActive}, nil
	}
	if !u.credentials.Verify(user.PasswordHash, password) {
		return &AuthResult{Message: MsgInvalidCredentials}, nil
	}

	return &AuthResult{OK: true, User: user, Message: MsgOK}, nil
}
