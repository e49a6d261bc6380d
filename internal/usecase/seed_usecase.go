package usecase

import (
	"context"

	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedUsecase provisions the fallback administrator account. It is kept
// apart from AuthUsecase because its caller is allowed to ignore failures.
type SeedUsecase interface {
	SeedDefaultAdmin(ctx context.Context, username, password string) (bool, error)
}

type seedUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	authUsecase AuthUsecase
}

func NewSeedUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository, authUsecase AuthUsecase) SeedUsecase {
	return &seedUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		authUsecase: authUsecase,
	}
}

// SeedDefaultAdmin creates an active, party-less account only when the users
// table is empty and the name is free. It reports whether a user was created.
func (u *seedUsecase) SeedDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := u.userRepo.Count(ctx, u.db)
	if err != nil {
		return false, dataAccessError("seed admin", err)
	}
	if count > 0 {
		return false, nil
	}

	existing, err := u.authUsecase.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	if _, err := u.authUsecase.CreateUser(ctx, &CreateUserInput{
		Username: username,
		Password: password,
		Status:   entity.AccountStatusActive,
	}); err != nil {
		return false, err
	}

	u.log.Infof("Seeded default account %q", username)
	return true, nil
}
