package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*entity.User, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}
