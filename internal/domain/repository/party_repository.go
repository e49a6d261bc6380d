package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"

	"gorm.io/gorm"
)

type PartyRepository interface {
	Create(ctx context.Context, db *gorm.DB, party *entity.Party) error
}
