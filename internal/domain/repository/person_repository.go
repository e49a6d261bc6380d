package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"

	"gorm.io/gorm"
)

type PersonRepository interface {
	Create(ctx context.Context, db *gorm.DB, person *entity.Person) error
	// UpdateByID overwrites the mutable fields and reports the store's affected row count
	UpdateByID(ctx context.Context, db *gorm.DB, id int64, person *entity.Person) (int64, error)
}
