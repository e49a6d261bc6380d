package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindAllSummaries(ctx context.Context, db *gorm.DB) ([]entity.PatientSummary, error)
	FindDetailByID(ctx context.Context, db *gorm.DB, id int64) (*entity.PatientDetail, error)
}
