package repository

import (
	"context"

	"meddesk-hms/internal/domain/entity"
	domainRepo "meddesk-hms/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error {
	return db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	result := db.WithContext(ctx).Where("id = ?", id).Find(&patient)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &patient, nil
}

// patientJoin walks Patient -> Party -> Person. A patient without its
// person row is not returned at all.
func patientJoin(db *gorm.DB) *gorm.DB {
	return db.Table("patients AS p").
		Joins("JOIN parties AS pa ON pa.id = p.party_id").
		Joins("JOIN persons AS pr ON pr.id = pa.id")
}

// FindAllSummaries returns every patient, most recently created first
func (r *patientRepository) FindAllSummaries(ctx context.Context, db *gorm.DB) ([]entity.PatientSummary, error) {
	var rows []entity.PatientSummary
	err := patientJoin(db.WithContext(ctx)).
		Select("p.id AS patient_id, pr.first_name, pr.last_name, pr.national_id").
		Order("p.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *patientRepository) FindDetailByID(ctx context.Context, db *gorm.DB, id int64) (*entity.PatientDetail, error) {
	var row entity.PatientDetail
	result := patientJoin(db.WithContext(ctx)).
		Select("p.id AS patient_id, pr.first_name, pr.last_name, pr.national_id, " +
			"pr.address, pr.gender, pr.date_of_birth, pr.phone_number").
		Where("p.id = ?", id).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}
