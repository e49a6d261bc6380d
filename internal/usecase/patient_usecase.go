package usecase

import (
	"context"

	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	ListPatients(ctx context.Context) ([]entity.PatientSummary, error)
	GetPatientByID(ctx context.Context, id int64) (*entity.PatientRecord, error)
	InsertPatient(ctx context.Context, input *entity.PatientInput) (int64, error)
	UpdatePatientByID(ctx context.Context, id int64, input *entity.PatientInput) (bool, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	partyRepo   repository.PartyRepository
	personRepo  repository.PersonRepository
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	partyRepo repository.PartyRepository,
	personRepo repository.PersonRepository,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		partyRepo:   partyRepo,
		personRepo:  personRepo,
		patientRepo: patientRepo,
	}
}

// ListPatients returns all patients, most recently created first
func (u *patientUsecase) ListPatients(ctx context.Context) ([]entity.PatientSummary, error) {
	patients, err := u.patientRepo.FindAllSummaries(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, dataAccessError("list patients", err)
	}
	return patients, nil
}

// GetPatientByID returns nil without an error when the patient does not exist
func (u *patientUsecase) GetPatientByID(ctx context.Context, id int64) (*entity.PatientRecord, error) {
	detail, err := u.patientRepo.FindDetailByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return nil, dataAccessError("get patient", err)
	}
	if detail == nil {
		return nil, nil
	}
	return detail.Normalize(), nil
}

// InsertPatient creates the Party, Person and Patient rows in one transaction
// and returns the new patient ID. Nothing is left behind if any step fails.
func (u *patientUsecase) InsertPatient(ctx context.Context, input *entity.PatientInput) (int64, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return 0, dataAccessError("insert patient", tx.Error)
	}
	defer tx.Rollback()

	party := &entity.Party{PartyType: entity.PartyTypePerson}
	if err := u.partyRepo.Create(ctx, tx, party); err != nil {
		u.log.Warnf("Failed to create party: %+v", err)
		return 0, dataAccessError("insert patient", err)
	}

	if err := u.personRepo.Create(ctx, tx, newPerson(party.ID, input)); err != nil {
		u.log.Warnf("Failed to create person for party %d: %+v", party.ID, err)
		return 0, dataAccessError("insert patient", err)
	}

	patient := &entity.Patient{PartyID: party.ID}
	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		u.log.Warnf("Failed to create patient for party %d: %+v", party.ID, err)
		return 0, dataAccessError("insert patient", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return 0, dataAccessError("insert patient", err)
	}

	return patient.ID, nil
}

// UpdatePatientByID resolves the patient's party and rewrites its Person row.
// The lookup and the update run separately: a patient removed in between
// makes the update touch zero rows and the call return false.
func (u *patientUsecase) UpdatePatientByID(ctx context.Context, id int64, input *entity.PatientInput) (bool, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return false, dataAccessError("update patient", err)
	}
	if patient == nil {
		return false, nil
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return false, dataAccessError("update patient", tx.Error)
	}
	defer tx.Rollback()

	affected, err := u.personRepo.UpdateByID(ctx, tx, patient.PartyID, newPerson(patient.PartyID, input))
	if err != nil {
		u.log.Warnf("Failed to update person %d: %+v", patient.PartyID, err)
		return false, dataAccessError("update patient", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, dataAccessError("update patient", err)
	}

	return affected > 0, nil
}

func newPerson(partyID int64, input *entity.PatientInput) *entity.Person {
	return &entity.Person{
		ID:          partyID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		NationalID:  input.NationalID,
		Address:     input.Address,
		Gender:      input.Gender,
		DateOfBirth: input.BirthDate,
		PhoneNumber: input.Phone,
	}
}
