package usecase

import (
	"context"
	"time"

	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	InsertAppointment(ctx context.Context, patientID, doctorID int64, when time.Time, status entity.AppointmentStatus) (bool, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(db *gorm.DB, log *logrus.Logger, appointmentRepo repository.AppointmentRepository) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
	}
}

// InsertAppointment books a slot as given. An empty status means Scheduled.
func (u *appointmentUsecase) InsertAppointment(ctx context.Context, patientID, doctorID int64, when time.Time, status entity.AppointmentStatus) (bool, error) {
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.log.Warnf("Failed to begin transaction: %+v", tx.Error)
		return false, dataAccessError("insert appointment", tx.Error)
	}
	defer tx.Rollback()

	appointment := &entity.Appointment{
		PatientID:     patientID,
		DoctorID:      doctorID,
		AppointmentAt: when,
		Status:        status,
	}
	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment for patient %d: %+v", patientID, err)
		return false, dataAccessError("insert appointment", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, dataAccessError("insert appointment", err)
	}

	return true, nil
}
