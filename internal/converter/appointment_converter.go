package converter

import (
	"time"

	"meddesk-hms/internal/delivery/dto"
	"meddesk-hms/internal/domain/entity"
)

// Quick-reservation defaults used when the request leaves a field out
const (
	DefaultDoctorID         int64 = 1
	DefaultAppointmentDelay       = 72 * time.Hour
)

// AppointmentFromRequest resolves the defaults against now
func AppointmentFromRequest(patientID int64, req *dto.AppointmentRequest, now time.Time) *entity.Appointment {
	appointment := &entity.Appointment{
		PatientID:     patientID,
		DoctorID:      req.DoctorID,
		AppointmentAt: now.Add(DefaultAppointmentDelay),
		Status:        entity.AppointmentStatus(req.Status),
	}
	if appointment.DoctorID == 0 {
		appointment.DoctorID = DefaultDoctorID
	}
	if req.AppointmentAt != "" {
		if when, err := time.Parse(time.RFC3339, req.AppointmentAt); err == nil {
			appointment.AppointmentAt = when
		}
	}
	if appointment.Status == "" {
		appointment.Status = entity.AppointmentStatusScheduled
	}
	return appointment
}

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	return &dto.AppointmentResponse{
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		AppointmentAt: appointment.AppointmentAt.Format(time.RFC3339),
		Status:        string(appointment.Status),
	}
}
