package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
)

// Appointment is a scheduling record. No overlap or availability checks
// are attached to it.
type Appointment struct {
	PatientID     int64             `gorm:"column:patient_id;not null" json:"patient_id"`
	DoctorID      int64             `gorm:"column:doctor_id;not null" json:"doctor_id"`
	AppointmentAt time.Time         `gorm:"column:appointment_at;not null" json:"appointment_at"`
	Status        AppointmentStatus `gorm:"column:status;type:varchar(20);not null" json:"status"`
}

func (Appointment) TableName() string {
	return "appointments"
}
