package dto

// AppointmentRequest is the body of POST /patients/{id}/appointments.
// Omitted fields fall back to the front desk's quick-reservation defaults.
type AppointmentRequest struct {
	DoctorID      int64  `json:"doctor_id" validate:"omitempty,gt=0"`
	AppointmentAt string `json:"appointment_at" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Status        string `json:"status" validate:"omitempty,max=20"`
}

type AppointmentResponse struct {
	PatientID     int64  `json:"patient_id"`
	DoctorID      int64  `json:"doctor_id"`
	AppointmentAt string `json:"appointment_at"`
	Status        string `json:"status"`
}
