package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"meddesk-hms/internal/converter"
	"meddesk-hms/internal/delivery/dto"
	"meddesk-hms/internal/usecase"
	"meddesk-hms/pkg/response"
	"meddesk-hms/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
	now                func() time.Time
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
		now:                time.Now,
	}
}

// ReserveAppointment books a visit for the patient in the path. An empty body
// reserves the default doctor three days from now.
func (h *AppointmentHandler) ReserveAppointment(w http.ResponseWriter, r *http.Request) {
	patientID, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	var req dto.AppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment := converter.AppointmentFromRequest(patientID, &req, h.now())
	ok, err := h.appointmentUsecase.InsertAppointment(r.Context(), appointment.PatientID, appointment.DoctorID, appointment.AppointmentAt, appointment.Status)
	if err != nil {
		if usecase.IsForeignKeyViolation(err, "") {
			response.NotFound(w, "Patient or doctor not found")
			return
		}
		writeDataAccessError(w, err, "Failed to reserve appointment")
		return
	}
	if !ok {
		response.Conflict(w, "No reservation was made")
		return
	}

	response.Success(w, http.StatusCreated, "Appointment reserved", converter.AppointmentToResponse(appointment))
}
