package handler

import (
	"encoding/json"
	"net/http"

	"meddesk-hms/internal/converter"
	"meddesk-hms/internal/delivery/dto"
	"meddesk-hms/internal/usecase"
	"meddesk-hms/pkg/response"
	"meddesk-hms/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// ListPatients returns every patient, newest first, optionally narrowed by ?search=
func (h *PatientHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.patientUsecase.ListPatients(r.Context())
	if err != nil {
		writeDataAccessError(w, err, "Failed to load patients")
		return
	}

	search := r.URL.Query().Get("search")
	response.Success(w, http.StatusOK, "Patients retrieved successfully", converter.PatientSummariesToResponse(patients, search))
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	patient, err := h.patientUsecase.GetPatientByID(r.Context(), id)
	if err != nil {
		writeDataAccessError(w, err, "Failed to fetch patient")
		return
	}
	if patient == nil {
		response.NotFound(w, "Patient not found")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", converter.PatientRecordToResponse(patient))
}

func (h *PatientHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	id, err := h.patientUsecase.InsertPatient(r.Context(), converter.PatientRequestToInput(req))
	if err != nil {
		if usecase.IsDuplicateKey(err, "national_id") {
			response.Conflict(w, "National ID already exists")
			return
		}
		writeDataAccessError(w, err, "Failed to add patient")
		return
	}

	response.Success(w, http.StatusCreated, "Patient added successfully", dto.PatientCreatedResponse{ID: id})
}

func (h *PatientHandler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid patient ID")
		return
	}

	req, ok := h.decodePatient(w, r)
	if !ok {
		return
	}

	updated, err := h.patientUsecase.UpdatePatientByID(r.Context(), id, converter.PatientRequestToInput(req))
	if err != nil {
		writeDataAccessError(w, err, "Failed to update patient")
		return
	}
	if !updated {
		response.NotFound(w, "No rows were updated")
		return
	}

	response.Success(w, http.StatusOK, "Patient updated successfully", nil)
}

func (h *PatientHandler) decodePatient(w http.ResponseWriter, r *http.Request) (*dto.PatientRequest, bool) {
	var req dto.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return nil, false
	}
	req.TrimSpace()

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}
	return &req, true
}
