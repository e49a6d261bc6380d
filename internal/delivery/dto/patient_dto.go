package dto

import "strings"

// PatientRequest is the body of POST /patients and PUT /patients/{id}.
// BirthDate is a calendar date in YYYY-MM-DD form.
type PatientRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

// TrimSpace strips surrounding whitespace so blank required fields fail validation
func (r *PatientRequest) TrimSpace() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.NationalID = strings.TrimSpace(r.NationalID)
	r.BirthDate = strings.TrimSpace(r.BirthDate)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
}

type PatientSummaryResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
}

type PatientResponse struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	NationalID string `json:"national_id"`
	BirthDate  string `json:"birth_date,omitempty"`
	Gender     string `json:"gender"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
}

type PatientCreatedResponse struct {
	ID int64 `json:"id"`
}
