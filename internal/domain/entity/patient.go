package entity

import (
	"strings"
	"time"
)

// Patient marks a Party as eligible for medical records and appointments
type Patient struct {
	ID      int64 `gorm:"primaryKey" json:"id"`
	PartyID int64 `gorm:"column:party_id;not null;index" json:"party_id"`
}

func (Patient) TableName() string {
	return "patients"
}

// PatientSummary is one row of the patient list
type PatientSummary struct {
	PatientID  int64  `gorm:"column:patient_id"`
	FirstName  string `gorm:"column:first_name"`
	LastName   string `gorm:"column:last_name"`
	NationalID string `gorm:"column:national_id"`
}

// PatientDetail is the full Patient -> Party -> Person projection.
// Nullable text columns are scanned as pointers and normalized by Normalize.
type PatientDetail struct {
	PatientID   int64      `gorm:"column:patient_id"`
	FirstName   *string    `gorm:"column:first_name"`
	LastName    *string    `gorm:"column:last_name"`
	NationalID  *string    `gorm:"column:national_id"`
	Address     *string    `gorm:"column:address"`
	Gender      *string    `gorm:"column:gender"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth"`
	PhoneNumber *string    `gorm:"column:phone_number"`
}

// PatientRecord is a patient as handed to callers: text trimmed, NULL text
// as "", BirthDate left nil when unknown.
type PatientRecord struct {
	ID         int64
	FirstName  string
	LastName   string
	NationalID string
	Address    string
	Gender     string
	BirthDate  *time.Time
	Phone      string
}

// Normalize converts the scanned row into a PatientRecord
func (d *PatientDetail) Normalize() *PatientRecord {
	return &PatientRecord{
		ID:         d.PatientID,
		FirstName:  trimmed(d.FirstName),
		LastName:   trimmed(d.LastName),
		NationalID: trimmed(d.NationalID),
		Address:    trimmed(d.Address),
		Gender:     trimmed(d.Gender),
		BirthDate:  d.DateOfBirth,
		Phone:      trimmed(d.PhoneNumber),
	}
}

// PatientInput carries the caller-supplied fields of a patient form.
// Required fields are checked by the caller, not here.
type PatientInput struct {
	FirstName  string
	LastName   string
	NationalID string
	BirthDate  *time.Time
	Gender     string
	Phone      string
	Address    string
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
