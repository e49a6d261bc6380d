package converter

import (
	"strconv"
	"strings"
	"time"

	"meddesk-hms/internal/delivery/dto"
	"meddesk-hms/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// PatientRequestToInput converts a validated request. The birth date has
// already been checked against dateLayout, so a parse failure leaves it nil.
func PatientRequestToInput(req *dto.PatientRequest) *entity.PatientInput {
	input := &entity.PatientInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		NationalID: req.NationalID,
		Gender:     req.Gender,
		Phone:      req.Phone,
		Address:    req.Address,
	}
	if req.BirthDate != "" {
		if dob, err := time.Parse(dateLayout, req.BirthDate); err == nil {
			input.BirthDate = &dob
		}
	}
	return input
}

func PatientRecordToResponse(record *entity.PatientRecord) *dto.PatientResponse {
	if record == nil {
		return nil
	}

	resp := &dto.PatientResponse{
		ID:         record.ID,
		FirstName:  record.FirstName,
		LastName:   record.LastName,
		NationalID: record.NationalID,
		Gender:     record.Gender,
		Phone:      record.Phone,
		Address:    record.Address,
	}
	if record.BirthDate != nil {
		resp.BirthDate = record.BirthDate.Format(dateLayout)
	}
	return resp
}

func PatientSummaryToResponse(summary entity.PatientSummary) dto.PatientSummaryResponse {
	return dto.PatientSummaryResponse{
		ID:         summary.PatientID,
		FirstName:  summary.FirstName,
		LastName:   summary.LastName,
		NationalID: summary.NationalID,
	}
}

// PatientSummariesToResponse keeps the rows whose id, names or national id
// contain query (case-insensitive), preserving their order. An empty query
// keeps every row.
func PatientSummariesToResponse(summaries []entity.PatientSummary, query string) []dto.PatientSummaryResponse {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]dto.PatientSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		if query != "" && !matchesSummary(s, query) {
			continue
		}
		result = append(result, PatientSummaryToResponse(s))
	}
	return result
}

func matchesSummary(s entity.PatientSummary, query string) bool {
	fields := []string{
		strconv.FormatInt(s.PatientID, 10),
		s.FirstName,
		s.LastName,
		s.NationalID,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
