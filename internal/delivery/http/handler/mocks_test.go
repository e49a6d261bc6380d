package handler

import (
	"context"
	"time"

	"meddesk-hms/internal/domain/entity"
	"meddesk-hms/internal/usecase"
)

type mockPatientUsecase struct {
	ListPatientsFunc      func(ctx context.Context) ([]entity.PatientSummary, error)
	GetPatientByIDFunc    func(ctx context.Context, id int64) (*entity.PatientRecord, error)
	InsertPatientFunc     func(ctx context.Context, input *entity.PatientInput) (int64, error)
	UpdatePatientByIDFunc func(ctx context.Context, id int64, input *entity.PatientInput) (bool, error)
}

func (m *mockPatientUsecase) ListPatients(ctx context.Context) ([]entity.PatientSummary, error) {
	return m.ListPatientsFunc(ctx)
}

func (m *mockPatientUsecase) GetPatientByID(ctx context.Context, id int64) (*entity.PatientRecord, error) {
	return m.GetPatientByIDFunc(ctx, id)
}

func (m *mockPatientUsecase) InsertPatient(ctx context.Context, input *entity.PatientInput) (int64, error) {
	return m.InsertPatientFunc(ctx, input)
}

func (m *mockPatientUsecase) UpdatePatientByID(ctx context.Context, id int64, input *entity.PatientInput) (bool, error) {
	return m.UpdatePatientByIDFunc(ctx, id, input)
}

type mockAuthUsecase struct {
	GetUserByUsernameFunc  func(ctx context.Context, username string) (*entity.User, error)
	CreateUserFunc         func(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error)
	VerifyUserPasswordFunc func(ctx context.Context, username, password string) (*usecase.AuthResult, error)
}

func (m *mockAuthUsecase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return m.GetUserByUsernameFunc(ctx, username)
}

func (m *mockAuthUsecase) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	return m.CreateUserFunc(ctx, input)
}

func (m *mockAuthUsecase) VerifyUserPassword(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	return m.VerifyUserPasswordFunc(ctx, username, password)
}

type mockAppointmentUsecase struct {
	InsertAppointmentFunc func(ctx context.Context, patientID, doctorID int64, when time.Time, status entity.AppointmentStatus) (bool, error)
}

func (m *mockAppointmentUsecase) InsertAppointment(ctx context.Context, patientID, doctorID int64, when time.Time, status entity.AppointmentStatus) (bool, error) {
	return m.InsertAppointmentFunc(ctx, patientID, doctorID, when, status)
}
