package forms

import (
	"CarePulse/models"
	"context"

	"github.com/stretchr/testify/mock"
)

type mockAppointmentStore struct {
	mock.Mock
}

func (m *mockAppointmentStore) CreateAppointment(ctx context.Context, params models.CreateAppointmentParams) (*models.Appointment, error) {
	args := m.Called(ctx, params)
	if a := args.Get(0); a != nil {
		return a.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAppointmentStore) UpdateAppointment(ctx context.Context, params models.UpdateAppointmentParams) (*models.Appointment, error) {
	args := m.Called(ctx, params)
	if a := args.Get(0); a != nil {
		return a.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRegistrar struct {
	mock.Mock
}

func (m *mockRegistrar) RegisterPatient(ctx context.Context, params models.RegisterPatientParams) (*models.Patient, error) {
	args := m.Called(ctx, params)
	if p := args.Get(0); p != nil {
		return p.(*models.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

// hookRecorder counts hook invocations.
type hookRecorder struct {
	navigations []string
	closes      int
	resets      int
}

func (r *hookRecorder) hooks() Hooks {
	return Hooks{
		Navigate: func(location string) { r.navigations = append(r.navigations, location) },
		Close:    func() { r.closes++ },
		Reset:    func() { r.resets++ },
	}
}
