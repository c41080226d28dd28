package handlers

import (
	"CarePulse/models"
	"CarePulse/services"
	"context"
)

// The data service operations the handlers depend on. Implemented by the
// services package.
type (
	UserService interface {
		CreateUser(ctx context.Context, params models.CreateUserParams) (*models.User, error)
		GetUser(ctx context.Context, id string) (*models.User, error)
	}

	PatientService interface {
		GetPatient(ctx context.Context, userID string) (*models.Patient, error)
		RegisterPatient(ctx context.Context, params models.RegisterPatientParams) (*models.Patient, error)
		GetDocument(ctx context.Context, id string) (*models.Document, error)
	}

	AppointmentService interface {
		CreateAppointment(ctx context.Context, params models.CreateAppointmentParams) (*models.Appointment, error)
		GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
		UpdateAppointment(ctx context.Context, params models.UpdateAppointmentParams) (*models.Appointment, error)
		GetRecentAppointmentList(ctx context.Context) (*models.AppointmentSummary, error)
	}

	// SubmissionObserver records how form submissions end.
	SubmissionObserver interface {
		ObserveSubmission(form, outcome string)
	}
)

var (
	_ UserService        = (*services.UserService)(nil)
	_ PatientService     = (*services.PatientService)(nil)
	_ AppointmentService = (*services.AppointmentService)(nil)
)

type nopObserver struct{}

func (nopObserver) ObserveSubmission(string, string) {}

func observerOrNop(o SubmissionObserver) SubmissionObserver {
	if o == nil {
		return nopObserver{}
	}
	return o
}
