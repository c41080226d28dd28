package forms

import (
	"CarePulse/models"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

var (
	ErrMissingPatient     = errors.New("a patient is required to create an appointment")
	ErrMissingAppointment = errors.New("an existing appointment is required to update it")
	ErrEmptyResponse      = errors.New("the data service returned no record")
)

// AppointmentStore is the part of the data service the appointment form talks to.
type AppointmentStore interface {
	CreateAppointment(ctx context.Context, params models.CreateAppointmentParams) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, params models.UpdateAppointmentParams) (*models.Appointment, error)
}

// AppointmentSubmission is one press of the appointment form's submit button.
// PatientID is read in create mode, Appointment in schedule and cancel mode.
type AppointmentSubmission struct {
	UserID      string
	PatientID   string
	Appointment *models.Appointment
	Values      AppointmentValues
	Hooks       Hooks
}

// AppointmentSubmitter turns validated appointment values into one call to
// the data service, guarded so a form submits at most once at a time.
type AppointmentSubmitter struct {
	store  AppointmentStore
	guard  Guard
	logger zerolog.Logger
}

// NewAppointmentSubmitter returns a submitter writing through store.
func NewAppointmentSubmitter(store AppointmentStore, guard Guard, logger zerolog.Logger) *AppointmentSubmitter {
	return &AppointmentSubmitter{store: store, guard: guard, logger: logger}
}

// Submit performs the single data service call for the submission. Create
// navigates to the success page; schedule and cancel close the dialog.
// Failures are logged and returned in the Result.
func (s *AppointmentSubmitter) Submit(ctx context.Context, sub AppointmentSubmission) Result {
	if sub.Values == nil {
		return failed(fmt.Errorf("%w: no values", ErrUnknownMode))
	}
	mode := sub.Values.Mode()
	logger := s.logger.With().Str("mode", string(mode)).Str("user_id", sub.UserID).Logger()

	release, err := s.guard.Acquire(ctx, submissionKey(sub))
	if err != nil {
		logger.Warn().Err(err).Msg("appointment submission rejected")
		return failed(err)
	}
	defer release()

	var result Result
	if mode == ModeCreate {
		result = s.create(ctx, sub)
	} else {
		result = s.update(ctx, sub)
	}

	if result.Err != nil {
		logger.Error().Err(result.Err).Msg("appointment submission failed")
		return result
	}
	logger.Info().Str("appointment_id", result.Appointment.ID).Str("outcome", result.Outcome.String()).Msg("appointment submitted")
	return result
}

func (s *AppointmentSubmitter) create(ctx context.Context, sub AppointmentSubmission) Result {
	values, ok := sub.Values.(CreateValues)
	if !ok {
		return failed(fmt.Errorf("%w: %T", ErrUnknownMode, sub.Values))
	}
	if sub.PatientID == "" {
		return failed(ErrMissingPatient)
	}

	appointment, err := s.store.CreateAppointment(ctx, models.CreateAppointmentParams{
		UserID:           sub.UserID,
		Patient:          sub.PatientID,
		PrimaryPhysician: values.PrimaryPhysician,
		AppointmentDate:  values.AppointmentDate,
		Reason:           values.Reason,
		Note:             values.Note,
		Status:           StatusFor(ModeCreate),
	})
	if err != nil {
		return failed(err)
	}
	if appointment == nil || appointment.ID == "" {
		return failed(ErrEmptyResponse)
	}

	location := SuccessPath(sub.UserID, appointment.ID)
	sub.Hooks.reset()
	sub.Hooks.navigate(location)
	return Result{Outcome: OutcomeNavigated, Location: location, Appointment: appointment}
}

func (s *AppointmentSubmitter) update(ctx context.Context, sub AppointmentSubmission) Result {
	if sub.Appointment == nil || sub.Appointment.ID == "" {
		return failed(ErrMissingAppointment)
	}

	mode := sub.Values.Mode()
	changes := models.AppointmentChanges{Status: StatusFor(mode)}
	switch values := sub.Values.(type) {
	case ScheduleValues:
		changes.PrimaryPhysician = values.PrimaryPhysician
		changes.AppointmentDate = values.AppointmentDate
		changes.Reason = values.Reason
	case CancelValues:
		changes.CancellationReason = values.CancellationReason
	default:
		return failed(fmt.Errorf("%w: %T", ErrUnknownMode, sub.Values))
	}

	updated, err := s.store.UpdateAppointment(ctx, models.UpdateAppointmentParams{
		UserID:        sub.UserID,
		AppointmentID: sub.Appointment.ID,
		Appointment:   changes,
		Type:          string(mode),
	})
	if err != nil {
		return failed(err)
	}
	if updated == nil {
		return failed(ErrEmptyResponse)
	}

	sub.Hooks.close()
	sub.Hooks.reset()
	return Result{Outcome: OutcomeClosed, Appointment: updated}
}

func submissionKey(sub AppointmentSubmission) string {
	if sub.Values.Mode() == ModeCreate || sub.Appointment == nil {
		return "appointment:new:" + sub.UserID
	}
	return "appointment:" + sub.Appointment.ID
}

// NewAppointmentPath is the page where a registered patient books an appointment.
func NewAppointmentPath(userID string) string {
	return "/patients/" + url.PathEscape(userID) + "/new-appointment"
}

// SuccessPath is the confirmation page of a created appointment.
func SuccessPath(userID, appointmentID string) string {
	return NewAppointmentPath(userID) + "/success?appointmentId=" + url.QueryEscape(appointmentID)
}
