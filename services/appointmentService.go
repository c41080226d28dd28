package services

import (
	"CarePulse/models"
	"CarePulse/repositories"
	"CarePulse/utils"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Update types accepted by UpdateAppointment.
const (
	UpdateTypeSchedule = "schedule"
	UpdateTypeCancel   = "cancel"
)

// AppointmentService creates and updates appointments and enforces their
// lifecycle.
type AppointmentService struct {
	appointments repositories.AppointmentRepository
	patients     repositories.PatientRepository
	notifier     Notifier
	logger       zerolog.Logger
}

func NewAppointmentService(
	appointments repositories.AppointmentRepository,
	patients repositories.PatientRepository,
	notifier Notifier,
	logger zerolog.Logger,
) *AppointmentService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &AppointmentService{
		appointments: appointments,
		patients:     patients,
		notifier:     notifier,
		logger:       logger,
	}
}

// CreateAppointment books a new appointment for the patient owned by params.UserID.
func (s *AppointmentService) CreateAppointment(ctx context.Context, params models.CreateAppointmentParams) (*models.Appointment, error) {
	patient, err := s.patients.GetByUserID(ctx, params.UserID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.ID != params.Patient {
		return nil, fmt.Errorf("patient %s: %w", params.Patient, ErrNotFound)
	}

	// Every appointment starts pending; schedule and cancel are updates.
	if params.Status != "" && params.Status != models.StatusPending {
		return nil, fmt.Errorf("%w: new appointments must be %q, got %q", ErrInvalidTransition, models.StatusPending, params.Status)
	}
	appointment := &models.Appointment{
		ID:               uuid.New().String(),
		UserID:           params.UserID,
		PatientID:        params.Patient,
		PrimaryPhysician: params.PrimaryPhysician,
		AppointmentDate:  params.AppointmentDate,
		Reason:           params.Reason,
		Note:             params.Note,
		Status:           models.StatusPending,
	}
	if err := utils.ValidateAppointment(appointment); err != nil {
		return nil, err
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetAppointment returns ErrNotFound for an unknown id.
func (s *AppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appointment, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, ErrNotFound
	}
	return appointment, nil
}

// UpdateAppointment schedules or cancels an existing appointment. A cancelled
// appointment is final.
func (s *AppointmentService) UpdateAppointment(ctx context.Context, params models.UpdateAppointmentParams) (*models.Appointment, error) {
	if params.AppointmentID == "" {
		return nil, fmt.Errorf("appointment id is required: %w", ErrNotFound)
	}
	changes := params.Appointment
	switch params.Type {
	case UpdateTypeSchedule:
		if changes.Status != models.StatusScheduled {
			return nil, fmt.Errorf("%w: schedule must set status %q", ErrInvalidTransition, models.StatusScheduled)
		}
	case UpdateTypeCancel:
		if changes.Status != models.StatusCancelled {
			return nil, fmt.Errorf("%w: cancel must set status %q", ErrInvalidTransition, models.StatusCancelled)
		}
	default:
		return nil, fmt.Errorf("%w: unknown update type %q", ErrInvalidTransition, params.Type)
	}

	updated, err := s.appointments.Update(ctx, params.AppointmentID, func(a *models.Appointment) error {
		if params.UserID != "" && a.UserID != params.UserID {
			return fmt.Errorf("appointment %s: %w", a.ID, ErrNotFound)
		}
		if a.Status == models.StatusCancelled {
			return fmt.Errorf("%w: appointment %s is cancelled", ErrInvalidTransition, a.ID)
		}
		applyChanges(a, changes)
		return utils.ValidateAppointment(a)
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, fmt.Errorf("appointment %s: %w", params.AppointmentID, ErrNotFound)
	}

	if err := s.notifier.AppointmentUpdated(ctx, updated); err != nil {
		s.logger.Error().Err(err).Str("appointment_id", updated.ID).Msg("failed to notify patient")
	}
	return updated, nil
}

// applyChanges copies the mutated fields. The cancellation reason only
// survives on a cancelled appointment.
func applyChanges(a *models.Appointment, changes models.AppointmentChanges) {
	a.Status = changes.Status
	if changes.Status == models.StatusCancelled {
		a.CancellationReason = changes.CancellationReason
		return
	}
	if changes.PrimaryPhysician != "" {
		a.PrimaryPhysician = changes.PrimaryPhysician
	}
	if !changes.AppointmentDate.IsZero() {
		a.AppointmentDate = changes.AppointmentDate
	}
	if changes.Reason != "" {
		a.Reason = changes.Reason
	}
	a.CancellationReason = ""
}

// GetRecentAppointmentList returns every appointment, newest first, with
// per-status counts.
func (s *AppointmentService) GetRecentAppointmentList(ctx context.Context) (*models.AppointmentSummary, error) {
	appointments, err := s.appointments.ListRecent(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &models.AppointmentSummary{
		TotalCount:     int64(len(appointments)),
		ScheduledCount: counts[models.StatusScheduled],
		PendingCount:   counts[models.StatusPending],
		CancelledCount: counts[models.StatusCancelled],
		Documents:      appointments,
	}, nil
}
