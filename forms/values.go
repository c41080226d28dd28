package forms

import (
	"CarePulse/models"
	"CarePulse/utils"
	"errors"
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Accepted date layouts, as sent by datetime-local and date inputs or JSON clients.
const (
	DateTimeLayout = "2006-01-02T15:04"
	DateLayout     = "2006-01-02"
)

var ErrUnknownMode = errors.New("unknown appointment form mode")

// RawAppointment is the unvalidated input of the appointment form.
type RawAppointment struct {
	PrimaryPhysician   string `form:"primaryPhysician" json:"primaryPhysician"`
	AppointmentDate    string `form:"appointmentDate" json:"appointmentDate"`
	Reason             string `form:"reason" json:"reason"`
	Note               string `form:"note" json:"note"`
	CancellationReason string `form:"cancellationReason" json:"cancellationReason"`
}

// DefaultsFor prefills the form from an existing appointment. A nil
// appointment yields an empty form dated now.
func DefaultsFor(a *models.Appointment, now time.Time) RawAppointment {
	if a == nil {
		return RawAppointment{AppointmentDate: now.Format(DateTimeLayout)}
	}
	return RawAppointment{
		PrimaryPhysician:   a.PrimaryPhysician,
		AppointmentDate:    a.AppointmentDate.Format(DateTimeLayout),
		Reason:             a.Reason,
		Note:               a.Note,
		CancellationReason: a.CancellationReason,
	}
}

// AppointmentValues is one of CreateValues, ScheduleValues or CancelValues.
type AppointmentValues interface {
	Mode() Mode
	Validate() error
}

// CreateValues are the fields of a new appointment.
type CreateValues struct {
	PrimaryPhysician string    `json:"primaryPhysician"`
	AppointmentDate  time.Time `json:"appointmentDate"`
	Reason           string    `json:"reason"`
	Note             string    `json:"note"`
}

func (CreateValues) Mode() Mode { return ModeCreate }

// Validate requires physician, date and reason.
func (v CreateValues) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.PrimaryPhysician, validation.Required.Error("select at least one doctor"), utils.PhysicianRule),
		validation.Field(&v.AppointmentDate, validation.Required),
		validation.Field(&v.Reason, validation.Required, utils.ReasonRule),
	)
}

// ScheduleValues confirms an appointment, optionally moving it.
type ScheduleValues struct {
	PrimaryPhysician string    `json:"primaryPhysician"`
	AppointmentDate  time.Time `json:"appointmentDate"`
	Reason           string    `json:"reason"`
}

func (ScheduleValues) Mode() Mode { return ModeSchedule }

// Validate requires physician and date. An empty reason keeps the stored one.
func (v ScheduleValues) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.PrimaryPhysician, validation.Required.Error("select at least one doctor"), utils.PhysicianRule),
		validation.Field(&v.AppointmentDate, validation.Required),
		validation.Field(&v.Reason, utils.ReasonRule),
	)
}

// CancelValues carry only the reason for cancelling.
type CancelValues struct {
	CancellationReason string `json:"cancellationReason"`
}

func (CancelValues) Mode() Mode { return ModeCancel }

// Validate requires the cancellation reason.
func (v CancelValues) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.CancellationReason, validation.Required, utils.ReasonRule),
	)
}

// DecodeAppointment builds the values variant for mode and validates it with
// that variant's schema. Validation failures are returned as validation.Errors.
func DecodeAppointment(mode Mode, raw RawAppointment) (AppointmentValues, error) {
	var (
		values  AppointmentValues
		dateErr error
	)
	switch mode {
	case ModeCreate:
		date, err := ParseDateTime(raw.AppointmentDate)
		dateErr = err
		values = CreateValues{
			PrimaryPhysician: strings.TrimSpace(raw.PrimaryPhysician),
			AppointmentDate:  date,
			Reason:           strings.TrimSpace(raw.Reason),
			Note:             strings.TrimSpace(raw.Note),
		}
	case ModeSchedule:
		date, err := ParseDateTime(raw.AppointmentDate)
		dateErr = err
		values = ScheduleValues{
			PrimaryPhysician: strings.TrimSpace(raw.PrimaryPhysician),
			AppointmentDate:  date,
			Reason:           strings.TrimSpace(raw.Reason),
		}
	case ModeCancel:
		values = CancelValues{CancellationReason: strings.TrimSpace(raw.CancellationReason)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	if err := withFieldError(values.Validate(), "appointmentDate", dateErr); err != nil {
		return nil, err
	}
	return values, nil
}

// ParseDateTime accepts the datetime-local layout or RFC 3339. An empty
// string is the zero time.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(DateTimeLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, validation.NewError("validation_date_invalid", "must be a valid date")
}

func withFieldError(err error, field string, fieldErr error) error {
	if fieldErr == nil {
		return err
	}
	if err == nil {
		return validation.Errors{field: fieldErr}
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return err
	}
	errs[field] = fieldErr
	return errs
}
