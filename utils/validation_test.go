package utils

import (
	"CarePulse/models"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAppointment(t *testing.T) {
	base := models.Appointment{
		UserID:           "user-1",
		PatientID:        "patient-1",
		PrimaryPhysician: "Alex Ramirez",
		AppointmentDate:  time.Date(2026, 11, 2, 9, 30, 0, 0, time.UTC),
		Reason:           "Check-up",
		Status:           models.StatusScheduled,
	}

	cases := []struct {
		name   string
		mutate func(a *models.Appointment)
		field  string
	}{
		{"valid", func(a *models.Appointment) {}, ""},
		{"missing physician", func(a *models.Appointment) { a.PrimaryPhysician = "" }, "primaryPhysician"},
		{"missing date", func(a *models.Appointment) { a.AppointmentDate = time.Time{} }, "appointmentDate"},
		{"reason on active appointment", func(a *models.Appointment) { a.CancellationReason = "Travel" }, "cancellationReason"},
		{"unknown status", func(a *models.Appointment) { a.Status = "done" }, "status"},
		{"cancelled without reason", func(a *models.Appointment) { a.Status = models.StatusCancelled }, "cancellationReason"},
		{"cancelled needs no physician", func(a *models.Appointment) {
			a.Status = models.StatusCancelled
			a.CancellationReason = "Travel"
			a.PrimaryPhysician = ""
			a.Reason = ""
		}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := base
			tc.mutate(&a)
			err := ValidateAppointment(&a)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var errs validation.Errors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs, tc.field)
		})
	}
}

func TestValidateCreateUser(t *testing.T) {
	assert.NoError(t, ValidateCreateUser(models.CreateUserParams{Name: "Ada", Email: "ada@example.com", Phone: "+14155550100"}))

	err := ValidateCreateUser(models.CreateUserParams{Name: "A", Email: "nope", Phone: "555"})
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 11, 2, 14, 5, 0, 0, time.UTC)
	assert.Equal(t, "Nov 2, 2026, 2:05 PM", FormatDateTime(ts))
	assert.Equal(t, "11/02/2026", FormatDate(ts))
}
