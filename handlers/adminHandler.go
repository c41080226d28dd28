package handlers

import (
	"CarePulse/forms"
	"CarePulse/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the dashboard and its schedule and cancel dialogs.
type AdminHandler struct {
	appointments AppointmentService
	submitter    *forms.AppointmentSubmitter
	observer     SubmissionObserver
}

func NewAdminHandler(appointments AppointmentService, submitter *forms.AppointmentSubmitter, observer SubmissionObserver) *AdminHandler {
	return &AdminHandler{appointments: appointments, submitter: submitter, observer: observerOrNop(observer)}
}

// Dashboard renders the recent appointment list for staff.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	summary, err := h.appointments.GetRecentAppointmentList(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}

	rows := make([]appointmentRowView, 0, len(summary.Documents))
	for i := range summary.Documents {
		a := &summary.Documents[i]
		rows = append(rows, newAppointmentRow(a, forms.DefaultsFor(a, a.AppointmentDate)))
	}
	c.HTML(http.StatusOK, "admin", adminView{
		page:    page{Title: "Admin"},
		Summary: summary,
		Rows:    rows,
	})
}

// UpdateAppointment handles a schedule or cancel dialog. The response is the
// refreshed table row; on success it also triggers close-dialog.
func (h *AdminHandler) UpdateAppointment(c *gin.Context) {
	mode, ok := forms.ParseMode(c.Param("action"))
	if !ok || mode == forms.ModeCreate {
		renderError(c, forms.ErrUnknownMode)
		return
	}

	ctx := c.Request.Context()
	appointment, err := h.appointments.GetAppointment(ctx, c.Param("appointmentId"))
	if err != nil {
		renderError(c, err)
		return
	}

	var raw forms.RawAppointment
	if err := c.ShouldBind(&raw); err != nil {
		renderError(c, err)
		return
	}

	values, err := forms.DecodeAppointment(mode, raw)
	if err != nil {
		h.observer.ObserveSubmission(string(mode), "invalid")
		c.HTML(statusFor(err), "appointmentRow", rowWithError(appointment, mode, raw, err))
		return
	}

	reset := false
	result := h.submitter.Submit(ctx, forms.AppointmentSubmission{
		UserID:      appointment.UserID,
		Appointment: appointment,
		Values:      values,
		Hooks: forms.Hooks{
			Close: func() { c.Header("HX-Trigger", "close-dialog") },
			Reset: func() { reset = true },
		},
	})
	h.observer.ObserveSubmission(string(mode), result.Outcome.String())
	if !result.OK() {
		c.HTML(statusFor(result.Err), "appointmentRow", rowWithError(appointment, mode, raw, result.Err))
		return
	}

	updated := result.Appointment
	if updated.Patient == nil {
		updated.Patient = appointment.Patient
	}
	next := raw
	if reset {
		next = forms.DefaultsFor(updated, updated.AppointmentDate)
	}
	c.HTML(http.StatusOK, "appointmentRow", newAppointmentRow(updated, next))
}

// rowWithError re-renders the row with the failed dialog left open.
func rowWithError(a *models.Appointment, mode forms.Mode, raw forms.RawAppointment, err error) appointmentRowView {
	row := newAppointmentRow(a, forms.DefaultsFor(a, a.AppointmentDate))
	form := &row.Schedule
	if mode == forms.ModeCancel {
		form = &row.Cancel
	}
	form.Values = raw
	form.Fields = fieldErrors(err)
	form.Error = formError(err)
	form.Open = true
	return row
}
