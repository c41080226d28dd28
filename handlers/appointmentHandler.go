package handlers

import (
	"CarePulse/forms"
	"CarePulse/services"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AppointmentHandler serves the patient facing appointment pages.
type AppointmentHandler struct {
	patients     PatientService
	appointments AppointmentService
	submitter    *forms.AppointmentSubmitter
	observer     SubmissionObserver
	now          func() time.Time
}

func NewAppointmentHandler(patients PatientService, appointments AppointmentService, submitter *forms.AppointmentSubmitter, observer SubmissionObserver) *AppointmentHandler {
	return &AppointmentHandler{
		patients:     patients,
		appointments: appointments,
		submitter:    submitter,
		observer:     observerOrNop(observer),
		now:          time.Now,
	}
}

// NewAppointmentPage renders the create form for a registered patient.
func (h *AppointmentHandler) NewAppointmentPage(c *gin.Context) {
	userID := c.Param("userId")
	if _, err := h.patients.GetPatient(c.Request.Context(), userID); err != nil {
		renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "new-appointment", h.newAppointmentView(userID, forms.DefaultsFor(nil, h.now())))
}

// CreateAppointment validates the create form and submits it.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID := c.Param("userId")
	ctx := c.Request.Context()

	patient, err := h.patients.GetPatient(ctx, userID)
	if err != nil {
		renderError(c, err)
		return
	}

	var raw forms.RawAppointment
	if err := c.ShouldBind(&raw); err != nil {
		view := h.newAppointmentView(userID, raw)
		view.Form.Error = "Invalid form submission"
		c.HTML(http.StatusBadRequest, "new-appointment", view)
		return
	}

	values, err := forms.DecodeAppointment(forms.ModeCreate, raw)
	if err != nil {
		h.observer.ObserveSubmission("appointment", "invalid")
		view := h.newAppointmentView(userID, raw)
		view.Form.Fields = fieldErrors(err)
		view.Form.Error = formError(err)
		c.HTML(statusFor(err), "new-appointment", view)
		return
	}

	result := h.submitter.Submit(ctx, forms.AppointmentSubmission{
		UserID:    userID,
		PatientID: patient.ID,
		Values:    values,
		Hooks:     forms.Hooks{Navigate: navigate(c)},
	})
	h.observer.ObserveSubmission("appointment", result.Outcome.String())
	if !result.OK() {
		view := h.newAppointmentView(userID, raw)
		view.Form.Fields = fieldErrors(result.Err)
		view.Form.Error = formError(result.Err)
		c.HTML(statusFor(result.Err), "new-appointment", view)
	}
}

// SuccessPage confirms a created appointment.
func (h *AppointmentHandler) SuccessPage(c *gin.Context) {
	userID := c.Param("userId")
	appointmentID := c.Query("appointmentId")
	if appointmentID == "" {
		c.Redirect(http.StatusSeeOther, forms.NewAppointmentPath(userID))
		return
	}

	appointment, err := h.appointments.GetAppointment(c.Request.Context(), appointmentID)
	if err == nil && appointment.UserID != userID {
		err = fmt.Errorf("appointment %s: %w", appointmentID, services.ErrNotFound)
	}
	if err != nil {
		renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, "success", successView{
		page:        page{Title: "Appointment requested"},
		UserID:      userID,
		Appointment: appointment,
	})
}

func (h *AppointmentHandler) newAppointmentView(userID string, values forms.RawAppointment) newAppointmentView {
	return newAppointmentView{
		page:   page{Title: "New appointment"},
		UserID: userID,
		Form: appointmentFormView{
			FormID: "create",
			Mode:   forms.ModeCreate,
			Values: values,
		},
	}
}
