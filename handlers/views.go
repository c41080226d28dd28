package handlers

import (
	"CarePulse/forms"
	"CarePulse/models"
)

type page struct {
	Title string
}

type errorView struct {
	page
	Status  int
	Message string
}

type physicianSelect struct {
	Physicians []models.Physician
	Selected   string
}

type appointmentFormView struct {
	FormID        string
	AppointmentID string
	Mode          forms.Mode
	Values        forms.RawAppointment
	Fields        map[string]string
	Error         string
	Open          bool
}

func (v appointmentFormView) ButtonLabel() string {
	return v.Mode.ButtonLabel()
}

func (v appointmentFormView) PhysicianSelect() physicianSelect {
	return physicianSelect{Physicians: models.Physicians, Selected: v.Values.PrimaryPhysician}
}

type onboardingView struct {
	page
	Values       models.CreateUserParams
	Fields       map[string]string
	Error        string
	ShowPasskey  bool
	PasskeyError string
}

type registerView struct {
	page
	UserID              string
	Values              forms.RawRegistration
	Fields              map[string]string
	Error               string
	GenderOptions       []string
	IdentificationTypes []string
}

func (v registerView) PhysicianSelect() physicianSelect {
	return physicianSelect{Physicians: models.Physicians, Selected: v.Values.PrimaryPhysician}
}

type newAppointmentView struct {
	page
	UserID string
	Form   appointmentFormView
}

type successView struct {
	page
	UserID      string
	Appointment *models.Appointment
}

type appointmentRowView struct {
	Appointment *models.Appointment
	Schedule    appointmentFormView
	Cancel      appointmentFormView
}

// newAppointmentRow prefills both dialogs from the stored appointment.
func newAppointmentRow(a *models.Appointment, values forms.RawAppointment) appointmentRowView {
	return appointmentRowView{
		Appointment: a,
		Schedule: appointmentFormView{
			FormID: "schedule-" + a.ID, AppointmentID: a.ID, Mode: forms.ModeSchedule, Values: values,
		},
		Cancel: appointmentFormView{
			FormID: "cancel-" + a.ID, AppointmentID: a.ID, Mode: forms.ModeCancel, Values: values,
		},
	}
}

type adminView struct {
	page
	Summary *models.AppointmentSummary
	Rows    []appointmentRowView
}
