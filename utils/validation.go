package utils

import (
	"CarePulse/models"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var phoneRegex = regexp.MustCompile(`^\+\d{10,15}$`)

// Shared field rules. Forms and the data services validate with the same set.
var (
	PhoneRule     = validation.Match(phoneRegex).Error("invalid phone number")
	PhysicianRule = validation.In(toInterfaces(models.PhysicianNames())...).Error("select one of the listed doctors")
	GenderRule    = validation.In(toInterfaces(models.GenderOptions)...).Error("select a gender")
	IDTypeRule    = validation.In(toInterfaces(models.IdentificationTypes)...).Error("select an identification type")
	NameRule      = validation.Length(2, 50).Error("name must be between 2 and 50 characters")
	ReasonRule    = validation.Length(2, 500).Error("reason must be between 2 and 500 characters")
	ConsentRule   = validation.Required.Error("consent is required to continue")
)

// ValidateCreateUser checks onboarding input.
func ValidateCreateUser(p models.CreateUserParams) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, NameRule),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Phone, validation.Required, PhoneRule),
	)
}

// ValidateAppointment enforces the appointment invariants on a stored record:
// every status other than cancelled needs a physician, a reason and a date,
// and a cancelled appointment needs a cancellation reason.
func ValidateAppointment(a *models.Appointment) error {
	active := a.Status != models.StatusCancelled
	return validation.ValidateStruct(a,
		validation.Field(&a.UserID, validation.Required),
		validation.Field(&a.PatientID, validation.Required),
		validation.Field(&a.Status, validation.Required, validation.In(
			models.StatusPending, models.StatusScheduled, models.StatusCancelled,
		)),
		validation.Field(&a.PrimaryPhysician, validation.When(active, validation.Required, PhysicianRule)),
		validation.Field(&a.Reason, validation.When(active, validation.Required, ReasonRule)),
		validation.Field(&a.AppointmentDate, validation.When(active, validation.Required)),
		validation.Field(&a.CancellationReason,
			validation.When(!active, validation.Required, ReasonRule).Else(validation.Empty)),
	)
}

// ValidateRegistration checks the fields the data service cannot accept without.
func ValidateRegistration(p *models.RegisterPatientParams) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.UserID, validation.Required),
		validation.Field(&p.Name, validation.Required, NameRule),
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Phone, validation.Required, PhoneRule),
		validation.Field(&p.BirthDate, validation.Required),
		validation.Field(&p.Gender, validation.Required, GenderRule),
		validation.Field(&p.PrimaryPhysician, validation.Required, PhysicianRule),
		validation.Field(&p.IdentificationType, IDTypeRule),
		validation.Field(&p.TreatmentConsent, ConsentRule),
		validation.Field(&p.DisclosureConsent, ConsentRule),
		validation.Field(&p.PrivacyConsent, ConsentRule),
	)
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
