package forms

import (
	"CarePulse/models"
	"CarePulse/utils"
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/rs/zerolog"
)

// Upload is a file picked in the identification document input.
type Upload struct {
	Name        string
	ContentType string
	Content     []byte
}

// RawRegistration is the unvalidated input of the registration form.
type RawRegistration struct {
	Name                   string `form:"name" json:"name"`
	Email                  string `form:"email" json:"email"`
	Phone                  string `form:"phone" json:"phone"`
	BirthDate              string `form:"birthDate" json:"birthDate"`
	Gender                 string `form:"gender" json:"gender"`
	Address                string `form:"address" json:"address"`
	Occupation             string `form:"occupation" json:"occupation"`
	EmergencyContactName   string `form:"emergencyContactName" json:"emergencyContactName"`
	EmergencyContactNumber string `form:"emergencyContactNumber" json:"emergencyContactNumber"`
	PrimaryPhysician       string `form:"primaryPhysician" json:"primaryPhysician"`
	InsuranceProvider      string `form:"insuranceProvider" json:"insuranceProvider"`
	InsurancePolicyNumber  string `form:"insurancePolicyNumber" json:"insurancePolicyNumber"`
	Allergies              string `form:"allergies" json:"allergies"`
	CurrentMedication      string `form:"currentMedication" json:"currentMedication"`
	FamilyMedicalHistory   string `form:"familyMedicalHistory" json:"familyMedicalHistory"`
	PastMedicalHistory     string `form:"pastMedicalHistory" json:"pastMedicalHistory"`
	IdentificationType     string `form:"identificationType" json:"identificationType"`
	IdentificationNumber   string `form:"identificationNumber" json:"identificationNumber"`
	TreatmentConsent       bool   `form:"treatmentConsent" json:"treatmentConsent"`
	DisclosureConsent      bool   `form:"disclosureConsent" json:"disclosureConsent"`
	PrivacyConsent         bool   `form:"privacyConsent" json:"privacyConsent"`
}

// RegistrationValues are validated registration fields plus the picked files.
type RegistrationValues struct {
	Name                   string    `json:"name"`
	Email                  string    `json:"email"`
	Phone                  string    `json:"phone"`
	BirthDate              time.Time `json:"birthDate"`
	Gender                 string    `json:"gender"`
	Address                string    `json:"address"`
	Occupation             string    `json:"occupation"`
	EmergencyContactName   string    `json:"emergencyContactName"`
	EmergencyContactNumber string    `json:"emergencyContactNumber"`
	PrimaryPhysician       string    `json:"primaryPhysician"`
	InsuranceProvider      string    `json:"insuranceProvider"`
	InsurancePolicyNumber  string    `json:"insurancePolicyNumber"`
	Allergies              string    `json:"allergies"`
	CurrentMedication      string    `json:"currentMedication"`
	FamilyMedicalHistory   string    `json:"familyMedicalHistory"`
	PastMedicalHistory     string    `json:"pastMedicalHistory"`
	IdentificationType     string    `json:"identificationType"`
	IdentificationNumber   string    `json:"identificationNumber"`
	IdentificationDocument []Upload  `json:"-"`
	TreatmentConsent       bool      `json:"treatmentConsent"`
	DisclosureConsent      bool      `json:"disclosureConsent"`
	PrivacyConsent         bool      `json:"privacyConsent"`
}

// Validate applies the registration schema.
func (v RegistrationValues) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.Name, validation.Required, utils.NameRule),
		validation.Field(&v.Email, validation.Required, is.EmailFormat),
		validation.Field(&v.Phone, validation.Required, utils.PhoneRule),
		validation.Field(&v.BirthDate, validation.Required),
		validation.Field(&v.Gender, validation.Required, utils.GenderRule),
		validation.Field(&v.Address, validation.Required, validation.Length(5, 500)),
		validation.Field(&v.Occupation, validation.Required, validation.Length(2, 500)),
		validation.Field(&v.EmergencyContactName, validation.Required, utils.NameRule),
		validation.Field(&v.EmergencyContactNumber, validation.Required, utils.PhoneRule),
		validation.Field(&v.PrimaryPhysician, validation.Required.Error("select at least one doctor"), utils.PhysicianRule),
		validation.Field(&v.InsuranceProvider, validation.Required, validation.Length(2, 50)),
		validation.Field(&v.InsurancePolicyNumber, validation.Required, validation.Length(2, 50)),
		validation.Field(&v.IdentificationType, utils.IDTypeRule),
		validation.Field(&v.TreatmentConsent, utils.ConsentRule),
		validation.Field(&v.DisclosureConsent, utils.ConsentRule),
		validation.Field(&v.PrivacyConsent, utils.ConsentRule),
	)
}

// DecodeRegistration trims and validates the registration input. Files are
// attached separately by the caller.
func DecodeRegistration(raw RawRegistration) (RegistrationValues, error) {
	birthDate, dateErr := ParseDateTime(raw.BirthDate)
	v := RegistrationValues{
		Name:                   strings.TrimSpace(raw.Name),
		Email:                  strings.ToLower(strings.TrimSpace(raw.Email)),
		Phone:                  strings.TrimSpace(raw.Phone),
		BirthDate:              birthDate,
		Gender:                 raw.Gender,
		Address:                strings.TrimSpace(raw.Address),
		Occupation:             strings.TrimSpace(raw.Occupation),
		EmergencyContactName:   strings.TrimSpace(raw.EmergencyContactName),
		EmergencyContactNumber: strings.TrimSpace(raw.EmergencyContactNumber),
		PrimaryPhysician:       raw.PrimaryPhysician,
		InsuranceProvider:      strings.TrimSpace(raw.InsuranceProvider),
		InsurancePolicyNumber:  strings.TrimSpace(raw.InsurancePolicyNumber),
		Allergies:              strings.TrimSpace(raw.Allergies),
		CurrentMedication:      strings.TrimSpace(raw.CurrentMedication),
		FamilyMedicalHistory:   strings.TrimSpace(raw.FamilyMedicalHistory),
		PastMedicalHistory:     strings.TrimSpace(raw.PastMedicalHistory),
		IdentificationType:     raw.IdentificationType,
		IdentificationNumber:   strings.TrimSpace(raw.IdentificationNumber),
		TreatmentConsent:       raw.TreatmentConsent,
		DisclosureConsent:      raw.DisclosureConsent,
		PrivacyConsent:         raw.PrivacyConsent,
	}
	if err := withFieldError(v.Validate(), "birthDate", dateErr); err != nil {
		return RegistrationValues{}, err
	}
	return v, nil
}

// PatientRegistrar is the part of the data service the registration form talks to.
type PatientRegistrar interface {
	RegisterPatient(ctx context.Context, params models.RegisterPatientParams) (*models.Patient, error)
}

// RegistrationSubmission is one submit of the registration form.
type RegistrationSubmission struct {
	UserID string
	Values RegistrationValues
	Hooks  Hooks
}

// RegistrationSubmitter registers a patient from validated form values.
type RegistrationSubmitter struct {
	registrar PatientRegistrar
	guard     Guard
	logger    zerolog.Logger
}

// NewRegistrationSubmitter returns a submitter writing through registrar.
func NewRegistrationSubmitter(registrar PatientRegistrar, guard Guard, logger zerolog.Logger) *RegistrationSubmitter {
	return &RegistrationSubmitter{registrar: registrar, guard: guard, logger: logger}
}

// BuildRegistration assembles the registerPatient request. Only the first
// picked file is sent, and only when one was picked.
func BuildRegistration(userID string, v RegistrationValues) models.RegisterPatientParams {
	params := models.RegisterPatientParams{
		UserID:                 userID,
		Name:                   v.Name,
		Email:                  v.Email,
		Phone:                  v.Phone,
		BirthDate:              v.BirthDate,
		Gender:                 v.Gender,
		Address:                v.Address,
		Occupation:             v.Occupation,
		EmergencyContactName:   v.EmergencyContactName,
		EmergencyContactNumber: v.EmergencyContactNumber,
		PrimaryPhysician:       v.PrimaryPhysician,
		InsuranceProvider:      v.InsuranceProvider,
		InsurancePolicyNumber:  v.InsurancePolicyNumber,
		Allergies:              v.Allergies,
		CurrentMedication:      v.CurrentMedication,
		FamilyMedicalHistory:   v.FamilyMedicalHistory,
		PastMedicalHistory:     v.PastMedicalHistory,
		IdentificationType:     v.IdentificationType,
		IdentificationNumber:   v.IdentificationNumber,
		TreatmentConsent:       v.TreatmentConsent,
		DisclosureConsent:      v.DisclosureConsent,
		PrivacyConsent:         v.PrivacyConsent,
	}
	if len(v.IdentificationDocument) > 0 {
		file := v.IdentificationDocument[0]
		params.IdentificationDocument = &models.Attachment{
			FileName:    file.Name,
			ContentType: file.ContentType,
			Data:        file.Content,
		}
	}
	return params
}

// Submit registers the patient and navigates to the new appointment page.
func (s *RegistrationSubmitter) Submit(ctx context.Context, sub RegistrationSubmission) Result {
	logger := s.logger.With().Str("user_id", sub.UserID).Logger()

	release, err := s.guard.Acquire(ctx, "registration:"+sub.UserID)
	if err != nil {
		logger.Warn().Err(err).Msg("registration rejected")
		return failed(err)
	}
	defer release()

	patient, err := s.registrar.RegisterPatient(ctx, BuildRegistration(sub.UserID, sub.Values))
	if err != nil {
		logger.Error().Err(err).Msg("registration failed")
		return failed(err)
	}
	if patient == nil {
		logger.Error().Err(ErrEmptyResponse).Msg("registration failed")
		return failed(ErrEmptyResponse)
	}

	location := NewAppointmentPath(sub.UserID)
	sub.Hooks.reset()
	sub.Hooks.navigate(location)
	logger.Info().Str("patient_id", patient.ID).Msg("patient registered")
	return Result{Outcome: OutcomeNavigated, Location: location, Patient: patient}
}
