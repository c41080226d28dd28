package forms

import (
	"CarePulse/models"
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validRawRegistration() RawRegistration {
	return RawRegistration{
		Name:                   "Ada Lovelace",
		Email:                  "Ada@Example.com ",
		Phone:                  "+14155550100",
		BirthDate:              "1990-12-10",
		Gender:                 "Female",
		Address:                "12 Analytical Row",
		Occupation:             "Engineer",
		EmergencyContactName:   "Charles Babbage",
		EmergencyContactNumber: "+14155550101",
		PrimaryPhysician:       "Leila Cameron",
		InsuranceProvider:      "BlueCross",
		InsurancePolicyNumber:  "ABC123",
		IdentificationType:     "Passport",
		IdentificationNumber:   "X1234567",
		TreatmentConsent:       true,
		DisclosureConsent:      true,
		PrivacyConsent:         true,
	}
}

func TestDecodeRegistration(t *testing.T) {
	v, err := DecodeRegistration(validRawRegistration())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", v.Email)
	assert.Equal(t, time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC), v.BirthDate)

	raw := validRawRegistration()
	raw.PrivacyConsent = false
	raw.Gender = "Unknown"
	raw.BirthDate = "10/12/1990"
	_, err = DecodeRegistration(raw)
	var errs validation.Errors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "privacyConsent")
	assert.Contains(t, errs, "gender")
	assert.Contains(t, errs, "birthDate")
}

func TestBuildRegistrationAttachment(t *testing.T) {
	v, err := DecodeRegistration(validRawRegistration())
	require.NoError(t, err)

	t.Run("first file becomes the attachment", func(t *testing.T) {
		v := v
		v.IdentificationDocument = []Upload{
			{Name: "passport.png", ContentType: "image/png", Content: []byte{0x89, 'P', 'N', 'G'}},
			{Name: "ignored.pdf", ContentType: "application/pdf", Content: []byte("%PDF")},
		}
		params := BuildRegistration("user-1", v)
		require.NotNil(t, params.IdentificationDocument)
		assert.Equal(t, "passport.png", params.IdentificationDocument.FileName)
		assert.Equal(t, "image/png", params.IdentificationDocument.ContentType)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, params.IdentificationDocument.Data)
	})

	t.Run("no files means no attachment", func(t *testing.T) {
		v := v
		v.IdentificationDocument = nil
		assert.Nil(t, BuildRegistration("user-1", v).IdentificationDocument)

		v.IdentificationDocument = []Upload{}
		assert.Nil(t, BuildRegistration("user-1", v).IdentificationDocument)
	})
}

func TestRegistrationSubmit(t *testing.T) {
	v, err := DecodeRegistration(validRawRegistration())
	require.NoError(t, err)
	v.IdentificationDocument = []Upload{{Name: "id.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.7")}}

	registrar := new(mockRegistrar)
	registrar.On("RegisterPatient", mock.Anything, mock.MatchedBy(func(p models.RegisterPatientParams) bool {
		return p.UserID == "user-1" &&
			p.IdentificationDocument != nil &&
			p.IdentificationDocument.FileName == "id.pdf" &&
			p.IdentificationDocument.ContentType == "application/pdf"
	})).Return(&models.Patient{ID: "patient-1"}, nil).Once()

	submitter := NewRegistrationSubmitter(registrar, NewLocalGuard(time.Minute), zerolog.Nop())
	rec := &hookRecorder{}
	result := submitter.Submit(context.Background(), RegistrationSubmission{UserID: "user-1", Values: v, Hooks: rec.hooks()})

	require.NoError(t, result.Err)
	assert.Equal(t, OutcomeNavigated, result.Outcome)
	assert.Equal(t, "/patients/user-1/new-appointment", result.Location)
	assert.Equal(t, []string{"/patients/user-1/new-appointment"}, rec.navigations)
	registrar.AssertExpectations(t)
}

func TestRegistrationSubmitFailure(t *testing.T) {
	registrar := new(mockRegistrar)
	registrar.On("RegisterPatient", mock.Anything, mock.Anything).Return(nil, errors.New("storage quota exceeded"))
	guard := NewLocalGuard(time.Minute)
	submitter := NewRegistrationSubmitter(registrar, guard, zerolog.Nop())
	rec := &hookRecorder{}

	var result Result
	assert.NotPanics(t, func() {
		result = submitter.Submit(context.Background(), RegistrationSubmission{UserID: "user-1", Hooks: rec.hooks()})
	})
	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Error(t, result.Err)
	assert.Empty(t, rec.navigations)

	release, err := guard.Acquire(context.Background(), "registration:user-1")
	require.NoError(t, err)
	release()
}
