package services

import (
	"CarePulse/models"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientService() *PatientService {
	docs := newFakeDocumentRepo()
	return NewPatientService(newFakePatientRepo(docs), docs)
}

func withDocument(params models.RegisterPatientParams) models.RegisterPatientParams {
	params.IdentificationDocument = &models.Attachment{
		FileName:    "passport.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}
	return params
}

func validRegistration(userID string) models.RegisterPatientParams {
	return models.RegisterPatientParams{
		UserID:            userID,
		Name:              "Ada Lovelace",
		Email:             "ada@example.com",
		Phone:             "+15555550100",
		BirthDate:         time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC),
		Gender:            "Female",
		PrimaryPhysician:  "John Green",
		TreatmentConsent:  true,
		DisclosureConsent: true,
		PrivacyConsent:    true,
	}
}

func TestRegisterPatientWithDocument(t *testing.T) {
	docs := newFakeDocumentRepo()
	svc := NewPatientService(newFakePatientRepo(docs), docs)

	params := validRegistration("user-1")
	params.IdentificationDocument = &models.Attachment{
		FileName:    "passport.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}

	patient, err := svc.RegisterPatient(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, patient.IdentificationDocumentID)

	doc := docs.docs[*patient.IdentificationDocumentID]
	require.NotNil(t, doc)
	sum := sha256.Sum256([]byte("png-bytes"))
	assert.Equal(t, hex.EncodeToString(sum[:]), doc.Hash)
	assert.Equal(t, "passport.png", doc.FileName)
	assert.Equal(t, "image/png", doc.ContentType)
	assert.Equal(t, int64(9), doc.Size)
	assert.Equal(t, "/documents/"+doc.ID, patient.IdentificationDocumentURL)

	fetched, err := svc.GetDocument(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc, fetched)
}

func TestRegisterPatientWithoutDocument(t *testing.T) {
	docs := newFakeDocumentRepo()
	svc := NewPatientService(newFakePatientRepo(docs), docs)

	patient, err := svc.RegisterPatient(context.Background(), validRegistration("user-1"))
	require.NoError(t, err)
	assert.Nil(t, patient.IdentificationDocumentID)
	assert.Empty(t, docs.docs)

	got, err := svc.GetPatient(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, patient.ID, got.ID)
}

func TestRegisterPatientRejects(t *testing.T) {
	ctx := context.Background()

	t.Run("disallowed content type", func(t *testing.T) {
		svc := newPatientService()
		params := validRegistration("user-1")
		params.IdentificationDocument = &models.Attachment{FileName: "a.exe", ContentType: "application/x-msdownload", Data: []byte{1}}
		_, err := svc.RegisterPatient(ctx, params)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("missing consent", func(t *testing.T) {
		svc := newPatientService()
		params := validRegistration("user-1")
		params.PrivacyConsent = false
		_, err := svc.RegisterPatient(ctx, params)
		assert.Error(t, err)
	})

	t.Run("second registration for the same user", func(t *testing.T) {
		svc := newPatientService()
		_, err := svc.RegisterPatient(ctx, validRegistration("user-1"))
		require.NoError(t, err)
		_, err = svc.RegisterPatient(ctx, validRegistration("user-1"))
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestRegisterPatientFailureStoresNoDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("second registration with a document", func(t *testing.T) {
		docs := newFakeDocumentRepo()
		svc := NewPatientService(newFakePatientRepo(docs), docs)

		first, err := svc.RegisterPatient(ctx, withDocument(validRegistration("user-1")))
		require.NoError(t, err)
		_, err = svc.RegisterPatient(ctx, withDocument(validRegistration("user-1")))
		require.ErrorIs(t, err, ErrConflict)

		require.Len(t, docs.docs, 1)
		assert.Contains(t, docs.docs, *first.IdentificationDocumentID)
	})

	t.Run("storage error", func(t *testing.T) {
		docs := newFakeDocumentRepo()
		patients := newFakePatientRepo(docs)
		patients.err = errors.New("connection reset")
		svc := NewPatientService(patients, docs)

		_, err := svc.RegisterPatient(ctx, withDocument(validRegistration("user-1")))
		require.Error(t, err)
		assert.Empty(t, docs.docs)
		assert.Empty(t, patients.byUser)
	})
}

func TestGetPatientNotFound(t *testing.T) {
	svc := newPatientService()
	_, err := svc.GetPatient(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
