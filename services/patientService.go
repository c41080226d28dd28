package services

import (
	"CarePulse/models"
	"CarePulse/repositories"
	"CarePulse/utils"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// MaxDocumentSize caps identification document uploads.
const MaxDocumentSize = 50 << 20

var allowedDocumentTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

type PatientService struct {
	patients  repositories.PatientRepository
	documents repositories.DocumentRepository
}

func NewPatientService(patients repositories.PatientRepository, documents repositories.DocumentRepository) *PatientService {
	return &PatientService{patients: patients, documents: documents}
}

// GetPatient returns the patient registered by userID.
func (s *PatientService) GetPatient(ctx context.Context, userID string) (*models.Patient, error) {
	patient, err := s.patients.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	return patient, nil
}

// RegisterPatient creates the patient record together with its
// identification document, if any. A failed registration stores neither.
func (s *PatientService) RegisterPatient(ctx context.Context, params models.RegisterPatientParams) (*models.Patient, error) {
	if err := utils.ValidateRegistration(&params); err != nil {
		return nil, err
	}

	patient := &models.Patient{
		ID:                     uuid.New().String(),
		UserID:                 params.UserID,
		Name:                   params.Name,
		Email:                  params.Email,
		Phone:                  params.Phone,
		BirthDate:              params.BirthDate,
		Gender:                 params.Gender,
		Address:                params.Address,
		Occupation:             params.Occupation,
		EmergencyContactName:   params.EmergencyContactName,
		EmergencyContactNumber: params.EmergencyContactNumber,
		PrimaryPhysician:       params.PrimaryPhysician,
		InsuranceProvider:      params.InsuranceProvider,
		InsurancePolicyNumber:  params.InsurancePolicyNumber,
		Allergies:              params.Allergies,
		CurrentMedication:      params.CurrentMedication,
		FamilyMedicalHistory:   params.FamilyMedicalHistory,
		PastMedicalHistory:     params.PastMedicalHistory,
		IdentificationType:     params.IdentificationType,
		IdentificationNumber:   params.IdentificationNumber,
		TreatmentConsent:       params.TreatmentConsent,
		DisclosureConsent:      params.DisclosureConsent,
		PrivacyConsent:         params.PrivacyConsent,
	}

	var doc *models.Document
	if params.IdentificationDocument != nil {
		var err error
		if doc, err = newDocument(params.IdentificationDocument); err != nil {
			return nil, err
		}
		patient.IdentificationDocumentID = &doc.ID
		patient.IdentificationDocumentURL = DocumentURL(doc.ID)
	}

	if err := s.patients.Create(ctx, patient, doc); err != nil {
		if errors.Is(err, repositories.ErrPatientExists) {
			return nil, fmt.Errorf("patient for user %s: %w", params.UserID, ErrConflict)
		}
		return nil, err
	}
	return patient, nil
}

// GetDocument returns a stored identification document.
func (s *PatientService) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotFound
	}
	return doc, nil
}

// newDocument checks an uploaded attachment and turns it into a document row.
func newDocument(a *models.Attachment) (*models.Document, error) {
	if a.FileName == "" {
		return nil, fmt.Errorf("%w: file name is required", ErrInvalidDocument)
	}
	if !allowedDocumentTypes[a.ContentType] {
		return nil, fmt.Errorf("%w: content type %q is not allowed", ErrInvalidDocument, a.ContentType)
	}
	if len(a.Data) == 0 || len(a.Data) > MaxDocumentSize {
		return nil, fmt.Errorf("%w: size must be between 1 byte and %d bytes", ErrInvalidDocument, MaxDocumentSize)
	}

	sum := sha256.Sum256(a.Data)
	return &models.Document{
		ID:          uuid.New().String(),
		FileName:    a.FileName,
		ContentType: a.ContentType,
		Size:        int64(len(a.Data)),
		Hash:        hex.EncodeToString(sum[:]),
		Data:        a.Data,
	}, nil
}

// DocumentURL is where a stored document can be downloaded.
func DocumentURL(id string) string {
	return "/documents/" + id
}
