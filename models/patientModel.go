package models

import (
	"time"
)

// Patient model
type Patient struct {
	ID                        string    `gorm:"primaryKey;column:id" json:"id"`
	UserID                    string    `gorm:"column:user_id;not null;uniqueIndex" json:"userId"`
	Name                      string    `gorm:"column:name;not null" json:"name"`
	Email                     string    `gorm:"column:email;not null;index" json:"email"`
	Phone                     string    `gorm:"column:phone;not null" json:"phone"`
	BirthDate                 time.Time `gorm:"column:birth_date;not null" json:"birthDate"`
	Gender                    string    `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	Address                   string    `gorm:"column:address" json:"address"`
	Occupation                string    `gorm:"column:occupation" json:"occupation"`
	EmergencyContactName      string    `gorm:"column:emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactNumber    string    `gorm:"column:emergency_contact_number" json:"emergencyContactNumber"`
	PrimaryPhysician          string    `gorm:"column:primary_physician" json:"primaryPhysician"`
	InsuranceProvider         string    `gorm:"column:insurance_provider" json:"insuranceProvider"`
	InsurancePolicyNumber     string    `gorm:"column:insurance_policy_number" json:"insurancePolicyNumber"`
	Allergies                 string    `gorm:"column:allergies" json:"allergies,omitempty"`
	CurrentMedication         string    `gorm:"column:current_medication" json:"currentMedication,omitempty"`
	FamilyMedicalHistory      string    `gorm:"column:family_medical_history" json:"familyMedicalHistory,omitempty"`
	PastMedicalHistory        string    `gorm:"column:past_medical_history" json:"pastMedicalHistory,omitempty"`
	IdentificationType        string    `gorm:"column:identification_type" json:"identificationType,omitempty"`
	IdentificationNumber      string    `gorm:"column:identification_number" json:"identificationNumber,omitempty"`
	IdentificationDocumentID  *string   `gorm:"column:identification_document_id" json:"identificationDocumentId,omitempty"`
	IdentificationDocumentURL string    `gorm:"column:identification_document_url" json:"identificationDocumentUrl,omitempty"`
	TreatmentConsent          bool      `gorm:"column:treatment_consent;not null" json:"treatmentConsent"`
	DisclosureConsent         bool      `gorm:"column:disclosure_consent;not null" json:"disclosureConsent"`
	PrivacyConsent            bool      `gorm:"column:privacy_consent;not null" json:"privacyConsent"`
	CreatedAt                 time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Patient) TableName() string {
	return "patient"
}

// Document holds an uploaded identification document.
type Document struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	FileName    string    `gorm:"column:file_name;not null" json:"fileName"`
	ContentType string    `gorm:"column:content_type;not null" json:"contentType"`
	Size        int64     `gorm:"column:size;not null" json:"size"`
	Hash        string    `gorm:"column:hash;not null;index" json:"hash"`
	Data        []byte    `gorm:"column:data;type:bytea;not null" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Document) TableName() string {
	return "document"
}

// Attachment is a binary file travelling with a registration request.
type Attachment struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// RegisterPatientParams is the request shape of registerPatient.
type RegisterPatientParams struct {
	UserID                 string      `json:"userId"`
	Name                   string      `json:"name"`
	Email                  string      `json:"email"`
	Phone                  string      `json:"phone"`
	BirthDate              time.Time   `json:"birthDate"`
	Gender                 string      `json:"gender"`
	Address                string      `json:"address"`
	Occupation             string      `json:"occupation"`
	EmergencyContactName   string      `json:"emergencyContactName"`
	EmergencyContactNumber string      `json:"emergencyContactNumber"`
	PrimaryPhysician       string      `json:"primaryPhysician"`
	InsuranceProvider      string      `json:"insuranceProvider"`
	InsurancePolicyNumber  string      `json:"insurancePolicyNumber"`
	Allergies              string      `json:"allergies"`
	CurrentMedication      string      `json:"currentMedication"`
	FamilyMedicalHistory   string      `json:"familyMedicalHistory"`
	PastMedicalHistory     string      `json:"pastMedicalHistory"`
	IdentificationType     string      `json:"identificationType"`
	IdentificationNumber   string      `json:"identificationNumber"`
	IdentificationDocument *Attachment `json:"identificationDocument,omitempty"`
	TreatmentConsent       bool        `json:"treatmentConsent"`
	DisclosureConsent      bool        `json:"disclosureConsent"`
	PrivacyConsent         bool        `json:"privacyConsent"`
}

// GenderOptions lists the accepted gender values.
var GenderOptions = []string{"Male", "Female", "Other"}

// IdentificationTypes lists the accepted identification document kinds.
var IdentificationTypes = []string{
	"Birth Certificate",
	"Driver's License",
	"Medical Insurance Card/Policy",
	"Military ID Card",
	"National Identity Card",
	"Passport",
	"Resident Alien Card (Green Card)",
	"Social Security Card",
	"State ID Card",
	"Student ID Card",
	"Voter ID Card",
}
