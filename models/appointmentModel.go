package models

import (
	"time"
)

// AppointmentStatus is the flat lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusCancelled:
		return true
	}
	return false
}

// Appointment model
type Appointment struct {
	ID                 string            `gorm:"primaryKey;column:id" json:"id"`
	UserID             string            `gorm:"column:user_id;not null;index" json:"userId"`
	PatientID          string            `gorm:"column:patient_id;not null;index" json:"patientId"`
	PrimaryPhysician   string            `gorm:"column:primary_physician;not null" json:"primaryPhysician"`
	AppointmentDate    time.Time         `gorm:"column:appointment_date;not null;index" json:"appointmentDate"`
	Reason             string            `gorm:"column:reason" json:"reason"`
	Note               string            `gorm:"column:note" json:"note,omitempty"`
	Status             AppointmentStatus `gorm:"column:status;check:status IN ('pending', 'scheduled', 'cancelled');not null;index" json:"status"`
	CancellationReason string            `gorm:"column:cancellation_reason" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
	Patient            *Patient          `gorm:"foreignKey:PatientID;references:ID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointment"
}

// CreateAppointmentParams is the request shape of createAppointment.
type CreateAppointmentParams struct {
	UserID           string            `json:"userId"`
	Patient          string            `json:"patient"`
	PrimaryPhysician string            `json:"primaryPhysician"`
	AppointmentDate  time.Time         `json:"appointmentDate"`
	Reason           string            `json:"reason"`
	Note             string            `json:"note"`
	Status           AppointmentStatus `json:"status"`
}

// AppointmentChanges carries the fields an update may mutate.
type AppointmentChanges struct {
	PrimaryPhysician   string            `json:"primaryPhysician,omitempty"`
	AppointmentDate    time.Time         `json:"appointmentDate,omitempty"`
	Reason             string            `json:"reason,omitempty"`
	CancellationReason string            `json:"cancellationReason,omitempty"`
	Status             AppointmentStatus `json:"status"`
}

// UpdateAppointmentParams is the request shape of updateAppointment.
type UpdateAppointmentParams struct {
	UserID        string             `json:"userId"`
	AppointmentID string             `json:"appointmentId"`
	Appointment   AppointmentChanges `json:"appointment"`
	Type          string             `json:"type"`
}

// AppointmentSummary is the admin view of recent appointments.
type AppointmentSummary struct {
	TotalCount     int64         `json:"totalCount"`
	ScheduledCount int64         `json:"scheduledCount"`
	PendingCount   int64         `json:"pendingCount"`
	CancelledCount int64         `json:"cancelledCount"`
	Documents      []Appointment `json:"documents"`
}
