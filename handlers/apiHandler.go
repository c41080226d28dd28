package handlers

import (
	"CarePulse/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIHandler exposes the data service operations as JSON for bearer token clients.
type APIHandler struct {
	patients     PatientService
	appointments AppointmentService
}

// NewAPIHandler exposes the patient and appointment services as JSON.
func NewAPIHandler(patients PatientService, appointments AppointmentService) *APIHandler {
	return &APIHandler{patients: patients, appointments: appointments}
}

// GetPatient returns the patient registered by :userId.
func (h *APIHandler) GetPatient(c *gin.Context) {
	patient, err := h.patients.GetPatient(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// RegisterPatient creates a patient. The identification document travels
// base64 encoded in the JSON body.
func (h *APIHandler) RegisterPatient(c *gin.Context) {
	var params models.RegisterPatientParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	patient, err := h.patients.RegisterPatient(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

// GetDocument streams a stored identification document.
func (h *APIHandler) GetDocument(c *gin.Context) {
	doc, err := h.patients.GetDocument(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// CreateAppointment books a pending appointment.
func (h *APIHandler) CreateAppointment(c *gin.Context) {
	var params models.CreateAppointmentParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	appointment, err := h.appointments.CreateAppointment(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// GetAppointment returns one appointment by id.
func (h *APIHandler) GetAppointment(c *gin.Context) {
	appointment, err := h.appointments.GetAppointment(c.Request.Context(), c.Param("appointmentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// UpdateAppointment takes the appointment id from the path; a body id must agree.
func (h *APIHandler) UpdateAppointment(c *gin.Context) {
	var params models.UpdateAppointmentParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	id := c.Param("appointmentId")
	if params.AppointmentID != "" && params.AppointmentID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointmentId does not match the path"})
		return
	}
	params.AppointmentID = id

	appointment, err := h.appointments.UpdateAppointment(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// RecentAppointments returns the newest appointments with status counts.
func (h *APIHandler) RecentAppointments(c *gin.Context) {
	summary, err := h.appointments.GetRecentAppointmentList(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
