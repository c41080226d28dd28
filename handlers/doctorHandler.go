package handlers

import (
	"CarePulse/models"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DoctorHandler lists the physicians patients can book with.
type DoctorHandler struct{}

func NewDoctorHandler() *DoctorHandler {
	return &DoctorHandler{}
}

// GetAllDoctors lists the physicians patients can book with.
func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	c.JSON(http.StatusOK, models.Physicians)
}

// GetDoctorByName returns one physician, or 404.
func (h *DoctorHandler) GetDoctorByName(c *gin.Context) {
	doctor, ok := models.FindPhysician(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
		return
	}
	c.JSON(http.StatusOK, doctor)
}
