package controllers

import (
	"CarePulse/handlers"
	"CarePulse/middlewares"
	"CarePulse/utils"

	"github.com/gin-gonic/gin"
)

// SetupPatientRoutes registers the pages of a signed-in patient.
func SetupPatientRoutes(router *gin.Engine, tokens *utils.TokenMaker, patientHandler *handlers.PatientHandler, appointmentHandler *handlers.AppointmentHandler) {
	patients := router.Group("/patients/:userId").Use(middlewares.PatientAuth(tokens))
	{
		patients.GET("/register", patientHandler.RegisterPage)
		patients.POST("/register", patientHandler.Register)

		patients.GET("/new-appointment", appointmentHandler.NewAppointmentPage)
		patients.POST("/new-appointment", appointmentHandler.CreateAppointment)
		patients.GET("/new-appointment/success", appointmentHandler.SuccessPage)
	}
}
