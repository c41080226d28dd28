package controllers

import (
	"CarePulse/handlers"
	"CarePulse/middlewares"

	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes registers the bearer token protected JSON API.
func SetupAPIRoutes(router *gin.Engine, bearerToken string, apiHandler *handlers.APIHandler, doctorHandler *handlers.DoctorHandler) {
	api := router.Group("/api").Use(middlewares.ValidateBearerToken(bearerToken))
	{
		api.GET("/patients/:userId", apiHandler.GetPatient)
		api.POST("/patients", apiHandler.RegisterPatient)
		api.GET("/documents/:documentId", apiHandler.GetDocument)

		api.POST("/appointments", apiHandler.CreateAppointment)
		api.GET("/appointments/recent", apiHandler.RecentAppointments)
		api.GET("/appointments/:appointmentId", apiHandler.GetAppointment)
		api.PATCH("/appointments/:appointmentId", apiHandler.UpdateAppointment)

		api.GET("/physicians", doctorHandler.GetAllDoctors)
		api.GET("/physicians/:name", doctorHandler.GetDoctorByName)
	}
}
