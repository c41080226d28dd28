package controllers

import (
	"CarePulse/handlers"
	"CarePulse/middlewares"
	"CarePulse/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Handler        *handlers.AuthHandler
	AdminHandler   *handlers.AdminHandler
	PatientHandler *handlers.PatientHandler
	Tokens         *utils.TokenMaker
}

func NewAuthController(authHandler *handlers.AuthHandler, adminHandler *handlers.AdminHandler, patientHandler *handlers.PatientHandler, tokens *utils.TokenMaker) *AuthController {
	return &AuthController{
		Handler:        authHandler,
		AdminHandler:   adminHandler,
		PatientHandler: patientHandler,
		Tokens:         tokens,
	}
}

// RegisterRoutes registers the passkey check and the admin-only pages.
func (ac *AuthController) RegisterRoutes(router *gin.Engine) {
	router.POST("/admin/passkey", ac.Handler.VerifyPasskey)

	adminGroup := router.Group("/").Use(middlewares.AdminAuth(ac.Tokens))
	{
		adminGroup.GET("/admin", ac.AdminHandler.Dashboard)
		adminGroup.POST("/admin/appointments/:appointmentId/:action", ac.AdminHandler.UpdateAppointment)
		adminGroup.GET("/documents/:documentId", ac.PatientHandler.GetDocument)
	}
}
