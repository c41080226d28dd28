package handlers

import (
	"CarePulse/models"
	"CarePulse/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler serves onboarding and the admin passkey check.
type AuthHandler struct {
	users       UserService
	tokens      *utils.TokenMaker
	passkeyHash string
	logger      zerolog.Logger
}

func NewAuthHandler(users UserService, tokens *utils.TokenMaker, passkeyHash string, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, passkeyHash: passkeyHash, logger: logger}
}

// Home renders the onboarding form. ?admin=true opens the passkey dialog.
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "onboarding", onboardingView{
		ShowPasskey: c.Query("admin") == "true",
	})
}

// Onboard creates (or finds) the user and starts a patient session.
func (h *AuthHandler) Onboard(c *gin.Context) {
	var params models.CreateUserParams
	if err := c.ShouldBind(&params); err != nil {
		c.HTML(http.StatusBadRequest, "onboarding", onboardingView{Values: params, Error: "Invalid form submission"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), params)
	if err != nil {
		h.logger.Warn().Err(err).Msg("onboarding failed")
		c.HTML(statusFor(err), "onboarding", onboardingView{
			Values: params,
			Fields: fieldErrors(err),
			Error:  formError(err),
		})
		return
	}

	token, err := h.tokens.Generate(user.ID, utils.RolePatient, utils.PatientSessionExpiry)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.SetSessionCookie(c, utils.PatientSessionCookie, token, utils.PatientSessionExpiry)
	c.Redirect(http.StatusSeeOther, "/patients/"+user.ID+"/register")
}

// VerifyPasskey opens an admin session when the passkey matches.
func (h *AuthHandler) VerifyPasskey(c *gin.Context) {
	if err := utils.CheckPasskey(h.passkeyHash, c.PostForm("passkey")); err != nil {
		h.logger.Warn().Str("client_ip", c.ClientIP()).Msg("invalid admin passkey")
		c.HTML(http.StatusUnauthorized, "onboarding", onboardingView{
			ShowPasskey:  true,
			PasskeyError: "Invalid passkey. Please try again.",
		})
		return
	}

	token, err := h.tokens.Generate("admin", utils.RoleAdmin, utils.AdminSessionExpiry)
	if err != nil {
		renderError(c, err)
		return
	}
	utils.SetSessionCookie(c, utils.AdminSessionCookie, token, utils.AdminSessionExpiry)
	c.Redirect(http.StatusSeeOther, "/admin")
}

// Logoff ends both sessions.
func (h *AuthHandler) Logoff(c *gin.Context) {
	utils.ClearSessionCookie(c, utils.PatientSessionCookie)
	utils.ClearSessionCookie(c, utils.AdminSessionCookie)
	c.Redirect(http.StatusSeeOther, "/")
}

// formError is the banner text for err, empty when the fields already say it.
func formError(err error) string {
	if fieldErrors(err) != nil {
		return ""
	}
	return messageFor(err)
}
