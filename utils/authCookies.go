package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	PatientSessionCookie = "patientSession"
	AdminSessionCookie   = "adminSession"
)

func SetSessionCookie(c *gin.Context, name, token string, expiry time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, int(expiry.Seconds()), "/", "", secureCookies(), true)
}

func ClearSessionCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return gin.Mode() != gin.DebugMode // plain http in local dev
}
