package middlewares

import (
	"CarePulse/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const claimsKey = "session_claims"

// SessionAuth accepts requests carrying a valid session cookie for role.
// Other requests are sent to redirectTo.
func SessionAuth(maker *utils.TokenMaker, cookie, role, redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, maker, cookie, role); !ok {
			c.Redirect(http.StatusSeeOther, redirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PatientAuth guards /patients/:userId pages: the session must belong to that user.
func PatientAuth(maker *utils.TokenMaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := authenticate(c, maker, utils.PatientSessionCookie, utils.RolePatient)
		if !ok || claims.UserID != c.Param("userId") {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminAuth guards the admin dashboard.
func AdminAuth(maker *utils.TokenMaker) gin.HandlerFunc {
	return SessionAuth(maker, utils.AdminSessionCookie, utils.RoleAdmin, "/?admin=true")
}

func authenticate(c *gin.Context, maker *utils.TokenMaker, cookie, role string) (*utils.TokenClaims, bool) {
	token, err := c.Cookie(cookie)
	if err != nil || token == "" {
		return nil, false
	}

	claims, err := maker.Validate(token, role)
	if err != nil {
		log.Debug().Err(err).Str("cookie", cookie).Msg("rejected session")
		utils.ClearSessionCookie(c, cookie)
		return nil, false
	}

	c.Set(claimsKey, claims)
	return claims, true
}

// SessionClaims returns the claims stored by the session middlewares.
func SessionClaims(c *gin.Context) (*utils.TokenClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.TokenClaims)
	return claims, ok
}
