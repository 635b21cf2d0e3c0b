package middleware

import (
	"net/http"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/apierror"
	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthCookie is the session cookie name shared with the auth handlers.
const AuthCookie = "authToken"

// SessionGate protects the API behind the site password. While no password
// has been set the gate is open; once one exists, every request needs a
// valid session cookie. A stale or forged cookie is cleared on the way out.
func SessionGate(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(AuthCookie)
		if auth.VerifySession(c.Request.Context(), token) {
			c.Next()
			return
		}

		c.SetCookie(AuthCookie, "", -1, "/", "", false, true)
		c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("authentication required"))
	}
}
