package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "treehouse_session"
	sessionKey    = "session_id"
	sessionMaxAge = 60 * 60 * 24
)

// SessionMiddleware identifies the browsing session that owns a cart,
// issuing a new cookie when the request carries none.
func SessionMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || uuid.Validate(sessionID) != nil {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, sessionMaxAge, "/", "", secure, true)
		}

		c.Set(sessionKey, sessionID)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
