package middleware

import (
	"net/http"
	"strings"
	"treehouse/models"

	"github.com/gin-gonic/gin"
)

const (
	MembersCookie = "treehouse_members"
	membersKey    = "members_access"
)

type tokenValidator interface {
	ValidateToken(token string) error
}

func membersToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
			return tokenParts[1]
		}
		return ""
	}

	token, err := c.Cookie(MembersCookie)
	if err != nil {
		return ""
	}
	return token
}

// MembersAccess records whether the request carries a valid members token.
// It never rejects; routes that require access chain RequireMembers.
func MembersAccess(members tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := membersToken(c)
		c.Set(membersKey, token != "" && members.ValidateToken(token) == nil)
		c.Next()
	}
}

func RequireMembers() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !HasMembersAccess(c) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Members access code required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func HasMembersAccess(c *gin.Context) bool {
	return c.GetBool(membersKey)
}
