package auth

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const contextUserID = "tankbudget-user-id"

type httpError struct {
	Error string `json:"error"`
}

// Middleware rejects requests without a valid bearer token and stores
// the authenticated user's ID in the context.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenMissing.Error()})
			return
		}

		id, err := ParseToken(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Str("request-id", requestid.Get(c)).Err(err).Msg("rejected token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: ErrTokenInvalid.Error()})
			return
		}

		c.Set(contextUserID, id)
		c.Next()
	}
}

// UserID returns the ID of the authenticated user. It is uuid.Nil if
// the request did not pass the Middleware.
func UserID(c *gin.Context) uuid.UUID {
	value, ok := c.Get(contextUserID)
	if !ok {
		return uuid.Nil
	}

	id, _ := value.(uuid.UUID)
	return id
}
