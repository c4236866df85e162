package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/pkg/jwt"
	"github.com/inklet/core/internal/pkg/response"
)

const (
	// CookieName is the cookie carrying the session token.
	CookieName = "auth_token"

	ContextKeyUserID = "user_id"
	ContextKeyRole   = "user_role"
)

// Token error codes surfaced to clients.
const (
	CodeMissingToken     = "MISSING_TOKEN"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeInvalidSignature = "INVALID_SIGNATURE"
	CodeInvalidToken     = "INVALID_TOKEN"
)

// Auth returns a middleware that verifies the session token and requires the
// admin role. The identity is attached to the request context on success.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			response.Unauthorized(c, CodeMissingToken, "authentication required")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			code, msg := TokenErrorCode(err)
			response.Unauthorized(c, code, msg)
			return
		}

		if claims.Role != jwt.RoleAdmin {
			response.Forbidden(c, "insufficient privileges")
			return
		}

		c.Set(ContextKeyUserID, claims.Subject)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}

// ExtractToken reads the session token from the auth cookie, falling back to
// an Authorization bearer header.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return strings.TrimSpace(cookie)
	}

	auth := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
		return strings.TrimSpace(auth[7:])
	}
	return ""
}

// TokenErrorCode maps a token verification error to its wire code and message.
func TokenErrorCode(err error) (code, message string) {
	switch {
	case errors.Is(err, jwt.ErrExpired):
		return CodeTokenExpired, "token has expired"
	case errors.Is(err, jwt.ErrInvalidSignature):
		return CodeInvalidSignature, "token signature verification failed"
	case errors.Is(err, jwt.ErrMalformed):
		return CodeInvalidToken, "token is malformed"
	default:
		return CodeInvalidToken, "token is invalid"
	}
}

// CurrentUserID extracts the authenticated user id from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}
