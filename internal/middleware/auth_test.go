package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/middleware"
	"github.com/inklet/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": middleware.CurrentUserID(c)})
	})
	return r
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload.Error
}

func TestAuthMissingToken(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	r := newAuthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, middleware.CodeMissingToken, errorCode(t, w.Body.Bytes()))
}

func TestAuthCookieToken(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	r := newAuthRouter()

	token, err := jwt.Sign("admin-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin-1")
}

func TestAuthBearerFallback(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	r := newAuthRouter()

	token, err := jwt.Sign("admin-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthTokenErrors(t *testing.T) {
	jwt.SetSecret("mw-test-secret")

	expired, err := jwt.Sign("admin-1", jwt.RoleAdmin, -time.Minute)
	require.NoError(t, err)

	jwt.SetSecret("other-secret")
	wrongKey, err := jwt.Sign("admin-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)
	jwt.SetSecret("mw-test-secret")

	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{"expired", expired, middleware.CodeTokenExpired},
		{"bad_signature", wrongKey, middleware.CodeInvalidSignature},
		{"malformed", "garbage", middleware.CodeInvalidToken},
	}

	r := newAuthRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/protected", nil)
			req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: tt.token})
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, w.Body.Bytes()))
		})
	}
}

func TestAuthNonAdminRole(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	r := newAuthRouter()

	token, err := jwt.Sign("reader-1", "reader", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w.Body.Bytes()))
}
