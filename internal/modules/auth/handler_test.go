package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/middleware"
	"github.com/inklet/core/internal/models"
	"github.com/inklet/core/internal/modules/auth"
	"github.com/inklet/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	jwt.SetSecret("auth-test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}))

	r := gin.New()
	api := r.Group("/api")
	auth.NewHandler(auth.NewService(db, bcrypt.MinCost), 30*time.Minute).RegisterRoutes(api, middleware.Auth())
	return r
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterOnce(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/api/auth/register", `{"username":"admin","password":"hunter22"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	// Second registration is refused regardless of credentials.
	w = doJSON(r, "POST", "/api/auth/register", `{"username":"other","password":"different1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "FORBIDDEN")
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"short_username", `{"username":"ab","password":"hunter22"}`},
		{"short_password", `{"username":"admin","password":"12345"}`},
		{"missing_fields", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, "POST", "/api/auth/register", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestStatusReflectsRegistration(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "GET", "/api/auth/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":false`)

	doJSON(r, "POST", "/api/auth/register", `{"username":"admin","password":"hunter22"}`)
	w = doJSON(r, "GET", "/api/auth/status", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":true`)
}

func TestLoginSetsCookie(t *testing.T) {
	r := newTestRouter(t)
	doJSON(r, "POST", "/api/auth/register", `{"username":"admin","password":"hunter22"}`)

	w := doJSON(r, "POST", "/api/auth/login", `{"username":"admin","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	ck := cookies[0]
	assert.Equal(t, middleware.CookieName, ck.Name)
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteStrictMode, ck.SameSite)
	assert.Equal(t, 1800, ck.MaxAge)

	claims, err := jwt.Parse(ck.Value)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	r := newTestRouter(t)
	doJSON(r, "POST", "/api/auth/register", `{"username":"admin","password":"hunter22"}`)

	wrongPwd := doJSON(r, "POST", "/api/auth/login", `{"username":"admin","password":"wrong"}`)
	unknownUser := doJSON(r, "POST", "/api/auth/login", `{"username":"nobody","password":"hunter22"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPwd.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	// Identical bodies so the two cases cannot be told apart.
	assert.JSONEq(t, wrongPwd.Body.String(), unknownUser.Body.String())
	assert.Contains(t, wrongPwd.Body.String(), "INVALID_CREDENTIALS")
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/api/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.CookieName, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestVerify(t *testing.T) {
	r := newTestRouter(t)
	doJSON(r, "POST", "/api/auth/register", `{"username":"admin","password":"hunter22"}`)

	loginW := doJSON(r, "POST", "/api/auth/login", `{"username":"admin","password":"hunter22"}`)
	require.Equal(t, http.StatusOK, loginW.Code)
	ck := loginW.Result().Cookies()[0]

	w := doJSON(r, "GET", "/api/auth/verify", "", ck)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Valid     bool `json:"valid"`
		ExpiresIn int  `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Valid)
	assert.Greater(t, body.ExpiresIn, 1700)

	// No token at all.
	w = doJSON(r, "GET", "/api/auth/verify", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), middleware.CodeMissingToken)
}

func TestChangePassword(t *testing.T) {
	r := newTestRouter(t)
	doJSON(r, "POST", "/api/auth/register", `{"username":"admin","password":"hunter22"}`)

	loginW := doJSON(r, "POST", "/api/auth/login", `{"username":"admin","password":"hunter22"}`)
	ck := loginW.Result().Cookies()[0]

	// Wrong old password.
	w := doJSON(r, "PATCH", "/api/auth/password", `{"oldPassword":"nope","newPassword":"newpass1"}`, ck)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Same as old.
	w = doJSON(r, "PATCH", "/api/auth/password", `{"oldPassword":"hunter22","newPassword":"hunter22"}`, ck)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Success, then old password stops working.
	w = doJSON(r, "PATCH", "/api/auth/password", `{"oldPassword":"hunter22","newPassword":"newpass1"}`, ck)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "POST", "/api/auth/login", `{"username":"admin","password":"hunter22"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(r, "POST", "/api/auth/login", `{"username":"admin","password":"newpass1"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
