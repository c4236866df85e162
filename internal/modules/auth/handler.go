package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/middleware"
	"github.com/inklet/core/internal/pkg/jwt"
	"github.com/inklet/core/internal/pkg/response"
)

// Handler handles auth HTTP requests.
type Handler struct {
	svc *Service
	ttl time.Duration
}

func NewHandler(svc *Service, tokenTTL time.Duration) *Handler {
	return &Handler{svc: svc, ttl: tokenTTL}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/verify", h.verify)
	g.GET("/status", h.status)

	a := g.Group("", authMW)
	a.PATCH("/password", h.changePassword)
}

// register POST /auth/register — one-time bootstrap, not general signup.
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if _, err := h.svc.Register(&dto); err != nil {
		if errors.Is(err, errAdminExists) {
			response.Forbidden(c, "an administrator is already registered")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "administrator registered"})
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.svc.Login(dto.Username, dto.Password, h.ttl)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.Unauthorized(c, response.CodeInvalidCredentials, "invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	h.setAuthCookie(c, token, int(h.ttl.Seconds()))
	response.Message(c, "login successful")
}

// logout POST /auth/logout — logout is a client-side cookie clear; tokens
// stay valid until expiry.
func (h *Handler) logout(c *gin.Context) {
	h.setAuthCookie(c, "", -1)
	response.Message(c, "logged out")
}

// status GET /auth/status — lets the console decide between the setup and
// login screens.
func (h *Handler) status(c *gin.Context) {
	registered, err := h.svc.IsRegistered()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"registered": registered})
}

// verify GET /auth/verify
func (h *Handler) verify(c *gin.Context) {
	token := middleware.ExtractToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": middleware.CodeMissingToken})
		return
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		code, _ := middleware.TokenErrorCode(err)
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": code})
		return
	}
	expiresIn := int(time.Until(claims.ExpiresAt.Time).Seconds())
	c.JSON(http.StatusOK, gin.H{"valid": true, "expiresIn": expiresIn})
}

// changePassword PATCH /auth/password
func (h *Handler) changePassword(c *gin.Context) {
	var dto ChangePasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.ChangePassword(middleware.CurrentUserID(c), dto.OldPassword, dto.NewPassword); err != nil {
		switch {
		case errors.Is(err, errInvalidCredentials):
			response.BadRequest(c, "old password is incorrect")
		case errors.Is(err, errPasswordSameAsOld):
			response.BadRequest(c, "new password must differ from the old one")
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Message(c, "password updated")
}

func (h *Handler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", true, true)
}
