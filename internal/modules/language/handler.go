package language

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	langs := rg.Group("/languages", authMW)

	langs.GET("", h.list)
	langs.POST("", h.create)
	langs.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	langs, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, langs)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateLanguageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	l, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errLanguageExists) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, l)
}

func (h *Handler) delete(c *gin.Context) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(c, "id must be a positive integer")
		return
	}
	l, err := h.svc.Delete(uint(v))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil {
		response.NotFound(c, "language not found")
		return
	}
	response.OK(c, l)
}
