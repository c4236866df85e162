package tag

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
	tags := rg.Group("/tags", authMW)

	tags.GET("", h.list)
	tags.GET("/:id", h.getByID)
	tags.POST("", h.create)
	tags.PUT("/:id", h.update)
	tags.PATCH("/:id", h.update)
	tags.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	tags, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tags)
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFound(c, "tag not found")
		return
	}
	response.OK(c, t)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errNameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, t)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateTagDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	t, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, errNameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFound(c, "tag not found")
		return
	}
	response.OK(c, t)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if t == nil {
		response.NotFound(c, "tag not found")
		return
	}
	response.OK(c, t)
}

func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(v), true
}
