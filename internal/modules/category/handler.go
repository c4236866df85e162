package category

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
	categories := rg.Group("/categories", authMW)

	categories.GET("", h.list)
	categories.GET("/:id", h.getByID)
	categories.POST("", h.create)
	categories.PUT("/:id", h.update)
	categories.PATCH("/:id", h.update)
	categories.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	categories, err := h.svc.List()
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, categories)
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c, "category not found")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errNameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, errNameTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c, "category not found")
		return
	}
	response.OK(c, cat)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cat, err := h.svc.Delete(id)
	if err != nil {
		if errors.Is(err, errInUse) {
			response.BadRequestCode(c, "CATEGORY_IN_USE", err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if cat == nil {
		response.NotFound(c, "category not found")
		return
	}
	response.OK(c, cat)
}

func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(v), true
}
