package media

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/pkg/pagination"
	"github.com/inklet/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	media := rg.Group("/media", authMW)

	media.GET("", h.list)
	media.GET("/:id", h.getByID)
	media.POST("", h.upload)
	media.PUT("/:id", h.update)
	media.PATCH("/:id", h.update)
	media.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	q, err := pagination.FromContext(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	items, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, items, pag)
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c, "media not found")
		return
	}
	response.OK(c, m)
}

// upload POST /media — multipart form with a "file" field.
func (h *Handler) upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, errNoFile.Error())
		return
	}
	m, err := h.svc.Upload(c.Request.Context(), fh)
	if err != nil {
		if errors.Is(err, errUploadTooBig) || errors.Is(err, errEmptyFilename) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var dto UpdateMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	m, err := h.svc.Update(id, &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c, "media not found")
		return
	}
	response.OK(c, m)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	m, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errInUse) {
			response.BadRequestCode(c, "MEDIA_IN_USE", err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFound(c, "media not found")
		return
	}
	response.OK(c, m)
}

func parseID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(c, "id must be a positive integer")
		return 0, false
	}
	return uint(v), true
}
