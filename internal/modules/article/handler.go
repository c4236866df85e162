package article

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/pkg/pagination"
	"github.com/inklet/core/internal/pkg/response"
)

// Handler handles article HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts article routes; the whole group is admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	articles := rg.Group("/articles", authMW)

	articles.GET("", h.list)
	articles.GET("/:id", h.getByID)
	articles.POST("", h.create)
	articles.PUT("/:id", h.update)
	articles.PATCH("/:id", h.update)
	articles.DELETE("/:id", h.delete)

	articles.GET("/:id/tags", h.tags)
	articles.PUT("/:id/tags", h.setTags)

	articles.GET("/:id/media", h.media)
	articles.POST("/:id/media", h.addMedia)
	articles.DELETE("/:id/media/:mediaId", h.removeMedia)
}

// list GET /articles
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

	articles, pag, err := h.svc.List(q, lq)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, articles, pag)
}

// getByID GET /articles/:id
func (h *Handler) getByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "article not found")
		return
	}
	response.OK(c, a)
}

// create POST /articles
func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, errSlugTaken) {
			response.BadRequestCode(c, response.CodeConflict, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, a)
}

// update PUT|PATCH /articles/:id
func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	a, err := h.svc.Update(id, &dto)
	if err != nil {
		if errors.Is(err, errSlugTaken) {
			response.BadRequestCode(c, response.CodeConflict, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "article not found")
		return
	}
	response.OK(c, a)
}

// delete DELETE /articles/:id — soft delete, returns the stamped row.
func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFound(c, "article not found")
		return
	}
	response.OK(c, a)
}

// tags GET /articles/:id/tags
func (h *Handler) tags(c *gin.Context) {
	id, ok := h.requireArticle(c)
	if !ok {
		return
	}
	tags, err := h.svc.Tags(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, tags)
}

// setTags PUT /articles/:id/tags — full replace.
func (h *Handler) setTags(c *gin.Context) {
	id, ok := h.requireArticle(c)
	if !ok {
		return
	}
	var dto SetTagsDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.svc.SetTags(id, *dto.TagIDs); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	c.String(http.StatusOK, "tags updated")
}

// media GET /articles/:id/media
func (h *Handler) media(c *gin.Context) {
	id, ok := h.requireArticle(c)
	if !ok {
		return
	}
	items, err := h.svc.Media(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, items)
}

// addMedia POST /articles/:id/media
func (h *Handler) addMedia(c *gin.Context) {
	id, ok := h.requireArticle(c)
	if !ok {
		return
	}
	var dto AddMediaDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	row, err := h.svc.AddMedia(id, dto.MediaID, dto.Purpose)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if row == nil {
		response.NotFound(c, "media not found")
		return
	}
	response.Created(c, row)
}

// removeMedia DELETE /articles/:id/media/:mediaId
func (h *Handler) removeMedia(c *gin.Context) {
	id, ok := h.requireArticle(c)
	if !ok {
		return
	}
	mediaID, ok := parseID(c, "mediaId")
	if !ok {
		return
	}
	removed, err := h.svc.RemoveMedia(id, mediaID)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !removed {
		response.NotFound(c, "media association not found")
		return
	}
	response.NoContent(c)
}

// requireArticle parses the :id param and 404s when the article is missing
// or soft-deleted.
func (h *Handler) requireArticle(c *gin.Context) (uint, bool) {
	id, ok := parseID(c, "id")
	if !ok {
		return 0, false
	}
	a, err := h.svc.GetByID(id)
	if err != nil {
		response.InternalError(c, err)
		return 0, false
	}
	if a == nil {
		response.NotFound(c, "article not found")
		return 0, false
	}
	return id, true
}

func parseID(c *gin.Context, param string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || v == 0 {
		response.BadRequest(c, param+" must be a positive integer")
		return 0, false
	}
	return uint(v), true
}
