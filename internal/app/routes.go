package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/inklet/core/internal/middleware"
	"github.com/inklet/core/internal/modules/article"
	"github.com/inklet/core/internal/modules/auth"
	"github.com/inklet/core/internal/modules/category"
	"github.com/inklet/core/internal/modules/language"
	"github.com/inklet/core/internal/modules/media"
	"github.com/inklet/core/internal/modules/tag"
	"github.com/inklet/core/internal/pkg/response"
)

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	api := r.Group("/api")

	if a.redis != nil {
		api.Use(middleware.RateLimit(a.redis.Raw()))
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "uptime": time.Since(processStart).Milliseconds()})
	})

	auth.NewHandler(auth.NewService(db, a.cfg.BcryptCost), a.cfg.TokenTTL()).RegisterRoutes(api, authMW)

	article.NewHandler(article.NewService(db)).RegisterRoutes(api, authMW)
	category.NewHandler(category.NewService(db)).RegisterRoutes(api, authMW)
	tag.NewHandler(tag.NewService(db)).RegisterRoutes(api, authMW)
	media.NewHandler(media.NewService(db, a.store)).RegisterRoutes(api, authMW)
	language.NewHandler(language.NewService(db)).RegisterRoutes(api, authMW)
}

var processStart = time.Now()
