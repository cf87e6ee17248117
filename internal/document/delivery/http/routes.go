package http

import (
	"github.com/gin-gonic/gin"

	"delete-on-check/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	docs := rg.Group("/documents", mw.RateLimit())
	{
		docs.GET("", h.List)
		docs.GET("/content", h.Content)
		docs.PUT("/content", h.SetContent)
		docs.POST("/open", h.Open)
		docs.POST("/activate", h.Activate)
		docs.POST("/close", h.Close)
		docs.POST("/edit", h.Edit)
		docs.POST("/save", h.Save)
		docs.POST("/sweep", h.Sweep)
	}
}
