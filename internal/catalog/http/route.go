package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/catalog")
	{
		group.GET("", h.List)
		group.GET("/categories", h.Categories)
		group.GET("/settings", h.Settings)
	}
}
