package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/export", h.Day)

	group := g.Group("/export/files")
	{
		group.GET("/:name", h.Stored)
		group.DELETE("/:name", h.Remove)
	}
}
