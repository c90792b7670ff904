package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/calendar")
	{
		group.GET("/:year/:month", h.Month)
	}
}
