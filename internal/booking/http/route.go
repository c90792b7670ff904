package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.POST("/confirm", h.Confirm)
		group.POST("/:id/pay", h.Pay)
		group.DELETE("/:id", h.Delete)
		group.DELETE("", h.Clear)
	}
}
