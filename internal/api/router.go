package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/booking"
	bookingHttp "github.com/agendapro/agendapro-backend/internal/booking/http"
	calendarHttp "github.com/agendapro/agendapro-backend/internal/calendar/http"
	"github.com/agendapro/agendapro-backend/internal/catalog"
	catalogHttp "github.com/agendapro/agendapro-backend/internal/catalog/http"
	"github.com/agendapro/agendapro-backend/internal/export"
	exportHttp "github.com/agendapro/agendapro-backend/internal/export/http"
	statsHttp "github.com/agendapro/agendapro-backend/internal/stats/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	CatalogService catalog.Service
	BookingService booking.Service
	ExportService  export.Service
}

// NewRouter assembles the HTTP engine: global middleware (logger,
// recovery, CORS) and the /v1 routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsCfg.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	calendarHandler := calendarHttp.NewHandler(cfg.BookingService)
	statsHandler := statsHttp.NewHandler(cfg.BookingService, cfg.CatalogService)
	exportHandler := exportHttp.NewHandler(cfg.ExportService)

	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		calendarHttp.RegisterRoutes(v1, calendarHandler)
		statsHttp.RegisterRoutes(v1, statsHandler)
		exportHttp.RegisterRoutes(v1, exportHandler)
	}

	return r
}
