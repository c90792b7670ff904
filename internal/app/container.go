package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/agendapro/agendapro-backend/internal/api"
	"github.com/agendapro/agendapro-backend/internal/booking"
	"github.com/agendapro/agendapro-backend/internal/catalog"
	"github.com/agendapro/agendapro-backend/internal/config"
	"github.com/agendapro/agendapro-backend/internal/export"
	"github.com/agendapro/agendapro-backend/internal/pkg/logger"
	"github.com/agendapro/agendapro-backend/internal/pkg/storage"
)

// Container holds the initialized components that are needed
// externally.
type Container struct {
	Router         *gin.Engine
	CatalogService catalog.Service
	BookingService booking.Service
	ExportService  export.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, log *logger.Logger) (*Container, error) {
	// Catalog module: loaded once, read-only afterwards. A missing or
	// broken document degrades to an empty catalog inside Load.
	catalogDoc := catalog.Load(cfg.CatalogPath, log)
	catalogService := catalog.NewService(catalogDoc)

	// Booking module
	bookingRepo := booking.NewFileRepository(cfg.BookingsFile, log)
	bookingService := booking.NewService(bookingRepo, catalogService, cfg.DefaultPageSize)

	// Export module
	exportStore, err := storage.NewLocalStorage(cfg.ExportDir)
	if err != nil {
		return nil, fmt.Errorf("init export storage: %w", err)
	}
	exportService := export.NewService(bookingService, catalogService, exportStore, log)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		CatalogService: catalogService,
		BookingService: bookingService,
		ExportService:  exportService,
	})

	return &Container{
		Router:         router,
		CatalogService: catalogService,
		BookingService: bookingService,
		ExportService:  exportService,
	}, nil
}
