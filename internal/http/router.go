package http

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	searchController := NewSearchController(cfg.Searcher)
	libraryController := NewLibraryController(cfg.Library)

	// Health endpoint
	router.GET("/health", health.Status)

	// Catalog search
	router.GET("/api/search", searchController.Search)

	// Library endpoints
	router.POST("/api/library", libraryController.AddOrUpdate)
	router.GET("/api/library", libraryController.List)
	router.GET("/api/library/:google_id", libraryController.Get)
	router.PATCH("/api/library/:google_id", libraryController.Update)
	router.DELETE("/api/library/:google_id", libraryController.Delete)

	// Frontend passthrough: static assets and the three HTML pages
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}
	if cfg.FrontendPath != "" {
		router.StaticFile("/", filepath.Join(cfg.FrontendPath, "index.html"))
		router.StaticFile("/library", filepath.Join(cfg.FrontendPath, "library.html"))
		router.StaticFile("/book", filepath.Join(cfg.FrontendPath, "book.html"))
	}

	return router
}
