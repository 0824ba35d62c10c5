package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"booktrack/internal/config"
	"booktrack/internal/database"
	"booktrack/internal/database/books"
	"booktrack/internal/database/entries"
	"booktrack/internal/googlebooks"
	http_controllers "booktrack/internal/http"
	"booktrack/internal/library"
)

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts down within
// the configured timeout.
func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Run wires the application together and starts serving.
func Run(cfg *config.Config, version string) {
	log.Printf("Starting BookTrack v%s", version)

	if cfg.GoogleBooks.APIKey == "" {
		log.Printf("WARNING: Google Books API key is not set. Search runs unauthenticated at reduced quota. Set 'GOOGLE_BOOKS_API_KEY' to raise it.")
	}

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	searchClient := googlebooks.NewClient(cfg.GoogleBooks.APIKey)
	bookRepo := books.NewRepository(db.DB)
	entryRepo := entries.NewRepository(db.DB)
	libraryService := library.NewService(bookRepo, entryRepo, searchClient)

	// Frontend directories are optional; skip them when missing so an
	// API-only deployment works without the bundled pages.
	frontendPath := cfg.UI.FrontendPath
	staticPath := cfg.UI.StaticPath
	if _, err := os.Stat(frontendPath); os.IsNotExist(err) {
		log.Printf("Frontend directory %s not found, serving API only", frontendPath)
		frontendPath = ""
		staticPath = ""
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:     db,
		Library:      libraryService,
		Searcher:     libraryService,
		FrontendPath: frontendPath,
		StaticPath:   staticPath,
		Version:      version,
	})

	Serve(router, cfg)
}
