package http

import (
	"booktrack/internal/database"
)

// RouterConfig collects the dependencies for NewRouter. Using a config
// struct keeps the router testable and the parameter list flat.
type RouterConfig struct {
	Database *database.Database
	Library  LibraryService
	Searcher BookSearcher

	// FrontendPath and StaticPath point at the bundled single-page
	// frontend; both are optional and skipped when empty (API-only mode).
	FrontendPath string
	StaticPath   string

	Version string
}
