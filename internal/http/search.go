package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booktrack/internal/googlebooks"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 40
)

// BookSearcher queries the external catalog, degrading to an empty list on
// upstream failure.
type BookSearcher interface {
	Search(ctx context.Context, query string, maxResults int) []googlebooks.SearchResult
}

type SearchController struct {
	searcher BookSearcher
}

func NewSearchController(searcher BookSearcher) *SearchController {
	return &SearchController{searcher: searcher}
}

// Search runs a catalog query.
// GET /api/search?q=<query>&max_results=<1..40>
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		respondValidationError(c, FieldError{Field: "q", Message: "query is required"})
		return
	}

	maxResults := defaultMaxResults
	if raw := c.Query("max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxMaxResults {
			respondValidationError(c, FieldError{
				Field:   "max_results",
				Message: "must be an integer between 1 and 40",
			})
			return
		}
		maxResults = parsed
	}

	// The outbound call is bounded by the client's own timeout; caller
	// cancellation is not propagated.
	results := sc.searcher.Search(context.Background(), query, maxResults)
	c.JSON(http.StatusOK, results)
}
