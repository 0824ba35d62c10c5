package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"booktrack/internal/database/books"
	"booktrack/internal/database/entries"
	"booktrack/internal/library"
)

// LibraryService defines the library operations the controller depends on.
type LibraryService interface {
	AddToLibrary(input books.BookInput) (*library.LibraryItem, error)
	ListLibrary(status string) ([]library.LibraryItem, error)
	GetItem(googleID string) (*library.LibraryItem, error)
	UpdateItem(googleID string, patch entries.EntryPatch) (*library.LibraryItem, error)
	RemoveItem(googleID string) (bool, error)
}

// BookCreate is the add-to-library request body. The status field is
// accepted for compatibility but new entries always start as to_read.
type BookCreate struct {
	GoogleID      string   `json:"google_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Authors       []string `json:"authors"`
	Thumbnail     string   `json:"thumbnail"`
	PublishedDate string   `json:"published_date"`
	Description   string   `json:"description"`
	Status        string   `json:"status"`
}

// EntryUpdate is the partial PATCH body; absent fields are left untouched.
type EntryUpdate struct {
	Status     *string    `json:"status"`
	StartedAt  *time.Time `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at"`
	MyRating   *int       `json:"my_rating"`
	MyNotes    *string    `json:"my_notes"`
}

type LibraryController struct {
	service LibraryService
}

func NewLibraryController(service LibraryService) *LibraryController {
	return &LibraryController{service: service}
}

// AddOrUpdate upserts a book and ensures its library entry exists.
// POST /api/library
func (lc *LibraryController) AddOrUpdate(c *gin.Context) {
	var payload BookCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondValidationError(c, FieldError{Field: "body", Message: err.Error()})
		return
	}

	item, err := lc.service.AddToLibrary(books.BookInput{
		GoogleID:      payload.GoogleID,
		Title:         payload.Title,
		Authors:       payload.Authors,
		Thumbnail:     payload.Thumbnail,
		PublishedDate: payload.PublishedDate,
		Description:   payload.Description,
	})
	if err != nil {
		respondInternalError(c, err, "add to library")
		return
	}

	c.JSON(http.StatusOK, item)
}

// List returns all library items, optionally filtered by status.
// GET /api/library?status=<optional>
func (lc *LibraryController) List(c *gin.Context) {
	items, err := lc.service.ListLibrary(c.Query("status"))
	if err != nil {
		respondInternalError(c, err, "list library")
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get returns a single library item.
// GET /api/library/:google_id
func (lc *LibraryController) Get(c *gin.Context) {
	item, err := lc.service.GetItem(c.Param("google_id"))
	if err != nil {
		respondInternalError(c, err, "get library item")
		return
	}
	if item == nil {
		respondNotFound(c, "library entry")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Update applies a partial update to a library entry.
// PATCH /api/library/:google_id
func (lc *LibraryController) Update(c *gin.Context) {
	var payload EntryUpdate
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondValidationError(c, FieldError{Field: "body", Message: err.Error()})
		return
	}
	if payload.MyRating != nil && (*payload.MyRating < 1 || *payload.MyRating > 5) {
		respondValidationError(c, FieldError{
			Field:   "my_rating",
			Message: "must be between 1 and 5",
		})
		return
	}

	item, err := lc.service.UpdateItem(c.Param("google_id"), entries.EntryPatch{
		Status:     payload.Status,
		StartedAt:  payload.StartedAt,
		FinishedAt: payload.FinishedAt,
		MyRating:   payload.MyRating,
		MyNotes:    payload.MyNotes,
	})
	if err != nil {
		respondInternalError(c, err, "update library item")
		return
	}
	if item == nil {
		respondNotFound(c, "library entry")
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes a library entry and its book.
// DELETE /api/library/:google_id
func (lc *LibraryController) Delete(c *gin.Context) {
	ok, err := lc.service.RemoveItem(c.Param("google_id"))
	if err != nil {
		respondInternalError(c, err, "delete library item")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": ok})
}
