// Package library implements the business rules for the personal library:
// merging catalog search results into the store, tracking reading status,
// and assembling combined book/entry views.
package library

import (
	"context"
	"log"
	"time"

	"booktrack/internal/database/books"
	"booktrack/internal/database/entries"
	"booktrack/internal/entities"
	"booktrack/internal/googlebooks"
)

// Searcher queries the external book catalog.
type Searcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]googlebooks.SearchResult, error)
}

// BookStore persists catalog book records.
type BookStore interface {
	Upsert(input books.BookInput) (*entities.Book, error)
}

// EntryStore persists library entries.
type EntryStore interface {
	GetOrCreate(googleID string, defaultStatus entities.ReadingStatus) (*entities.LibraryEntry, error)
	Update(googleID string, patch entries.EntryPatch) (*entities.LibraryEntry, error)
	Delete(googleID string) (bool, error)
	List(status string) ([]entities.LibraryEntry, error)
	Get(googleID string) (*entities.LibraryEntry, error)
}

// BookView is the outward book shape; Authors is always the reconstructed
// list, never the stored delimited string.
type BookView struct {
	ID            uint     `json:"id"`
	GoogleID      string   `json:"google_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
	Description   string   `json:"description,omitempty"`
}

// EntryView is the outward library entry shape.
type EntryView struct {
	ID         uint                   `json:"id"`
	GoogleID   string                 `json:"google_id"`
	Status     entities.ReadingStatus `json:"status"`
	StartedAt  *time.Time             `json:"started_at,omitempty"`
	FinishedAt *time.Time             `json:"finished_at,omitempty"`
	MyRating   *int                   `json:"my_rating,omitempty"`
	MyNotes    string                 `json:"my_notes,omitempty"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// LibraryItem is the combined view of a book and the user's entry for it.
type LibraryItem struct {
	Book  BookView  `json:"book"`
	Entry EntryView `json:"entry"`
}

// Service orchestrates search-result ingestion and status management.
// It is stateless; every call maps to at most one storage transaction.
type Service struct {
	books    BookStore
	entries  EntryStore
	searcher Searcher
}

func NewService(bookStore BookStore, entryStore EntryStore, searcher Searcher) *Service {
	return &Service{
		books:    bookStore,
		entries:  entryStore,
		searcher: searcher,
	}
}

// Search queries the external catalog. Upstream failures are absorbed: any
// client error is logged and an empty result list returned, so a flaky
// provider degrades search instead of failing the request.
func (s *Service) Search(ctx context.Context, query string, maxResults int) []googlebooks.SearchResult {
	results, err := s.searcher.Search(ctx, query, maxResults)
	if err != nil {
		log.Printf("Google Books search failed: %v", err)
		return []googlebooks.SearchResult{}
	}
	return results
}

// AddToLibrary upserts the book's catalog metadata and ensures a library
// entry exists for it. Idempotent: re-adding the same volume refreshes the
// book's metadata without resetting or duplicating the entry.
func (s *Service) AddToLibrary(input books.BookInput) (*LibraryItem, error) {
	book, err := s.books.Upsert(input)
	if err != nil {
		return nil, err
	}
	entry, err := s.entries.GetOrCreate(book.GoogleID, entities.StatusToRead)
	if err != nil {
		return nil, err
	}
	item := composeItem(book, entry)
	return &item, nil
}

// ListLibrary returns all library items, optionally filtered by exact
// status match.
func (s *Service) ListLibrary(status string) ([]LibraryItem, error) {
	rows, err := s.entries.List(status)
	if err != nil {
		return nil, err
	}
	items := make([]LibraryItem, 0, len(rows))
	for i := range rows {
		items = append(items, composeItem(&rows[i].Book, &rows[i]))
	}
	return items, nil
}

// GetItem returns the library item for googleID, or (nil, nil) when the
// book was never added.
func (s *Service) GetItem(googleID string) (*LibraryItem, error) {
	entry, err := s.entries.Get(googleID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	item := composeItem(&entry.Book, entry)
	return &item, nil
}

// UpdateItem applies a partial update to the entry for googleID and returns
// the refreshed combined view, or (nil, nil) when no entry exists.
func (s *Service) UpdateItem(googleID string, patch entries.EntryPatch) (*LibraryItem, error) {
	entry, err := s.entries.Update(googleID, patch)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	// Re-read through the join so the view carries the book as well
	return s.GetItem(googleID)
}

// RemoveItem deletes the entry and its book. The returned flag reports
// whether an entry was removed; orphan book cleanup alone reports false.
func (s *Service) RemoveItem(googleID string) (bool, error) {
	return s.entries.Delete(googleID)
}

func composeItem(book *entities.Book, entry *entities.LibraryEntry) LibraryItem {
	return LibraryItem{
		Book: BookView{
			ID:            book.ID,
			GoogleID:      book.GoogleID,
			Title:         book.Title,
			Authors:       books.SplitAuthors(book.Authors),
			Thumbnail:     book.Thumbnail,
			PublishedDate: book.PublishedDate,
			Description:   book.Description,
		},
		Entry: EntryView{
			ID:         entry.ID,
			GoogleID:   entry.GoogleID,
			Status:     entry.Status,
			StartedAt:  entry.StartedAt,
			FinishedAt: entry.FinishedAt,
			MyRating:   entry.MyRating,
			MyNotes:    entry.MyNotes,
			UpdatedAt:  entry.UpdatedAt,
		},
	}
}
