// Package books provides database operations for catalog book records.
//
// Books are keyed by their Google Books volume ID. Author lists are
// normalized to a single comma-joined string on write and split back to a
// list on read; blank names are dropped in both directions.
package books

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"booktrack/internal/entities"
)

// BookInput carries the catalog metadata used to create or refresh a book.
type BookInput struct {
	GoogleID      string
	Title         string
	Authors       []string
	Thumbnail     string
	PublishedDate string
	Description   string
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new book repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert creates the book for input.GoogleID or overwrites the mutable
// fields of the existing row. Returns the persisted record with its
// assigned ID.
func (r *Repository) Upsert(input BookInput) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("google_id = ?", input.GoogleID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		book = entities.Book{
			GoogleID:      input.GoogleID,
			Title:         input.Title,
			Authors:       NormalizeAuthors(input.Authors),
			Thumbnail:     input.Thumbnail,
			PublishedDate: input.PublishedDate,
			Description:   input.Description,
		}
		if err := r.db.Create(&book).Error; err != nil {
			return nil, err
		}
		return &book, nil
	}
	if err != nil {
		return nil, err
	}

	// Update metadata in place if we received newer info
	book.Title = input.Title
	book.Authors = NormalizeAuthors(input.Authors)
	book.Thumbnail = input.Thumbnail
	book.PublishedDate = input.PublishedDate
	book.Description = input.Description
	if err := r.db.Save(&book).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

// GetByGoogleID retrieves a book by its Google Books volume ID.
// Returns (nil, nil) when no row exists.
func (r *Repository) GetByGoogleID(googleID string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("google_id = ?", googleID).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// NormalizeAuthors joins author names into the stored comma-delimited form,
// dropping blank entries.
func NormalizeAuthors(authors []string) string {
	kept := make([]string, 0, len(authors))
	for _, a := range authors {
		if strings.TrimSpace(a) != "" {
			kept = append(kept, a)
		}
	}
	return strings.Join(kept, ", ")
}

// SplitAuthors reconstructs the author list from the stored form.
// Returns nil for an empty value so JSON output omits the field.
func SplitAuthors(authors string) []string {
	if authors == "" {
		return nil
	}
	var result []string
	for _, part := range strings.Split(authors, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			result = append(result, part)
		}
	}
	return result
}
