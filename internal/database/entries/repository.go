// Package entries provides database operations for library entry management.
//
// A library entry is the user's tracking record for one book; at most one
// entry exists per Google Books volume ID. Entries and their books are
// deleted together as a unit.
package entries

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"booktrack/internal/entities"
)

// EntryPatch applies partial updates to a library entry. Nil fields are
// left untouched.
type EntryPatch struct {
	Status     *string
	StartedAt  *time.Time
	FinishedAt *time.Time
	MyRating   *int
	MyNotes    *string
}

// Repository handles all library entry database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new library entry repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the existing entry for googleID, or creates one with
// the given default status. An existing entry is returned untouched.
func (r *Repository) GetOrCreate(googleID string, defaultStatus entities.ReadingStatus) (*entities.LibraryEntry, error) {
	var entry entities.LibraryEntry
	err := r.db.Where("google_id = ?", googleID).First(&entry).Error
	if err == nil {
		return &entry, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry = entities.LibraryEntry{
		GoogleID: googleID,
		Status:   defaultStatus,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update applies the non-nil fields of patch to the entry for googleID and
// refreshes updated_at. Returns (nil, nil) when no entry exists.
func (r *Repository) Update(googleID string, patch EntryPatch) (*entities.LibraryEntry, error) {
	var entry entities.LibraryEntry
	err := r.db.Where("google_id = ?", googleID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if patch.Status != nil {
		entry.Status = entities.ReadingStatus(*patch.Status)
	}
	if patch.StartedAt != nil {
		entry.StartedAt = patch.StartedAt
	}
	if patch.FinishedAt != nil {
		entry.FinishedAt = patch.FinishedAt
	}
	if patch.MyRating != nil {
		entry.MyRating = patch.MyRating
	}
	if patch.MyNotes != nil {
		entry.MyNotes = *patch.MyNotes
	}

	if err := r.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes the entry for googleID and its book as a unit and reports
// whether an entry was deleted. When no entry exists but an orphan book row
// does, the book is still removed and false is returned; the cleanup is
// deliberate even though the call reports failure.
func (r *Repository) Delete(googleID string) (bool, error) {
	deleted := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entry entities.LibraryEntry
		err := tx.Where("google_id = ?", googleID).First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Still tidy up a book row left behind by earlier partial state
			return tx.Where("google_id = ?", googleID).Delete(&entities.Book{}).Error
		}
		if err != nil {
			return err
		}

		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}
		if err := tx.Where("google_id = ?", googleID).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// List returns all entries joined with their books, optionally filtered by
// exact status match. Order is storage order. The Book association is
// populated on every returned entry.
func (r *Repository) List(status string) ([]entities.LibraryEntry, error) {
	query := r.db.Preload("Book").
		Joins("JOIN books ON books.google_id = library_entries.google_id")
	if status != "" {
		query = query.Where("library_entries.status = ?", status)
	}

	var result []entities.LibraryEntry
	err := query.Find(&result).Error
	return result, err
}

// Get returns the entry for googleID joined with its book, or (nil, nil)
// when no entry exists.
func (r *Repository) Get(googleID string) (*entities.LibraryEntry, error) {
	var entry entities.LibraryEntry
	err := r.db.Preload("Book").
		Joins("JOIN books ON books.google_id = library_entries.google_id").
		Where("library_entries.google_id = ?", googleID).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
