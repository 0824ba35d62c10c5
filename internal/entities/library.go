package entities

import (
	"time"
)

// ReadingStatus values are conventions, not an enforced enum: storage and
// the PATCH endpoint accept any string, matching the original contract.
type ReadingStatus string

const (
	StatusToRead   ReadingStatus = "to_read"
	StatusReading  ReadingStatus = "reading"
	StatusFinished ReadingStatus = "finished"
)

// Book is a catalog entry adopted into the local store. Books are keyed by
// the Google Books volume ID; a row exists only while a LibraryEntry owns it.
type Book struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	GoogleID      string `gorm:"uniqueIndex;size:128" json:"google_id"`
	Title         string `gorm:"size:512" json:"title"`
	Authors       string `gorm:"size:512" json:"authors,omitempty"` // comma-joined, split back on read
	Thumbnail     string `gorm:"size:1024" json:"thumbnail,omitempty"`
	PublishedDate string `gorm:"size:64" json:"published_date,omitempty"` // free text from the catalog, never parsed
	Description   string `gorm:"type:text" json:"description,omitempty"`

	// The has-one declared from this side puts the schema-level foreign
	// key on library_entries, referencing books.
	Entry *LibraryEntry `gorm:"foreignKey:GoogleID;references:GoogleID" json:"-"`
}

// LibraryEntry is the user's personal tracking record for one book.
type LibraryEntry struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	GoogleID   string        `gorm:"uniqueIndex;size:128" json:"google_id"`
	Status     ReadingStatus `gorm:"size:32;default:'to_read'" json:"status"`
	StartedAt  *time.Time    `json:"started_at,omitempty"`
	FinishedAt *time.Time    `json:"finished_at,omitempty"`
	MyRating   *int          `json:"my_rating,omitempty"`
	MyNotes    string        `gorm:"type:text" json:"my_notes,omitempty"`
	UpdatedAt  time.Time     `json:"updated_at"`

	// constraint:- keeps this side from emitting a second, reversed
	// foreign key; the real one comes from Book.Entry.
	Book Book `gorm:"foreignKey:GoogleID;references:GoogleID;constraint:-" json:"-"`
}

func (Book) TableName() string {
	return "books"
}

func (LibraryEntry) TableName() string {
	return "library_entries"
}
