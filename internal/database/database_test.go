package database

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booktrack/internal/entities"
)

func TestNewDatabase(t *testing.T) {
	dbPath := "./test_db_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	// Both tables exist after migration
	assert.True(t, db.DB.Migrator().HasTable(&entities.Book{}))
	assert.True(t, db.DB.Migrator().HasTable(&entities.LibraryEntry{}))
}

func TestNewDatabase_EntriesReferenceBooks(t *testing.T) {
	dbPath := "./test_db_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	// A book may exist before any entry tracks it
	require.NoError(t, db.DB.Create(&entities.Book{GoogleID: "vol-1", Title: "Solo"}).Error)

	// An entry must reference an existing book
	err = db.DB.Create(&entities.LibraryEntry{GoogleID: "missing", Status: entities.StatusToRead}).Error
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY")

	require.NoError(t, db.DB.Create(&entities.LibraryEntry{GoogleID: "vol-1", Status: entities.StatusToRead}).Error)
}

func TestDatabase_Close(t *testing.T) {
	dbPath := "./test_db_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	defer os.Remove(dbPath)

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	assert.NoError(t, db.Close())
}
