// Command generate_demo creates a demo database with a small personal
// library of public domain books across all reading statuses.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"booktrack/internal/database"
	"booktrack/internal/database/books"
	"booktrack/internal/database/entries"
	"booktrack/internal/entities"
	"booktrack/internal/library"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	input  books.BookInput
	status entities.ReadingStatus
	rating int
	notes  string
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	service := library.NewService(
		books.NewRepository(db.DB),
		entries.NewRepository(db.DB),
		nil, // no outbound search needed for seeding
	)

	for _, demo := range demoLibrary() {
		item, err := service.AddToLibrary(demo.input)
		if err != nil {
			log.Printf("Failed to add %s: %v", demo.input.Title, err)
			continue
		}

		patch := entries.EntryPatch{}
		if demo.status != entities.StatusToRead {
			status := string(demo.status)
			patch.Status = &status
			started := time.Now().AddDate(0, -2, 0)
			patch.StartedAt = &started
		}
		if demo.status == entities.StatusFinished {
			finished := time.Now().AddDate(0, -1, 0)
			patch.FinishedAt = &finished
			if demo.rating > 0 {
				rating := demo.rating
				patch.MyRating = &rating
			}
			if demo.notes != "" {
				notes := demo.notes
				patch.MyNotes = &notes
			}
		}
		if _, err := service.UpdateItem(item.Book.GoogleID, patch); err != nil {
			log.Printf("Failed to update entry for %s: %v", demo.input.Title, err)
			continue
		}

		log.Printf("Seeded: %s (%s)", demo.input.Title, demo.status)
	}

	log.Printf("Demo database ready at %s", *dbPath)
}

func demoLibrary() []demoBook {
	return []demoBook{
		{
			input: books.BookInput{
				GoogleID:      "demo-pride-prejudice",
				Title:         "Pride and Prejudice",
				Authors:       []string{"Jane Austen"},
				PublishedDate: "1813",
				Description:   "A novel of manners following Elizabeth Bennet.",
			},
			status: entities.StatusFinished,
			rating: 5,
			notes:  "Re-read. The Netherfield chapters remain the best part.",
		},
		{
			input: books.BookInput{
				GoogleID:      "demo-moby-dick",
				Title:         "Moby-Dick; or, The Whale",
				Authors:       []string{"Herman Melville"},
				PublishedDate: "1851",
				Description:   "The voyage of the whaling ship Pequod.",
			},
			status: entities.StatusFinished,
			rating: 4,
			notes:  "Skimmed the cetology chapters.",
		},
		{
			input: books.BookInput{
				GoogleID:      "demo-war-peace",
				Title:         "War and Peace",
				Authors:       []string{"Leo Tolstoy"},
				PublishedDate: "1869",
			},
			status: entities.StatusReading,
		},
		{
			input: books.BookInput{
				GoogleID:      "demo-middlemarch",
				Title:         "Middlemarch",
				Authors:       []string{"George Eliot"},
				PublishedDate: "1872",
			},
			status: entities.StatusToRead,
		},
		{
			input: books.BookInput{
				GoogleID:      "demo-iliad",
				Title:         "The Iliad",
				Authors:       []string{"Homer", "Samuel Butler"},
				PublishedDate: "1898",
				Description:   "Butler's prose translation.",
			},
			status: entities.StatusToRead,
		},
	}
}
