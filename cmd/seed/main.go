package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"catalogapi/internal/platform/mysql"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	ctx := context.Background()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "catalog:catalog@tcp(localhost:3306)/catalog?parseTime=true&clientFoundRows=true"
	}

	db, err := mysql.Open(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	bookCount := 200
	listingCount := 500
	log.Printf("Generating %d books and %d listings...", bookCount, listingCount)

	authors := []string{"Ursula K. Le Guin", "Italo Calvino", "Octavia Butler", "Jorge Luis Borges", "Toni Morrison", "Stanislaw Lem", "Haruki Murakami", "Margaret Atwood"}
	subjects := []string{"the sea", "memory", "distant cities", "machines", "forests", "time", "borders", "migration"}
	locations := []string{"Lisbon", "Berlin", "Almaty", "Austin", "Osaka", "Nairobi", "Montreal", "Porto"}

	now := time.Now().UTC().Truncate(time.Second)

	bookInsert := `
		INSERT INTO books (id, title, author, description, published_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i := 0; i < bookCount; i++ {
		subject := subjects[rand.Intn(len(subjects))]
		title := fmt.Sprintf("Notes on %s, vol. %d", subject, i+1)
		author := authors[rand.Intn(len(authors))]
		desc := fmt.Sprintf("A book about %s.", subject)
		published := fmt.Sprintf("%d-0%d-01", 1960+rand.Intn(60), 1+rand.Intn(9))

		if _, err := db.ExecContext(ctx, bookInsert, uuid.NewString(), title, author, desc, published, now, now); err != nil {
			log.Fatalf("Failed to insert book: %v", err)
		}
	}

	listingInsert := `
		INSERT INTO listings (id, name, location, description, price, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for i := 0; i < listingCount; i++ {
		location := locations[rand.Intn(len(locations))]
		name := fmt.Sprintf("Apartment %d in %s", i+1, location)
		desc := fmt.Sprintf("A cozy place near the center of %s.", location)
		price := float64(30+rand.Intn(400)) + rand.Float64()

		if _, err := db.ExecContext(ctx, listingInsert, uuid.NewString(), name, location, desc, price, now, now); err != nil {
			log.Fatalf("Failed to insert listing: %v", err)
		}
	}

	var totalBooks, totalListings int
	if err := db.GetContext(ctx, &totalBooks, "SELECT COUNT(*) FROM books"); err != nil {
		log.Fatalf("Failed to count books: %v", err)
	}
	if err := db.GetContext(ctx, &totalListings, "SELECT COUNT(*) FROM listings"); err != nil {
		log.Fatalf("Failed to count listings: %v", err)
	}
	log.Printf("Done. books=%d listings=%d", totalBooks, totalListings)
}
