// Command checkbookings prints the most recent bookings to stdout.
// Handy for checking the table without opening a psql session.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"

	"github.com/bharanipt/bike-rental-backend/internal/booking"
	"github.com/bharanipt/bike-rental-backend/internal/db"
)

func main() {
	limit := flag.Int("n", 10, "number of bookings to show")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("failed to load .env file: %v", err)
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.NewPool(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer pool.Close()

	repo := booking.NewPgxRepository(pool)
	bookings, err := repo.ListAll(ctx)
	if err != nil {
		log.Fatalf("failed to list bookings: %v", err)
	}

	if len(bookings) > *limit {
		bookings = bookings[:*limit]
	}

	fmt.Printf("Total shown: %d\n\n", len(bookings))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CREATED\tBIKE\tCUSTOMER\tOWNER\tDATE\tTIME\tAMOUNT\tSTATUS")
	for _, b := range bookings {
		owner := b.OwnerName
		if owner == "" {
			owner = b.UserID
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s-%s\t%.0f\t%s\n",
			b.CreatedAt.Format("2006-01-02 15:04"),
			b.BikeName,
			b.CustomerName,
			owner,
			b.Date,
			b.StartTime, b.EndTime,
			b.TotalAmount,
			b.Status,
		)
	}
	w.Flush()
}
