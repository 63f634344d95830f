package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seeds a user row for local testing.
func main() {
	username := flag.String("username", "testuser", "username to create")
	balance := flag.Int64("balance", 200, "initial character balance")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	var id int64
	err = db.QueryRow(context.Background(),
		`INSERT INTO users (username, char_balance)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET char_balance = $2
		 RETURNING id`,
		*username, *balance,
	).Scan(&id)
	if err != nil {
		log.Fatalf("create user: %v", err)
	}

	fmt.Printf("user %q ready, id=%d balance=%d\n", *username, id, *balance)
}
