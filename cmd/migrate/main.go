// Command migrate creates the kv_pairs table for the Postgres storage
// backend. The default Bolt backend needs no migration.
package main

import (
	"fmt"
	"log"

	"blackbook/internal/config"
	"blackbook/internal/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_pairs (
	key        text PRIMARY KEY,
	value      text NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
);
`

func main() {
	cfg := config.Load()
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer database.Close()

	if _, err := database.Exec(schema); err != nil {
		log.Fatalf("failed to ensure kv_pairs: %v", err)
	}
	fmt.Println("kv_pairs ready")
}
