package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/names"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// Simplified config loading for the script
func loadConfig() map[string]string {
	err := godotenv.Load()
	if err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}

	config := make(map[string]string)
	required := []string{"TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN"}

	for _, key := range required {
		if value, ok := os.LookupEnv(key); ok {
			config[key] = value
		} else {
			log.Fatalf("Error: Required environment variable %s is not set.", key)
		}
	}
	return config
}

func main() {
	log.Info("Starting roster seeder...")
	if len(os.Args) < 2 {
		log.Fatal("Usage: seeder <roster-snapshot.json>")
	}
	cfg := loadConfig()

	// Connect directly to the primary database
	dbURL := fmt.Sprintf("%s?authToken=%s", cfg["TURSO_PRIMARY_URL"], cfg["TURSO_AUTH_TOKEN"])
	db, err := sql.Open("libsql", dbURL)
	if err != nil {
		log.Fatalf("Failed to open primary database: %s", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to primary database: %s", err)
	}

	log.Info("Successfully connected to the primary database.")

	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to read roster snapshot: %s", err)
	}

	var records []directory.PlayerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Fatalf("Failed to parse roster snapshot: %s", err)
	}

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
	}

	const batchSize = 100

	log.Info("Preparing to insert roster records...", "total", len(records), "batch_size", batchSize)
	startTime := time.Now()

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %s", err)
	}

	valueStrings := make([]string, 0, batchSize)
	valueArgs := make([]interface{}, 0, batchSize*7) // 7 columns per player

	for i, p := range records {
		valueStrings = append(valueStrings, "(?, ?, ?, ?, ?, ?, ?)")
		valueArgs = append(valueArgs,
			p.ID,
			p.FirstName,
			p.LastName,
			names.NormalizeKey(p.LastName),
			p.Club,
			p.SeriesCanonical,
			p.LeagueID,
		)

		if (i+1)%batchSize == 0 || (i+1) == len(records) {
			stmt := fmt.Sprintf(`
				INSERT INTO players (id, first_name, last_name, last_name_key, club, series_canonical, league_id)
				VALUES %s
				ON CONFLICT(id) DO UPDATE SET
					first_name = excluded.first_name,
					last_name = excluded.last_name,
					last_name_key = excluded.last_name_key,
					club = excluded.club,
					series_canonical = excluded.series_canonical,
					league_id = excluded.league_id;`, strings.Join(valueStrings, ","))

			_, err := tx.Exec(stmt, valueArgs...)
			if err != nil {
				tx.Rollback()
				log.Fatalf("Failed to execute batch insert: %s", err)
			}

			// Reset for the next batch
			valueStrings = make([]string, 0, batchSize)
			valueArgs = make([]interface{}, 0, batchSize*7)
			log.Info("Inserted batch", "completed", i+1, "total", len(records))
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %s", err)
	}

	duration := time.Since(startTime)
	log.Info("Successfully seeded roster.", "players", len(records), "duration", duration)
}
