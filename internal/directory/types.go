package directory

import (
	"database/sql"
	"sync"
)

// store handles all database operations for the player directory.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// PlayerRecord is one row of the externally maintained, per-league roster
// snapshot. The import pipeline owns these records; the resolver only reads
// them.
type PlayerRecord struct {
	ID              string `json:"player_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Club            string `json:"club"`
	SeriesCanonical string `json:"series_canonical"`
	LeagueID        string `json:"league_id"`
}

// Query carries the active constraints for one directory lookup. LastName and
// LeagueID are always present; the other fields are empty when the querying
// tier has dropped them.
type Query struct {
	FirstName string
	LastName  string
	Club      string
	Series    string
	LeagueID  string
}
