package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rosterlink/internal/names"
)

// New creates a new PlayerDirectory backed by the given database.
func New(db *sql.DB) PlayerDirectory {
	return &store{
		db: db,
	}
}

// Search returns all records satisfying the query's active constraints. Last
// name is matched on its normalized key and club case-insensitively; empty
// optional fields are simply not part of the WHERE clause. First-name
// equivalence is deliberately not applied here; the resolver filters
// candidates in memory.
func (s *store) Search(ctx context.Context, q Query) ([]PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, first_name, last_name, club, series_canonical, league_id
		FROM players
		WHERE league_id = ? AND last_name_key = ?`
	args := []any{q.LeagueID, names.NormalizeKey(q.LastName)}

	if q.Club != "" {
		query += " AND club = ? COLLATE NOCASE"
		args = append(args, q.Club)
	}
	if q.Series != "" {
		query += " AND series_canonical = ? COLLATE NOCASE"
		args = append(args, q.Series)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}
	defer rows.Close()

	var records []PlayerRecord
	for rows.Next() {
		var r PlayerRecord
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Club, &r.SeriesCanonical, &r.LeagueID); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// UpsertPlayers inserts or replaces a batch of snapshot records in one
// transaction. It is "dumb": the import pipeline's snapshot always wins.
func (s *store) UpsertPlayers(records []PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO players (id, first_name, last_name, last_name_key, club, series_canonical, league_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			last_name_key = excluded.last_name_key,
			club = excluded.club,
			series_canonical = excluded.series_canonical,
			league_id = excluded.league_id;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err = stmt.Exec(r.ID, r.FirstName, r.LastName, names.NormalizeKey(r.LastName), r.Club, r.SeriesCanonical, r.LeagueID)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert player %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// GetAllPlayers retrieves every record in the directory, ordered by name.
func (s *store) GetAllPlayers() ([]PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, first_name, last_name, club, series_canonical, league_id
		FROM players ORDER BY last_name, first_name
	`)
	if err != nil {
		log.Error("Failed to query all players", "error", err)
		return nil, err
	}
	defer rows.Close()

	var records []PlayerRecord
	for rows.Next() {
		var r PlayerRecord
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Club, &r.SeriesCanonical, &r.LeagueID); err != nil {
			log.Error("Failed to scan player row", "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetPlayer retrieves a single record by ID, or nil when it does not exist.
func (s *store) GetPlayer(playerID string) (*PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r PlayerRecord
	err := s.db.QueryRow(`
		SELECT id, first_name, last_name, club, series_canonical, league_id
		FROM players WHERE id = ?
	`, playerID).Scan(&r.ID, &r.FirstName, &r.LastName, &r.Club, &r.SeriesCanonical, &r.LeagueID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
	}
	return &r, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM players"); err != nil {
		log.Error("Failed to clear players table", "error", err)
	}
}
