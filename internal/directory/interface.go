package directory

import "context"

// PlayerDirectory defines the read-and-import surface of the roster snapshot.
// Search is the lookup the resolver depends on; the remaining methods exist
// for the import pipeline and the admin endpoints.
type PlayerDirectory interface {
	Search(ctx context.Context, q Query) ([]PlayerRecord, error)
	UpsertPlayers(records []PlayerRecord) error
	GetAllPlayers() ([]PlayerRecord, error)
	GetPlayer(playerID string) (*PlayerRecord, error)
	Clear()
}
