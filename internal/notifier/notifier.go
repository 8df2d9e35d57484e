package notifier

import (
	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/resolver"
)

// Notifier defines a high-level interface for alerting humans about
// resolutions that need attention. This decouples the rest of the application
// from the specific notification provider (e.g., Slack).
type Notifier interface {
	// SendAmbiguousAlert reports a resolution that ended with multiple
	// candidates so an operator can disambiguate.
	SendAmbiguousAlert(query resolver.MatchQuery, candidates []directory.PlayerRecord, dryRun bool) error
	// SendUnresolvedAlert reports a resolution that matched nothing.
	SendUnresolvedAlert(query resolver.MatchQuery, dryRun bool) error
}
