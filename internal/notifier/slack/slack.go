package slack

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/metrics"
	"github.com/mauv0809/rosterlink/internal/notifier"
	"github.com/mauv0809/rosterlink/internal/resolver"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier posts roster-resolution alerts to the club's ops channel.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// SendAmbiguousAlert posts the query and its candidate set so an operator can
// pick the right player.
func (s *Notifier) SendAmbiguousAlert(query resolver.MatchQuery, candidates []directory.PlayerRecord, dryRun bool) error {
	var b strings.Builder
	fmt.Fprintf(&b, "*Ambiguous roster match* for %s %s (%s, %s, %s)\n",
		query.FirstName, query.LastName, query.Club, query.SeriesRaw, query.LeagueID)
	for _, c := range candidates {
		fmt.Fprintf(&b, "• `%s` — %s %s, %s, %s\n", c.ID, c.FirstName, c.LastName, c.Club, c.SeriesCanonical)
	}
	b.WriteString("Pick the correct player in the admin console.")

	return s.sendMessage(b.String(), dryRun)
}

// SendUnresolvedAlert posts a query that matched nothing in the directory.
func (s *Notifier) SendUnresolvedAlert(query resolver.MatchQuery, dryRun bool) error {
	text := fmt.Sprintf("*No roster match* for %s %s (%s, %s, %s). The directory snapshot may be stale.",
		query.FirstName, query.LastName, query.Club, query.SeriesRaw, query.LeagueID)
	return s.sendMessage(text, dryRun)
}

func (s *Notifier) sendMessage(text string, dryRun bool) error {
	if dryRun {
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", text)
		return nil
	}

	_, _, err := s.api.PostMessageContext(
		context.Background(),
		s.channelID,
		slack.MsgOptionText(text, false),
	)
	if err != nil {
		log.Error("Failed to send Slack message", "error", err, "channel", s.channelID)
		s.metrics.IncSlackNotifFailed()
		return err
	}
	s.metrics.IncSlackNotifSent()
	return nil
}
