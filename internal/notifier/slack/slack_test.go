package slack_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/rosterlink/internal/directory"
	"github.com/mauv0809/rosterlink/internal/metrics"
	slacknotifier "github.com/mauv0809/rosterlink/internal/notifier/slack"
	"github.com/mauv0809/rosterlink/internal/resolver"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSlackAPI captures posted messages instead of hitting the Slack API.
type fakeSlackAPI struct {
	calls int
	err   error
}

func (f *fakeSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	f.calls++
	if f.err != nil {
		return "", "", f.err
	}
	return channelID, "ts", nil
}

func testQuery() resolver.MatchQuery {
	return resolver.MatchQuery{
		FirstName: "Bob",
		LastName:  "Smith",
		Club:      "Tennaqua",
		SeriesRaw: "Chicago 19",
		LeagueID:  "APTA_CHICAGO",
	}
}

func TestSendAmbiguousAlert(t *testing.T) {
	api := &fakeSlackAPI{}
	m := metrics.NewMock()
	n := slacknotifier.NewNotifierWithAPI(api, "C123", m)

	err := n.SendAmbiguousAlert(testQuery(), []directory.PlayerRecord{
		{ID: "p1", FirstName: "Robert", LastName: "Smith"},
		{ID: "p2", FirstName: "Bobby", LastName: "Smith"},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 1, api.calls)
	assert.Equal(t, 1, m.SlackNotifSent())
	assert.Equal(t, 0, m.SlackNotifFailed())
}

func TestSendUnresolvedAlertDryRun(t *testing.T) {
	api := &fakeSlackAPI{}
	m := metrics.NewMock()
	n := slacknotifier.NewNotifierWithAPI(api, "C123", m)

	err := n.SendUnresolvedAlert(testQuery(), true)
	require.NoError(t, err)

	// Dry run never reaches the API and records no metrics.
	assert.Equal(t, 0, api.calls)
	assert.Equal(t, 0, m.SlackNotifSent())
}

func TestSendAlertFailureCountsAsFailed(t *testing.T) {
	api := &fakeSlackAPI{err: errors.New("channel_not_found")}
	m := metrics.NewMock()
	n := slacknotifier.NewNotifierWithAPI(api, "C123", m)

	err := n.SendUnresolvedAlert(testQuery(), false)
	require.Error(t, err)
	assert.Equal(t, 1, m.SlackNotifFailed())
	assert.Equal(t, 0, m.SlackNotifSent())
}
