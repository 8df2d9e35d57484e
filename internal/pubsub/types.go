package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	// EventPlayerLinked fires when a resolution produced a unique player ID.
	EventPlayerLinked EventType = "player-linked"
	// EventLinkAmbiguous fires when a resolution ended with multiple
	// candidates and needs manual disambiguation downstream.
	EventLinkAmbiguous EventType = "link-ambiguous"
	// EventLinkUnresolved fires when no directory record matched.
	EventLinkUnresolved EventType = "link-unresolved"
)
