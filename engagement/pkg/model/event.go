package model

import "fmt"

// EngagementEvent defines an event containing a single fact change
// published by an upstream producer.
type EngagementEvent struct {
	Type       EngagementEventType `json:"eventType"`
	FilmID     FilmID              `json:"filmId"`
	UserID     UserID              `json:"userId"`
	Value      int                 `json:"value,omitempty"`
	ProviderID string              `json:"providerId,omitempty"`
}

func (ev *EngagementEvent) String() string {
	return fmt.Sprintf("EngagementEvent{type=%s, filmId=%s, userId=%s, value=%d, providerId=%s}", ev.Type, ev.FilmID, ev.UserID, ev.Value, ev.ProviderID)
}

// EngagementEventType defines the type of engagement event.
type EngagementEventType string

// Engagement event types.
const (
	EventTypeReactionSet   = EngagementEventType("reaction.set")
	EventTypeReactionClear = EngagementEventType("reaction.clear")
	EventTypeRatingSet     = EngagementEventType("rating.set")
	EventTypeRatingClear   = EngagementEventType("rating.clear")
)

// EngagementDelivery defines a consumed engagement event together with
// the acknowledgement that commits its position in the source. Ack is
// nil when the source does not track positions.
type EngagementDelivery struct {
	Event EngagementEvent
	Ack   func() error
}
