package telemetry

import "time"

type EventType string

const (
	EventGameStarted     EventType = "game_started"
	EventCardPlayed      EventType = "card_played"
	EventCardDiscarded   EventType = "card_discarded"
	EventTurnEnded       EventType = "turn_ended"
	EventDisasterStruck  EventType = "disaster_struck"
	EventEventResolved   EventType = "event_resolved"
	EventCouncilResolved EventType = "council_resolved"
	EventRewardPicked    EventType = "reward_picked"
	EventRewardSkipped   EventType = "reward_skipped"
	EventGameWon         EventType = "game_won"
	EventGameLost        EventType = "game_lost"
)

type Event struct {
	ID        int       `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  string    `json:"metadata"`
}

type EventMetadata map[string]interface{}
