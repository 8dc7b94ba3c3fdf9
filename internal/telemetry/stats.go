package telemetry

import (
	"encoding/json"
	"time"
)

type Stats struct {
	Period           string            `json:"period"`
	EventCounts      map[EventType]int `json:"event_counts"`
	CardsPerTurn     float64           `json:"cards_per_turn"`
	CardPlays        int               `json:"card_plays"`
	DisastersPerTurn float64           `json:"disasters_per_turn"`
	DisasterStrikes  int               `json:"disaster_strikes"`
	TurnsEnded       int               `json:"turns_ended"`
	GamesWon         int               `json:"games_won"`
	GamesLost        int               `json:"games_lost"`
	CardsByCategory  map[string]int    `json:"cards_by_category"`
	ChoicesByKind    map[string]int    `json:"choices_by_kind"`
}

// CalculateStats computes balance stats from events
func CalculateStats(events []Event, since time.Time) (Stats, error) {
	stats := Stats{
		Period:          since.Format("2006-01-02"),
		EventCounts:     make(map[EventType]int),
		CardsByCategory: make(map[string]int),
		ChoicesByKind:   make(map[string]int),
	}

	for _, event := range events {
		stats.EventCounts[event.Type]++

		var metadata EventMetadata
		if err := json.Unmarshal([]byte(event.Metadata), &metadata); err != nil {
			continue
		}

		switch event.Type {
		case EventCardPlayed:
			stats.CardPlays++
			if category, ok := metadata["category"].(string); ok {
				stats.CardsByCategory[category]++
			}
		case EventTurnEnded:
			stats.TurnsEnded++
		case EventDisasterStruck:
			stats.DisasterStrikes++
		case EventEventResolved, EventCouncilResolved:
			if kind, ok := metadata["kind"].(string); ok {
				stats.ChoicesByKind[kind]++
			}
		case EventGameWon:
			stats.GamesWon++
		case EventGameLost:
			stats.GamesLost++
		}
	}

	if stats.TurnsEnded > 0 {
		stats.CardsPerTurn = float64(stats.CardPlays) / float64(stats.TurnsEnded)
		stats.DisastersPerTurn = float64(stats.DisasterStrikes) / float64(stats.TurnsEnded)
	}

	return stats, nil
}
