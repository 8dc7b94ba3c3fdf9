package sim

import (
	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/deck"
	"github.com/pontesfelipe/sistur-sub000/internal/profile"
	"github.com/pontesfelipe/sistur-sub000/internal/resource"
)

// Phase is the turn engine's interaction state. Mutating operations are
// valid only in the phase that expects them; everything else is a silent
// no-op.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseAwaitingEvent   Phase = "awaiting_event"
	PhaseAwaitingCouncil Phase = "awaiting_council"
	PhaseAwaitingReward  Phase = "awaiting_reward"
	PhaseGameOver        Phase = "game_over"
	PhaseVictory         Phase = "victory"
)

// EndReason explains why a playthrough reached a terminal phase.
type EndReason string

const (
	EndReasonCollapse EndReason = "equilibrium_collapse"
	EndReasonOverrun  EndReason = "disaster_overrun"
	EndReasonVictory  EndReason = "victory_conditions_met"
)

// Log entry kinds.
const (
	LogCardPlayed      = "card_played"
	LogCardDiscarded   = "card_discarded"
	LogTurnEnded       = "turn_ended"
	LogDisaster        = "disaster"
	LogEventResolved   = "event_resolved"
	LogCouncilResolved = "council_resolved"
	LogRewardPicked    = "reward_picked"
	LogRewardSkipped   = "reward_skipped"
)

// LogEntry is one record of the engine's append-only history.
type LogEntry struct {
	Turn int    `json:"turn"`
	Kind string `json:"kind"`
	Ref  string `json:"ref,omitempty"`
	Note string `json:"note,omitempty"`
}

// State is the full, plain-serializable simulation snapshot. It has no
// behavior of its own; persistence of snapshots is the caller's concern.
type State struct {
	Biome string `json:"biome"`
	Turn  int    `json:"turn"`
	Phase Phase  `json:"phase"`

	Bars    resource.Bars    `json:"bars"`
	Account resource.Account `json:"account"`
	Deck    deck.State       `json:"deck"`

	PlaysThisTurn  int      `json:"plays_this_turn"`
	PlayedThisTurn []string `json:"played_this_turn"`
	DisasterCount  int      `json:"disaster_count"`

	Profile profile.Scores `json:"profile"`

	PendingEvent   string         `json:"pending_event,omitempty"`
	PendingCouncil string         `json:"pending_council,omitempty"`
	RewardOffer    []catalog.Card `json:"reward_offer,omitempty"`

	EndReason EndReason  `json:"end_reason,omitempty"`
	History   []LogEntry `json:"history"`

	// Derived fields, recomputed on every snapshot so they can never drift.
	Equilibrium   float64       `json:"equilibrium"`
	Visitors      int           `json:"visitors"`
	GameOver      bool          `json:"game_over"`
	Victory       bool          `json:"victory"`
	DominantStyle profile.Style `json:"dominant_style"`
}
