// Package profile accumulates a play-style classification from the history
// of actions. Scores are plain counters: they only ever grow, and they rank
// a dominant style without gating any other mechanic.
package profile

import (
	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
)

// Style names a dominant play-style.
type Style string

const (
	StyleSmart    Style = "smart"
	StyleQuick    Style = "quick"
	StyleRisky    Style = "risky"
	StyleBalanced Style = "balanced"
)

// Scores are the four accumulated play-style counters.
type Scores struct {
	Smart    int `json:"smart"`
	Quick    int `json:"quick"`
	Risky    int `json:"risky"`
	Balanced int `json:"balanced"`
}

// CardPlayed credits the axis matching the card's category; a card whose
// effect vector has no negative component earns a balanced bonus on top.
func (s Scores) CardPlayed(card catalog.Card, bal config.Balance) Scores {
	switch card.Category {
	case catalog.PillarEnvironment:
		s.Smart += bal.ProfileCategoryPoints
	case catalog.PillarEconomy:
		s.Quick += bal.ProfileCategoryPoints
	case catalog.PillarSociety:
		s.Balanced += bal.ProfileCategoryPoints
	}
	if !card.Effect.HasNegative() {
		s.Balanced += bal.ProfileBalancedBonus
	}
	return s
}

// ChoiceMade credits the axis matching an event or council choice kind.
func (s Scores) ChoiceMade(kind catalog.ChoiceKind, bal config.Balance) Scores {
	switch kind {
	case catalog.KindSmart, catalog.KindSustainable:
		s.Smart += bal.ProfileChoicePoints
	case catalog.KindQuick:
		s.Quick += bal.ProfileChoicePoints
	case catalog.KindRisky:
		s.Risky += bal.ProfileChoicePoints
	case catalog.KindNeutral:
		s.Balanced += bal.ProfileChoicePoints
	}
	return s
}

// Dominant ranks the four axes and returns the leading style. Ties resolve
// in a fixed order: smart, quick, risky, balanced.
func (s Scores) Dominant() Style {
	best, style := s.Smart, StyleSmart
	if s.Quick > best {
		best, style = s.Quick, StyleQuick
	}
	if s.Risky > best {
		best, style = s.Risky, StyleRisky
	}
	if s.Balanced > best {
		style = StyleBalanced
	}
	return style
}
