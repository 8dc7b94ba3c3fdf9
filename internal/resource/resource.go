// Package resource owns the three coupled pillar bars, the derived
// equilibrium score, and the coin/experience economy of a playthrough.
package resource

import (
	"math"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
)

// Bars are the three pillar values. Every mutation clamps each value to
// [0,100]; bars are never read outside that range.
type Bars struct {
	Environment int `json:"environment"`
	Economy     int `json:"economy"`
	Society     int `json:"society"`
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Get returns the value for a pillar by name.
func (b Bars) Get(p catalog.Pillar) int {
	switch p {
	case catalog.PillarEnvironment:
		return b.Environment
	case catalog.PillarEconomy:
		return b.Economy
	case catalog.PillarSociety:
		return b.Society
	}
	return 0
}

// ApplyEffect adds the effect's pillar components, clamps, then applies the
// overdevelopment coupling: when economy exceeds environment by more than
// the configured margin, the environment takes a fixed penalty and is
// re-clamped. The coupling runs after every effect application, including
// decay and threat effects.
func ApplyEffect(b Bars, e catalog.Effect, bal config.Balance) Bars {
	b.Environment = clamp(b.Environment + e.Environment)
	b.Economy = clamp(b.Economy + e.Economy)
	b.Society = clamp(b.Society + e.Society)

	if b.Economy > b.Environment+bal.OverdevelopmentMargin {
		b.Environment = clamp(b.Environment - bal.OverdevelopmentPenalty)
	}
	return b
}

// Equilibrium is the weighted composite of the three pillars.
func Equilibrium(b Bars, bal config.Balance) float64 {
	return bal.WeightEnvironment*float64(b.Environment) +
		bal.WeightEconomy*float64(b.Economy) +
		bal.WeightSociety*float64(b.Society)
}

// Visitors derives the popularity metric from the equilibrium. It carries
// no state of its own and is always recomputed.
func Visitors(equilibrium float64, bal config.Balance) int {
	return int(math.Round(math.Max(0, equilibrium) * bal.VisitorRate))
}

// Account is the coin/experience economy of a playthrough.
type Account struct {
	Coins int `json:"coins"`
	XP    int `json:"xp"`
	Level int `json:"level"`
}

// AddCoins adjusts the balance, which never drops below zero.
func (a Account) AddCoins(delta int) Account {
	a.Coins += delta
	if a.Coins < 0 {
		a.Coins = 0
	}
	return a
}

// GrantXP adds experience and recomputes the level from scratch against the
// threshold table. Experience never drops, so the level can only move
// forward within a playthrough.
func (a Account) GrantXP(amount int, thresholds []int) Account {
	if amount > 0 {
		a.XP += amount
	}
	a.Level = LevelFor(a.XP, thresholds)
	return a
}

// LevelFor returns the highest level whose cumulative XP threshold is at or
// below xp. Levels are 1-based.
func LevelFor(xp int, thresholds []int) int {
	level := 1
	for i, need := range thresholds {
		if xp >= need {
			level = i + 1
		}
	}
	return level
}
