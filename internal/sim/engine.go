// Package sim implements the turn-based eco-park simulation engine: a
// single-threaded state machine over the deck, the pillar bars and the
// coin/experience economy. Player mistakes (bad indices, unaffordable
// cards, commands in the wrong phase) are silent no-ops; broken catalog
// references are surfaced as errors.
package sim

import (
	"fmt"
	"math"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/deck"
	"github.com/pontesfelipe/sistur-sub000/internal/resource"
	"github.com/pontesfelipe/sistur-sub000/internal/rng"
)

// Game binds a simulation state to its catalog, balance constants and
// random source. It is not safe for concurrent use; callers serialize
// access per game.
type Game struct {
	cat *catalog.Catalog
	bal config.Balance
	src rng.Source

	state State
}

// New starts a fresh playthrough in the given biome: starter deck plus
// biome additions, shuffled, with the initial hand dealt.
func New(cat *catalog.Catalog, bal config.Balance, src rng.Source, biomeID string) (*Game, error) {
	starter, err := cat.StarterDeck(biomeID)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	g := &Game{cat: cat, bal: bal, src: src}
	g.state = State{
		Biome: biomeID,
		Turn:  1,
		Phase: PhaseIdle,
		Bars: resource.Bars{
			Environment: bal.InitialEnvironment,
			Economy:     bal.InitialEconomy,
			Society:     bal.InitialSociety,
		},
		Account: resource.Account{
			Coins: bal.InitialCoins,
			Level: resource.LevelFor(0, bal.XPThresholds),
		},
		Deck:           deck.New(starter, bal.DrawCount, src),
		PlayedThisTurn: []string{},
		History:        []LogEntry{},
	}
	return g, nil
}

// Restore rebinds a previously captured snapshot to a catalog, balance and
// random source, resuming the playthrough where it left off.
func Restore(cat *catalog.Catalog, bal config.Balance, src rng.Source, state State) *Game {
	return &Game{cat: cat, bal: bal, src: src, state: state}
}

// Snapshot returns a copy of the current state with all derived fields
// recomputed. The copy shares no mutable slices with the engine.
func (g *Game) Snapshot() State {
	s := g.state
	s.PlayedThisTurn = append([]string{}, g.state.PlayedThisTurn...)
	s.History = append([]LogEntry{}, g.state.History...)
	s.RewardOffer = append([]catalog.Card{}, g.state.RewardOffer...)

	s.Equilibrium = resource.Equilibrium(s.Bars, g.bal)
	s.Visitors = resource.Visitors(s.Equilibrium, g.bal)
	s.GameOver = s.Phase == PhaseGameOver
	s.Victory = s.Phase == PhaseVictory
	s.DominantStyle = s.Profile.Dominant()
	return s
}

func (g *Game) log(kind, ref, note string) {
	g.state.History = append(g.state.History, LogEntry{
		Turn: g.state.Turn,
		Kind: kind,
		Ref:  ref,
		Note: note,
	})
}

// applyChoiceEffect routes one effect vector into bars, coins and
// experience.
func (g *Game) applyEffect(e catalog.Effect) {
	g.state.Bars = resource.ApplyEffect(g.state.Bars, e, g.bal)
	g.state.Account = g.state.Account.AddCoins(e.Coins)
	g.state.Account = g.state.Account.GrantXP(e.XP, g.bal.XPThresholds)
}

// PlayCard spends and applies the card at the given hand index. It reports
// whether the play happened; rejected plays (wrong phase, bad index, play
// limit reached, insufficient coins) leave the state untouched.
func (g *Game) PlayCard(handIndex int) bool {
	st := &g.state
	if st.Phase != PhaseIdle {
		return false
	}
	if handIndex < 0 || handIndex >= len(st.Deck.Hand) {
		return false
	}
	if st.PlaysThisTurn >= g.bal.MaxPlaysPerTurn {
		return false
	}
	card := st.Deck.Hand[handIndex]
	if card.Cost > st.Account.Coins {
		return false
	}

	st.Bars = resource.ApplyEffect(st.Bars, card.Effect, g.bal)
	st.Account = st.Account.AddCoins(-card.Cost)
	st.Account = st.Account.AddCoins(card.Effect.Coins)

	eq := resource.Equilibrium(st.Bars, g.bal)
	xp := int(math.Round(eq / 10))
	if xp < g.bal.PlayXPFloor {
		xp = g.bal.PlayXPFloor
	}
	st.Account = st.Account.GrantXP(xp+card.Effect.XP, g.bal.XPThresholds)

	st.Deck, _ = st.Deck.Play(handIndex)
	st.PlaysThisTurn++
	st.PlayedThisTurn = append(st.PlayedThisTurn, card.ID)
	st.Profile = st.Profile.CardPlayed(card, g.bal)
	g.log(LogCardPlayed, card.ID, "")
	return true
}

// DiscardCard throws away the card at the given hand index for a small coin
// rebate. Discards do not count against the play limit.
func (g *Game) DiscardCard(handIndex int) bool {
	st := &g.state
	if st.Phase != PhaseIdle {
		return false
	}
	if handIndex < 0 || handIndex >= len(st.Deck.Hand) {
		return false
	}
	card := st.Deck.Hand[handIndex]
	st.Deck, _ = st.Deck.Discard(handIndex)
	st.Account = st.Account.AddCoins(g.bal.DiscardRebate)
	g.log(LogCardDiscarded, card.ID, "")
	return true
}

// EndTurn advances the simulation one full turn: decay, income, threat
// check, hand redraw, termination evaluation and interaction scheduling,
// in that order. Valid only while idle.
func (g *Game) EndTurn() bool {
	st := &g.state
	if st.Phase != PhaseIdle {
		return false
	}

	// 1. Decay, with the overdevelopment coupling re-applied.
	st.Bars = resource.ApplyEffect(st.Bars, catalog.Effect{
		Environment: -g.bal.DecayEnvironment,
		Economy:     -g.bal.DecayEconomy,
		Society:     -g.bal.DecaySociety,
	}, g.bal)

	// 2. Income from current popularity.
	eq := resource.Equilibrium(st.Bars, g.bal)
	visitors := resource.Visitors(eq, g.bal)
	income := int(math.Round(float64(visitors)/float64(g.bal.IncomeVisitorDivisor))) + g.bal.IncomeBase
	st.Account = st.Account.AddCoins(income)

	// 3. Threats in catalog order; the first eligible one fires, alone.
	for _, th := range g.cat.Threats {
		if st.Bars.Get(th.Pillar) <= th.Threshold {
			g.applyEffect(th.Effect)
			st.DisasterCount++
			g.log(LogDisaster, th.ID, "")
			break
		}
	}

	// 4. Redraw the hand and reset the per-turn counters.
	st.Deck = st.Deck.DrawForTurn(g.bal.DrawCount, g.src)
	st.PlaysThisTurn = 0
	st.PlayedThisTurn = []string{}
	g.log(LogTurnEnded, "", "")
	st.Turn++

	// 5. Termination.
	eq = resource.Equilibrium(st.Bars, g.bal)
	visitors = resource.Visitors(eq, g.bal)
	if eq <= g.bal.GameOverEquilibrium {
		st.Phase = PhaseGameOver
		st.EndReason = EndReasonCollapse
		return true
	}
	if st.DisasterCount >= g.bal.MaxDisasters {
		st.Phase = PhaseGameOver
		st.EndReason = EndReasonOverrun
		return true
	}
	if st.Account.Level >= g.bal.VictoryLevel &&
		eq >= g.bal.VictoryEquilibrium &&
		st.Bars.Environment >= g.bal.VictoryPillarFloor &&
		st.Bars.Economy >= g.bal.VictoryPillarFloor &&
		st.Bars.Society >= g.bal.VictoryPillarFloor &&
		visitors >= g.bal.VictoryVisitors {
		st.Phase = PhaseVictory
		st.EndReason = EndReasonVictory
		return true
	}

	// 6. Maybe schedule the next interaction.
	g.scheduleInteraction()
	return true
}

func (g *Game) scheduleInteraction() {
	st := &g.state
	if st.Turn%2 != 0 && st.Turn%3 != 0 {
		return
	}
	if g.src.Float64() < g.bal.CouncilChance {
		if len(g.cat.Councils) == 0 {
			return
		}
		co := g.cat.Councils[g.src.Intn(len(g.cat.Councils))]
		st.PendingCouncil = co.ID
		st.Phase = PhaseAwaitingCouncil
		return
	}

	eligible := make([]catalog.Event, 0, len(g.cat.Events))
	for _, ev := range g.cat.Events {
		if ev.EligibleFor(st.Bars.Get) {
			eligible = append(eligible, ev)
		}
	}
	if len(eligible) == 0 {
		return
	}
	ev := eligible[g.src.Intn(len(eligible))]
	st.PendingEvent = ev.ID
	st.Phase = PhaseAwaitingEvent
}
