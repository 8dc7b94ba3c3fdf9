package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/resource"
	"github.com/pontesfelipe/sistur-sub000/internal/rng"
)

// newTestGame starts a rainforest game over the built-in catalog. With a
// Script source the shuffle is a no-op, so the opening hand is the starter
// list head: tree_planting x2, native_garden, trail_restoration,
// souvenir_stand.
func newTestGame(t *testing.T, bal config.Balance, src rng.Source) *Game {
	t.Helper()
	g, err := New(catalog.Default(), bal, src, "rainforest")
	require.NoError(t, err)
	return g
}

func handIDs(s State) []string {
	out := make([]string, 0, len(s.Deck.Hand))
	for _, c := range s.Deck.Hand {
		out = append(out, c.ID)
	}
	return out
}

func TestNew_InitialState(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	s := g.Snapshot()

	assert.Equal(t, 1, s.Turn)
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, resource.Bars{Environment: 50, Economy: 50, Society: 50}, s.Bars)
	assert.Equal(t, 10, s.Account.Coins)
	assert.Equal(t, 1, s.Account.Level)
	assert.Len(t, s.Deck.Hand, 5)
	assert.Equal(t, 12, s.Deck.Size())
	assert.InDelta(t, 50.0, s.Equilibrium, 1e-9)
	assert.Equal(t, 75, s.Visitors)
	assert.False(t, s.GameOver)
	assert.False(t, s.Victory)
}

func TestNew_UnknownBiome(t *testing.T) {
	_, err := New(catalog.Default(), config.Default(), &rng.Script{}, "tundra")
	assert.ErrorIs(t, err, catalog.ErrUnknownBiome)
}

func TestPlayCard_AppliesCostAndEffect(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})

	// tree_planting: cost 2, environment +8, economy -1.
	ok := g.PlayCard(0)
	require.True(t, ok)

	s := g.Snapshot()
	assert.Equal(t, resource.Bars{Environment: 58, Economy: 49, Society: 50}, s.Bars)
	assert.Equal(t, 8, s.Account.Coins)
	// XP from play: round(equilibrium/10) with a floor of 5.
	assert.Equal(t, 5, s.Account.XP)
	assert.Equal(t, 1, s.PlaysThisTurn)
	assert.Equal(t, []string{"tree_planting"}, s.PlayedThisTurn)
	assert.Len(t, s.Deck.Hand, 4)
	assert.Len(t, s.Deck.DiscardPile, 1)
	require.Len(t, s.History, 1)
	assert.Equal(t, LogCardPlayed, s.History[0].Kind)
	assert.Equal(t, "tree_planting", s.History[0].Ref)
}

func TestPlayCard_XPScalesWithEquilibrium(t *testing.T) {
	bal := config.Default()
	bal.InitialEnvironment = 100
	bal.InitialEconomy = 100
	bal.InitialSociety = 100
	g := newTestGame(t, bal, &rng.Script{})

	// tree_planting: environment clamps at 100, economy drops to 99.
	// Equilibrium 99.7 grants round(9.97) = 10 XP, above the floor.
	require.True(t, g.PlayCard(0))
	assert.Equal(t, 10, g.Snapshot().Account.XP)
}

func TestPlayCard_InsufficientCoins(t *testing.T) {
	bal := config.Default()
	bal.InitialCoins = 0
	g := newTestGame(t, bal, &rng.Script{})
	before := g.Snapshot()

	assert.False(t, g.PlayCard(0))
	assert.Equal(t, before, g.Snapshot())
}

func TestPlayCard_MaxPlaysPerTurn(t *testing.T) {
	bal := config.Default()
	bal.InitialCoins = 50
	g := newTestGame(t, bal, &rng.Script{})

	require.True(t, g.PlayCard(0))
	require.True(t, g.PlayCard(0))
	require.True(t, g.PlayCard(0))
	assert.False(t, g.PlayCard(0))
	assert.Equal(t, 3, g.Snapshot().PlaysThisTurn)
}

func TestPlayCard_BadIndex(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	before := g.Snapshot()

	assert.False(t, g.PlayCard(-1))
	assert.False(t, g.PlayCard(5))
	assert.Equal(t, before, g.Snapshot())
}

func TestPlayCard_OnlyWhileIdle(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	g.state.Phase = PhaseAwaitingEvent

	assert.False(t, g.PlayCard(0))
	assert.False(t, g.DiscardCard(0))
	assert.False(t, g.EndTurn())
}

func TestDiscardCard_RebateWithoutPlayCount(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})

	require.True(t, g.DiscardCard(0))

	s := g.Snapshot()
	assert.Equal(t, 11, s.Account.Coins)
	assert.Zero(t, s.PlaysThisTurn)
	assert.Len(t, s.Deck.Hand, 4)
	assert.Len(t, s.Deck.DiscardPile, 1)
	require.Len(t, s.History, 1)
	assert.Equal(t, LogCardDiscarded, s.History[0].Kind)
}

func TestEndTurn_DecayIncomeRedrawAndScheduling(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})

	require.True(t, g.EndTurn())
	s := g.Snapshot()

	// Decay 4/2/2 off the 50s.
	assert.Equal(t, resource.Bars{Environment: 46, Economy: 48, Society: 48}, s.Bars)
	// Equilibrium 47.2 -> 71 visitors -> income round(7.1)+5 = 12.
	assert.Equal(t, 22, s.Account.Coins)
	assert.Equal(t, 2, s.Turn)
	assert.Zero(t, s.PlaysThisTurn)
	assert.Equal(t, []string{"guided_tours", "food_market", "school_visits", "community_fair", "artisan_workshop"}, handIDs(s))
	assert.Zero(t, s.DisasterCount)

	// Turn 2 schedules; the scripted 0.0 roll lands below the council
	// chance and picks the first council.
	assert.Equal(t, PhaseAwaitingCouncil, s.Phase)
	assert.Equal(t, "budget_review", s.PendingCouncil)
}

func TestEndTurn_EventBranch(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{Values: []float64{0.9}})

	require.True(t, g.EndTurn())
	s := g.Snapshot()

	// 0.9 misses the council chance; all six events are eligible at
	// 46/48/48 and the repeated 0.9 roll picks the last.
	assert.Equal(t, PhaseAwaitingEvent, s.Phase)
	assert.Equal(t, "grant_opportunity", s.PendingEvent)
}

func TestEndTurn_NoInteractionOffSchedule(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	snap := g.Snapshot()
	snap.Turn = 4
	g = Restore(catalog.Default(), config.Default(), &rng.Script{}, snap)

	require.True(t, g.EndTurn())
	s := g.Snapshot()
	assert.Equal(t, 5, s.Turn)
	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Empty(t, s.PendingEvent)
	assert.Empty(t, s.PendingCouncil)
}

func TestEndTurn_FirstEligibleThreatFiresAlone(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	snap := g.Snapshot()
	snap.Turn = 4 // avoid scheduling on the turn that follows
	snap.Bars = resource.Bars{Environment: 14, Economy: 14, Society: 80}
	g = Restore(catalog.Default(), config.Default(), &rng.Script{}, snap)

	require.True(t, g.EndTurn())
	s := g.Snapshot()

	// Post-decay 10/12/78; both environment and economy sit at or below
	// their collapse thresholds, but only the first threat fires.
	assert.Equal(t, 1, s.DisasterCount)
	assert.Equal(t, resource.Bars{Environment: 10, Economy: 4, Society: 74}, s.Bars)

	var disasters []LogEntry
	for _, e := range s.History {
		if e.Kind == LogDisaster {
			disasters = append(disasters, e)
		}
	}
	require.Len(t, disasters, 1)
	assert.Equal(t, "ecosystem_collapse", disasters[0].Ref)
}

func TestEndTurn_GameOverOnCollapse(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	snap := g.Snapshot()
	snap.Bars = resource.Bars{Environment: 10, Economy: 5, Society: 5}
	g = Restore(catalog.Default(), config.Default(), &rng.Script{}, snap)

	require.True(t, g.EndTurn())
	s := g.Snapshot()

	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, EndReasonCollapse, s.EndReason)
	assert.True(t, s.GameOver)

	// Terminal states accept no further commands.
	assert.False(t, g.PlayCard(0))
	assert.False(t, g.EndTurn())
}

func TestEndTurn_GameOverOnDisasterOverrun(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	snap := g.Snapshot()
	snap.Bars = resource.Bars{Environment: 14, Economy: 50, Society: 60}
	snap.DisasterCount = 4
	g = Restore(catalog.Default(), config.Default(), &rng.Script{}, snap)

	require.True(t, g.EndTurn())
	s := g.Snapshot()

	assert.Equal(t, 5, s.DisasterCount)
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, EndReasonOverrun, s.EndReason)
}

func TestEndTurn_Victory(t *testing.T) {
	bal := config.Default()
	bal.VisitorRate = 3.0

	g := newTestGame(t, bal, &rng.Script{})
	snap := g.Snapshot()
	snap.Bars = resource.Bars{Environment: 80, Economy: 70, Society: 75}
	snap.Account = resource.Account{Coins: 50, XP: 700, Level: 5}
	g = Restore(catalog.Default(), bal, &rng.Script{}, snap)

	require.True(t, g.EndTurn())
	s := g.Snapshot()

	// Post-decay 76/68/73: equilibrium 72.7, visitors 218, all pillars
	// over the floor, level 5.
	assert.Equal(t, PhaseVictory, s.Phase)
	assert.Equal(t, EndReasonVictory, s.EndReason)
	assert.True(t, s.Victory)
}

func TestEndTurn_VictoryNeedsEveryCondition(t *testing.T) {
	bal := config.Default()
	bal.VisitorRate = 3.0

	cases := []struct {
		name  string
		tweak func(*State)
	}{
		{"level below target", func(s *State) { s.Account = resource.Account{Coins: 50, XP: 600, Level: 4} }},
		{"pillar below floor", func(s *State) { s.Bars.Economy = 50 }}, // decays to 48
		{"equilibrium below target", func(s *State) {
			s.Bars = resource.Bars{Environment: 72, Economy: 60, Society: 60}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, bal, &rng.Script{})
			snap := g.Snapshot()
			snap.Turn = 4
			snap.Bars = resource.Bars{Environment: 80, Economy: 70, Society: 75}
			snap.Account = resource.Account{Coins: 50, XP: 700, Level: 5}
			tc.tweak(&snap)
			g = Restore(catalog.Default(), bal, &rng.Script{}, snap)

			require.True(t, g.EndTurn())
			assert.NotEqual(t, PhaseVictory, g.Snapshot().Phase)
		})
	}
}

func TestSnapshot_SharesNoMutableState(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	require.True(t, g.PlayCard(0))

	s := g.Snapshot()
	s.PlayedThisTurn[0] = "tampered"
	s.History[0].Ref = "tampered"

	fresh := g.Snapshot()
	assert.Equal(t, "tree_planting", fresh.PlayedThisTurn[0])
	assert.Equal(t, "tree_planting", fresh.History[0].Ref)
}

func TestRestore_ResumesSnapshot(t *testing.T) {
	g := newTestGame(t, config.Default(), &rng.Script{})
	require.True(t, g.PlayCard(0))
	require.True(t, g.EndTurn())
	snap := g.Snapshot()

	restored := Restore(catalog.Default(), config.Default(), &rng.Script{}, snap)
	assert.Equal(t, snap, restored.Snapshot())
}

func TestFullPlaythrough_PileConservation(t *testing.T) {
	src := rng.NewSeeded(99)
	g, err := New(catalog.Default(), config.Default(), src, "wetlands")
	require.NoError(t, err)

	rewards := 0
	for i := 0; i < 40; i++ {
		s := g.Snapshot()
		switch s.Phase {
		case PhaseIdle:
			if len(s.Deck.Hand) > 0 {
				g.PlayCard(0)
			}
			g.EndTurn()
		case PhaseAwaitingEvent:
			_, err := g.ResolveEvent(0)
			require.NoError(t, err)
		case PhaseAwaitingCouncil:
			_, err := g.ResolveCouncil(0)
			require.NoError(t, err)
		case PhaseAwaitingReward:
			if g.PickReward(0) {
				rewards++
			}
		case PhaseGameOver, PhaseVictory:
			return
		}
		require.Equal(t, 12+rewards, g.Snapshot().Deck.Size(),
			"every owned card stays in exactly one pile")
	}
}
