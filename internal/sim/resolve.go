package sim

import (
	"fmt"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/reward"
)

// ResolveEvent applies the chosen option of the pending event. A risky
// choice flips a fair coin; on failure the whole effect vector is scaled
// down, each component rounded independently. Resolution always produces a
// reward offer when candidates exist. The bool reports whether the choice
// was applied; the error is reserved for broken catalog references.
func (g *Game) ResolveEvent(choiceIndex int) (bool, error) {
	st := &g.state
	if st.Phase != PhaseAwaitingEvent {
		return false, nil
	}
	ev, err := g.cat.Event(st.PendingEvent)
	if err != nil {
		return false, fmt.Errorf("resolve event: %w", err)
	}
	if choiceIndex < 0 || choiceIndex >= len(ev.Choices) {
		return false, nil
	}

	choice := ev.Choices[choiceIndex]
	effect := choice.Effect
	note := string(choice.Kind)
	if choice.Kind == catalog.KindRisky && g.src.Float64() < g.bal.RiskFailureChance {
		effect = effect.Scale(g.bal.RiskFailureScale)
		note = "setback"
	}
	g.applyEffect(effect)
	st.Profile = st.Profile.ChoiceMade(choice.Kind, g.bal)
	st.PendingEvent = ""
	g.log(LogEventResolved, ev.ID, note)

	g.offerReward()
	return true, nil
}

// ResolveCouncil applies the chosen option of the pending council decision.
// Council options are deterministic; there is no risk branch.
func (g *Game) ResolveCouncil(optionIndex int) (bool, error) {
	st := &g.state
	if st.Phase != PhaseAwaitingCouncil {
		return false, nil
	}
	co, err := g.cat.Council(st.PendingCouncil)
	if err != nil {
		return false, fmt.Errorf("resolve council: %w", err)
	}
	if optionIndex < 0 || optionIndex >= len(co.Options) {
		return false, nil
	}

	option := co.Options[optionIndex]
	g.applyEffect(option.Effect)
	st.Profile = st.Profile.ChoiceMade(option.Kind, g.bal)
	st.PendingCouncil = ""
	g.log(LogCouncilResolved, co.ID, string(option.Kind))

	g.offerReward()
	return true, nil
}

func (g *Game) offerReward() {
	st := &g.state
	pool := reward.Pool(g.cat, st.Biome, st.Account.Level)
	offer := reward.Sample(pool, g.bal.RewardOfferSize, g.bal.RarityWeights, g.src)
	if len(offer) == 0 {
		st.Phase = PhaseIdle
		return
	}
	st.RewardOffer = offer
	st.Phase = PhaseAwaitingReward
}

// PickReward adds the chosen offer card to the discard pile, where it
// enters circulation on the next reshuffle.
func (g *Game) PickReward(index int) bool {
	st := &g.state
	if st.Phase != PhaseAwaitingReward {
		return false
	}
	if index < 0 || index >= len(st.RewardOffer) {
		return false
	}
	card := st.RewardOffer[index]
	st.Deck = st.Deck.Add(card)
	st.RewardOffer = nil
	st.Phase = PhaseIdle
	g.log(LogRewardPicked, card.ID, "")
	return true
}

// SkipReward declines the pending offer.
func (g *Game) SkipReward() bool {
	st := &g.state
	if st.Phase != PhaseAwaitingReward {
		return false
	}
	st.RewardOffer = nil
	st.Phase = PhaseIdle
	g.log(LogRewardSkipped, "", "")
	return true
}

// SetBiome switches the park's biome, which changes reward filtering and
// the starter deck of the next reset. Unknown biomes are configuration
// errors.
func (g *Game) SetBiome(biomeID string) error {
	if _, err := g.cat.Biome(biomeID); err != nil {
		return fmt.Errorf("set biome: %w", err)
	}
	g.state.Biome = biomeID
	return nil
}

// Reset discards the playthrough and starts over. An empty biome keeps the
// current one.
func (g *Game) Reset(biomeID string) error {
	if biomeID == "" {
		biomeID = g.state.Biome
	}
	fresh, err := New(g.cat, g.bal, g.src, biomeID)
	if err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	g.state = fresh.state
	return nil
}
