// Package deck owns the four-pile card lifecycle: draw pile, hand, discard
// pile and exhaust pile. Every card instance the player owns is in exactly
// one pile at all times; operations relocate cards, never duplicate or drop
// them. All operations are total over well-formed input: a malformed hand
// index returns the state unchanged rather than failing, since the caller
// is player input that must never crash a turn.
package deck

import (
	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/rng"
)

// State holds the four ordered piles.
type State struct {
	DrawPile    []catalog.Card `json:"draw_pile"`
	Hand        []catalog.Card `json:"hand"`
	DiscardPile []catalog.Card `json:"discard_pile"`
	ExhaustPile []catalog.Card `json:"exhaust_pile"`
}

func clone(cards []catalog.Card) []catalog.Card {
	out := make([]catalog.Card, len(cards))
	copy(out, cards)
	return out
}

// New shuffles the full card list and deals the initial hand: the first
// drawCount cards become the hand, the remainder the draw pile. A draw
// count larger than the deck deals everything.
func New(cards []catalog.Card, drawCount int, src rng.Source) State {
	shuffled := clone(cards)
	src.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if drawCount > len(shuffled) {
		drawCount = len(shuffled)
	}
	return State{
		Hand:        clone(shuffled[:drawCount]),
		DrawPile:    clone(shuffled[drawCount:]),
		DiscardPile: []catalog.Card{},
		ExhaustPile: []catalog.Card{},
	}
}

func removeAt(hand []catalog.Card, i int) ([]catalog.Card, catalog.Card) {
	card := hand[i]
	out := make([]catalog.Card, 0, len(hand)-1)
	out = append(out, hand[:i]...)
	out = append(out, hand[i+1:]...)
	return out, card
}

// Play removes the card at handIndex and routes it to the exhaust pile if
// its exhaust flag is set, otherwise to the discard pile. Out-of-range
// indices are a no-op.
func (s State) Play(handIndex int) (State, bool) {
	if handIndex < 0 || handIndex >= len(s.Hand) {
		return s, false
	}
	hand, card := removeAt(s.Hand, handIndex)
	s.Hand = hand
	if card.Exhaust {
		s.ExhaustPile = append(clone(s.ExhaustPile), card)
	} else {
		s.DiscardPile = append(clone(s.DiscardPile), card)
	}
	return s, true
}

// Discard removes the card at handIndex and always routes it to the discard
// pile. Any coin rebate for discarding is policy owned by the turn engine,
// not the deck.
func (s State) Discard(handIndex int) (State, bool) {
	if handIndex < 0 || handIndex >= len(s.Hand) {
		return s, false
	}
	hand, card := removeAt(s.Hand, handIndex)
	s.Hand = hand
	s.DiscardPile = append(clone(s.DiscardPile), card)
	return s, true
}

// DrawForTurn replaces the hand for a new turn. Leftover hand cards are
// moved to the discard pile first, so no card ever leaves circulation. If
// the draw pile cannot satisfy drawCount, the discard pile is shuffled back
// into the draw pile atomically with the draw: the draw is never left short
// when a reshuffle would satisfy it. If fewer cards remain in total, all of
// them are drawn.
func (s State) DrawForTurn(drawCount int, src rng.Source) State {
	s.DiscardPile = append(clone(s.DiscardPile), s.Hand...)
	s.Hand = []catalog.Card{}

	if len(s.DrawPile) < drawCount {
		pool := append(clone(s.DrawPile), s.DiscardPile...)
		src.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		s.DrawPile = pool
		s.DiscardPile = []catalog.Card{}
	}

	n := drawCount
	if n > len(s.DrawPile) {
		n = len(s.DrawPile)
	}
	s.Hand = clone(s.DrawPile[:n])
	s.DrawPile = clone(s.DrawPile[n:])
	return s
}

// Add appends a card to the discard pile, so it enters circulation on the
// next reshuffle rather than the current hand.
func (s State) Add(card catalog.Card) State {
	s.DiscardPile = append(clone(s.DiscardPile), card)
	return s
}

// Size is the total number of cards across all four piles.
func (s State) Size() int {
	return len(s.DrawPile) + len(s.Hand) + len(s.DiscardPile) + len(s.ExhaustPile)
}
