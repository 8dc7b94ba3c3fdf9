// Package catalog holds the static content the simulation consumes: cards,
// events, council decisions, threats and biomes. Entries are immutable and
// keyed by stable string identifiers. The engine treats a broken reference
// into the catalog as a configuration error, never as player input.
package catalog

import (
	"errors"
	"fmt"
	"math"
)

// Pillar is one of the three coupled sustainability axes.
type Pillar string

const (
	PillarEnvironment Pillar = "environment"
	PillarEconomy     Pillar = "economy"
	PillarSociety     Pillar = "society"
)

// Rarity orders cards from common to legendary.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

var rarityRank = map[Rarity]int{
	RarityCommon:    0,
	RarityUncommon:  1,
	RarityRare:      2,
	RarityLegendary: 3,
}

// Rank returns the ordinal position of the rarity tier (common first).
func (r Rarity) Rank() int { return rarityRank[r] }

func (r Rarity) valid() bool {
	_, ok := rarityRank[r]
	return ok
}

// Effect is the resource delta a card, choice or threat applies.
type Effect struct {
	Environment int `json:"environment" yaml:"environment"`
	Economy     int `json:"economy" yaml:"economy"`
	Society     int `json:"society" yaml:"society"`
	Coins       int `json:"coins,omitempty" yaml:"coins,omitempty"`
	XP          int `json:"xp,omitempty" yaml:"xp,omitempty"`
}

// Scale multiplies every component by f, rounding each independently.
func (e Effect) Scale(f float64) Effect {
	round := func(v int) int { return int(math.Round(float64(v) * f)) }
	return Effect{
		Environment: round(e.Environment),
		Economy:     round(e.Economy),
		Society:     round(e.Society),
		Coins:       round(e.Coins),
		XP:          round(e.XP),
	}
}

// HasNegative reports whether any component of the effect is below zero.
func (e Effect) HasNegative() bool {
	return e.Environment < 0 || e.Economy < 0 || e.Society < 0 || e.Coins < 0 || e.XP < 0
}

// Card is an immutable playable card definition. Instances are never
// mutated after being dealt, only relocated between deck piles.
type Card struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Cost        int    `json:"cost" yaml:"cost"`
	Category    Pillar `json:"category" yaml:"category"`
	Rarity      Rarity `json:"rarity" yaml:"rarity"`
	Effect      Effect `json:"effect" yaml:"effect"`
	Exhaust     bool   `json:"exhaust,omitempty" yaml:"exhaust,omitempty"`
	Biome       string `json:"biome,omitempty" yaml:"biome,omitempty"`
	MinLevel    int    `json:"min_level,omitempty" yaml:"min_level,omitempty"`
}

// ChoiceKind tags how a choice resolves. Event choices use smart/quick/risky;
// council options use sustainable/neutral/risky. Only risky event choices
// roll for a degraded outcome.
type ChoiceKind string

const (
	KindSmart       ChoiceKind = "smart"
	KindQuick       ChoiceKind = "quick"
	KindRisky       ChoiceKind = "risky"
	KindSustainable ChoiceKind = "sustainable"
	KindNeutral     ChoiceKind = "neutral"
)

// Choice is one selectable option of an event or council decision.
type Choice struct {
	Label  string     `json:"label" yaml:"label"`
	Kind   ChoiceKind `json:"kind" yaml:"kind"`
	Effect Effect     `json:"effect" yaml:"effect"`
}

// Requirement gates event eligibility on a pillar range. Max of zero means
// no upper bound.
type Requirement struct {
	Pillar Pillar `json:"pillar" yaml:"pillar"`
	Min    int    `json:"min,omitempty" yaml:"min,omitempty"`
	Max    int    `json:"max,omitempty" yaml:"max,omitempty"`
}

// Event is a multi-choice interaction whose risky choices may fail.
type Event struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Description string        `json:"description,omitempty" yaml:"description,omitempty"`
	Choices     []Choice      `json:"choices" yaml:"choices"`
	Requires    []Requirement `json:"requires,omitempty" yaml:"requires,omitempty"`
}

// EligibleFor reports whether the event may fire given the current pillar
// values (lookup by pillar name via the get func).
func (e Event) EligibleFor(get func(Pillar) int) bool {
	for _, req := range e.Requires {
		v := get(req.Pillar)
		if v < req.Min {
			return false
		}
		if req.Max > 0 && v > req.Max {
			return false
		}
	}
	return true
}

// Council is a deterministic multi-choice interaction.
type Council struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Options     []Choice `json:"options" yaml:"options"`
}

// Threat fires when its pillar falls to or below the threshold. Threats are
// checked in catalog order and at most one fires per turn.
type Threat struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Pillar      Pillar `json:"pillar" yaml:"pillar"`
	Threshold   int    `json:"threshold" yaml:"threshold"`
	Effect      Effect `json:"effect" yaml:"effect"`
}

// Biome names a park setting and the cards it adds to the starter deck.
type Biome struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	StarterCards []string `json:"starter_cards,omitempty" yaml:"starter_cards,omitempty"`
}

// Catalog is the full immutable content set.
type Catalog struct {
	Cards    []Card    `json:"cards" yaml:"cards"`
	Events   []Event   `json:"events" yaml:"events"`
	Councils []Council `json:"councils" yaml:"councils"`
	Threats  []Threat  `json:"threats" yaml:"threats"`
	Biomes   []Biome   `json:"biomes" yaml:"biomes"`
	// Starter lists the card IDs every new deck begins with, before the
	// biome additions. Duplicates mean multiple copies.
	Starter []string `json:"starter" yaml:"starter"`

	cards    map[string]Card
	events   map[string]Event
	councils map[string]Council
	biomes   map[string]Biome
}

var (
	ErrUnknownCard    = errors.New("unknown card id")
	ErrUnknownEvent   = errors.New("unknown event id")
	ErrUnknownCouncil = errors.New("unknown council id")
	ErrUnknownBiome   = errors.New("unknown biome id")
)

func validPillar(p Pillar) bool {
	switch p {
	case PillarEnvironment, PillarEconomy, PillarSociety:
		return true
	}
	return false
}

// New indexes and validates a catalog. Every broken cross-reference or
// malformed entry is reported as an error: catalog problems are data-contract
// violations, not gameplay situations.
func New(c Catalog) (*Catalog, error) {
	c.cards = make(map[string]Card, len(c.Cards))
	for _, card := range c.Cards {
		if card.ID == "" {
			return nil, fmt.Errorf("catalog: card with empty id (%q)", card.Name)
		}
		if _, dup := c.cards[card.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate card id %q", card.ID)
		}
		if card.Cost < 0 {
			return nil, fmt.Errorf("catalog: card %q has negative cost", card.ID)
		}
		if !validPillar(card.Category) {
			return nil, fmt.Errorf("catalog: card %q has unknown category %q", card.ID, card.Category)
		}
		if !card.Rarity.valid() {
			return nil, fmt.Errorf("catalog: card %q has unknown rarity %q", card.ID, card.Rarity)
		}
		c.cards[card.ID] = card
	}

	c.events = make(map[string]Event, len(c.Events))
	for _, ev := range c.Events {
		if _, dup := c.events[ev.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate event id %q", ev.ID)
		}
		if len(ev.Choices) < 2 || len(ev.Choices) > 3 {
			return nil, fmt.Errorf("catalog: event %q must have 2-3 choices, has %d", ev.ID, len(ev.Choices))
		}
		for _, ch := range ev.Choices {
			switch ch.Kind {
			case KindSmart, KindQuick, KindRisky:
			default:
				return nil, fmt.Errorf("catalog: event %q choice %q has kind %q", ev.ID, ch.Label, ch.Kind)
			}
		}
		for _, req := range ev.Requires {
			if !validPillar(req.Pillar) {
				return nil, fmt.Errorf("catalog: event %q requirement on unknown pillar %q", ev.ID, req.Pillar)
			}
		}
		c.events[ev.ID] = ev
	}

	c.councils = make(map[string]Council, len(c.Councils))
	for _, co := range c.Councils {
		if _, dup := c.councils[co.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate council id %q", co.ID)
		}
		if len(co.Options) < 2 || len(co.Options) > 3 {
			return nil, fmt.Errorf("catalog: council %q must have 2-3 options, has %d", co.ID, len(co.Options))
		}
		for _, op := range co.Options {
			switch op.Kind {
			case KindSustainable, KindNeutral, KindRisky:
			default:
				return nil, fmt.Errorf("catalog: council %q option %q has kind %q", co.ID, op.Label, op.Kind)
			}
		}
		c.councils[co.ID] = co
	}

	seenThreats := map[string]bool{}
	for _, th := range c.Threats {
		if seenThreats[th.ID] {
			return nil, fmt.Errorf("catalog: duplicate threat id %q", th.ID)
		}
		seenThreats[th.ID] = true
		if !validPillar(th.Pillar) {
			return nil, fmt.Errorf("catalog: threat %q on unknown pillar %q", th.ID, th.Pillar)
		}
		if th.Threshold < 0 || th.Threshold > 100 {
			return nil, fmt.Errorf("catalog: threat %q threshold %d out of range", th.ID, th.Threshold)
		}
	}

	c.biomes = make(map[string]Biome, len(c.Biomes))
	for _, b := range c.Biomes {
		if _, dup := c.biomes[b.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate biome id %q", b.ID)
		}
		for _, id := range b.StarterCards {
			if _, ok := c.cards[id]; !ok {
				return nil, fmt.Errorf("catalog: biome %q starter card: %w: %q", b.ID, ErrUnknownCard, id)
			}
		}
		c.biomes[b.ID] = b
	}

	for _, id := range c.Starter {
		if _, ok := c.cards[id]; !ok {
			return nil, fmt.Errorf("catalog: starter deck: %w: %q", ErrUnknownCard, id)
		}
	}

	for _, card := range c.Cards {
		if card.Biome == "" {
			continue
		}
		if _, ok := c.biomes[card.Biome]; !ok {
			return nil, fmt.Errorf("catalog: card %q restricted to %w: %q", card.ID, ErrUnknownBiome, card.Biome)
		}
	}

	return &c, nil
}

// Card resolves a card id.
func (c *Catalog) Card(id string) (Card, error) {
	card, ok := c.cards[id]
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	}
	return card, nil
}

// Event resolves an event id.
func (c *Catalog) Event(id string) (Event, error) {
	ev, ok := c.events[id]
	if !ok {
		return Event{}, fmt.Errorf("%w: %q", ErrUnknownEvent, id)
	}
	return ev, nil
}

// Council resolves a council id.
func (c *Catalog) Council(id string) (Council, error) {
	co, ok := c.councils[id]
	if !ok {
		return Council{}, fmt.Errorf("%w: %q", ErrUnknownCouncil, id)
	}
	return co, nil
}

// Biome resolves a biome id.
func (c *Catalog) Biome(id string) (Biome, error) {
	b, ok := c.biomes[id]
	if !ok {
		return Biome{}, fmt.Errorf("%w: %q", ErrUnknownBiome, id)
	}
	return b, nil
}

// StarterDeck returns the card definitions a fresh deck is built from:
// the base starter list plus the biome additions, in catalog order.
func (c *Catalog) StarterDeck(biomeID string) ([]Card, error) {
	b, err := c.Biome(biomeID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(c.Starter)+len(b.StarterCards))
	ids = append(ids, c.Starter...)
	ids = append(ids, b.StarterCards...)

	deck := make([]Card, 0, len(ids))
	for _, id := range ids {
		card, err := c.Card(id)
		if err != nil {
			return nil, err
		}
		deck = append(deck, card)
	}
	return deck, nil
}
