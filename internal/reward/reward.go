// Package reward builds weighted-random card offers from the catalog.
package reward

import (
	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
	"github.com/pontesfelipe/sistur-sub000/internal/rng"
)

// Weight returns the selection weight for a rarity tier.
func Weight(r catalog.Rarity, w config.RarityWeights) int {
	switch r {
	case catalog.RarityCommon:
		return w.Common
	case catalog.RarityUncommon:
		return w.Uncommon
	case catalog.RarityRare:
		return w.Rare
	case catalog.RarityLegendary:
		return w.Legendary
	}
	return 0
}

// Pool filters the catalog down to reward candidates: cards whose biome
// restriction (if any) matches the current biome and whose minimum level
// (if any) is at or below the current level.
func Pool(cat *catalog.Catalog, biomeID string, level int) []catalog.Card {
	out := make([]catalog.Card, 0, len(cat.Cards))
	for _, card := range cat.Cards {
		if card.Biome != "" && card.Biome != biomeID {
			continue
		}
		if card.MinLevel > level {
			continue
		}
		out = append(out, card)
	}
	return out
}

// Sample picks up to n cards from the pool by weighted sampling without
// replacement, where a card's weight is an inverse function of its rarity
// tier. A chosen identifier leaves the candidate set, so an offer never
// repeats a card; the offer comes up short only when the pool's distinct
// identifiers run out.
func Sample(pool []catalog.Card, n int, weights config.RarityWeights, src rng.Source) []catalog.Card {
	chosen := map[string]bool{}
	out := make([]catalog.Card, 0, n)
	for len(out) < n {
		total := 0
		for _, card := range pool {
			if chosen[card.ID] {
				continue
			}
			total += Weight(card.Rarity, weights)
		}
		if total <= 0 {
			break
		}
		roll := src.Intn(total)
		current := 0
		for _, card := range pool {
			if chosen[card.ID] {
				continue
			}
			current += Weight(card.Rarity, weights)
			if roll < current {
				chosen[card.ID] = true
				out = append(out, card)
				break
			}
		}
	}
	return out
}
