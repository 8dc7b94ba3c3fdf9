package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pontesfelipe/sistur-sub000/internal/catalog"
	"github.com/pontesfelipe/sistur-sub000/internal/config"
)

func TestCardPlayed_CategoryAxes(t *testing.T) {
	bal := config.Default()

	s := Scores{}.CardPlayed(catalog.Card{Category: catalog.PillarEnvironment, Effect: catalog.Effect{Environment: 5, Economy: -1}}, bal)
	assert.Equal(t, bal.ProfileCategoryPoints, s.Smart)
	assert.Zero(t, s.Balanced)

	s = Scores{}.CardPlayed(catalog.Card{Category: catalog.PillarEconomy, Effect: catalog.Effect{Economy: 5, Environment: -1}}, bal)
	assert.Equal(t, bal.ProfileCategoryPoints, s.Quick)

	s = Scores{}.CardPlayed(catalog.Card{Category: catalog.PillarSociety, Effect: catalog.Effect{Society: 5, Economy: -1}}, bal)
	assert.Equal(t, bal.ProfileCategoryPoints, s.Balanced)
}

func TestCardPlayed_BalancedBonusForCleanEffects(t *testing.T) {
	bal := config.Default()

	// No negative component anywhere earns the bonus on top of the axis.
	s := Scores{}.CardPlayed(catalog.Card{Category: catalog.PillarEnvironment, Effect: catalog.Effect{Environment: 5, Society: 1}}, bal)
	assert.Equal(t, bal.ProfileCategoryPoints, s.Smart)
	assert.Equal(t, bal.ProfileBalancedBonus, s.Balanced)
}

func TestChoiceMade_KindAxes(t *testing.T) {
	bal := config.Default()

	assert.Equal(t, bal.ProfileChoicePoints, Scores{}.ChoiceMade(catalog.KindSmart, bal).Smart)
	assert.Equal(t, bal.ProfileChoicePoints, Scores{}.ChoiceMade(catalog.KindSustainable, bal).Smart)
	assert.Equal(t, bal.ProfileChoicePoints, Scores{}.ChoiceMade(catalog.KindQuick, bal).Quick)
	assert.Equal(t, bal.ProfileChoicePoints, Scores{}.ChoiceMade(catalog.KindRisky, bal).Risky)
	assert.Equal(t, bal.ProfileChoicePoints, Scores{}.ChoiceMade(catalog.KindNeutral, bal).Balanced)
}

func TestDominant_RanksAndBreaksTies(t *testing.T) {
	assert.Equal(t, StyleQuick, Scores{Smart: 2, Quick: 5, Risky: 1}.Dominant())
	assert.Equal(t, StyleRisky, Scores{Risky: 9, Balanced: 3}.Dominant())
	assert.Equal(t, StyleBalanced, Scores{Smart: 2, Balanced: 4}.Dominant())

	// Ties resolve smart > quick > risky > balanced.
	assert.Equal(t, StyleSmart, Scores{Smart: 3, Quick: 3}.Dominant())
	assert.Equal(t, StyleQuick, Scores{Quick: 3, Risky: 3}.Dominant())
	assert.Equal(t, StyleSmart, Scores{}.Dominant())
}
