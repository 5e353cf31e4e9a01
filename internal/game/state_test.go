package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duelmind/internal/catalog"
)

func TestNewDuelState(t *testing.T) {
	cat := testCatalog(t)
	deck := cardsOf(t, cat, "Wolf", "Golem", "Dragonling", "Sun Knight", "Ogre", "Lizard", "Sea Wisp")

	gs := NewDuelState(cat, deck, deck)

	assert.Equal(t, 1, gs.Turn)
	assert.Equal(t, 0, gs.TurnPlayer)
	assert.Equal(t, PhaseMain, gs.Phase)
	assert.False(t, gs.Over)
	assert.Equal(t, -1, gs.Winner)

	for p := 0; p < 2; p++ {
		player := gs.Players[p]
		assert.Equal(t, StartingLifePoints, player.LifePoints)
		assert.Equal(t, InitialHandSize, player.HandCount())
		assert.Equal(t, len(deck)-InitialHandSize, player.DeckCount())
		assert.Nil(t, player.Field)
		assert.Empty(t, player.Graveyard)
	}

	// Opening hands come off the top of the deck in order.
	assert.Equal(t, "Wolf", gs.Players[0].Hand[0].Card.Name)
	assert.Equal(t, "Ogre", gs.Players[0].Hand[4].Card.Name)
	assert.Equal(t, "Lizard", gs.Players[0].Deck[0].Card.Name)
}

func TestCloneIsDeep(t *testing.T) {
	cat := testCatalog(t)
	deck := cardsOf(t, cat, "Wolf", "Golem", "Dragonling", "Sun Knight", "Ogre", "Lizard")
	gs := NewDuelState(cat, deck, deck)
	gs.Players[0].Field = instanceOf(t, cat, "Sea Wisp")
	gs.LastBattle = &BattleReport{AttackerCard: "Sea Wisp"}

	dup := gs.Clone()

	// Mutating the clone leaves the original untouched.
	dup.Players[0].LifePoints = 1
	dup.Players[0].Hand[0].Position = PositionDEF
	dup.Players[0].Field.Star = catalog.StarMars
	dup.Players[1].Deck = dup.Players[1].Deck[1:]
	dup.LastBattle.AttackerCard = "changed"
	dup.TurnPlayer = 1

	assert.Equal(t, StartingLifePoints, gs.Players[0].LifePoints)
	assert.Equal(t, PositionATK, gs.Players[0].Hand[0].Position)
	assert.Equal(t, catalog.StarNeptune, gs.Players[0].Field.Star)
	assert.Equal(t, 1, gs.Players[1].DeckCount())
	assert.Equal(t, "Sea Wisp", gs.LastBattle.AttackerCard)
	assert.Equal(t, 0, gs.TurnPlayer)

	// The immutable catalog is shared, not copied.
	assert.Same(t, gs.Catalog, dup.Catalog)
	assert.Same(t, gs.Players[0].Hand[1].Card, dup.Players[0].Hand[1].Card)
}

func TestDrawCard(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	p := gs.Players[0]
	p.Deck = []*CardInstance{instanceOf(t, cat, "Wolf"), instanceOf(t, cat, "Golem")}

	drawn := gs.drawCard(0)
	require.NotNil(t, drawn)
	assert.Equal(t, "Wolf", drawn.Card.Name)
	assert.Equal(t, 1, p.HandCount())
	assert.Equal(t, 1, p.DeckCount())

	// A full hand skips the draw without penalty.
	for p.HandCount() < MaxHandSize {
		p.Hand = append(p.Hand, instanceOf(t, cat, "Lizard"))
	}
	assert.Nil(t, gs.drawCard(0))
	assert.Equal(t, 1, p.DeckCount())
	assert.False(t, gs.Over)
}

func TestDrawFromEmptyDeckLosesTheDuel(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)

	assert.Nil(t, gs.drawCard(1))
	assert.True(t, gs.Over)
	assert.Equal(t, 0, gs.Winner)
	assert.Contains(t, gs.Result, "decked out")
}

func TestCheckGameOver(t *testing.T) {
	cat := testCatalog(t)

	t.Run("p2 wins", func(t *testing.T) {
		gs := newTestState(cat)
		gs.Players[0].LifePoints = 0
		gs.checkGameOver()
		assert.True(t, gs.Over)
		assert.Equal(t, 1, gs.Winner)
	})

	t.Run("p1 wins", func(t *testing.T) {
		gs := newTestState(cat)
		gs.Players[1].LifePoints = -300
		gs.checkGameOver()
		assert.True(t, gs.Over)
		assert.Equal(t, 0, gs.Winner)
	})

	t.Run("both dead is a draw", func(t *testing.T) {
		gs := newTestState(cat)
		gs.Players[0].LifePoints = 0
		gs.Players[1].LifePoints = 0
		gs.checkGameOver()
		assert.True(t, gs.Over)
		assert.Equal(t, -1, gs.Winner)
	})

	t.Run("live game stays live", func(t *testing.T) {
		gs := newTestState(cat)
		gs.checkGameOver()
		assert.False(t, gs.Over)
	})
}

func TestCardInstance(t *testing.T) {
	cat := testCatalog(t)
	ci := instanceOf(t, cat, "Golem")

	assert.Equal(t, PositionATK, ci.Position)
	assert.Equal(t, catalog.StarUranus, ci.Star)
	assert.Equal(t, 1300, ci.BattleValue())

	ci.Position = PositionDEF
	assert.Equal(t, 2000, ci.BattleValue())

	ci.SelectStar(2)
	assert.Equal(t, catalog.StarMars, ci.Star)
	ci.SelectStar(1)
	assert.Equal(t, catalog.StarUranus, ci.Star)
}
