package game

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"duelmind/internal/catalog"
	"duelmind/internal/log"
)

// testCatalog builds a small fixed catalog. Derived stars, for reference:
//
//	Wolf          Uranus/Saturn     Golem        Uranus/Mars
//	Dragonling    Luna/Venus        Sun Knight   Sol/Mercury
//	Solar Paladin Sol/Mercury       Ogre         Luna/Venus
//	Lizard        Uranus/Neptune    Sea Wisp     Neptune/Luna
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	monsters := []catalog.MonsterRecord{
		{ID: 1, Name: "Wolf", Type: "Beast", ATK: 1200, DEF: 800, Attribute: "Earth", Level: 3},
		{ID: 2, Name: "Golem", Type: "Rock", ATK: 1300, DEF: 2000, Attribute: "Earth", Level: 3},
		{ID: 3, Name: "Dragonling", Type: "Dragon", ATK: 2000, DEF: 1500, Attribute: "Dark", Level: 5},
		{ID: 4, Name: "Sun Knight", Type: "Warrior", ATK: 1400, DEF: 1200, Attribute: "Light", Level: 4},
		{ID: 5, Name: "Solar Paladin", Type: "Warrior", ATK: 2000, DEF: 1500, Attribute: "Light", Level: 6},
		{ID: 6, Name: "Ogre", Type: "Fiend", ATK: 2500, DEF: 1200, Attribute: "Dark", Level: 6},
		{ID: 7, Name: "Lizard", Type: "Reptile", ATK: 1500, DEF: 800, Attribute: "Earth", Level: 4},
		{ID: 8, Name: "Sea Wisp", Type: "Aqua", ATK: 800, DEF: 2000, Attribute: "Water", Level: 3},
	}
	fusions := []catalog.FusionRecord{
		{Material1: "Wolf", Material2: "Dragonling", Result: "Fanged Wyrm",
			ResultATK: 2400, ResultDEF: 1800, ResultAttribute: "Dark", ResultType: "Dragon"},
		{Material1: "Wolf", Material2: "Golem", Result: "Stone Beast",
			ResultATK: 1800, ResultDEF: 2100, ResultAttribute: "Earth", ResultType: "Rock"},
	}
	cat, err := catalog.Load(monsters, fusions)
	require.NoError(t, err)
	return cat
}

// newTestState builds a bare main-phase state with empty zones.
func newTestState(cat *catalog.Catalog) *GameState {
	return &GameState{
		Players: [2]*Player{
			{LifePoints: StartingLifePoints},
			{LifePoints: StartingLifePoints},
		},
		Turn:       1,
		TurnPlayer: 0,
		Phase:      PhaseMain,
		Winner:     -1,
		Catalog:    cat,
	}
}

// instanceOf makes a fresh in-game instance of a named catalog card.
func instanceOf(t *testing.T, cat *catalog.Catalog, name string) *CardInstance {
	t.Helper()
	card, ok := cat.CardByName(name)
	require.True(t, ok, "card %q not in test catalog", name)
	return NewCardInstance(card)
}

// cardsOf resolves names into catalog cards, for deck construction.
func cardsOf(t *testing.T, cat *catalog.Catalog, names ...string) []*catalog.Card {
	t.Helper()
	out := make([]*catalog.Card, len(names))
	for i, name := range names {
		card, ok := cat.CardByName(name)
		require.True(t, ok, "card %q not in test catalog", name)
		out[i] = card
	}
	return out
}

// scriptedController plays a fixed action sequence, then passes forever.
type scriptedController struct {
	script []Action
	next   int
}

func (c *scriptedController) ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error) {
	if c.next < len(c.script) {
		a := c.script[c.next]
		c.next++
		return a, nil
	}
	return PassAction(), nil
}

func (c *scriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
