package ai

import (
	"testing"

	"github.com/stretchr/testify/require"

	"duelmind/internal/catalog"
	"duelmind/internal/game"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	monsters := []catalog.MonsterRecord{
		{ID: 1, Name: "Wolf", Type: "Beast", ATK: 1200, DEF: 800, Attribute: "Earth", Level: 3},
		{ID: 2, Name: "Golem", Type: "Rock", ATK: 1300, DEF: 2000, Attribute: "Earth", Level: 3},
		{ID: 3, Name: "Dragonling", Type: "Dragon", ATK: 2000, DEF: 1500, Attribute: "Dark", Level: 5},
		{ID: 4, Name: "Sun Knight", Type: "Warrior", ATK: 1400, DEF: 1200, Attribute: "Light", Level: 4},
		{ID: 5, Name: "Ogre", Type: "Fiend", ATK: 2500, DEF: 1200, Attribute: "Dark", Level: 6},
		{ID: 6, Name: "Sea Wisp", Type: "Aqua", ATK: 800, DEF: 2000, Attribute: "Water", Level: 3},
	}
	fusions := []catalog.FusionRecord{
		{Material1: "Wolf", Material2: "Dragonling", Result: "Fanged Wyrm",
			ResultATK: 2400, ResultDEF: 1800, ResultAttribute: "Dark", ResultType: "Dragon"},
	}
	cat, err := catalog.Load(monsters, fusions)
	require.NoError(t, err)
	return cat
}

// newAIState builds a bare main-phase state on player 0's turn.
func newAIState(cat *catalog.Catalog) *game.GameState {
	return &game.GameState{
		Players: [2]*game.Player{
			{LifePoints: game.StartingLifePoints},
			{LifePoints: game.StartingLifePoints},
		},
		Turn:       1,
		TurnPlayer: 0,
		Phase:      game.PhaseMain,
		Winner:     -1,
		Catalog:    cat,
	}
}

func instanceOf(t *testing.T, cat *catalog.Catalog, name string) *game.CardInstance {
	t.Helper()
	card, ok := cat.CardByName(name)
	require.True(t, ok, "card %q not in test catalog", name)
	return game.NewCardInstance(card)
}

func handOf(t *testing.T, cat *catalog.Catalog, names ...string) []*game.CardInstance {
	t.Helper()
	out := make([]*game.CardInstance, len(names))
	for i, name := range names {
		out[i] = instanceOf(t, cat, name)
	}
	return out
}
