package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"duelmind/internal/catalog"
)

func TestApplyDoesNotMutateInput(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{instanceOf(t, cat, "Wolf")}
	gs.Players[0].Field = nil

	before := gs.Clone()
	next, err := Apply(gs, PlayAction(0, PositionATK, 1))
	require.NoError(t, err)

	assert.Equal(t, before, gs, "input state must stay untouched")
	assert.NotSame(t, gs, next)
	assert.Equal(t, 1, gs.Players[0].HandCount())
	assert.Equal(t, 0, next.Players[0].HandCount())
}

func TestApplyPlay(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{instanceOf(t, cat, "Golem")}

	next, err := Apply(gs, PlayAction(0, PositionDEF, 2))
	require.NoError(t, err)

	field := next.Players[0].Field
	require.NotNil(t, field)
	assert.Equal(t, "Golem", field.Card.Name)
	assert.Equal(t, PositionDEF, field.Position)
	assert.Equal(t, catalog.StarMars, field.Star)
	assert.Empty(t, next.Players[0].Hand)
}

func TestApplyPlayRejectsOccupiedField(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{instanceOf(t, cat, "Wolf")}
	gs.Players[0].Field = instanceOf(t, cat, "Golem")

	_, err := Apply(gs, PlayAction(0, PositionATK, 1))
	var illegal *IllegalActionError
	require.ErrorAs(t, err, &illegal)
	assert.Contains(t, illegal.Reason, "occupied")
}

func TestApplyFuse(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{
		instanceOf(t, cat, "Wolf"),
		instanceOf(t, cat, "Sun Knight"),
		instanceOf(t, cat, "Dragonling"),
	}

	next, err := Apply(gs, FuseAction(0, 2))
	require.NoError(t, err)

	p := next.Players[0]
	require.Equal(t, 2, p.HandCount())
	assert.Equal(t, "Sun Knight", p.Hand[0].Card.Name)
	assert.Equal(t, "Fanged Wyrm", p.Hand[1].Card.Name)
	assert.Len(t, p.Graveyard, 2)
	assert.Nil(t, p.Field, "fusion result goes to the hand, not the field")

	// Reversed indices resolve the same recipe.
	next2, err := Apply(gs, FuseAction(2, 0))
	require.NoError(t, err)
	assert.Equal(t, "Fanged Wyrm", next2.Players[0].Hand[1].Card.Name)
}

func TestApplyFuseUnknownRecipe(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{
		instanceOf(t, cat, "Golem"),
		instanceOf(t, cat, "Sun Knight"),
	}

	_, err := Apply(gs, FuseAction(0, 1))
	var unknown *UnknownRecipeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Golem", unknown.Material1)
	assert.Equal(t, "Sun Knight", unknown.Material2)

	// Same index twice is illegal, not an unknown recipe.
	_, err = Apply(gs, FuseAction(1, 1))
	var illegal *IllegalActionError
	require.ErrorAs(t, err, &illegal)
}

// battleState puts two cards on the field ready to fight, player 0 attacking.
func battleState(t *testing.T, cat *catalog.Catalog, attacker, defender *CardInstance) *GameState {
	t.Helper()
	gs := newTestState(cat)
	gs.Players[0].Field = attacker
	gs.Players[1].Field = defender
	return gs
}

func TestBattleBreaksDefenseWithPiercing(t *testing.T) {
	cat := testCatalog(t)
	attacker := instanceOf(t, cat, "Ogre")  // 2500 ATK, Luna
	defender := instanceOf(t, cat, "Golem") // 2000 DEF, Uranus: no star relation
	defender.Position = PositionDEF
	gs := battleState(t, cat, attacker, defender)

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	r := next.LastBattle
	require.NotNil(t, r)
	assert.Equal(t, 2500, r.AttackerValue)
	assert.Equal(t, 2000, r.DefenderValue)
	assert.True(t, r.DefenderDestroyed)
	assert.False(t, r.AttackerDestroyed)
	assert.Equal(t, 500, r.Damage)
	assert.Equal(t, StartingLifePoints-500, next.Players[1].LifePoints)
	assert.Nil(t, next.Players[1].Field)
	assert.Len(t, next.Players[1].Graveyard, 1)
	assert.True(t, next.BattleFought)
}

func TestBattleFailsAgainstTallDefense(t *testing.T) {
	cat := testCatalog(t)
	attacker := instanceOf(t, cat, "Lizard") // 1500 ATK, Uranus
	defender := instanceOf(t, cat, "Golem")  // 2000 DEF, Uranus
	defender.Position = PositionDEF
	gs := battleState(t, cat, attacker, defender)

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	// No card is destroyed and nobody takes damage.
	assert.NotNil(t, next.Players[0].Field)
	assert.NotNil(t, next.Players[1].Field)
	assert.Equal(t, StartingLifePoints, next.Players[0].LifePoints)
	assert.Equal(t, StartingLifePoints, next.Players[1].LifePoints)
	assert.Equal(t, 0, next.LastBattle.Damage)
}

func TestBattleStarBonusSwingsTheExchange(t *testing.T) {
	cat := testCatalog(t)
	attacker := instanceOf(t, cat, "Solar Paladin") // 2000 ATK, Sol
	defender := instanceOf(t, cat, "Dragonling")    // 2000 ATK, Luna
	gs := battleState(t, cat, attacker, defender)

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	// Sol beats Luna: +500 for the attacker, -500 for the defender.
	r := next.LastBattle
	assert.Equal(t, 500, r.AttackerBonus)
	assert.Equal(t, -500, r.DefenderBonus)
	assert.Equal(t, 2500, r.AttackerValue)
	assert.Equal(t, 1500, r.DefenderValue)
	assert.True(t, r.DefenderDestroyed)
	assert.Equal(t, 1000, r.Damage)
	assert.Equal(t, StartingLifePoints-1000, next.Players[1].LifePoints)
}

func TestBattleAttackerLosesTheExchange(t *testing.T) {
	cat := testCatalog(t)
	attacker := instanceOf(t, cat, "Wolf") // 1200 ATK
	defender := instanceOf(t, cat, "Ogre") // 2500 ATK
	attacker.SelectStar(2)                 // Saturn vs Luna: neutral
	gs := battleState(t, cat, attacker, defender)

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	r := next.LastBattle
	assert.True(t, r.AttackerDestroyed)
	assert.False(t, r.DefenderDestroyed)
	assert.Equal(t, 1300, r.Damage)
	assert.Equal(t, 0, r.DamagedPlayer)
	assert.Equal(t, StartingLifePoints-1300, next.Players[0].LifePoints)
	assert.Nil(t, next.Players[0].Field)
}

func TestBattleAttackTieDestroysNeither(t *testing.T) {
	cat := testCatalog(t)
	gs := battleState(t, cat, instanceOf(t, cat, "Wolf"), instanceOf(t, cat, "Wolf"))

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	assert.NotNil(t, next.Players[0].Field)
	assert.NotNil(t, next.Players[1].Field)
	assert.Equal(t, 0, next.LastBattle.Damage)
	assert.Equal(t, StartingLifePoints, next.Players[0].LifePoints)
	assert.Equal(t, StartingLifePoints, next.Players[1].LifePoints)
}

func TestBattleCanEndTheDuel(t *testing.T) {
	cat := testCatalog(t)
	attacker := instanceOf(t, cat, "Ogre")
	defender := instanceOf(t, cat, "Wolf")
	defender.SelectStar(2) // Saturn vs Luna: neutral
	gs := battleState(t, cat, attacker, defender)
	gs.Players[1].LifePoints = 1000 // 2500 - 1200 = 1300 damage

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	assert.True(t, next.Over)
	assert.Equal(t, 0, next.Winner)
	assert.Equal(t, -300, next.Players[1].LifePoints)
}

func TestBattleOncePerTurn(t *testing.T) {
	cat := testCatalog(t)
	gs := battleState(t, cat, instanceOf(t, cat, "Wolf"), instanceOf(t, cat, "Wolf"))

	next, err := Apply(gs, BattleAction())
	require.NoError(t, err)

	_, err = Apply(next, BattleAction())
	var illegal *IllegalActionError
	require.ErrorAs(t, err, &illegal)
	assert.Contains(t, illegal.Reason, "already fought")
}

func TestApplyPass(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.BattleFought = true
	gs.Players[1].Deck = []*CardInstance{instanceOf(t, cat, "Wolf")}

	next, err := Apply(gs, PassAction())
	require.NoError(t, err)

	assert.Equal(t, 1, next.TurnPlayer)
	assert.Equal(t, 2, next.Turn)
	assert.Equal(t, PhaseMain, next.Phase)
	assert.False(t, next.BattleFought)
	assert.Equal(t, 1, next.Players[1].HandCount())
	assert.Equal(t, 0, next.Players[1].DeckCount())
}

func TestPassIntoEmptyDeckEndsTheDuel(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	// Player 1 has nothing left to draw.

	next, err := Apply(gs, PassAction())
	require.NoError(t, err)

	assert.True(t, next.Over)
	assert.Equal(t, 0, next.Winner)
	assert.Contains(t, next.Result, "decked out")
}

func TestApplyOnTerminalState(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Over = true

	_, err := Apply(gs, PassAction())
	var illegal *IllegalActionError
	require.ErrorAs(t, err, &illegal)
}

func TestApplyClearsStaleBattleReport(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{instanceOf(t, cat, "Wolf")}
	gs.LastBattle = &BattleReport{AttackerCard: "stale"}

	next, err := Apply(gs, PlayAction(0, PositionATK, 1))
	require.NoError(t, err)
	assert.Nil(t, next.LastBattle)
}

func TestMustApplyPanicsOnIllegalAction(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	assert.Panics(t, func() {
		MustApply(gs, PlayAction(3, PositionATK, 1))
	})
}

// Every action LegalActions offers must apply cleanly, and vice versa:
// actions that fail validation must not be offered.
func TestLegalActionsMatchValidation(t *testing.T) {
	cat := testCatalog(t)
	gs := newTestState(cat)
	gs.Players[0].Hand = []*CardInstance{
		instanceOf(t, cat, "Wolf"),
		instanceOf(t, cat, "Dragonling"),
	}
	gs.Players[1].Field = instanceOf(t, cat, "Golem")
	gs.Players[1].Deck = []*CardInstance{instanceOf(t, cat, "Lizard")}

	for _, action := range LegalActions(gs, 0) {
		_, err := Apply(gs, action)
		assert.NoError(t, err, "offered action %s must apply", action)
	}
}
