package game

import (
	"fmt"

	"duelmind/internal/catalog"
)

// Apply executes one action for the turn player and returns the resulting
// state. The input state is never mutated: the transition clones first and
// works on the clone, so a state handed to the evaluator or a search
// branch stays byte-for-byte intact. Illegal actions fail with
// *IllegalActionError; a fuse over a pair with no recipe fails with
// *UnknownRecipeError.
func Apply(gs *GameState, action Action) (*GameState, error) {
	if gs.Over {
		return nil, &IllegalActionError{Action: action, Reason: "game is over"}
	}
	if err := validate(gs, action); err != nil {
		return nil, err
	}

	next := gs.Clone()
	next.LastBattle = nil

	switch action.Type {
	case ActionPlay:
		applyPlay(next, action)
	case ActionFuse:
		applyFuse(next, action)
	case ActionBattle:
		resolveBattle(next)
	case ActionPass:
		applyPass(next)
	}

	next.checkGameOver()
	return next, nil
}

// validate checks the action's preconditions against the current state;
// passing here is equivalent to membership in LegalActions.
func validate(gs *GameState, action Action) error {
	p := gs.CurrentPlayer()
	switch action.Type {
	case ActionPlay:
		if action.HandIndex < 0 || action.HandIndex >= len(p.Hand) {
			return &IllegalActionError{Action: action, Reason: "hand index out of range"}
		}
		if p.Field != nil {
			return &IllegalActionError{Action: action, Reason: "field slot is occupied"}
		}
		if action.StarSlot != 1 && action.StarSlot != 2 {
			return &IllegalActionError{Action: action, Reason: "star slot must be 1 or 2"}
		}
		if action.Position != PositionATK && action.Position != PositionDEF {
			return &IllegalActionError{Action: action, Reason: "invalid position"}
		}
	case ActionFuse:
		if action.Index1 == action.Index2 {
			return &IllegalActionError{Action: action, Reason: "fuse needs two distinct cards"}
		}
		if action.Index1 < 0 || action.Index1 >= len(p.Hand) ||
			action.Index2 < 0 || action.Index2 >= len(p.Hand) {
			return &IllegalActionError{Action: action, Reason: "hand index out of range"}
		}
		m1 := p.Hand[action.Index1].Card.Name
		m2 := p.Hand[action.Index2].Card.Name
		if _, ok := gs.Catalog.FusionFor(m1, m2); !ok {
			return &UnknownRecipeError{Material1: m1, Material2: m2}
		}
	case ActionBattle:
		if gs.Players[0].Field == nil || gs.Players[1].Field == nil {
			return &IllegalActionError{Action: action, Reason: "both field slots must be occupied"}
		}
		if gs.BattleFought {
			return &IllegalActionError{Action: action, Reason: "battle already fought this turn"}
		}
	case ActionPass:
		// Always legal.
	default:
		return &IllegalActionError{Action: action, Reason: "unknown action type"}
	}
	return nil
}

// applyPlay moves a hand card to the empty field slot with the chosen
// position and star.
func applyPlay(gs *GameState, action Action) {
	p := gs.CurrentPlayer()
	card := p.removeFromHand(action.HandIndex)
	card.Position = action.Position
	card.SelectStar(action.StarSlot)
	p.Field = card
}

// applyFuse sends both materials to the graveyard and puts a fresh
// instance of the recipe's result into the hand. The result does not hit
// the field directly; playing it is a separate action.
func applyFuse(gs *GameState, action Action) {
	p := gs.CurrentPlayer()
	result, _ := gs.Catalog.FusionFor(p.Hand[action.Index1].Card.Name, p.Hand[action.Index2].Card.Name)

	// Remove the higher index first so the lower one stays valid.
	hi, lo := action.Index1, action.Index2
	if lo > hi {
		hi, lo = lo, hi
	}
	p.Graveyard = append(p.Graveyard, p.removeFromHand(hi))
	p.Graveyard = append(p.Graveyard, p.removeFromHand(lo))
	p.Hand = append(p.Hand, NewCardInstance(result))
}

// resolveBattle fights the two field cards. The attacker always strikes
// with ATK; the defender answers with ATK or DEF per its position. Each
// side's value is adjusted by its star matchup against the other.
func resolveBattle(gs *GameState) {
	attacker := gs.TurnPlayer
	defender := gs.Opponent(attacker)
	attackerCard := gs.Players[attacker].Field
	defenderCard := gs.Players[defender].Field

	attackerBonus := catalog.StarBonus(attackerCard.Star, defenderCard.Star)
	defenderBonus := catalog.StarBonus(defenderCard.Star, attackerCard.Star)
	attackerValue := attackerCard.Card.ATK + attackerBonus
	defenderValue := defenderCard.BattleValue() + defenderBonus

	report := &BattleReport{
		Attacker:         attacker,
		Defender:         defender,
		AttackerCard:     attackerCard.Card.Name,
		DefenderCard:     defenderCard.Card.Name,
		AttackerValue:    attackerValue,
		DefenderValue:    defenderValue,
		AttackerBonus:    attackerBonus,
		DefenderBonus:    defenderBonus,
		DefenderPosition: defenderCard.Position,
	}

	if defenderCard.Position == PositionATK {
		switch {
		case attackerValue > defenderValue:
			report.Damage = attackerValue - defenderValue
			report.DamagedPlayer = defender
			report.DefenderDestroyed = true
			gs.Players[defender].LifePoints -= report.Damage
			destroyField(gs, defender)
		case defenderValue > attackerValue:
			report.Damage = defenderValue - attackerValue
			report.DamagedPlayer = attacker
			report.AttackerDestroyed = true
			gs.Players[attacker].LifePoints -= report.Damage
			destroyField(gs, attacker)
		default:
			// Tie: neither card is removed, no damage.
		}
	} else {
		// Attacking into defense: only a strict break destroys the card,
		// and the surplus pierces the defender's life points. A failed
		// attack bounces with no damage either way.
		if attackerValue > defenderValue {
			report.Damage = attackerValue - defenderValue
			report.DamagedPlayer = defender
			report.DefenderDestroyed = true
			gs.Players[defender].LifePoints -= report.Damage
			destroyField(gs, defender)
		}
	}

	gs.Phase = PhaseBattle
	gs.BattleFought = true
	gs.LastBattle = report
}

// destroyField moves a player's field card to their graveyard.
func destroyField(gs *GameState, player int) {
	p := gs.Players[player]
	p.Graveyard = append(p.Graveyard, p.Field)
	p.Field = nil
}

// applyPass ends the acting player's turn: the opponent becomes the turn
// player, the turn counter advances, and their draw resolves. Drawing
// from an empty deck ends the game against the drawer.
func applyPass(gs *GameState) {
	gs.BattleFought = false
	gs.Phase = PhaseEnd
	gs.TurnPlayer = gs.Opponent(gs.TurnPlayer)
	gs.Turn++
	gs.Phase = PhaseDraw
	gs.drawCard(gs.TurnPlayer)
	if !gs.Over {
		gs.Phase = PhaseMain
	}
}

// MustApply is Apply for callers that have already screened the action
// through LegalActions; an error there is a consistency bug, so it panics.
func MustApply(gs *GameState, action Action) *GameState {
	next, err := Apply(gs, action)
	if err != nil {
		panic(fmt.Sprintf("apply screened action %s: %v", action, err))
	}
	return next
}
