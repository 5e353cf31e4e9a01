package game

import (
	"fmt"

	"duelmind/internal/catalog"
)

// --- Enums ---

type Phase int

const (
	PhaseDraw Phase = iota
	PhaseMain
	PhaseBattle
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw"
	case PhaseMain:
		return "Main"
	case PhaseBattle:
		return "Battle"
	case PhaseEnd:
		return "End"
	default:
		return "Unknown"
	}
}

type Position int

const (
	PositionATK Position = iota
	PositionDEF
)

func (p Position) String() string {
	if p == PositionATK {
		return "ATK"
	}
	return "DEF"
}

// --- CardInstance (runtime card in hand/deck/field/graveyard) ---

// CardInstance is a catalog card plus its transient in-game state: the
// position it fights in and which of its two printed stars it fights under.
type CardInstance struct {
	Card     *catalog.Card
	Position Position
	Star     catalog.GuardianStar
}

// NewCardInstance creates an in-game instance defaulting to attack
// position under the card's primary star.
func NewCardInstance(card *catalog.Card) *CardInstance {
	return &CardInstance{
		Card:     card,
		Position: PositionATK,
		Star:     card.Star1,
	}
}

// Clone copies the instance. The catalog card is immutable and shared.
func (ci *CardInstance) Clone() *CardInstance {
	if ci == nil {
		return nil
	}
	dup := *ci
	return &dup
}

// SelectStar picks one of the card's two printed stars by slot (1 or 2).
func (ci *CardInstance) SelectStar(slot int) {
	if slot == 2 {
		ci.Star = ci.Card.Star2
	} else {
		ci.Star = ci.Card.Star1
	}
}

// BattleValue returns the stat the card defends with in its current
// position, before star modifiers.
func (ci *CardInstance) BattleValue() int {
	if ci.Position == PositionDEF {
		return ci.Card.DEF
	}
	return ci.Card.ATK
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (%s %d, %s)", ci.Card.Name, ci.Position, ci.BattleValue(), ci.Star)
}

// --- Actions ---

type ActionType int

const (
	ActionPlay ActionType = iota
	ActionFuse
	ActionBattle
	ActionPass
)

func (a ActionType) String() string {
	switch a {
	case ActionPlay:
		return "Play"
	case ActionFuse:
		return "Fuse"
	case ActionBattle:
		return "Battle"
	case ActionPass:
		return "Pass"
	default:
		return "Unknown"
	}
}

// Action is a tagged variant: Type selects the kind, and only the fields
// that kind needs are meaningful. Actions are comparable so the search can
// match a chosen action against an offered list by value.
type Action struct {
	Type ActionType

	// Play
	HandIndex int
	Position  Position
	StarSlot  int // 1 or 2

	// Fuse
	Index1 int
	Index2 int
}

// PlayAction builds a play-card action.
func PlayAction(handIndex int, position Position, starSlot int) Action {
	return Action{Type: ActionPlay, HandIndex: handIndex, Position: position, StarSlot: starSlot}
}

// FuseAction builds a fuse action for two hand indices.
func FuseAction(i, j int) Action {
	return Action{Type: ActionFuse, Index1: i, Index2: j}
}

// BattleAction builds a battle action.
func BattleAction() Action {
	return Action{Type: ActionBattle}
}

// PassAction builds an end-turn action.
func PassAction() Action {
	return Action{Type: ActionPass}
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlay:
		return fmt.Sprintf("Play hand[%d] %s star %d", a.HandIndex, a.Position, a.StarSlot)
	case ActionFuse:
		return fmt.Sprintf("Fuse hand[%d] + hand[%d]", a.Index1, a.Index2)
	default:
		return a.Type.String()
	}
}

// Describe renders an action against a concrete state, naming the cards
// involved. Used by the CLI action menu.
func (a Action) Describe(gs *GameState, player int) string {
	p := gs.Players[player]
	switch a.Type {
	case ActionPlay:
		if a.HandIndex < len(p.Hand) {
			card := p.Hand[a.HandIndex].Card
			star := card.Star1
			if a.StarSlot == 2 {
				star = card.Star2
			}
			return fmt.Sprintf("Play %s in %s under %s", card.Name, a.Position, star)
		}
	case ActionFuse:
		if a.Index1 < len(p.Hand) && a.Index2 < len(p.Hand) {
			m1 := p.Hand[a.Index1].Card.Name
			m2 := p.Hand[a.Index2].Card.Name
			if result, ok := gs.Catalog.FusionFor(m1, m2); ok {
				return fmt.Sprintf("Fuse %s + %s into %s", m1, m2, result.Name)
			}
			return fmt.Sprintf("Fuse %s + %s", m1, m2)
		}
	case ActionBattle:
		return fmt.Sprintf("Battle: %s attacks %s", p.Field, gs.Players[gs.Opponent(player)].Field)
	case ActionPass:
		return "Pass (end turn)"
	}
	return a.String()
}
