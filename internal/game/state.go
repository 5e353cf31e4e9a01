package game

import (
	"fmt"

	"duelmind/internal/catalog"
)

const (
	StartingLifePoints = 8000
	InitialHandSize    = 5
	MaxHandSize        = 5
)

// Player represents one side's entire state.
type Player struct {
	LifePoints int
	Hand       []*CardInstance
	Field      *CardInstance   // at most one card in play
	Deck       []*CardInstance // index 0 is the next draw
	Graveyard  []*CardInstance
}

// DeckCount returns the number of cards remaining in the deck.
func (p *Player) DeckCount() int {
	return len(p.Deck)
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// Clone deep-copies the player. Card instances are copied; the immutable
// catalog cards behind them are shared.
func (p *Player) Clone() *Player {
	dup := &Player{
		LifePoints: p.LifePoints,
		Field:      p.Field.Clone(),
	}
	if len(p.Hand) > 0 {
		dup.Hand = make([]*CardInstance, len(p.Hand))
		for i, ci := range p.Hand {
			dup.Hand[i] = ci.Clone()
		}
	}
	if len(p.Deck) > 0 {
		dup.Deck = make([]*CardInstance, len(p.Deck))
		for i, ci := range p.Deck {
			dup.Deck[i] = ci.Clone()
		}
	}
	if len(p.Graveyard) > 0 {
		dup.Graveyard = make([]*CardInstance, len(p.Graveyard))
		for i, ci := range p.Graveyard {
			dup.Graveyard[i] = ci.Clone()
		}
	}
	return dup
}

// removeFromHand removes and returns the card at the given hand index.
func (p *Player) removeFromHand(i int) *CardInstance {
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card
}

// BattleReport records the arithmetic of one resolved battle, for the
// event log and for tests.
type BattleReport struct {
	Attacker          int // player index
	Defender          int
	AttackerCard      string
	DefenderCard      string
	AttackerValue     int // effective value, star bonus included
	DefenderValue     int
	AttackerBonus     int
	DefenderBonus     int
	DefenderPosition  Position
	Damage            int
	DamagedPlayer     int // meaningful only when Damage > 0
	AttackerDestroyed bool
	DefenderDestroyed bool
}

// GameState holds the complete state of a duel. Index 0 is the side that
// moves first (the human); index 1 is the AI side.
type GameState struct {
	Players      [2]*Player
	Turn         int // 1-based turn counter
	TurnPlayer   int // 0 or 1: whose turn it is
	Phase        Phase
	BattleFought bool // one battle per turn; reset on pass

	// Game result
	Winner int // 0, 1, or -1 (no winner yet, or draw when Over)
	Over   bool
	Result string

	// LastBattle describes the battle that produced this state, if any.
	LastBattle *BattleReport

	// Catalog is shared and immutable; clones alias it.
	Catalog *catalog.Catalog
}

// NewDuelState creates a duel state from two already-ordered decks and
// draws the opening hands. The first player's main phase is live.
func NewDuelState(cat *catalog.Catalog, deck0, deck1 []*catalog.Card) *GameState {
	gs := &GameState{
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
	for _, card := range deck0 {
		gs.Players[0].Deck = append(gs.Players[0].Deck, NewCardInstance(card))
	}
	for _, card := range deck1 {
		gs.Players[1].Deck = append(gs.Players[1].Deck, NewCardInstance(card))
	}
	for i := 0; i < InitialHandSize; i++ {
		for p := 0; p < 2; p++ {
			gs.drawCard(p)
		}
	}
	return gs
}

// Opponent returns the index of the other player.
func (gs *GameState) Opponent(player int) int {
	return 1 - player
}

// CurrentPlayer returns the Player struct for the turn player.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.TurnPlayer]
}

// Clone deep-copies everything mutable. A clone is indistinguishable from
// replaying the same game; the search tree relies on this isolation.
func (gs *GameState) Clone() *GameState {
	dup := &GameState{
		Players:      [2]*Player{gs.Players[0].Clone(), gs.Players[1].Clone()},
		Turn:         gs.Turn,
		TurnPlayer:   gs.TurnPlayer,
		Phase:        gs.Phase,
		BattleFought: gs.BattleFought,
		Winner:       gs.Winner,
		Over:         gs.Over,
		Result:       gs.Result,
		Catalog:      gs.Catalog,
	}
	if gs.LastBattle != nil {
		report := *gs.LastBattle
		dup.LastBattle = &report
	}
	return dup
}

// drawCard moves the top deck card to the hand. A full hand skips the
// draw without penalty; an empty deck is a deck-out loss for the drawer.
func (gs *GameState) drawCard(player int) *CardInstance {
	p := gs.Players[player]
	if len(p.Deck) == 0 {
		gs.Over = true
		gs.Winner = gs.Opponent(player)
		gs.Result = fmt.Sprintf("P%d wins - P%d decked out", gs.Winner+1, player+1)
		return nil
	}
	if len(p.Hand) >= MaxHandSize {
		return nil
	}
	card := p.Deck[0]
	p.Deck = p.Deck[1:]
	p.Hand = append(p.Hand, card)
	return card
}

// checkGameOver marks the state terminal when either side's life points
// are exhausted.
func (gs *GameState) checkGameOver() {
	if gs.Over {
		return
	}
	p0Dead := gs.Players[0].LifePoints <= 0
	p1Dead := gs.Players[1].LifePoints <= 0

	switch {
	case p0Dead && p1Dead:
		gs.Over = true
		gs.Winner = -1
		gs.Result = "Draw - both players' LP reached 0"
	case p0Dead:
		gs.Over = true
		gs.Winner = 1
		gs.Result = "P2 wins - P1's LP reached 0"
	case p1Dead:
		gs.Over = true
		gs.Winner = 0
		gs.Result = "P1 wins - P2's LP reached 0"
	}
}
