package game

import (
	"context"
	"fmt"
	"math/rand"

	"duelmind/internal/catalog"
	"duelmind/internal/log"
)

// PlayerController is the interface both human (CLI) and AI (search)
// players implement.
type PlayerController interface {
	// ChooseAction presents available actions and waits for the player to pick one.
	ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// DuelConfig holds configuration for creating a new duel.
type DuelConfig struct {
	Catalog   *catalog.Catalog
	Deck0     []*catalog.Card // first player's deck (card definitions)
	Deck1     []*catalog.Card
	Logger    log.EventLogger
	Seed      int64 // RNG seed for deck shuffling (0 for unseeded)
	NoShuffle bool  // keep deck order as given (for deterministic tests)
	MaxTurns  int   // stop after this many turns (0 = default limit)
}

// Duel owns the authoritative GameState and runs the turn loop. Only the
// action a controller picks is ever applied to it; search engines operate
// on deep copies and never write back.
type Duel struct {
	State       *GameState
	Controllers [2]PlayerController
	Logger      log.EventLogger
	ctx         context.Context
	maxTurns    int
}

// NewDuel creates a duel from the given config and player controllers.
func NewDuel(cfg DuelConfig, p0, p1 PlayerController) *Duel {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}

	deck0 := append([]*catalog.Card(nil), cfg.Deck0...)
	deck1 := append([]*catalog.Card(nil), cfg.Deck1...)
	if !cfg.NoShuffle {
		r := rand.New(rand.NewSource(cfg.Seed))
		shuffleDeck(r, deck0)
		shuffleDeck(r, deck1)
	}

	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 200 // safety limit
	}

	return &Duel{
		State:       NewDuelState(cfg.Catalog, deck0, deck1),
		Controllers: [2]PlayerController{p0, p1},
		Logger:      logger,
		ctx:         context.Background(),
		maxTurns:    maxTurns,
	}
}

func shuffleDeck(r *rand.Rand, deck []*catalog.Card) {
	r.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// Run executes the duel loop. Returns the winner (0, 1, or -1 for draw).
func (d *Duel) Run(ctx context.Context) (int, error) {
	d.ctx = ctx
	gs := d.State

	d.log(log.NewTurnEvent(gs.Turn, gs.TurnPlayer))

	for !gs.Over {
		if gs.Turn > d.maxTurns {
			gs.Over = true
			gs.Winner = -1
			gs.Result = fmt.Sprintf("Turn limit reached (%d turns)", d.maxTurns)
			break
		}
		if err := d.step(); err != nil {
			return gs.Winner, err
		}
		gs = d.State
		if err := d.ctx.Err(); err != nil {
			return -1, err
		}
	}

	d.log(log.NewWinEvent(gs.Turn, gs.Winner, gs.Result))
	return gs.Winner, nil
}

// step asks the turn player for one action and applies it to the
// authoritative state.
func (d *Duel) step() error {
	gs := d.State
	tp := gs.TurnPlayer

	actions := LegalActions(gs, tp)
	chosen, err := d.Controllers[tp].ChooseAction(d.ctx, gs, actions)
	if err != nil {
		return err
	}

	next, err := Apply(gs, chosen)
	if err != nil {
		return fmt.Errorf("player %d chose an unplayable action: %w", tp, err)
	}

	d.logAction(gs, next, chosen)
	d.State = next
	return nil
}

// logAction emits the events describing one applied action, comparing the
// states before and after.
func (d *Duel) logAction(before, after *GameState, action Action) {
	tp := before.TurnPlayer
	p := before.Players[tp]

	switch action.Type {
	case ActionPlay:
		played := after.Players[tp].Field
		d.log(log.NewPlayEvent(before.Turn, tp, played.Card.Name, played.Position.String(), played.Star.String()))

	case ActionFuse:
		m1 := p.Hand[action.Index1].Card.Name
		m2 := p.Hand[action.Index2].Card.Name
		result := after.Players[tp].Hand[len(after.Players[tp].Hand)-1]
		d.log(log.NewFuseEvent(before.Turn, tp, m1, m2, result.Card.Name))

	case ActionBattle:
		r := after.LastBattle
		d.log(log.NewBattleEvent(before.Turn, tp, fmt.Sprintf(
			"%s (%d) vs %s (%d, %s)", r.AttackerCard, r.AttackerValue, r.DefenderCard, r.DefenderValue, r.DefenderPosition)))
		if r.AttackerDestroyed {
			d.log(log.NewDestroyEvent(before.Turn, r.Attacker, r.AttackerCard))
		}
		if r.DefenderDestroyed {
			d.log(log.NewDestroyEvent(before.Turn, r.Defender, r.DefenderCard))
		}
		if r.Damage > 0 {
			oldLP := before.Players[r.DamagedPlayer].LifePoints
			newLP := after.Players[r.DamagedPlayer].LifePoints
			d.log(log.NewLPChangeEvent(before.Turn, r.DamagedPlayer, oldLP, newLP, "battle"))
		}

	case ActionPass:
		d.log(log.NewPassEvent(before.Turn, tp))
		next := after.TurnPlayer
		if after.Over && after.Players[next].DeckCount() == 0 && before.Players[next].DeckCount() == 0 {
			d.log(log.NewDeckOutEvent(after.Turn, next))
			return
		}
		d.log(log.NewTurnEvent(after.Turn, next))
		if after.Players[next].HandCount() > before.Players[next].HandCount() {
			drawn := after.Players[next].Hand[after.Players[next].HandCount()-1]
			d.log(log.NewDrawEvent(after.Turn, next, drawn.Card.Name))
		}
	}
}

// log emits a game event through the logger and notifies both players.
func (d *Duel) log(event log.GameEvent) {
	d.Logger.Log(event)
	for i := 0; i < 2; i++ {
		_ = d.Controllers[i].Notify(d.ctx, event)
	}
}
