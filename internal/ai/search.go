package ai

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog/log"

	"duelmind/internal/catalog"
	"duelmind/internal/game"
)

// Diagnostics reports how much work one search performed. It exists for
// testing and tuning, not for game logic.
type Diagnostics struct {
	NodesVisited   int
	BranchesPruned int
	Value          float64
}

// Searcher picks actions by minimax with alpha-beta pruning over the
// legal-action tree, evaluating cut-off states with a heuristic
// Evaluator. It only ever reads the state it is given: the root is
// deep-copied and every descent goes through the pure transition
// function.
type Searcher struct {
	cfg  Config
	ai   int
	eval *Evaluator
}

// NewSearcher builds a searcher maximizing for the given player index.
func NewSearcher(cfg Config, aiPlayer int) *Searcher {
	return &Searcher{
		cfg:  cfg,
		ai:   aiPlayer,
		eval: NewEvaluator(cfg, aiPlayer),
	}
}

// ChooseAction runs a depth-limited search from the given state, which
// must be non-terminal and the searcher's own turn, and returns the best
// root action. Equal backed-up values keep the first action in generation
// order.
func (s *Searcher) ChooseAction(gs *game.GameState, depth int) (game.Action, Diagnostics, error) {
	if depth < 1 {
		return game.Action{}, Diagnostics{}, fmt.Errorf("search depth must be >= 1, got %d", depth)
	}
	if gs.Over {
		return game.Action{}, Diagnostics{}, fmt.Errorf("cannot search a terminal state")
	}
	if gs.TurnPlayer != s.ai {
		return game.Action{}, Diagnostics{}, fmt.Errorf("not player %d's turn", s.ai)
	}

	root := gs.Clone()
	var diag Diagnostics
	value, action := s.minimax(root, depth, math.Inf(-1), math.Inf(1), &diag)
	diag.Value = value

	log.Debug().
		Int("depth", depth).
		Int("nodes", diag.NodesVisited).
		Int("pruned", diag.BranchesPruned).
		Float64("value", value).
		Stringer("action", action).
		Msg("search complete")

	return action, diag, nil
}

// minimax explores the game tree to the given depth. The ply's role
// follows the simulated state's turn player: the searcher's own plies
// maximize, the opponent's minimize. A branch is abandoned the instant
// beta <= alpha; the non-strict comparison is what makes the pruning
// sound without losing the optimal line.
func (s *Searcher) minimax(gs *game.GameState, depth int, alpha, beta float64, diag *Diagnostics) (float64, game.Action) {
	diag.NodesVisited++

	if gs.Over || depth == 0 {
		return s.eval.Evaluate(gs), game.Action{}
	}

	actions := s.orderedActions(gs)
	best := actions[0]

	if gs.TurnPlayer == s.ai {
		maxEval := math.Inf(-1)
		for _, action := range actions {
			value, _ := s.minimax(game.MustApply(gs, action), depth-1, alpha, beta, diag)
			if value > maxEval {
				maxEval = value
				best = action
			}
			if value > alpha {
				alpha = value
			}
			if beta <= alpha {
				diag.BranchesPruned++
				break
			}
		}
		return maxEval, best
	}

	minEval := math.Inf(1)
	for _, action := range actions {
		value, _ := s.minimax(game.MustApply(gs, action), depth-1, alpha, beta, diag)
		if value < minEval {
			minEval = value
			best = action
		}
		if value < beta {
			beta = value
		}
		if beta <= alpha {
			diag.BranchesPruned++
			break
		}
	}
	return minEval, best
}

// orderedActions reorders the legal actions so the likeliest-best come
// first, which tightens the alpha-beta window early. It is ordering only:
// every legal action stays in the list, so the backed-up value cannot
// change, only the node count.
//
// Ranking: fusions whose result strictly dominates both materials, then
// battle, then the play variant matching the heuristic best star and
// position for its card, then everything else in generation order.
func (s *Searcher) orderedActions(gs *game.GameState) []game.Action {
	player := gs.TurnPlayer
	actions := game.LegalActions(gs, player)
	p := gs.Players[player]
	oppField := gs.Players[gs.Opponent(player)].Field

	rank := func(a game.Action) int {
		switch a.Type {
		case game.ActionFuse:
			if isDominatingFusion(gs.Catalog, p.Hand[a.Index1].Card, p.Hand[a.Index2].Card) {
				return 0
			}
			return 3
		case game.ActionBattle:
			return 1
		case game.ActionPlay:
			card := p.Hand[a.HandIndex].Card
			if a.Position == bestPosition(card, oppField) && a.StarSlot == bestStarSlot(card, oppField) {
				return 2
			}
			return 3
		default:
			return 3
		}
	}

	sort.SliceStable(actions, func(i, j int) bool {
		return rank(actions[i]) < rank(actions[j])
	})
	return actions
}

// SuggestPlay returns the heuristically best position and star slot for
// playing a card against the opponent's current field. The search uses
// the same heuristics for move ordering; the CLI surfaces them as a hint.
func SuggestPlay(card *catalog.Card, oppField *game.CardInstance) (game.Position, int) {
	return bestPosition(card, oppField), bestStarSlot(card, oppField)
}

// isDominatingFusion reports whether the pair's result beats both
// materials in ATK and DEF outright.
func isDominatingFusion(cat *catalog.Catalog, a, b *catalog.Card) bool {
	result, ok := cat.FusionFor(a.Name, b.Name)
	if !ok {
		return false
	}
	return result.ATK > a.ATK && result.ATK > b.ATK &&
		result.DEF > a.DEF && result.DEF > b.DEF
}

// bestStarSlot picks the printed star with the better matchup against the
// opponent's field card (slot 1 on a tie or an empty field).
func bestStarSlot(card *catalog.Card, oppField *game.CardInstance) int {
	if oppField == nil {
		return 1
	}
	bonus1 := catalog.StarBonus(card.Star1, oppField.Star)
	bonus2 := catalog.StarBonus(card.Star2, oppField.Star)
	if bonus2 > bonus1 {
		return 2
	}
	return 1
}

// bestPosition picks attack when the card wins the exchange, defense when
// it can absorb the opponent's attack, and the stronger stat otherwise.
func bestPosition(card *catalog.Card, oppField *game.CardInstance) game.Position {
	if oppField == nil {
		if card.ATK >= 1500 {
			return game.PositionATK
		}
		return game.PositionDEF
	}
	oppATK := oppField.Card.ATK
	if card.ATK > oppATK {
		return game.PositionATK
	}
	if card.DEF >= oppATK {
		return game.PositionDEF
	}
	if card.DEF > card.ATK {
		return game.PositionDEF
	}
	return game.PositionATK
}
