package ai

import (
	"context"
	"fmt"

	"duelmind/internal/game"
	"duelmind/internal/log"
)

// Controller adapts the search engine to the duel's PlayerController
// contract. It searches a deep copy of the authoritative state and
// returns the chosen action; applying it is the duel's job.
type Controller struct {
	searcher *Searcher
	depth    int
}

// NewController builds an AI controller for the given player index, using
// the profile's search depth.
func NewController(cfg Config, aiPlayer int) *Controller {
	return &Controller{
		searcher: NewSearcher(cfg, aiPlayer),
		depth:    cfg.Depth,
	}
}

// ChooseAction runs the search and hands back the matching offered
// action. The searcher draws candidates from the same generator the duel
// offers, so the choice is always present in the list.
func (c *Controller) ChooseAction(ctx context.Context, state *game.GameState, actions []game.Action) (game.Action, error) {
	if err := ctx.Err(); err != nil {
		return game.Action{}, err
	}

	chosen, _, err := c.searcher.ChooseAction(state, c.depth)
	if err != nil {
		return game.Action{}, err
	}
	for _, a := range actions {
		if a == chosen {
			return a, nil
		}
	}
	return game.Action{}, fmt.Errorf("search chose %s, which is not among the %d offered actions", chosen, len(actions))
}

// Notify implements PlayerController; the AI does not react to events.
func (c *Controller) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
