package ai

import (
	"duelmind/internal/catalog"
	"duelmind/internal/game"
)

// Evaluator scores game states from one player's perspective. Positive is
// good for that player, negative good for the opponent.
type Evaluator struct {
	cfg Config
	ai  int // player index the score is computed for
}

// NewEvaluator builds an evaluator for the given player index.
func NewEvaluator(cfg Config, aiPlayer int) *Evaluator {
	return &Evaluator{cfg: cfg, ai: aiPlayer}
}

// Evaluate computes the weighted sum of the seven heuristic signals.
// Terminal states short-circuit to the saturating win/loss score.
func (e *Evaluator) Evaluate(gs *game.GameState) float64 {
	if gs.Over {
		switch gs.Winner {
		case e.ai:
			return WinScore
		case -1:
			return 0
		default:
			return -WinScore
		}
	}

	cfg := e.cfg
	ai := gs.Players[e.ai]
	opp := gs.Players[gs.Opponent(e.ai)]
	score := 0.0

	// 1. Life-point differential: the dominant term.
	score += float64(ai.LifePoints-opp.LifePoints) * cfg.LifeWeight

	// 2. Field control.
	switch {
	case ai.Field != nil && opp.Field == nil:
		score += float64(ai.Field.Card.ATK) * cfg.FieldControlWeight
	case opp.Field != nil && ai.Field == nil:
		score -= float64(opp.Field.Card.ATK) * cfg.FieldControlWeight
	case ai.Field != nil && opp.Field != nil:
		// Both occupied: score who would win the exchange, star bonuses
		// included, with a flat swing when the loser would take damage.
		aiValue := ai.Field.BattleValue() + catalog.StarBonus(ai.Field.Star, opp.Field.Star)
		oppValue := opp.Field.BattleValue() + catalog.StarBonus(opp.Field.Star, ai.Field.Star)
		switch {
		case aiValue > oppValue:
			score += float64(aiValue-oppValue) * cfg.BattleEdgeWeight
			if opp.Field.Position == game.PositionATK {
				score += cfg.BattleEdgeBonus
			}
		case oppValue > aiValue:
			score -= float64(oppValue-aiValue) * cfg.BattleEdgeWeight
			if ai.Field.Position == game.PositionATK {
				score -= cfg.BattleEdgeBonus
			}
		}
	}

	// 3. Hand quality: total power plus the single strongest card.
	score += float64(handPower(ai.Hand)-handPower(opp.Hand)) * cfg.HandPowerWeight
	score += float64(bestATK(ai.Hand)-bestATK(opp.Hand)) * cfg.BestCardWeight

	// 4. Resource advantage, per card.
	score += float64(ai.HandCount()-opp.HandCount()) * cfg.HandCountWeight
	score += float64(ai.DeckCount()-opp.DeckCount()) * cfg.DeckCountWeight

	// 5. Fusion potential: access to fusions widens the action space, so
	// this is deliberately heavy.
	score += (fusionPotential(gs.Catalog, ai.Hand) - fusionPotential(gs.Catalog, opp.Hand)) * cfg.FusionWeight

	// 6. Deck look-ahead: perfect information means upcoming draws are known.
	score += e.lookahead(ai.Deck) * cfg.LookaheadWeight
	score -= e.lookahead(opp.Deck) * cfg.LookaheadWeight

	// 7. Low-life penalty: a side one exchange from losing is worth less
	// than its point lead suggests.
	if ai.LifePoints < cfg.LowLifeThreshold {
		score -= float64(cfg.LowLifeThreshold-ai.LifePoints) * cfg.LowLifeWeight
	}
	if opp.LifePoints < cfg.LowLifeThreshold {
		score += float64(cfg.LowLifeThreshold-opp.LifePoints) * cfg.LowLifeWeight
	}

	return score
}

func handPower(hand []*game.CardInstance) int {
	total := 0
	for _, ci := range hand {
		total += maxStat(ci.Card)
	}
	return total
}

func bestATK(hand []*game.CardInstance) int {
	best := 0
	for _, ci := range hand {
		if ci.Card.ATK > best {
			best = ci.Card.ATK
		}
	}
	return best
}

func maxStat(c *catalog.Card) int {
	if c.DEF > c.ATK {
		return c.DEF
	}
	return c.ATK
}

// fusionPotential scores a hand's fusible pairs: each pair whose result
// out-attacks both materials counts 1 plus a bonus per 500 ATK gained.
func fusionPotential(cat *catalog.Catalog, hand []*game.CardInstance) float64 {
	if len(hand) < 2 {
		return 0
	}
	value := 0.0
	for i := 0; i < len(hand); i++ {
		for j := i + 1; j < len(hand); j++ {
			result, ok := cat.FusionFor(hand[i].Card.Name, hand[j].Card.Name)
			if !ok {
				continue
			}
			best := hand[i].Card.ATK
			if hand[j].Card.ATK > best {
				best = hand[j].Card.ATK
			}
			if improvement := result.ATK - best; improvement > 0 {
				value += 1 + float64(improvement)/500
			}
		}
	}
	return value
}

// lookahead sums the stats of the next few drawable cards.
func (e *Evaluator) lookahead(deck []*game.CardInstance) float64 {
	n := e.cfg.LookaheadCards
	if n > len(deck) {
		n = len(deck)
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += float64(maxStat(deck[i].Card))
	}
	return total
}
