package game

// LegalActions enumerates every action the given player may take, in a
// fixed, deterministic order: plays in hand order (ATK star 1, ATK star 2,
// DEF star 1, DEF star 2), then fuses with ascending index pairs, then
// battle, then pass. The search relies on this order for reproducible
// tie-breaking.
func LegalActions(gs *GameState, player int) []Action {
	if gs.Over {
		return nil
	}
	p := gs.Players[player]
	var actions []Action

	// Play: one variant per position and star slot. The slot-2 variant is
	// dropped when both printed stars are the same card-for-card duplicate.
	if p.Field == nil {
		for i, ci := range p.Hand {
			for _, pos := range []Position{PositionATK, PositionDEF} {
				actions = append(actions, PlayAction(i, pos, 1))
				if ci.Card.Star2 != ci.Card.Star1 {
					actions = append(actions, PlayAction(i, pos, 2))
				}
			}
		}
	}

	// Fuse: every unordered hand pair with a catalog recipe.
	for i := 0; i < len(p.Hand); i++ {
		for j := i + 1; j < len(p.Hand); j++ {
			if _, ok := gs.Catalog.FusionFor(p.Hand[i].Card.Name, p.Hand[j].Card.Name); ok {
				actions = append(actions, FuseAction(i, j))
			}
		}
	}

	// Battle: both fields occupied, at most once per turn.
	if gs.Players[0].Field != nil && gs.Players[1].Field != nil && !gs.BattleFought {
		actions = append(actions, BattleAction())
	}

	// Pass is always legal.
	actions = append(actions, PassAction())

	return actions
}
