package game

import "fmt"

// IllegalActionError reports an action that is not currently legal. It is
// a programming error in the caller or in search-tree generation and is
// never silently ignored.
type IllegalActionError struct {
	Action Action
	Reason string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal action %s: %s", e.Action, e.Reason)
}

// UnknownRecipeError reports a fuse action whose material pair is absent
// from the catalog. The action generator only emits fuses with known
// recipes, so hitting this is a consistency failure.
type UnknownRecipeError struct {
	Material1 string
	Material2 string
}

func (e *UnknownRecipeError) Error() string {
	return fmt.Sprintf("no fusion recipe for %q + %q", e.Material1, e.Material2)
}
