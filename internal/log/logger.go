package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase for alignment
	for len(phase) < 12 {
		phase += " "
	}

	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw",
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewDrawEvent(turn, player int, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw",
		Player:  player,
		Type:    EventDraw,
		Card:    card,
		Details: fmt.Sprintf("%s draws %s", playerName(player), card),
	}
}

func NewPlayEvent(turn, player int, card, position, star string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventPlay,
		Card:    card,
		Details: fmt.Sprintf("%s plays %s in %s under %s", playerName(player), card, position, star),
	}
}

func NewFuseEvent(turn, player int, material1, material2, result string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventFuse,
		Card:    result,
		Details: fmt.Sprintf("%s fuses %s + %s into %s", playerName(player), material1, material2, result),
	}
}

func NewBattleEvent(turn, attacker int, detail string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Player:  attacker,
		Type:    EventBattle,
		Details: detail,
	}
}

func NewDestroyEvent(turn, owner int, card string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Player:  owner,
		Type:    EventDestroy,
		Card:    card,
		Details: fmt.Sprintf("%s's %s is destroyed", playerName(owner), card),
	}
}

func NewLPChangeEvent(turn, player, oldLP, newLP int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Battle",
		Player:  player,
		Type:    EventLPChange,
		Details: fmt.Sprintf("%s LP %d -> %d (%s)", playerName(player), oldLP, newLP, reason),
	}
}

func NewPassEvent(turn, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "End",
		Player:  player,
		Type:    EventPass,
		Details: fmt.Sprintf("%s ends the turn", playerName(player)),
	}
}

func NewDeckOutEvent(turn, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw",
		Player:  player,
		Type:    EventDeckOut,
		Details: fmt.Sprintf("%s cannot draw from an empty deck", playerName(player)),
	}
}

func NewWinEvent(turn, winner int, result string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "End",
		Player:  winner,
		Type:    EventWin,
		Details: result,
	}
}
