package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventPhaseChange
	EventDraw
	EventPlay
	EventFuse
	EventBattle
	EventDamageCalc
	EventDestroy
	EventLPChange
	EventPass
	EventDeckOut
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventPhaseChange:
		return "PhaseChange"
	case EventDraw:
		return "Draw"
	case EventPlay:
		return "Play"
	case EventFuse:
		return "Fuse"
	case EventBattle:
		return "Battle"
	case EventDamageCalc:
		return "DamageCalc"
	case EventDestroy:
		return "Destroy"
	case EventLPChange:
		return "LPChange"
	case EventPass:
		return "Pass"
	case EventDeckOut:
		return "DeckOut"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a duel.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Main")
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
