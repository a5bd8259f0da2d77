package game

type EventKind int

const (
	// Fresh game, after construction or Restart
	EventReset EventKind = iota
	EventStarted
	EventPaused
	EventResumed
	EventMoved
	EventAte
	EventHighScore
	EventGameOver
	EventVictory
	EventContinued
	// Start found the state inconsistent and replaced it with a fresh one
	EventRepaired
)

var eventNames = map[EventKind]string{
	EventReset:     "reset",
	EventStarted:   "started",
	EventPaused:    "paused",
	EventResumed:   "resumed",
	EventMoved:     "moved",
	EventAte:       "ate",
	EventHighScore: "high-score",
	EventGameOver:  "game-over",
	EventVictory:   "victory",
	EventContinued: "continued",
	EventRepaired:  "repaired",
}

func (kind EventKind) String() string {
	if name, ok := eventNames[kind]; ok {
		return name
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	// State right after the operation that produced the event
	View View
}

type Observer interface {
	Observe(event Event)
}

type ObserverFunc func(event Event)

func (f ObserverFunc) Observe(event Event) {
	f(event)
}
