package game

type Outcome int

const (
	Idle Outcome = iota
	Moved
	Ate
	HitWall
	HitSelf
	Won
)

func (outcome Outcome) String() string {
	switch outcome {
	case Idle:
		return "idle"
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case HitWall:
		return "hit-wall"
	case HitSelf:
		return "hit-self"
	case Won:
		return "won"
	}
	return "unknown"
}

type StepResult struct {
	Outcome Outcome
	// Candidate head for this step; unset when Idle
	Head Point
}

// State holds everything that changes during a game. Step is the whole
// simulation; the Engine only adds scheduling, persistence and events.
type State struct {
	TileCount int
	Snake     *Snake
	Food      Point
	Dir       Direction
	Score     int
	Phase     Phase

	// Set once victory has fired; only a fresh state clears it
	VictoryShown bool
}

// NewState returns the initial state: one centered segment, not moving, food
// placed by the spawner.
func NewState(tileCount int, spawner FoodSpawner) *State {
	state := &State{
		TileCount: tileCount,
		Snake:     NewSnake(Point{tileCount / 2, tileCount / 2}),
		Dir:       NoDirection,
		Phase:     NotStarted,
	}
	state.Food = spawner.Spawn(state.Snake, tileCount)
	return state
}

// Valid checks the invariants Start relies on
func (state *State) Valid() bool {
	if state.Snake == nil || state.Snake.Len() == 0 || state.Snake.overlaps() {
		return false
	}
	if !state.Snake.Head().In(state.TileCount) {
		return false
	}
	return state.Food.In(state.TileCount)
}

// Step advances the snake by one cell. It does nothing unless the phase is
// Running and a direction has been set.
//
// The self-collision check runs against the whole body before the tail is
// removed: moving into the cell the tail is about to leave is fatal.
func (state *State) Step(spawner FoodSpawner, victoryScore int) StepResult {
	if state.Phase != Running || state.Dir.IsZero() {
		return StepResult{Outcome: Idle}
	}

	head := state.Snake.Head().Add(state.Dir)

	if !head.In(state.TileCount) {
		state.Phase = GameOver
		return StepResult{Outcome: HitWall, Head: head}
	}
	if state.Snake.Contains(head) {
		state.Phase = GameOver
		return StepResult{Outcome: HitSelf, Head: head}
	}

	state.Snake.pushHead(head)

	if head != state.Food {
		state.Snake.popTail()
		return StepResult{Outcome: Moved, Head: head}
	}

	state.Score++
	state.Food = spawner.Spawn(state.Snake, state.TileCount)

	if state.Score == victoryScore && !state.VictoryShown {
		state.VictoryShown = true
		state.Phase = Victory
		return StepResult{Outcome: Won, Head: head}
	}
	return StepResult{Outcome: Ate, Head: head}
}

// setDirection applies a heading change, rejecting a reversal of the current
// non-zero heading. Returns whether the change was accepted.
func (state *State) setDirection(dir Direction) bool {
	if !dir.IsUnit() {
		return false
	}
	if !state.Dir.IsZero() && dir == state.Dir.Opposite() {
		return false
	}
	state.Dir = dir
	return true
}
