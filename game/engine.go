package game

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

// Engine owns one game and the loop that ticks it. Control calls may come from
// any goroutine; they are serialized with the tick, and observers are notified
// after the engine lock is released, in the order the state changed.
type Engine struct {
	mu sync.Mutex

	state     *State
	highScore int
	seed      int64

	tickInterval time.Duration
	victoryScore int
	spawner      FoodSpawner

	scheduler Scheduler
	ticker    Ticker
	// Bumped whenever the loop starts or stops, so a stopped ticker's late
	// firing can't move the snake
	generation uint64

	store    Store
	director Director
	logger   logrus.FieldLogger

	observersMu sync.RWMutex
	observers   []Observer

	// Events wait here in state order until a single goroutine delivers them
	dispatchMu  sync.Mutex
	pending     []Event
	dispatching bool
}

func NewEngine(config GameConfig) (*Engine, error) {
	if config.Snapshot != nil && config.Snapshot.TileCount > 0 {
		config.SurfaceSize = config.Snapshot.TileCount * config.CellSize
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	config = config.withDefaults()

	seed := config.Seed
	if config.Snapshot != nil {
		seed = config.Snapshot.Seed
	}

	engine := &Engine{
		seed:         seed,
		tickInterval: config.TickInterval,
		victoryScore: config.VictoryScore,
		spawner:      NewRandomSpawner(rand.New(rand.NewSource(uint64(seed))), config.MaxFoodAttempts),
		scheduler:    config.Scheduler,
		store:        config.Store,
		director:     config.Director,
		logger:       config.Logger.WithField("component", "engine"),
		observers:    append([]Observer(nil), config.Observers...),
	}
	engine.highScore = loadHighScore(engine.store, engine.logger)

	if config.Snapshot != nil {
		engine.state = config.Snapshot.restore()
		if engine.state.TileCount <= 0 {
			engine.state.TileCount = config.TileCount()
		}
		if config.Snapshot.HighScore > engine.highScore {
			engine.highScore = config.Snapshot.HighScore
		}
		engine.logger.WithFields(logrus.Fields{
			"phase": engine.state.Phase,
			"score": engine.state.Score,
		}).Info("restored game from snapshot")
	} else {
		engine.state = NewState(config.TileCount(), engine.spawner)
	}

	return engine, nil
}

// Subscribe adds an observer. Observers must tolerate being called from the
// ticking goroutine.
func (engine *Engine) Subscribe(observer Observer) {
	engine.observersMu.Lock()
	defer engine.observersMu.Unlock()
	engine.observers = append(engine.observers, observer)
}

// Start begins or resumes play. It is valid from NotStarted and Paused and a
// no-op elsewhere. An inconsistent state is replaced with a fresh one first.
func (engine *Engine) Start() {
	engine.apply(engine.start)
}

func (engine *Engine) Pause() {
	engine.apply(engine.pause)
}

func (engine *Engine) Resume() {
	engine.apply(func() []EventKind {
		if engine.state.Phase != Paused {
			return nil
		}
		return engine.start()
	})
}

func (engine *Engine) TogglePause() {
	engine.apply(func() []EventKind {
		switch engine.state.Phase {
		case Running:
			return engine.pause()
		case Paused:
			return engine.start()
		}
		return nil
	})
}

// ChangeDirection sets the heading used by the next tick. Ignored unless
// Running; a reversal of the current non-zero heading is rejected.
func (engine *Engine) ChangeDirection(dir Direction) {
	engine.apply(func() []EventKind {
		engine.changeDirection(dir)
		return nil
	})
}

// Restart discards the current game, whatever its phase
func (engine *Engine) Restart() {
	engine.apply(func() []EventKind {
		engine.stopLoop()
		engine.state = NewState(engine.state.TileCount, engine.spawner)
		engine.logger.Debug("restarted")
		return []EventKind{EventReset}
	})
}

// Continue resumes play after victory with the same snake, food and score
func (engine *Engine) Continue() {
	engine.apply(func() []EventKind {
		if engine.state.Phase != Victory {
			return nil
		}
		engine.state.Phase = Running
		engine.startLoop()
		engine.logger.Debug("continuing after victory")
		return []EventKind{EventContinued}
	})
}

// Close stops the tick loop without changing the phase
func (engine *Engine) Close() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.stopLoop()
}

func (engine *Engine) View() View {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.view()
}

func (engine *Engine) Phase() Phase {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state.Phase
}

func (engine *Engine) Score() int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state.Score
}

func (engine *Engine) HighScore() int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.highScore
}

func (engine *Engine) Snapshot() *GameSnapshot {
	return SnapshotFromView(engine.View())
}

func (engine *Engine) apply(op func() []EventKind) {
	engine.mu.Lock()
	if kinds := op(); len(kinds) > 0 {
		view := engine.view()
		engine.dispatchMu.Lock()
		for _, kind := range kinds {
			engine.pending = append(engine.pending, Event{Kind: kind, View: view})
		}
		engine.dispatchMu.Unlock()
	}
	engine.mu.Unlock()

	engine.dispatch()
}

// dispatch delivers pending events unless another goroutine, or an outer call
// on this one, is already doing so; that call picks up whatever was queued.
func (engine *Engine) dispatch() {
	engine.dispatchMu.Lock()
	if engine.dispatching {
		engine.dispatchMu.Unlock()
		return
	}
	engine.dispatching = true

	for len(engine.pending) > 0 {
		event := engine.pending[0]
		engine.pending = engine.pending[1:]
		engine.dispatchMu.Unlock()

		engine.observersMu.RLock()
		observers := engine.observers
		engine.observersMu.RUnlock()
		for _, observer := range observers {
			observer.Observe(event)
		}

		engine.dispatchMu.Lock()
	}

	engine.dispatching = false
	engine.dispatchMu.Unlock()
}

func (engine *Engine) view() View {
	state := engine.state
	view := View{
		Seed:         engine.seed,
		TileCount:    state.TileCount,
		Food:         state.Food,
		Dir:          state.Dir,
		Score:        state.Score,
		HighScore:    engine.highScore,
		Phase:        state.Phase,
		VictoryShown: state.VictoryShown,
	}
	if state.Snake != nil {
		view.Snake = state.Snake.Cells()
	}
	return view
}

func (engine *Engine) start() []EventKind {
	phase := engine.state.Phase
	if phase != NotStarted && phase != Paused {
		return nil
	}

	var kinds []EventKind
	if !engine.state.Valid() {
		engine.logger.WithField("phase", phase).Warn("invalid game state, resetting")
		engine.state = NewState(engine.state.TileCount, engine.spawner)
		kinds = append(kinds, EventRepaired)
	}

	if engine.state.Phase == Paused {
		kinds = append(kinds, EventResumed)
	} else {
		kinds = append(kinds, EventStarted)
	}

	engine.state.Phase = Running
	engine.startLoop()
	engine.logger.Debug("running")
	return kinds
}

func (engine *Engine) pause() []EventKind {
	if engine.state.Phase != Running {
		return nil
	}
	engine.state.Phase = Paused
	engine.stopLoop()
	engine.logger.Debug("paused")
	return []EventKind{EventPaused}
}

func (engine *Engine) changeDirection(dir Direction) {
	if engine.state.Phase != Running {
		return
	}
	if !engine.state.setDirection(dir) {
		engine.logger.WithFields(logrus.Fields{
			"current":   engine.state.Dir,
			"requested": dir,
		}).Debug("rejected direction change")
	}
}

func (engine *Engine) tick(generation uint64) {
	engine.apply(func() []EventKind {
		if generation != engine.generation || engine.state.Phase != Running {
			return nil
		}

		if engine.director != nil {
			engine.changeDirection(engine.director.Steer(engine.view()))
		}

		result := engine.state.Step(engine.spawner, engine.victoryScore)

		switch result.Outcome {
		case Moved:
			return []EventKind{EventMoved}

		case Ate, Won:
			kinds := []EventKind{EventAte}
			if engine.state.Score > engine.highScore {
				engine.highScore = engine.state.Score
				saveHighScore(engine.store, engine.highScore, engine.logger)
				kinds = append(kinds, EventHighScore)
			}
			if result.Outcome == Won {
				engine.stopLoop()
				engine.logger.WithField("score", engine.state.Score).Info("victory")
				kinds = append(kinds, EventVictory)
			}
			return kinds

		case HitWall, HitSelf:
			engine.stopLoop()
			engine.logger.WithFields(logrus.Fields{
				"cause": result.Outcome,
				"head":  result.Head,
				"score": engine.state.Score,
			}).Info("game over")
			return []EventKind{EventGameOver}
		}

		return nil
	})
}

// startLoop starts ticking unless a loop is already live
func (engine *Engine) startLoop() {
	if engine.ticker != nil {
		return
	}
	engine.generation++
	generation := engine.generation
	engine.ticker = engine.scheduler.Every(engine.tickInterval, func() {
		engine.tick(generation)
	})
}

func (engine *Engine) stopLoop() {
	if engine.ticker == nil {
		return
	}
	engine.ticker.Stop()
	engine.ticker = nil
	engine.generation++
}
