package game

import (
	"sync"
	"time"
)

// Ticker is a handle on a repeating task. Stop is idempotent and safe to call
// from within the task itself.
type Ticker interface {
	Stop()
}

// Scheduler starts repeating tasks
type Scheduler interface {
	Every(interval time.Duration, task func()) Ticker
}

// RealtimeScheduler runs each task on its own goroutine driven by a time.Ticker
type RealtimeScheduler struct{}

func (RealtimeScheduler) Every(interval time.Duration, task func()) Ticker {
	ticker := &realtimeTicker{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go ticker.run(task)
	return ticker
}

type realtimeTicker struct {
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
}

func (ticker *realtimeTicker) run(task func()) {
	for {
		select {
		case <-ticker.done:
			return
		case <-ticker.ticker.C:
			task()
		}
	}
}

func (ticker *realtimeTicker) Stop() {
	ticker.stopOnce.Do(func() {
		ticker.ticker.Stop()
		close(ticker.done)
	})
}

// ManualScheduler fires tasks only when told to. Intervals are ignored: every
// live task fires once per Advance step.
type ManualScheduler struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

type manualTicker struct {
	scheduler *ManualScheduler
	task      func()
	stopped   bool
}

func (scheduler *ManualScheduler) Every(interval time.Duration, task func()) Ticker {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	ticker := &manualTicker{scheduler: scheduler, task: task}
	scheduler.tickers = append(scheduler.tickers, ticker)
	return ticker
}

func (ticker *manualTicker) Stop() {
	scheduler := ticker.scheduler
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()

	if ticker.stopped {
		return
	}
	ticker.stopped = true

	for i, other := range scheduler.tickers {
		if other == ticker {
			scheduler.tickers = append(scheduler.tickers[:i], scheduler.tickers[i+1:]...)
			break
		}
	}
}

// Active returns the number of live tickers
func (scheduler *ManualScheduler) Active() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.tickers)
}

// Advance runs steps rounds, firing each live ticker once per round. Tasks run
// without the scheduler lock held, so they may start and stop tickers.
func (scheduler *ManualScheduler) Advance(steps int) {
	for step := 0; step < steps; step++ {
		scheduler.mu.Lock()
		round := append([]*manualTicker(nil), scheduler.tickers...)
		scheduler.mu.Unlock()

		for _, ticker := range round {
			if ticker.isStopped() {
				continue
			}
			ticker.task()
		}
	}
}

func (ticker *manualTicker) isStopped() bool {
	ticker.scheduler.mu.Lock()
	defer ticker.scheduler.mu.Unlock()
	return ticker.stopped
}
