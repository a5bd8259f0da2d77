// Shamelessly stolen from: https://github.com/hinshun/floodfill

package game

import (
	"sync"
	"sync/atomic"

	"github.com/they4kman/gosnake/util/collections"
)

const DefaultParallelism = 4

type Visitor func(Point)

// flood visits start and every cell reachable from it through cells accepted
// by open. Visits run concurrently, at most parallelism at a time.
func flood(start Point, parallelism int, visit Visitor, open func(Point) bool) {
	visited := collections.NewSet[Point]()
	visitQueue := make([]Point, 0)
	visitLock := sync.Mutex{}
	permitCh := make(chan struct{}, parallelism)
	wg := sync.WaitGroup{}

	var visitNext func()

	enqueue := func(p Point) {
		visitLock.Lock()
		defer visitLock.Unlock()

		if visited.Contains(p) || !open(p) {
			return
		}

		visited.Add(p)
		visitQueue = append(visitQueue, p)
		wg.Add(1)

		go visitNext()
	}

	dequeue := func() Point {
		visitLock.Lock()
		defer visitLock.Unlock()

		p := visitQueue[0]
		visitQueue = visitQueue[1:]

		return p
	}

	visitNext = func() {
		defer wg.Done()

		<-permitCh
		defer func() {
			permitCh <- struct{}{}
		}()

		p := dequeue()
		visit(p)

		for _, dir := range Directions {
			enqueue(p.Add(dir))
		}
	}

	for i := 0; i < parallelism; i++ {
		permitCh <- struct{}{}
	}

	enqueue(start)
	wg.Wait()
}

// OpenArea counts the free cells reachable from p, p included, treating the
// whole current body as walls. A blocked or off-board p has no area.
func OpenArea(view View, p Point) int {
	body := collections.NewSet(view.Snake...)
	open := func(q Point) bool {
		return q.In(view.TileCount) && !body.Contains(q)
	}

	var area int64
	flood(p, DefaultParallelism, func(Point) {
		atomic.AddInt64(&area, 1)
	}, open)
	return int(area)
}
