package pathfind

import (
	"github.com/gammazero/deque"

	"github.com/they4kman/gosnake/director/random"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/util/collections"
)

// Director follows a shortest path to the food, treating the current body as
// fixed walls. When the food is unreachable it heads for the largest open area,
// and when no move survives it leaves steering to a random director.
type Director struct {
	fallback *random.Director
}

func New(seed int64) *Director {
	return &Director{fallback: random.New(seed)}
}

func (director *Director) Steer(view game.View) game.Direction {
	if dir, ok := FirstStep(view); ok {
		return dir
	}
	if dir, ok := Roomiest(view); ok {
		return dir
	}
	return director.fallback.Steer(view)
}

// Roomiest returns the safe move whose landing cell has the most free cells
// reachable from it. Ties go to the earliest in game.Directions.
func Roomiest(view game.View) (game.Direction, bool) {
	best, bestArea := game.NoDirection, 0
	for _, dir := range game.SafeMoves(view) {
		if area := game.OpenArea(view, view.Head().Add(dir)); area > bestArea {
			best, bestArea = dir, area
		}
	}
	return best, bestArea > 0
}

type step struct {
	point game.Point
	first game.Direction
}

// FirstStep runs a breadth-first search from the head to the food and
// returns the opening move of a shortest path
func FirstStep(view game.View) (game.Direction, bool) {
	if len(view.Snake) == 0 {
		return game.NoDirection, false
	}

	blocked := collections.NewSet(view.Snake...)
	head := view.Head()
	visited := collections.NewSet(head)

	var queue deque.Deque
	for _, dir := range game.SafeMoves(view) {
		next := head.Add(dir)
		visited.Add(next)
		queue.PushBack(step{next, dir})
	}

	for queue.Len() > 0 {
		current := queue.PopFront().(step)
		if current.point == view.Food {
			return current.first, true
		}

		for _, dir := range game.Directions {
			next := current.point.Add(dir)
			if !next.In(view.TileCount) || blocked.Contains(next) || visited.Contains(next) {
				continue
			}
			visited.Add(next)
			queue.PushBack(step{next, current.first})
		}
	}

	return game.NoDirection, false
}
