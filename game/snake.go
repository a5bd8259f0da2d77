package game

import (
	"github.com/gammazero/deque"
	"github.com/they4kman/gosnake/util/collections"
)

// Snake is an ordered run of cells, head first. The occupancy set mirrors the
// body so collision checks don't walk the deque.
type Snake struct {
	body     deque.Deque
	occupied collections.Set[Point]
}

func NewSnake(cells ...Point) *Snake {
	snake := &Snake{occupied: make(collections.Set[Point])}
	for _, cell := range cells {
		snake.body.PushBack(cell)
		snake.occupied.Add(cell)
	}
	return snake
}

func (snake *Snake) Len() int {
	return snake.body.Len()
}

func (snake *Snake) Head() Point {
	return snake.body.Front().(Point)
}

func (snake *Snake) Tail() Point {
	return snake.body.Back().(Point)
}

func (snake *Snake) At(i int) Point {
	return snake.body.At(i).(Point)
}

func (snake *Snake) Contains(point Point) bool {
	return snake.occupied.Contains(point)
}

// Cells returns a copy of the body, head first
func (snake *Snake) Cells() []Point {
	cells := make([]Point, snake.body.Len())
	for i := range cells {
		cells[i] = snake.At(i)
	}
	return cells
}

// overlaps reports whether two segments share a cell
func (snake *Snake) overlaps() bool {
	return len(snake.occupied) != snake.body.Len()
}

func (snake *Snake) pushHead(point Point) {
	snake.body.PushFront(point)
	snake.occupied.Add(point)
}

func (snake *Snake) popTail() Point {
	tail := snake.body.PopBack().(Point)
	snake.occupied.Remove(tail)
	return tail
}
