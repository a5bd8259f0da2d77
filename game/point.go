package game

import "fmt"

type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (point Point) Add(dir Direction) Point {
	return Point{point.X + dir.DX, point.Y + dir.DY}
}

// In reports whether the point lies on a square grid of the given side
func (point Point) In(tileCount int) bool {
	return point.X >= 0 && point.Y >= 0 && point.X < tileCount && point.Y < tileCount
}

func (point Point) String() string {
	return fmt.Sprintf("(%d, %d)", point.X, point.Y)
}

type Direction struct {
	DX int `yaml:"dx"`
	DY int `yaml:"dy"`
}

var (
	NoDirection = Direction{0, 0}
	Up          = Direction{0, -1}
	Down        = Direction{0, 1}
	Left        = Direction{-1, 0}
	Right       = Direction{1, 0}
)

var Directions = []Direction{Up, Right, Down, Left}

func (dir Direction) Opposite() Direction {
	return Direction{-dir.DX, -dir.DY}
}

func (dir Direction) IsZero() bool {
	return dir == NoDirection
}

// IsUnit reports whether dir is one of the four moving directions
func (dir Direction) IsUnit() bool {
	switch dir {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (dir Direction) String() string {
	switch dir {
	case NoDirection:
		return "none"
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d, %d)", dir.DX, dir.DY)
}
