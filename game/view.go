package game

import "fmt"

// View is a copy of everything a collaborator may observe about a game
type View struct {
	Seed         int64
	TileCount    int
	Snake        []Point
	Food         Point
	Dir          Direction
	Score        int
	HighScore    int
	Phase        Phase
	VictoryShown bool
}

func (view View) Head() Point {
	return view.Snake[0]
}

// Waiting reports whether the game runs but the snake hasn't been given a
// direction yet
func (view View) Waiting() bool {
	return view.Phase == Running && view.Dir.IsZero()
}

type Overlay struct {
	Visible bool
	Title   string
	Message string
}

// Overlay returns the panel shown over the board. It is hidden while Running
// and in Victory, which has its own modal.
func (view View) Overlay() Overlay {
	switch view.Phase {
	case NotStarted:
		return Overlay{
			Visible: true,
			Title:   "Snake Game",
			Message: "Press SPACE to begin. Use arrow keys or WASD to control the snake.",
		}
	case Paused:
		return Overlay{
			Visible: true,
			Title:   "Game Paused",
			Message: "Press SPACE to continue",
		}
	case GameOver:
		return Overlay{
			Visible: true,
			Title:   "Game Over!",
			Message: fmt.Sprintf("Final Score: %d", view.Score),
		}
	}
	return Overlay{}
}

func (view View) VictoryModal() bool {
	return view.Phase == Victory
}
