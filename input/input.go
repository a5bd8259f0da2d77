package input

import (
	"math"
	"unicode"

	"github.com/they4kman/gosnake/game"
)

// MinSwipeDistance is the shortest drag, in pixels, read as a swipe
const MinSwipeDistance = 30

type IntentKind int

const (
	NoIntent IntentKind = iota
	Move
	// Space: start, resume or pause depending on the phase
	Primary
	Restart
	Continue
	Quit
)

type Intent struct {
	Kind IntentKind
	Dir  game.Direction
}

func MoveIntent(dir game.Direction) Intent {
	return Intent{Kind: Move, Dir: dir}
}

// Controller is the part of the engine an input source drives
type Controller interface {
	Start()
	Pause()
	ChangeDirection(dir game.Direction)
	Restart()
	Continue()
}

// Dispatch turns an intent into at most one engine call for the given phase
func Dispatch(ctl Controller, phase game.Phase, intent Intent) {
	switch intent.Kind {
	case Move:
		if phase == game.Running {
			ctl.ChangeDirection(intent.Dir)
		}
	case Primary:
		switch phase {
		case game.NotStarted, game.Paused:
			ctl.Start()
		case game.Running:
			ctl.Pause()
		}
	case Restart:
		ctl.Restart()
	case Continue:
		if phase == game.Victory {
			ctl.Continue()
		}
	}
}

// RuneIntent maps the letter and space keys shared by every frontend
func RuneIntent(r rune) Intent {
	switch unicode.ToLower(r) {
	case 'w':
		return MoveIntent(game.Up)
	case 'a':
		return MoveIntent(game.Left)
	case 's':
		return MoveIntent(game.Down)
	case 'd':
		return MoveIntent(game.Right)
	case ' ':
		return Intent{Kind: Primary}
	case 'r':
		return Intent{Kind: Restart}
	case 'c':
		return Intent{Kind: Continue}
	case 'q':
		return Intent{Kind: Quit}
	}
	return Intent{}
}

// Swipe reads a drag as a direction. dx grows rightward and dy downward; the
// dominant axis wins and drags not longer than MinSwipeDistance are ignored.
func Swipe(dx, dy float64) (game.Direction, bool) {
	if math.Abs(dx) > math.Abs(dy) {
		if math.Abs(dx) <= MinSwipeDistance {
			return game.NoDirection, false
		}
		if dx > 0 {
			return game.Right, true
		}
		return game.Left, true
	}

	if math.Abs(dy) <= MinSwipeDistance {
		return game.NoDirection, false
	}
	if dy > 0 {
		return game.Down, true
	}
	return game.Up, true
}
