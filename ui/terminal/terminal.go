package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/input"
)

// Each tile is two columns wide so the board looks square
const tileWidth = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightSkyBlue)
	panelStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

// Terminal draws the game into a tcell screen and feeds it key presses. It is
// also an Observer: engine events are posted to the screen's event queue so
// that only the Run goroutine touches the screen.
type Terminal struct {
	screen tcell.Screen
	engine *game.Engine
	logger logrus.FieldLogger
}

// New wraps an initialized screen. The caller keeps ownership of the screen.
func New(screen tcell.Screen, engine *game.Engine, logger logrus.FieldLogger) *Terminal {
	return &Terminal{
		screen: screen,
		engine: engine,
		logger: logger.WithField("component", "terminal"),
	}
}

func (term *Terminal) Observe(event game.Event) {
	if err := term.screen.PostEvent(tcell.NewEventInterrupt(event.Kind)); err != nil {
		term.logger.WithError(err).WithField("event", event.Kind).Debug("dropped redraw")
	}
}

// Run processes screen events until a quit key is pressed or the screen is
// finalized
func (term *Terminal) Run() error {
	term.Draw(term.engine.View())

	for {
		switch ev := term.screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			term.screen.Sync()
			term.Draw(term.engine.View())

		case *tcell.EventInterrupt:
			// Draw the engine's current state; the event may have been overtaken
			term.Draw(term.engine.View())

		case *tcell.EventKey:
			intent := keyIntent(ev)
			if intent.Kind == input.Quit {
				term.logger.Debug("quit")
				return nil
			}
			input.Dispatch(term.engine, term.engine.Phase(), intent)
		}
	}
}

func keyIntent(ev *tcell.EventKey) input.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.MoveIntent(game.Up)
	case tcell.KeyDown:
		return input.MoveIntent(game.Down)
	case tcell.KeyLeft:
		return input.MoveIntent(game.Left)
	case tcell.KeyRight:
		return input.MoveIntent(game.Right)
	case tcell.KeyEnter:
		return input.Intent{Kind: input.Continue}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Intent{Kind: input.Quit}
	case tcell.KeyRune:
		return input.RuneIntent(ev.Rune())
	}
	return input.Intent{}
}

// cellOrigin is the screen position of a tile's left column
func cellOrigin(p game.Point) (int, int) {
	return 1 + p.X*tileWidth, 2 + p.Y
}

func (term *Terminal) Draw(view game.View) {
	screen := term.screen
	screen.Clear()

	drawText(screen, 0, 0, tcell.StyleDefault,
		fmt.Sprintf("Score: %d   High Score: %d", view.Score, view.HighScore))

	width := view.TileCount*tileWidth + 2
	height := view.TileCount + 2
	for x := 0; x < width; x++ {
		screen.SetContent(x, 1, '─', nil, borderStyle)
		screen.SetContent(x, height, '─', nil, borderStyle)
	}
	for y := 1; y <= height; y++ {
		screen.SetContent(0, y, '│', nil, borderStyle)
		screen.SetContent(width-1, y, '│', nil, borderStyle)
	}
	screen.SetContent(0, 1, '┌', nil, borderStyle)
	screen.SetContent(width-1, 1, '┐', nil, borderStyle)
	screen.SetContent(0, height, '└', nil, borderStyle)
	screen.SetContent(width-1, height, '┘', nil, borderStyle)

	x, y := cellOrigin(view.Food)
	screen.SetContent(x, y, '●', nil, foodStyle)

	for i := len(view.Snake) - 1; i >= 0; i-- {
		x, y := cellOrigin(view.Snake[i])
		style, r := bodyStyle, '█'
		if i == 0 {
			style, r = headStyle, '▓'
			if view.Waiting() {
				style = style.Blink(true)
			}
		}
		screen.SetContent(x, y, r, nil, style)
		screen.SetContent(x+1, y, r, nil, style)
	}

	var lines []string
	if overlay := view.Overlay(); overlay.Visible {
		lines = []string{overlay.Title, "", overlay.Message}
	} else if view.VictoryModal() {
		lines = []string{"You Win!", "", fmt.Sprintf("Score: %d", view.Score), "ENTER to keep playing, R to restart"}
	}
	drawPanel(screen, width, height, lines)

	screen.Show()
}

// drawPanel centers lines over the board
func drawPanel(screen tcell.Screen, width, height int, lines []string) {
	if len(lines) == 0 {
		return
	}

	top := 1 + (height-len(lines))/2
	for i, line := range lines {
		runes := []rune(" " + line + " ")
		left := (width - len(runes)) / 2
		if left < 0 {
			left = 0
		}
		drawText(screen, left, top+i, panelStyle, string(runes))
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
