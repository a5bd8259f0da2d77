package window

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/input"
)

const (
	headerHeight   = 50
	basicFontWidth = 7
)

var (
	backgroundColor = colornames.Whitesmoke
	boardColor      = colornames.White
	bodyColor       = pixel.RGB(0, 0.4, 0.8)
	headColor       = pixel.RGB(0, 0.6, 1)
	foodColor       = pixel.RGB(0.3, 0.7, 0.9)
)

type keyBinding struct {
	button pixelgl.Button
	intent input.Intent
}

var keyBindings = []keyBinding{
	{pixelgl.KeyUp, input.MoveIntent(game.Up)},
	{pixelgl.KeyW, input.MoveIntent(game.Up)},
	{pixelgl.KeyDown, input.MoveIntent(game.Down)},
	{pixelgl.KeyS, input.MoveIntent(game.Down)},
	{pixelgl.KeyLeft, input.MoveIntent(game.Left)},
	{pixelgl.KeyA, input.MoveIntent(game.Left)},
	{pixelgl.KeyRight, input.MoveIntent(game.Right)},
	{pixelgl.KeyD, input.MoveIntent(game.Right)},
	{pixelgl.KeySpace, input.Intent{Kind: input.Primary}},
	{pixelgl.KeyR, input.Intent{Kind: input.Restart}},
	{pixelgl.KeyEnter, input.Intent{Kind: input.Continue}},
	{pixelgl.KeyC, input.Intent{Kind: input.Continue}},
	{pixelgl.KeyEscape, input.Intent{Kind: input.Quit}},
	{pixelgl.KeyQ, input.Intent{Kind: input.Quit}},
}

// frameIntents lists this frame's intents in binding order. Only moves follow
// key repeat; holding Space must not keep toggling pause.
func frameIntents(justPressed, repeated func(pixelgl.Button) bool) []input.Intent {
	var intents []input.Intent
	for _, binding := range keyBindings {
		if justPressed(binding.button) || (binding.intent.Kind == input.Move && repeated(binding.button)) {
			intents = append(intents, binding.intent)
		}
	}
	return intents
}

// Run shows the game in a window until it is closed. It must be called from
// the function passed to pixelgl.Run.
func Run(engine *game.Engine, cellSize int, logger logrus.FieldLogger) error {
	logger = logger.WithField("component", "window")

	view := engine.View()
	boardSide := float64(view.TileCount * cellSize)

	cfg := pixelgl.WindowConfig{
		Title:  "gosnake",
		Bounds: pixel.R(0, 0, boardSide, boardSide+headerHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return errors.Wrap(err, "opening window")
	}
	defer win.Destroy()

	board := layout{
		topLeft:  win.Bounds().Vertices()[1].Sub(pixel.V(0, headerHeight)),
		cellSize: float64(cellSize),
		side:     boardSide,
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	scoreText := text.New(win.Bounds().Vertices()[1].Add(pixel.V(20, -30)), basicAtlas)
	panelText := text.New(pixel.ZV, basicAtlas)
	imd := imdraw.New(nil)

	var (
		frames = 0
		second = time.Tick(time.Second)

		dragging  bool
		dragStart pixel.Vec

		lastPhase  = view.Phase
		shakeStart time.Time
	)

	logger.Debug("window open")
	for !win.Closed() {
		win.Update()
		win.Clear(backgroundColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		view = engine.View()
		now := time.Now()
		if view.Phase == game.Victory && lastPhase != game.Victory {
			shakeStart = now
		}
		lastPhase = view.Phase

		shaken := board
		if !shakeStart.IsZero() {
			shaken.topLeft = board.topLeft.Add(pixel.V(shakeOffset(now.Sub(shakeStart)), 0))
		}

		scoreText.Clear()
		scoreText.Color = colornames.Black
		fmt.Fprintf(scoreText, "Score: %d   High Score: %d", view.Score, view.HighScore)
		scoreText.Draw(win, pixel.IM)

		imd.Clear()
		shaken.drawView(imd, view, now)
		imd.Draw(win)

		if overlay := view.Overlay(); overlay.Visible {
			drawPanel(win, shaken, panelText, overlay.Title, overlay.Message)
		} else if view.VictoryModal() {
			drawPanel(win, shaken, panelText, "You Win!",
				fmt.Sprintf("Score: %d\nPress ENTER to keep playing or R to restart", view.Score))
		}

		for _, intent := range frameIntents(win.JustPressed, win.Repeated) {
			if intent.Kind == input.Quit {
				win.SetClosed(true)
				continue
			}
			input.Dispatch(engine, engine.Phase(), intent)
		}

		if win.JustPressed(pixelgl.MouseButtonLeft) {
			dragging = true
			dragStart = win.MousePosition()
		}
		if dragging && win.JustReleased(pixelgl.MouseButtonLeft) {
			dragging = false
			if dir, ok := dragDirection(dragStart, win.MousePosition()); ok {
				input.Dispatch(engine, engine.Phase(), input.MoveIntent(dir))
			}
		}
	}

	logger.Debug("window closed")
	return nil
}

// dragDirection reads a mouse drag as a swipe. Window coordinates grow upward
// while swipes are measured downward.
func dragDirection(start, end pixel.Vec) (game.Direction, bool) {
	delta := end.Sub(start)
	return input.Swipe(delta.X, -delta.Y)
}

type layout struct {
	topLeft  pixel.Vec
	cellSize float64
	side     float64
}

// tile returns the window-space rectangle of a grid cell, inset by one pixel
func (board layout) tile(p game.Point) pixel.Rect {
	min := board.topLeft.Add(pixel.V(
		float64(p.X)*board.cellSize,
		-float64(p.Y+1)*board.cellSize,
	))
	return pixel.R(min.X+1, min.Y+1, min.X+board.cellSize-1, min.Y+board.cellSize-1)
}

func (board layout) center() pixel.Vec {
	return board.topLeft.Add(pixel.V(board.side/2, -board.side/2))
}

func (board layout) drawView(imd *imdraw.IMDraw, view game.View, now time.Time) {
	imd.Color = boardColor
	imd.Push(board.topLeft.Sub(pixel.V(0, board.side)), board.topLeft.Add(pixel.V(board.side, 0)))
	imd.Rectangle(0)

	for i := len(view.Snake) - 1; i >= 0; i-- {
		color := bodyColor
		if i == 0 {
			color = headColor
			if view.Waiting() {
				color = color.Mul(pixel.Alpha(pulse(now)))
			}
		}

		rect := board.tile(view.Snake[i])
		imd.Color = color
		imd.Push(rect.Min, rect.Max)
		imd.Rectangle(0)
	}

	imd.Color = foodColor
	imd.Push(board.tile(view.Food).Center())
	imd.Circle(board.cellSize/2-2, 0)
}

const (
	shakeCycle     = 500 * time.Millisecond
	shakeCycles    = 3
	shakeAmplitude = 5
)

// shakeOffset is the horizontal board offset for the victory shake, elapsed
// after it began: out to the left at a quarter cycle, to the right at three
// quarters, back to rest at the end of each cycle
func shakeOffset(elapsed time.Duration) float64 {
	if elapsed < 0 || elapsed >= shakeCycles*shakeCycle {
		return 0
	}

	t := float64(elapsed%shakeCycle) / float64(shakeCycle)
	switch {
	case t < 0.25:
		return -shakeAmplitude * t / 0.25
	case t < 0.75:
		return -shakeAmplitude + 2*shakeAmplitude*(t-0.25)/0.5
	default:
		return shakeAmplitude * (1 - t) / 0.25
	}
}

// pulse oscillates between 0.8 and 1 to draw attention to a waiting head
func pulse(now time.Time) float64 {
	ms := float64(now.UnixNano()) / float64(time.Millisecond)
	return math.Sin(ms*0.005)*0.1 + 0.9
}

func drawPanel(win *pixelgl.Window, board layout, txt *text.Text, title, message string) {
	imd := imdraw.New(nil)
	imd.Color = pixel.RGB(0, 0, 0).Mul(pixel.Alpha(0.6))
	imd.Push(board.topLeft.Sub(pixel.V(0, board.side)), board.topLeft.Add(pixel.V(board.side, 0)))
	imd.Rectangle(0)
	imd.Draw(win)

	lines := []string{title, ""}
	for _, paragraph := range strings.Split(message, "\n") {
		lines = append(lines, wrap(paragraph, int(board.side/basicFontWidth)-2)...)
	}

	txt.Clear()
	txt.Color = colornames.White
	for _, line := range lines {
		txt.Dot.X -= txt.BoundsOf(line).W() / 2
		fmt.Fprintln(txt, line)
	}
	offset := pixel.V(0, -txt.Bounds().Center().Y)
	txt.Draw(win, pixel.IM.Moved(board.center().Add(offset)))
}

// wrap breaks s into lines of at most width characters at word boundaries
func wrap(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		if line != "" && len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	return append(lines, line)
}
