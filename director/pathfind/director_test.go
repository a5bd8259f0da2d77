package pathfind

import (
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosnake/game"
)

func TestFirstStep(t *testing.T) {
	tests := []struct {
		name     string
		view     game.View
		expected game.Direction
		found    bool
	}{
		{
			name: "Straight ahead",
			view: game.View{
				TileCount: 10,
				Snake:     []game.Point{{X: 2, Y: 5}},
				Food:      game.Point{X: 7, Y: 5},
			},
			expected: game.Right,
			found:    true,
		},
		{
			name: "Around the body",
			// Heading right with the body to the left; food behind
			view: game.View{
				TileCount: 10,
				Snake:     []game.Point{{X: 5, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 0}},
				Food:      game.Point{X: 1, Y: 0},
				Dir:       game.Right,
			},
			expected: game.Down,
			found:    true,
		},
		{
			name: "Walled off",
			view: game.View{
				TileCount: 3,
				Snake:     []game.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}},
				Food:      game.Point{X: 2, Y: 2},
				Dir:       game.Left,
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, found := FirstStep(tt.view)
			if found != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, found)
			}
			if found && dir != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, dir)
			}
		})
	}
}

func TestRoomiestAvoidsPocket(t *testing.T) {
	// Moving up enters a one-cell pocket at (0,0); down leads to open board
	view := game.View{
		TileCount: 5,
		Snake:     []game.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
		Dir:       game.Left,
	}

	dir, ok := Roomiest(view)
	if !ok || dir != game.Down {
		t.Errorf("Expected Down away from the pocket, got %v (ok=%v)", dir, ok)
	}
}

func TestDirectorPlaysToVictory(t *testing.T) {
	logger := logrus.New()
	logger.Out = ioutil.Discard

	scheduler := game.NewManualScheduler()
	config := game.NewGameConfig()
	config.Seed = 11
	config.Scheduler = scheduler
	config.Logger = logger
	config.Director = New(11)

	engine, err := game.NewEngine(config)
	if err != nil {
		t.Fatal(err)
	}

	engine.Start()
	for i := 0; i < 5000 && engine.Phase() == game.Running; i++ {
		scheduler.Advance(1)
	}

	if engine.Phase() != game.Victory {
		t.Fatalf("Expected the pathfinder to reach %d points, ended %v with %d",
			game.DefaultVictoryScore, engine.Phase(), engine.Score())
	}
	if engine.Score() != game.DefaultVictoryScore {
		t.Errorf("Expected score %d, got %d", game.DefaultVictoryScore, engine.Score())
	}
}
