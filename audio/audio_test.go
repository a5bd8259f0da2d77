package audio

import (
	"io/ioutil"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosnake/game"
)

func drain(t *testing.T, kind game.EventKind) (int, float64) {
	t.Helper()

	sound, err := cue(kind)
	if err != nil {
		t.Fatalf("cue(%v): %v", kind, err)
	}
	if sound == nil {
		return 0, 0
	}

	total, peak := 0, 0.0
	buf := make([][2]float64, 512)
	for {
		n, ok := sound.Stream(buf)
		for _, sample := range buf[:n] {
			if sample[0] > peak {
				peak = sample[0]
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestCueLengths(t *testing.T) {
	tests := []struct {
		kind     game.EventKind
		duration time.Duration
	}{
		{game.EventAte, 60 * time.Millisecond},
		{game.EventGameOver, 400 * time.Millisecond},
		{game.EventVictory, 600 * time.Millisecond},
		{game.EventMoved, 0},
		{game.EventPaused, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			samples, peak := drain(t, tt.kind)

			expected := sampleRate.N(tt.duration)
			if tt.kind == game.EventVictory {
				// Each note is rounded to whole samples on its own
				expected = 3*sampleRate.N(120*time.Millisecond) + sampleRate.N(240*time.Millisecond)
			}
			if samples != expected {
				t.Errorf("Expected %d samples, got %d", expected, samples)
			}
			if peak > 0.2+1e-9 {
				t.Errorf("Expected quiet tone, peak at %v", peak)
			}
			if expected > 0 && peak == 0 {
				t.Error("Expected an audible tone")
			}
		})
	}
}

func TestMutedPlayerIgnoresEvents(t *testing.T) {
	logger := logrus.New()
	logger.Out = ioutil.Discard

	player := NewPlayer(true, logger)
	if player.Active() {
		t.Fatal("Expected a muted player to stay inactive")
	}

	player.Observe(game.Event{Kind: game.EventAte})
	player.Observe(game.Event{Kind: game.EventGameOver})
	player.Close()

	if player.mixer.Len() != 0 {
		t.Errorf("Expected nothing queued, got %d streamers", player.mixer.Len())
	}
}
