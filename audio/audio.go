package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosnake/game"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq     float64
	duration time.Duration
}

var cues = map[game.EventKind][]note{
	game.EventAte: {{880, 60 * time.Millisecond}},
	game.EventVictory: {
		{523.25, 120 * time.Millisecond},
		{659.25, 120 * time.Millisecond},
		{783.99, 120 * time.Millisecond},
		{1046.5, 240 * time.Millisecond},
	},
	game.EventGameOver: {{220, 400 * time.Millisecond}},
}

// Player plays a short tone for game events. A Player that couldn't open the
// speaker, or was asked to stay quiet, ignores every event.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	active bool
	logger logrus.FieldLogger
}

func NewPlayer(muted bool, logger logrus.FieldLogger) *Player {
	player := &Player{
		mixer:  &beep.Mixer{},
		logger: logger.WithField("component", "audio"),
	}
	if muted {
		return player
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		player.logger.WithError(err).Warn("audio unavailable, continuing silently")
		return player
	}
	speaker.Play(player.mixer)
	player.active = true
	return player
}

func (player *Player) Active() bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	return player.active
}

func (player *Player) Observe(event game.Event) {
	player.mu.Lock()
	defer player.mu.Unlock()
	if !player.active {
		return
	}

	sound, err := cue(event.Kind)
	if err != nil {
		player.logger.WithError(err).WithField("event", event.Kind).Warn("building tone")
		return
	}
	if sound == nil {
		return
	}

	speaker.Lock()
	player.mixer.Add(sound)
	speaker.Unlock()
}

func (player *Player) Close() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if !player.active {
		return
	}
	speaker.Clear()
	speaker.Close()
	player.active = false
}

// cue returns the sound for an event kind, or nil if it has none
func cue(kind game.EventKind) (beep.Streamer, error) {
	notes, ok := cues[kind]
	if !ok {
		return nil, nil
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		streamers = append(streamers, beep.Take(sampleRate.N(n.duration), quiet(tone)))
	}
	return beep.Seq(streamers...), nil
}

// quiet scales a full-amplitude tone down to something bearable
func quiet(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= 0.2
			samples[i][1] *= 0.2
		}
		return n, ok
	})
}
