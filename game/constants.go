package game

import (
	"fmt"
	"time"
)

type Phase int

const (
	NotStarted Phase = iota
	Running
	Paused
	GameOver
	Victory
)

var Phases = []Phase{
	NotStarted,
	Running,
	Paused,
	GameOver,
	Victory,
}

var phaseNames = map[Phase]string{
	NotStarted: "not-started",
	Running:    "running",
	Paused:     "paused",
	GameOver:   "game-over",
	Victory:    "victory",
}

func (phase Phase) String() string {
	if name, ok := phaseNames[phase]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(phase))
}

func ParsePhase(name string) (Phase, error) {
	for phase, phaseName := range phaseNames {
		if phaseName == name {
			return phase, nil
		}
	}
	return NotStarted, fmt.Errorf("invalid phase %q", name)
}

func (phase Phase) MarshalYAML() (interface{}, error) {
	return phase.String(), nil
}

func (phase *Phase) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	parsed, err := ParsePhase(name)
	if err != nil {
		return err
	}
	*phase = parsed
	return nil
}

const (
	DefaultSurfaceSize     = 400
	DefaultCellSize        = 20
	DefaultTickInterval    = 150 * time.Millisecond
	DefaultVictoryScore    = 15
	DefaultMaxFoodAttempts = 100
)

// HighScoreKey is the Store key holding the high score as a decimal integer
const HighScoreKey = "snake-high-score"
