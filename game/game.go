package game

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameConfig struct {
	// Side of the square display surface and of one tile, in pixels. The grid
	// is SurfaceSize/CellSize tiles across.
	SurfaceSize, CellSize int

	TickInterval    time.Duration
	VictoryScore    int
	MaxFoodAttempts int

	Seed int64

	// Saved game to resume instead of a fresh one
	Snapshot *GameSnapshot

	Store     Store
	Scheduler Scheduler
	Director  Director
	Logger    logrus.FieldLogger
	Observers []Observer
}

func NewGameConfig() GameConfig {
	return GameConfig{
		SurfaceSize:     DefaultSurfaceSize,
		CellSize:        DefaultCellSize,
		TickInterval:    DefaultTickInterval,
		VictoryScore:    DefaultVictoryScore,
		MaxFoodAttempts: DefaultMaxFoodAttempts,
		Snapshot:        nil,
		Store:           nil,
		Scheduler:       nil,
		Director:        nil,
	}
}

func (config GameConfig) TileCount() int {
	if config.CellSize <= 0 {
		return 0
	}
	return config.SurfaceSize / config.CellSize
}

func (config GameConfig) validate() error {
	if config.CellSize <= 0 {
		return errors.Errorf("cell size must be positive, got %d", config.CellSize)
	}
	if tiles := config.TileCount(); tiles < 1 {
		return errors.Errorf("surface of %dpx holds no %dpx tiles", config.SurfaceSize, config.CellSize)
	}
	if config.TickInterval <= 0 {
		return errors.Errorf("tick interval must be positive, got %s", config.TickInterval)
	}
	if config.VictoryScore < 1 {
		return errors.Errorf("victory score must be at least 1, got %d", config.VictoryScore)
	}
	if config.MaxFoodAttempts < 1 {
		return errors.Errorf("food placement needs at least one attempt, got %d", config.MaxFoodAttempts)
	}
	return nil
}

func (config GameConfig) withDefaults() GameConfig {
	if config.Store == nil {
		config.Store = NewMemoryStore()
	}
	if config.Scheduler == nil {
		config.Scheduler = RealtimeScheduler{}
	}
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}
	return config
}
