package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/they4kman/gosnake/audio"
	"github.com/they4kman/gosnake/director/pathfind"
	"github.com/they4kman/gosnake/director/random"
	"github.com/they4kman/gosnake/game"
	"github.com/they4kman/gosnake/store"
	"github.com/they4kman/gosnake/ui/terminal"
	"github.com/they4kman/gosnake/ui/window"
)

type options struct {
	tiles    int
	cellSize int
	interval time.Duration
	victory  int
	seed     int64

	director directorKind
	frontend frontendKind

	highScoreFile string
	snapshotsDir  string
	snapshot      string
	mute          bool

	configFile string
	logLevel   string
	logFile    string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gosnake",
		Short: "Play manual or computer-driven Snake",
		Long: `gosnake is a Snake game which supports human- or
computer-driven playing, in a window or in the terminal.

Run with no arguments to play manually
	gosnake

Use the director flag to make the computer play for you
	gosnake --director pathfind

Play in the terminal
	gosnake --frontend terminal
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyConfigFile(cmd, opts.configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.tiles, "tiles", game.DefaultSurfaceSize/game.DefaultCellSize, "Width and height of the board, in tiles")
	flags.IntVar(&opts.victory, "victory", game.DefaultVictoryScore, "Score that wins the game")
	flags.Int64Var(&opts.seed, "seed", 0, "Seed for food placement and directors (default: current time)")
	flags.Var(newDirectorValue(noDirector, &opts.director), "director", `Computer player steering the snake.
none: play with the keyboard
random: pick any move that survives the next tick
pathfind: head for the food along a shortest path`)
	flags.StringVar(&opts.snapshot, "snapshot", "", "Resume the game saved in this snapshot file")
	flags.StringVar(&opts.configFile, "config", "", "YAML file of flag values; flags given on the command line win")
	flags.StringVar(&opts.logLevel, "log-level", "info", "One of panic, fatal, error, warn, info, debug")
	flags.StringVar(&opts.logFile, "log-file", "", "Append logs to this file instead of stderr")

	rootCmd.Flags().IntVar(&opts.cellSize, "cell-size", game.DefaultCellSize, "Size of one tile in the window, in pixels")
	rootCmd.Flags().DurationVar(&opts.interval, "interval", game.DefaultTickInterval, "Time between snake moves")
	rootCmd.Flags().Var(newFrontendValue(windowFrontend, &opts.frontend), "frontend", `Where to draw the game.
window: OpenGL window
terminal: text UI in this terminal`)
	rootCmd.Flags().StringVar(&opts.highScoreFile, "highscore-file", "", "File keeping the high score (default: user config dir)")
	rootCmd.Flags().StringVar(&opts.snapshotsDir, "snapshots-dir", "", "Save a snapshot of every finished game into this directory")
	rootCmd.Flags().BoolVar(&opts.mute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(newSimCmd(opts))
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func play(cmd *cobra.Command, opts *options) error {
	logger, closeLog, err := newLogger(opts, opts.frontend == terminalFrontend)
	if err != nil {
		return err
	}
	defer closeLog()

	config, err := gameConfig(cmd, opts, logger)
	if err != nil {
		return err
	}
	config.Store = openStore(opts.highScoreFile, logger)
	if opts.snapshotsDir != "" {
		config.Observers = append(config.Observers, game.NewSnapshotRecorder(opts.snapshotsDir, logger))
	}

	engine, err := game.NewEngine(config)
	if err != nil {
		return err
	}
	defer engine.Close()

	player := audio.NewPlayer(opts.mute, logger)
	defer player.Close()
	engine.Subscribe(player)

	switch opts.frontend {
	case terminalFrontend:
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "opening terminal")
		}
		if err := screen.Init(); err != nil {
			return errors.Wrap(err, "initializing terminal")
		}
		defer screen.Fini()

		term := terminal.New(screen, engine, logger)
		engine.Subscribe(term)
		return term.Run()

	default:
		pixelgl.Run(func() {
			err = window.Run(engine, opts.cellSize, logger)
		})
		return err
	}
}

// gameConfig translates the flags shared by every command
func gameConfig(cmd *cobra.Command, opts *options, logger logrus.FieldLogger) (game.GameConfig, error) {
	config := game.NewGameConfig()
	config.CellSize = opts.cellSize
	if config.CellSize <= 0 {
		config.CellSize = game.DefaultCellSize
	}
	config.SurfaceSize = opts.tiles * config.CellSize
	config.TickInterval = opts.interval
	if config.TickInterval == 0 {
		config.TickInterval = game.DefaultTickInterval
	}
	config.VictoryScore = opts.victory
	config.Logger = logger

	config.Seed = opts.seed
	if !cmd.Flags().Changed("seed") {
		config.Seed = time.Now().UnixNano()
	}

	if opts.snapshot != "" {
		snapshot, err := game.ReadSnapshotFile(opts.snapshot)
		if err != nil {
			return config, err
		}
		config.Snapshot = snapshot
	}

	switch opts.director {
	case randomDirector:
		config.Director = random.New(config.Seed)
	case pathfindDirector:
		config.Director = pathfind.New(config.Seed)
	}
	return config, nil
}

// openStore falls back to an in-memory store so a broken file only costs the
// high score
func openStore(path string, logger logrus.FieldLogger) game.Store {
	if path == "" {
		defaultPath, err := store.DefaultPath()
		if err != nil {
			logger.WithError(err).Warn("high score will not be saved")
			return game.NewMemoryStore()
		}
		path = defaultPath
	}

	fileStore, err := store.Open(path)
	if err != nil {
		logger.WithError(err).Warn("high score will not be saved")
		return game.NewMemoryStore()
	}
	logger.WithField("path", fileStore.Path()).Debug("using high score file")
	return fileStore
}

// newLogger builds the command's logger. With quiet set and no log file, the
// terminal belongs to the game and logs are dropped.
func newLogger(opts *options, quiet bool) (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing --log-level")
	}

	logger := logrus.New()
	logger.SetLevel(level)

	switch {
	case opts.logFile != "":
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening log file")
		}
		logger.Out = file
		return logger, func() { file.Close() }, nil
	case quiet:
		logger.Out = ioutil.Discard
	default:
		logger.Out = os.Stderr
	}
	return logger, func() {}, nil
}
