package game

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

type GameSnapshot struct {
	Seed         int64     `yaml:"seed"`
	TileCount    int       `yaml:"tiles"`
	Score        int       `yaml:"score"`
	HighScore    int       `yaml:"high_score"`
	Phase        Phase     `yaml:"phase"`
	VictoryShown bool      `yaml:"victory_shown"`
	Direction    Direction `yaml:"direction,flow"`
	Food         Point     `yaml:"food,flow"`
	Snake        []Point   `yaml:"snake,flow"`
}

func SnapshotFromView(view View) *GameSnapshot {
	return &GameSnapshot{
		Seed:         view.Seed,
		TileCount:    view.TileCount,
		Score:        view.Score,
		HighScore:    view.HighScore,
		Phase:        view.Phase,
		VictoryShown: view.VictoryShown,
		Direction:    view.Dir,
		Food:         view.Food,
		Snake:        append([]Point(nil), view.Snake...),
	}
}

func (snapshot *GameSnapshot) Serialize() string {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// restore rebuilds a State. A snapshot taken mid-game comes back Paused, so
// play only resumes through Start, which validates it.
func (snapshot *GameSnapshot) restore() *State {
	state := &State{
		TileCount:    snapshot.TileCount,
		Snake:        NewSnake(snapshot.Snake...),
		Food:         snapshot.Food,
		Dir:          snapshot.Direction,
		Score:        snapshot.Score,
		Phase:        snapshot.Phase,
		VictoryShown: snapshot.VictoryShown,
	}
	if state.Phase == Running {
		state.Phase = Paused
	}
	return state
}

func LoadSnapshot(in string) (*GameSnapshot, error) {
	var snapshot GameSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "invalid snapshot")
	}
	return &snapshot, nil
}

func ReadSnapshotFile(path string) (*GameSnapshot, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}
	snapshot, err := LoadSnapshot(string(data))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return snapshot, nil
}

// SnapshotRecorder saves the final state of every game that ends in a loss or
// a win into Dir
type SnapshotRecorder struct {
	Dir    string
	Logger logrus.FieldLogger

	now func() time.Time
}

func NewSnapshotRecorder(dir string, logger logrus.FieldLogger) *SnapshotRecorder {
	return &SnapshotRecorder{
		Dir:    dir,
		Logger: logger,
		now:    time.Now,
	}
}

func (recorder *SnapshotRecorder) Observe(event Event) {
	if event.Kind != EventGameOver && event.Kind != EventVictory {
		return
	}

	path, err := recorder.Save(SnapshotFromView(event.View))
	if err != nil {
		recorder.Logger.WithError(err).Warn("failed to save snapshot")
		return
	}
	recorder.Logger.WithField("path", path).Debug("saved snapshot")
}

// Save writes the snapshot under a new timestamped name and returns its path
func (recorder *SnapshotRecorder) Save(snapshot *GameSnapshot) (string, error) {
	stat, err := os.Stat(recorder.Dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "snapshot directory")
		}
		if err := os.MkdirAll(recorder.Dir, 0777); err != nil {
			return "", errors.Wrap(err, "creating snapshot directory")
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", recorder.Dir)
	}

	base := recorder.generateFilename(snapshot, recorder.now())
	for i := 0; ; i++ {
		filename := base
		if i > 0 {
			filename += "_" + strconv.Itoa(i)
		}
		path := filepath.Join(recorder.Dir, filename+".yaml")

		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", errors.Wrap(err, "creating snapshot")
		}

		_, err = file.WriteString(snapshot.Serialize())
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return "", errors.Wrapf(err, "writing snapshot %s", path)
		}
		return path, nil
	}
}

func (recorder *SnapshotRecorder) generateFilename(snapshot *GameSnapshot, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch snapshot.Phase {
	case Victory:
		stateStr = "win"
	case GameOver:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	return filenameBuilder.String()
}
