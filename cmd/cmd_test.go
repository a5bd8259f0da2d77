package cmd

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/they4kman/gosnake/game"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd := newRootCmd()
	rootCmd.SetOut(out)
	rootCmd.SetErr(ioutil.Discard)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	err := rootCmd.Execute()
	return out.String(), err
}

func simSnapshot(t *testing.T, args ...string) *game.GameSnapshot {
	t.Helper()
	out, err := runCmd(t, append([]string{"sim"}, args...)...)
	if err != nil {
		t.Fatalf("sim %v: %v", args, err)
	}
	if !strings.HasPrefix(out, "# ticks: ") {
		t.Fatalf("Expected tick count header, got %q", out)
	}
	snapshot, err := game.LoadSnapshot(out)
	if err != nil {
		t.Fatalf("sim output is not a snapshot: %v\n%s", err, out)
	}
	return snapshot
}

func TestSimIsDeterministic(t *testing.T) {
	args := []string{"--seed", "42", "--ticks", "300", "--director", "random"}

	first, _ := runCmd(t, append([]string{"sim"}, args...)...)
	second, _ := runCmd(t, append([]string{"sim"}, args...)...)

	if first == "" || first != second {
		t.Errorf("Expected identical runs for the same seed:\n%s\n---\n%s", first, second)
	}
	if snapshot := simSnapshot(t, args...); snapshot.Seed != 42 {
		t.Errorf("Expected seed 42 in snapshot, got %d", snapshot.Seed)
	}
}

func TestSimStopsAtTickLimit(t *testing.T) {
	out, err := runCmd(t, "sim", "--seed", "3", "--ticks", "5", "--tiles", "30")
	if err != nil {
		t.Fatalf("sim: %v", err)
	}
	if !strings.HasPrefix(out, "# ticks: 5\n") {
		t.Errorf("Expected 5 ticks played on a roomy board, got %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestSimRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"Unknown director", []string{"sim", "--director", "psychic"}},
		{"No ticks", []string{"sim", "--ticks", "0"}},
		{"Empty board", []string{"sim", "--tiles", "0"}},
		{"Bad log level", []string{"sim", "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd := newRootCmd()
			rootCmd.SetOut(ioutil.Discard)
			rootCmd.SetErr(ioutil.Discard)
			rootCmd.SetArgs(tt.args)
			if err := rootCmd.Execute(); err == nil {
				t.Errorf("Expected %v to fail", tt.args)
			}
		})
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosnake.yaml")
	config := "tiles: 8\nvictory: 3\ndirector: pathfind\n"
	if err := ioutil.WriteFile(path, []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	snapshot := simSnapshot(t, "--config", path, "--seed", "1", "--ticks", "1")
	if snapshot.TileCount != 8 {
		t.Errorf("Expected 8 tiles from config file, got %d", snapshot.TileCount)
	}

	snapshot = simSnapshot(t, "--config", path, "--seed", "1", "--ticks", "1", "--tiles", "12")
	if snapshot.TileCount != 12 {
		t.Errorf("Expected command line to override config file, got %d tiles", snapshot.TileCount)
	}
}

func TestConfigFileRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gosnake.yaml")
	if err := ioutil.WriteFile(path, []byte("speed: fast\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := runCmd(t, "sim", "--config", path); err == nil || !strings.Contains(err.Error(), "speed") {
		t.Errorf("Expected unknown setting error, got %v", err)
	}
}

func TestDirectorValue(t *testing.T) {
	var kind directorKind
	value := newDirectorValue(randomDirector, &kind)

	if value.String() != "random" {
		t.Errorf("Expected default random, got %s", value.String())
	}
	if err := value.Set("pathfind"); err != nil || kind != pathfindDirector {
		t.Errorf("Expected pathfind, got %v (err %v)", kind, err)
	}
	if err := value.Set("nope"); err == nil || !strings.Contains(err.Error(), "none, pathfind, random") {
		t.Errorf("Expected error listing directors, got %v", err)
	}
}
