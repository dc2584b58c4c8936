package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mazeFile = "../../scenario/testdata/wall_maze.hcl"

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.Error(t, err)

	_, err = NewConfig(Config{ScenarioPath: "x", MaxExpansions: -1})
	assert.Error(t, err)

	_, err = NewConfig(Config{ScenarioPath: "x", LogLevel: "verbose"})
	assert.ErrorContains(t, err, `invalid log-level "verbose"`)

	_, err = NewConfig(Config{ScenarioPath: "x", LogFormat: "xml"})
	assert.ErrorContains(t, err, `invalid log-format "xml"`)

	cfg, err := NewConfig(Config{ScenarioPath: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.ScenarioPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newLogger(&Config{LogLevel: "warn", LogFormat: "json"}, buf)
	logger.Info("dropped")
	logger.Warn("kept", "cell", "(1,2)")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"cell":"(1,2)"`)

	buf.Reset()
	newLogger(&Config{LogLevel: "debug", LogFormat: "text"}, buf).Debug("visible")
	assert.Contains(t, buf.String(), "level=DEBUG msg=visible")
}

func TestApp_RunWallMaze(t *testing.T) {
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	cfg, err := NewConfig(Config{ScenarioPath: mazeFile, LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)

	sum, err := NewApp(out, logs, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Passed: 7}, sum)
	assert.Contains(t, out.String(), "PASS "+mazeFile+" straight_run path=[(0,1) (0,2) (0,3) (0,4) (0,5)] cost=5")
	assert.Contains(t, out.String(), "goal_on_wall no path")
	assert.Contains(t, logs.String(), "Run finished.")
}

func TestApp_OnlyAndDebugLogging(t *testing.T) {
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	cfg, err := NewConfig(Config{ScenarioPath: mazeFile, Only: "single_step", LogLevel: "debug", LogFormat: "json"})
	require.NoError(t, err)

	sum, err := NewApp(out, logs, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Passed: 1}, sum)
	assert.Contains(t, logs.String(), `"msg":"Expanded cell."`)
	assert.Contains(t, logs.String(), `"search":"single_step"`)
}

func TestApp_FailuresAreCounted(t *testing.T) {
	dir := t.TempDir()
	src := `
grid {
  rows = ["000"]
}
search "wrong" {
  start  = [0, 0]
  goal   = [0, 2]
  expect = [[0, 1]]
}
search "limited" {
  start = [0, 0]
  goal  = [0, 2]
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.hcl"), []byte(src), 0o600))

	out := &bytes.Buffer{}
	cfg, err := NewConfig(Config{ScenarioPath: dir, MaxExpansions: 1, Precheck: true})
	require.NoError(t, err)

	sum, err := NewApp(out, &bytes.Buffer{}, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{Failed: 2}, sum)
	assert.Contains(t, out.String(), "FAIL")
	assert.Contains(t, out.String(), "expansion limit reached")
}

func TestApp_EmptyDirAndMissingPath(t *testing.T) {
	cfg, _ := NewConfig(Config{ScenarioPath: t.TempDir()})
	logs := &bytes.Buffer{}
	sum, err := NewApp(&bytes.Buffer{}, logs, cfg).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.Contains(t, logs.String(), "No .hcl scenario files found.")

	cfg, _ = NewConfig(Config{ScenarioPath: filepath.Join(t.TempDir(), "missing")})
	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg).Run(context.Background())
	assert.Error(t, err)
}
