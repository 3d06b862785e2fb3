package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/bietkhonhungvandi212/pagesim/internal/benchmark"
	"github.com/bietkhonhungvandi212/pagesim/internal/engine"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"PAGESIM_CONFIG", "PAGESIM_FRAMES", "PAGESIM_MAX_FRAMES", "PAGESIM_WORKERS", "PAGESIM_NO_COLOR", "PAGESIM_LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--no-color"}, args...))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "pagesim version "+version+"\n", out)

	out, _, err = execute(t, "", "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+version+`"}`, out)
}

func TestRunCmd(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		out, stderr, err := execute(t, "", "run", "A", "B", "C", "A", "B", "D", "A", "B", "C", "D", "--frames", "3")
		require.NoError(t, err)

		assert.Contains(t, out, "FIFO faults: 8   LRU faults: 6")
		assert.Contains(t, out, "LRU wins (fewer page faults).")
		assert.Contains(t, out, "Step:       10", "last step selected by default")
		assert.Contains(t, out, "Requested:  D")
		assert.Contains(t, stderr, "simulation finished")
		assert.Contains(t, stderr, "run_id")
	})

	t.Run("CommaSeparatedWithStep", func(t *testing.T) {
		out, _, err := execute(t, "", "run", "A,A,A", "--frames", "1", "--step", "2")
		require.NoError(t, err)

		assert.Contains(t, out, "Step:       2")
		assert.Contains(t, out, "FIFO Frames  Status: HIT")
		assert.Contains(t, out, "Tie (same number of page faults).")
	})

	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "", "run", "X", "--frames", "1", "--json")
		require.NoError(t, err)

		var res engine.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 1, res.FIFOFaults)
		assert.Equal(t, 1, res.LRUFaults)
		require.Len(t, res.Trace, 1)
		assert.Equal(t, util.Pages("X"), res.Trace[0].FIFOFrames)
	})

	t.Run("Stdin", func(t *testing.T) {
		out, _, err := execute(t, "A B\nA B\n", "run", "--file", "-", "--frames", "1", "--json")
		require.NoError(t, err)

		var res engine.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Len(t, res.Trace, 4)
		assert.Equal(t, 4, res.FIFOFaults)
	})

	t.Run("ReferenceFile", func(t *testing.T) {
		path, cleanup := util.CreateTempFile(t, "refs-%d.txt", "A B C A")
		defer cleanup()

		out, _, err := execute(t, "", "run", "--file", path, "--frames", "3", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"fifo_faults": 3`)
	})

	t.Run("DefaultFramesFromConfig", func(t *testing.T) {
		path, cleanup := util.CreateTempFile(t, "pagesim-%d.yaml", "simulation:\n  frames: 1\n")
		defer cleanup()

		out, _, err := execute(t, "", "--config", path, "run", "A", "B", "A", "--json")
		require.NoError(t, err)
		assert.Contains(t, out, `"frames": 1`)
		assert.Contains(t, out, `"lru_faults": 3`)
	})
}

func TestRunCmdValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"EmptyReference", []string{"run", "--frames", "3"}, util.ErrEmptyReference},
		{"OnlySeparators", []string{"run", ",", ",", "--frames", "3"}, util.ErrEmptyReference},
		{"ZeroFrames", []string{"run", "A", "--frames", "0"}, util.ErrInvalidFrames},
		{"NonIntegerFrames", []string{"run", "A", "--frames", "three"}, util.ErrInvalidFrames},
		{"StepOutOfRange", []string{"run", "A", "B", "--frames", "1", "--step", "5"}, util.ErrStepOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBenchCmd(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		out, stderr, err := execute(t, "", "bench", "A", "B", "A", "B", "--max-frames", "1")
		require.NoError(t, err)

		assert.Contains(t, out, "LRU wins: 0 | FIFO wins: 0 | Ties: 1   (Avg faults → FIFO: 4.00, LRU: 4.00)")
		assert.Contains(t, stderr, "sweep finished")
	})

	t.Run("ParallelJSONMatchesSequential", func(t *testing.T) {
		args := []string{"bench", "1", "2", "3", "4", "1", "2", "5", "1", "2", "3", "4", "5", "--max-frames", "6", "--json"}

		seqOut, _, err := execute(t, "", args...)
		require.NoError(t, err)
		parOut, _, err := execute(t, "", append(args, "--workers", "3")...)
		require.NoError(t, err)
		assert.JSONEq(t, seqOut, parOut)

		var decoded struct {
			Rows    []benchmark.Row   `json:"rows"`
			Summary benchmark.Summary `json:"summary"`
		}
		require.NoError(t, json.Unmarshal([]byte(seqOut), &decoded))
		require.Len(t, decoded.Rows, 6)
		assert.Equal(t, 9, decoded.Rows[2].FIFOFaults)
		assert.Equal(t, 10, decoded.Rows[3].FIFOFaults)
		assert.Equal(t, 6, decoded.Summary.Rows)
	})

	t.Run("InvalidMaxFrames", func(t *testing.T) {
		_, _, err := execute(t, "", "bench", "A", "--max-frames", "-1")
		assert.ErrorIs(t, err, util.ErrInvalidMaxFrames)
	})

	t.Run("InvalidWorkers", func(t *testing.T) {
		_, _, err := execute(t, "", "bench", "A", "--workers", "0")
		assert.ErrorIs(t, err, util.ErrInvalidWorkers)
	})

	t.Run("NonIntegerCounts", func(t *testing.T) {
		_, _, err := execute(t, "", "bench", "A", "--max-frames", "ten")
		assert.ErrorIs(t, err, util.ErrInvalidMaxFrames)
		_, _, err = execute(t, "", "bench", "A", "--workers", "2.5")
		assert.ErrorIs(t, err, util.ErrInvalidWorkers)
	})
}

func TestRunCmdHugeFrames(t *testing.T) {
	t.Run("JSON", func(t *testing.T) {
		out, _, err := execute(t, "", "run", "A", "--frames", "5000000000", "--json")
		require.NoError(t, err)

		var res engine.Result
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 5000000000, res.Frames)
		assert.Equal(t, 1, res.FIFOFaults)
		assert.Equal(t, 1, res.LRUFaults)
	})

	t.Run("FrameBoxes", func(t *testing.T) {
		out, _, err := execute(t, "", "run", "A", "B", "--frames", "5000000000")
		require.NoError(t, err)
		assert.Contains(t, out, "more empty frames")
	})
}

func TestDemoCmd(t *testing.T) {
	out, _, err := execute(t, "", "demo", "--json")
	require.NoError(t, err)

	var res engine.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 3, res.Frames)
	assert.Len(t, res.Trace, 9)
	assert.Equal(t, 7, res.FIFOFaults)
	assert.Equal(t, 5, res.LRUFaults)
}

func TestConfigCmd(t *testing.T) {
	out, _, err := execute(t, "", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "frames: 3")
	assert.Contains(t, out, "max_frames: 10")

	_, _, err = execute(t, "", "config", "--log-level", "loud")
	assert.ErrorIs(t, err, util.ErrInvalidLogLevel)
}
