package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"c2-fcfs.in", "c2-fcfs.out"},
		{"scenarios/burst.txt", "scenarios/burst.out"},
		{"noextension", "noextension.out"},
		{"a.b.in", "a.b.out"},
		{"mix.yaml", "mix.out"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, defaultOutputPath(tt.input), tt.input)
	}
}

func TestRunScenario_ErrorMessages(t *testing.T) {
	writeTemp := func(name, content string) string {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("missing input file", func(t *testing.T) {
		_, err := runScenario("ghost.in")
		assert.EqualError(t, err, "input file 'ghost.in' not found.")
	})

	t.Run("rr without quantum", func(t *testing.T) {
		path := writeTemp("noq.in", "processcount 1\nrunfor 5\nuse rr\nprocess name P1 arrival 0 burst 2\nend\n")
		_, err := runScenario(path)
		assert.EqualError(t, err, "Missing quantum parameter when use is 'rr'")
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		path := writeTemp("mlfq.in", "processcount 1\nrunfor 5\nuse mlfq\nprocess name P1 arrival 0 burst 2\nend\n")
		_, err := runScenario(path)
		assert.EqualError(t, err, "Unknown scheduling algorithm 'mlfq'")
	})

	t.Run("malformed directive", func(t *testing.T) {
		path := writeTemp("bad.in", "processcount x\nrunfor 5\nuse fcfs\nend\n")
		_, err := runScenario(path)
		assert.EqualError(t, err, "Malformed processcount line")
	})
}

func TestWriteReportFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.out")
	lines := []string{"1 processes", "Using First In First Out", "", "Time   0 : Idle"}

	require.NoError(t, writeReportFile(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 processes\nUsing First In First Out\n\nTime   0 : Idle\n", string(data))
}

func TestWriteReportFile_BadPath(t *testing.T) {
	err := writeReportFile(filepath.Join(t.TempDir(), "missing", "report.out"), []string{"x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output file")
}
