package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obseryx/ChatGPT-Scheduler/sim"
	"github.com/obseryx/ChatGPT-Scheduler/sim/internal/testutil"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp scenario: %v", err)
	}
	return path
}

func TestLoad_TextByDefault(t *testing.T) {
	path := writeTemp(t, "basic.in", "processcount 1\nrunfor 5\nuse fcfs\nprocess name P1 arrival 0 burst 2\nend\n")

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sim.AlgorithmFCFS, sc.Use)
	assert.Len(t, sc.Processes, 1)
}

func TestLoad_YAMLByExtension(t *testing.T) {
	content := "processcount: 1\nrunfor: 5\nuse: sjf\nprocesses:\n  - name: P1\n    arrival: 0\n    burst: 2\n"

	for _, name := range []string{"basic.yaml", "basic.yml"} {
		sc, err := Load(writeTemp(t, name, content))
		require.NoError(t, err, name)
		assert.Equal(t, sim.AlgorithmSJF, sc.Use)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("no/such/scenario.in")
	assert.EqualError(t, err, "input file 'no/such/scenario.in' not found.")
}

// A declared processcount that disagrees with the listed processes is a
// warning, not an error; the listed processes win.
func TestLoad_CountMismatchTolerated(t *testing.T) {
	path := writeTemp(t, "mismatch.in", "processcount 5\nrunfor 5\nuse fcfs\nprocess name P1 arrival 0 burst 2\nend\n")

	sc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, sc.ProcessCount)
	assert.Len(t, sc.Processes, 1)
}

func TestLoad_ParseErrorsPropagate(t *testing.T) {
	path := writeTemp(t, "broken.in", "processcount 1\nuse fcfs\nend\n")
	_, err := Load(path)
	assert.EqualError(t, err, "Missing parameter runfor")
}

// The checked-in fixture files must stay loadable; the cmd tests replay
// them end to end against their golden reports.
func TestLoad_Fixtures(t *testing.T) {
	sc, err := Load(testutil.ScenarioPath(t, "fcfs_two.in"))
	require.NoError(t, err)
	assert.Equal(t, 2, sc.ProcessCount)
	assert.Equal(t, int64(10), sc.RunFor)
	assert.Equal(t, sim.AlgorithmFCFS, sc.Use)

	sc, err = Load(testutil.ScenarioPath(t, "rr_quantum.yaml"))
	require.NoError(t, err)
	assert.Equal(t, sim.AlgorithmRR, sc.Use)
	require.NotNil(t, sc.Quantum)
	assert.Equal(t, int64(2), *sc.Quantum)
	require.NoError(t, sc.Validate())
}
