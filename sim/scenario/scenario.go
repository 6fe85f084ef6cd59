// Package scenario loads simulation inputs from disk. Two forms are
// supported: the classic line-oriented text format and a YAML form carrying
// the same fields. Loading only parses; semantic checks live on
// sim.Scenario.Validate so both forms share them.
package scenario

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/obseryx/ChatGPT-Scheduler/sim"
)

// Load reads a scenario from path, picking the format by extension:
// .yaml and .yml use the YAML form, everything else the text form.
// The declared processcount is checked against the number of process
// descriptors; on mismatch the loader warns and the actual count wins.
func Load(path string) (*sim.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("input file '%s' not found.", path)
		}
		return nil, fmt.Errorf("reading input file: %w", err)
	}

	var sc *sim.Scenario
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		sc, err = ParseYAML(data)
	default:
		sc, err = ParseText(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}

	if sc.ProcessCount != len(sc.Processes) {
		logrus.Warnf("processcount %d does not match %d process descriptors; using %d",
			sc.ProcessCount, len(sc.Processes), len(sc.Processes))
	}
	return sc, nil
}
