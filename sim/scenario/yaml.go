package scenario

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/obseryx/ChatGPT-Scheduler/sim"
)

// yamlScenario mirrors sim.Scenario with pointer fields so a missing key is
// distinguishable from a zero value. Nil means "not set in YAML".
type yamlScenario struct {
	ProcessCount *int              `yaml:"processcount"`
	RunFor       *int64            `yaml:"runfor"`
	Use          *string           `yaml:"use"`
	Quantum      *int64            `yaml:"quantum"`
	Processes    []yamlProcessSpec `yaml:"processes"`
}

type yamlProcessSpec struct {
	Name    *string `yaml:"name"`
	Arrival *int64  `yaml:"arrival"`
	Burst   *int64  `yaml:"burst"`
}

// ParseYAML reads the YAML scenario form. Required keys raise the same
// missing-parameter errors as the text form.
func ParseYAML(data []byte) (*sim.Scenario, error) {
	var raw yamlScenario
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing yaml scenario: %w", err)
	}
	if raw.ProcessCount == nil {
		return nil, fmt.Errorf("Missing parameter processcount")
	}
	if raw.RunFor == nil {
		return nil, fmt.Errorf("Missing parameter runfor")
	}
	if raw.Use == nil {
		return nil, fmt.Errorf("Missing parameter use")
	}
	sc := &sim.Scenario{
		ProcessCount: *raw.ProcessCount,
		RunFor:       *raw.RunFor,
		Use:          sim.Algorithm(strings.ToLower(*raw.Use)),
		Quantum:      raw.Quantum,
	}
	for _, p := range raw.Processes {
		if p.Name == nil {
			return nil, fmt.Errorf("Missing parameter name")
		}
		if p.Arrival == nil {
			return nil, fmt.Errorf("Missing parameter arrival")
		}
		if p.Burst == nil {
			return nil, fmt.Errorf("Missing parameter burst")
		}
		sc.Processes = append(sc.Processes, sim.ProcessSpec{
			Name:    *p.Name,
			Arrival: *p.Arrival,
			Burst:   *p.Burst,
		})
	}
	return sc, nil
}
