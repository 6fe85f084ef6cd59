package scenario

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/obseryx/ChatGPT-Scheduler/sim"
)

// ParseText reads the line-oriented scenario format:
//
//	processcount 2
//	runfor 20
//	use rr
//	quantum 2
//	process name P1 arrival 0 burst 5
//	process name P2 arrival 3 burst 4
//	end
//
// Directive keywords are case-insensitive and a '#' starts a comment that
// runs to end of line. Unknown directives are ignored, "end" stops the scan,
// and the key/value pairs of a process line may appear in any order.
func ParseText(r io.Reader) (*sim.Scenario, error) {
	sc := &sim.Scenario{}
	var haveCount, haveRunFor, haveUse bool

	scanner := bufio.NewScanner(r)
scan:
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch strings.ToLower(fields[0]) {
		case "processcount":
			if len(fields) < 2 {
				return nil, fmt.Errorf("Missing parameter processcount")
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("Malformed processcount line")
			}
			sc.ProcessCount = n
			haveCount = true
		case "runfor":
			if len(fields) < 2 {
				return nil, fmt.Errorf("Missing parameter runfor")
			}
			n, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Malformed runfor line")
			}
			sc.RunFor = n
			haveRunFor = true
		case "use":
			if len(fields) < 2 {
				return nil, fmt.Errorf("Missing parameter use")
			}
			sc.Use = sim.Algorithm(strings.ToLower(fields[1]))
			haveUse = true
		case "quantum":
			if len(fields) < 2 {
				return nil, fmt.Errorf("Missing parameter quantum")
			}
			q, err := strconv.ParseInt(fields[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Malformed quantum line")
			}
			sc.Quantum = &q
		case "process":
			spec, err := parseProcessLine(fields[1:])
			if err != nil {
				return nil, err
			}
			sc.Processes = append(sc.Processes, spec)
		case "end":
			break scan
		default:
			// unknown directives are ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}

	if !haveCount {
		return nil, fmt.Errorf("Missing parameter processcount")
	}
	if !haveRunFor {
		return nil, fmt.Errorf("Missing parameter runfor")
	}
	if !haveUse {
		return nil, fmt.Errorf("Missing parameter use")
	}
	return sc, nil
}

// parseProcessLine walks the tokens after the "process" keyword as key/value
// pairs. Unknown keys are skipped; a key without a value or with a value
// that is not an integer makes the line malformed.
func parseProcessLine(tokens []string) (sim.ProcessSpec, error) {
	var spec sim.ProcessSpec
	var haveName, haveArrival, haveBurst bool
	for i := 0; i < len(tokens); {
		switch strings.ToLower(tokens[i]) {
		case "name":
			if i+1 >= len(tokens) {
				return sim.ProcessSpec{}, fmt.Errorf("Malformed process line")
			}
			spec.Name = tokens[i+1]
			haveName = true
			i += 2
		case "arrival":
			if i+1 >= len(tokens) {
				return sim.ProcessSpec{}, fmt.Errorf("Malformed process line")
			}
			v, err := strconv.ParseInt(tokens[i+1], 10, 64)
			if err != nil {
				return sim.ProcessSpec{}, fmt.Errorf("Malformed process line")
			}
			spec.Arrival = v
			haveArrival = true
			i += 2
		case "burst":
			if i+1 >= len(tokens) {
				return sim.ProcessSpec{}, fmt.Errorf("Malformed process line")
			}
			v, err := strconv.ParseInt(tokens[i+1], 10, 64)
			if err != nil {
				return sim.ProcessSpec{}, fmt.Errorf("Malformed process line")
			}
			spec.Burst = v
			haveBurst = true
			i += 2
		default:
			i++
		}
	}
	if !haveName {
		return sim.ProcessSpec{}, fmt.Errorf("Missing parameter name")
	}
	if !haveArrival {
		return sim.ProcessSpec{}, fmt.Errorf("Missing parameter arrival")
	}
	if !haveBurst {
		return sim.ProcessSpec{}, fmt.Errorf("Missing parameter burst")
	}
	return spec, nil
}
