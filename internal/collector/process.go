package collector

import "fmt"

type processMatch struct {
	name        string
	executables []string
}

// detectProcess returns the name of the first entry in matches that has a
// running executable, or "" when none does.
func (c *Collector) detectProcess(matches []processMatch) (string, error) {
	processes, err := c.processes()
	if err != nil {
		return "", fmt.Errorf("list processes: %w", err)
	}

	running := make(map[string]bool, len(processes))
	for _, p := range processes {
		running[p.Executable()] = true
	}

	for _, m := range matches {
		for _, exe := range m.executables {
			if running[exe] {
				return m.name, nil
			}
		}
	}
	return "", nil
}
