package dataset

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"styleval/internal/changes"
	"styleval/internal/evaluate"
)

//go:embed *.yaml
var scenarioFS embed.FS

// Scenario is a named set of inline cases used by evaluate --demo, the
// wiring suite and tests.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Cases       []ScenarioCase `yaml:"cases"`
}

// ScenarioCase is one inline file pair of a scenario.
type ScenarioCase struct {
	Repo     string `yaml:"repo"`
	Filepath string `yaml:"filepath"`
	Style    string `yaml:"style"`
	Init     string `yaml:"init"`
	Correct  string `yaml:"correct"`
}

// LoadScenario reads a scenario by name from the embedded YAML files.
func LoadScenario(name string) (*Scenario, error) {
	data, err := scenarioFS.ReadFile(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("scenario %q not found (available: %s): %w",
			name, strings.Join(ListScenarios(), ", "), err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %q: %w", name, err)
	}
	return &s, nil
}

// ListScenarios returns the names of all embedded scenarios, sorted.
func ListScenarios() []string {
	entries, _ := scenarioFS.ReadDir(".")
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".yaml") {
			names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// EvalCases converts the scenario into evaluation cases with changed lines
// computed, in scenario order.
func (s *Scenario) EvalCases() []evaluate.Case {
	cases := make([]evaluate.Case, 0, len(s.Cases))
	for _, c := range s.Cases {
		cases = append(cases, evaluate.Case{
			Repo:         c.Repo,
			Style:        c.Style,
			Path:         c.Filepath,
			Init:         c.Init,
			Correct:      c.Correct,
			ChangedLines: changes.Changed(c.Correct, c.Init),
		})
	}
	return cases
}
