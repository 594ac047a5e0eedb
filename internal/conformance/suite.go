// Package conformance runs QT3 style temporal operator cases from YAML files.
package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Suite is one case file.
type Suite struct {
	// Name identifies the suite in reports.
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// ImplicitTimezone applies to every case that does not set its own,
	// e.g. "Z" or "-05:00".
	ImplicitTimezone string `yaml:"implicit-timezone,omitempty"`

	Cases []Case `yaml:"cases"`
}

// Case evaluates one binary operator and checks the canonical result or the error code.
type Case struct {
	Name             string `yaml:"name"`
	Description      string `yaml:"description,omitempty"`
	ImplicitTimezone string `yaml:"implicit-timezone,omitempty"`

	// Left and Right are typed literals such as xs:date("2000-01-31") or bare numbers.
	Left  string `yaml:"left"`
	Op    string `yaml:"op"`
	Right string `yaml:"right"`

	// Result is the expected canonical form. Exactly one of Result and Error is set.
	Result string `yaml:"result,omitempty"`
	// Error is the expected error code, e.g. FODT0002.
	Error string `yaml:"error,omitempty"`
}

// LoadCases reads and validates a case file. Unknown fields are rejected.
func LoadCases(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid case file %s: %w", path, err)
	}
	return &suite, nil
}

func validateSuite(s *Suite) error {
	if s.Name == "" {
		return errors.New("name is required")
	}
	if len(s.Cases) == 0 {
		return errors.New("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		switch {
		case c.Name == "":
			return fmt.Errorf("cases[%d]: name is required", i)
		case seen[c.Name]:
			return fmt.Errorf("cases[%d]: duplicate name %q", i, c.Name)
		case c.Left == "" || c.Op == "" || c.Right == "":
			return fmt.Errorf("case %s: left, op and right are required", c.Name)
		case (c.Result == "") == (c.Error == ""):
			return fmt.Errorf("case %s: exactly one of result and error is required", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}
