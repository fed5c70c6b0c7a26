package profile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Parse reads an install profile and unmarshals it without schema
// validation. Callers on the install path should prefer Load.
func Parse(path string) (*Profile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing install profile %s: %w", path, err)
	}

	return &p, nil
}

// Load reads an install profile, validates it against the embedded
// schema, and returns the parsed document. Validation issues are
// collapsed into a single error listing each offending path.
func Load(path string) (*Profile, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		var b strings.Builder
		fmt.Fprintf(&b, "invalid install profile %s:", path)
		for _, issue := range result.Issues {
			b.WriteString("\n  ")
			b.WriteString(issue.String())
		}
		return nil, errors.New(b.String())
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing install profile %s: %w", path, err)
	}
	return &p, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
