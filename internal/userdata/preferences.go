package userdata

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Preferences represents user-wide defaults stored in preferences.yaml.
type Preferences struct {
	AssumeYes  bool   `yaml:"assume_yes,omitempty"`
	Python     string `yaml:"python,omitempty"`
	PipInstall string `yaml:"pip_install,omitempty"`

	// Extras holds arbitrary user-defined fields.
	Extras map[string]interface{} `yaml:",inline"`
}

// LoadPreferences reads and parses preferences.yaml. A missing file is
// not an error; it yields zero-value preferences.
func LoadPreferences() (*Preferences, error) {
	path, err := GetPreferencesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Preferences{}, nil
		}
		return nil, fmt.Errorf("reading preferences: %w", err)
	}

	var p Preferences
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &p, nil
}
