package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// CheckHome validates the home directory layer. When fix is true, missing
// pieces are created.
func CheckHome(w io.Writer, fix bool) error {
	root, err := GetHomeRoot()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Home directory check:")

	if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", root)
		if fix {
			fmt.Fprintln(w, "  [FIX ] Creating home directory...")
			if initErr := InitHome(w); initErr != nil {
				return fmt.Errorf("auto-fix init: %w", initErr)
			}
		} else {
			fmt.Fprintln(w, "         It is created on first use; nothing to do")
		}
		return nil
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", root)

	checkYAMLFile(w, filepath.Join(root, PreferencesFile), "preferences")
	checkYAMLFile(w, filepath.Join(root, "config.yaml"), "config")

	logsDir := filepath.Join(root, LogsDir)
	if info, err := os.Stat(logsDir); err == nil && info.IsDir() {
		fmt.Fprintf(w, "  [ OK ] %s exists\n", logsDir)
	} else {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", logsDir)
		if fix {
			if mkErr := os.MkdirAll(logsDir, DirPermNormal); mkErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", logsDir, mkErr)
			} else {
				fmt.Fprintf(w, "  [FIX ] Created %s\n", logsDir)
			}
		}
	}

	return nil
}

// checkYAMLFile reports whether an optional YAML file parses cleanly.
// Absence is fine; garbage is not.
func checkYAMLFile(w io.Writer, path, label string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "  [ OK ] No %s file (defaults apply)\n", label)
			return
		}
		fmt.Fprintf(w, "  [WARN] Could not read %s: %v\n", path, err)
		return
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		fmt.Fprintf(w, "  [FAIL] %s does not parse: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s parses (%d keys)\n", path, len(parsed))
}
