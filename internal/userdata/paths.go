package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
)

// File and directory names inside the home root.
const (
	LogsDir         = "logs"
	PreferencesFile = "preferences.yaml"
	UpdateCacheFile = "update-check.json"

	// InstallProfileFile is the optional install profile, searched in the
	// working directory first and the home root second.
	InstallProfileFile = "storybot.yaml"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// GetHomeRoot returns the storybot home directory. It checks the
// STORYBOT_HOME environment variable first, then falls back to
// ~/.storybot.
func GetHomeRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// GetLogsDir returns the path to the logs/ directory within the home root.
func GetLogsDir() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, LogsDir), nil
}

// GetPreferencesPath returns the path to preferences.yaml within the home
// root.
func GetPreferencesPath() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, PreferencesFile), nil
}

// GetUpdateCachePath returns the path to the release-check cache file.
func GetUpdateCachePath() (string, error) {
	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, UpdateCacheFile), nil
}

// LocateInstallProfile returns the install profile to load: storybot.yaml
// in the working directory wins over the one in the home root. An empty
// path means no profile exists.
func LocateInstallProfile() (string, error) {
	if _, err := os.Stat(InstallProfileFile); err == nil {
		return InstallProfileFile, nil
	}

	root, err := GetHomeRoot()
	if err != nil {
		return "", err
	}
	homeProfile := filepath.Join(root, InstallProfileFile)
	if _, err := os.Stat(homeProfile); err == nil {
		return homeProfile, nil
	}
	return "", nil
}
