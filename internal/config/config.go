package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyBotRepoURL    = "bot_repo_url"
	KeyBotDir        = "bot_dir"
	KeyBotEntrypoint = "bot_entrypoint"
	KeyPythonMinimum = "python_minimum"
	KeyUpdateCheck   = "update_check"
	KeyUpdateMirror  = "update_mirror"
)

// Keys lists every recognized config key, in display order.
func Keys() []string {
	return []string{
		KeyBotRepoURL,
		KeyBotDir,
		KeyBotEntrypoint,
		KeyPythonMinimum,
		KeyUpdateCheck,
		KeyUpdateMirror,
	}
}

// Dir returns the path to the config directory (~/.storybot/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.storybot/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// resolve checks (in order) the <PREFIX>_<KEY> env var, the config key,
// then the branding fallback.
func resolve(key, fallback string) string {
	if v := os.Getenv(branding.EnvVar(key)); v != "" {
		return v
	}
	if v := Get(key); v != "" {
		return v
	}
	return fallback
}

// BotRepoURL returns the git URL the bot is cloned from.
func BotRepoURL() string {
	return resolve(KeyBotRepoURL, branding.BotRepoURL())
}

// BotDir returns the directory the bot lives in. Relative values resolve
// against the current working directory, matching where a clone lands.
func BotDir() string {
	return resolve(KeyBotDir, branding.BotDirName())
}

// BotEntrypoint returns the script the bot launches with, relative to the
// bot directory.
func BotEntrypoint() string {
	return resolve(KeyBotEntrypoint, branding.BotEntrypoint())
}

// PythonMinimum returns the minimum python version the bot supports.
func PythonMinimum() string {
	return resolve(KeyPythonMinimum, branding.PythonMinimum())
}

// UpdateCheckEnabled reports whether the startup release check may run.
// Any value other than "false"/"0" keeps it on.
func UpdateCheckEnabled() bool {
	v := resolve(KeyUpdateCheck, "true")
	return v != "false" && v != "0"
}

// UpdateMirror returns the release download mirror, or "" to download
// straight from GitHub.
func UpdateMirror() string {
	return resolve(KeyUpdateMirror, "")
}

// Resolved returns the effective value of a known key after env, file,
// and default resolution. Unknown keys read straight from the file.
func Resolved(key string) string {
	switch key {
	case KeyBotRepoURL:
		return BotRepoURL()
	case KeyBotDir:
		return BotDir()
	case KeyBotEntrypoint:
		return BotEntrypoint()
	case KeyPythonMinimum:
		return PythonMinimum()
	case KeyUpdateCheck:
		return resolve(KeyUpdateCheck, "true")
	case KeyUpdateMirror:
		return UpdateMirror()
	}
	return Get(key)
}
