// Package branding provides compile-time identity values for the CLI.
//
// Forkers pointing the installer at their own bot fork edit branding.yaml
// and rebuild. Go's //go:embed bakes the file into the binary, so the
// released executable carries its identity with no runtime lookups.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	GitHubRepo    string `yaml:"github_repo"`
	BotRepoURL    string `yaml:"bot_repo_url"`
	BotDirName    string `yaml:"bot_dir_name"`
	BotEntrypoint string `yaml:"bot_entrypoint"`
	UpstreamURL   string `yaml:"upstream_url"`
	PythonMinimum string `yaml:"python_minimum"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:       "storybot",
			DisplayName:   "Reddit Story Bot",
			Description:   "Installer and launcher for the Reddit story bot",
			HomeDir:       ".storybot",
			EnvPrefix:     "STORYBOT",
			GoModule:      "github.com/Chube123go/RedditStoryBot",
			GitHubRepo:    "Chube123go/RedditStoryBot",
			BotRepoURL:    "https://github.com/Chube123go/RedditStoryBot.git",
			BotDirName:    "RedditStoryBot",
			BotEntrypoint: "main.py",
			UpstreamURL:   "https://github.com/Chube123go/RedditStoryBot",
			PythonMinimum: "3.10.0",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "storybot").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".storybot").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "STORYBOT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string used for release lookups.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// BotRepoURL returns the default git URL the bot is cloned from.
func BotRepoURL() string { load(); return defaults.BotRepoURL }

// BotDirName returns the directory name the clone produces (e.g.,
// "RedditStoryBot").
func BotDirName() string { load(); return defaults.BotDirName }

// BotEntrypoint returns the script the bot is launched with, relative to
// the bot directory (e.g., "main.py").
func BotEntrypoint() string { load(); return defaults.BotEntrypoint }

// UpstreamURL returns the bot project page, shown in manual-install
// guidance on unsupported platforms.
func UpstreamURL() string { load(); return defaults.UpstreamURL }

// PythonMinimum returns the default minimum interpreter version the bot
// supports.
func PythonMinimum() string { load(); return defaults.PythonMinimum }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") →
// "STORYBOT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
