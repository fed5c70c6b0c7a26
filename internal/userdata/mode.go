package userdata

import (
	"os"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
)

// InstallMode controls where pip places the bot's Python packages.
type InstallMode int

const (
	// PipSystem installs into the ambient interpreter environment.
	PipSystem InstallMode = iota
	// PipUser adds --user so packages land in the per-user site directory.
	PipUser
)

// DetectInstallMode returns the pip install mode. The STORYBOT_PIP_INSTALL
// environment variable wins over the preferences file; anything other than
// "user" means a system install.
func DetectInstallMode(p *Preferences) InstallMode {
	v := os.Getenv(branding.EnvVar("PIP_INSTALL"))
	if v == "" && p != nil {
		v = p.PipInstall
	}
	if v == "user" {
		return PipUser
	}
	return PipSystem
}

// String returns a human-readable name for the mode.
func (m InstallMode) String() string {
	switch m {
	case PipUser:
		return "user"
	case PipSystem:
		return "system"
	default:
		return "unknown"
	}
}
