package profile

import (
	"github.com/Chube123go/RedditStoryBot/internal/platform"
)

// Profile is the root document of a storybot.yaml install profile.
// Every section is optional; an empty profile changes nothing.
type Profile struct {
	Name        string              `yaml:"name,omitempty"`
	Description string              `yaml:"description,omitempty"`
	Bot         *BotOverrides       `yaml:"bot,omitempty"`
	Packages    map[string][]string `yaml:"packages,omitempty"`
}

// BotOverrides adjusts where the bot checkout comes from and how it is
// launched. Empty fields fall back to the configured defaults.
type BotOverrides struct {
	RepoURL    string `yaml:"repo_url,omitempty"`
	Dir        string `yaml:"dir,omitempty"`
	Entrypoint string `yaml:"entrypoint,omitempty"`
}

// platformKeys maps profile document keys onto detected platforms.
var platformKeys = map[string]platform.Platform{
	"macos":  platform.MacOS,
	"arch":   platform.Arch,
	"debian": platform.Debian,
	"fedora": platform.Fedora,
	"centos": platform.CentOS,
}

// PackageOverrides converts the packages section into the form the
// dependency installer consumes. Platforms the profile does not mention
// keep their built-in package lists. Safe to call on a nil profile.
func (p *Profile) PackageOverrides() map[platform.Platform][]string {
	if p == nil || len(p.Packages) == 0 {
		return nil
	}
	out := make(map[platform.Platform][]string, len(p.Packages))
	for key, pkgs := range p.Packages {
		plat, ok := platformKeys[key]
		if !ok {
			// Schema validation rejects unknown keys before this point.
			continue
		}
		out[plat] = append([]string(nil), pkgs...)
	}
	return out
}

// BotRepoURL returns the profile's clone URL override, or "" when unset.
func (p *Profile) BotRepoURL() string {
	if p == nil || p.Bot == nil {
		return ""
	}
	return p.Bot.RepoURL
}

// BotDir returns the profile's checkout directory override, or "" when unset.
func (p *Profile) BotDir() string {
	if p == nil || p.Bot == nil {
		return ""
	}
	return p.Bot.Dir
}

// BotEntrypoint returns the profile's entrypoint override, or "" when unset.
func (p *Profile) BotEntrypoint() string {
	if p == nil || p.Bot == nil {
		return ""
	}
	return p.Bot.Entrypoint
}
