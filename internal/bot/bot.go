// Package bot fetches the bot repository, installs its Python
// requirements, and launches its entry point. The checkout itself is
// opaque: nothing is read from it except the requirements manifest, and
// that only by pip.
package bot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
	"github.com/Chube123go/RedditStoryBot/internal/config"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
	"github.com/Chube123go/RedditStoryBot/internal/python"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

// requirementsFile is the bot's Python dependency manifest.
const requirementsFile = "requirements.txt"

// Manager drives the bot checkout lifecycle.
type Manager struct {
	Runner execx.Runner
	// Out receives progress lines; defaults to os.Stdout.
	Out io.Writer
	// WorkDir anchors a relative bot directory; empty uses the process
	// working directory.
	WorkDir string
	// RepoURL, DirName, and Entrypoint override the configured values
	// when non-empty. The install profile feeds these.
	RepoURL    string
	DirName    string
	Entrypoint string
}

// New returns a Manager running commands through r and reporting to out.
func New(r execx.Runner, out io.Writer) *Manager {
	return &Manager{Runner: r, Out: out}
}

func (m *Manager) out() io.Writer {
	if m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// Dir returns the bot directory, resolving a relative name against
// WorkDir when set.
func (m *Manager) Dir() string {
	dir := m.DirName
	if dir == "" {
		dir = config.BotDir()
	}
	if !filepath.IsAbs(dir) && m.WorkDir != "" {
		return filepath.Join(m.WorkDir, dir)
	}
	return dir
}

// Present reports whether the bot directory exists.
func (m *Manager) Present() bool {
	info, err := os.Stat(m.Dir())
	return err == nil && info.IsDir()
}

// Fetch clones the bot repository into Dir. A directory left over from a
// prior run is not reused or removed; git's own failure propagates.
func (m *Manager) Fetch(ctx context.Context) error {
	if _, err := m.Runner.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}

	url := m.RepoURL
	if url == "" {
		url = config.BotRepoURL()
	}
	dir := m.Dir()
	fmt.Fprintf(m.out(), "-> Cloning %s\n", url)

	out, err := m.Runner.Output(ctx, execx.Command{
		Name: "git",
		Args: []string{"clone", url, dir},
	})
	if err != nil {
		if trimmed := strings.TrimSpace(out); trimmed != "" {
			return fmt.Errorf("cloning bot repository: %w\n%s", err, trimmed)
		}
		return fmt.Errorf("cloning bot repository: %w", err)
	}

	fmt.Fprintf(m.out(), "✓ Cloned into %s\n", dir)
	return nil
}

// InstallRequirements runs pip against the bot's requirements manifest
// inside the bot directory. The manifest itself is not pre-checked; pip
// reports its absence.
func (m *Manager) InstallRequirements(ctx context.Context) error {
	dir := m.Dir()
	if !m.Present() {
		return fmt.Errorf("bot directory %s not found: run '%s -b' to fetch it", dir, branding.CLIName())
	}

	pip, err := python.FindPip(m.Runner, m.interpreter(ctx))
	if err != nil {
		return fmt.Errorf("locating pip: %w", err)
	}

	args := []string{"install"}
	prefs, _ := userdata.LoadPreferences()
	if userdata.DetectInstallMode(prefs) == userdata.PipUser {
		args = append(args, "--user")
	}
	args = append(args, "-r", requirementsFile)

	cmd := pip.Command(args...)
	cmd.Dir = dir

	fmt.Fprintf(m.out(), "-> Installing Python requirements (%s)\n", pip.String())
	if err := m.Runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("installing python requirements: %w", err)
	}

	fmt.Fprintln(m.out(), "✓ Python requirements installed")
	return nil
}

// Run launches the bot entry point in the bot directory with stdio
// attached. The bot's exit status propagates as an ExitError.
func (m *Manager) Run(ctx context.Context) error {
	dir := m.Dir()
	if !m.Present() {
		return fmt.Errorf("bot directory %s not found: run '%s -b' to fetch it", dir, branding.CLIName())
	}

	entry := m.Entrypoint
	if entry == "" {
		entry = config.BotEntrypoint()
	}
	interp := m.interpreter(ctx)
	fmt.Fprintf(m.out(), "-> Launching %s with %s\n", entry, interp)

	return m.Runner.Run(ctx, execx.Command{
		Name: interp,
		Args: []string{entry},
		Dir:  dir,
	})
}

// interpreter picks the python binary: the preferences override wins,
// then whatever resolves on PATH, then python3 so the eventual run error
// names the conventional binary.
func (m *Manager) interpreter(ctx context.Context) string {
	if prefs, err := userdata.LoadPreferences(); err == nil && prefs.Python != "" {
		return prefs.Python
	}
	if info, err := python.FindInterpreter(ctx, m.Runner); err == nil {
		return info.Binary
	}
	return "python3"
}
