package deps

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
	"github.com/Chube123go/RedditStoryBot/internal/platform"
)

// brewBootstrapScript fetches and runs the official Homebrew installer.
// NONINTERACTIVE is set so the script never waits for a keypress.
const brewBootstrapScript = "curl -fsSL https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh | /bin/bash"

// shellenvLine makes future shells pick up the arm64 Homebrew prefix.
const shellenvLine = `eval "$(/opt/homebrew/bin/brew shellenv)"`

// defaultPackages holds the per-platform package lists. Order matters on
// CentOS, where epel-release must land before python3-pip resolves.
var defaultPackages = map[platform.Platform][]string{
	platform.MacOS:  {"python@3.10", "tcl-tk", "python-tk", "git"},
	platform.Arch:   {"python", "tk", "git"},
	platform.Debian: {"python3", "python3-tk", "python3-pip", "git"},
	platform.Fedora: {"python3", "python3-tkinter", "python3-pip", "python3-devel", "git"},
	platform.CentOS: {"python3", "python3-tkinter", "epel-release", "python3-pip", "git"},
}

// Step is one external command in an install sequence.
type Step struct {
	Name string
	Cmd  execx.Command
}

// Installer drives the per-platform install sequences.
type Installer struct {
	Runner execx.Runner
	// Out receives progress lines; defaults to os.Stdout.
	Out io.Writer
	// Packages overrides the per-platform package lists (install profile);
	// nil falls back to the built-in defaults.
	Packages map[platform.Platform][]string

	// AppleSilicon can be set for testing; nil detects the host hardware.
	AppleSilicon func() bool
	// ShellProfile can be set for testing; empty resolves ~/.zprofile.
	ShellProfile string
}

// New returns an Installer running commands through r and reporting to out.
func New(r execx.Runner, out io.Writer) *Installer {
	return &Installer{Runner: r, Out: out}
}

func (i *Installer) out() io.Writer {
	if i.Out != nil {
		return i.Out
	}
	return os.Stdout
}

func (i *Installer) packages(p platform.Platform) []string {
	if i.Packages != nil {
		if pkgs, ok := i.Packages[p]; ok && len(pkgs) > 0 {
			return pkgs
		}
	}
	return defaultPackages[p]
}

// Plan returns the fixed install sequence for a supported platform. The
// macOS plan covers only the package steps; Homebrew bootstrapping is
// conditional and handled by Install.
func (i *Installer) Plan(p platform.Platform) ([]Step, error) {
	pkgs := i.packages(p)
	switch p {
	case platform.MacOS:
		return []Step{{
			Name: "Install Homebrew packages",
			Cmd:  execx.Command{Name: "brew", Args: append([]string{"install"}, pkgs...)},
		}}, nil
	case platform.Arch:
		return []Step{
			{
				Name: "Install system packages",
				Cmd:  execx.Command{Name: "sudo", Args: append([]string{"pacman", "-S", "--needed", "--noconfirm"}, pkgs...)},
			},
			{
				Name: "Bootstrap pip",
				Cmd:  execx.Command{Name: "python", Args: []string{"-m", "ensurepip", "--upgrade"}},
			},
		}, nil
	case platform.Debian:
		return []Step{{
			Name: "Install system packages",
			Cmd:  execx.Command{Name: "sudo", Args: append([]string{"apt", "install", "-y"}, pkgs...)},
		}}, nil
	case platform.Fedora:
		return []Step{{
			Name: "Install system packages",
			Cmd:  execx.Command{Name: "sudo", Args: append([]string{"dnf", "install", "-y"}, pkgs...)},
		}}, nil
	case platform.CentOS:
		// One yum call per package so the EPEL repo is in place before
		// anything that lives in it.
		steps := make([]Step, 0, len(pkgs))
		for _, pkg := range pkgs {
			steps = append(steps, Step{
				Name: "Install " + pkg,
				Cmd:  execx.Command{Name: "sudo", Args: []string{"yum", "install", "-y", pkg}},
			})
		}
		return steps, nil
	default:
		return nil, fmt.Errorf("no install sequence for platform %q", p)
	}
}

// Install runs the platform's sequence, stopping at the first failure.
func (i *Installer) Install(ctx context.Context, p platform.Platform) error {
	if !p.Supported() {
		return fmt.Errorf("unsupported platform")
	}

	if p == platform.MacOS {
		if err := i.ensureHomebrew(ctx); err != nil {
			return err
		}
	}

	steps, err := i.Plan(p)
	if err != nil {
		return err
	}

	for _, step := range steps {
		fmt.Fprintf(i.out(), "-> %s\n", step.Name)
		fmt.Fprintf(i.out(), "   $ %s\n", step.Cmd.String())
		if err := i.Runner.Run(ctx, step.Cmd); err != nil {
			return fmt.Errorf("install step %q: %w", step.Name, err)
		}
	}

	fmt.Fprintf(i.out(), "✓ System dependencies installed (%s)\n", p.Manager())
	return nil
}

// ensureHomebrew makes brew usable: detects it on PATH and bootstraps it
// when absent. On Apple silicon the new prefix is appended to ~/.zprofile
// for future shells and prepended to this process's PATH so the package
// steps that follow can find brew.
func (i *Installer) ensureHomebrew(ctx context.Context) error {
	if _, err := i.Runner.LookPath("brew"); err == nil {
		fmt.Fprintln(i.out(), "✓ Homebrew already installed")
		return nil
	}

	fmt.Fprintln(i.out(), "-> Installing Homebrew")
	cmd := execx.Command{
		Name: "/bin/bash",
		Args: []string{"-c", brewBootstrapScript},
		Env:  []string{"NONINTERACTIVE=1"},
	}
	if err := i.Runner.Run(ctx, cmd); err != nil {
		return fmt.Errorf("installing Homebrew: %w", err)
	}

	if i.isAppleSilicon() {
		if err := i.persistBrewPath(); err != nil {
			return err
		}
	}

	fmt.Fprintln(i.out(), "✓ Homebrew installed")
	return nil
}

func (i *Installer) isAppleSilicon() bool {
	if i.AppleSilicon != nil {
		return i.AppleSilicon()
	}
	return platform.AppleSilicon()
}

// persistBrewPath records the arm64 brew prefix in the shell profile and
// the current process environment.
func (i *Installer) persistBrewPath() error {
	profile := i.ShellProfile
	if profile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		profile = filepath.Join(home, ".zprofile")
	}

	f, err := os.OpenFile(profile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening shell profile %s: %w", profile, err)
	}
	if _, err := fmt.Fprintln(f, shellenvLine); err != nil {
		f.Close()
		return fmt.Errorf("updating shell profile %s: %w", profile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("updating shell profile %s: %w", profile, err)
	}
	fmt.Fprintf(i.out(), "✓ Added Homebrew to %s\n", profile)

	// Future shells read the profile; this process needs the prefix now so
	// the brew steps that follow resolve.
	brewBin := "/opt/homebrew/bin"
	path := os.Getenv("PATH")
	if !strings.Contains(path, brewBin) {
		os.Setenv("PATH", brewBin+string(os.PathListSeparator)+path)
	}
	return nil
}

// Guidance returns manual-install instructions shown on unsupported
// platforms.
func Guidance() string {
	var b strings.Builder
	fmt.Fprintln(&b, "No supported package manager found (looked for pacman, apt, dnf, yum).")
	fmt.Fprintln(&b, "Install these manually, then re-run:")
	fmt.Fprintln(&b, "  - Python 3 with Tk bindings")
	fmt.Fprintln(&b, "  - pip")
	fmt.Fprintln(&b, "  - git")
	fmt.Fprintf(&b, "See %s for details.\n", branding.UpstreamURL())
	return b.String()
}
