// Package install drives one end-to-end setup run: confirm with the user,
// then execute the subset of {system deps, fetch bot, python deps} the mode
// flags select, and finally offer to launch the bot.
package install

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Chube123go/RedditStoryBot/internal/bot"
	"github.com/Chube123go/RedditStoryBot/internal/deps"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
	"github.com/Chube123go/RedditStoryBot/internal/platform"
	"github.com/Chube123go/RedditStoryBot/internal/profile"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

// ErrDeclined reports that the user answered the pre-install confirmation
// with anything but yes.
var ErrDeclined = errors.New("aborted by user")

// Options selects the steps of an install run. The zero value is the full
// default path: system deps, fetch, python deps.
type Options struct {
	// AssumeYes skips every confirmation prompt.
	AssumeYes bool

	// Mode flags. When several are set the first in this order wins.
	DepsOnly   bool
	PythonOnly bool
	BotOnly    bool
	BotPython  bool
}

// Flow wires one install run together.
type Flow struct {
	Runner execx.Runner
	In     io.Reader
	Out    io.Writer
	Err    io.Writer

	// WorkDir anchors the bot checkout; empty means the process working
	// directory.
	WorkDir string

	// Profile carries storybot.yaml overrides; nil applies none.
	Profile *profile.Profile

	// DetectPlatform can be set for testing; nil detects the host.
	DetectPlatform func(execx.Runner) platform.Platform

	scanner *bufio.Scanner
}

func (f *Flow) in() io.Reader {
	if f.In != nil {
		return f.In
	}
	return os.Stdin
}

func (f *Flow) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *Flow) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Run executes the flow for the given options. It returns ErrDeclined when
// the user refuses the pre-install confirmation; any other error is the
// first failing step's.
func (f *Flow) Run(ctx context.Context, opts Options) error {
	plat := f.platform()
	fmt.Fprintf(f.out(), "Detected platform: %s\n", plat)

	assumeYes := opts.AssumeYes || f.preferredYes()
	if !assumeYes {
		if !f.confirm("This will install system packages and set up the bot. Continue?") {
			return ErrDeclined
		}
	}

	mgr := f.botManager()

	switch {
	case opts.DepsOnly:
		if err := f.installDeps(ctx, plat); err != nil {
			return err
		}
	case opts.PythonOnly:
		if err := mgr.InstallRequirements(ctx); err != nil {
			return err
		}
	case opts.BotOnly:
		if err := mgr.Fetch(ctx); err != nil {
			return err
		}
	case opts.BotPython:
		if err := mgr.Fetch(ctx); err != nil {
			return err
		}
		if err := mgr.InstallRequirements(ctx); err != nil {
			return err
		}
	default:
		if err := f.installDeps(ctx, plat); err != nil {
			return err
		}
		if err := mgr.Fetch(ctx); err != nil {
			return err
		}
		if err := mgr.InstallRequirements(ctx); err != nil {
			return err
		}
	}

	return f.offerRun(ctx, mgr, assumeYes)
}

func (f *Flow) platform() platform.Platform {
	if f.DetectPlatform != nil {
		return f.DetectPlatform(f.Runner)
	}
	return platform.Detect(f.Runner)
}

// preferredYes reports whether preferences.yaml carries assume_yes.
func (f *Flow) preferredYes() bool {
	prefs, err := userdata.LoadPreferences()
	return err == nil && prefs.AssumeYes
}

func (f *Flow) installDeps(ctx context.Context, plat platform.Platform) error {
	if !plat.Supported() {
		fmt.Fprint(f.errOut(), deps.Guidance())
		return fmt.Errorf("unsupported platform")
	}
	inst := deps.New(f.Runner, f.out())
	inst.Packages = f.Profile.PackageOverrides()
	return inst.Install(ctx, plat)
}

func (f *Flow) botManager() *bot.Manager {
	m := bot.New(f.Runner, f.out())
	m.WorkDir = f.WorkDir
	m.RepoURL = f.Profile.BotRepoURL()
	m.DirName = f.Profile.BotDir()
	m.Entrypoint = f.Profile.BotEntrypoint()
	return m
}

// offerRun launches the bot when its directory exists and the user wants
// it. Declining here is not an error; only the pre-install gate is.
func (f *Flow) offerRun(ctx context.Context, mgr *bot.Manager, assumeYes bool) error {
	if !mgr.Present() {
		return nil
	}
	if !assumeYes && !f.confirm("Run the bot now?") {
		return nil
	}
	return mgr.Run(ctx)
}

// confirm asks a yes/no question and accepts only an explicit y or yes.
// Empty input, EOF, and a non-terminal stdin all count as no.
func (f *Flow) confirm(question string) bool {
	if !f.interactive() {
		return false
	}
	fmt.Fprintf(f.out(), "%s (y/n) ", question)
	sc := f.scan()
	if !sc.Scan() {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(sc.Text()))
	return answer == "y" || answer == "yes"
}

// interactive reports whether prompting on In makes sense. An injected
// reader always does; a real file must be a terminal.
func (f *Flow) interactive() bool {
	file, ok := f.in().(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(file.Fd()))
}

// scan returns the flow's line scanner. A single scanner is reused so
// consecutive prompts do not lose buffered input.
func (f *Flow) scan() *bufio.Scanner {
	if f.scanner == nil {
		f.scanner = bufio.NewScanner(f.in())
	}
	return f.scanner
}
