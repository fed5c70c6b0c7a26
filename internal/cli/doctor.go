package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Chube123go/RedditStoryBot/internal/bot"
	"github.com/Chube123go/RedditStoryBot/internal/config"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
	"github.com/Chube123go/RedditStoryBot/internal/platform"
	"github.com/Chube123go/RedditStoryBot/internal/python"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

var (
	doctorFix     bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing pieces of the home directory")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false, "Show resolved paths for each check")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the bot environment",
	Long:  `Run diagnostic checks on the platform, the Python toolchain, and the bot checkout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		d := &doctor{
			runner:  &execx.System{},
			out:     cmd.OutOrStdout(),
			verbose: doctorVerbose,
		}
		d.run(cmd.Context())

		if err := userdata.CheckHome(cmd.OutOrStdout(), doctorFix); err != nil {
			return err
		}

		if d.blocking > 0 {
			return fmt.Errorf("%d blocking problem(s) found", d.blocking)
		}
		return nil
	},
}

// doctor walks the environment checks. [MISS] entries are things an
// install run would fix; only [FAIL] entries block one.
type doctor struct {
	runner  execx.Runner
	out     io.Writer
	verbose bool
	// detect can be set for testing; nil detects the host.
	detect   func(execx.Runner) platform.Platform
	blocking int
}

func (d *doctor) run(ctx context.Context) {
	fmt.Fprintln(d.out, "Environment check:")

	plat := d.checkPlatform()
	if plat == platform.MacOS {
		d.checkBinary("brew", "installed by 'storybot -d' when missing")
	}
	d.checkBinary("git", "installed by 'storybot -d' when missing")

	if info := d.checkPython(ctx); info != nil {
		d.checkTkinter(ctx, info)
		d.checkPip(info)
	}
	d.checkBot()
}

func (d *doctor) checkPlatform() platform.Platform {
	plat := d.detectPlatform()
	if !plat.Supported() {
		d.fail("no supported package manager (looked for pacman, apt, dnf, yum)")
		return plat
	}
	if plat == platform.MacOS {
		d.ok("platform %s", plat)
		return plat
	}
	if path, err := d.runner.LookPath(plat.Manager()); err == nil && d.verbose {
		d.ok("platform %s (%s at %s)", plat, plat.Manager(), path)
	} else {
		d.ok("platform %s (%s)", plat, plat.Manager())
	}
	return plat
}

func (d *doctor) detectPlatform() platform.Platform {
	if d.detect != nil {
		return d.detect(d.runner)
	}
	return platform.Detect(d.runner)
}

func (d *doctor) checkBinary(name, hint string) {
	path, err := d.runner.LookPath(name)
	if err != nil {
		d.miss("%s not found (%s)", name, hint)
		return
	}
	if d.verbose {
		d.ok("%s at %s", name, path)
	} else {
		d.ok("%s", name)
	}
}

func (d *doctor) checkPython(ctx context.Context) *python.Info {
	info, err := python.FindInterpreter(ctx, d.runner)
	if err != nil {
		d.miss("python3 not found (installed by 'storybot -d')")
		return nil
	}
	label := info.Binary
	if d.verbose && info.Path != "" {
		label = info.Path
	}
	if info.Version == "" {
		d.warn("%s found but its version is unreadable", label)
		return info
	}

	minimum := config.PythonMinimum()
	meets, err := python.MeetsMinimum(info.Version, minimum)
	switch {
	case err != nil:
		d.warn("%s %s (cannot compare with minimum %s)", label, info.Version, minimum)
	case meets:
		d.ok("%s %s (minimum %s)", label, info.Version, minimum)
	default:
		d.warn("%s %s is below the minimum %s", label, info.Version, minimum)
	}
	return info
}

func (d *doctor) checkTkinter(ctx context.Context, info *python.Info) {
	if err := python.CheckTkinter(ctx, d.runner, info.Binary); err != nil {
		d.miss("tkinter does not import under %s", info.Binary)
		return
	}
	d.ok("tkinter imports")
}

func (d *doctor) checkPip(info *python.Info) {
	pip, err := python.FindPip(d.runner, info.Binary)
	if err != nil {
		d.miss("pip not found (installed by 'storybot -d')")
		return
	}
	d.ok("pip via %s", pip)
}

func (d *doctor) checkBot() {
	mgr := bot.New(d.runner, io.Discard)
	dir := mgr.Dir()
	if !mgr.Present() {
		d.miss("bot directory %s not found ('storybot -b' fetches it)", dir)
		return
	}
	d.ok("bot directory %s", dir)

	reqs := filepath.Join(dir, "requirements.txt")
	if _, err := os.Stat(reqs); err != nil {
		d.warn("%s missing; the pip install step will fail", reqs)
	} else if d.verbose {
		d.ok("%s", reqs)
	}
}

func (d *doctor) ok(format string, a ...interface{}) {
	fmt.Fprintf(d.out, "  [ OK ] "+format+"\n", a...)
}

func (d *doctor) warn(format string, a ...interface{}) {
	fmt.Fprintf(d.out, "  [WARN] "+format+"\n", a...)
}

func (d *doctor) miss(format string, a ...interface{}) {
	fmt.Fprintf(d.out, "  [MISS] "+format+"\n", a...)
}

func (d *doctor) fail(format string, a ...interface{}) {
	d.blocking++
	fmt.Fprintf(d.out, "  [FAIL] "+format+"\n", a...)
}
