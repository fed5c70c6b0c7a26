// Package python probes the ambient Python toolchain: interpreter, pip,
// and the Tk bindings the bot's GUI needs.
package python

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/Chube123go/RedditStoryBot/internal/execx"
)

// Info describes the interpreter found on PATH.
type Info struct {
	Binary  string
	Path    string
	Version string
}

// interpreterProbes is the lookup order. python3 is preferred; bare
// python only counts when it resolves (some distros ship python as 3.x).
var interpreterProbes = []string{"python3", "python"}

// FindInterpreter locates a Python interpreter and reads its version.
// A resolvable binary whose version cannot be parsed still yields an Info
// with an empty Version.
func FindInterpreter(ctx context.Context, r execx.Runner) (*Info, error) {
	for _, bin := range interpreterProbes {
		path, err := r.LookPath(bin)
		if err != nil {
			continue
		}
		info := &Info{Binary: bin, Path: path}
		out, err := r.Output(ctx, execx.Command{Name: bin, Args: []string{"--version"}})
		if err == nil {
			info.Version = ParseVersion(out)
		}
		return info, nil
	}
	return nil, &execx.NotFoundError{Name: "python3"}
}

// ParseVersion extracts the dotted version from `python --version` output
// ("Python 3.11.4" → "3.11.4"). Returns empty when the output has no
// version field.
func ParseVersion(out string) string {
	fields := strings.Fields(out)
	for i, f := range fields {
		if f == "Python" && i+1 < len(fields) {
			return strings.TrimSpace(fields[i+1])
		}
	}
	return ""
}

// MeetsMinimum reports whether version satisfies minimum. Both accept
// partial versions ("3.10") and a leading "v".
func MeetsMinimum(version, minimum string) (bool, error) {
	v, err := parseLenient(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	m, err := parseLenient(minimum)
	if err != nil {
		return false, fmt.Errorf("parsing minimum %q: %w", minimum, err)
	}
	return v.Compare(m) >= 0, nil
}

func parseLenient(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}

// Pip names the pip invocation to use: either a standalone binary or
// `<interpreter> -m pip`.
type Pip struct {
	Name string
	Args []string
}

// String renders the invocation for status output.
func (p Pip) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	return p.Name + " " + strings.Join(p.Args, " ")
}

// Command builds an execx.Command appending args to the pip invocation.
func (p Pip) Command(args ...string) execx.Command {
	return execx.Command{
		Name: p.Name,
		Args: append(append([]string{}, p.Args...), args...),
	}
}

// FindPip probes pip3, then pip, then falls back to `interpreter -m pip`
// when an interpreter name is supplied.
func FindPip(r execx.Runner, interpreter string) (Pip, error) {
	for _, bin := range []string{"pip3", "pip"} {
		if _, err := r.LookPath(bin); err == nil {
			return Pip{Name: bin}, nil
		}
	}
	if interpreter != "" {
		if _, err := r.LookPath(interpreter); err == nil {
			return Pip{Name: interpreter, Args: []string{"-m", "pip"}}, nil
		}
	}
	return Pip{}, &execx.NotFoundError{Name: "pip3"}
}

// CheckTkinter verifies the Tk bindings import cleanly under the given
// interpreter.
func CheckTkinter(ctx context.Context, r execx.Runner, interpreter string) error {
	out, err := r.Output(ctx, execx.Command{
		Name: interpreter,
		Args: []string{"-c", "import tkinter"},
	})
	if err != nil {
		if trimmed := strings.TrimSpace(out); trimmed != "" {
			return fmt.Errorf("tkinter import failed: %w\n%s", err, trimmed)
		}
		return fmt.Errorf("tkinter import failed: %w", err)
	}
	return nil
}
