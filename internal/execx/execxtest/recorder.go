// Package execxtest provides an in-memory Runner for tests: it records
// every command and scripts outcomes, so install flows can assert on what
// would have run without executing anything.
package execxtest

import (
	"context"
	"strings"

	"github.com/Chube123go/RedditStoryBot/internal/execx"
)

// Recorder implements execx.Runner. Zero value: every binary resolves,
// every command succeeds with empty output.
type Recorder struct {
	// Missing names binaries LookPath reports as absent.
	Missing map[string]bool
	// ExitCodes maps a command-line prefix (see Ran) to a non-zero exit
	// status returned by Run/Output.
	ExitCodes map[string]int
	// Outputs maps a command-line prefix to the combined output Output
	// returns for it.
	Outputs map[string]string

	// Commands records every Run and Output invocation in order.
	Commands []execx.Command
	// Lookups records every LookPath name in order.
	Lookups []string
}

var _ execx.Runner = (*Recorder)(nil)

func (r *Recorder) LookPath(name string) (string, error) {
	r.Lookups = append(r.Lookups, name)
	if r.Missing[name] {
		return "", &execx.NotFoundError{Name: name}
	}
	return "/usr/bin/" + name, nil
}

func (r *Recorder) Run(ctx context.Context, cmd execx.Command) error {
	r.Commands = append(r.Commands, cmd)
	return r.result(cmd)
}

func (r *Recorder) Output(ctx context.Context, cmd execx.Command) (string, error) {
	r.Commands = append(r.Commands, cmd)
	out := ""
	for prefix, text := range r.Outputs {
		if strings.HasPrefix(cmd.String(), prefix) {
			out = text
			break
		}
	}
	return out, r.result(cmd)
}

func (r *Recorder) result(cmd execx.Command) error {
	if r.Missing[cmd.Name] {
		return &execx.NotFoundError{Name: cmd.Name}
	}
	line := cmd.String()
	for prefix, code := range r.ExitCodes {
		if strings.HasPrefix(line, prefix) {
			return &execx.ExitError{Cmd: line, Code: code}
		}
	}
	return nil
}

// Ran reports whether any recorded command line starts with prefix.
func (r *Recorder) Ran(prefix string) bool {
	for _, c := range r.Commands {
		if strings.HasPrefix(c.String(), prefix) {
			return true
		}
	}
	return false
}

// Lines returns every recorded command rendered as a command line, in
// execution order.
func (r *Recorder) Lines() []string {
	lines := make([]string, 0, len(r.Commands))
	for _, c := range r.Commands {
		lines = append(lines, c.String())
	}
	return lines
}
