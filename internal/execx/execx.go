package execx

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes one external command invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory for the command; empty inherits the
	// process working directory.
	Dir string
	// Env holds extra KEY=VALUE entries appended to the inherited
	// environment. Later entries win on duplicate keys.
	Env []string
	// Stdin overrides the command's standard input; nil attaches the
	// process stdin so interactive tools (sudo, apt) keep working.
	Stdin io.Reader
}

// String renders the command line for error and log messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// NotFoundError reports a binary that is not present on PATH.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Name)
}

// ExitError reports a command that ran and exited non-zero.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

// IsNotFound reports whether err wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ExitCode returns the exit status carried by err, or -1 when err does not
// wrap an ExitError.
func ExitCode(err error) int {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return -1
}

// Runner abstracts external command execution.
type Runner interface {
	// Run executes the command, streaming its output, and blocks until it
	// finishes. A missing binary yields a NotFoundError, a non-zero exit
	// an ExitError.
	Run(ctx context.Context, cmd Command) error
	// Output executes the command and returns its combined output. The
	// output is returned even when the command fails so callers can fold
	// it into error messages.
	Output(ctx context.Context, cmd Command) (string, error)
	// LookPath resolves a binary name against PATH, yielding a
	// NotFoundError when absent.
	LookPath(name string) (string, error)
}

// System runs commands on the host.
type System struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*System)(nil)

// LookPath resolves name via the process PATH.
func (s *System) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &NotFoundError{Name: name}
	}
	return path, nil
}

// Run executes cmd with output streamed to the configured writers and
// stdin attached unless the command provides its own.
func (s *System) Run(ctx context.Context, cmd Command) error {
	c, err := s.build(ctx, cmd)
	if err != nil {
		return err
	}

	stdout := s.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := s.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	c.Stdout = stdout
	c.Stderr = stderr

	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	} else {
		c.Stdin = os.Stdin
	}

	return s.wait(cmd, c.Run())
}

// Output executes cmd and captures combined stdout+stderr. No stdin is
// attached; probes must not block on input.
func (s *System) Output(ctx context.Context, cmd Command) (string, error) {
	c, err := s.build(ctx, cmd)
	if err != nil {
		return "", err
	}
	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}

	out, runErr := c.CombinedOutput()
	return string(out), s.wait(cmd, runErr)
}

func (s *System) build(ctx context.Context, cmd Command) (*exec.Cmd, error) {
	bin := cmd.Name
	if !strings.ContainsRune(bin, os.PathSeparator) {
		resolved, err := s.LookPath(bin)
		if err != nil {
			return nil, err
		}
		bin = resolved
	}

	c := exec.CommandContext(ctx, bin, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(os.Environ(), cmd.Env...)
	}
	return c, nil
}

// wait maps an exec error onto the execx error taxonomy.
func (s *System) wait(cmd Command, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Cmd: cmd.String(), Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("running %s: %w", cmd.String(), err)
}
