package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "bare binary",
			cmd:  Command{Name: "git"},
			want: "git",
		},
		{
			name: "with args",
			cmd:  Command{Name: "sudo", Args: []string{"apt", "install", "-y", "git"}},
			want: "sudo apt install -y git",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLookPath_Missing(t *testing.T) {
	s := &System{}
	_, err := s.LookPath("storybot-definitely-not-a-binary")
	if err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound returned false for a NotFoundError")
	}
}

func TestRun_MissingBinary(t *testing.T) {
	s := &System{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := s.Run(context.Background(), Command{Name: "storybot-definitely-not-a-binary"})
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestRun_StreamsOutput(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	var stdout, stderr bytes.Buffer
	s := &System{Stdout: &stdout, Stderr: &stderr}

	err := s.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "echo out; echo err 1>&2"},
		Stdin: strings.NewReader(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "out" {
		t.Errorf("stdout = %q, want %q", got, "out")
	}
	if got := strings.TrimSpace(stderr.String()); got != "err" {
		t.Errorf("stderr = %q, want %q", got, "err")
	}
}

func TestRun_NonZeroExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	s := &System{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := s.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "exit 3"},
		Stdin: strings.NewReader(""),
	})
	if err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}

	var ee *ExitError
	if !errors.As(err, &ee) {
		t.Fatalf("expected *ExitError, got %T: %v", err, err)
	}
	if ee.Code != 3 {
		t.Errorf("exit code = %d, want 3", ee.Code)
	}
	if ExitCode(err) != 3 {
		t.Errorf("ExitCode(err) = %d, want 3", ExitCode(err))
	}
}

func TestOutput_CapturesCombined(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	s := &System{}
	out, err := s.Output(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo from-stdout; echo from-stderr 1>&2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "from-stdout") || !strings.Contains(out, "from-stderr") {
		t.Errorf("combined output missing streams: %q", out)
	}
}

func TestOutput_ReturnsOutputOnFailure(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	s := &System{}
	out, err := s.Output(context.Background(), Command{
		Name: "sh",
		Args: []string{"-c", "echo boom; exit 1"},
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("output on failure = %q, want it to contain %q", out, "boom")
	}
}

func TestRun_SetsDirAndEnv(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	dir := t.TempDir()
	var stdout bytes.Buffer
	s := &System{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	err := s.Run(context.Background(), Command{
		Name:  "sh",
		Args:  []string{"-c", "pwd; printf '%s\n' \"$STORYBOT_PROBE\""},
		Dir:   dir,
		Env:   []string{"STORYBOT_PROBE=ok"},
		Stdin: strings.NewReader(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %v", lines)
	}
	if !strings.HasSuffix(lines[0], trimPrivate(dir)) {
		t.Errorf("pwd = %q, want suffix %q", lines[0], dir)
	}
	if lines[1] != "ok" {
		t.Errorf("env probe = %q, want %q", lines[1], "ok")
	}
}

// trimPrivate drops the /private prefix macOS adds to temp paths so the
// suffix comparison holds on darwin too.
func trimPrivate(path string) string {
	return strings.TrimPrefix(path, "/private")
}

func TestExitCode_NonExitError(t *testing.T) {
	if ExitCode(errors.New("plain")) != -1 {
		t.Error("expected -1 for a non-exit error")
	}
	if ExitCode(nil) != -1 {
		t.Error("expected -1 for nil")
	}
}
