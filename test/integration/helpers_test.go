//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // holds the sandboxed .storybot home
	WorkDir string // where the bot checkout lands
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so every storybot operation is sandboxed. CI is set so the
// startup release check stays quiet.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("STORYBOT_HOME", filepath.Join(env.HomeDir, ".storybot"))
	t.Setenv("CI", "true")
	t.Chdir(env.WorkDir)

	return env
}

// writeHomeFile creates a file under the sandboxed storybot home.
func writeHomeFile(t *testing.T, env *testEnv, name, content string) string {
	t.Helper()
	path := filepath.Join(env.HomeDir, ".storybot", name)
	writeFile(t, path, content)
	return path
}

// writeBotCheckout fakes a cloned bot directory inside the work dir.
func writeBotCheckout(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	dir := filepath.Join(env.WorkDir, name)
	writeFile(t, filepath.Join(dir, "requirements.txt"), "praw\nmoviepy\n")
	writeFile(t, filepath.Join(dir, "main.py"), "print('bot')\n")
	return dir
}

// writeFile creates a file at the given path, making parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertDirExists fails the test if the directory does not exist.
func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
