package updater

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

// blockedTransport keeps background refreshes off the network.
type blockedTransport struct{}

func (blockedTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("network blocked in tests")
}

func offlineUpdater(version string) *Updater {
	return New(version, WithHTTPClient(&http.Client{Transport: blockedTransport{}}))
}

// freshCache writes a cache that is current enough to suppress the
// background refresh, keeping tests off the network.
func freshCache(t *testing.T, home string, available bool) {
	t.Helper()
	err := SaveCache(home, &VersionCache{
		LatestVersion:   "0.4.1",
		CurrentVersion:  "0.4.0",
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCheckAndNotify_PrintsFromCache(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv(branding.EnvVar("UPDATE_CHECK"), "")

	home := t.TempDir()
	freshCache(t, home, true)

	var out bytes.Buffer
	New("0.4.0").CheckAndNotify(&out, home)

	if !strings.Contains(out.String(), "Update available: 0.4.0 -> 0.4.1") {
		t.Errorf("missing notice, output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), branding.CLIName()+" update") {
		t.Errorf("notice does not name the update command:\n%s", out.String())
	}
}

func TestCheckAndNotify_QuietWhenCurrent(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv(branding.EnvVar("UPDATE_CHECK"), "")

	home := t.TempDir()
	freshCache(t, home, false)

	var out bytes.Buffer
	New("0.4.0").CheckAndNotify(&out, home)

	if out.Len() != 0 {
		t.Errorf("expected no output when up to date, got:\n%s", out.String())
	}
}

func TestCheckAndNotify_DisabledInCI(t *testing.T) {
	t.Setenv("CI", "true")

	home := t.TempDir()
	freshCache(t, home, true)

	var out bytes.Buffer
	New("0.4.0").CheckAndNotify(&out, home)

	if out.Len() != 0 {
		t.Errorf("expected no output in CI, got:\n%s", out.String())
	}
}

func TestCheckAndNotify_DisabledByEnv(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv(branding.EnvVar("UPDATE_CHECK"), "false")

	home := t.TempDir()
	freshCache(t, home, true)

	var out bytes.Buffer
	New("0.4.0").CheckAndNotify(&out, home)

	if out.Len() != 0 {
		t.Errorf("expected no output when checks are disabled, got:\n%s", out.String())
	}
}

func TestCheckAndNotify_FirstRunSilent(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv(branding.EnvVar("UPDATE_CHECK"), "")

	// No cache file: nothing prints, the stale-cache refresh fires in
	// the background and is not observed here.
	home := t.TempDir()

	var out bytes.Buffer
	offlineUpdater("0.4.0").CheckAndNotify(&out, home)

	if out.Len() != 0 {
		t.Errorf("expected no output on first run, got:\n%s", out.String())
	}
}

func TestCheckAndNotify_IgnoresBrokenCache(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv(branding.EnvVar("UPDATE_CHECK"), "")

	home := t.TempDir()
	path := filepath.Join(home, userdata.UpdateCacheFile)
	if err := os.WriteFile(path, []byte("not json{{{"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	offlineUpdater("0.4.0").CheckAndNotify(&out, home)

	if out.Len() != 0 {
		t.Errorf("expected silence on a broken cache, got:\n%s", out.String())
	}
}
