package updater

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
	"github.com/Chube123go/RedditStoryBot/internal/config"
)

// Enabled reports whether startup release checks should run at all.
// CI environments and the update_check setting turn them off.
func Enabled() bool {
	if os.Getenv("CI") != "" {
		return false
	}
	return config.UpdateCheckEnabled()
}

// CheckAndNotify prints an update notice when the cached check says a
// newer CLI exists, then refreshes a stale cache in the background for
// the next invocation. It never blocks and never fails the surrounding
// command.
func (u *Updater) CheckAndNotify(w io.Writer, homeDir string) {
	if !Enabled() {
		return
	}

	cache, err := LoadCache(homeDir)
	if err != nil {
		// A broken cache file is not worth interrupting the run for.
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateNotice(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go u.refreshCache(homeDir)
	}
}

// PrintUpdateNotice prints the update notification to w.
func PrintUpdateNotice(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s update` to upgrade\n\n", branding.CLIName())
}

// refreshCache fetches the latest version and rewrites the cache file.
// Runs in a background goroutine and never fails loudly.
func (u *Updater) refreshCache(homeDir string) {
	release, err := u.CheckLatestVersion()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = SaveCache(homeDir, &VersionCache{
		LatestVersion:   release.Version,
		CurrentVersion:  u.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
