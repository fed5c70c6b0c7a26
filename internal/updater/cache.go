package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

// DefaultCacheMaxAge is how long a release check result stays fresh.
const DefaultCacheMaxAge = 24 * time.Hour

// VersionCache holds the cached result of the last release check.
type VersionCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the version cache under homeDir.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache(homeDir string) (*VersionCache, error) {
	path := filepath.Join(homeDir, userdata.UpdateCacheFile)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var cache VersionCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the version cache under homeDir.
func SaveCache(homeDir string, cache *VersionCache) error {
	if err := os.MkdirAll(homeDir, userdata.DirPermNormal); err != nil {
		return fmt.Errorf("creating home directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	path := filepath.Join(homeDir, userdata.UpdateCacheFile)
	if err := os.WriteFile(path, data, userdata.FilePermNormal); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is older than maxAge or nil.
func IsCacheStale(cache *VersionCache, maxAge time.Duration) bool {
	if cache == nil {
		return true
	}
	return time.Since(cache.CheckedAt) > maxAge
}
