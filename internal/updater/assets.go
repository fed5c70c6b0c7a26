package updater

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
)

// ArchiveName returns the expected archive filename for the current
// platform, matching the release template storybot_{os}_{arch}.tar.gz
// (.zip on Windows).
func ArchiveName() string {
	ext := ".tar.gz"
	if runtime.GOOS == "windows" {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", branding.CLIName(), runtime.GOOS, runtime.GOARCH, ext)
}

// SelectAssetForPlatform finds the asset matching the current OS/arch.
func SelectAssetForPlatform(assets []Asset) (*Asset, error) {
	expected := ArchiveName()
	for i := range assets {
		if assets[i].Name == expected {
			return &assets[i], nil
		}
	}

	// Fall back to matching the os_arch pattern anywhere in the name.
	pattern := fmt.Sprintf("%s_%s", runtime.GOOS, runtime.GOARCH)
	for i := range assets {
		if strings.Contains(assets[i].Name, pattern) && isArchive(assets[i].Name) {
			return &assets[i], nil
		}
	}

	return nil, fmt.Errorf("no asset found for %s/%s (expected %s)", runtime.GOOS, runtime.GOARCH, expected)
}

func isArchive(name string) bool {
	return strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".zip")
}
