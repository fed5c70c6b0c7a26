package updater

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
)

const (
	githubAPIBase = "https://api.github.com"

	// tagPrefix marks CLI releases in the shared bot repository.
	tagPrefix = "cli-v"
)

// CheckLatestVersion finds the newest CLI release. The releases/latest
// endpoint cannot be trusted here because bot releases share the
// repository, so the release list is scanned for the first cli-v tag.
func (u *Updater) CheckLatestVersion() (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases?per_page=30", githubAPIBase, branding.GitHubRepo())

	body, err := u.get(url)
	if err != nil {
		return nil, err
	}

	var releases []Release
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("parsing release list JSON: %w", err)
	}

	release, err := pickCLIRelease(releases)
	if err != nil {
		return nil, err
	}
	return u.finishRelease(release), nil
}

// CheckSpecificVersion fetches a CLI release by version. Accepts "1.2.0",
// "v1.2.0", or a full "cli-v1.2.0" tag.
func (u *Updater) CheckSpecificVersion(version string) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/tags/%s", githubAPIBase, branding.GitHubRepo(), cliTag(version))

	body, err := u.get(url)
	if err != nil {
		return nil, err
	}

	var release Release
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	return u.finishRelease(&release), nil
}

// pickCLIRelease returns the first release carrying a CLI tag. GitHub
// returns releases newest first, so the first match is the latest.
func pickCLIRelease(releases []Release) (*Release, error) {
	for i := range releases {
		if strings.HasPrefix(releases[i].TagName, tagPrefix) {
			return &releases[i], nil
		}
	}
	return nil, fmt.Errorf("no CLI release (%sX.Y.Z tag) found in %s", tagPrefix, branding.GitHubRepo())
}

// cliTag normalizes a user-supplied version into a CLI release tag.
func cliTag(version string) string {
	if strings.HasPrefix(version, tagPrefix) {
		return version
	}
	return tagPrefix + strings.TrimPrefix(version, "v")
}

// finishRelease derives the semver version and applies the mirror rewrite.
func (u *Updater) finishRelease(r *Release) *Release {
	r.Version = strings.TrimPrefix(r.TagName, tagPrefix)

	if u.mirror != "" {
		for i := range r.Assets {
			r.Assets[i].DownloadURL = strings.TrimRight(u.mirror, "/") + "/" + r.Assets[i].Name
		}
	}
	return r
}

// get performs a GitHub API request and returns the response body.
func (u *Updater) get(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)

	// Optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("release not found")
	}
	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return body, nil
}
