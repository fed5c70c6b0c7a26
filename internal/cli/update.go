package cli

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/Chube123go/RedditStoryBot/internal/config"
	"github.com/Chube123go/RedditStoryBot/internal/updater"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

var (
	updateCheck   bool
	updateForce   bool
	updateVersion string
)

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false, "Only check for updates, don't install")
	updateCmd.Flags().BoolVar(&updateForce, "force", false, "Force update even if already on latest version")
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "Install a specific version (e.g., 0.4.1)")

	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:     "update",
	Aliases: []string{"self-update"},
	Short:   "Update storybot to the latest version",
	Long: `Downloads and installs the latest storybot release from GitHub or a
configured mirror. Release tags of the bot itself are ignored; only CLI
release tags (cli-vX.Y.Z) count.

  storybot update                  # update to latest
  storybot update --check          # check only
  storybot update --version 0.4.1  # install a specific version`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		var opts []updater.Option
		if mirror := config.UpdateMirror(); mirror != "" {
			opts = append(opts, updater.WithMirror(mirror))
		}
		u := updater.New(buildVersion, opts...)

		var sp *spinner.Spinner
		if IsStderrTTY() {
			sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			sp.Color("cyan")
			sp.Suffix = " Checking for updates..."
			sp.Start()
		} else {
			fmt.Fprintln(os.Stderr, "Checking for updates...")
		}

		var release *updater.Release
		var err error
		if updateVersion != "" {
			release, err = u.CheckSpecificVersion(updateVersion)
		} else {
			release, err = u.CheckLatestVersion()
		}
		if sp != nil {
			sp.Stop()
		}
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			// Dev builds have no comparable version; always updateable.
			if buildVersion == "dev" {
				available = true
			} else {
				return fmt.Errorf("comparing versions: %w", err)
			}
		}

		if updateCheck {
			if available {
				fmt.Printf("Update available: %s -> %s\n", buildVersion, release.Version)
			} else {
				fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			}
			return nil
		}

		if !available && !updateForce {
			fmt.Printf("You are on the latest version (%s)\n", buildVersion)
			return nil
		}

		stepColor.Fprintf(os.Stderr, "Downloading storybot %s for %s/%s...\n", release.Version, runtime.GOOS, runtime.GOARCH)

		tmpDir, err := os.MkdirTemp("", "storybot-update-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		archivePath, err := u.DownloadBinary(release, tmpDir)
		if err != nil {
			return fmt.Errorf("downloading binary: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Verifying checksum...")
		if err := u.VerifyChecksum(release, archivePath); err != nil {
			return fmt.Errorf("checksum verification failed: %w", err)
		}

		binPath, err := updater.ExtractBinary(archivePath, tmpDir)
		if err != nil {
			return fmt.Errorf("extracting binary: %w", err)
		}

		fmt.Fprintln(os.Stderr, "Installing...")
		currentBinary, err := os.Executable()
		if err != nil {
			return fmt.Errorf("finding current binary: %w", err)
		}

		if err := updater.ReplaceBinary(binPath, currentBinary, release.Version); err != nil {
			return err
		}

		if home, err := userdata.GetHomeRoot(); err == nil {
			cache := &updater.VersionCache{
				LatestVersion:   release.Version,
				CurrentVersion:  release.Version,
				CheckedAt:       time.Now(),
				UpdateAvailable: false,
			}
			_ = updater.SaveCache(home, cache)
		}

		successColor.Printf("✓ Updated to %s\n", release.Version)
		return nil
	},
}
