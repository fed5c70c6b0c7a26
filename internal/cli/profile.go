package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Chube123go/RedditStoryBot/internal/profile"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

func init() {
	profileCmd.AddCommand(profileValidateCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Work with install profiles",
	Long: `Inspect the optional storybot.yaml install profile that overrides the
per-platform package lists and the bot repository, directory, and
entrypoint.`,
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an install profile against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			located, err := userdata.LocateInstallProfile()
			if err != nil || located == "" {
				return fmt.Errorf("no install profile found (looked for %s in the working directory and the home root)", userdata.InstallProfileFile)
			}
			path = located
		}

		result, err := profile.ValidateFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}

		if !result.Valid {
			errOut := cmd.ErrOrStderr()
			errorColor.Fprintf(errOut, "✗ %s is not a valid install profile\n", path)
			for _, issue := range result.Issues {
				fmt.Fprintf(errOut, "  - %s\n", issue)
			}
			return errPrinted
		}

		successColor.Fprintf(cmd.OutOrStdout(), "✓ %s is a valid install profile\n", path)
		return nil
	},
}
