package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Chube123go/RedditStoryBot/internal/branding"
	"github.com/Chube123go/RedditStoryBot/internal/config"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
	"github.com/Chube123go/RedditStoryBot/internal/install"
	"github.com/Chube123go/RedditStoryBot/internal/profile"
	"github.com/Chube123go/RedditStoryBot/internal/updater"
	"github.com/Chube123go/RedditStoryBot/internal/userdata"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// errPrinted marks failures whose message is already on screen; Execute
// must not report them a second time.
var errPrinted = errors.New("error already reported")

var (
	flagAssumeYes  bool
	flagDepsOnly   bool
	flagPythonOnly bool
	flagBotOnly    bool
	flagBotPython  bool
)

func init() {
	rootCmd.Flags().BoolVarP(&flagAssumeYes, "yes", "y", false, "Assume yes: skip every confirmation prompt")
	rootCmd.Flags().BoolVarP(&flagDepsOnly, "deps", "d", false, "Install system dependencies only")
	rootCmd.Flags().BoolVarP(&flagPythonOnly, "python", "p", false, "Install the bot's Python requirements only")
	rootCmd.Flags().BoolVarP(&flagBotOnly, "bot", "b", false, "Fetch the bot repository only")
	rootCmd.Flags().BoolVarP(&flagBotPython, "launch", "l", false, "Fetch the bot and install its Python requirements")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Invalid option: %v\n\n", err)
		_ = cmd.Usage()
		return errPrinted
	})
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up everything the bot needs: system packages
(Python 3, Tk, pip, git) through the native package manager, the bot
checkout itself, and its Python requirements. Without mode flags all three
steps run in order; -d, -p, -b, and -l narrow the run to a subset.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// The update command manages its own release state.
		if cmd.Name() == "update" {
			return
		}

		home, err := userdata.GetHomeRoot()
		if err != nil {
			return
		}

		// Non-blocking notice from the cached release check.
		u := updater.New(buildVersion)
		u.CheckAndNotify(os.Stderr, home)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		prof, err := loadInstallProfile(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		flow := &install.Flow{
			Runner:  &execx.System{},
			In:      cmd.InOrStdin(),
			Out:     cmd.OutOrStdout(),
			Err:     cmd.ErrOrStderr(),
			Profile: prof,
		}
		return flow.Run(cmd.Context(), optionsFromFlags())
	},
}

// optionsFromFlags snapshots the parsed mode flags into the value the
// dispatcher consumes.
func optionsFromFlags() install.Options {
	return install.Options{
		AssumeYes:  flagAssumeYes,
		DepsOnly:   flagDepsOnly,
		PythonOnly: flagPythonOnly,
		BotOnly:    flagBotOnly,
		BotPython:  flagBotPython,
	}
}

// loadInstallProfile finds and validates storybot.yaml. No profile is not
// an error; a broken one is.
func loadInstallProfile(errOut io.Writer) (*profile.Profile, error) {
	path, err := userdata.LocateInstallProfile()
	if err != nil || path == "" {
		return nil, nil
	}
	prof, err := profile.Load(path)
	if err != nil {
		return nil, err
	}
	statusColor.Fprintf(errOut, "Using install profile %s\n", path)
	return prof, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errPrinted) {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
