package cli

import (
	"github.com/spf13/cobra"

	"github.com/Chube123go/RedditStoryBot/internal/bot"
	"github.com/Chube123go/RedditStoryBot/internal/config"
	"github.com/Chube123go/RedditStoryBot/internal/execx"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the bot",
	Long: `Start the bot entrypoint inside the existing checkout without running
any install step. The bot's exit status becomes storybot's.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		prof, err := loadInstallProfile(cmd.ErrOrStderr())
		if err != nil {
			return err
		}

		mgr := bot.New(&execx.System{}, cmd.OutOrStdout())
		mgr.RepoURL = prof.BotRepoURL()
		mgr.DirName = prof.BotDir()
		mgr.Entrypoint = prof.BotEntrypoint()
		return mgr.Run(cmd.Context())
	},
}
