package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chube123go/RedditStoryBot/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  `Read and write storybot configuration stored at ~/.storybot/config.yaml.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		if err := knownKey(key); err != nil {
			return err
		}
		config.Load()
		fmt.Fprintln(cmd.OutOrStdout(), config.Resolved(key))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := knownKey(key); err != nil {
			return err
		}
		config.Load()
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every key with its resolved value",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		for _, key := range config.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, config.Resolved(key))
		}
		return nil
	},
}

func knownKey(key string) error {
	for _, k := range config.Keys() {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(config.Keys(), ", "))
}
