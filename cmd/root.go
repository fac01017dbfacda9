package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arjunvk/levelcheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "levelcheck",
	Short: "Find your starting level in any subject",
	Long:  "LevelCheck is a timed terminal assessment that measures per-topic strengths and recommends a starting difficulty.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEVELCHECK_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using the --db flag (highest
// priority), then LEVELCHECK_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
