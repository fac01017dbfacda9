package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved assessment data",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes %s and all saved results. Re-run with --force to confirm.\n", dbPath)
			return nil
		}

		if err := os.Remove(dbPath); err != nil {
			return fmt.Errorf("remove database: %w", err)
		}
		fmt.Println("Assessment data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation")
}
