package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunvk/levelcheck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent assessment results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		recs, err := s.AssessmentRepo().RecentAssessments(ctx, limit)
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		if len(recs) == 0 {
			fmt.Println("No assessments recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-12s  %-7s  %s\n", "When", "Subject", "Score", "Level")
		fmt.Println(strings.Repeat("─", 52))
		for _, r := range recs {
			fmt.Printf("%-19s  %-12s  %2d/%-4d  %s\n",
				r.Timestamp.Local().Format("2006-01-02 15:04:05"),
				r.Subject,
				r.Score, r.Total,
				r.Level,
			)
		}

		progress, err := s.ActivityRepo().Progress(ctx)
		if err == nil && len(progress) > 0 {
			fmt.Println()
			fmt.Println("Latest score per subject:")
			for subject, pct := range progress {
				fmt.Printf("  %-12s  %.0f%%\n", subject, pct)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Maximum number of assessments to show")
}
