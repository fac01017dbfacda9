package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunvk/levelcheck/internal/app"
	"github.com/arjunvk/levelcheck/internal/screens/assess"
	"github.com/arjunvk/levelcheck/internal/subjects"
)

var assessCmd = &cobra.Command{
	Use:   "assess <subject>",
	Short: "Jump straight into a level check for a subject",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, cleanup, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		subject, err := subjects.Get(strings.ToLower(args[0]))
		if err != nil {
			var ids []string
			for _, s := range subjects.All() {
				ids = append(ids, s.ID)
			}
			return fmt.Errorf("unknown subject %q (available: %s)", args[0], strings.Join(ids, ", "))
		}

		return app.RunScreen(assess.New(subject, deps))
	},
}
