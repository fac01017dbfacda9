package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arjunvk/levelcheck/internal/config"
	"github.com/arjunvk/levelcheck/internal/subjects"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List subjects and their topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, err := config.DefaultPath()
		if err == nil {
			if cfg, err := config.Load(cfgPath); err == nil {
				_ = cfg.RegisterSubjects()
			}
		}

		for _, s := range subjects.All() {
			fmt.Printf("%s (%s)\n", s.Name, s.ID)
			fmt.Printf("  %s\n", strings.Join(s.Topics, ", "))
		}
		return nil
	},
}
