package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunvk/levelcheck/internal/app"
	"github.com/arjunvk/levelcheck/internal/assessment"
	"github.com/arjunvk/levelcheck/internal/config"
	"github.com/arjunvk/levelcheck/internal/llm"
	"github.com/arjunvk/levelcheck/internal/questiongen"
	"github.com/arjunvk/levelcheck/internal/screens/assess"
	"github.com/arjunvk/levelcheck/internal/store"
	"github.com/arjunvk/levelcheck/internal/videosearch"
)

// buildDeps loads config, opens the store, and wires the assessment
// collaborators. The returned cleanup closes the store.
func buildDeps(cmd *cobra.Command) (assess.Deps, func(), error) {
	ctx := cmd.Context()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return assess.Deps{}, nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return assess.Deps{}, nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.RegisterSubjects(); err != nil {
		return assess.Deps{}, nil, fmt.Errorf("register subjects: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return assess.Deps{}, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return assess.Deps{}, nil, fmt.Errorf("open store: %w", err)
	}

	genCfg := questiongen.DefaultConfig()
	genCfg.PerBand = cfg.Assessment.PerBand

	deps := assess.Deps{
		Assessments: st.AssessmentRepo(),
		Activity:    st.ActivityRepo(),
		MaxVideos:   cfg.Video.MaxResults,
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Questions will come from the built-in fallback set.")
		deps.Generator = questiongen.New(nil, genCfg)
	} else {
		deps.Generator = questiongen.New(provider, genCfg)
		deps.Narrator = assessment.NewNarrator(provider, cfg.NarrativeTimeout())
	}

	if cfg.Video.APIKey != "" {
		deps.Searcher = videosearch.NewYouTubeClient(cfg.Video.APIKey)
	}

	return deps, func() { _ = st.Close() }, nil
}

// runApp launches the TUI on the subject picker.
func runApp(cmd *cobra.Command) error {
	deps, cleanup, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(deps)
}
