package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/prepmap/internal/app"
	"github.com/abhisek/prepmap/internal/llm"
	"github.com/abhisek/prepmap/internal/planner"
	"github.com/abhisek/prepmap/internal/roadmap"
	"github.com/abhisek/prepmap/internal/store"
	"github.com/spf13/cobra"
)

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// newService wires the roadmap service over the store. When no LLM provider
// is configured, a warning goes to stderr and content generation fails with
// the configuration error while everything else keeps working.
func newService(ctx context.Context, st *store.Store) *roadmap.Service {
	var gen planner.Generator
	provider, err := llm.NewProviderFromEnv(ctx, st.GenerationEvents())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Plan and content generation will be unavailable.")
		gen = planner.Unavailable{Err: err}
	} else {
		gen = planner.New(provider, planner.DefaultConfig())
	}
	return roadmap.NewService(st, gen)
}

// resolveLearner returns the learner ID: --learner flag first, then the
// single stored profile.
func resolveLearner(cmd *cobra.Command, st *store.Store) (string, error) {
	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return id, nil
	}
	p, err := st.Learners().First(cmd.Context())
	if err != nil {
		return "", err
	}
	if p == nil {
		return "", fmt.Errorf("no learner profile found; run: prepmap generate <diagnosis.json>")
	}
	return p.LearnerID, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := newService(cmd.Context(), st)
	learnerID, err := resolveLearner(cmd, st)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Service:   svc,
		LearnerID: learnerID,
	})
}
