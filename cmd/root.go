package cmd

import (
	"github.com/abhisek/prepmap/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prepmap",
	Short: "AI study plan scheduler",
	Long:  "Prepmap — terminal app that turns a diagnostic assessment into a week-by-week study roadmap and keeps it calibrated to real life.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PREPMAP_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (defaults to the single stored profile)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PREPMAP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
