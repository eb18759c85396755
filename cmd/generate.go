package cmd

import (
	"fmt"

	"github.com/abhisek/prepmap/internal/diagnosis"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <diagnosis.json>",
	Short: "Generate a study roadmap from a diagnosis report",
	Long:  "Ingests a diagnostic assessment report, stores the learner profile, and generates a fresh roadmap. Any previously active roadmap is retired.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		goal, _ := cmd.Flags().GetString("goal")

		profile, err := diagnosis.Load(args[0])
		if err != nil {
			return err
		}
		if goal == "" {
			goal = fmt.Sprintf("target score %.1f", profile.TargetScore)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		if err := st.Learners().Save(ctx, profile); err != nil {
			return fmt.Errorf("save learner profile: %w", err)
		}

		svc := newService(ctx, st)
		r, err := svc.GenerateRoadmap(ctx, profile.LearnerID, goal)
		if err != nil {
			return err
		}

		fmt.Printf("Generated roadmap for %s: %d weeks, %d sessions.\n",
			profile.LearnerID, r.TotalWeeks, r.TotalSessions)
		fmt.Printf("Strategy: %s\n", r.LearningStrategy)
		for _, w := range r.Weeks {
			fmt.Printf("  Week %d: %s (%d days)\n", w.WeekNumber, w.Title, len(w.Days))
		}
		fmt.Println("\nRun: prepmap today")
		return nil
	},
}

func init() {
	generateCmd.Flags().String("goal", "", "Learning goal (defaults to the report's target score)")
}
