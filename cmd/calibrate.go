package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/roadmap"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Reconcile the active week against missed days",
	Long: `Checks the active week for study days that should have happened by now.
A day or two missed is marked skipped; a larger gap (or a missed critical
day) replaces the rest of the week with a fresh plan for the days left.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := newService(ctx, st)
		learnerID, err := resolveLearner(cmd, st)
		if err != nil {
			return err
		}

		res, err := svc.CheckMissedSessions(ctx, learnerID)
		if errors.Is(err, plan.ErrNoActivePlan) {
			fmt.Println("No active study plan. Run: prepmap generate <diagnosis.json>")
			return nil
		}
		if err != nil {
			return err
		}

		switch res.Action {
		case roadmap.CalibrationNone:
			fmt.Println("On track — nothing missed.")
		case roadmap.CalibrationSkipped:
			fmt.Printf("Marked %d missed day(s) skipped: %v\n", len(res.MissedDays), res.MissedDays)
		case roadmap.CalibrationRegenerated:
			fmt.Printf("%d day(s) missed — replaced the rest of the week with a fresh plan.\n", len(res.MissedDays))
		}

		// A skipped day may have been the last thing blocking the week.
		if res.Action != roadmap.CalibrationNone {
			if r, err := svc.GetActiveRoadmap(ctx, learnerID); err == nil {
				if adv, err := svc.CheckAndAdvanceWeek(ctx, r.ID); err == nil && adv.Advanced {
					fmt.Printf("Advanced to week %d.\n", adv.NewWeek)
				}
			}
		}
		return nil
	},
}
