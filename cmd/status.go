package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the active roadmap",
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

		r, err := svc.GetActiveRoadmap(ctx, learnerID)
		if errors.Is(err, plan.ErrNoActivePlan) {
			fmt.Println("No active study plan. Run: prepmap generate <diagnosis.json>")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Goal: %s\n", r.Goal)
		fmt.Printf("Week %d of %d  ·  %d/%d sessions  ·  %d%% overall\n\n",
			r.ActiveWeek, r.TotalWeeks, r.SessionsCompleted, r.TotalSessions, r.OverallProgress)

		for _, w := range r.Weeks {
			marker := " "
			if w.WeekNumber == r.ActiveWeek {
				marker = ">"
			}
			fmt.Printf("%s Week %d  %-28s %s  %d/%d\n",
				marker, w.WeekNumber, w.Title, w.Status, w.SessionsCompleted, w.TotalSessions)
			if w.WeekNumber != r.ActiveWeek {
				continue
			}
			for _, d := range w.Days {
				fmt.Printf("    %s %-24s %s\n", dayMark(d.Status), d.Title, weekdayName(d.DayOfWeek))
			}
		}
		return nil
	},
}

func dayMark(s plan.DayStatus) string {
	switch s {
	case plan.DayCompleted:
		return "[x]"
	case plan.DaySkipped:
		return "[-]"
	case plan.DayInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func weekdayName(dow int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if dow < 0 || dow >= len(names) {
		return strings.Repeat("?", 3)
	}
	return names[dow]
}
