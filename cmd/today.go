package cmd

import (
	"errors"
	"fmt"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's study session",
	Long:  "Materializes today's session from the active roadmap (generating content on first access) and prints it.",
	RunE: func(cmd *cobra.Command, args []string) error {
		regen, _ := cmd.Flags().GetBool("regenerate")

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

		var sess *plan.Session
		if regen {
			sess, err = svc.RegenerateTodaySession(ctx, learnerID)
		} else {
			sess, err = svc.GetTodaySession(ctx, learnerID)
		}
		if errors.Is(err, plan.ErrNoActivePlan) {
			fmt.Println("No active study plan. Run: prepmap generate <diagnosis.json>")
			return nil
		}
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Rest day — nothing planned for today.")
			return nil
		}

		printSession(sess)
		return nil
	},
}

func printSession(sess *plan.Session) {
	fmt.Printf("%s  (week %d, day %d)  [%s, %d%%]\n",
		sess.Title, sess.WeekNumber, sess.DayNumber, sess.Status, sess.Progress)
	fmt.Printf("Session ID: %s\n\n", sess.ID)

	for _, item := range sess.Items {
		mark := " "
		if item.Status == plan.ItemCompleted {
			mark = "x"
		}
		fmt.Printf("[%s] %d. %s (%s, ~%d min)  %s\n",
			mark, item.Priority, item.Title, item.ActivityType, item.EstimatedMins, item.ID)
		if item.Description != "" {
			fmt.Printf("       %s\n", item.Description)
		}
		for _, r := range item.Resources {
			mark = " "
			if r.Completed {
				mark = "x"
			}
			fmt.Printf("    [%s] resource: %s  %s\n", mark, r.Title, r.ID)
			if r.URL != "" {
				fmt.Printf("        %s\n", r.URL)
			}
		}
		for _, d := range item.Drills {
			mark = " "
			if d.Completed {
				mark = "x"
			}
			fmt.Printf("    [%s] drill: %s  %s\n", mark, d.Prompt, d.ID)
		}
	}
}

func init() {
	todayCmd.Flags().Bool("regenerate", false, "Discard today's session and generate fresh content")
}
