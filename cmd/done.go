package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/roadmap"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Record completion against today's session",
	Long: `Records completion against today's session and cascades progress.

With no flags the whole session is completed. --item with --drill completes
one drill; --item with --resource records viewing time against one resource
(resources auto-complete once a view meets the dwell threshold).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID, _ := cmd.Flags().GetString("item")
		drillID, _ := cmd.Flags().GetString("drill")
		resourceID, _ := cmd.Flags().GetString("resource")
		seconds, _ := cmd.Flags().GetInt("seconds")

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

		sess, err := svc.GetTodaySession(ctx, learnerID)
		if errors.Is(err, plan.ErrNoActivePlan) {
			fmt.Println("No active study plan. Run: prepmap generate <diagnosis.json>")
			return nil
		}
		if err != nil {
			return err
		}
		if sess == nil {
			fmt.Println("Rest day — nothing to record.")
			return nil
		}

		switch {
		case drillID != "":
			if itemID == "" {
				return fmt.Errorf("--drill requires --item")
			}
			sess, err = svc.CompleteDrill(ctx, sess.ID, itemID, drillID)
		case resourceID != "":
			if itemID == "" {
				return fmt.Errorf("--resource requires --item")
			}
			sess, err = svc.TrackResourceView(ctx, sess.ID, itemID, resourceID,
				time.Duration(seconds)*time.Second)
		case itemID != "":
			sess, err = svc.SetItemProgress(ctx, sess.ID, itemID, 100)
		default:
			sess, err = svc.CompleteSession(ctx, sess.ID)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Session progress: %d%% (%s)\n", sess.Progress, sess.Status)
		if sess.Status == plan.SessionCompleted {
			reportAdvance(ctx, svc, learnerID)
		}
		return nil
	},
}

// reportAdvance prints where the roadmap stands after a completed session.
func reportAdvance(ctx context.Context, svc *roadmap.Service, learnerID string) {
	r, err := svc.GetActiveRoadmap(ctx, learnerID)
	if errors.Is(err, plan.ErrNoActivePlan) {
		fmt.Println("Plan complete. Congratulations!")
		return
	}
	if err != nil {
		return
	}
	fmt.Printf("Roadmap: week %d of %d, %d/%d sessions done (%d%%).\n",
		r.ActiveWeek, r.TotalWeeks, r.SessionsCompleted, r.TotalSessions, r.OverallProgress)
}

func init() {
	doneCmd.Flags().String("item", "", "Plan item ID")
	doneCmd.Flags().String("drill", "", "Drill ID to complete (requires --item)")
	doneCmd.Flags().String("resource", "", "Resource ID to record a view against (requires --item)")
	doneCmd.Flags().Int("seconds", 0, "Seconds spent viewing the resource")
}
