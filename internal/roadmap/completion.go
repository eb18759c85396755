package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
)

// Completion recording. Each entry point mutates one leaf of the session,
// runs the progress cascade, persists, and fires the day-complete hook
// when the session transitions into completed during this call.

// TrackResourceView records reported view time against a resource. The
// resource auto-completes once a single report meets the dwell threshold;
// re-viewing an already-completed resource only accumulates time.
func (s *Service) TrackResourceView(ctx context.Context, sessionID, itemID, resourceID string, timeSpent time.Duration) (*plan.Session, error) {
	if timeSpent < 0 {
		return nil, fmt.Errorf("negative view time: %w", plan.ErrInvalidProgress)
	}
	sess, err := s.sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item := sess.Item(itemID)
	if item == nil {
		return nil, fmt.Errorf("item %s: %w", itemID, plan.ErrNotFound)
	}
	res := item.Resource(resourceID)
	if res == nil {
		return nil, fmt.Errorf("resource %s: %w", resourceID, plan.ErrNotFound)
	}

	sess.TotalTimeSpent += int(timeSpent.Seconds())
	if !res.Completed && timeSpent >= s.dwellThreshold {
		res.Completed = true
	}

	return s.finishMutation(ctx, sess, item)
}

// CompleteDrill marks a drill done.
func (s *Service) CompleteDrill(ctx context.Context, sessionID, itemID, drillID string) (*plan.Session, error) {
	sess, err := s.sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item := sess.Item(itemID)
	if item == nil {
		return nil, fmt.Errorf("item %s: %w", itemID, plan.ErrNotFound)
	}
	drill := item.Drill(drillID)
	if drill == nil {
		return nil, fmt.Errorf("drill %s: %w", drillID, plan.ErrNotFound)
	}

	drill.Completed = true
	return s.finishMutation(ctx, sess, item)
}

// SetItemProgress sets an item's progress directly. Meant for items without
// resources or drills; for items with children the cascade recomputes from
// the children and wins.
func (s *Service) SetItemProgress(ctx context.Context, sessionID, itemID string, progress int) (*plan.Session, error) {
	if progress < 0 || progress > 100 {
		return nil, fmt.Errorf("%d: %w", progress, plan.ErrInvalidProgress)
	}
	sess, err := s.sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item := sess.Item(itemID)
	if item == nil {
		return nil, fmt.Errorf("item %s: %w", itemID, plan.ErrNotFound)
	}

	item.Progress = progress
	return s.finishMutation(ctx, sess, item)
}

// CompleteSession marks every remaining leaf done and closes out the
// session in one call.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (*plan.Session, error) {
	sess, err := s.sessions.ByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range sess.Items {
		item := &sess.Items[i]
		for j := range item.Resources {
			item.Resources[j].Completed = true
		}
		for j := range item.Drills {
			item.Drills[j].Completed = true
		}
		item.Progress = 100
	}
	completedNow := plan.AutoScan(sess, s.now)

	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	if completedNow {
		if err := s.onSessionCompleted(ctx, sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// finishMutation cascades progress from the touched item, persists, and
// fires the day-complete hook exactly once per session lifetime.
func (s *Service) finishMutation(ctx context.Context, sess *plan.Session, item *plan.PlanItem) (*plan.Session, error) {
	wasComplete := sess.Status == plan.SessionCompleted
	plan.Cascade(sess, item, s.now)

	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}
	if !wasComplete && sess.Status == plan.SessionCompleted {
		if err := s.onSessionCompleted(ctx, sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// onSessionCompleted flips the matching DailyFocus to completed, re-rolls
// roadmap counters, and attempts week advancement. Completed and skipped
// are terminal; a terminal day is left untouched.
func (s *Service) onSessionCompleted(ctx context.Context, sess *plan.Session) error {
	r, err := s.roadmaps.ByID(ctx, sess.RoadmapID)
	if err != nil {
		return err
	}

	week := r.Week(sess.WeekNumber)
	if week == nil {
		return nil
	}
	// The day is matched by weekday, not day number: calibration can
	// replace the week and renumber the whole roadmap while a session
	// materialized earlier the same day is still open.
	dow := int(sess.Date.Weekday())
	for i := range week.Days {
		if week.Days[i].DayOfWeek == dow {
			if !week.Days[i].Status.Terminal() {
				week.Days[i].Status = plan.DayCompleted
			}
			break
		}
	}
	plan.RoadmapProgress(r)
	if err := s.roadmaps.Update(ctx, r); err != nil {
		return err
	}

	_, err = s.CheckAndAdvanceWeek(ctx, r.ID)
	return err
}
