package roadmap

import (
	"context"
	"fmt"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

// AdvanceResult reports a week-advancement attempt. When Advanced is false,
// Reason says why in user-facing terms.
type AdvanceResult struct {
	Advanced bool
	NewWeek  int
	Reason   string
}

// CheckAndAdvanceWeek is the only place ActiveWeek moves, and it only ever
// moves forward. It advances when every day in the active week is terminal
// and every critical day is completed rather than skipped. When the next
// week has no day list yet, the planner fills it in before the move.
func (s *Service) CheckAndAdvanceWeek(ctx context.Context, roadmapID string) (*AdvanceResult, error) {
	r, err := s.roadmaps.ByID(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	if r.Status != plan.RoadmapActive {
		return &AdvanceResult{NewWeek: r.ActiveWeek, Reason: "plan is not active"}, nil
	}

	week := r.ActiveWeekFocus()
	if week == nil {
		return &AdvanceResult{NewWeek: r.ActiveWeek, Reason: "active week has no plan"}, nil
	}
	if n := week.Remaining(); n > 0 {
		word := "sessions"
		if n == 1 {
			word = "session"
		}
		return &AdvanceResult{NewWeek: r.ActiveWeek, Reason: fmt.Sprintf("%d %s remaining", n, word)}, nil
	}
	for i := range week.Days {
		d := &week.Days[i]
		if d.IsCritical && d.Status != plan.DayCompleted {
			return &AdvanceResult{
				NewWeek: r.ActiveWeek,
				Reason:  fmt.Sprintf("critical day %q was skipped and must be completed", d.Title),
			}, nil
		}
	}

	if r.ActiveWeek >= r.TotalWeeks {
		r.Status = plan.RoadmapCompleted
		plan.RoadmapProgress(r)
		if err := s.roadmaps.Update(ctx, r); err != nil {
			return nil, err
		}
		return &AdvanceResult{NewWeek: r.ActiveWeek, Reason: "plan complete"}, nil
	}

	r.ActiveWeek++
	if next := r.ActiveWeekFocus(); next != nil && len(next.Days) == 0 {
		if err := s.populateWeek(ctx, r, next); err != nil {
			return nil, err
		}
	}
	plan.RoadmapProgress(r)
	if err := s.roadmaps.Update(ctx, r); err != nil {
		return nil, err
	}
	return &AdvanceResult{Advanced: true, NewWeek: r.ActiveWeek}, nil
}

// populateWeek asks the planner for a fresh day list for a week that was
// laid out without one. Day numbers are reassigned over the whole roadmap
// afterwards.
func (s *Service) populateWeek(ctx context.Context, r *plan.Roadmap, week *plan.WeeklyFocus) error {
	profile, err := s.learners.Get(ctx, r.LearnerID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("learner %s: %w", r.LearnerID, plan.ErrNotFound)
	}

	days, err := s.gen.RegenerateWeek(ctx, planner.WeekContext{
		WeekNumber:    week.WeekNumber,
		Title:         week.Title,
		Summary:       week.Summary,
		TargetSkills:  week.TargetSkills,
		TargetDomains: week.TargetDomains,
		DailyMinutes:  r.DailyMinutes,
		RemainingDays: profile.StudyDays,
	})
	if err != nil {
		return err
	}
	for _, d := range days {
		week.Days = append(week.Days, dayFromPlan(d))
	}
	renumberDays(r)
	return nil
}
