package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

// CalibrationAction says what the calibration pass did.
type CalibrationAction string

const (
	CalibrationNone        CalibrationAction = "none"
	CalibrationSkipped     CalibrationAction = "marked-skipped"
	CalibrationRegenerated CalibrationAction = "regenerated"
)

// CalibrationResult reports one calibration pass. MissedDays holds the
// absolute day numbers that were classified missed.
type CalibrationResult struct {
	Action     CalibrationAction
	MissedDays []int
}

// CheckMissedSessions reconciles the active week against real elapsed time.
// Zero missed days is a no-op. One or two missed non-critical days are
// marked skipped in place, schedule untouched. More than two missed days,
// or any missed critical day, replaces the uncompleted remainder of the
// week with a fresh plan for the days still available. Safe to run
// repeatedly: an already-calibrated week reports nothing missed.
func (s *Service) CheckMissedSessions(ctx context.Context, learnerID string) (*CalibrationResult, error) {
	r, err := s.roadmaps.ActiveByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, plan.ErrNoActivePlan
	}
	profile, err := s.learners.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, plan.ErrNotFound)
	}

	week := r.ActiveWeekFocus()
	if week == nil {
		return &CalibrationResult{Action: CalibrationNone}, nil
	}

	today := plan.DateOnly(s.now())
	todayDOW := int(today.Weekday())
	calendarWeek := plan.DaysBetween(r.StartDate, today)/7 + 1

	// A learner who finishes a week early is ahead of the calendar. Days
	// of a week the calendar has not reached cannot be missed yet.
	if calendarWeek < r.ActiveWeek {
		return &CalibrationResult{Action: CalibrationNone}, nil
	}

	// When the calendar has already moved past the active week, weekday
	// comparison is meaningless: everything unfinished in it is missed.
	weekElapsed := calendarWeek > r.ActiveWeek

	missed := identifyMissedDays(week, profile.StudyDays, todayDOW, weekElapsed)
	if len(missed) == 0 {
		return &CalibrationResult{Action: CalibrationNone}, nil
	}

	result := &CalibrationResult{MissedDays: make([]int, 0, len(missed))}
	criticalMissed := false
	for _, i := range missed {
		result.MissedDays = append(result.MissedDays, week.Days[i].DayNumber)
		if week.Days[i].IsCritical {
			criticalMissed = true
		}
	}

	// A critical day is never auto-skipped; it always goes through the
	// regenerate path so the replacement plan can re-cover it.
	if len(missed) <= 2 && !criticalMissed {
		for _, i := range missed {
			switch week.Days[i].Status {
			case plan.DayPending, plan.DayUpcoming:
				week.Days[i].Status = plan.DaySkipped
			}
		}
		result.Action = CalibrationSkipped
	} else {
		if err := s.regenerateWeekRemainder(ctx, r, week, profile, today); err != nil {
			return nil, err
		}
		result.Action = CalibrationRegenerated
	}

	plan.RoadmapProgress(r)
	if err := s.roadmaps.Update(ctx, r); err != nil {
		return nil, err
	}
	return result, nil
}

// identifyMissedDays returns indexes into week.Days for days that should
// have happened by now. A day is missed when it falls on one of the
// learner's study days, it is neither completed nor skipped, and either
// its weekday is strictly earlier than today's or the whole week has
// already elapsed on the calendar. The caller screens out weeks the
// calendar has not reached.
func identifyMissedDays(week *plan.WeeklyFocus, studyDays []int, todayDOW int, weekElapsed bool) []int {
	studies := make(map[int]bool, len(studyDays))
	for _, d := range studyDays {
		studies[d] = true
	}

	var missed []int
	for i := range week.Days {
		d := &week.Days[i]
		if d.Status.Terminal() {
			continue
		}
		if studies[d.DayOfWeek] && (weekElapsed || d.DayOfWeek < todayDOW) {
			missed = append(missed, i)
		}
	}
	return missed
}

// regenerateWeekRemainder keeps the week's completed days and replaces
// everything else with a fresh plan sized to the study days still ahead of
// today. Skills covered by the kept days are passed forward so the planner
// de-prioritizes them.
func (s *Service) regenerateWeekRemainder(ctx context.Context, r *plan.Roadmap, week *plan.WeeklyFocus, profile *plan.LearnerProfile, today time.Time) error {
	todayDOW := int(today.Weekday())

	var kept []plan.DailyFocus
	var covered []string
	seen := make(map[string]bool)
	for i := range week.Days {
		d := week.Days[i]
		if d.Status != plan.DayCompleted {
			continue
		}
		kept = append(kept, d)
		for _, sk := range d.TargetSkills {
			if !seen[sk] {
				seen[sk] = true
				covered = append(covered, sk)
			}
		}
	}

	var remaining []int
	for _, dow := range profile.StudyDays {
		if dow >= todayDOW {
			remaining = append(remaining, dow)
		}
	}

	days, err := s.gen.RegenerateWeek(ctx, planner.WeekContext{
		WeekNumber:    week.WeekNumber,
		Title:         week.Title,
		Summary:       week.Summary,
		TargetSkills:  week.TargetSkills,
		TargetDomains: week.TargetDomains,
		DailyMinutes:  r.DailyMinutes,
		RemainingDays: remaining,
		CoveredSkills: covered,
	})
	if err != nil {
		return err
	}

	week.Days = kept
	for _, d := range days {
		week.Days = append(week.Days, dayFromPlan(d))
	}
	renumberDays(r)
	realignWeekWindow(r, today)
	return nil
}

// realignWeekWindow re-anchors the start date so the active week spans the
// calendar week containing today. The shift is always a whole number of
// weeks, which keeps every week's weekday layout intact; it is a no-op
// while the calendar and the active week agree. Without it, catch-up days
// written into an elapsed week would sit in a window the day lookup never
// visits, and the next calibration pass would flag them missed again.
func realignWeekWindow(r *plan.Roadmap, today time.Time) {
	dayIdx := plan.DaysBetween(r.StartDate, today)
	if dayIdx < 0 {
		return
	}
	r.StartDate = today.AddDate(0, 0, -(7*(r.ActiveWeek-1) + dayIdx%7))
}
