package roadmap

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

// Session materializer: exactly one session document exists per
// (learner, calendar day), created lazily on first access.

// GetTodaySession returns today's session, materializing it on first
// access. It returns plan.ErrNoActivePlan when the learner has no active
// roadmap, and (nil, nil) when the roadmap simply has nothing planned for
// today — both are normal states, not failures.
func (s *Service) GetTodaySession(ctx context.Context, learnerID string) (*plan.Session, error) {
	today := plan.DateOnly(s.now())

	existing, err := s.sessions.ByLearnerDate(ctx, learnerID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	r, err := s.roadmaps.ActiveByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, plan.ErrNoActivePlan
	}

	focus, weekNum := s.todayFocus(r, today)
	if focus == nil {
		return nil, nil
	}

	profile, err := s.learners.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}

	session, err := s.buildSession(ctx, r, profile, focus, weekNum, today)
	if err != nil {
		return nil, err
	}

	// The unique (learner, date) key arbitrates the creation race: the
	// loser discards its generated content and takes the winner's row.
	stored, created, err := s.sessions.CreateIfAbsent(ctx, session)
	if err != nil {
		return nil, err
	}
	if created {
		s.markDayMaterialized(ctx, r, weekNum, focus.DayNumber)
	}
	return stored, nil
}

// RegenerateTodaySession deletes today's session (if any) and materializes
// a fresh one for the same plan. Sessions are not versioned; the old
// content is gone.
func (s *Service) RegenerateTodaySession(ctx context.Context, learnerID string) (*plan.Session, error) {
	today := plan.DateOnly(s.now())
	if err := s.sessions.DeleteByLearnerDate(ctx, learnerID, today); err != nil {
		return nil, err
	}
	return s.GetTodaySession(ctx, learnerID)
}

// todayFocus maps today onto the roadmap's schedule: absolute day index
// from the start date, week from that, then the day within the week by
// weekday. Returns (nil, 0) when nothing is planned for today.
func (s *Service) todayFocus(r *plan.Roadmap, today time.Time) (*plan.DailyFocus, int) {
	dayIdx := plan.DaysBetween(r.StartDate, today)
	if dayIdx < 0 {
		return nil, 0
	}
	weekNum := dayIdx/7 + 1
	if weekNum > r.TotalWeeks {
		return nil, 0
	}
	week := r.Week(weekNum)
	if week == nil {
		return nil, 0
	}
	focus := week.DayByWeekday(int(today.Weekday()))
	if focus == nil {
		return nil, 0
	}
	return focus, weekNum
}

// buildSession asks the planner for the day's activities and shapes them
// into a session. No partial session is ever persisted: a planner failure
// surfaces as plan.ErrContentGenerationFailed and nothing is written.
func (s *Service) buildSession(ctx context.Context, r *plan.Roadmap, profile *plan.LearnerProfile, focus *plan.DailyFocus, weekNum int, today time.Time) (*plan.Session, error) {
	dc := planner.DayContext{
		Title:            focus.Title,
		TargetSkills:     focus.TargetSkills,
		TargetDomains:    focus.TargetDomains,
		MinutesAvailable: focus.EstimatedMinutes,
	}
	if dc.MinutesAvailable == 0 {
		dc.MinutesAvailable = r.DailyMinutes
	}
	if profile != nil {
		dc.TargetScore = profile.TargetScore
		dc.Weaknesses = relevantWeaknesses(profile.Weaknesses, focus.TargetSkills)
	}

	activities, err := s.gen.GenerateDayActivities(ctx, dc)
	if err != nil {
		return nil, err
	}

	session := &plan.Session{
		ID:           uuid.NewString(),
		LearnerID:    r.LearnerID,
		Date:         today,
		RoadmapID:    r.ID,
		WeekNumber:   weekNum,
		DayNumber:    focus.DayNumber,
		Title:        focus.Title,
		TargetSkills: focus.TargetSkills,
		Status:       plan.SessionUpcoming,
		Version:      1,
	}
	for i, a := range activities {
		item := plan.PlanItem{
			ID:             uuid.NewString(),
			Priority:       i + 1,
			TargetWeakness: primarySkill(focus),
			Title:          a.Title,
			Description:    a.Description,
			ActivityType:   a.ActivityType,
			EstimatedMins:  a.EstimatedMins,
			Status:         plan.ItemPending,
		}
		if len(a.Drills) > 0 {
			item.TargetWeakness = a.Drills[0].Skill
		}
		for _, res := range a.Resources {
			item.Resources = append(item.Resources, plan.Resource{
				ID:    uuid.NewString(),
				Title: res.Title,
				URL:   res.URL,
			})
		}
		for _, d := range a.Drills {
			item.Drills = append(item.Drills, plan.Drill{
				ID:     uuid.NewString(),
				Prompt: d.Prompt,
				Skill:  d.Skill,
			})
		}
		session.Items = append(session.Items, item)
	}
	return session, nil
}

// relevantWeaknesses filters the diagnosis down to the day's target skills;
// when nothing matches the full list is passed through.
func relevantWeaknesses(all []plan.Weakness, targetSkills []string) []plan.Weakness {
	if len(targetSkills) == 0 {
		return all
	}
	targets := make(map[string]bool, len(targetSkills))
	for _, t := range targetSkills {
		targets[t] = true
	}
	var out []plan.Weakness
	for _, w := range all {
		if targets[w.SkillKey] {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return all
	}
	return out
}

// markDayMaterialized flips a pending focus to upcoming once its session
// exists. Best-effort: a write conflict here is harmless, the status will
// catch up on the next mutation.
func (s *Service) markDayMaterialized(ctx context.Context, r *plan.Roadmap, weekNum, dayNumber int) {
	week := r.Week(weekNum)
	if week == nil {
		return
	}
	for i := range week.Days {
		if week.Days[i].DayNumber == dayNumber && week.Days[i].Status == plan.DayPending {
			week.Days[i].Status = plan.DayUpcoming
			if err := s.roadmaps.Update(ctx, r); err != nil {
				week.Days[i].Status = plan.DayPending
			}
			return
		}
	}
}
