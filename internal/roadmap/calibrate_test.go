package roadmap

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

func fiveDayWeek(statuses ...plan.DayStatus) []plan.DailyFocus {
	days := make([]plan.DailyFocus, 5)
	for i := range days {
		days[i] = plan.DailyFocus{
			DayNumber:    i + 1,
			DayOfWeek:    i + 1,
			Title:        "Focus",
			TargetSkills: []string{"listening"},
			Status:       plan.DayPending,
		}
		if i < len(statuses) {
			days[i].Status = statuses[i]
		}
	}
	return days
}

func TestCalibrationMarksSingleMissedDaySkipped(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday.AddDate(0, 0, 4)) // Friday
	seedLearnerForService(t, svc, "learner-1")
	r := storedRoadmap(t, svc, twoWeekRoadmap("learner-1", fiveDayWeek(
		plan.DayCompleted, plan.DayCompleted, plan.DayCompleted, plan.DayPending, plan.DayPending,
	)))
	ctx := context.Background()

	res, err := svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationSkipped {
		t.Fatalf("action = %s, want marked-skipped", res.Action)
	}
	if len(res.MissedDays) != 1 || res.MissedDays[0] != 4 {
		t.Fatalf("missed = %v, want [4]", res.MissedDays)
	}

	got, err := svc.roadmaps.ByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	week := got.Week(1)
	if week.Days[3].Status != plan.DaySkipped {
		t.Errorf("day 4 status = %s, want skipped", week.Days[3].Status)
	}
	// Day 5 is today, not missed; schedule and content untouched.
	if week.Days[4].Status != plan.DayPending {
		t.Errorf("day 5 status = %s, want pending", week.Days[4].Status)
	}
	if len(week.Days) != 5 {
		t.Errorf("day count changed: %d", len(week.Days))
	}
	if got.ActiveWeek != 1 {
		t.Errorf("active week = %d, want 1", got.ActiveWeek)
	}

	// A second pass finds nothing new.
	res, err = svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if res.Action != CalibrationNone || len(res.MissedDays) != 0 {
		t.Errorf("second pass = %+v, want none", res)
	}
}

func TestCalibrationRegeneratesElapsedWeek(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{
		ActivitiesOut: testActivities(),
		WeekOut: []planner.DayPlan{
			{DayOfWeek: 1, Title: "Catch-up 1", TargetSkills: []string{"listening"}},
			{DayOfWeek: 2, Title: "Catch-up 2", TargetSkills: []string{"listening"}},
			{DayOfWeek: 3, Title: "Catch-up 3", TargetSkills: []string{"writing-task-2"}},
			{DayOfWeek: 4, Title: "Catch-up 4", TargetSkills: []string{"writing-task-2"}},
			{DayOfWeek: 5, Title: "Catch-up 5", TargetSkills: []string{"listening"}},
		},
	}
	// The learner returns on the following Monday with nothing done.
	svc := newTestService(t, st, mock, monday.AddDate(0, 0, 7))
	seedLearnerForService(t, svc, "learner-1")
	r := storedRoadmap(t, svc, twoWeekRoadmap("learner-1", fiveDayWeek()))
	ctx := context.Background()

	res, err := svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationRegenerated {
		t.Fatalf("action = %s, want regenerated", res.Action)
	}
	if len(res.MissedDays) != 5 {
		t.Fatalf("missed = %v, want all 5 days", res.MissedDays)
	}

	if len(mock.WeekCalls) != 1 {
		t.Fatalf("planner week calls = %d, want 1", len(mock.WeekCalls))
	}
	wc := mock.WeekCalls[0]
	if len(wc.RemainingDays) != 5 {
		t.Errorf("remaining days = %v, want the full study week", wc.RemainingDays)
	}
	if len(wc.CoveredSkills) != 0 {
		t.Errorf("covered skills = %v, want none (nothing completed)", wc.CoveredSkills)
	}

	got, err := svc.roadmaps.ByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	week := got.Week(1)
	if len(week.Days) != 5 {
		t.Fatalf("replaced week days = %d, want 5", len(week.Days))
	}
	for i, d := range week.Days {
		if d.Status != plan.DayPending {
			t.Errorf("day %d status = %s, want pending", i+1, d.Status)
		}
	}
	if week.Days[0].Title != "Catch-up 1" {
		t.Errorf("day 1 title = %q", week.Days[0].Title)
	}
	// Week 2 has no day list yet, so the total is just the replaced week.
	if got.TotalSessions != 5 {
		t.Errorf("total sessions = %d, want 5", got.TotalSessions)
	}

	// The week window moved with the regeneration: the active week now
	// covers the calendar week the learner is actually in.
	if want := monday.AddDate(0, 0, 7); !got.StartDate.Equal(want) {
		t.Errorf("start date = %v, want %v", got.StartDate, want)
	}

	// A second pass finds nothing: the catch-up days are all still ahead.
	res, err = svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if res.Action != CalibrationNone || len(res.MissedDays) != 0 {
		t.Errorf("second pass = %+v, want none", res)
	}

	// Today materializes the first catch-up day, not a rest day.
	sess, err := svc.GetTodaySession(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetTodaySession: %v", err)
	}
	if sess == nil {
		t.Fatal("no session for the regenerated Monday")
	}
	if sess.WeekNumber != 1 || sess.Title != "Catch-up 1" {
		t.Errorf("session = week %d %q, want week 1 \"Catch-up 1\"", sess.WeekNumber, sess.Title)
	}
}

func TestCalibrationRegenerateKeepsCompletedDays(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{WeekOut: []planner.DayPlan{
		{DayOfWeek: 5, Title: "Condensed catch-up", TargetSkills: []string{"writing-task-2"}},
	}}
	svc := newTestService(t, st, mock, monday.AddDate(0, 0, 4)) // Friday
	seedLearnerForService(t, svc, "learner-1")
	days := fiveDayWeek(plan.DayCompleted)
	days[0].TargetSkills = []string{"listening", "vocab"}
	r := storedRoadmap(t, svc, twoWeekRoadmap("learner-1", days))
	ctx := context.Background()

	// Days 2-4 missed (3 > 2) forces the regenerate path.
	res, err := svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationRegenerated {
		t.Fatalf("action = %s, want regenerated", res.Action)
	}
	if len(res.MissedDays) != 3 {
		t.Fatalf("missed = %v, want 3 days", res.MissedDays)
	}

	wc := mock.WeekCalls[0]
	if len(wc.CoveredSkills) != 2 {
		t.Errorf("covered skills = %v, want the completed day's skills", wc.CoveredSkills)
	}
	// Friday is the only study day left.
	if len(wc.RemainingDays) != 1 || wc.RemainingDays[0] != 5 {
		t.Errorf("remaining days = %v, want [5]", wc.RemainingDays)
	}

	got, err := svc.roadmaps.ByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	week := got.Week(1)
	if len(week.Days) != 2 {
		t.Fatalf("week days = %d, want completed + replacement", len(week.Days))
	}
	if week.Days[0].Status != plan.DayCompleted {
		t.Errorf("kept day status = %s, want completed", week.Days[0].Status)
	}
	if week.Days[1].Title != "Condensed catch-up" {
		t.Errorf("replacement title = %q", week.Days[1].Title)
	}
	if got.SessionsCompleted != 1 || got.TotalSessions != 2 {
		t.Errorf("counters = %d/%d, want 1/2", got.SessionsCompleted, got.TotalSessions)
	}
}

func TestCalibrationCriticalDayForcesRegenerate(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{WeekOut: []planner.DayPlan{
		{DayOfWeek: 5, Title: "Mock exam retake", TargetSkills: []string{"listening"}, IsCritical: true},
	}}
	svc := newTestService(t, st, mock, monday.AddDate(0, 0, 4)) // Friday
	seedLearnerForService(t, svc, "learner-1")
	days := fiveDayWeek(plan.DayCompleted, plan.DayCompleted, plan.DayCompleted)
	days[3].IsCritical = true
	storedRoadmap(t, svc, twoWeekRoadmap("learner-1", days))
	ctx := context.Background()

	// Only one day missed, but it is critical: never auto-skipped.
	res, err := svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationRegenerated {
		t.Fatalf("action = %s, want regenerated for a missed critical day", res.Action)
	}
	if len(mock.WeekCalls) != 1 {
		t.Errorf("planner week calls = %d, want 1", len(mock.WeekCalls))
	}
}

func TestCalibrationOnTrackWeekIsUntouched(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday.AddDate(0, 0, 1)) // Tuesday
	seedLearnerForService(t, svc, "learner-1")
	storedRoadmap(t, svc, twoWeekRoadmap("learner-1", fiveDayWeek(plan.DayCompleted)))

	res, err := svc.CheckMissedSessions(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationNone {
		t.Fatalf("action = %s, want none", res.Action)
	}
}

func TestCalibrationIgnoresWeekAheadOfCalendar(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{}
	svc := newTestService(t, st, mock, monday.AddDate(0, 0, 3)) // Thursday of calendar week 1
	seedLearnerForService(t, svc, "learner-1")
	rm := twoWeekRoadmap("learner-1", fiveDayWeek(
		plan.DayCompleted, plan.DayCompleted, plan.DayCompleted, plan.DayCompleted, plan.DayCompleted,
	))
	// The learner burned through week 1 in three days, so week 2 is active
	// while the calendar still sits in week 1.
	rm.ActiveWeek = 2
	rm.Weeks[1].Days = fiveDayWeek()
	r := storedRoadmap(t, svc, rm)
	ctx := context.Background()

	res, err := svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationNone || len(res.MissedDays) != 0 {
		t.Fatalf("result = %+v, want none (week 2 has not started)", res)
	}
	if len(mock.WeekCalls) != 0 {
		t.Errorf("planner week calls = %d, want 0", len(mock.WeekCalls))
	}

	got, err := svc.roadmaps.ByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for i, d := range got.Week(2).Days {
		if d.Status != plan.DayPending {
			t.Errorf("week 2 day %d status = %s, want pending", i+1, d.Status)
		}
	}
}

func TestCalibrationNoActivePlan(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)
	seedLearnerForService(t, svc, "learner-1")

	_, err := svc.CheckMissedSessions(context.Background(), "learner-1")
	if !errors.Is(err, plan.ErrNoActivePlan) {
		t.Fatalf("err = %v, want ErrNoActivePlan", err)
	}
}
