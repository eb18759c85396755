package roadmap

import (
	"context"
	"strings"
	"testing"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

// storedRoadmap persists a hand-built roadmap and returns it.
func storedRoadmap(t *testing.T, svc *Service, r *plan.Roadmap) *plan.Roadmap {
	t.Helper()
	plan.RoadmapProgress(r)
	if err := svc.roadmaps.Create(context.Background(), r); err != nil {
		t.Fatalf("create roadmap: %v", err)
	}
	return r
}

func twoWeekRoadmap(learnerID string, week1 []plan.DailyFocus) *plan.Roadmap {
	return &plan.Roadmap{
		ID:           "rm-adv",
		LearnerID:    learnerID,
		Goal:         "ielts-7.5",
		Status:       plan.RoadmapActive,
		StartDate:    monday,
		TotalWeeks:   2,
		DailyMinutes: 45,
		ActiveWeek:   1,
		Version:      1,
		Weeks: []plan.WeeklyFocus{
			{WeekNumber: 1, Title: "Foundations", TargetSkills: []string{"listening"}, Days: week1},
			{WeekNumber: 2, Title: "Consolidation", TargetSkills: []string{"writing-task-2"}},
		},
	}
}

func TestAdvanceBlockedByRemainingSessions(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)
	r := storedRoadmap(t, svc, twoWeekRoadmap("learner-1", []plan.DailyFocus{
		{DayNumber: 1, DayOfWeek: 1, Status: plan.DayCompleted},
		{DayNumber: 2, DayOfWeek: 2, Status: plan.DayPending},
		{DayNumber: 3, DayOfWeek: 3, Status: plan.DayUpcoming},
	}))

	res, err := svc.CheckAndAdvanceWeek(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("CheckAndAdvanceWeek: %v", err)
	}
	if res.Advanced {
		t.Fatal("advanced with sessions remaining")
	}
	if res.NewWeek != 1 {
		t.Errorf("week = %d, want 1", res.NewWeek)
	}
	if res.Reason != "2 sessions remaining" {
		t.Errorf("reason = %q, want \"2 sessions remaining\"", res.Reason)
	}
}

func TestAdvanceBlockedByCriticalSkip(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)
	r := storedRoadmap(t, svc, twoWeekRoadmap("learner-1", []plan.DailyFocus{
		{DayNumber: 1, DayOfWeek: 1, Status: plan.DayCompleted},
		{DayNumber: 2, DayOfWeek: 2, Title: "Mock exam", IsCritical: true, Status: plan.DaySkipped},
	}))

	res, err := svc.CheckAndAdvanceWeek(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("CheckAndAdvanceWeek: %v", err)
	}
	if res.Advanced {
		t.Fatal("advanced over a skipped critical day")
	}
	if !strings.Contains(res.Reason, "Mock exam") {
		t.Errorf("reason = %q, want it to name the critical day", res.Reason)
	}
}

func TestAdvancePopulatesNextWeek(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{WeekOut: []planner.DayPlan{
		{DayOfWeek: 1, Title: "Essay structures", TargetSkills: []string{"writing-task-2"}, EstimatedMinutes: 45},
		{DayOfWeek: 3, Title: "Timed essay", TargetSkills: []string{"writing-task-2"}, EstimatedMinutes: 45},
	}}
	svc := newTestService(t, st, mock, monday)
	seedLearnerForService(t, svc, "learner-1")
	r := storedRoadmap(t, svc, twoWeekRoadmap("learner-1", []plan.DailyFocus{
		{DayNumber: 1, DayOfWeek: 1, Status: plan.DayCompleted},
		{DayNumber: 2, DayOfWeek: 3, Status: plan.DaySkipped},
	}))
	ctx := context.Background()

	res, err := svc.CheckAndAdvanceWeek(ctx, r.ID)
	if err != nil {
		t.Fatalf("CheckAndAdvanceWeek: %v", err)
	}
	if !res.Advanced || res.NewWeek != 2 {
		t.Fatalf("result = %+v, want advanced to week 2", res)
	}

	got, err := svc.roadmaps.ByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.ActiveWeek != 2 {
		t.Errorf("active week = %d, want 2", got.ActiveWeek)
	}
	week2 := got.Week(2)
	if len(week2.Days) != 2 {
		t.Fatalf("week 2 days = %d, want 2", len(week2.Days))
	}
	// Day numbers continue after week 1.
	if week2.Days[0].DayNumber != 3 || week2.Days[1].DayNumber != 4 {
		t.Errorf("day numbers = %d,%d, want 3,4", week2.Days[0].DayNumber, week2.Days[1].DayNumber)
	}
	if got.TotalSessions != 4 {
		t.Errorf("total sessions = %d, want 4", got.TotalSessions)
	}

	if len(mock.WeekCalls) != 1 {
		t.Fatalf("planner week calls = %d, want 1", len(mock.WeekCalls))
	}
	if wc := mock.WeekCalls[0]; wc.WeekNumber != 2 || wc.Title != "Consolidation" {
		t.Errorf("week context = %+v", wc)
	}
}

func TestAdvanceCompletesRoadmap(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)
	r := twoWeekRoadmap("learner-1", []plan.DailyFocus{
		{DayNumber: 1, DayOfWeek: 1, Status: plan.DayCompleted},
	})
	r.TotalWeeks = 1
	r.Weeks = r.Weeks[:1]
	storedRoadmap(t, svc, r)
	ctx := context.Background()

	res, err := svc.CheckAndAdvanceWeek(ctx, r.ID)
	if err != nil {
		t.Fatalf("CheckAndAdvanceWeek: %v", err)
	}
	if res.Advanced {
		t.Fatal("advanced past the last week")
	}
	if res.Reason != "plan complete" {
		t.Errorf("reason = %q, want \"plan complete\"", res.Reason)
	}

	got, err := svc.roadmaps.ByID(ctx, r.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Status != plan.RoadmapCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}
	if got.ActiveWeek != 1 {
		t.Errorf("active week = %d, want 1 (never decreases, never overruns)", got.ActiveWeek)
	}
}

func TestAdvanceInactiveRoadmap(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)
	r := twoWeekRoadmap("learner-1", []plan.DailyFocus{
		{DayNumber: 1, DayOfWeek: 1, Status: plan.DayCompleted},
	})
	r.Status = plan.RoadmapCompleted
	storedRoadmap(t, svc, r)

	res, err := svc.CheckAndAdvanceWeek(context.Background(), r.ID)
	if err != nil {
		t.Fatalf("CheckAndAdvanceWeek: %v", err)
	}
	if res.Advanced {
		t.Fatal("advanced an inactive roadmap")
	}
}
