package roadmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

// generateActive seeds a learner and generates an active roadmap starting
// on monday.
func generateActive(t *testing.T, svc *Service, mock *planner.Mock, learnerID string) *plan.Roadmap {
	t.Helper()
	seedLearnerForService(t, svc, learnerID)
	mock.RoadmapOut = testRoadmapPlan()
	r, err := svc.GenerateRoadmap(context.Background(), learnerID, "ielts-7.5")
	if err != nil {
		t.Fatalf("generate roadmap: %v", err)
	}
	return r
}

func seedLearnerForService(t *testing.T, svc *Service, learnerID string) {
	t.Helper()
	err := svc.learners.Save(context.Background(), &plan.LearnerProfile{
		LearnerID:    learnerID,
		TargetScore:  7.5,
		DailyMinutes: 45,
		StudyDays:    []int{1, 2, 3, 4, 5},
		Weaknesses: []plan.Weakness{
			{SkillKey: "listening", SkillName: "Listening", Severity: "high", Accuracy: 0.4},
		},
	})
	if err != nil {
		t.Fatalf("seed learner: %v", err)
	}
}

func TestGetTodaySessionMaterializesOnce(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	generateActive(t, svc, mock, "learner-1")

	first, err := svc.GetTodaySession(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetTodaySession: %v", err)
	}
	if first == nil {
		t.Fatal("expected a session on a study day")
	}
	if first.Status != plan.SessionUpcoming {
		t.Errorf("status = %s, want upcoming", first.Status)
	}
	if first.WeekNumber != 1 || first.DayNumber != 1 {
		t.Errorf("placement = week %d day %d, want week 1 day 1", first.WeekNumber, first.DayNumber)
	}
	if len(first.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(first.Items))
	}
	if first.Items[0].Priority != 1 || first.Items[1].Priority != 2 {
		t.Errorf("priorities = %d,%d, want 1,2", first.Items[0].Priority, first.Items[1].Priority)
	}
	if first.Items[0].TargetWeakness != "listening" {
		t.Errorf("target weakness = %q, want listening", first.Items[0].TargetWeakness)
	}

	second, err := svc.GetTodaySession(ctx, "learner-1")
	if err != nil {
		t.Fatalf("second GetTodaySession: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second call returned a different session: %s vs %s", second.ID, first.ID)
	}
	if got := len(mock.ActivitiesCalls); got != 1 {
		t.Errorf("planner called %d times, want 1", got)
	}

	// Materialization flips the day to upcoming on the stored roadmap.
	r, err := svc.GetActiveRoadmap(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetActiveRoadmap: %v", err)
	}
	if got := r.Weeks[0].Days[0].Status; got != plan.DayUpcoming {
		t.Errorf("day status = %s, want upcoming", got)
	}
}

func TestGetTodaySessionRestDay(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	saturday := monday.AddDate(0, 0, 5)
	svc := newTestService(t, st, mock, monday)
	generateActive(t, svc, mock, "learner-1")

	// Re-clock to Saturday; the week plans Monday through Friday.
	svc.now = fixedClock(saturday)
	sess, err := svc.GetTodaySession(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("GetTodaySession: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected no session on a rest day, got %+v", sess)
	}
	if len(mock.ActivitiesCalls) != 0 {
		t.Errorf("planner called on a rest day")
	}
}

func TestGetTodaySessionNoActivePlan(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)

	_, err := svc.GetTodaySession(context.Background(), "learner-1")
	if !errors.Is(err, plan.ErrNoActivePlan) {
		t.Fatalf("err = %v, want ErrNoActivePlan", err)
	}
}

func TestGetTodaySessionBeforeStart(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	generateActive(t, svc, mock, "learner-1")

	svc.now = fixedClock(monday.AddDate(0, 0, -3))
	sess, err := svc.GetTodaySession(context.Background(), "learner-1")
	if err != nil {
		t.Fatalf("GetTodaySession: %v", err)
	}
	if sess != nil {
		t.Fatal("expected no session before the start date")
	}
}

func TestGetTodaySessionContentFailure(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{} // day activities unconfigured
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	generateActive(t, svc, mock, "learner-1")

	_, err := svc.GetTodaySession(ctx, "learner-1")
	if !errors.Is(err, plan.ErrContentGenerationFailed) {
		t.Fatalf("err = %v, want ErrContentGenerationFailed", err)
	}

	// No partial session is persisted.
	stored, err := st.Sessions().ByLearnerDate(ctx, "learner-1", monday)
	if err != nil {
		t.Fatalf("ByLearnerDate: %v", err)
	}
	if stored != nil {
		t.Fatal("a failed materialization must not persist a session")
	}
}

func TestRegenerateTodaySession(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	generateActive(t, svc, mock, "learner-1")

	first, err := svc.GetTodaySession(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetTodaySession: %v", err)
	}

	mock.ActivitiesOut = []planner.Activity{{
		Title:         "Replacement reading sprint",
		ActivityType:  "reading",
		EstimatedMins: 45,
	}}
	fresh, err := svc.RegenerateTodaySession(ctx, "learner-1")
	if err != nil {
		t.Fatalf("RegenerateTodaySession: %v", err)
	}
	if fresh.ID == first.ID {
		t.Error("regeneration returned the old session")
	}
	if len(fresh.Items) != 1 || fresh.Items[0].Title != "Replacement reading sprint" {
		t.Errorf("fresh items = %+v", fresh.Items)
	}
	if !fresh.Date.Equal(first.Date) {
		t.Errorf("fresh date = %v, want %v", fresh.Date, first.Date)
	}
}

func TestTodayFocusMapping(t *testing.T) {
	svc := &Service{}
	r := &plan.Roadmap{
		StartDate:  monday,
		TotalWeeks: 2,
		Weeks: []plan.WeeklyFocus{
			{WeekNumber: 1, Days: []plan.DailyFocus{
				{DayNumber: 1, DayOfWeek: 1}, {DayNumber: 2, DayOfWeek: 3},
			}},
			{WeekNumber: 2, Days: []plan.DailyFocus{
				{DayNumber: 3, DayOfWeek: 1},
			}},
		},
	}

	cases := []struct {
		name     string
		today    time.Time
		wantDay  int
		wantWeek int
	}{
		{"start day", monday, 1, 1},
		{"midweek match", monday.AddDate(0, 0, 2), 2, 1},
		{"midweek gap", monday.AddDate(0, 0, 1), 0, 0},
		{"second week", monday.AddDate(0, 0, 7), 3, 2},
		{"past the end", monday.AddDate(0, 0, 15), 0, 0},
		{"before start", monday.AddDate(0, 0, -1), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			focus, week := svc.todayFocus(r, tc.today)
			if tc.wantDay == 0 {
				if focus != nil {
					t.Fatalf("focus = %+v, want nil", focus)
				}
				return
			}
			if focus == nil {
				t.Fatal("focus = nil")
			}
			if focus.DayNumber != tc.wantDay || week != tc.wantWeek {
				t.Errorf("got day %d week %d, want day %d week %d", focus.DayNumber, week, tc.wantDay, tc.wantWeek)
			}
		})
	}
}
