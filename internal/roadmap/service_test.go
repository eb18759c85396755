package roadmap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
	"github.com/abhisek/prepmap/internal/store"
)

// monday is a known Monday used as the roadmap start date in tests.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func fixedClock(at time.Time) plan.Timestamp {
	return func() time.Time { return at }
}

func seedLearner(t *testing.T, st *store.Store, learnerID string) {
	t.Helper()
	err := st.Learners().Save(context.Background(), &plan.LearnerProfile{
		LearnerID:    learnerID,
		Name:         "Asha",
		TargetScore:  7.5,
		DailyMinutes: 45,
		StudyDays:    []int{1, 2, 3, 4, 5},
		Competency:   map[string]float64{"listening": 0.6},
		Weaknesses: []plan.Weakness{
			{SkillKey: "listening", SkillName: "Listening", Severity: "high", Accuracy: 0.4},
			{SkillKey: "writing-task-2", SkillName: "Writing Task 2", Severity: "medium", Accuracy: 0.55},
		},
	})
	if err != nil {
		t.Fatalf("seed learner: %v", err)
	}
}

// weekOfFive lays out one generated week with study days Monday through
// Friday.
func weekOfFive(n int) planner.WeekPlan {
	w := planner.WeekPlan{
		WeekNumber:   n,
		Title:        fmt.Sprintf("Week %d", n),
		Summary:      "foundations",
		TargetSkills: []string{"listening", "writing-task-2"},
	}
	for dow := 1; dow <= 5; dow++ {
		w.Days = append(w.Days, planner.DayPlan{
			DayOfWeek:        dow,
			Title:            fmt.Sprintf("Day %d focus", dow),
			TargetSkills:     []string{"listening"},
			EstimatedMinutes: 45,
		})
	}
	return w
}

func testRoadmapPlan() *planner.RoadmapPlan {
	return &planner.RoadmapPlan{
		TotalWeeks:       2,
		LearningStrategy: "foundation-first",
		Weeks:            []planner.WeekPlan{weekOfFive(1), weekOfFive(2)},
	}
}

func testActivities() []planner.Activity {
	return []planner.Activity{
		{
			Title:         "Dictation warm-up",
			Description:   "Transcribe two short recordings",
			ActivityType:  "practice",
			EstimatedMins: 20,
			Resources:     []planner.ResourcePlan{{Title: "Recording set", URL: "https://example.com/rec"}},
			Drills:        []planner.DrillPlan{{Prompt: "Summarize recording 1", Skill: "listening"}},
		},
		{
			Title:         "Gap-fill practice",
			ActivityType:  "drill",
			EstimatedMins: 25,
			Drills:        []planner.DrillPlan{{Prompt: "Section 2 gap fill", Skill: "listening"}},
		},
	}
}

func newTestService(t *testing.T, st *store.Store, gen planner.Generator, at time.Time) *Service {
	t.Helper()
	return NewService(st, gen, WithClock(fixedClock(at)))
}

func TestGenerateRoadmap(t *testing.T) {
	st := openTestStore(t)
	seedLearner(t, st, "learner-1")
	mock := &planner.Mock{RoadmapOut: testRoadmapPlan()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()

	r, err := svc.GenerateRoadmap(ctx, "learner-1", "ielts-7.5")
	if err != nil {
		t.Fatalf("GenerateRoadmap: %v", err)
	}
	if r.Status != plan.RoadmapActive {
		t.Errorf("status = %s, want active", r.Status)
	}
	if r.ActiveWeek != 1 {
		t.Errorf("active week = %d, want 1", r.ActiveWeek)
	}
	if !r.StartDate.Equal(monday) {
		t.Errorf("start date = %v, want %v", r.StartDate, monday)
	}
	if r.TotalWeeks != 2 || len(r.Weeks) != 2 {
		t.Fatalf("weeks = %d/%d, want 2/2", r.TotalWeeks, len(r.Weeks))
	}
	if r.TotalSessions != 10 || r.SessionsCompleted != 0 || r.OverallProgress != 0 {
		t.Errorf("counters = %d/%d/%d%%, want 10/0/0%%", r.SessionsCompleted, r.TotalSessions, r.OverallProgress)
	}

	// Day numbers run 1..10 across the whole roadmap.
	want := 0
	for _, w := range r.Weeks {
		for _, d := range w.Days {
			want++
			if d.DayNumber != want {
				t.Fatalf("day number = %d, want %d", d.DayNumber, want)
			}
			if d.Status != plan.DayPending {
				t.Errorf("day %d status = %s, want pending", d.DayNumber, d.Status)
			}
		}
	}

	if len(mock.RoadmapCalls) != 1 {
		t.Fatalf("planner calls = %d, want 1", len(mock.RoadmapCalls))
	}
	rc := mock.RoadmapCalls[0]
	if rc.Goal != "ielts-7.5" || rc.TargetScore != 7.5 || len(rc.StudyDays) != 5 {
		t.Errorf("planner context = %+v", rc)
	}
}

func TestGenerateRoadmapReplacesActive(t *testing.T) {
	st := openTestStore(t)
	seedLearner(t, st, "learner-1")
	mock := &planner.Mock{RoadmapOut: testRoadmapPlan()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()

	first, err := svc.GenerateRoadmap(ctx, "learner-1", "ielts-7.0")
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := svc.GenerateRoadmap(ctx, "learner-1", "ielts-7.5")
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	active, err := svc.GetActiveRoadmap(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetActiveRoadmap: %v", err)
	}
	if active.ID != second.ID {
		t.Errorf("active = %s, want %s", active.ID, second.ID)
	}

	old, err := st.Roadmaps().ByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("load first roadmap: %v", err)
	}
	if old.Status != plan.RoadmapCompleted {
		t.Errorf("old status = %s, want completed", old.Status)
	}
}

func TestGenerateRoadmapInvalidGoal(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{RoadmapOut: testRoadmapPlan()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()

	// Unknown learner.
	if _, err := svc.GenerateRoadmap(ctx, "ghost", "ielts-7.5"); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("unknown learner err = %v, want ErrNotFound", err)
	}

	// Non-positive target score.
	if err := st.Learners().Save(ctx, &plan.LearnerProfile{
		LearnerID: "learner-2", DailyMinutes: 45, StudyDays: []int{1, 3, 5},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.GenerateRoadmap(ctx, "learner-2", "ielts-7.5"); !errors.Is(err, plan.ErrInvalidGoal) {
		t.Errorf("zero target err = %v, want ErrInvalidGoal", err)
	}

	// No study days.
	if err := st.Learners().Save(ctx, &plan.LearnerProfile{
		LearnerID: "learner-3", TargetScore: 7, DailyMinutes: 45,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.GenerateRoadmap(ctx, "learner-3", "ielts-7.5"); !errors.Is(err, plan.ErrInvalidGoal) {
		t.Errorf("no study days err = %v, want ErrInvalidGoal", err)
	}

	if len(mock.RoadmapCalls) != 0 {
		t.Errorf("planner called %d times on invalid input", len(mock.RoadmapCalls))
	}
}

func TestGenerateRoadmapPlannerFailure(t *testing.T) {
	st := openTestStore(t)
	seedLearner(t, st, "learner-1")
	mock := &planner.Mock{} // no output configured
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()

	if _, err := svc.GenerateRoadmap(ctx, "learner-1", "ielts-7.5"); !errors.Is(err, plan.ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
	if _, err := svc.GetActiveRoadmap(ctx, "learner-1"); !errors.Is(err, plan.ErrNoActivePlan) {
		t.Errorf("a failed generation must not leave a roadmap behind: %v", err)
	}
}

func TestGetActiveRoadmapNone(t *testing.T) {
	st := openTestStore(t)
	svc := newTestService(t, st, &planner.Mock{}, monday)

	_, err := svc.GetActiveRoadmap(context.Background(), "learner-1")
	if !errors.Is(err, plan.ErrNoActivePlan) {
		t.Fatalf("err = %v, want ErrNoActivePlan", err)
	}
}
