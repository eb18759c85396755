package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRoadmap(learnerID string) *plan.Roadmap {
	return &plan.Roadmap{
		ID:               "rm-1",
		LearnerID:        learnerID,
		Goal:             "ielts-7.5",
		Status:           plan.RoadmapActive,
		StartDate:        time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		TotalWeeks:       4,
		StudyDaysPerWeek: 5,
		DailyMinutes:     45,
		ActiveWeek:       1,
		Version:          1,
		Weeks: []plan.WeeklyFocus{
			{
				WeekNumber: 1,
				Title:      "Foundations",
				Days: []plan.DailyFocus{
					{DayNumber: 1, DayOfWeek: 1, Status: plan.DayPending},
					{DayNumber: 2, DayOfWeek: 2, Status: plan.DayPending},
				},
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestRoadmapRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Roadmaps()
	ctx := context.Background()

	// No active roadmap yet.
	rm, err := repo.ActiveByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("active (empty): %v", err)
	}
	if rm != nil {
		t.Fatal("expected nil roadmap when none exist")
	}

	if err := repo.Create(ctx, testRoadmap("learner-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	rm, err = repo.ActiveByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if rm == nil {
		t.Fatal("expected active roadmap")
	}
	if rm.ID != "rm-1" || rm.TotalWeeks != 4 {
		t.Errorf("roadmap = %+v", rm)
	}
	if len(rm.Weeks) != 1 || len(rm.Weeks[0].Days) != 2 {
		t.Errorf("weeks not round-tripped: %+v", rm.Weeks)
	}
}

func TestRoadmapByIDNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Roadmaps().ByID(context.Background(), "nope")
	if !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestRoadmapUpdateVersionConflict(t *testing.T) {
	s := openTestStore(t)
	repo := s.Roadmaps()
	ctx := context.Background()

	if err := repo.Create(ctx, testRoadmap("learner-1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	a, _ := repo.ByID(ctx, "rm-1")
	b, _ := repo.ByID(ctx, "rm-1")

	a.ActiveWeek = 2
	if err := repo.Update(ctx, a); err != nil {
		t.Fatalf("first update: %v", err)
	}
	if a.Version != 2 {
		t.Errorf("version = %d, want 2 after update", a.Version)
	}

	// b still carries the stale version.
	b.ActiveWeek = 3
	err := repo.Update(ctx, b)
	if !errors.Is(err, plan.ErrConcurrentModification) {
		t.Errorf("err = %v, want ErrConcurrentModification", err)
	}
}

func TestRoadmapDeactivate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Roadmaps()
	ctx := context.Background()

	if err := repo.Create(ctx, testRoadmap("learner-1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Deactivate(ctx, "learner-1"); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	rm, err := repo.ActiveByLearner(ctx, "learner-1")
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if rm != nil {
		t.Errorf("expected no active roadmap, got %q", rm.ID)
	}
}

func testSession(id, learnerID string, date time.Time) *plan.Session {
	return &plan.Session{
		ID:         id,
		LearnerID:  learnerID,
		Date:       date,
		RoadmapID:  "rm-1",
		WeekNumber: 1,
		DayNumber:  1,
		Status:     plan.SessionUpcoming,
		Version:    1,
		Items: []plan.PlanItem{
			{
				ID:             "item-1",
				Priority:       1,
				TargetWeakness: "listening-detail",
				Status:         plan.ItemPending,
				Resources:      []plan.Resource{{ID: "res-1", Title: "Podcast"}},
				Drills:         []plan.Drill{{ID: "drill-1", Prompt: "Dictation", Skill: "listening"}},
			},
		},
	}
}

func TestSessionCreateIfAbsent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	date := time.Date(2025, 3, 4, 15, 30, 0, 0, time.UTC)

	first, created, err := repo.CreateIfAbsent(ctx, testSession("sess-1", "learner-1", date))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created {
		t.Fatal("expected first call to create")
	}

	// Second writer for the same day loses and gets the winner back.
	second, created, err := repo.CreateIfAbsent(ctx, testSession("sess-2", "learner-1", date))
	if err != nil {
		t.Fatalf("second create: %v", err)
	}
	if created {
		t.Fatal("expected second call to lose the race")
	}
	if second.ID != first.ID {
		t.Errorf("winner id = %q, want %q", second.ID, first.ID)
	}

	// The row is keyed by calendar day, not instant.
	got, err := repo.ByLearnerDate(ctx, "learner-1", date.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if got == nil || got.ID != "sess-1" {
		t.Errorf("session = %+v, want sess-1", got)
	}
}

func TestSessionUpdateAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	date := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)

	sess, _, err := repo.CreateIfAbsent(ctx, testSession("sess-1", "learner-1", date))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	sess.Items[0].Resources[0].Completed = true
	sess.Progress = 50
	sess.Status = plan.SessionInProgress
	if err := repo.Update(ctx, sess); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.ByID(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if !got.Items[0].Resources[0].Completed {
		t.Error("resource completion not persisted")
	}
	if got.Progress != 50 {
		t.Errorf("progress = %d, want 50", got.Progress)
	}

	if err := repo.DeleteByLearnerDate(ctx, "learner-1", date); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := repo.ByLearnerDate(ctx, "learner-1", date)
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if gone != nil {
		t.Error("expected session deleted")
	}
}

func TestLearnerUpsert(t *testing.T) {
	s := openTestStore(t)
	repo := s.Learners()
	ctx := context.Background()

	p, err := repo.Get(ctx, "learner-1")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile for unknown learner")
	}

	profile := &plan.LearnerProfile{
		LearnerID:    "learner-1",
		Name:         "Ada",
		TargetScore:  7.5,
		DailyMinutes: 45,
		StudyDays:    []int{1, 2, 3, 4, 5},
		Weaknesses: []plan.Weakness{
			{SkillKey: "listening-detail", SkillName: "Listening for detail", Severity: "high", Accuracy: 0.4},
		},
	}
	if err := repo.Save(ctx, profile); err != nil {
		t.Fatalf("save: %v", err)
	}

	profile.DailyMinutes = 60
	if err := repo.Save(ctx, profile); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := repo.Get(ctx, "learner-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.DailyMinutes != 60 {
		t.Errorf("dailyMinutes = %d, want 60", got.DailyMinutes)
	}
	if len(got.Weaknesses) != 1 || got.Weaknesses[0].SkillKey != "listening-detail" {
		t.Errorf("weaknesses = %+v", got.Weaknesses)
	}
	if !got.StudiesOn(3) || got.StudiesOn(0) {
		t.Errorf("studyDays = %v", got.StudyDays)
	}
}

func TestGenerationEventAppendRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.GenerationEvents()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Append(ctx, GenerationEventData{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Purpose:   "day-gen",
			Provider:  "mock",
			Success:   true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if !events[0].Timestamp.After(events[1].Timestamp) {
		t.Error("expected newest first")
	}
}

func TestLearnerFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Learners()
	ctx := context.Background()

	p, err := repo.First(ctx)
	if err != nil {
		t.Fatalf("first (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil profile when no learners exist")
	}

	for _, id := range []string{"learner-b", "learner-a"} {
		if err := repo.Save(ctx, &plan.LearnerProfile{
			LearnerID:    id,
			TargetScore:  7.0,
			DailyMinutes: 30,
			StudyDays:    []int{1, 3},
		}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	p, err = repo.First(ctx)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if p == nil || p.LearnerID != "learner-a" {
		t.Fatalf("first = %+v, want learner-a", p)
	}
}

func TestGenerationEventByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.GenerationEvents()
	ctx := context.Background()

	err := repo.Append(ctx, GenerationEventData{
		Timestamp:   time.Now().UTC(),
		Purpose:     "roadmap-gen",
		Provider:    "mock",
		Model:       "mock-1",
		Success:     true,
		RequestBody: "[system]\nplan the study week",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.Recent(ctx, 1)
	if err != nil || len(events) != 1 {
		t.Fatalf("recent: %v (%d events)", err, len(events))
	}

	got, err := repo.ByID(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("byID: %v", err)
	}
	if got == nil || got.Purpose != "roadmap-gen" || got.RequestBody == "" {
		t.Fatalf("byID = %+v", got)
	}

	missing, err := repo.ByID(ctx, events[0].ID+999)
	if err != nil {
		t.Fatalf("byID (missing): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for unknown event id")
	}
}
