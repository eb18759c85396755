package roadmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
)

// materializeToday seeds a learner, generates a roadmap, and materializes
// today's session.
func materializeToday(t *testing.T, svc *Service, mock *planner.Mock, learnerID string) *plan.Session {
	t.Helper()
	generateActive(t, svc, mock, learnerID)
	sess, err := svc.GetTodaySession(context.Background(), learnerID)
	if err != nil {
		t.Fatalf("materialize: %v", err)
	}
	if sess == nil {
		t.Fatal("materialize: no session for today")
	}
	return sess
}

func TestTrackResourceViewDwellThreshold(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	item := &sess.Items[0]
	res := &item.Resources[0]

	// 6 seconds against the 5 second threshold: the resource flips and the
	// cascade runs in the same call.
	got, err := svc.TrackResourceView(ctx, sess.ID, item.ID, res.ID, 6*time.Second)
	if err != nil {
		t.Fatalf("TrackResourceView: %v", err)
	}
	gotItem := got.Item(item.ID)
	if !gotItem.Resources[0].Completed {
		t.Error("resource did not auto-complete at the dwell threshold")
	}
	if gotItem.Progress != 50 {
		t.Errorf("item progress = %d, want 50 (1 of 2 children)", gotItem.Progress)
	}
	if gotItem.Status != plan.ItemInProgress {
		t.Errorf("item status = %s, want in-progress", gotItem.Status)
	}
	if got.Status != plan.SessionInProgress {
		t.Errorf("session status = %s, want in-progress", got.Status)
	}
	if got.TotalTimeSpent != 6 {
		t.Errorf("total time = %d, want 6", got.TotalTimeSpent)
	}
}

func TestTrackResourceViewBelowThreshold(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	item := &sess.Items[0]
	got, err := svc.TrackResourceView(ctx, sess.ID, item.ID, item.Resources[0].ID, 3*time.Second)
	if err != nil {
		t.Fatalf("TrackResourceView: %v", err)
	}
	if got.Item(item.ID).Resources[0].Completed {
		t.Error("resource completed below the dwell threshold")
	}
	if got.TotalTimeSpent != 3 {
		t.Errorf("total time = %d, want 3", got.TotalTimeSpent)
	}

	// Time accumulates across views.
	got, err = svc.TrackResourceView(ctx, sess.ID, item.ID, item.Resources[0].ID, 4*time.Second)
	if err != nil {
		t.Fatalf("second view: %v", err)
	}
	if got.TotalTimeSpent != 7 {
		t.Errorf("total time = %d, want 7", got.TotalTimeSpent)
	}
	if got.Item(item.ID).Resources[0].Completed {
		t.Error("single views below the threshold must not add up to completion")
	}
}

func TestReviewDoesNotMoveCompletedAt(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	item := &sess.Items[0]
	if _, err := svc.TrackResourceView(ctx, sess.ID, item.ID, item.Resources[0].ID, 6*time.Second); err != nil {
		t.Fatalf("view: %v", err)
	}
	got, err := svc.CompleteDrill(ctx, sess.ID, item.ID, item.Drills[0].ID)
	if err != nil {
		t.Fatalf("CompleteDrill: %v", err)
	}
	completedAt := got.Item(item.ID).CompletedAt
	if completedAt == nil {
		t.Fatal("item did not complete")
	}

	// Re-view the same resource a day later.
	svc.now = fixedClock(monday.Add(24 * time.Hour))
	got, err = svc.TrackResourceView(ctx, sess.ID, item.ID, item.Resources[0].ID, 6*time.Second)
	if err != nil {
		t.Fatalf("re-view: %v", err)
	}
	if !got.Item(item.ID).CompletedAt.Equal(*completedAt) {
		t.Errorf("completedAt moved on re-view: %v vs %v", got.Item(item.ID).CompletedAt, completedAt)
	}
}

func TestCompleteDrill(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	// Items[1] has a single drill, so completing it completes the item.
	item := &sess.Items[1]
	got, err := svc.CompleteDrill(ctx, sess.ID, item.ID, item.Drills[0].ID)
	if err != nil {
		t.Fatalf("CompleteDrill: %v", err)
	}
	gotItem := got.Item(item.ID)
	if gotItem.Status != plan.ItemCompleted || gotItem.Progress != 100 {
		t.Errorf("item = %s/%d%%, want completed/100%%", gotItem.Status, gotItem.Progress)
	}
	if got.Progress != 50 {
		t.Errorf("session progress = %d, want 50", got.Progress)
	}
}

func TestCompleteSessionFlipsDayAndCounters(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	got, err := svc.CompleteSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if got.Status != plan.SessionCompleted || got.Progress != 100 {
		t.Fatalf("session = %s/%d%%, want completed/100%%", got.Status, got.Progress)
	}
	if got.CompletedAt == nil {
		t.Error("completedAt not set")
	}

	r, err := svc.GetActiveRoadmap(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetActiveRoadmap: %v", err)
	}
	if day := r.Weeks[0].Days[0]; day.Status != plan.DayCompleted {
		t.Errorf("day status = %s, want completed", day.Status)
	}
	if r.SessionsCompleted != 1 || r.TotalSessions != 10 {
		t.Errorf("counters = %d/%d, want 1/10", r.SessionsCompleted, r.TotalSessions)
	}
	if r.OverallProgress != 10 {
		t.Errorf("overall = %d%%, want 10%%", r.OverallProgress)
	}
	if r.ActiveWeek != 1 {
		t.Errorf("active week = %d, want 1 (4 sessions remain)", r.ActiveWeek)
	}
}

func TestCompleteSessionSurvivesWeekRegeneration(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{
		ActivitiesOut: testActivities(),
		WeekOut: []planner.DayPlan{
			{DayOfWeek: 5, Title: "Friday catch-up", TargetSkills: []string{"listening"}},
		},
	}
	svc := newTestService(t, st, mock, monday.AddDate(0, 0, 4)) // Friday
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	// Monday got done, Tuesday through Thursday did not.
	r, err := svc.GetActiveRoadmap(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetActiveRoadmap: %v", err)
	}
	r.Weeks[0].Days[0].Status = plan.DayCompleted
	plan.RoadmapProgress(r)
	if err := svc.roadmaps.Update(ctx, r); err != nil {
		t.Fatalf("update roadmap: %v", err)
	}

	// Three missed days force a regenerate, which renumbers the week while
	// today's session is still open under the old numbering.
	res, err := svc.CheckMissedSessions(ctx, "learner-1")
	if err != nil {
		t.Fatalf("CheckMissedSessions: %v", err)
	}
	if res.Action != CalibrationRegenerated {
		t.Fatalf("action = %s, want regenerated", res.Action)
	}

	if _, err := svc.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}

	r, err = svc.GetActiveRoadmap(ctx, "learner-1")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	week := r.Week(1)
	if len(week.Days) != 2 {
		t.Fatalf("week days = %d, want kept Monday + replacement Friday", len(week.Days))
	}
	if week.Days[1].Title != "Friday catch-up" || week.Days[1].Status != plan.DayCompleted {
		t.Errorf("replacement day = %q/%s, want completed \"Friday catch-up\"", week.Days[1].Title, week.Days[1].Status)
	}
	if r.SessionsCompleted != 2 || r.TotalSessions != 7 {
		t.Errorf("counters = %d/%d, want 2/7", r.SessionsCompleted, r.TotalSessions)
	}
	// With the whole week terminal the roadmap moves on.
	if r.ActiveWeek != 2 {
		t.Errorf("active week = %d, want 2", r.ActiveWeek)
	}
}

func TestCompleteSessionIdempotentHook(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	if _, err := svc.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("first complete: %v", err)
	}
	if _, err := svc.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatalf("second complete: %v", err)
	}

	r, err := svc.GetActiveRoadmap(ctx, "learner-1")
	if err != nil {
		t.Fatalf("GetActiveRoadmap: %v", err)
	}
	if r.SessionsCompleted != 1 {
		t.Errorf("sessions completed = %d, want 1 (hook fired twice?)", r.SessionsCompleted)
	}
}

func TestSetItemProgress(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: []planner.Activity{{
		Title:         "Free reading",
		ActivityType:  "reading",
		EstimatedMins: 30,
	}}}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	item := &sess.Items[0]
	if _, err := svc.SetItemProgress(ctx, sess.ID, item.ID, 130); !errors.Is(err, plan.ErrInvalidProgress) {
		t.Errorf("out-of-range err = %v, want ErrInvalidProgress", err)
	}
	if _, err := svc.SetItemProgress(ctx, sess.ID, item.ID, -1); !errors.Is(err, plan.ErrInvalidProgress) {
		t.Errorf("negative err = %v, want ErrInvalidProgress", err)
	}

	got, err := svc.SetItemProgress(ctx, sess.ID, item.ID, 40)
	if err != nil {
		t.Fatalf("SetItemProgress: %v", err)
	}
	gotItem := got.Item(item.ID)
	if gotItem.Progress != 40 || gotItem.Status != plan.ItemInProgress {
		t.Errorf("item = %d%%/%s, want 40%%/in-progress", gotItem.Progress, gotItem.Status)
	}
}

func TestCompletionUnknownIDs(t *testing.T) {
	st := openTestStore(t)
	mock := &planner.Mock{ActivitiesOut: testActivities()}
	svc := newTestService(t, st, mock, monday)
	ctx := context.Background()
	sess := materializeToday(t, svc, mock, "learner-1")

	if _, err := svc.CompleteSession(ctx, "nope"); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("unknown session err = %v, want ErrNotFound", err)
	}
	if _, err := svc.CompleteDrill(ctx, sess.ID, "nope", "nope"); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("unknown item err = %v, want ErrNotFound", err)
	}
	if _, err := svc.TrackResourceView(ctx, sess.ID, sess.Items[0].ID, "nope", time.Second); !errors.Is(err, plan.ErrNotFound) {
		t.Errorf("unknown resource err = %v, want ErrNotFound", err)
	}
}
