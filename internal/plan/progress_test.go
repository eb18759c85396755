package plan

import (
	"testing"
	"time"
)

func fixedNow(t time.Time) Timestamp {
	return func() time.Time { return t }
}

func TestItemProgressNoChildren(t *testing.T) {
	item := &PlanItem{Status: ItemPending}
	ItemProgress(item, fixedNow(time.Now()))

	if item.Progress != 0 {
		t.Errorf("progress = %d, want 0", item.Progress)
	}
	if item.Status != ItemPending {
		t.Errorf("status = %q, want pending", item.Status)
	}
}

func TestItemProgressPartial(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	item := &PlanItem{
		Status: ItemPending,
		Resources: []Resource{
			{ID: "r1", Completed: true},
			{ID: "r2"},
			{ID: "r3"},
		},
	}
	ItemProgress(item, fixedNow(now))

	if item.Progress != 33 {
		t.Errorf("progress = %d, want 33", item.Progress)
	}
	if item.Status != ItemInProgress {
		t.Errorf("status = %q, want in-progress", item.Status)
	}
	if item.StartedAt == nil || !item.StartedAt.Equal(now) {
		t.Errorf("startedAt = %v, want %v", item.StartedAt, now)
	}
}

func TestItemProgressCompleteIsImmutable(t *testing.T) {
	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	item := &PlanItem{
		Status:    ItemPending,
		Resources: []Resource{{ID: "r1", Completed: true}},
		Drills:    []Drill{{ID: "d1", Completed: true}},
	}
	ItemProgress(item, fixedNow(first))

	if item.Status != ItemCompleted {
		t.Fatalf("status = %q, want completed", item.Status)
	}
	if item.CompletedAt == nil || !item.CompletedAt.Equal(first) {
		t.Fatalf("completedAt = %v, want %v", item.CompletedAt, first)
	}

	// A later recompute (e.g. the same resource viewed again) must not
	// move the completion timestamp.
	later := first.Add(2 * time.Hour)
	ItemProgress(item, fixedNow(later))

	if !item.CompletedAt.Equal(first) {
		t.Errorf("completedAt moved to %v after recompute", item.CompletedAt)
	}
}

func TestSessionProgressRollUp(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		statuses   []ItemStatus
		wantPct    int
		wantStatus SessionStatus
	}{
		{"no items", nil, 0, SessionUpcoming},
		{"none done", []ItemStatus{ItemPending, ItemPending}, 0, SessionUpcoming},
		{"one of three", []ItemStatus{ItemCompleted, ItemPending, ItemPending}, 33, SessionInProgress},
		{"two of three", []ItemStatus{ItemCompleted, ItemCompleted, ItemPending}, 67, SessionInProgress},
		{"all done", []ItemStatus{ItemCompleted, ItemCompleted}, 100, SessionCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Session{Status: SessionUpcoming}
			for i, st := range tt.statuses {
				s.Items = append(s.Items, PlanItem{ID: string(rune('a' + i)), Status: st})
			}
			SessionProgress(s, fixedNow(now))

			if s.Progress != tt.wantPct {
				t.Errorf("progress = %d, want %d", s.Progress, tt.wantPct)
			}
			if s.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", s.Status, tt.wantStatus)
			}
		})
	}
}

func TestCascadeUpdatesItemThenSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := &Session{
		Status: SessionUpcoming,
		Items: []PlanItem{
			{ID: "i1", Status: ItemPending, Resources: []Resource{{ID: "r1", Completed: true}}},
		},
	}

	Cascade(s, &s.Items[0], fixedNow(now))

	if s.Items[0].Status != ItemCompleted {
		t.Errorf("item status = %q, want completed", s.Items[0].Status)
	}
	if s.Status != SessionCompleted {
		t.Errorf("session status = %q, want completed", s.Status)
	}
	if s.Progress != 100 {
		t.Errorf("session progress = %d, want 100", s.Progress)
	}
}

func TestAutoScanFiresOnce(t *testing.T) {
	now := fixedNow(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	s := &Session{
		Status: SessionUpcoming,
		Items: []PlanItem{
			{ID: "i1", Status: ItemPending, Drills: []Drill{{ID: "d1", Completed: true}}},
		},
	}

	if !AutoScan(s, now) {
		t.Fatal("expected first AutoScan to report completion")
	}
	if AutoScan(s, now) {
		t.Fatal("second AutoScan must not re-report completion")
	}
}

func TestRoadmapProgressCounters(t *testing.T) {
	r := &Roadmap{
		Weeks: []WeeklyFocus{
			{
				WeekNumber: 1,
				Days: []DailyFocus{
					{DayNumber: 1, Status: DayCompleted},
					{DayNumber: 2, Status: DayCompleted},
					{DayNumber: 3, Status: DaySkipped},
				},
			},
			{
				WeekNumber: 2,
				Days: []DailyFocus{
					{DayNumber: 4, Status: DayPending},
					{DayNumber: 5, Status: DayPending},
					{DayNumber: 6, Status: DayPending},
				},
			},
		},
	}

	RoadmapProgress(r)

	if r.SessionsCompleted != 2 {
		t.Errorf("sessionsCompleted = %d, want 2", r.SessionsCompleted)
	}
	if r.TotalSessions != 6 {
		t.Errorf("totalSessions = %d, want 6", r.TotalSessions)
	}
	if r.SessionsCompleted > r.TotalSessions {
		t.Error("sessionsCompleted exceeds totalSessions")
	}
	if r.OverallProgress != 33 {
		t.Errorf("overallProgress = %d, want 33", r.OverallProgress)
	}
	if r.Weeks[0].Status != WeekCompleted {
		t.Errorf("week 1 status = %q, want completed", r.Weeks[0].Status)
	}
	if r.Weeks[1].Status != WeekPending {
		t.Errorf("week 2 status = %q, want pending", r.Weeks[1].Status)
	}
}

func TestRoadmapProgressEmpty(t *testing.T) {
	r := &Roadmap{}
	RoadmapProgress(r)

	if r.OverallProgress != 0 {
		t.Errorf("overallProgress = %d, want 0", r.OverallProgress)
	}
}
