package plan

import "math"

// Progress roll-up. All functions here are pure over the in-memory
// session/roadmap graph; callers persist afterwards.

// ratio returns round(100 * completed / total), or 0 when total is 0.
func ratio(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// ItemProgress recomputes an item's progress from its children and applies
// status transitions. Timestamps are set on first transition only.
func ItemProgress(item *PlanItem, now Timestamp) {
	total := len(item.Resources) + len(item.Drills)
	done := 0
	for i := range item.Resources {
		if item.Resources[i].Completed {
			done++
		}
	}
	for i := range item.Drills {
		if item.Drills[i].Completed {
			done++
		}
	}

	if total > 0 {
		item.Progress = ratio(done, total)
	}

	switch {
	case item.Progress >= 100:
		item.Progress = 100
		item.Status = ItemCompleted
		if item.CompletedAt == nil {
			t := now()
			item.CompletedAt = &t
		}
	case item.Progress > 0 && item.Status == ItemPending:
		item.Status = ItemInProgress
		if item.StartedAt == nil {
			t := now()
			item.StartedAt = &t
		}
	}
}

// SessionProgress recomputes a session's progress from its items' completed
// counts and applies status transitions.
func SessionProgress(s *Session, now Timestamp) {
	done := 0
	for i := range s.Items {
		if s.Items[i].Status == ItemCompleted {
			done++
		}
	}
	s.Progress = ratio(done, len(s.Items))

	switch {
	case s.Progress >= 100 && len(s.Items) > 0:
		s.Status = SessionCompleted
		if s.CompletedAt == nil {
			t := now()
			s.CompletedAt = &t
		}
	case s.Progress > 0 && s.Status == SessionUpcoming:
		s.Status = SessionInProgress
		if s.StartedAt == nil {
			t := now()
			s.StartedAt = &t
		}
	}
}

// Cascade recomputes the touched item and then the whole session, always in
// that order, even when the caller only touched one resource.
func Cascade(s *Session, item *PlanItem, now Timestamp) {
	ItemProgress(item, now)
	SessionProgress(s, now)
}

// AutoScan recomputes every item and then the session. It reports whether
// the session transitioned into completed during this call, so the caller
// can fire the day-complete hook exactly once.
func AutoScan(s *Session, now Timestamp) (completedNow bool) {
	wasComplete := s.Status == SessionCompleted
	for i := range s.Items {
		ItemProgress(&s.Items[i], now)
	}
	SessionProgress(s, now)
	return !wasComplete && s.Status == SessionCompleted
}

// RoadmapProgress recomputes per-week counters and statuses, then the
// roadmap's aggregate counters and overall progress.
func RoadmapProgress(r *Roadmap) {
	totalSessions := 0
	completed := 0

	for i := range r.Weeks {
		w := &r.Weeks[i]
		w.TotalSessions = len(w.Days)
		w.SessionsCompleted = 0
		started := false
		for j := range w.Days {
			switch w.Days[j].Status {
			case DayCompleted:
				w.SessionsCompleted++
				started = true
			case DayInProgress, DaySkipped:
				started = true
			}
		}

		switch {
		case w.TotalSessions > 0 && w.Exhausted():
			w.Status = WeekCompleted
		case started:
			w.Status = WeekInProgress
		default:
			w.Status = WeekPending
		}

		totalSessions += w.TotalSessions
		completed += w.SessionsCompleted
	}

	r.TotalSessions = totalSessions
	r.SessionsCompleted = completed
	r.OverallProgress = ratio(completed, totalSessions)
}
