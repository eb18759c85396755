package plan

import "time"

// Timestamp supplies the current time. All wall-clock reads in the engine
// go through one of these so tests can fix "today" deterministically.
type Timestamp func() time.Time

// RoadmapStatus is the lifecycle state of a roadmap.
type RoadmapStatus string

const (
	RoadmapDraft     RoadmapStatus = "draft"
	RoadmapActive    RoadmapStatus = "active"
	RoadmapCompleted RoadmapStatus = "completed"
)

// WeekStatus is the lifecycle state of a planned week.
type WeekStatus string

const (
	WeekPending    WeekStatus = "pending"
	WeekInProgress WeekStatus = "in-progress"
	WeekCompleted  WeekStatus = "completed"
)

// DayStatus is the lifecycle state of a planned day.
//
// Transitions: pending → upcoming → in-progress → completed, or
// pending/upcoming → skipped. Completed and skipped are terminal.
type DayStatus string

const (
	DayPending    DayStatus = "pending"
	DayUpcoming   DayStatus = "upcoming"
	DayInProgress DayStatus = "in-progress"
	DayCompleted  DayStatus = "completed"
	DaySkipped    DayStatus = "skipped"
)

// Terminal reports whether the status can never change again.
func (s DayStatus) Terminal() bool {
	return s == DayCompleted || s == DaySkipped
}

// SessionStatus is the lifecycle state of a materialized session.
type SessionStatus string

const (
	SessionUpcoming   SessionStatus = "upcoming"
	SessionInProgress SessionStatus = "in-progress"
	SessionCompleted  SessionStatus = "completed"
)

// ItemStatus is the lifecycle state of a plan item.
type ItemStatus string

const (
	ItemPending    ItemStatus = "pending"
	ItemInProgress ItemStatus = "in-progress"
	ItemCompleted  ItemStatus = "completed"
)

// Roadmap is the multi-week study plan for one learning goal. The whole
// week/day schedule is embedded; the roadmap is loaded, mutated in memory,
// and written back whole.
type Roadmap struct {
	ID        string
	LearnerID string
	Goal      string
	Status    RoadmapStatus

	StartDate        time.Time
	TotalWeeks       int
	StudyDaysPerWeek int
	DailyMinutes     int
	LearningStrategy string

	// ActiveWeek only ever advances, and only once every day in the
	// active week is completed or skipped.
	ActiveWeek int

	SessionsCompleted int
	TotalSessions     int
	OverallProgress   int

	Weeks []WeeklyFocus

	Version int64
}

// Week returns the week with the given number, or nil.
func (r *Roadmap) Week(n int) *WeeklyFocus {
	for i := range r.Weeks {
		if r.Weeks[i].WeekNumber == n {
			return &r.Weeks[i]
		}
	}
	return nil
}

// ActiveWeekFocus returns the currently-worked week, or nil.
func (r *Roadmap) ActiveWeekFocus() *WeeklyFocus {
	return r.Week(r.ActiveWeek)
}

// WeeklyFocus is one week's worth of plan inside a roadmap.
type WeeklyFocus struct {
	WeekNumber    int
	Title         string
	Summary       string
	TargetSkills  []string
	TargetDomains []string

	// Days may be empty until the week becomes active and is materialized.
	Days []DailyFocus

	TotalSessions     int
	SessionsCompleted int
	Status            WeekStatus
}

// DayByWeekday returns the day planned for the given weekday, or nil.
func (w *WeeklyFocus) DayByWeekday(dow int) *DailyFocus {
	for i := range w.Days {
		if w.Days[i].DayOfWeek == dow {
			return &w.Days[i]
		}
	}
	return nil
}

// Exhausted reports whether every day in the week is terminal.
func (w *WeeklyFocus) Exhausted() bool {
	for i := range w.Days {
		if !w.Days[i].Status.Terminal() {
			return false
		}
	}
	return true
}

// Remaining counts the days that are neither completed nor skipped.
func (w *WeeklyFocus) Remaining() int {
	n := 0
	for i := range w.Days {
		if !w.Days[i].Status.Terminal() {
			n++
		}
	}
	return n
}

// DailyFocus is the planned intent for a single day, distinct from the
// materialized session the learner actually works through.
type DailyFocus struct {
	// DayNumber is the absolute index across the whole roadmap.
	DayNumber int
	// DayOfWeek is 0-6 (Sunday=0), aligned to the learner's calendar.
	DayOfWeek int

	Title            string
	TargetSkills     []string
	TargetDomains    []string
	EstimatedMinutes int

	// FoundationWeight is relative importance, used only when generating
	// content, never for scheduling.
	FoundationWeight float64

	// IsCritical blocks week advancement while the day is incomplete.
	IsCritical bool

	Status DayStatus
}

// Session is the materialized set of activities for one calendar day.
// At most one exists per (learner, date).
type Session struct {
	ID        string
	LearnerID string
	Date      time.Time

	RoadmapID  string
	WeekNumber int
	DayNumber  int

	Title        string
	TargetSkills []string
	Items        []PlanItem

	Progress int
	Status   SessionStatus

	StartedAt   *time.Time
	CompletedAt *time.Time

	// TotalTimeSpent is accumulated seconds reported by the learner.
	TotalTimeSpent int

	Version int64
}

// Item returns the item with the given id, or nil.
func (s *Session) Item(id string) *PlanItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// PlanItem is one activity inside a session.
type PlanItem struct {
	ID             string
	Priority       int
	TargetWeakness string

	Title         string
	Description   string
	ActivityType  string
	EstimatedMins int

	Resources []Resource
	Drills    []Drill

	Progress int
	Status   ItemStatus

	StartedAt   *time.Time
	CompletedAt *time.Time
}

// Resource returns the resource with the given id, or nil.
func (p *PlanItem) Resource(id string) *Resource {
	for i := range p.Resources {
		if p.Resources[i].ID == id {
			return &p.Resources[i]
		}
	}
	return nil
}

// Drill returns the drill with the given id, or nil.
func (p *PlanItem) Drill(id string) *Drill {
	for i := range p.Drills {
		if p.Drills[i].ID == id {
			return &p.Drills[i]
		}
	}
	return nil
}

// Resource is reference material attached to a plan item. It auto-completes
// once the learner's reported dwell time reaches the configured threshold.
type Resource struct {
	ID        string
	Title     string
	URL       string
	Completed bool
}

// Drill is a practice exercise attached to a plan item.
type Drill struct {
	ID        string
	Prompt    string
	Skill     string
	Completed bool
}

// Weakness is one diagnosed weakness, consumed as opaque input at
// roadmap-generation time.
type Weakness struct {
	SkillKey  string
	SkillName string
	Severity  string
	Category  string
	Accuracy  float64
}

// LearnerProfile is the learner's study preferences and competency
// snapshot, read-only from the engine's perspective.
type LearnerProfile struct {
	LearnerID    string
	Name         string
	TargetScore  float64
	DailyMinutes int

	// StudyDays holds the weekday indices (0=Sunday) the learner studies.
	StudyDays []int

	Competency map[string]float64
	Weaknesses []Weakness
}

// StudiesOn reports whether the learner studies on the given weekday.
func (p *LearnerProfile) StudiesOn(dow int) bool {
	for _, d := range p.StudyDays {
		if d == dow {
			return true
		}
	}
	return false
}
