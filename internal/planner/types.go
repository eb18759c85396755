package planner

import "github.com/abhisek/prepmap/internal/plan"

// The planner returns three distinct shapes — a full roadmap, a day's
// activities, or a week's replacement days. Each is validated and converted
// into the internal model at this boundary; the raw generator output never
// travels deeper into the engine.

// RoadmapContext is everything the planner needs to lay out a full roadmap.
type RoadmapContext struct {
	Goal         string
	TargetScore  float64
	DailyMinutes int

	// StudyDays holds the weekday indices the learner actually studies.
	StudyDays []int

	// CurrentLevel is the per-skill competency snapshot, 0-1.
	CurrentLevel map[string]float64

	Weaknesses []plan.Weakness
}

// RoadmapPlan is the planner's full-roadmap shape.
type RoadmapPlan struct {
	TotalWeeks       int
	LearningStrategy string
	Weeks            []WeekPlan
}

// WeekPlan is one generated week.
type WeekPlan struct {
	WeekNumber    int
	Title         string
	Summary       string
	TargetSkills  []string
	TargetDomains []string
	Days          []DayPlan
}

// DayPlan is one generated day.
type DayPlan struct {
	DayOfWeek        int
	Title            string
	TargetSkills     []string
	TargetDomains    []string
	EstimatedMinutes int
	FoundationWeight float64
	IsCritical       bool
}

// DayContext is everything the planner needs to produce one day's
// activities.
type DayContext struct {
	Title            string
	TargetSkills     []string
	TargetDomains    []string
	MinutesAvailable int
	TargetScore      float64
	Weaknesses       []plan.Weakness
}

// Activity is one generated activity for a day.
type Activity struct {
	Title         string
	Description   string
	ActivityType  string
	EstimatedMins int
	Resources     []ResourcePlan
	Drills        []DrillPlan
}

// ResourcePlan is a generated study resource.
type ResourcePlan struct {
	Title string
	URL   string
}

// DrillPlan is a generated practice drill.
type DrillPlan struct {
	Prompt string
	Skill  string
}

// WeekContext is everything the planner needs to replace the uncompleted
// remainder of a week.
type WeekContext struct {
	WeekNumber    int
	Title         string
	Summary       string
	TargetSkills  []string
	TargetDomains []string
	DailyMinutes  int

	// RemainingDays holds the weekday indices still available, today
	// onward.
	RemainingDays []int

	// CoveredSkills were handled by already-completed days and should be
	// de-prioritized in the replacement.
	CoveredSkills []string
}
