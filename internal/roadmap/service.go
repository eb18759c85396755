package roadmap

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/planner"
	"github.com/abhisek/prepmap/internal/store"
)

// DefaultDwellThreshold is the reported view time at which a resource
// auto-completes.
const DefaultDwellThreshold = 5 * time.Second

// Service is the roadmap orchestrator: it generates roadmaps, materializes
// today's session, records completion events, and drives calibration and
// week advancement.
type Service struct {
	roadmaps store.RoadmapRepo
	sessions store.SessionRepo
	learners store.LearnerRepo
	gen      planner.Generator

	// dwellThreshold is the resource auto-complete threshold.
	dwellThreshold time.Duration

	// now supplies the clock; tests fix it.
	now plan.Timestamp
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the service clock.
func WithClock(now plan.Timestamp) Option {
	return func(s *Service) { s.now = now }
}

// WithDwellThreshold overrides the resource auto-complete threshold.
func WithDwellThreshold(d time.Duration) Option {
	return func(s *Service) { s.dwellThreshold = d }
}

// NewService creates the orchestrator.
func NewService(st *store.Store, gen planner.Generator, opts ...Option) *Service {
	s := &Service{
		roadmaps:       st.Roadmaps(),
		sessions:       st.Sessions(),
		learners:       st.Learners(),
		gen:            gen,
		dwellThreshold: DefaultDwellThreshold,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newServiceWithRepos wires explicit repos; used by tests that want to
// reuse one open store.
func newServiceWithRepos(roadmaps store.RoadmapRepo, sessions store.SessionRepo, learners store.LearnerRepo, gen planner.Generator, opts ...Option) *Service {
	s := &Service{
		roadmaps:       roadmaps,
		sessions:       sessions,
		learners:       learners,
		gen:            gen,
		dwellThreshold: DefaultDwellThreshold,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateRoadmap builds and activates a new roadmap for the learner's
// goal from their stored profile. Any previously active roadmap is
// deactivated first; there is never more than one active plan.
func (s *Service) GenerateRoadmap(ctx context.Context, learnerID, goal string) (*plan.Roadmap, error) {
	profile, err := s.learners.Get(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("learner %s: %w", learnerID, plan.ErrNotFound)
	}
	if profile.TargetScore <= 0 || profile.DailyMinutes <= 0 {
		return nil, plan.ErrInvalidGoal
	}
	if len(profile.StudyDays) == 0 {
		return nil, fmt.Errorf("%w: no study days configured", plan.ErrInvalidGoal)
	}

	rp, err := s.gen.GenerateRoadmap(ctx, planner.RoadmapContext{
		Goal:         goal,
		TargetScore:  profile.TargetScore,
		DailyMinutes: profile.DailyMinutes,
		StudyDays:    profile.StudyDays,
		CurrentLevel: profile.Competency,
		Weaknesses:   profile.Weaknesses,
	})
	if err != nil {
		return nil, err
	}

	r := &plan.Roadmap{
		ID:               uuid.NewString(),
		LearnerID:        learnerID,
		Goal:             goal,
		Status:           plan.RoadmapActive,
		StartDate:        plan.DateOnly(s.now()),
		TotalWeeks:       rp.TotalWeeks,
		StudyDaysPerWeek: len(profile.StudyDays),
		DailyMinutes:     profile.DailyMinutes,
		LearningStrategy: rp.LearningStrategy,
		ActiveWeek:       1,
		Version:          1,
	}
	for _, w := range rp.Weeks {
		week := plan.WeeklyFocus{
			WeekNumber:    w.WeekNumber,
			Title:         w.Title,
			Summary:       w.Summary,
			TargetSkills:  w.TargetSkills,
			TargetDomains: w.TargetDomains,
			Status:        plan.WeekPending,
		}
		for _, d := range w.Days {
			week.Days = append(week.Days, dayFromPlan(d))
		}
		r.Weeks = append(r.Weeks, week)
	}
	renumberDays(r)
	plan.RoadmapProgress(r)

	if err := s.roadmaps.Deactivate(ctx, learnerID); err != nil {
		return nil, err
	}
	if err := s.roadmaps.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// GetActiveRoadmap returns the learner's single active roadmap.
// Returns plan.ErrNoActivePlan — a normal empty state, not a failure —
// when none exists.
func (s *Service) GetActiveRoadmap(ctx context.Context, learnerID string) (*plan.Roadmap, error) {
	r, err := s.roadmaps.ActiveByLearner(ctx, learnerID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, plan.ErrNoActivePlan
	}
	return r, nil
}

// dayFromPlan converts a planner day into a DailyFocus. Day numbers are
// assigned afterwards by renumberDays.
func dayFromPlan(d planner.DayPlan) plan.DailyFocus {
	return plan.DailyFocus{
		DayOfWeek:        d.DayOfWeek,
		Title:            d.Title,
		TargetSkills:     d.TargetSkills,
		TargetDomains:    d.TargetDomains,
		EstimatedMinutes: d.EstimatedMinutes,
		FoundationWeight: d.FoundationWeight,
		IsCritical:       d.IsCritical,
		Status:           plan.DayPending,
	}
}

// renumberDays assigns absolute day numbers across the whole roadmap in
// schedule order.
func renumberDays(r *plan.Roadmap) {
	n := 0
	for i := range r.Weeks {
		for j := range r.Weeks[i].Days {
			n++
			r.Weeks[i].Days[j].DayNumber = n
		}
	}
}

// primarySkill picks the weakness descriptor a plan item is tagged with.
func primarySkill(focus *plan.DailyFocus) string {
	if len(focus.TargetSkills) > 0 {
		return focus.TargetSkills[0]
	}
	if len(focus.TargetDomains) > 0 {
		return focus.TargetDomains[0]
	}
	return "general"
}
