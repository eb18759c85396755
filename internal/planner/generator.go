package planner

import (
	"context"
	"fmt"
	"sync"

	"github.com/abhisek/prepmap/internal/plan"
)

// Generator is the content-generation collaborator. All three operations
// are independently invocable; each may fail and is retried (if at all) by
// the provider middleware, never by the engine.
type Generator interface {
	// GenerateRoadmap lays out a complete multi-week roadmap.
	GenerateRoadmap(ctx context.Context, rc RoadmapContext) (*RoadmapPlan, error)

	// GenerateDayActivities produces the concrete activities for one day.
	GenerateDayActivities(ctx context.Context, dc DayContext) ([]Activity, error)

	// RegenerateWeek produces replacement days for the uncompleted
	// remainder of a week.
	RegenerateWeek(ctx context.Context, wc WeekContext) ([]DayPlan, error)
}

// Unavailable is the Generator used when no LLM provider is configured.
// Every call fails with the configuration error so read-only operations
// still work while anything needing fresh content reports why it cannot.
type Unavailable struct {
	Err error
}

func (u Unavailable) GenerateRoadmap(context.Context, RoadmapContext) (*RoadmapPlan, error) {
	return nil, fmt.Errorf("%w: %v", plan.ErrGenerationFailed, u.Err)
}

func (u Unavailable) GenerateDayActivities(context.Context, DayContext) ([]Activity, error) {
	return nil, fmt.Errorf("%w: %v", plan.ErrContentGenerationFailed, u.Err)
}

func (u Unavailable) RegenerateWeek(context.Context, WeekContext) ([]DayPlan, error) {
	return nil, fmt.Errorf("%w: %v", plan.ErrContentGenerationFailed, u.Err)
}

// Mock is a deterministic Generator for tests. Outputs are returned
// verbatim; a nil output with a nil error yields
// plan.ErrContentGenerationFailed, mirroring a provider refusal.
type Mock struct {
	mu sync.Mutex

	RoadmapOut *RoadmapPlan
	RoadmapErr error

	ActivitiesOut []Activity
	ActivitiesErr error

	WeekOut []DayPlan
	WeekErr error

	RoadmapCalls    []RoadmapContext
	ActivitiesCalls []DayContext
	WeekCalls       []WeekContext
}

func (m *Mock) GenerateRoadmap(_ context.Context, rc RoadmapContext) (*RoadmapPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RoadmapCalls = append(m.RoadmapCalls, rc)
	if m.RoadmapErr != nil {
		return nil, m.RoadmapErr
	}
	if m.RoadmapOut == nil {
		return nil, plan.ErrGenerationFailed
	}
	return m.RoadmapOut, nil
}

func (m *Mock) GenerateDayActivities(_ context.Context, dc DayContext) ([]Activity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ActivitiesCalls = append(m.ActivitiesCalls, dc)
	if m.ActivitiesErr != nil {
		return nil, m.ActivitiesErr
	}
	if m.ActivitiesOut == nil {
		return nil, plan.ErrContentGenerationFailed
	}
	return m.ActivitiesOut, nil
}

func (m *Mock) RegenerateWeek(_ context.Context, wc WeekContext) ([]DayPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.WeekCalls = append(m.WeekCalls, wc)
	if m.WeekErr != nil {
		return nil, m.WeekErr
	}
	if m.WeekOut == nil {
		return nil, plan.ErrContentGenerationFailed
	}
	return m.WeekOut, nil
}
