package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepmap/ent"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/internal/plan"
)

// roadmapRepo implements RoadmapRepo using the ent client.
type roadmapRepo struct {
	client *ent.Client
}

func (r *roadmapRepo) Create(ctx context.Context, rm *plan.Roadmap) error {
	_, err := r.client.Roadmap.Create().
		SetRoadmapID(rm.ID).
		SetLearnerID(rm.LearnerID).
		SetGoal(rm.Goal).
		SetStatus(string(rm.Status)).
		SetStartDate(rm.StartDate).
		SetTotalWeeks(rm.TotalWeeks).
		SetStudyDaysPerWeek(rm.StudyDaysPerWeek).
		SetDailyMinutes(rm.DailyMinutes).
		SetLearningStrategy(rm.LearningStrategy).
		SetActiveWeek(rm.ActiveWeek).
		SetSessionsCompleted(rm.SessionsCompleted).
		SetTotalSessions(rm.TotalSessions).
		SetOverallProgress(rm.OverallProgress).
		SetWeeks(weeksToDocs(rm.Weeks)).
		SetVersion(rm.Version).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save roadmap: %w", err)
	}
	return nil
}

func (r *roadmapRepo) ActiveByLearner(ctx context.Context, learnerID string) (*plan.Roadmap, error) {
	rm, err := r.client.Roadmap.Query().
		Where(
			roadmap.LearnerID(learnerID),
			roadmap.Status(string(plan.RoadmapActive)),
		).
		Order(ent.Desc(roadmap.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active roadmap: %w", err)
	}
	return entToRoadmap(rm), nil
}

func (r *roadmapRepo) ByID(ctx context.Context, roadmapID string) (*plan.Roadmap, error) {
	rm, err := r.client.Roadmap.Query().
		Where(roadmap.RoadmapID(roadmapID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("query roadmap: %w", err)
	}
	return entToRoadmap(rm), nil
}

func (r *roadmapRepo) Update(ctx context.Context, rm *plan.Roadmap) error {
	n, err := r.client.Roadmap.Update().
		Where(
			roadmap.RoadmapID(rm.ID),
			roadmap.Version(rm.Version),
		).
		SetStatus(string(rm.Status)).
		SetStartDate(rm.StartDate).
		SetActiveWeek(rm.ActiveWeek).
		SetSessionsCompleted(rm.SessionsCompleted).
		SetTotalSessions(rm.TotalSessions).
		SetOverallProgress(rm.OverallProgress).
		SetLearningStrategy(rm.LearningStrategy).
		SetWeeks(weeksToDocs(rm.Weeks)).
		SetVersion(rm.Version + 1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update roadmap: %w", err)
	}
	if n == 0 {
		exists, err := r.client.Roadmap.Query().
			Where(roadmap.RoadmapID(rm.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check roadmap exists: %w", err)
		}
		if !exists {
			return plan.ErrNotFound
		}
		return plan.ErrConcurrentModification
	}
	rm.Version++
	return nil
}

func (r *roadmapRepo) Deactivate(ctx context.Context, learnerID string) error {
	_, err := r.client.Roadmap.Update().
		Where(
			roadmap.LearnerID(learnerID),
			roadmap.Status(string(plan.RoadmapActive)),
		).
		SetStatus(string(plan.RoadmapCompleted)).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("deactivate roadmaps: %w", err)
	}
	return nil
}
