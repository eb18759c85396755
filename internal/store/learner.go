package store

import (
	"context"
	"fmt"

	"github.com/abhisek/prepmap/ent"
	"github.com/abhisek/prepmap/ent/learner"
	entschema "github.com/abhisek/prepmap/ent/schema"
	"github.com/abhisek/prepmap/internal/plan"
)

// learnerRepo implements LearnerRepo using the ent client.
type learnerRepo struct {
	client *ent.Client
}

func (r *learnerRepo) Get(ctx context.Context, learnerID string) (*plan.LearnerProfile, error) {
	l, err := r.client.Learner.Query().
		Where(learner.LearnerID(learnerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query learner: %w", err)
	}

	return entToProfile(l), nil
}

func (r *learnerRepo) First(ctx context.Context) (*plan.LearnerProfile, error) {
	l, err := r.client.Learner.Query().
		Order(ent.Asc(learner.FieldLearnerID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query first learner: %w", err)
	}
	return entToProfile(l), nil
}

func entToProfile(l *ent.Learner) *plan.LearnerProfile {
	weaknesses := make([]plan.Weakness, len(l.Weaknesses))
	for i, w := range l.Weaknesses {
		weaknesses[i] = plan.Weakness{
			SkillKey:  w.SkillKey,
			SkillName: w.SkillName,
			Severity:  w.Severity,
			Category:  w.Category,
			Accuracy:  w.Accuracy,
		}
	}

	return &plan.LearnerProfile{
		LearnerID:    l.LearnerID,
		Name:         l.Name,
		TargetScore:  l.TargetScore,
		DailyMinutes: l.DailyMinutes,
		StudyDays:    l.StudyDays,
		Competency:   l.Competency,
		Weaknesses:   weaknesses,
	}
}

func (r *learnerRepo) Save(ctx context.Context, p *plan.LearnerProfile) error {
	weaknesses := make([]entschema.WeaknessDoc, len(p.Weaknesses))
	for i, w := range p.Weaknesses {
		weaknesses[i] = entschema.WeaknessDoc{
			SkillKey:  w.SkillKey,
			SkillName: w.SkillName,
			Severity:  w.Severity,
			Category:  w.Category,
			Accuracy:  w.Accuracy,
		}
	}

	existing, err := r.client.Learner.Query().
		Where(learner.LearnerID(p.LearnerID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query learner: %w", err)
	}

	if existing == nil {
		_, err = r.client.Learner.Create().
			SetLearnerID(p.LearnerID).
			SetName(p.Name).
			SetTargetScore(p.TargetScore).
			SetDailyMinutes(p.DailyMinutes).
			SetStudyDays(p.StudyDays).
			SetCompetency(p.Competency).
			SetWeaknesses(weaknesses).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create learner: %w", err)
		}
		return nil
	}

	_, err = existing.Update().
		SetName(p.Name).
		SetTargetScore(p.TargetScore).
		SetDailyMinutes(p.DailyMinutes).
		SetStudyDays(p.StudyDays).
		SetCompetency(p.Competency).
		SetWeaknesses(weaknesses).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update learner: %w", err)
	}
	return nil
}
