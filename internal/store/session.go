package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/prepmap/ent"
	"github.com/abhisek/prepmap/ent/studysession"
	"github.com/abhisek/prepmap/internal/plan"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

// DateKey truncates t to midnight UTC. All session rows are keyed by this.
func DateKey(t time.Time) time.Time {
	return plan.DateOnly(t)
}

func (r *sessionRepo) CreateIfAbsent(ctx context.Context, s *plan.Session) (*plan.Session, bool, error) {
	date := DateKey(s.Date)

	builder := r.client.StudySession.Create().
		SetSessionID(s.ID).
		SetLearnerID(s.LearnerID).
		SetDate(date).
		SetRoadmapID(s.RoadmapID).
		SetWeekNumber(s.WeekNumber).
		SetDayNumber(s.DayNumber).
		SetTitle(s.Title).
		SetTargetSkills(s.TargetSkills).
		SetItems(itemsToDocs(s.Items)).
		SetProgress(s.Progress).
		SetStatus(string(s.Status)).
		SetTotalTimeSpent(s.TotalTimeSpent).
		SetVersion(s.Version)

	if s.StartedAt != nil {
		builder = builder.SetStartedAt(*s.StartedAt)
	}
	if s.CompletedAt != nil {
		builder = builder.SetCompletedAt(*s.CompletedAt)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// The unique (learner_id, date) index is the race arbiter: a
		// losing writer discards its content and re-reads the winner.
		if ent.IsConstraintError(err) {
			winner, rerr := r.ByLearnerDate(ctx, s.LearnerID, date)
			if rerr != nil {
				return nil, false, rerr
			}
			if winner == nil {
				return nil, false, fmt.Errorf("session vanished after constraint conflict: %w", err)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("save session: %w", err)
	}
	return entToSession(created), true, nil
}

func (r *sessionRepo) ByLearnerDate(ctx context.Context, learnerID string, date time.Time) (*plan.Session, error) {
	s, err := r.client.StudySession.Query().
		Where(
			studysession.LearnerID(learnerID),
			studysession.Date(DateKey(date)),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session by date: %w", err)
	}
	return entToSession(s), nil
}

func (r *sessionRepo) ByID(ctx context.Context, sessionID string) (*plan.Session, error) {
	s, err := r.client.StudySession.Query().
		Where(studysession.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, plan.ErrNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return entToSession(s), nil
}

func (r *sessionRepo) Update(ctx context.Context, s *plan.Session) error {
	builder := r.client.StudySession.Update().
		Where(
			studysession.SessionID(s.ID),
			studysession.Version(s.Version),
		).
		SetItems(itemsToDocs(s.Items)).
		SetProgress(s.Progress).
		SetStatus(string(s.Status)).
		SetTotalTimeSpent(s.TotalTimeSpent).
		SetVersion(s.Version + 1)

	if s.StartedAt != nil {
		builder = builder.SetStartedAt(*s.StartedAt)
	}
	if s.CompletedAt != nil {
		builder = builder.SetCompletedAt(*s.CompletedAt)
	}

	n, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		exists, err := r.client.StudySession.Query().
			Where(studysession.SessionID(s.ID)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check session exists: %w", err)
		}
		if !exists {
			return plan.ErrNotFound
		}
		return plan.ErrConcurrentModification
	}
	s.Version++
	return nil
}

func (r *sessionRepo) DeleteByLearnerDate(ctx context.Context, learnerID string, date time.Time) error {
	_, err := r.client.StudySession.Delete().
		Where(
			studysession.LearnerID(learnerID),
			studysession.Date(DateKey(date)),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
