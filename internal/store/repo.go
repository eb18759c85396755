package store

import (
	"context"
	"time"

	"github.com/abhisek/prepmap/internal/plan"
)

// RoadmapRepo manages persisted roadmaps. A roadmap is an aggregate root:
// it is loaded whole, mutated in memory, and written back whole under an
// optimistic version check.
type RoadmapRepo interface {
	// Create persists a new roadmap.
	Create(ctx context.Context, r *plan.Roadmap) error

	// ActiveByLearner returns the learner's single active roadmap,
	// or nil if none exists.
	ActiveByLearner(ctx context.Context, learnerID string) (*plan.Roadmap, error)

	// ByID returns the roadmap with the given id.
	// Returns plan.ErrNotFound if it does not exist.
	ByID(ctx context.Context, roadmapID string) (*plan.Roadmap, error)

	// Update writes the roadmap back, guarded by its version. Returns
	// plan.ErrConcurrentModification if another writer got there first.
	// On success the in-memory version is bumped.
	Update(ctx context.Context, r *plan.Roadmap) error

	// Deactivate marks every active roadmap of the learner as completed,
	// so a newly generated one can become the single active plan.
	Deactivate(ctx context.Context, learnerID string) error
}

// SessionRepo manages materialized daily sessions, keyed by
// (learner id, calendar date).
type SessionRepo interface {
	// CreateIfAbsent atomically inserts the session unless one already
	// exists for its (learner, date) key. It returns the stored session
	// and whether this call created it; a losing concurrent writer gets
	// the winner's row back.
	CreateIfAbsent(ctx context.Context, s *plan.Session) (*plan.Session, bool, error)

	// ByLearnerDate returns the session for the given day, or nil if
	// none has been materialized.
	ByLearnerDate(ctx context.Context, learnerID string, date time.Time) (*plan.Session, error)

	// ByID returns the session with the given id.
	// Returns plan.ErrNotFound if it does not exist.
	ByID(ctx context.Context, sessionID string) (*plan.Session, error)

	// Update writes the session back, guarded by its version.
	Update(ctx context.Context, s *plan.Session) error

	// DeleteByLearnerDate removes the session for the given day, if any.
	DeleteByLearnerDate(ctx context.Context, learnerID string, date time.Time) error
}

// LearnerRepo manages the learner profile (preferences + diagnosis).
type LearnerRepo interface {
	// Get returns the profile, or nil if the learner is unknown.
	Get(ctx context.Context, learnerID string) (*plan.LearnerProfile, error)

	// First returns the first stored profile, or nil when none exists.
	// The CLI uses it as the single-learner default.
	First(ctx context.Context) (*plan.LearnerProfile, error)

	// Save upserts the profile.
	Save(ctx context.Context, p *plan.LearnerProfile) error
}

// GenerationEventData captures one planner/LLM call for the audit log.
type GenerationEventData struct {
	ID           int
	Timestamp    time.Time
	Purpose      string
	Provider     string
	Model        string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// GenerationEventRepo records planner call audit events.
type GenerationEventRepo interface {
	// Append records a generation event.
	Append(ctx context.Context, data GenerationEventData) error

	// Recent returns up to limit events, newest first.
	Recent(ctx context.Context, limit int) ([]GenerationEventData, error)

	// ByID returns one event, or nil if it does not exist.
	ByID(ctx context.Context, id int) (*GenerationEventData, error)
}
