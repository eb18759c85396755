package plan

import "errors"

// Engine error taxonomy. ErrNoActivePlan is a normal empty state, not a
// failure; callers should prompt for plan generation rather than report
// an error.
var (
	ErrNoActivePlan            = errors.New("no active study plan")
	ErrInvalidGoal             = errors.New("invalid goal: target score and time budget must be positive")
	ErrGenerationFailed        = errors.New("roadmap generation failed")
	ErrContentGenerationFailed = errors.New("content generation failed")
	ErrNotFound                = errors.New("not found")
	ErrInvalidProgress         = errors.New("progress value outside [0,100]")
	ErrConcurrentModification  = errors.New("concurrent modification detected")
)
