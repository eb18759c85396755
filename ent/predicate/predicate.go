// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// Learner is the predicate function for learner builders.
type Learner func(*sql.Selector)

// Roadmap is the predicate function for roadmap builders.
type Roadmap func(*sql.Selector)

// StudySession is the predicate function for studysession builders.
type StudySession func(*sql.Selector)
