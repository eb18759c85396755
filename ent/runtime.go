// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/prepmap/ent/generationevent"
	"github.com/abhisek/prepmap/ent/learner"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/ent/schema"
	"github.com/abhisek/prepmap/ent/studysession"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	generationeventFields := schema.GenerationEvent{}.Fields()
	_ = generationeventFields
	// generationeventDescTimestamp is the schema descriptor for timestamp field.
	generationeventDescTimestamp := generationeventFields[0].Descriptor()
	// generationevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	generationevent.DefaultTimestamp = generationeventDescTimestamp.Default.(func() time.Time)
	// generationeventDescPurpose is the schema descriptor for purpose field.
	generationeventDescPurpose := generationeventFields[1].Descriptor()
	// generationevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	generationevent.PurposeValidator = generationeventDescPurpose.Validators[0].(func(string) error)
	// generationeventDescProvider is the schema descriptor for provider field.
	generationeventDescProvider := generationeventFields[2].Descriptor()
	// generationevent.DefaultProvider holds the default value on creation for the provider field.
	generationevent.DefaultProvider = generationeventDescProvider.Default.(string)
	// generationeventDescModel is the schema descriptor for model field.
	generationeventDescModel := generationeventFields[3].Descriptor()
	// generationevent.DefaultModel holds the default value on creation for the model field.
	generationevent.DefaultModel = generationeventDescModel.Default.(string)
	// generationeventDescLatencyMs is the schema descriptor for latency_ms field.
	generationeventDescLatencyMs := generationeventFields[4].Descriptor()
	// generationevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	generationevent.DefaultLatencyMs = generationeventDescLatencyMs.Default.(int64)
	// generationeventDescInputTokens is the schema descriptor for input_tokens field.
	generationeventDescInputTokens := generationeventFields[5].Descriptor()
	// generationevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	generationevent.DefaultInputTokens = generationeventDescInputTokens.Default.(int)
	// generationeventDescOutputTokens is the schema descriptor for output_tokens field.
	generationeventDescOutputTokens := generationeventFields[6].Descriptor()
	// generationevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	generationevent.DefaultOutputTokens = generationeventDescOutputTokens.Default.(int)
	// generationeventDescErrorMessage is the schema descriptor for error_message field.
	generationeventDescErrorMessage := generationeventFields[8].Descriptor()
	// generationevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	generationevent.DefaultErrorMessage = generationeventDescErrorMessage.Default.(string)
	// generationeventDescRequestBody is the schema descriptor for request_body field.
	generationeventDescRequestBody := generationeventFields[9].Descriptor()
	// generationevent.DefaultRequestBody holds the default value on creation for the request_body field.
	generationevent.DefaultRequestBody = generationeventDescRequestBody.Default.(string)
	// generationeventDescResponseBody is the schema descriptor for response_body field.
	generationeventDescResponseBody := generationeventFields[10].Descriptor()
	// generationevent.DefaultResponseBody holds the default value on creation for the response_body field.
	generationevent.DefaultResponseBody = generationeventDescResponseBody.Default.(string)
	learnerFields := schema.Learner{}.Fields()
	_ = learnerFields
	// learnerDescLearnerID is the schema descriptor for learner_id field.
	learnerDescLearnerID := learnerFields[0].Descriptor()
	// learner.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	learner.LearnerIDValidator = learnerDescLearnerID.Validators[0].(func(string) error)
	// learnerDescName is the schema descriptor for name field.
	learnerDescName := learnerFields[1].Descriptor()
	// learner.DefaultName holds the default value on creation for the name field.
	learner.DefaultName = learnerDescName.Default.(string)
	// learnerDescTargetScore is the schema descriptor for target_score field.
	learnerDescTargetScore := learnerFields[2].Descriptor()
	// learner.DefaultTargetScore holds the default value on creation for the target_score field.
	learner.DefaultTargetScore = learnerDescTargetScore.Default.(float64)
	// learnerDescDailyMinutes is the schema descriptor for daily_minutes field.
	learnerDescDailyMinutes := learnerFields[3].Descriptor()
	// learner.DefaultDailyMinutes holds the default value on creation for the daily_minutes field.
	learner.DefaultDailyMinutes = learnerDescDailyMinutes.Default.(int)
	// learnerDescUpdatedAt is the schema descriptor for updated_at field.
	learnerDescUpdatedAt := learnerFields[7].Descriptor()
	// learner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learner.DefaultUpdatedAt = learnerDescUpdatedAt.Default.(func() time.Time)
	// learner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learner.UpdateDefaultUpdatedAt = learnerDescUpdatedAt.UpdateDefault.(func() time.Time)
	roadmapFields := schema.Roadmap{}.Fields()
	_ = roadmapFields
	// roadmapDescRoadmapID is the schema descriptor for roadmap_id field.
	roadmapDescRoadmapID := roadmapFields[0].Descriptor()
	// roadmap.RoadmapIDValidator is a validator for the "roadmap_id" field. It is called by the builders before save.
	roadmap.RoadmapIDValidator = roadmapDescRoadmapID.Validators[0].(func(string) error)
	// roadmapDescLearnerID is the schema descriptor for learner_id field.
	roadmapDescLearnerID := roadmapFields[1].Descriptor()
	// roadmap.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	roadmap.LearnerIDValidator = roadmapDescLearnerID.Validators[0].(func(string) error)
	// roadmapDescGoal is the schema descriptor for goal field.
	roadmapDescGoal := roadmapFields[2].Descriptor()
	// roadmap.DefaultGoal holds the default value on creation for the goal field.
	roadmap.DefaultGoal = roadmapDescGoal.Default.(string)
	// roadmapDescStatus is the schema descriptor for status field.
	roadmapDescStatus := roadmapFields[3].Descriptor()
	// roadmap.DefaultStatus holds the default value on creation for the status field.
	roadmap.DefaultStatus = roadmapDescStatus.Default.(string)
	// roadmapDescLearningStrategy is the schema descriptor for learning_strategy field.
	roadmapDescLearningStrategy := roadmapFields[8].Descriptor()
	// roadmap.DefaultLearningStrategy holds the default value on creation for the learning_strategy field.
	roadmap.DefaultLearningStrategy = roadmapDescLearningStrategy.Default.(string)
	// roadmapDescActiveWeek is the schema descriptor for active_week field.
	roadmapDescActiveWeek := roadmapFields[9].Descriptor()
	// roadmap.DefaultActiveWeek holds the default value on creation for the active_week field.
	roadmap.DefaultActiveWeek = roadmapDescActiveWeek.Default.(int)
	// roadmapDescSessionsCompleted is the schema descriptor for sessions_completed field.
	roadmapDescSessionsCompleted := roadmapFields[10].Descriptor()
	// roadmap.DefaultSessionsCompleted holds the default value on creation for the sessions_completed field.
	roadmap.DefaultSessionsCompleted = roadmapDescSessionsCompleted.Default.(int)
	// roadmapDescTotalSessions is the schema descriptor for total_sessions field.
	roadmapDescTotalSessions := roadmapFields[11].Descriptor()
	// roadmap.DefaultTotalSessions holds the default value on creation for the total_sessions field.
	roadmap.DefaultTotalSessions = roadmapDescTotalSessions.Default.(int)
	// roadmapDescOverallProgress is the schema descriptor for overall_progress field.
	roadmapDescOverallProgress := roadmapFields[12].Descriptor()
	// roadmap.DefaultOverallProgress holds the default value on creation for the overall_progress field.
	roadmap.DefaultOverallProgress = roadmapDescOverallProgress.Default.(int)
	// roadmapDescVersion is the schema descriptor for version field.
	roadmapDescVersion := roadmapFields[14].Descriptor()
	// roadmap.DefaultVersion holds the default value on creation for the version field.
	roadmap.DefaultVersion = roadmapDescVersion.Default.(int64)
	// roadmapDescCreatedAt is the schema descriptor for created_at field.
	roadmapDescCreatedAt := roadmapFields[15].Descriptor()
	// roadmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	roadmap.DefaultCreatedAt = roadmapDescCreatedAt.Default.(func() time.Time)
	// roadmapDescUpdatedAt is the schema descriptor for updated_at field.
	roadmapDescUpdatedAt := roadmapFields[16].Descriptor()
	// roadmap.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	roadmap.DefaultUpdatedAt = roadmapDescUpdatedAt.Default.(func() time.Time)
	// roadmap.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	roadmap.UpdateDefaultUpdatedAt = roadmapDescUpdatedAt.UpdateDefault.(func() time.Time)
	studysessionFields := schema.StudySession{}.Fields()
	_ = studysessionFields
	// studysessionDescSessionID is the schema descriptor for session_id field.
	studysessionDescSessionID := studysessionFields[0].Descriptor()
	// studysession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	studysession.SessionIDValidator = studysessionDescSessionID.Validators[0].(func(string) error)
	// studysessionDescLearnerID is the schema descriptor for learner_id field.
	studysessionDescLearnerID := studysessionFields[1].Descriptor()
	// studysession.LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	studysession.LearnerIDValidator = studysessionDescLearnerID.Validators[0].(func(string) error)
	// studysessionDescRoadmapID is the schema descriptor for roadmap_id field.
	studysessionDescRoadmapID := studysessionFields[3].Descriptor()
	// studysession.DefaultRoadmapID holds the default value on creation for the roadmap_id field.
	studysession.DefaultRoadmapID = studysessionDescRoadmapID.Default.(string)
	// studysessionDescWeekNumber is the schema descriptor for week_number field.
	studysessionDescWeekNumber := studysessionFields[4].Descriptor()
	// studysession.DefaultWeekNumber holds the default value on creation for the week_number field.
	studysession.DefaultWeekNumber = studysessionDescWeekNumber.Default.(int)
	// studysessionDescDayNumber is the schema descriptor for day_number field.
	studysessionDescDayNumber := studysessionFields[5].Descriptor()
	// studysession.DefaultDayNumber holds the default value on creation for the day_number field.
	studysession.DefaultDayNumber = studysessionDescDayNumber.Default.(int)
	// studysessionDescTitle is the schema descriptor for title field.
	studysessionDescTitle := studysessionFields[6].Descriptor()
	// studysession.DefaultTitle holds the default value on creation for the title field.
	studysession.DefaultTitle = studysessionDescTitle.Default.(string)
	// studysessionDescProgress is the schema descriptor for progress field.
	studysessionDescProgress := studysessionFields[9].Descriptor()
	// studysession.DefaultProgress holds the default value on creation for the progress field.
	studysession.DefaultProgress = studysessionDescProgress.Default.(int)
	// studysessionDescStatus is the schema descriptor for status field.
	studysessionDescStatus := studysessionFields[10].Descriptor()
	// studysession.DefaultStatus holds the default value on creation for the status field.
	studysession.DefaultStatus = studysessionDescStatus.Default.(string)
	// studysessionDescTotalTimeSpent is the schema descriptor for total_time_spent field.
	studysessionDescTotalTimeSpent := studysessionFields[13].Descriptor()
	// studysession.DefaultTotalTimeSpent holds the default value on creation for the total_time_spent field.
	studysession.DefaultTotalTimeSpent = studysessionDescTotalTimeSpent.Default.(int)
	// studysessionDescVersion is the schema descriptor for version field.
	studysessionDescVersion := studysessionFields[14].Descriptor()
	// studysession.DefaultVersion holds the default value on creation for the version field.
	studysession.DefaultVersion = studysessionDescVersion.Default.(int64)
	// studysessionDescCreatedAt is the schema descriptor for created_at field.
	studysessionDescCreatedAt := studysessionFields[15].Descriptor()
	// studysession.DefaultCreatedAt holds the default value on creation for the created_at field.
	studysession.DefaultCreatedAt = studysessionDescCreatedAt.Default.(func() time.Time)
}
