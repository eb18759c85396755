package planner

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/prepmap/internal/llm"
	"github.com/abhisek/prepmap/internal/plan"
)

const roadmapJSON = `{
	"total_weeks": 2,
	"learning_strategy": "Attack listening first, then consolidate.",
	"weeks": [
		{
			"week_number": 1,
			"title": "Listening foundations",
			"summary": "Daily dictation and detail work.",
			"target_skills": ["listening-detail"],
			"target_domains": ["listening"],
			"days": [
				{"day_of_week": 1, "title": "Dictation basics", "target_skills": ["listening-detail"], "target_domains": ["listening"], "estimated_minutes": 40, "foundation_weight": 0.8, "is_critical": true},
				{"day_of_week": 3, "title": "Detail drills", "target_skills": ["listening-detail"], "target_domains": ["listening"], "estimated_minutes": 40, "foundation_weight": 0.6, "is_critical": false}
			]
		},
		{
			"week_number": 2,
			"title": "Consolidation",
			"summary": "Mixed practice.",
			"target_skills": ["listening-detail", "grammar-tense"],
			"target_domains": ["listening", "grammar"],
			"days": []
		}
	]
}`

func TestGenerateRoadmap(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(roadmapJSON)})
	p := New(mock, DefaultConfig())

	rp, err := p.GenerateRoadmap(context.Background(), RoadmapContext{
		Goal:         "ielts-7.5",
		TargetScore:  7.5,
		DailyMinutes: 40,
		StudyDays:    []int{1, 3, 5},
		Weaknesses: []plan.Weakness{
			{SkillKey: "listening-detail", SkillName: "Listening for detail", Severity: "high", Accuracy: 0.4},
		},
	})
	require.NoError(t, err)
	require.Len(t, rp.Weeks, 2)
	assert.Equal(t, 2, rp.TotalWeeks)
	assert.Equal(t, "Listening foundations", rp.Weeks[0].Title)
	require.Len(t, rp.Weeks[0].Days, 2)
	assert.True(t, rp.Weeks[0].Days[0].IsCritical)
	assert.Equal(t, 3, rp.Weeks[0].Days[1].DayOfWeek)

	// The prompt carries the diagnosis and the study days.
	require.Len(t, mock.Calls, 1)
	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "Listening for detail")
	assert.Contains(t, msg, "Monday (1)")
}

func TestGenerateRoadmapEmptyIsFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"total_weeks": 0, "learning_strategy": "", "weeks": []}`),
	})
	p := New(mock, DefaultConfig())

	_, err := p.GenerateRoadmap(context.Background(), RoadmapContext{Goal: "g"})
	assert.ErrorIs(t, err, plan.ErrGenerationFailed)
}

func TestGenerateRoadmapProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	p := New(mock, DefaultConfig())

	_, err := p.GenerateRoadmap(context.Background(), RoadmapContext{Goal: "g"})
	assert.ErrorIs(t, err, plan.ErrGenerationFailed)
}

func TestGenerateDayActivities(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"activities": [
			{
				"title": "Dictation set",
				"description": "Transcribe three short clips.",
				"activity_type": "listening",
				"estimated_mins": 20,
				"resources": [{"title": "Clip pack", "url": "https://example.com/clips"}],
				"drills": [{"prompt": "Transcribe clip 1", "skill": "listening-detail"}]
			}
		]
	}`)})
	p := New(mock, DefaultConfig())

	acts, err := p.GenerateDayActivities(context.Background(), DayContext{
		Title:            "Dictation basics",
		TargetSkills:     []string{"listening-detail"},
		MinutesAvailable: 40,
	})
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.Equal(t, "Dictation set", acts[0].Title)
	require.Len(t, acts[0].Resources, 1)
	require.Len(t, acts[0].Drills, 1)
	assert.Equal(t, "listening-detail", acts[0].Drills[0].Skill)
}

func TestGenerateDayActivitiesEmptyIsFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"activities": []}`)})
	p := New(mock, DefaultConfig())

	_, err := p.GenerateDayActivities(context.Background(), DayContext{Title: "x"})
	assert.ErrorIs(t, err, plan.ErrContentGenerationFailed)
}

func TestRegenerateWeek(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"days": [
			{"day_of_week": 4, "title": "Catch-up: detail", "target_skills": ["listening-detail"], "target_domains": ["listening"], "estimated_minutes": 45, "foundation_weight": 0.9, "is_critical": true},
			{"day_of_week": 5, "title": "Mixed review", "target_skills": ["grammar-tense"], "target_domains": ["grammar"], "estimated_minutes": 40, "foundation_weight": 0.5, "is_critical": false}
		]
	}`)})
	p := New(mock, DefaultConfig())

	days, err := p.RegenerateWeek(context.Background(), WeekContext{
		WeekNumber:    1,
		Title:         "Listening foundations",
		RemainingDays: []int{4, 5},
		CoveredSkills: []string{"listening-gist"},
		DailyMinutes:  45,
	})
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 4, days[0].DayOfWeek)

	msg := mock.Calls[0].Messages[0].Content
	assert.Contains(t, msg, "listening-gist")
	assert.Contains(t, msg, "Thursday (4)")
}

func TestRegenerateWeekEmptyIsFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"days": []}`)})
	p := New(mock, DefaultConfig())

	_, err := p.RegenerateWeek(context.Background(), WeekContext{WeekNumber: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrContentGenerationFailed)
	assert.False(t, errors.Is(err, plan.ErrGenerationFailed))
}

func TestPromptsCarryBudget(t *testing.T) {
	msg := buildDayUserMessage(DayContext{Title: "T", MinutesAvailable: 35})
	if !strings.Contains(msg, "Minutes available: 35") {
		t.Errorf("day prompt missing budget: %q", msg)
	}

	wmsg := buildWeekUserMessage(WeekContext{WeekNumber: 2, Title: "W", DailyMinutes: 50, RemainingDays: []int{2}})
	if !strings.Contains(wmsg, "Minutes per day: 50") {
		t.Errorf("week prompt missing budget: %q", wmsg)
	}
}
