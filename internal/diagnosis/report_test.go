package diagnosis

import (
	"strings"
	"testing"
)

const validReport = `{
	"learner_id": "learner-1",
	"name": "Asha",
	"target_score": 7.5,
	"daily_minutes": 45,
	"study_days": [1, 2, 3, 4, 5],
	"competency": {"listening": 0.6},
	"weaknesses": [
		{"skill_key": "listening", "skill_name": "Listening", "severity": "high", "accuracy": 0.4}
	]
}`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(validReport))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.LearnerID != "learner-1" || p.TargetScore != 7.5 || p.DailyMinutes != 45 {
		t.Errorf("profile = %+v", p)
	}
	if len(p.StudyDays) != 5 {
		t.Errorf("study days = %v", p.StudyDays)
	}
	if len(p.Weaknesses) != 1 || p.Weaknesses[0].SkillKey != "listening" {
		t.Errorf("weaknesses = %+v", p.Weaknesses)
	}
	if p.Competency["listening"] != 0.6 {
		t.Errorf("competency = %v", p.Competency)
	}
}

func TestParseRejectsBadReports(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "hello"},
		{"unknown field", `{"learner_id":"x","target_score":7,"daily_minutes":30,"study_days":[1],"surprise":true}`},
		{"missing learner", `{"target_score":7,"daily_minutes":30,"study_days":[1]}`},
		{"zero target", `{"learner_id":"x","target_score":0,"daily_minutes":30,"study_days":[1]}`},
		{"zero minutes", `{"learner_id":"x","target_score":7,"daily_minutes":0,"study_days":[1]}`},
		{"no study days", `{"learner_id":"x","target_score":7,"daily_minutes":30,"study_days":[]}`},
		{"day out of range", `{"learner_id":"x","target_score":7,"daily_minutes":30,"study_days":[7]}`},
		{"duplicate day", `{"learner_id":"x","target_score":7,"daily_minutes":30,"study_days":[1,1]}`},
		{"weakness without key", `{"learner_id":"x","target_score":7,"daily_minutes":30,"study_days":[1],"weaknesses":[{"accuracy":0.5}]}`},
		{"accuracy out of range", `{"learner_id":"x","target_score":7,"daily_minutes":30,"study_days":[1],"weaknesses":[{"skill_key":"a","accuracy":1.5}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.body)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
