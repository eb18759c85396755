package diagnosis

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/abhisek/prepmap/internal/plan"
)

// Report is the output of an external diagnostic assessment. The engine
// treats it as opaque input: it is ingested once into the learner profile
// and fed to the planner at roadmap-generation time.
type Report struct {
	LearnerID    string             `json:"learner_id"`
	Name         string             `json:"name,omitempty"`
	TargetScore  float64            `json:"target_score"`
	DailyMinutes int                `json:"daily_minutes"`
	StudyDays    []int              `json:"study_days"`
	Competency   map[string]float64 `json:"competency,omitempty"`
	Weaknesses   []Weakness         `json:"weaknesses"`
}

// Weakness is one diagnosed weak skill.
type Weakness struct {
	SkillKey  string  `json:"skill_key"`
	SkillName string  `json:"skill_name"`
	Severity  string  `json:"severity"`
	Category  string  `json:"category,omitempty"`
	Accuracy  float64 `json:"accuracy"`
}

// Load reads and validates a diagnosis report file and converts it into a
// learner profile.
func Load(path string) (*plan.LearnerProfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open diagnosis report: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a diagnosis report and converts it into a learner profile.
func Parse(r io.Reader) (*plan.LearnerProfile, error) {
	var rep Report
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rep); err != nil {
		return nil, fmt.Errorf("decode diagnosis report: %w", err)
	}
	if err := rep.validate(); err != nil {
		return nil, fmt.Errorf("invalid diagnosis report: %w", err)
	}
	return rep.profile(), nil
}

func (r *Report) validate() error {
	if r.LearnerID == "" {
		return fmt.Errorf("learner_id is required")
	}
	if r.TargetScore <= 0 {
		return fmt.Errorf("target_score must be positive, got %v", r.TargetScore)
	}
	if r.DailyMinutes <= 0 {
		return fmt.Errorf("daily_minutes must be positive, got %d", r.DailyMinutes)
	}
	if len(r.StudyDays) == 0 {
		return fmt.Errorf("study_days must name at least one weekday")
	}
	seen := make(map[int]bool)
	for _, d := range r.StudyDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("study day %d out of range 0-6", d)
		}
		if seen[d] {
			return fmt.Errorf("study day %d listed twice", d)
		}
		seen[d] = true
	}
	for i, w := range r.Weaknesses {
		if w.SkillKey == "" {
			return fmt.Errorf("weakness %d: skill_key is required", i)
		}
		if w.Accuracy < 0 || w.Accuracy > 1 {
			return fmt.Errorf("weakness %q: accuracy %v outside [0,1]", w.SkillKey, w.Accuracy)
		}
	}
	return nil
}

func (r *Report) profile() *plan.LearnerProfile {
	p := &plan.LearnerProfile{
		LearnerID:    r.LearnerID,
		Name:         r.Name,
		TargetScore:  r.TargetScore,
		DailyMinutes: r.DailyMinutes,
		StudyDays:    r.StudyDays,
		Competency:   r.Competency,
	}
	for _, w := range r.Weaknesses {
		p.Weaknesses = append(p.Weaknesses, plan.Weakness{
			SkillKey:  w.SkillKey,
			SkillName: w.SkillName,
			Severity:  w.Severity,
			Category:  w.Category,
			Accuracy:  w.Accuracy,
		})
	}
	return p
}
