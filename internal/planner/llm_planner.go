package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/prepmap/internal/llm"
	"github.com/abhisek/prepmap/internal/plan"
)

// Config holds generation parameters for the LLM planner.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation parameters suited to planning calls.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.3,
	}
}

// LLMPlanner implements Generator using the LLM provider.
type LLMPlanner struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-backed planner.
func New(provider llm.Provider, cfg Config) *LLMPlanner {
	return &LLMPlanner{provider: provider, cfg: cfg}
}

type dayPlanOutput struct {
	DayOfWeek        int      `json:"day_of_week"`
	Title            string   `json:"title"`
	TargetSkills     []string `json:"target_skills"`
	TargetDomains    []string `json:"target_domains"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	FoundationWeight float64  `json:"foundation_weight"`
	IsCritical       bool     `json:"is_critical"`
}

type roadmapOutput struct {
	TotalWeeks       int    `json:"total_weeks"`
	LearningStrategy string `json:"learning_strategy"`
	Weeks            []struct {
		WeekNumber    int             `json:"week_number"`
		Title         string          `json:"title"`
		Summary       string          `json:"summary"`
		TargetSkills  []string        `json:"target_skills"`
		TargetDomains []string        `json:"target_domains"`
		Days          []dayPlanOutput `json:"days"`
	} `json:"weeks"`
}

func (p *LLMPlanner) GenerateRoadmap(ctx context.Context, rc RoadmapContext) (*RoadmapPlan, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-gen")

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: roadmapSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildRoadmapUserMessage(rc)},
		},
		Schema:      RoadmapSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", plan.ErrGenerationFailed, err)
	}

	var out roadmapOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse roadmap response: %v", plan.ErrGenerationFailed, err)
	}
	if len(out.Weeks) == 0 {
		return nil, fmt.Errorf("%w: planner returned an empty roadmap", plan.ErrGenerationFailed)
	}

	rp := &RoadmapPlan{
		TotalWeeks:       out.TotalWeeks,
		LearningStrategy: out.LearningStrategy,
	}
	for _, w := range out.Weeks {
		rp.Weeks = append(rp.Weeks, WeekPlan{
			WeekNumber:    w.WeekNumber,
			Title:         w.Title,
			Summary:       w.Summary,
			TargetSkills:  w.TargetSkills,
			TargetDomains: w.TargetDomains,
			Days:          convertDayPlans(w.Days),
		})
	}
	if rp.TotalWeeks != len(rp.Weeks) {
		rp.TotalWeeks = len(rp.Weeks)
	}
	return rp, nil
}

type activitiesOutput struct {
	Activities []struct {
		Title         string `json:"title"`
		Description   string `json:"description"`
		ActivityType  string `json:"activity_type"`
		EstimatedMins int    `json:"estimated_mins"`
		Resources     []struct {
			Title string `json:"title"`
			URL   string `json:"url"`
		} `json:"resources"`
		Drills []struct {
			Prompt string `json:"prompt"`
			Skill  string `json:"skill"`
		} `json:"drills"`
	} `json:"activities"`
}

func (p *LLMPlanner) GenerateDayActivities(ctx context.Context, dc DayContext) ([]Activity, error) {
	ctx = llm.WithPurpose(ctx, "day-gen")

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: daySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildDayUserMessage(dc)},
		},
		Schema:      DayActivitiesSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", plan.ErrContentGenerationFailed, err)
	}

	var out activitiesOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse activities response: %v", plan.ErrContentGenerationFailed, err)
	}
	if len(out.Activities) == 0 {
		return nil, fmt.Errorf("%w: planner returned no activities", plan.ErrContentGenerationFailed)
	}

	activities := make([]Activity, 0, len(out.Activities))
	for _, a := range out.Activities {
		act := Activity{
			Title:         a.Title,
			Description:   a.Description,
			ActivityType:  a.ActivityType,
			EstimatedMins: a.EstimatedMins,
		}
		for _, r := range a.Resources {
			act.Resources = append(act.Resources, ResourcePlan{Title: r.Title, URL: r.URL})
		}
		for _, d := range a.Drills {
			act.Drills = append(act.Drills, DrillPlan{Prompt: d.Prompt, Skill: d.Skill})
		}
		activities = append(activities, act)
	}
	return activities, nil
}

type weekReplacementOutput struct {
	Days []dayPlanOutput `json:"days"`
}

func (p *LLMPlanner) RegenerateWeek(ctx context.Context, wc WeekContext) ([]DayPlan, error) {
	ctx = llm.WithPurpose(ctx, "week-regen")

	resp, err := p.provider.Generate(ctx, llm.Request{
		System: weekSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildWeekUserMessage(wc)},
		},
		Schema:      WeekReplacementSchema,
		MaxTokens:   p.cfg.MaxTokens,
		Temperature: p.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", plan.ErrContentGenerationFailed, err)
	}

	var out weekReplacementOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("%w: parse week response: %v", plan.ErrContentGenerationFailed, err)
	}
	// Empty output is a hard failure: calibration requires the new days
	// to come from the planner, never from a default.
	if len(out.Days) == 0 {
		return nil, fmt.Errorf("%w: planner returned no replacement days", plan.ErrContentGenerationFailed)
	}

	return convertDayPlans(out.Days), nil
}

func convertDayPlans(days []dayPlanOutput) []DayPlan {
	out := make([]DayPlan, len(days))
	for i, d := range days {
		out[i] = DayPlan{
			DayOfWeek:        d.DayOfWeek,
			Title:            d.Title,
			TargetSkills:     d.TargetSkills,
			TargetDomains:    d.TargetDomains,
			EstimatedMinutes: d.EstimatedMinutes,
			FoundationWeight: d.FoundationWeight,
			IsCritical:       d.IsCritical,
		}
	}
	return out
}
