package store

import (
	"github.com/abhisek/prepmap/ent"
	entschema "github.com/abhisek/prepmap/ent/schema"
	"github.com/abhisek/prepmap/internal/plan"
)

// Conversions between the domain model and the serialized ent documents.

func weeksToDocs(weeks []plan.WeeklyFocus) []entschema.WeekDoc {
	out := make([]entschema.WeekDoc, len(weeks))
	for i, w := range weeks {
		days := make([]entschema.DayDoc, len(w.Days))
		for j, d := range w.Days {
			days[j] = entschema.DayDoc{
				DayNumber:        d.DayNumber,
				DayOfWeek:        d.DayOfWeek,
				Title:            d.Title,
				TargetSkills:     d.TargetSkills,
				TargetDomains:    d.TargetDomains,
				EstimatedMinutes: d.EstimatedMinutes,
				FoundationWeight: d.FoundationWeight,
				IsCritical:       d.IsCritical,
				Status:           string(d.Status),
			}
		}
		out[i] = entschema.WeekDoc{
			WeekNumber:        w.WeekNumber,
			Title:             w.Title,
			Summary:           w.Summary,
			TargetSkills:      w.TargetSkills,
			TargetDomains:     w.TargetDomains,
			Days:              days,
			TotalSessions:     w.TotalSessions,
			SessionsCompleted: w.SessionsCompleted,
			Status:            string(w.Status),
		}
	}
	return out
}

func docsToWeeks(docs []entschema.WeekDoc) []plan.WeeklyFocus {
	out := make([]plan.WeeklyFocus, len(docs))
	for i, w := range docs {
		days := make([]plan.DailyFocus, len(w.Days))
		for j, d := range w.Days {
			days[j] = plan.DailyFocus{
				DayNumber:        d.DayNumber,
				DayOfWeek:        d.DayOfWeek,
				Title:            d.Title,
				TargetSkills:     d.TargetSkills,
				TargetDomains:    d.TargetDomains,
				EstimatedMinutes: d.EstimatedMinutes,
				FoundationWeight: d.FoundationWeight,
				IsCritical:       d.IsCritical,
				Status:           plan.DayStatus(d.Status),
			}
		}
		out[i] = plan.WeeklyFocus{
			WeekNumber:        w.WeekNumber,
			Title:             w.Title,
			Summary:           w.Summary,
			TargetSkills:      w.TargetSkills,
			TargetDomains:     w.TargetDomains,
			Days:              days,
			TotalSessions:     w.TotalSessions,
			SessionsCompleted: w.SessionsCompleted,
			Status:            plan.WeekStatus(w.Status),
		}
	}
	return out
}

func entToRoadmap(r *ent.Roadmap) *plan.Roadmap {
	return &plan.Roadmap{
		ID:                r.RoadmapID,
		LearnerID:         r.LearnerID,
		Goal:              r.Goal,
		Status:            plan.RoadmapStatus(r.Status),
		StartDate:         r.StartDate,
		TotalWeeks:        r.TotalWeeks,
		StudyDaysPerWeek:  r.StudyDaysPerWeek,
		DailyMinutes:      r.DailyMinutes,
		LearningStrategy:  r.LearningStrategy,
		ActiveWeek:        r.ActiveWeek,
		SessionsCompleted: r.SessionsCompleted,
		TotalSessions:     r.TotalSessions,
		OverallProgress:   r.OverallProgress,
		Weeks:             docsToWeeks(r.Weeks),
		Version:           r.Version,
	}
}

func itemsToDocs(items []plan.PlanItem) []entschema.ItemDoc {
	out := make([]entschema.ItemDoc, len(items))
	for i, it := range items {
		resources := make([]entschema.ResourceDoc, len(it.Resources))
		for j, r := range it.Resources {
			resources[j] = entschema.ResourceDoc{
				ResourceID: r.ID,
				Title:      r.Title,
				URL:        r.URL,
				Completed:  r.Completed,
			}
		}
		drills := make([]entschema.DrillDoc, len(it.Drills))
		for j, d := range it.Drills {
			drills[j] = entschema.DrillDoc{
				DrillID:   d.ID,
				Prompt:    d.Prompt,
				Skill:     d.Skill,
				Completed: d.Completed,
			}
		}
		out[i] = entschema.ItemDoc{
			ItemID:         it.ID,
			Priority:       it.Priority,
			TargetWeakness: it.TargetWeakness,
			Title:          it.Title,
			Description:    it.Description,
			ActivityType:   it.ActivityType,
			EstimatedMins:  it.EstimatedMins,
			Resources:      resources,
			Drills:         drills,
			Progress:       it.Progress,
			Status:         string(it.Status),
			StartedAt:      it.StartedAt,
			CompletedAt:    it.CompletedAt,
		}
	}
	return out
}

func docsToItems(docs []entschema.ItemDoc) []plan.PlanItem {
	out := make([]plan.PlanItem, len(docs))
	for i, it := range docs {
		resources := make([]plan.Resource, len(it.Resources))
		for j, r := range it.Resources {
			resources[j] = plan.Resource{
				ID:        r.ResourceID,
				Title:     r.Title,
				URL:       r.URL,
				Completed: r.Completed,
			}
		}
		drills := make([]plan.Drill, len(it.Drills))
		for j, d := range it.Drills {
			drills[j] = plan.Drill{
				ID:        d.DrillID,
				Prompt:    d.Prompt,
				Skill:     d.Skill,
				Completed: d.Completed,
			}
		}
		out[i] = plan.PlanItem{
			ID:             it.ItemID,
			Priority:       it.Priority,
			TargetWeakness: it.TargetWeakness,
			Title:          it.Title,
			Description:    it.Description,
			ActivityType:   it.ActivityType,
			EstimatedMins:  it.EstimatedMins,
			Resources:      resources,
			Drills:         drills,
			Progress:       it.Progress,
			Status:         plan.ItemStatus(it.Status),
			StartedAt:      it.StartedAt,
			CompletedAt:    it.CompletedAt,
		}
	}
	return out
}

func entToSession(s *ent.StudySession) *plan.Session {
	return &plan.Session{
		ID:             s.SessionID,
		LearnerID:      s.LearnerID,
		Date:           s.Date,
		RoadmapID:      s.RoadmapID,
		WeekNumber:     s.WeekNumber,
		DayNumber:      s.DayNumber,
		Title:          s.Title,
		TargetSkills:   s.TargetSkills,
		Items:          docsToItems(s.Items),
		Progress:       s.Progress,
		Status:         plan.SessionStatus(s.Status),
		StartedAt:      s.StartedAt,
		CompletedAt:    s.CompletedAt,
		TotalTimeSpent: s.TotalTimeSpent,
		Version:        s.Version,
	}
}
