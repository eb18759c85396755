package planner

import (
	"fmt"
	"sort"
	"strings"
)

const roadmapSystemPrompt = `You are an expert study coach who designs personalized multi-week study roadmaps. You receive a learner's diagnosed weaknesses, target score, and weekly availability, and lay out a realistic schedule that attacks the most severe weaknesses first while keeping each day inside the time budget.`

const daySystemPrompt = `You are an expert study coach preparing one day's study session. You receive the day's focus and the learner's weaknesses, and produce a small set of concrete, varied activities that fit the available minutes.`

const weekSystemPrompt = `You are an expert study coach repairing a study week after the learner missed several days. You receive what was already covered and which calendar days remain, and produce replacement daily plans for only the remaining days, de-prioritizing skills already covered.`

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func weekdayList(days []int) string {
	sorted := append([]int(nil), days...)
	sort.Ints(sorted)
	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if d >= 0 && d < len(weekdayNames) {
			names = append(names, fmt.Sprintf("%s (%d)", weekdayNames[d], d))
		}
	}
	return strings.Join(names, ", ")
}

func buildRoadmapUserMessage(rc RoadmapContext) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Goal: %s\n", rc.Goal))
	b.WriteString(fmt.Sprintf("Target score: %.1f\n", rc.TargetScore))
	b.WriteString(fmt.Sprintf("Minutes per study day: %d\n", rc.DailyMinutes))
	b.WriteString(fmt.Sprintf("Study days: %s\n", weekdayList(rc.StudyDays)))

	b.WriteString("\nDiagnosed weaknesses (most severe first):\n")
	if len(rc.Weaknesses) == 0 {
		b.WriteString("None recorded\n")
	} else {
		for _, w := range rc.Weaknesses {
			b.WriteString(fmt.Sprintf("- %s [%s, severity %s, accuracy %.0f%%]\n",
				w.SkillName, w.Category, w.Severity, w.Accuracy*100))
		}
	}

	if len(rc.CurrentLevel) > 0 {
		b.WriteString("\nCompetency snapshot (0-1):\n")
		keys := make([]string, 0, len(rc.CurrentLevel))
		for k := range rc.CurrentLevel {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf("- %s: %.2f\n", k, rc.CurrentLevel[k]))
		}
	}

	b.WriteString(`
Instructions:
1. Plan only on the learner's study days; set day_of_week accordingly.
2. Every day's estimated_minutes must fit the daily budget.
3. Attack high-severity weaknesses in the early weeks; interleave review later.
4. Mark at most one day per week is_critical, for the day the week's progress depends on.
5. week_number starts at 1 and must be contiguous.`)

	return b.String()
}

func buildDayUserMessage(dc DayContext) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Day focus: %s\n", dc.Title))
	b.WriteString(fmt.Sprintf("Target skills: %s\n", strings.Join(dc.TargetSkills, ", ")))
	b.WriteString(fmt.Sprintf("Target domains: %s\n", strings.Join(dc.TargetDomains, ", ")))
	b.WriteString(fmt.Sprintf("Minutes available: %d\n", dc.MinutesAvailable))
	if dc.TargetScore > 0 {
		b.WriteString(fmt.Sprintf("Target score: %.1f\n", dc.TargetScore))
	}

	if len(dc.Weaknesses) > 0 {
		b.WriteString("\nRelevant weaknesses:\n")
		for _, w := range dc.Weaknesses {
			b.WriteString(fmt.Sprintf("- %s [accuracy %.0f%%]\n", w.SkillName, w.Accuracy*100))
		}
	}

	b.WriteString(`
Instructions:
1. Produce 2-4 activities whose estimated_mins sum to roughly the available minutes.
2. Each activity addresses at least one of the target skills.
3. Include at least one drill per session; resources may be empty for drill activities.
4. Descriptions must be actionable, not motivational.`)

	return b.String()
}

func buildWeekUserMessage(wc WeekContext) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Week %d: %s\n", wc.WeekNumber, wc.Title))
	if wc.Summary != "" {
		b.WriteString(fmt.Sprintf("Summary: %s\n", wc.Summary))
	}
	b.WriteString(fmt.Sprintf("Target skills: %s\n", strings.Join(wc.TargetSkills, ", ")))
	b.WriteString(fmt.Sprintf("Target domains: %s\n", strings.Join(wc.TargetDomains, ", ")))
	b.WriteString(fmt.Sprintf("Minutes per day: %d\n", wc.DailyMinutes))
	b.WriteString(fmt.Sprintf("Remaining study days this week: %s\n", weekdayList(wc.RemainingDays)))

	b.WriteString("\nSkills already covered this week (de-prioritize):\n")
	if len(wc.CoveredSkills) == 0 {
		b.WriteString("None\n")
	} else {
		for _, s := range wc.CoveredSkills {
			b.WriteString(fmt.Sprintf("- %s\n", s))
		}
	}

	b.WriteString(`
Instructions:
1. Produce exactly one day plan per remaining study day, with matching day_of_week values.
2. Compress the week's uncovered skills into the remaining days; drop covered skills unless review is essential.
3. Keep estimated_minutes within the daily budget.`)

	return b.String()
}
