package today

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/ui/components"
	"github.com/abhisek/prepmap/internal/ui/theme"
)

func (t *TodayScreen) View(width, height int) string {
	switch {
	case t.errMsg != "":
		return centered(width, height, theme.Error, "Could not prepare today's session:\n"+t.errMsg)
	case t.loading:
		return centered(width, height, theme.TextDim, "Preparing today's session...")
	case t.noPlan:
		return centered(width, height, theme.TextDim, "No active study plan.\n\nRun: prepmap generate <diagnosis.json>")
	case t.restDay:
		return centered(width, height, theme.TextDim, "Rest day. Nothing scheduled for today.")
	case t.session == nil:
		return ""
	}
	return t.renderSession(width)
}

func centered(width, height int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render("\n\n\n" + text)
}

func (t *TodayScreen) renderSession(width int) string {
	s := t.session
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  " + s.Title)
	date := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(s.Date.Format("Mon, Jan 2"))

	gap := width - lipgloss.Width(title) - lipgloss.Width(date) - 2
	if gap < 1 {
		gap = 1
	}
	b.WriteString(title + strings.Repeat(" ", gap) + date + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(0, width-4))) + "\n\n")

	leaves := t.leaves()
	leafPos := 0
	for i := range s.Items {
		item := &s.Items[i]
		b.WriteString(t.renderItem(item, width))

		for j := range item.Resources {
			selected := leafPos < len(leaves) && leafPos == t.cursor
			b.WriteString(renderLeafLine(markFor(item.Resources[j].Completed), item.Resources[j].Title, item.Resources[j].URL, selected))
			if selected && t.logging {
				b.WriteString("        Minutes spent: " + t.input.View() + "\n")
			}
			leafPos++
		}
		for j := range item.Drills {
			selected := leafPos < len(leaves) && leafPos == t.cursor
			b.WriteString(renderLeafLine(markFor(item.Drills[j].Completed), item.Drills[j].Prompt, item.Drills[j].Skill, selected))
			leafPos++
		}
		b.WriteString("\n")
	}

	bar := components.NewProgressBar("  Session", s.Progress, width-8)
	b.WriteString(bar.View() + "\n")

	if t.status != "" {
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.Error).Render(t.status) + "\n")
	}
	if s.Status == plan.SessionCompleted {
		done := "  Session complete."
		if t.standing != "" {
			done += " " + t.standing
		}
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(done) + "\n")
	}

	return b.String()
}

func (t *TodayScreen) renderItem(item *plan.PlanItem, width int) string {
	head := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %d. %s", item.Priority, item.Title))
	meta := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d%%  %dm", item.Progress, item.EstimatedMins))

	gap := width - lipgloss.Width(head) - lipgloss.Width(meta) - 2
	if gap < 1 {
		gap = 1
	}
	line := head + strings.Repeat(" ", gap) + meta + "\n"

	if item.TargetWeakness != "" {
		line += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("     focus: "+item.TargetWeakness) + "\n"
	}
	return line
}

func renderLeafLine(mark, label, detail string, selected bool) string {
	prefix := "    "
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if selected {
		prefix = "  ▸ "
		style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	line := style.Render(prefix + mark + " " + label)
	if detail != "" {
		line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + detail)
	}
	return line + "\n"
}

func markFor(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}
