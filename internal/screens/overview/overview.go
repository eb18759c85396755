package overview

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/roadmap"
	"github.com/abhisek/prepmap/internal/screen"
	"github.com/abhisek/prepmap/internal/ui/components"
	"github.com/abhisek/prepmap/internal/ui/theme"
)

// loadedMsg is sent when the active roadmap has been loaded.
type loadedMsg struct {
	Roadmap *plan.Roadmap
	Err     error
}

// OverviewScreen shows the full roadmap, week by week.
type OverviewScreen struct {
	svc       *roadmap.Service
	learnerID string

	roadmap *plan.Roadmap
	noPlan  bool
	errMsg  string
	scroll  int
}

var _ screen.Screen = (*OverviewScreen)(nil)

// New creates a new OverviewScreen.
func New(svc *roadmap.Service, learnerID string) *OverviewScreen {
	return &OverviewScreen{
		svc:       svc,
		learnerID: learnerID,
	}
}

func (o *OverviewScreen) Init() tea.Cmd {
	return func() tea.Msg {
		r, err := o.svc.GetActiveRoadmap(context.Background(), o.learnerID)
		return loadedMsg{Roadmap: r, Err: err}
	}
}

func (o *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, plan.ErrNoActivePlan) {
				o.noPlan = true
			} else {
				o.errMsg = msg.Err.Error()
			}
			return o, nil
		}
		o.roadmap = msg.Roadmap
		return o, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if o.scroll > 0 {
				o.scroll--
			}
		case "down", "j":
			o.scroll++
		}
	}
	return o, nil
}

func (o *OverviewScreen) View(width, height int) string {
	if o.errMsg != "" {
		return o.message(width, height, theme.Error, "Could not load plan: "+o.errMsg)
	}
	if o.noPlan {
		return o.message(width, height, theme.TextDim, "No active study plan.")
	}
	if o.roadmap == nil {
		return o.message(width, height, theme.TextDim, "Loading roadmap...")
	}

	lines := o.renderLines(width)

	// Clamp scroll so the last page stays full.
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if o.scroll > maxScroll {
		o.scroll = maxScroll
	}
	end := o.scroll + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[o.scroll:end], "\n")
}

func (o *OverviewScreen) message(width, height int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render("\n\n\n" + text)
}

func (o *OverviewScreen) renderLines(width int) []string {
	r := o.roadmap
	var lines []string

	lines = append(lines,
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  "+r.Goal),
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("  Week %d of %d  ·  %d/%d sessions",
				r.ActiveWeek, r.TotalWeeks, r.SessionsCompleted, r.TotalSessions)),
		"")

	bar := components.NewProgressBar("  Overall", r.OverallProgress, width-8)
	lines = append(lines, bar.View(), "")

	for i := range r.Weeks {
		lines = append(lines, o.renderWeek(&r.Weeks[i], width)...)
	}
	return lines
}

func (o *OverviewScreen) renderWeek(w *plan.WeeklyFocus, width int) []string {
	active := w.WeekNumber == o.roadmap.ActiveWeek

	headStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	marker := "  "
	if active {
		headStyle = headStyle.Foreground(theme.Secondary)
		marker = "> "
	}

	head := headStyle.Render(fmt.Sprintf("  %sWeek %d  %s", marker, w.WeekNumber, w.Title))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s  %d/%d", w.Status, w.SessionsCompleted, w.TotalSessions))

	gap := width - lipgloss.Width(head) - lipgloss.Width(meta) - 2
	if gap < 1 {
		gap = 1
	}
	lines := []string{head + strings.Repeat(" ", gap) + meta}

	if len(w.Days) == 0 {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("      (planned when the week starts)"),
			"")
		return lines
	}

	for i := range w.Days {
		d := &w.Days[i]
		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch d.Status {
		case plan.DayCompleted:
			style = style.Foreground(theme.Success)
		case plan.DaySkipped:
			style = style.Foreground(theme.TextDim)
		case plan.DayInProgress:
			style = style.Foreground(theme.Accent)
		}
		line := fmt.Sprintf("      %s %-24s %s", dayMark(d.Status), d.Title, weekdayName(d.DayOfWeek))
		if d.IsCritical {
			line += "  !"
		}
		lines = append(lines, style.Render(line))
	}
	lines = append(lines, "")
	return lines
}

func dayMark(s plan.DayStatus) string {
	switch s {
	case plan.DayCompleted:
		return "[x]"
	case plan.DaySkipped:
		return "[-]"
	case plan.DayInProgress:
		return "[~]"
	default:
		return "[ ]"
	}
}

func weekdayName(dow int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if dow < 0 || dow >= len(names) {
		return "???"
	}
	return names[dow]
}

func (o *OverviewScreen) Title() string {
	return "Roadmap"
}
