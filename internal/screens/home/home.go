package home

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/roadmap"
	"github.com/abhisek/prepmap/internal/router"
	"github.com/abhisek/prepmap/internal/screen"
	"github.com/abhisek/prepmap/internal/screens/overview"
	"github.com/abhisek/prepmap/internal/screens/today"
	"github.com/abhisek/prepmap/internal/ui/components"
	"github.com/abhisek/prepmap/internal/ui/layout"
	"github.com/abhisek/prepmap/internal/ui/theme"
)

// roadmapLoadedMsg is sent when the active roadmap has been loaded.
type roadmapLoadedMsg struct {
	Roadmap *plan.Roadmap
	Err     error
}

// calibrationDoneMsg is sent when a missed-session check has finished.
type calibrationDoneMsg struct {
	Result  *roadmap.CalibrationResult
	Advance *roadmap.AdvanceResult
	Err     error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc       *roadmap.Service
	learnerID string

	menu    components.Menu
	roadmap *plan.Roadmap
	noPlan  bool
	loadErr error
	status  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc *roadmap.Service, learnerID string) *HomeScreen {
	h := &HomeScreen{
		svc:       svc,
		learnerID: learnerID,
	}

	items := []components.MenuItem{
		{Label: "TODAY'S SESSION", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: today.New(svc, learnerID)}
			}
		}},
		{Label: "ROADMAP OVERVIEW", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: overview.New(svc, learnerID)}
			}
		}},
		{Label: "CHECK MISSED DAYS", Action: func() tea.Cmd {
			return h.runCalibration()
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadRoadmap()
}

func (h *HomeScreen) loadRoadmap() tea.Cmd {
	return func() tea.Msg {
		r, err := h.svc.GetActiveRoadmap(context.Background(), h.learnerID)
		return roadmapLoadedMsg{Roadmap: r, Err: err}
	}
}

func (h *HomeScreen) runCalibration() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		res, err := h.svc.CheckMissedSessions(ctx, h.learnerID)
		if err != nil {
			return calibrationDoneMsg{Err: err}
		}
		msg := calibrationDoneMsg{Result: res}
		if res.Action != roadmap.CalibrationNone {
			if r, rerr := h.svc.GetActiveRoadmap(ctx, h.learnerID); rerr == nil {
				adv, _ := h.svc.CheckAndAdvanceWeek(ctx, r.ID)
				msg.Advance = adv
			}
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		h.roadmap = msg.Roadmap
		h.noPlan = false
		h.loadErr = nil
		if msg.Err != nil {
			if errors.Is(msg.Err, plan.ErrNoActivePlan) {
				h.noPlan = true
			} else {
				h.loadErr = msg.Err
			}
		}
		return h, nil

	case calibrationDoneMsg:
		h.status = calibrationStatus(msg)
		return h, h.loadRoadmap()

	case tea.KeyMsg:
		if msg.String() == "r" {
			h.status = ""
			return h, h.loadRoadmap()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// calibrationStatus maps a finished calibration pass to a one-line status.
func calibrationStatus(msg calibrationDoneMsg) string {
	if msg.Err != nil {
		if errors.Is(msg.Err, plan.ErrNoActivePlan) {
			return "No active plan to check."
		}
		return "Check failed: " + msg.Err.Error()
	}

	var s string
	switch msg.Result.Action {
	case roadmap.CalibrationNone:
		s = "On track, nothing to adjust."
	case roadmap.CalibrationSkipped:
		s = fmt.Sprintf("Marked %d missed day(s) as skipped.", len(msg.Result.MissedDays))
	case roadmap.CalibrationRegenerated:
		s = fmt.Sprintf("Replanned the week around %d missed day(s).", len(msg.Result.MissedDays))
	}
	if msg.Advance != nil && msg.Advance.Advanced {
		s += fmt.Sprintf(" Advanced to week %d.", msg.Advance.NewWeek)
	}
	return s
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("P R E P M A P")
	subtitle := theme.Subtitle.Width(width).Render("Study roadmap and daily sessions")
	sections = append(sections, title, subtitle, "")

	switch {
	case h.loadErr != nil:
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load plan: "+h.loadErr.Error()))
	case h.noPlan:
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No active study plan. Run: prepmap generate <diagnosis.json>"))
	case h.roadmap != nil:
		sections = append(sections, h.renderStanding(width))
	}

	if h.status != "" {
		sections = append(sections, "", lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(h.status))
	}

	sections = append(sections, "", h.renderMenu(width))

	content := strings.Join(sections, "\n")

	// Pad down toward the vertical middle.
	pad := (height - lipgloss.Height(content)) / 3
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", pad) + content
}

// renderStanding renders the goal line and the overall progress bar.
func (h *HomeScreen) renderStanding(width int) string {
	r := h.roadmap

	goal := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(r.Goal)

	standing := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Week %d of %d  ·  %d/%d sessions",
			r.ActiveWeek, r.TotalWeeks, r.SessionsCompleted, r.TotalSessions))

	barWidth := width / 2
	if barWidth < 20 {
		barWidth = 20
	}
	bar := components.NewProgressBar("", r.OverallProgress, barWidth)
	barLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(bar.View())

	return goal + "\n" + standing + "\n\n" + barLine
}

func (h *HomeScreen) renderMenu(width int) string {
	menu := h.menu.View()
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "R", Description: "Refresh"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
