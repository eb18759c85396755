package today

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/prepmap/internal/plan"
	"github.com/abhisek/prepmap/internal/roadmap"
	"github.com/abhisek/prepmap/internal/screen"
	"github.com/abhisek/prepmap/internal/ui/components"
	"github.com/abhisek/prepmap/internal/ui/layout"
)

// sessionReadyMsg is sent when today's session has been materialized.
type sessionReadyMsg struct {
	Session *plan.Session
	Err     error
}

// mutationDoneMsg is sent when a completion call has been persisted.
type mutationDoneMsg struct {
	Session *plan.Session
	Err     error
}

// standingMsg carries the roadmap standing line after a completed session.
type standingMsg struct {
	Line string
}

type leafKind int

const (
	leafResource leafKind = iota
	leafDrill
)

// leaf addresses one selectable resource or drill inside the session.
type leaf struct {
	itemIdx int
	kind    leafKind
	idx     int
}

// TodayScreen materializes and plays today's session.
type TodayScreen struct {
	svc       *roadmap.Service
	learnerID string

	session *plan.Session
	loading bool
	noPlan  bool
	restDay bool
	errMsg  string

	cursor   int
	logging  bool
	target   leaf
	input    components.TextInput
	status   string
	standing string
}

var _ screen.Screen = (*TodayScreen)(nil)
var _ screen.KeyHintProvider = (*TodayScreen)(nil)

// New creates a new TodayScreen.
func New(svc *roadmap.Service, learnerID string) *TodayScreen {
	return &TodayScreen{
		svc:       svc,
		learnerID: learnerID,
		loading:   true,
	}
}

func (t *TodayScreen) Init() tea.Cmd {
	return t.loadSession(false)
}

func (t *TodayScreen) loadSession(regenerate bool) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var s *plan.Session
		var err error
		if regenerate {
			s, err = t.svc.RegenerateTodaySession(ctx, t.learnerID)
		} else {
			s, err = t.svc.GetTodaySession(ctx, t.learnerID)
		}
		return sessionReadyMsg{Session: s, Err: err}
	}
}

func (t *TodayScreen) loadStanding() tea.Cmd {
	return func() tea.Msg {
		r, err := t.svc.GetActiveRoadmap(context.Background(), t.learnerID)
		if errors.Is(err, plan.ErrNoActivePlan) {
			return standingMsg{Line: "Plan complete. Congratulations!"}
		}
		if err != nil {
			return standingMsg{}
		}
		return standingMsg{Line: fmt.Sprintf("Roadmap: week %d of %d, %d/%d sessions done.",
			r.ActiveWeek, r.TotalWeeks, r.SessionsCompleted, r.TotalSessions)}
	}
}

// leaves returns the selectable resources and drills in display order.
func (t *TodayScreen) leaves() []leaf {
	if t.session == nil {
		return nil
	}
	var out []leaf
	for i := range t.session.Items {
		item := &t.session.Items[i]
		for j := range item.Resources {
			out = append(out, leaf{itemIdx: i, kind: leafResource, idx: j})
		}
		for j := range item.Drills {
			out = append(out, leaf{itemIdx: i, kind: leafDrill, idx: j})
		}
	}
	return out
}

func (t *TodayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		t.loading = false
		t.noPlan = false
		t.restDay = false
		t.errMsg = ""
		t.cursor = 0
		if msg.Err != nil {
			if errors.Is(msg.Err, plan.ErrNoActivePlan) {
				t.noPlan = true
			} else {
				t.errMsg = msg.Err.Error()
			}
			return t, nil
		}
		if msg.Session == nil {
			t.restDay = true
			return t, nil
		}
		t.session = msg.Session
		if t.session.Status == plan.SessionCompleted && t.standing == "" {
			return t, t.loadStanding()
		}
		return t, nil

	case mutationDoneMsg:
		if msg.Err != nil {
			t.status = msg.Err.Error()
			return t, nil
		}
		t.session = msg.Session
		t.status = ""
		if t.session.Status == plan.SessionCompleted {
			return t, t.loadStanding()
		}
		return t, nil

	case standingMsg:
		t.standing = msg.Line
		return t, nil

	case tea.KeyMsg:
		if t.logging {
			return t.updateLogging(msg)
		}
		return t.updateKeys(msg)
	}

	return t, nil
}

func (t *TodayScreen) updateKeys(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if t.session == nil {
		return t, nil
	}
	leaves := t.leaves()

	switch msg.String() {
	case "up", "k":
		if t.cursor > 0 {
			t.cursor--
		}
	case "down", "j":
		if t.cursor < len(leaves)-1 {
			t.cursor++
		}
	case "enter":
		if t.cursor >= len(leaves) {
			return t, nil
		}
		return t.activate(leaves[t.cursor])
	case "c":
		if t.session.Status != plan.SessionCompleted {
			sessionID := t.session.ID
			return t, func() tea.Msg {
				s, err := t.svc.CompleteSession(context.Background(), sessionID)
				return mutationDoneMsg{Session: s, Err: err}
			}
		}
	case "g":
		t.loading = true
		t.standing = ""
		return t, t.loadSession(true)
	}
	return t, nil
}

// activate acts on the selected leaf. Drills complete immediately,
// resources open the time prompt.
func (t *TodayScreen) activate(l leaf) (screen.Screen, tea.Cmd) {
	item := &t.session.Items[l.itemIdx]

	if l.kind == leafDrill {
		if item.Drills[l.idx].Completed {
			return t, nil
		}
		sessionID, itemID, drillID := t.session.ID, item.ID, item.Drills[l.idx].ID
		return t, func() tea.Msg {
			s, err := t.svc.CompleteDrill(context.Background(), sessionID, itemID, drillID)
			return mutationDoneMsg{Session: s, Err: err}
		}
	}

	t.logging = true
	t.target = l
	t.input = components.NewTextInput("minutes", true, 4)
	return t, t.input.Init()
}

func (t *TodayScreen) updateLogging(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if msg.String() == "enter" {
		t.logging = false
		minutes, err := t.input.NumericValue()
		if err != nil || minutes <= 0 {
			return t, nil
		}
		item := &t.session.Items[t.target.itemIdx]
		sessionID, itemID := t.session.ID, item.ID
		resourceID := item.Resources[t.target.idx].ID
		return t, func() tea.Msg {
			s, err := t.svc.TrackResourceView(context.Background(), sessionID, itemID, resourceID,
				time.Duration(minutes)*time.Minute)
			return mutationDoneMsg{Session: s, Err: err}
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd
}

func (t *TodayScreen) Title() string {
	return "Today"
}

func (t *TodayScreen) KeyHints() []layout.KeyHint {
	if t.logging {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save (empty cancels)"},
		}
	}
	if t.session == nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Record"},
		{Key: "C", Description: "Complete session"},
		{Key: "G", Description: "Regenerate"},
		{Key: "Esc", Description: "Back"},
	}
}
