package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmoreno/groundwork/internal/cli/formatter"
	"github.com/dmoreno/groundwork/internal/service"
)

type timelineKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var timelineKeys = timelineKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous phase"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next phase"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// timelineModel is the full-screen phase browser: a selectable list of the
// seven canonical phases with the selected phase's blockers, advisory, and
// schedule rows in a detail pane.
type timelineModel struct {
	result *service.TimelineResult
	cursor int
	width  int
	height int
}

func newTimelineModel(result *service.TimelineResult) timelineModel {
	cursor := 0
	for i, v := range result.Phases {
		if v.Phase == result.Current {
			cursor = i
			break
		}
	}
	return timelineModel{result: result, cursor: cursor}
}

func (m timelineModel) Init() tea.Cmd {
	return nil
}

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timelineKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, timelineKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, timelineKeys.Down):
			if m.cursor < len(m.result.Phases)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m timelineModel) View() string {
	var list strings.Builder
	list.WriteString(formatter.Header(fmt.Sprintf("%s — %s",
		m.result.Project.DisplayID(), m.result.Project.Name)))
	list.WriteString("\n")

	for i, v := range m.result.Phases {
		marker := "  "
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("❯ ")
		}
		label := v.Config.Label
		if label == "" {
			label = string(v.Phase)
		}
		list.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			marker,
			v.Config.Icon,
			formatter.StatusStyle(v.Status).Render(fmt.Sprintf("%-14s", label)),
			formatter.StatusIndicator(v.Status)))
	}

	detail := m.detailView()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "   ", detail)

	help := formatter.Dim("↑/↓ move · q quit")
	return body + "\n" + help
}

func (m timelineModel) detailView() string {
	v := m.result.Phases[m.cursor]
	var b []string

	if len(v.Blockers) == 0 {
		b = append(b, formatter.Dim("No blockers."))
	}
	for _, bl := range v.Blockers {
		b = append(b, fmt.Sprintf("%s %s", formatter.StyleRed.Render("⊘"), bl.Reason))
	}
	if v.Advisory != "" {
		b = append(b, formatter.Dim("⚠ "+v.Advisory))
	}

	var rows []string
	for _, sv := range m.result.Schedule {
		if sv.SchedulePhase.Phase != v.Phase {
			continue
		}
		rows = append(rows, fmt.Sprintf("%s  %s → %s  %s",
			sv.SchedulePhase.Name,
			formatter.ShortDate(sv.SchedulePhase.StartDate),
			formatter.ShortDate(sv.SchedulePhase.EndDate),
			formatter.RenderVariance(sv.VarianceDays)))
	}
	if len(rows) > 0 {
		b = append(b, "", formatter.Bold("Schedule"))
		b = append(b, rows...)
	}

	label := v.Config.Label
	if label == "" {
		label = string(v.Phase)
	}
	return formatter.RenderBox(label, joinLines(b))
}
