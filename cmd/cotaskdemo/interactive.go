// ©Robert Horst 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RobertHorst/cotask"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	statusColor = map[cotask.Status]lipgloss.Color{
		cotask.StatusYielding: lipgloss.Color("#87CEEB"),
		cotask.StatusDelaying: lipgloss.Color("#666666"),
		cotask.StatusAwaiting: lipgloss.Color("#FFD700"),
		cotask.StatusEnding:   lipgloss.Color("#FF6B6B"),
		cotask.StatusEnded:    lipgloss.Color("#444444"),
	}
)

// demoModel drives sched one RunOne step per tick and renders its
// routines' current Status/Steps/WakeMillis in a table, the live
// analogue of the original runtime's "list" diagnostic command.
type demoModel struct {
	sched *cotask.Scheduler
	tick  time.Duration
	table table.Model
	n     uint64
}

func newDemoModel(sched *cotask.Scheduler, tick time.Duration) *demoModel {
	columns := []table.Column{
		{Title: "ROUTINE", Width: 16},
		{Title: "STATUS", Width: 10},
		{Title: "STEPS", Width: 8},
		{Title: "WAKE(ms)", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(len(sched.Snapshot())+1),
	)
	return &demoModel{sched: sched, tick: tick, table: t}
}

type tickMsg struct{}

func (m *demoModel) Init() tea.Cmd {
	m.refreshRows()
	return tea.Tick(m.tick, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case tickMsg:
		m.sched.Loop()
		m.n++
		m.refreshRows()
		return m, tea.Tick(m.tick, func(time.Time) tea.Msg { return tickMsg{} })
	}
	return m, nil
}

func (m *demoModel) refreshRows() {
	rows := make([]table.Row, 0, m.sched.Len())
	for _, info := range m.sched.Snapshot() {
		rows = append(rows, table.Row{
			info.Name,
			renderStatus(info.Status),
			fmt.Sprint(info.Steps),
			fmt.Sprint(info.WakeMillis),
		})
	}
	m.table.SetRows(rows)
}

func renderStatus(s cotask.Status) string {
	return lipgloss.NewStyle().Foreground(statusColor[s]).Render(s.String())
}

func (m *demoModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("cotaskdemo — sweep %d", m.n)))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("q to quit"))
	return b.String()
}
