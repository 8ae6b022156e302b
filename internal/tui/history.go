package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/plants/internal/diet"
	"github.com/sadopc/plants/internal/tracker"
)

const weeksPerPage = 8

type historyModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	weeks  []diet.ArchivedWeek
	streak int
	offset int // pages back from the most recent weeks (0 = newest)

	chart barchart.Model
}

func newHistoryModel(tr *tracker.Tracker) historyModel {
	return historyModel{
		tracker: tr,
		chart:   barchart.New(60, 12),
	}
}

func (m *historyModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		weeks, err := m.tracker.History()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return historyDataMsg{weeks: weeks, streak: diet.CalculateStreak(weeks)}
	}
}

func (m historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		m.weeks = msg.weeks
		m.streak = msg.streak
		m.buildChart()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			if (m.offset+1)*weeksPerPage < len(m.weeks) {
				m.offset++
				m.buildChart()
			}
			return m, nil
		case key.Matches(msg, keys.Right):
			if m.offset > 0 {
				m.offset--
				m.buildChart()
			}
			return m, nil
		}
	}
	return m, nil
}

// page returns the visible slice of weeks, oldest first for charting.
func (m historyModel) page() []diet.ArchivedWeek {
	start := m.offset * weeksPerPage
	if start >= len(m.weeks) {
		return nil
	}
	end := min(start+weeksPerPage, len(m.weeks))
	page := m.weeks[start:end]

	out := make([]diet.ArchivedWeek, len(page))
	for i, w := range page {
		out[len(page)-1-i] = w
	}
	return out
}

func (m *historyModel) buildChart() {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if m.height > 30 {
		chartHeight = 16
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, w := range m.page() {
		style := lipgloss.NewStyle().Foreground(colorSubtle)
		if w.GoalAchieved {
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		}
		bars = append(bars, barchart.BarData{
			Label: w.WeekStart.Format("Jan 02"),
			Values: []barchart.BarValue{{
				Name:  "points",
				Value: w.TotalPoints.Float64(),
				Style: style,
			}},
		})
	}

	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m historyModel) view() string {
	w := m.width - 4

	streakLine := mutedStyle.Render("No streak yet — hit 30 points to start one")
	if m.streak > 0 {
		streakLine = successStyle.Render(fmt.Sprintf("♦ %d consecutive weeks at goal", m.streak))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("History"), "  ", streakLine,
	)

	if len(m.weeks) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No archived weeks yet. Finish a week to see it here."),
		)
		return panelStyle.Width(w).Render(content)
	}

	chartView := m.chart.View()
	tableView := m.renderWeekTable(w)
	nav := mutedStyle.Render("  ←/→: older/newer")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", tableView, "", nav,
		),
	)
}

func (m historyModel) renderWeekTable(w int) string {
	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-14s %-14s %10s %8s", "Week Start", "Week End", "Points", "Goal")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 50))))

	start := m.offset * weeksPerPage
	end := min(start+weeksPerPage, len(m.weeks))
	for _, wk := range m.weeks[start:end] {
		goal := errorStyle.Render("✗")
		if wk.GoalAchieved {
			goal = successStyle.Render("✓")
		}
		rows = append(rows, fmt.Sprintf("  %-14s %-14s %10s %8s",
			wk.WeekStart.Format("2006-01-02"),
			wk.WeekEnd.Format("2006-01-02"),
			wk.TotalPoints.String(),
			goal,
		))
	}

	return strings.Join(rows, "\n")
}
