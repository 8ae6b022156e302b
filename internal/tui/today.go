package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/plants/internal/diet"
	"github.com/sadopc/plants/internal/tracker"
)

type todayModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	day    diet.DailyAggregate
	week   diet.WeeklyAggregate
	loaded bool
}

func newTodayModel(tr *tracker.Tracker) todayModel {
	return todayModel{tracker: tr}
}

func (m todayModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *todayModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m todayModel) streak() int {
	return m.week.StreakCount
}

func (m todayModel) loadData() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		week, err := m.tracker.Week(now)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		day, err := m.tracker.Day(now)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return todayDataMsg{day: day, week: week}
	}
}

func (m todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	switch msg := msg.(type) {
	case todayDataMsg:
		m.day = msg.day
		m.week = msg.week
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.WaterUp):
			return m.adjustWater(1)
		case key.Matches(msg, keys.WaterDown):
			return m.adjustWater(-1)
		}
	}
	return m, nil
}

func (m todayModel) adjustWater(delta int) (todayModel, tea.Cmd) {
	day, err := m.tracker.AdjustWater(time.Now(), delta)
	if err != nil {
		return m, func() tea.Msg {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
	}
	m.day = day
	return m, nil
}

func (m todayModel) view() string {
	if m.width < 20 {
		return "Terminal too small"
	}
	if !m.loaded {
		return mutedStyle.Render("Loading...")
	}

	contentWidth := m.width - 4

	waterPanel := m.renderWaterPanel(contentWidth)
	colorsPanel := m.renderColorsPanel(contentWidth)
	weekPanel := m.renderWeekPanel(contentWidth)

	return lipgloss.JoinVertical(lipgloss.Left, waterPanel, colorsPanel, weekPanel)
}

func (m todayModel) renderWaterPanel(w int) string {
	title := titleStyle.Render("Water")
	count := fmt.Sprintf("%d / %d glasses", m.day.WaterGlasses, diet.WaterGoal)

	var glasses []string
	for i := 0; i < diet.WaterGoal; i++ {
		if i < m.day.WaterGlasses {
			glasses = append(glasses, waterStyle.Render("●"))
		} else {
			glasses = append(glasses, mutedStyle.Render("○"))
		}
	}
	extra := m.day.WaterGlasses - diet.WaterGoal
	if extra > 0 {
		glasses = append(glasses, successStyle.Render(fmt.Sprintf(" +%d", extra)))
	}

	status := mutedStyle.Render(count)
	if m.day.WaterGlasses >= diet.WaterGoal {
		status = successStyle.Render(count + "  goal met!")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"  "+strings.Join(glasses, " "),
		"",
		"  "+status+mutedStyle.Render("   +/-: adjust"),
	)
	return panelStyle.Width(w).Render(content)
}

func (m todayModel) renderColorsPanel(w int) string {
	title := titleStyle.Render("Colors today")

	achieved := make(map[diet.FoodColor]bool, len(m.day.ColorsEaten))
	for _, c := range m.day.ColorsEaten {
		achieved[c] = true
	}

	var cells []string
	for _, c := range diet.Colors {
		label := colorLabels[c]
		if achieved[c] {
			cells = append(cells, colorDot(c)+" "+normalItemStyle.Render(label))
		} else {
			cells = append(cells, mutedStyle.Render("○ "+label))
		}
	}

	var footer string
	if diet.HasAllColors(m.day.ColorsEaten) {
		footer = successStyle.Render("  Full rainbow today!")
	} else {
		missing := diet.MissingColors(m.day.ColorsEaten)
		names := make([]string, 0, len(missing))
		for _, c := range missing {
			names = append(names, colorLabels[c])
		}
		footer = mutedStyle.Render("  Missing: " + strings.Join(names, ", "))
	}

	fermented := mutedStyle.Render("  ○ No fermented food yet")
	if m.day.AteFermented {
		fermented = successStyle.Render("  ✓ Fermented food eaten")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"  "+strings.Join(cells, "   "),
		"",
		footer,
		fermented,
	)
	return panelStyle.Width(w).Render(content)
}

func (m todayModel) renderWeekPanel(w int) string {
	title := titleStyle.Render("This week")
	unique := len(diet.UniqueFoodIDs(m.week.Foods))

	points := bigCountStyle.Render(formatGoalProgress(m.week.TotalPoints))
	if diet.AchievedGoal(m.week.TotalPoints) {
		points = goalMetStyle.Render(formatGoalProgress(m.week.TotalPoints) + "  ★ goal met")
	}

	barWidth := min(w-10, 40)
	bar := progressBar(m.week.TotalPoints, diet.WeeklyGoal, barWidth, highlightStyle)

	detail := mutedStyle.Render(fmt.Sprintf("  %d unique plants · %d entries · week of %s",
		unique, len(m.week.Foods), m.week.WeekStart.Format("Jan 02")))

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		"  "+points,
		"  "+bar,
		"",
		detail,
	)
	return panelStyle.Width(w).Render(content)
}
