package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/plants/internal/diet"
	"github.com/sadopc/plants/internal/tracker"
)

type weekModel struct {
	tracker *tracker.Tracker
	width   int
	height  int

	week   diet.WeeklyAggregate
	cursor int

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	formName      *string
	formCategory  *string
	formColor     *string
	formFermented *bool
}

func newWeekModel(tr *tracker.Tracker) weekModel {
	name, cat, color, fermented := "", string(diet.Vegetables), string(diet.Green), false
	return weekModel{
		tracker:       tr,
		formName:      &name,
		formCategory:  &cat,
		formColor:     &color,
		formFermented: &fermented,
	}
}

func (m *weekModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m weekModel) refresh() tea.Cmd {
	return func() tea.Msg {
		week, err := m.tracker.Week(time.Now())
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return weekDataMsg{week: week}
	}
}

func (m weekModel) update(msg tea.Msg) (weekModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case weekDataMsg:
		m.week = msg.week
		if m.cursor >= len(m.week.Foods) {
			m.cursor = max(0, len(m.week.Foods)-1)
		}
		return m, nil

	case foodLoggedMsg, foodRemovedMsg:
		return m, m.refresh()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.week.Foods)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.New):
			return m.showLogForm()
		case key.Matches(msg, keys.Delete):
			if len(m.week.Foods) > 0 {
				id := m.week.Foods[m.cursor].ID
				return m, func() tea.Msg {
					if err := m.tracker.RemoveFood(time.Now(), id); err != nil {
						return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
					}
					return foodRemovedMsg{}
				}
			}
		}
	}
	return m, nil
}

func (m weekModel) showLogForm() (weekModel, tea.Cmd) {
	*m.formName = ""
	*m.formCategory = string(diet.Vegetables)
	*m.formColor = string(diet.Green)
	*m.formFermented = false

	catOptions := make([]huh.Option[string], len(diet.Categories))
	for i, c := range diet.Categories {
		catOptions[i] = huh.NewOption(categoryLabels[c], string(c))
	}
	colorOptions := make([]huh.Option[string], len(diet.Colors))
	for i, c := range diet.Colors {
		colorOptions[i] = huh.NewOption(colorLabels[c], string(c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Food").Value(m.formName),
			huh.NewSelect[string]().Title("Category").Options(catOptions...).Value(m.formCategory),
			huh.NewSelect[string]().Title("Color").Options(colorOptions...).Value(m.formColor),
			huh.NewConfirm().Title("Fermented?").Value(m.formFermented),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m weekModel) updateForm(msg tea.Msg) (weekModel, tea.Cmd) {
	// Check for escape to cancel form
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		name := strings.TrimSpace(*m.formName)
		if name == "" {
			return m, m.refresh()
		}
		category := diet.FoodCategory(*m.formCategory)
		color := diet.FoodColor(*m.formColor)
		fermented := *m.formFermented
		return m, func() tea.Msg {
			result, err := m.tracker.LogFood(time.Now(), name, category, color, fermented)
			if err != nil {
				return statusMsg{text: fmt.Sprintf("Could not save — try again: %v", err), isError: true}
			}
			return foodLoggedMsg{name: name, result: result}
		}
	}

	return m, cmd
}

func (m weekModel) view() string {
	if m.formActive && m.form != nil {
		title := titleStyle.Render("Log Food")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(m.width - 4).Render(content)
	}

	w := m.width - 4
	listPanel := m.renderFoodList(w)
	breakdownPanel := m.renderBreakdown(w)
	return lipgloss.JoinVertical(lipgloss.Left, listPanel, breakdownPanel)
}

func (m weekModel) renderFoodList(w int) string {
	title := titleStyle.Render(fmt.Sprintf("Week of %s", m.week.WeekStart.Format("Jan 02")))
	total := highlightStyle.Render(formatGoalProgress(m.week.TotalPoints))
	header := fmt.Sprintf("%s  %s", title, total)

	if len(m.week.Foods) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("Nothing logged yet. Press n to log a food."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header)
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %-16s %-6s %s", "", "Food", "Category", "Pts", "Logged")))

	counted := make(map[string]bool, len(m.week.Foods))
	for i, f := range m.week.Foods {
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		pts := f.Points.String()
		if counted[f.FoodID] {
			pts = "—" // repeat variety, points counted once per food
		}
		counted[f.FoodID] = true

		name := f.Name
		if f.Fermented {
			name += " ✦"
		}
		row := style.Render(fmt.Sprintf("%s%s %-24s %-16s %-6s %s",
			cursor, colorDot(f.Color), name, categoryLabels[f.Category], pts,
			f.LoggedAt.Format("Mon 15:04"),
		))
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n: log food  d: remove  ✦ fermented"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (m weekModel) renderBreakdown(w int) string {
	title := titleStyle.Render("Breakdown")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for _, c := range diet.Categories {
		pts := m.week.Breakdown[c]
		label := fmt.Sprintf("  %-16s %6s", categoryLabels[c], formatPoints(pts))
		if pts == 0 {
			rows = append(rows, mutedStyle.Render(label))
		} else {
			rows = append(rows, normalItemStyle.Render(label))
		}
	}

	var dots []string
	for _, c := range diet.WeeklyColors(m.week.Foods) {
		dots = append(dots, colorDot(c))
	}
	if len(dots) > 0 {
		rows = append(rows, "")
		rows = append(rows, "  Colors this week: "+strings.Join(dots, " "))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
