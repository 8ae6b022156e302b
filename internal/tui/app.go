package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/plants/internal/diet"
	"github.com/sadopc/plants/internal/export"
	"github.com/sadopc/plants/internal/store"
	"github.com/sadopc/plants/internal/tracker"
)

// App is the root Bubble Tea model.
type App struct {
	store   *store.Store
	tracker *tracker.Tracker
	width   int
	height  int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	lastTick      time.Time

	today   todayModel
	week    weekModel
	history historyModel
	profile profileModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, tr *tracker.Tracker) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		tracker:    tr,
		activeView: viewToday,
		lastTick:   time.Now(),
		today:      newTodayModel(tr),
		week:       newWeekModel(tr),
		history:    newHistoryModel(tr),
		profile:    newProfileModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.today.Init(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.today.setSize(a.width, contentHeight)
		a.week.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.profile.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewToday
			return a, a.today.loadData()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewWeek
			return a, a.week.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewHistory
			return a, a.history.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewProfile
			return a, a.profile.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 4
			return a, a.refreshCurrentView()
		}

	case tickMsg:
		now := time.Time(msg)
		rolled := !diet.SameDay(now, a.lastTick)
		a.lastTick = now
		if rolled {
			// Crossed local midnight (possibly into a new week) while
			// the app was open: reload so archival/reset take effect.
			a.status = "New day — aggregates reset"
			return a, tea.Batch(tickCmd(), a.refreshCurrentView())
		}
		return a, tickCmd()

	case statusMsg:
		a.status = msg.text
		return a, nil

	case foodLoggedMsg:
		switch {
		case msg.result.IsDuplicateInstance:
			a.status = fmt.Sprintf("%s already logged this week", msg.name)
		case msg.result.IsNewFood:
			a.status = fmt.Sprintf("Logged %s — new plant this week!", msg.name)
		default:
			a.status = fmt.Sprintf("Logged %s (repeat plant, new variety)", msg.name)
		}
		return a.updateActiveView(msg)

	case foodRemovedMsg:
		a.status = "Removed"
		return a.updateActiveView(msg)

	case profileSwitchedMsg:
		a.tracker = tracker.New(a.store, msg.user)
		a.today = newTodayModel(a.tracker)
		a.week = newWeekModel(a.tracker)
		a.history = newHistoryModel(a.tracker)
		a.today.setSize(a.width, a.height-4)
		a.week.setSize(a.width, a.height-4)
		a.history.setSize(a.width, a.height-4)
		a.status = "Tracking as " + msg.user
		return a, a.refreshCurrentView()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewToday:
		a.today, cmd = a.today.update(msg)
	case viewWeek:
		a.week, cmd = a.week.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewWeek:
		return a.week.formActive
	case viewProfile:
		return a.profile.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewToday:
		return a.today.loadData()
	case viewWeek:
		return a.week.refresh()
	case viewHistory:
		return a.history.refresh()
	case viewProfile:
		return a.profile.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewToday:
		content = a.today.view()
	case viewWeek:
		content = a.week.view()
	case viewHistory:
		content = a.history.view()
	case viewProfile:
		content = a.profile.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("plants")
	user := mutedStyle.Render(" " + a.tracker.UserID())
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(user) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, user, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Streak indicator in footer
	streakInfo := ""
	if n := a.today.streak(); n > 0 {
		streakInfo = successStyle.Render(fmt.Sprintf(" ♦ %d week streak", n))
	}

	left := footerStyle.Render(helpView)
	right := streakInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		week, err := a.tracker.Week(now)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		weeks, err := a.tracker.History()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		home, _ := os.UserHomeDir()
		dateStr := now.Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("plants-export-%s.csv", dateStr))
			if err := export.ToCSV(weeks, week, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("plants-export-%s.json", dateStr))
			if err := export.ToJSON(weeks, week, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
