package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/plants/internal/store"
)

type profileModel struct {
	store  *store.Store
	width  int
	height int

	settings []store.Setting
	active   string

	formActive bool
	form       *huh.Form
	formUser   *string
}

func newProfileModel(s *store.Store) profileModel {
	user := ""
	return profileModel{
		store:    s,
		formUser: &user,
	}
}

func (m *profileModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type profileDataMsg struct {
	settings []store.Setting
	active   string
}

func (m profileModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.store.GetAllSettings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		active, err := m.store.ActiveUser()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return profileDataMsg{settings: settings, active: active}
	}
}

func (m profileModel) update(msg tea.Msg) (profileModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case profileDataMsg:
		m.settings = msg.settings
		m.active = msg.active
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.New) || key.Matches(msg, keys.Enter) {
			return m.showSwitchForm()
		}
	}
	return m, nil
}

func (m profileModel) showSwitchForm() (profileModel, tea.Cmd) {
	*m.formUser = m.active

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Profile name").Value(m.formUser),
		),
	).WithShowHelp(true).WithShowErrors(true)

	m.formActive = true
	return m, m.form.Init()
}

func (m profileModel) updateForm(msg tea.Msg) (profileModel, tea.Cmd) {
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
		user := strings.TrimSpace(*m.formUser)
		if user == "" || user == m.active {
			return m, m.refresh()
		}
		return m, func() tea.Msg {
			if err := m.store.SetActiveUser(user); err != nil {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
			return profileSwitchedMsg{user: user}
		}
	}

	return m, cmd
}

func (m profileModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		title := titleStyle.Render("Switch Profile")
		content := lipgloss.JoinVertical(lipgloss.Left, title, "", m.form.View())
		return panelStyle.Width(w).Render(content)
	}

	title := titleStyle.Render("Profile")

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	rows = append(rows, "  Active profile: "+highlightStyle.Render(m.active))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  Each profile keeps its own week, days, and streak."))
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  n/enter: switch profile"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
