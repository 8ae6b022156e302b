package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/plants/internal/diet"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewWeek
	viewHistory
	viewProfile
)

var viewNames = []string{"Today", "Week", "History", "Profile"}

// --- Messages ---

type todayDataMsg struct {
	day  diet.DailyAggregate
	week diet.WeeklyAggregate
}

type weekDataMsg struct {
	week diet.WeeklyAggregate
}

type historyDataMsg struct {
	weeks  []diet.ArchivedWeek
	streak int
}

type foodLoggedMsg struct {
	name   string
	result diet.AddResult
}

type foodRemovedMsg struct{}

type profileSwitchedMsg struct {
	user string
}

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

// --- Helpers ---

// colorSwatches maps the domain colors to terminal shades.
var colorSwatches = map[diet.FoodColor]lipgloss.Color{
	diet.Red:        lipgloss.Color("#E74C3C"),
	diet.Orange:     lipgloss.Color("#E67E22"),
	diet.Yellow:     lipgloss.Color("#F1C40F"),
	diet.Green:      lipgloss.Color("#2ECC71"),
	diet.BluePurple: lipgloss.Color("#9B59B6"),
	diet.WhiteTan:   lipgloss.Color("#ECE4D4"),
}

var colorLabels = map[diet.FoodColor]string{
	diet.Red:        "Red",
	diet.Orange:     "Orange",
	diet.Yellow:     "Yellow",
	diet.Green:      "Green",
	diet.BluePurple: "Blue/Purple",
	diet.WhiteTan:   "White/Tan",
}

var categoryLabels = map[diet.FoodCategory]string{
	diet.WholeGrains: "Whole grains",
	diet.NutsSeeds:   "Nuts & seeds",
	diet.Fruits:      "Fruits",
	diet.Vegetables:  "Vegetables",
	diet.Legumes:     "Legumes",
	diet.HerbsSpices: "Herbs & spices",
}

func colorDot(c diet.FoodColor) string {
	return lipgloss.NewStyle().Foreground(colorSwatches[c]).Render("●")
}

func formatPoints(p diet.Points) string {
	return p.String() + " pts"
}

func formatGoalProgress(p diet.Points) string {
	return fmt.Sprintf("%s / %s pts", p.String(), diet.WeeklyGoal.String())
}

// progressBar renders a simple filled/empty bar of the given width.
func progressBar(current, goal diet.Points, width int, style lipgloss.Style) string {
	if width < 1 {
		width = 1
	}
	filled := 0
	if goal > 0 {
		filled = int(int64(current) * int64(width) / int64(goal))
	}
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return style.Render(bar)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
