package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/plants/internal/diet"
)

type jsonExport struct {
	ExportedAt  string      `json:"exported_at"`
	User        string      `json:"user"`
	Streak      int         `json:"streak"`
	Weeks       []jsonWeek  `json:"weeks"`
	CurrentWeek jsonCurrent `json:"current_week"`
}

type jsonWeek struct {
	WeekStart    string  `json:"week_start"`
	WeekEnd      string  `json:"week_end"`
	Points       float64 `json:"points"`
	GoalAchieved bool    `json:"goal_achieved"`
}

type jsonCurrent struct {
	WeekStart   string             `json:"week_start"`
	WeekEnd     string             `json:"week_end"`
	Points      float64            `json:"points"`
	UniqueFoods int                `json:"unique_foods"`
	Breakdown   map[string]float64 `json:"breakdown"`
	Colors      []string           `json:"colors"`
	Foods       []jsonFood         `json:"foods"`
}

type jsonFood struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Color     string  `json:"color"`
	Fermented bool    `json:"fermented"`
	LoggedAt  string  `json:"logged_at"`
	Points    float64 `json:"points"`
}

func ToJSON(weeks []diet.ArchivedWeek, current diet.WeeklyAggregate, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		User:       current.UserID,
		Streak:     current.StreakCount,
	}

	for _, w := range weeks {
		out.Weeks = append(out.Weeks, jsonWeek{
			WeekStart:    w.WeekStart.Local().Format("2006-01-02"),
			WeekEnd:      w.WeekEnd.Local().Format("2006-01-02"),
			Points:       w.TotalPoints.Float64(),
			GoalAchieved: w.GoalAchieved,
		})
	}

	breakdown := make(map[string]float64, len(current.Breakdown))
	for cat, pts := range current.Breakdown {
		breakdown[string(cat)] = pts.Float64()
	}
	colors := make([]string, 0, len(current.ColorsEaten))
	for _, c := range current.ColorsEaten {
		colors = append(colors, string(c))
	}

	out.CurrentWeek = jsonCurrent{
		WeekStart:   current.WeekStart.Local().Format("2006-01-02"),
		WeekEnd:     current.WeekEnd.Local().Format("2006-01-02"),
		Points:      current.TotalPoints.Float64(),
		UniqueFoods: len(diet.UniqueFoodIDs(current.Foods)),
		Breakdown:   breakdown,
		Colors:      colors,
	}
	for _, f := range current.Foods {
		out.CurrentWeek.Foods = append(out.CurrentWeek.Foods, jsonFood{
			Name:      f.Name,
			Category:  string(f.Category),
			Color:     string(f.Color),
			Fermented: f.Fermented,
			LoggedAt:  f.LoggedAt.Local().Format(time.RFC3339),
			Points:    f.Points.Float64(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
