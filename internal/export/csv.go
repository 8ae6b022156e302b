package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/plants/internal/diet"
)

// ToCSV writes the archived week history followed by the current
// week's food log to path.
func ToCSV(weeks []diet.ArchivedWeek, current diet.WeeklyAggregate, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Week history section.
	if err := w.Write([]string{"Week Start", "Week End", "Points", "Goal Met"}); err != nil {
		return err
	}
	for _, wk := range weeks {
		row := []string{
			wk.WeekStart.Local().Format("2006-01-02"),
			wk.WeekEnd.Local().Format("2006-01-02"),
			wk.TotalPoints.String(),
			fmt.Sprintf("%t", wk.GoalAchieved),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	// Blank separator, then the current week's instances.
	if err := w.Write([]string{}); err != nil {
		return err
	}
	if err := w.Write([]string{"Logged At", "Food", "Category", "Color", "Fermented", "Points"}); err != nil {
		return err
	}
	for _, food := range current.Foods {
		row := []string{
			food.LoggedAt.Local().Format(time.RFC3339),
			food.Name,
			string(food.Category),
			string(food.Color),
			fmt.Sprintf("%t", food.Fermented),
			food.Points.String(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
