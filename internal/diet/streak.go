package diet

import "sort"

// AchievedGoal reports whether a week's total met the 30-point goal.
func AchievedGoal(total Points) bool {
	return total >= WeeklyGoal
}

// CalculateStreak counts the trailing run of consecutive, goal-achieved
// weeks. weeks must be sorted most-recent-first (see
// SortWeeksByMostRecent). A failed week or a gap in the archive ends
// the count; the week that breaks continuity is not counted.
func CalculateStreak(weeks []ArchivedWeek) int {
	streak := 0
	for i, w := range weeks {
		if !w.GoalAchieved {
			break
		}
		if i > 0 {
			// The more recent week must start exactly 7 days after
			// this one, otherwise an archived week is missing.
			if !SameDay(weeks[i-1].WeekStart, w.WeekStart.AddDate(0, 0, 7)) {
				break
			}
		}
		streak++
	}
	return streak
}

// SortWeeksByMostRecent returns a new slice ordered by descending
// week start. The input is not mutated.
func SortWeeksByMostRecent(weeks []ArchivedWeek) []ArchivedWeek {
	out := make([]ArchivedWeek, len(weeks))
	copy(out, weeks)
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart.After(out[j].WeekStart)
	})
	return out
}
