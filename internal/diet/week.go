package diet

import "time"

// NewWeeklyAggregate returns a fresh aggregate for the user's week
// containing now, carrying the given streak count.
func NewWeeklyAggregate(userID string, now time.Time, streak int) WeeklyAggregate {
	return WeeklyAggregate{
		UserID:      userID,
		WeekStart:   WeekStart(now),
		WeekEnd:     WeekEnd(now),
		Breakdown:   CategoryBreakdown(nil),
		StreakCount: streak,
	}
}

// Recompute rebuilds the aggregate's derived fields (total points,
// category breakdown, colors) from its instance list.
func Recompute(w WeeklyAggregate) WeeklyAggregate {
	unique := uniqueFoods(w.Foods)
	w.TotalPoints = WeeklyPoints(unique)
	w.Breakdown = CategoryBreakdown(unique)
	w.ColorsEaten = WeeklyColors(w.Foods)
	return w
}

// Archive converts a finished week into its immutable history record.
func Archive(w WeeklyAggregate) ArchivedWeek {
	return ArchivedWeek{
		WeekStart:    w.WeekStart,
		WeekEnd:      w.WeekEnd,
		TotalPoints:  w.TotalPoints,
		GoalAchieved: AchievedGoal(w.TotalPoints),
	}
}
