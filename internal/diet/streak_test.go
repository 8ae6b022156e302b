package diet

import (
	"testing"
	"time"
)

func archivedWeek(weekStart time.Time, points Points) ArchivedWeek {
	return ArchivedWeek{
		WeekStart:    weekStart,
		WeekEnd:      WeekEnd(weekStart),
		TotalPoints:  points,
		GoalAchieved: AchievedGoal(points),
	}
}

// ============================================================
// Goal check
// ============================================================

func TestAchievedGoal(t *testing.T) {
	if !AchievedGoal(WeeklyGoal) {
		t.Fatal("exactly 30 points meets the goal")
	}
	if AchievedGoal(WeeklyGoal - 1) {
		t.Fatal("29.75 points does not meet the goal")
	}
	if !AchievedGoal(WeeklyGoal + FullPoint) {
		t.Fatal("exceeding the goal meets it")
	}
}

// ============================================================
// Streak calculation
// ============================================================

func TestCalculateStreakEmpty(t *testing.T) {
	if got := CalculateStreak(nil); got != 0 {
		t.Fatalf("no history means no streak, got %d", got)
	}
}

func TestCalculateStreakSingleWeek(t *testing.T) {
	mon := date(2025, time.January, 6, 0, 0)
	if got := CalculateStreak([]ArchivedWeek{archivedWeek(mon, WeeklyGoal)}); got != 1 {
		t.Fatalf("one achieved week is a streak of 1, got %d", got)
	}
	if got := CalculateStreak([]ArchivedWeek{archivedWeek(mon, WeeklyGoal-1)}); got != 0 {
		t.Fatalf("one failed week is a streak of 0, got %d", got)
	}
}

func TestCalculateStreakConsecutive(t *testing.T) {
	// Three adjacent Mondays, most recent first.
	weeks := []ArchivedWeek{
		archivedWeek(date(2025, time.January, 20, 0, 0), WeeklyGoal),
		archivedWeek(date(2025, time.January, 13, 0, 0), WeeklyGoal+FullPoint),
		archivedWeek(date(2025, time.January, 6, 0, 0), WeeklyGoal),
	}
	if got := CalculateStreak(weeks); got != 3 {
		t.Fatalf("three adjacent achieved weeks should give 3, got %d", got)
	}
}

func TestCalculateStreakBrokenByFailedWeek(t *testing.T) {
	weeks := []ArchivedWeek{
		archivedWeek(date(2025, time.January, 20, 0, 0), WeeklyGoal),
		archivedWeek(date(2025, time.January, 13, 0, 0), WeeklyGoal-FullPoint),
		archivedWeek(date(2025, time.January, 6, 0, 0), WeeklyGoal),
	}
	if got := CalculateStreak(weeks); got != 1 {
		t.Fatalf("a failed middle week caps the streak at 1, got %d", got)
	}
}

func TestCalculateStreakBrokenByGap(t *testing.T) {
	// Jan 27 and Jan 20 are adjacent; Jan 6 leaves Jan 13 missing.
	weeks := []ArchivedWeek{
		archivedWeek(date(2025, time.January, 27, 0, 0), WeeklyGoal),
		archivedWeek(date(2025, time.January, 20, 0, 0), WeeklyGoal),
		archivedWeek(date(2025, time.January, 6, 0, 0), WeeklyGoal),
	}
	if got := CalculateStreak(weeks); got != 2 {
		t.Fatalf("a missing week ends the streak at 2, got %d", got)
	}
}

// ============================================================
// Sorting
// ============================================================

func TestSortWeeksByMostRecent(t *testing.T) {
	weeks := []ArchivedWeek{
		archivedWeek(date(2025, time.January, 6, 0, 0), WeeklyGoal),
		archivedWeek(date(2025, time.January, 20, 0, 0), WeeklyGoal),
		archivedWeek(date(2025, time.January, 13, 0, 0), WeeklyGoal),
	}

	sorted := SortWeeksByMostRecent(weeks)
	if !sorted[0].WeekStart.Equal(date(2025, time.January, 20, 0, 0)) {
		t.Fatalf("most recent week should come first, got %v", sorted[0].WeekStart)
	}
	if !sorted[2].WeekStart.Equal(date(2025, time.January, 6, 0, 0)) {
		t.Fatalf("oldest week should come last, got %v", sorted[2].WeekStart)
	}

	// Input order is preserved.
	if !weeks[0].WeekStart.Equal(date(2025, time.January, 6, 0, 0)) {
		t.Fatal("sorting must not mutate the input")
	}
}
