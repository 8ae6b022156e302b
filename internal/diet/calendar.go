package diet

import "time"

// Week and day boundaries are computed in local wall-clock time so the
// tracked "day" and "week" match the user's physical calendar.

// WeekStart returns local midnight of the Monday on or before t.
func WeekStart(t time.Time) time.Time {
	days := int(t.Weekday()) - 1
	if t.Weekday() == time.Sunday {
		days = 6
	}
	t = t.AddDate(0, 0, -days)
	return StartOfDay(t)
}

// WeekEnd returns 23:59:59.999 local on the Sunday of t's week.
func WeekEnd(t time.Time) time.Time {
	return EndOfDay(WeekStart(t).AddDate(0, 0, 6))
}

// StartOfDay returns local midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 local of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameWeek reports whether a and b share the same Monday-based week.
func SameWeek(a, b time.Time) bool {
	return SameDay(WeekStart(a), WeekStart(b))
}

// ShouldArchiveWeek reports whether the week that started at
// currentWeekStart must be archived and reset because now has crossed
// into a new week.
func ShouldArchiveWeek(now, currentWeekStart time.Time) bool {
	return !SameWeek(now, currentWeekStart)
}

// ShouldResetDaily reports whether the daily aggregate last reset at
// lastReset is stale.
func ShouldResetDaily(now, lastReset time.Time) bool {
	return !SameDay(now, lastReset)
}
