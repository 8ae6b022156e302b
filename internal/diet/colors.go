package diet

import "time"

// WeeklyColors returns the distinct colors across all given instances.
func WeeklyColors(foods []FoodInstance) []FoodColor {
	seen := make(map[FoodColor]bool, len(Colors))
	var out []FoodColor
	for _, f := range foods {
		if seen[f.Color] {
			continue
		}
		seen[f.Color] = true
		out = append(out, f.Color)
	}
	return out
}

// DailyColors returns the distinct colors of instances logged on date's
// calendar day, ignoring time-of-day.
func DailyColors(foods []FoodInstance, date time.Time) []FoodColor {
	var todays []FoodInstance
	for _, f := range foods {
		if SameDay(f.LoggedAt, date) {
			todays = append(todays, f)
		}
	}
	return WeeklyColors(todays)
}

// HasAllColors reports whether all six rainbow colors are present.
// This is a cardinality check: it trusts upstream code to only put
// valid colors in the set.
func HasAllColors(colors []FoodColor) bool {
	return len(colors) == len(Colors)
}

// MissingColors returns the rainbow colors not yet achieved, in the
// fixed enumeration order.
func MissingColors(achieved []FoodColor) []FoodColor {
	have := make(map[FoodColor]bool, len(achieved))
	for _, c := range achieved {
		have[c] = true
	}
	var out []FoodColor
	for _, c := range Colors {
		if !have[c] {
			out = append(out, c)
		}
	}
	return out
}
